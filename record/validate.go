// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"github.com/bitmark-inc/trustregistry/fault"
)

// CheckFrameworkName - bound on framework names
func CheckFrameworkName(name string) error {
	if len(name) > MaxFrameworkNameLength {
		return fault.NameTooLong
	}
	return nil
}

// CheckFrameworkDescription - bound on framework descriptions
func CheckFrameworkDescription(description string) error {
	if len(description) > MaxFrameworkDescriptionLength {
		return fault.DescriptionTooLong
	}
	return nil
}

// CheckCriteria - count first, then each entry
func CheckCriteria(criteria []string) error {
	if len(criteria) > MaxCriteriaCount {
		return fault.TooManyCriteria
	}
	for _, criterion := range criteria {
		if len(criterion) > MaxCriterionLength {
			return fault.CriteriaTooLong
		}
	}
	return nil
}

// CheckAssetName - bound on asset names
func CheckAssetName(name string) error {
	if len(name) > MaxAssetNameLength {
		return fault.NameTooLong
	}
	return nil
}

// CheckAssetDescription - bound on asset descriptions
func CheckAssetDescription(description string) error {
	if len(description) > MaxAssetDescriptionLength {
		return fault.DescriptionTooLong
	}
	return nil
}

// CheckMetadataUri - bound on the optional uri, absent is always valid
func CheckMetadataUri(uri *string) error {
	if nil != uri && len(*uri) > MaxMetadataUriLength {
		return fault.MetadataUriTooLong
	}
	return nil
}

// CheckTrustScore - inclusive range 0..100
func CheckTrustScore(score uint64) error {
	if score > MaxTrustScore {
		return fault.InvalidTrustScore
	}
	return nil
}

// CheckEvidence - bound on evidence text
func CheckEvidence(evidence string) error {
	if len(evidence) > MaxEvidenceLength {
		return fault.EvidenceTooLong
	}
	return nil
}

// Validate - all bounds of a framework
func (framework *TrustFramework) Validate() error {
	if nil == framework.Authority {
		return fault.MissingCaller
	}
	if err := CheckFrameworkName(framework.Name); nil != err {
		return err
	}
	if err := CheckFrameworkDescription(framework.Description); nil != err {
		return err
	}
	return CheckCriteria(framework.Criteria)
}

// Validate - all bounds of an asset profile
func (asset *AssetProfile) Validate() error {
	if nil == asset.Owner {
		return fault.MissingCaller
	}
	if err := CheckAssetName(asset.Name); nil != err {
		return err
	}
	if err := CheckAssetDescription(asset.Description); nil != err {
		return err
	}
	if err := CheckMetadataUri(asset.MetadataUri); nil != err {
		return err
	}
	if !asset.AssetType.Valid() {
		return fault.InvalidAssetType
	}
	return nil
}

// Validate - all bounds of a trust record
func (trust *TrustRecord) Validate() error {
	if nil == trust.Issuer {
		return fault.MissingCaller
	}
	if err := CheckTrustScore(uint64(trust.TrustScore)); nil != err {
		return err
	}
	return CheckEvidence(trust.Evidence)
}
