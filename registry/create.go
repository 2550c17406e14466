// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/bitmark-inc/trustregistry/account"
	"github.com/bitmark-inc/trustregistry/address"
	"github.com/bitmark-inc/trustregistry/fault"
	"github.com/bitmark-inc/trustregistry/record"
	"github.com/bitmark-inc/trustregistry/storage"
)

// CreateFramework - new active framework with the caller as authority
//
// an occupied address is reported before any argument bound
func (r *Registry) CreateFramework(caller *account.Account, arguments FrameworkArguments) (address.Address, error) {
	if nil == caller {
		return address.Address{}, fault.MissingCaller
	}

	r.Lock()
	defer r.Unlock()

	now := r.clock()

	frameworkAddress, bump, err := record.FrameworkAddress(caller, arguments.FrameworkId)
	if nil != err {
		return address.Address{}, err
	}

	framework := &record.TrustFramework{
		Authority:   caller,
		FrameworkId: arguments.FrameworkId,
		Name:        arguments.Name,
		Description: arguments.Description,
		Criteria:    arguments.Criteria,
		IsActive:    true,
		CreatedAt:   now.Unix(),
		Bump:        bump,
	}

	err = r.atomically(func(trx storage.Transaction) error {
		if trx.Has(r.pools.Frameworks, frameworkAddress[:]) {
			return fault.AddressAlreadyInUse
		}
		if err := record.CheckFrameworkName(framework.Name); nil != err {
			return err
		}
		if err := record.CheckFrameworkDescription(framework.Description); nil != err {
			return err
		}
		if err := record.CheckCriteria(framework.Criteria); nil != err {
			return err
		}
		return store(trx, r.pools.Frameworks, frameworkAddress, framework)
	})
	if nil != err {
		r.log.Debugf("create framework: %d by: %s  error: %s", arguments.FrameworkId, caller, err)
		return address.Address{}, err
	}

	r.log.Infof("trust framework: %d created by: %s at: %s", arguments.FrameworkId, caller, frameworkAddress)
	return frameworkAddress, nil
}

// CreateAsset - new active asset profile with the caller as owner
func (r *Registry) CreateAsset(caller *account.Account, arguments AssetArguments) (address.Address, error) {
	if nil == caller {
		return address.Address{}, fault.MissingCaller
	}

	r.Lock()
	defer r.Unlock()

	now := r.clock()

	assetAddress, bump, err := record.AssetAddress(caller, arguments.AssetId)
	if nil != err {
		return address.Address{}, err
	}

	asset := &record.AssetProfile{
		Owner:       caller,
		AssetId:     arguments.AssetId,
		Name:        arguments.Name,
		Description: arguments.Description,
		AssetType:   arguments.AssetType,
		MetadataUri: arguments.MetadataUri,
		IsActive:    true,
		CreatedAt:   now.Unix(),
		Bump:        bump,
	}

	err = r.atomically(func(trx storage.Transaction) error {
		if trx.Has(r.pools.Assets, assetAddress[:]) {
			return fault.AddressAlreadyInUse
		}
		if err := record.CheckAssetName(asset.Name); nil != err {
			return err
		}
		if err := record.CheckAssetDescription(asset.Description); nil != err {
			return err
		}
		if err := record.CheckMetadataUri(asset.MetadataUri); nil != err {
			return err
		}
		if !asset.AssetType.Valid() {
			return fault.InvalidAssetType
		}
		return store(trx, r.pools.Assets, assetAddress, asset)
	})
	if nil != err {
		r.log.Debugf("create asset: %d by: %s  error: %s", arguments.AssetId, caller, err)
		return address.Address{}, err
	}

	r.log.Infof("asset profile: %d created by: %s at: %s", arguments.AssetId, caller, assetAddress)
	return assetAddress, nil
}

// IssueTrust - new active attestation with the caller as issuer
//
// referenced records are checked first (existence then activity),
// then the address collision, then the arguments and finally the expiry
func (r *Registry) IssueTrust(caller *account.Account, arguments TrustArguments) (address.Address, error) {
	if nil == caller {
		return address.Address{}, fault.MissingCaller
	}

	r.Lock()
	defer r.Unlock()

	now := r.clock()

	trustAddress, bump, err := record.TrustAddress(arguments.Framework, caller, arguments.Asset)
	if nil != err {
		return address.Address{}, err
	}

	err = r.atomically(func(trx storage.Transaction) error {

		framework, err := r.framework(trx, arguments.Framework)
		if nil != err {
			return err
		}
		if !framework.IsActive {
			return fault.FrameworkInactive
		}

		asset, err := r.asset(trx, arguments.Asset)
		if nil != err {
			return err
		}
		if !asset.IsActive {
			return fault.AssetInactive
		}

		if trx.Has(r.pools.Records, trustAddress[:]) {
			return fault.AddressAlreadyInUse
		}

		if err := record.CheckTrustScore(arguments.TrustScore); nil != err {
			return err
		}
		if err := record.CheckEvidence(arguments.Evidence); nil != err {
			return err
		}
		if nil != arguments.ExpiresAt && *arguments.ExpiresAt <= now.Unix() {
			return fault.ExpiryInPast
		}

		trust := &record.TrustRecord{
			Framework:   arguments.Framework,
			Issuer:      caller,
			TargetAsset: arguments.Asset,
			TrustScore:  uint8(arguments.TrustScore),
			Evidence:    arguments.Evidence,
			IsActive:    true,
			IssuedAt:    now.Unix(),
			ExpiresAt:   arguments.ExpiresAt,
			Bump:        bump,
		}
		return store(trx, r.pools.Records, trustAddress, trust)
	})
	if nil != err {
		r.log.Debugf("issue trust by: %s for asset: %s  error: %s", caller, arguments.Asset, err)
		return address.Address{}, err
	}

	r.log.Infof("trust issued by: %s for asset: %s with score: %d", caller, arguments.Asset, arguments.TrustScore)
	return trustAddress, nil
}

// stage a packed record, the caller has already checked the address is free
func store(trx storage.Transaction, pool storage.Handle, at address.Address, item record.Record) error {
	packed, err := item.Pack()
	if nil != err {
		return err
	}
	trx.Put(pool, at[:], packed)
	return nil
}
