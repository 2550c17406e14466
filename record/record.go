// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/trustregistry/account"
	"github.com/bitmark-inc/trustregistry/address"
)

// Packed - a stored record, always exactly the Space of its type
type Packed []byte

// Record - common interface of the stored entities
type Record interface {
	Pack() (Packed, error)
}

// bounds, all in bytes of the UTF-8 encoding
const (
	MaxFrameworkNameLength        = 50
	MaxFrameworkDescriptionLength = 200
	MaxCriteriaCount              = 10
	MaxCriterionLength            = 100

	MaxAssetNameLength        = 100
	MaxAssetDescriptionLength = 300
	MaxMetadataUriLength      = 200

	MaxEvidenceLength = 500
	MaxTrustScore     = 100
)

// sizes of the fixed layout
const (
	discriminatorLength = 8
	keyLength           = 32 // public key or address
	lengthPrefix        = 4

	TrustFrameworkSpace = discriminatorLength +
		keyLength + // authority
		8 + // framework id
		lengthPrefix + MaxFrameworkNameLength +
		lengthPrefix + MaxFrameworkDescriptionLength +
		lengthPrefix + (lengthPrefix+MaxCriterionLength)*MaxCriteriaCount +
		1 + // is active
		8 + // created at
		1 // bump

	AssetProfileSpace = discriminatorLength +
		keyLength + // owner
		8 + // asset id
		lengthPrefix + MaxAssetNameLength +
		lengthPrefix + MaxAssetDescriptionLength +
		1 + // asset type
		1 + lengthPrefix + MaxMetadataUriLength +
		1 + // is active
		8 + // created at
		1 // bump

	TrustRecordSpace = discriminatorLength +
		keyLength + // framework
		keyLength + // issuer
		keyLength + // target asset
		1 + // trust score
		lengthPrefix + MaxEvidenceLength +
		1 + // is active
		8 + // issued at
		1 + 8 + // expires at
		1 // bump
)

// type names feed the discriminators
const (
	trustFrameworkName = "TrustFramework"
	assetProfileName   = "AssetProfile"
	trustRecordName    = "TrustRecord"
)

var (
	trustFrameworkDiscriminator = discriminator(trustFrameworkName)
	assetProfileDiscriminator   = discriminator(assetProfileName)
	trustRecordDiscriminator    = discriminator(trustRecordName)
)

func discriminator(typeName string) [discriminatorLength]byte {
	digest := sha3.Sum256([]byte("record:" + typeName))
	var d [discriminatorLength]byte
	copy(d[:], digest[:discriminatorLength])
	return d
}

// TrustFramework - a named set of criteria owned by its authority
type TrustFramework struct {
	Authority   *account.Account `json:"authority"`          // base58
	FrameworkId uint64           `json:"frameworkId,string"` // unique per authority
	Name        string           `json:"name"`               // utf-8
	Description string           `json:"description"`        // utf-8
	Criteria    []string         `json:"criteria"`           // utf-8 list
	IsActive    bool             `json:"isActive"`           //
	CreatedAt   int64            `json:"createdAt"`          // unix seconds
	Bump        uint8            `json:"bump"`               // canonical derivation bump
}

// AssetProfile - a described asset owned by its owner
type AssetProfile struct {
	Owner       *account.Account `json:"owner"`          // base58
	AssetId     uint64           `json:"assetId,string"` // unique per owner
	Name        string           `json:"name"`           // utf-8
	Description string           `json:"description"`    // utf-8
	AssetType   AssetType        `json:"assetType"`      // enum as text
	MetadataUri *string          `json:"metadataUri"`    // optional utf-8
	IsActive    bool             `json:"isActive"`       //
	CreatedAt   int64            `json:"createdAt"`      // unix seconds
	Bump        uint8            `json:"bump"`           // canonical derivation bump
}

// TrustRecord - one issuer's scored attestation about an asset under a framework
type TrustRecord struct {
	Framework   address.Address  `json:"framework"`   // base58
	Issuer      *account.Account `json:"issuer"`      // base58
	TargetAsset address.Address  `json:"targetAsset"` // base58
	TrustScore  uint8            `json:"trustScore"`  // 0..100
	Evidence    string           `json:"evidence"`    // utf-8
	IsActive    bool             `json:"isActive"`    //
	IssuedAt    int64            `json:"issuedAt"`    // unix seconds
	ExpiresAt   *int64           `json:"expiresAt"`   // optional unix seconds
	Bump        uint8            `json:"bump"`        // canonical derivation bump
}
