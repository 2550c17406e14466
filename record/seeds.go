// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"encoding/binary"

	"github.com/bitmark-inc/trustregistry/account"
	"github.com/bitmark-inc/trustregistry/address"
)

// seed type tags
const (
	trustFrameworkSeed = "trust_framework"
	assetProfileSeed   = "asset_profile"
	trustRecordSeed    = "trust_record"
)

// FrameworkSeeds - "trust_framework" ‖ authority ‖ framework id (little endian)
func FrameworkSeeds(authority *account.Account, frameworkId uint64) [][]byte {
	return [][]byte{
		[]byte(trustFrameworkSeed),
		authority.PublicKeyBytes(),
		littleEndian(frameworkId),
	}
}

// AssetSeeds - "asset_profile" ‖ owner ‖ asset id (little endian)
func AssetSeeds(owner *account.Account, assetId uint64) [][]byte {
	return [][]byte{
		[]byte(assetProfileSeed),
		owner.PublicKeyBytes(),
		littleEndian(assetId),
	}
}

// TrustSeeds - "trust_record" ‖ framework ‖ issuer ‖ asset
func TrustSeeds(framework address.Address, issuer *account.Account, asset address.Address) [][]byte {
	return [][]byte{
		[]byte(trustRecordSeed),
		framework.Bytes(),
		issuer.PublicKeyBytes(),
		asset.Bytes(),
	}
}

// FrameworkAddress - canonical location of a framework
func FrameworkAddress(authority *account.Account, frameworkId uint64) (address.Address, uint8, error) {
	return address.FindAddress(FrameworkSeeds(authority, frameworkId))
}

// AssetAddress - canonical location of an asset profile
func AssetAddress(owner *account.Account, assetId uint64) (address.Address, uint8, error) {
	return address.FindAddress(AssetSeeds(owner, assetId))
}

// TrustAddress - canonical location of an attestation
func TrustAddress(framework address.Address, issuer *account.Account, asset address.Address) (address.Address, uint8, error) {
	return address.FindAddress(TrustSeeds(framework, issuer, asset))
}

func littleEndian(v uint64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, v)
	return b
}
