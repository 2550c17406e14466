// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"github.com/bitmark-inc/trustregistry/fault"
)

// AssetType - category of an asset profile, stored as a single byte
type AssetType uint8

// enumeration of asset types
const (
	Business     = AssetType(iota)
	RealEstate   = AssetType(iota)
	Intellectual = AssetType(iota)
	Digital      = AssetType(iota)
	Other        = AssetType(iota)

	// this item must be last
	assetTypeLimit = AssetType(iota)
)

var assetTypeNames = [...]string{
	Business:     "business",
	RealEstate:   "real_estate",
	Intellectual: "intellectual",
	Digital:      "digital",
	Other:        "other",
}

// AssetTypeFromString - parse the text form
func AssetTypeFromString(s string) (AssetType, error) {
	for i, name := range assetTypeNames {
		if name == s {
			return AssetType(i), nil
		}
	}
	return 0, fault.InvalidAssetType
}

// Valid - within the enumeration
func (t AssetType) Valid() bool {
	return t < assetTypeLimit
}

// String - text form for %s
func (t AssetType) String() string {
	if !t.Valid() {
		return "invalid"
	}
	return assetTypeNames[t]
}

// MarshalText - text form for JSON
func (t AssetType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fault.InvalidAssetType
	}
	return []byte(t.String()), nil
}

// UnmarshalText - parse text form from JSON
func (t *AssetType) UnmarshalText(s []byte) error {
	at, err := AssetTypeFromString(string(s))
	if nil != err {
		return err
	}
	*t = at
	return nil
}
