// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instruction

import (
	"encoding/hex"

	"github.com/bitmark-inc/trustregistry/account"
	"github.com/bitmark-inc/trustregistry/address"
	"github.com/bitmark-inc/trustregistry/record"
)

// TagType - type code for instructions
type TagType uint64

// enumerate the instruction types
// this is encoded a Varint64 at start of "Packed"
const (
	// null marks beginning of list - not used as an instruction type
	NullTag = TagType(iota)

	CreateFrameworkTag = TagType(iota)
	UpdateFrameworkTag = TagType(iota)
	CreateAssetTag     = TagType(iota)
	IssueTrustTag      = TagType(iota)

	// this item must be last
	InvalidTag = TagType(iota)
)

// Packed - packed instructions are just a byte slice
type Packed []byte

// Instruction - generic signed request
type Instruction interface {
	Pack(signer *account.Account) (Packed, error)
	Caller() *account.Account
}

// transport limits, far above any registry bound so that the
// registry always reports the precise error
const (
	maxFieldLength     = 8192
	maxListCount       = 256
	maxSignatureLength = 1024
)

// CreateFramework - request to create a trust framework owned by the signer
type CreateFramework struct {
	Authority   *account.Account  `json:"authority"`          // base58
	FrameworkId uint64            `json:"frameworkId,string"` // unique per authority
	Name        string            `json:"name"`               // utf-8
	Description string            `json:"description"`        // utf-8
	Criteria    []string          `json:"criteria"`           // utf-8 list
	Signature   account.Signature `json:"signature"`          // hex
}

// UpdateFramework - sparse update, only non-nil fields change
type UpdateFramework struct {
	Authority   *account.Account  `json:"authority"`   // base58
	Framework   address.Address   `json:"framework"`   // base58
	Bump        uint8             `json:"bump"`        // canonical bump of framework
	Timestamp   int64             `json:"timestamp"`   // unix seconds, bounds replay
	Name        *string           `json:"name"`        // optional utf-8
	Description *string           `json:"description"` // optional utf-8
	Criteria    *[]string         `json:"criteria"`    // optional utf-8 list
	IsActive    *bool             `json:"isActive"`    // optional
	Signature   account.Signature `json:"signature"`   // hex
}

// CreateAsset - request to create an asset profile owned by the signer
type CreateAsset struct {
	Owner       *account.Account  `json:"owner"`          // base58
	AssetId     uint64            `json:"assetId,string"` // unique per owner
	Name        string            `json:"name"`           // utf-8
	Description string            `json:"description"`    // utf-8
	AssetType   record.AssetType  `json:"assetType"`      // enum as text
	MetadataUri *string           `json:"metadataUri"`    // optional utf-8
	Signature   account.Signature `json:"signature"`      // hex
}

// IssueTrust - request to attest to an asset under a framework
type IssueTrust struct {
	Issuer     *account.Account  `json:"issuer"`     // base58
	Framework  address.Address   `json:"framework"`  // base58
	Asset      address.Address   `json:"asset"`      // base58
	TrustScore uint64            `json:"trustScore"` // 0..100 accepted by the registry
	Evidence   string            `json:"evidence"`   // utf-8
	ExpiresAt  *int64            `json:"expiresAt"`  // optional unix seconds
	Signature  account.Signature `json:"signature"`  // hex
}

// Caller - the signing principal
func (c *CreateFramework) Caller() *account.Account { return c.Authority }

// Caller - the signing principal
func (u *UpdateFramework) Caller() *account.Account { return u.Authority }

// Caller - the signing principal
func (c *CreateAsset) Caller() *account.Account { return c.Owner }

// Caller - the signing principal
func (i *IssueTrust) Caller() *account.Account { return i.Issuer }

// String - hex of the packed bytes
func (p Packed) String() string {
	return hex.EncodeToString(p)
}

// MarshalText - hex for JSON
func (p Packed) MarshalText() ([]byte, error) {
	b := make([]byte, hex.EncodedLen(len(p)))
	hex.Encode(b, p)
	return b, nil
}

// UnmarshalText - hex from JSON
func (p *Packed) UnmarshalText(s []byte) error {
	buffer := make([]byte, hex.DecodedLen(len(s)))
	byteCount, err := hex.Decode(buffer, s)
	if nil != err {
		return err
	}
	*p = buffer[:byteCount]
	return nil
}
