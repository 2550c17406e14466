// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"encoding/hex"

	"filippo.io/edwards25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/trustregistry/fault"
	"github.com/bitmark-inc/trustregistry/util"
)

// miscellaneous constants
const (
	Length        = 32 // bytes in an address
	MaxSeeds      = 16 // number of seeds excluding the bump
	MaxSeedLength = 32 // bytes in a single seed
)

// appended after the bump so derived addresses cannot collide with
// hashes produced for any other purpose
var domainMarker = []byte("trustregistry:derived-address")

// Address - a derived storage location
type Address [Length]byte

// CreateAddress - hash the seeds with a specific bump
func CreateAddress(seeds [][]byte, bump uint8) (Address, error) {
	if len(seeds) > MaxSeeds {
		return Address{}, fault.TooManySeeds
	}

	hasher := sha3.New256()
	for _, seed := range seeds {
		if len(seed) > MaxSeedLength {
			return Address{}, fault.MaxSeedLengthExceeded
		}
		hasher.Write(seed)
	}
	hasher.Write([]byte{bump})
	hasher.Write(domainMarker)

	var address Address
	copy(address[:], hasher.Sum(nil))

	if isOnCurve(address[:]) {
		return Address{}, fault.AddressOnCurve
	}
	return address, nil
}

// FindAddress - the canonical address and bump for a seed list
func FindAddress(seeds [][]byte) (Address, uint8, error) {
	for bump := 255; bump >= 0; bump -= 1 {
		address, err := CreateAddress(seeds, uint8(bump))
		switch err {
		case nil:
			return address, uint8(bump), nil
		case fault.AddressOnCurve:
			continue
		default:
			return Address{}, 0, err
		}
	}
	return Address{}, 0, fault.NoViableBump
}

// Verify - check that address and bump are the canonical derivation of seeds
func Verify(seeds [][]byte, address Address, bump uint8) error {
	expected, expectedBump, err := FindAddress(seeds)
	if nil != err {
		return err
	}
	if expected != address || expectedBump != bump {
		return fault.AddressMismatch
	}
	return nil
}

// true if the bytes are a valid compressed ed25519 point
func isOnCurve(b []byte) bool {
	_, err := new(edwards25519.Point).SetBytes(b)
	return nil == err
}

// FromBytes - convert a 32 byte slice
func FromBytes(buffer []byte) (Address, error) {
	var address Address
	if Length != len(buffer) {
		return address, fault.CannotDecodeAddress
	}
	copy(address[:], buffer)
	return address, nil
}

// FromBase58 - convert the text form
func FromBase58(s string) (Address, error) {
	return FromBytes(util.FromBase58(s))
}

// Bytes - the address as a slice
func (address Address) Bytes() []byte {
	return address[:]
}

// IsZero - unset address
func (address Address) IsZero() bool {
	return Address{} == address
}

// String - base58 for %s
func (address Address) String() string {
	return util.ToBase58(address[:])
}

// GoString - tagged hex for %#v
func (address Address) GoString() string {
	return "<address:" + hex.EncodeToString(address[:]) + ">"
}

// MarshalText - base58 for JSON
func (address Address) MarshalText() ([]byte, error) {
	return []byte(address.String()), nil
}

// UnmarshalText - base58 from JSON
func (address *Address) UnmarshalText(s []byte) error {
	a, err := FromBase58(string(s))
	if nil != err {
		return err
	}
	*address = a
	return nil
}
