// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"
	"crypto/ed25519"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/trustregistry/fault"
	"github.com/bitmark-inc/trustregistry/util"
)

// enumeration of supported key algorithms
const (
	Nothing = iota // reserved, never valid
	ED25519 = iota

	// end of list (one greater than last item)
	algorithmLimit = iota
)

// miscellaneous constants
const (
	checksumLength = 4

	// bits in key code starting from LSB
	publicKeyCode = 0x01
	testKeyCode   = 0x02

	algorithmShift = 4
)

// Account - base type for a principal
type Account struct {
	AccountInterface
}

// AccountInterface - methods of every account type
type AccountInterface interface {
	KeyType() int
	PublicKeyBytes() []byte
	CheckSignature(message []byte, signature Signature) error
	Bytes() []byte
	String() string
	MarshalText() ([]byte, error)
	IsTesting() bool
	IsZero() bool
}

// ED25519Account - an ed25519 public key
type ED25519Account struct {
	Test      bool
	PublicKey []byte
}

// AccountFromBase58 - decode the checksummed text form of an account
func AccountFromBase58(accountBase58Encoded string) (*Account, error) {
	accountDecoded := util.FromBase58(accountBase58Encoded)
	if 0 == len(accountDecoded) {
		return nil, fault.CannotDecodeAccount
	}

	keyVariant, keyVariantLength := util.FromVarint64(accountDecoded)
	if 0 == keyVariantLength || keyVariant&publicKeyCode != publicKeyCode {
		return nil, fault.NotPublicKey
	}

	if ED25519 != keyVariant>>algorithmShift {
		return nil, fault.InvalidKeyType
	}

	checksumStart := len(accountDecoded) - checksumLength
	if checksumStart-keyVariantLength <= 0 {
		return nil, fault.InvalidKeyLength
	}

	checksum := sha3.Sum256(accountDecoded[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], accountDecoded[checksumStart:]) {
		return nil, fault.ChecksumMismatch
	}

	return AccountFromBytes(accountDecoded[:checksumStart])
}

// AccountFromBytes - decode the binary form: key variant followed by the key
func AccountFromBytes(accountBytes []byte) (*Account, error) {
	keyVariant, keyVariantLength := util.FromVarint64(accountBytes)
	if 0 == keyVariantLength || keyVariant&publicKeyCode != publicKeyCode {
		return nil, fault.NotPublicKey
	}

	if ED25519 != keyVariant>>algorithmShift {
		return nil, fault.InvalidKeyType
	}

	return AccountFromPublicKey(0 != keyVariant&testKeyCode, accountBytes[keyVariantLength:])
}

// AccountFromPublicKey - wrap a raw ed25519 public key as stored in records
func AccountFromPublicKey(testnet bool, publicKey []byte) (*Account, error) {
	if ed25519.PublicKeySize != len(publicKey) {
		return nil, fault.InvalidKeyLength
	}
	key := make([]byte, ed25519.PublicKeySize)
	copy(key, publicKey)

	account := &Account{
		AccountInterface: &ED25519Account{
			Test:      testnet,
			PublicKey: key,
		},
	}
	return account, nil
}

// UnmarshalText - convert the base58 form back to an account
func (account *Account) UnmarshalText(s []byte) error {
	a, err := AccountFromBase58(string(s))
	if nil != err {
		return err
	}
	account.AccountInterface = a.AccountInterface
	return nil
}

// Equal - same principal; the network flag is not part of identity
func (account *Account) Equal(other *Account) bool {
	if nil == account || nil == other || nil == account.AccountInterface || nil == other.AccountInterface {
		return false
	}
	return account.KeyType() == other.KeyType() &&
		bytes.Equal(account.PublicKeyBytes(), other.PublicKeyBytes())
}

// KeyType - see enumeration above
func (account *ED25519Account) KeyType() int {
	return ED25519
}

// PublicKeyBytes - the raw 32 byte key
func (account *ED25519Account) PublicKeyBytes() []byte {
	return account.PublicKey[:]
}

// CheckSignature - verify a detached signature over message
func (account *ED25519Account) CheckSignature(message []byte, signature Signature) error {
	if ed25519.SignatureSize != len(signature) {
		return fault.InvalidSignature
	}
	if !ed25519.Verify(account.PublicKey[:], message, signature) {
		return fault.InvalidSignature
	}
	return nil
}

// Bytes - key variant followed by the key
func (account *ED25519Account) Bytes() []byte {
	keyVariant := byte(ED25519<<algorithmShift) | publicKeyCode
	if account.Test {
		keyVariant |= testKeyCode
	}
	return append([]byte{keyVariant}, account.PublicKey[:]...)
}

// String - base58 of the bytes with a four byte SHA3 checksum
func (account *ED25519Account) String() string {
	buffer := account.Bytes()
	checksum := sha3.Sum256(buffer)
	buffer = append(buffer, checksum[:checksumLength]...)
	return util.ToBase58(buffer)
}

// MarshalText - JSON form is the base58 string
func (account ED25519Account) MarshalText() ([]byte, error) {
	return []byte(account.String()), nil
}

// IsTesting - true for test network keys
func (account ED25519Account) IsTesting() bool {
	return account.Test
}

// IsZero - all zero key, never a real principal
func (account ED25519Account) IsZero() bool {
	for _, b := range account.PublicKey {
		if 0 != b {
			return false
		}
	}
	return true
}
