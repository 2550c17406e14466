// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"
	"crypto/ed25519"
	"crypto/rand"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/trustregistry/fault"
	"github.com/bitmark-inc/trustregistry/util"
)

// PrivateKey - base type for signing keys
type PrivateKey struct {
	PrivateKeyInterface
}

// PrivateKeyInterface - methods of every private key type
type PrivateKeyInterface interface {
	Account() *Account
	KeyType() int
	PrivateKeyBytes() []byte
	Bytes() []byte
	String() string
	IsTesting() bool
	MarshalText() ([]byte, error)
	Sign(message []byte) Signature
}

// ED25519PrivateKey - an ed25519 signing key (seed ++ public key)
type ED25519PrivateKey struct {
	Test       bool
	PrivateKey []byte
}

// NewPrivateKey - generate a fresh ed25519 key for the given network
func NewPrivateKey(testnet bool) (*PrivateKey, error) {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if nil != err {
		return nil, err
	}
	privateKey := &PrivateKey{
		PrivateKeyInterface: &ED25519PrivateKey{
			Test:       testnet,
			PrivateKey: priv,
		},
	}
	return privateKey, nil
}

// PrivateKeyFromSeed - deterministic key from a 32 byte seed
func PrivateKeyFromSeed(testnet bool, seed []byte) (*PrivateKey, error) {
	if ed25519.SeedSize != len(seed) {
		return nil, fault.InvalidKeyLength
	}
	privateKey := &PrivateKey{
		PrivateKeyInterface: &ED25519PrivateKey{
			Test:       testnet,
			PrivateKey: ed25519.NewKeyFromSeed(seed),
		},
	}
	return privateKey, nil
}

// PrivateKeyFromBase58 - decode the checksummed text form of a private key
func PrivateKeyFromBase58(privateKeyBase58Encoded string) (*PrivateKey, error) {
	privateKeyDecoded := util.FromBase58(privateKeyBase58Encoded)
	if 0 == len(privateKeyDecoded) {
		return nil, fault.CannotDecodePrivateKey
	}

	keyVariant, keyVariantLength := util.FromVarint64(privateKeyDecoded)
	if 0 == keyVariantLength || keyVariant&publicKeyCode == publicKeyCode {
		return nil, fault.NotPrivateKey
	}

	checksumStart := len(privateKeyDecoded) - checksumLength
	if checksumStart-keyVariantLength <= 0 {
		return nil, fault.InvalidKeyLength
	}

	checksum := sha3.Sum256(privateKeyDecoded[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], privateKeyDecoded[checksumStart:]) {
		return nil, fault.ChecksumMismatch
	}

	return PrivateKeyFromBytes(privateKeyDecoded[:checksumStart])
}

// PrivateKeyFromBytes - decode the binary form: key variant followed by the key
func PrivateKeyFromBytes(privateKeyBytes []byte) (*PrivateKey, error) {
	keyVariant, keyVariantLength := util.FromVarint64(privateKeyBytes)
	if 0 == keyVariantLength || keyVariant&publicKeyCode == publicKeyCode {
		return nil, fault.NotPrivateKey
	}

	if ED25519 != keyVariant>>algorithmShift {
		return nil, fault.InvalidKeyType
	}

	key := privateKeyBytes[keyVariantLength:]
	if ed25519.PrivateKeySize != len(key) {
		return nil, fault.InvalidKeyLength
	}

	privateKey := &PrivateKey{
		PrivateKeyInterface: &ED25519PrivateKey{
			Test:       0 != keyVariant&testKeyCode,
			PrivateKey: append([]byte{}, key...),
		},
	}
	return privateKey, nil
}

// UnmarshalText - convert the base58 form back to a private key
func (privateKey *PrivateKey) UnmarshalText(s []byte) error {
	p, err := PrivateKeyFromBase58(string(s))
	if nil != err {
		return err
	}
	privateKey.PrivateKeyInterface = p.PrivateKeyInterface
	return nil
}

// IsTesting - true for test network keys
func (privateKey *ED25519PrivateKey) IsTesting() bool {
	return privateKey.Test
}

// KeyType - see enumeration in account.go
func (privateKey *ED25519PrivateKey) KeyType() int {
	return ED25519
}

// Account - the public half
func (privateKey *ED25519PrivateKey) Account() *Account {
	return &Account{
		AccountInterface: &ED25519Account{
			Test:      privateKey.Test,
			PublicKey: privateKey.PrivateKey[ed25519.PrivateKeySize-ed25519.PublicKeySize:],
		},
	}
}

// PrivateKeyBytes - the raw 64 byte key
func (privateKey *ED25519PrivateKey) PrivateKeyBytes() []byte {
	return privateKey.PrivateKey[:]
}

// Bytes - key variant followed by the key
func (privateKey *ED25519PrivateKey) Bytes() []byte {
	keyVariant := byte(ED25519 << algorithmShift)
	if privateKey.Test {
		keyVariant |= testKeyCode
	}
	return append([]byte{keyVariant}, privateKey.PrivateKey[:]...)
}

// String - base58 of the bytes with a four byte SHA3 checksum
func (privateKey *ED25519PrivateKey) String() string {
	buffer := privateKey.Bytes()
	checksum := sha3.Sum256(buffer)
	buffer = append(buffer, checksum[:checksumLength]...)
	return util.ToBase58(buffer)
}

// MarshalText - JSON form is the base58 string
func (privateKey ED25519PrivateKey) MarshalText() ([]byte, error) {
	return []byte(privateKey.String()), nil
}

// Sign - detached ed25519 signature
func (privateKey *ED25519PrivateKey) Sign(message []byte) Signature {
	return ed25519.Sign(privateKey.PrivateKey, message)
}
