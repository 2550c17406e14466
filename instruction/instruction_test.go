// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instruction_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/trustregistry/account"
	"github.com/bitmark-inc/trustregistry/address"
	"github.com/bitmark-inc/trustregistry/fault"
	"github.com/bitmark-inc/trustregistry/instruction"
	"github.com/bitmark-inc/trustregistry/record"
)

func makeKey(t *testing.T, testnet bool, fill byte) *account.PrivateKey {
	key, err := account.PrivateKeyFromSeed(testnet, bytes.Repeat([]byte{fill}, 32))
	if nil != err {
		t.Fatalf("private key: %s", err)
	}
	return key
}

// sign the way a client does: pack unsigned, sign the returned message, pack again
func signAndPack(t *testing.T, inst instruction.Instruction, key *account.PrivateKey, setSignature func(account.Signature)) instruction.Packed {
	message, err := inst.Pack(key.Account())
	if fault.InvalidSignature != err {
		t.Fatalf("unsigned pack: expected invalid signature, got: %v", err)
	}
	setSignature(key.Sign(message))

	packed, err := inst.Pack(key.Account())
	if nil != err {
		t.Fatalf("signed pack: %s", err)
	}
	return packed
}

func TestCreateFramework(t *testing.T) {
	key := makeKey(t, true, 0x11)
	c := &instruction.CreateFramework{
		Authority:   key.Account(),
		FrameworkId: 1,
		Name:        "KYC",
		Description: "know your customer",
		Criteria:    []string{"id_check", ""},
	}
	packed := signAndPack(t, c, key, func(s account.Signature) { c.Signature = s })

	result, n, err := packed.Unpack(true)
	if !assert.Nil(t, err, "unpack") {
		return
	}
	assert.Equal(t, len(packed), n, "consumed")

	unpacked, ok := result.(*instruction.CreateFramework)
	if !assert.True(t, ok, "type") {
		return
	}
	assert.Equal(t, c.FrameworkId, unpacked.FrameworkId, "id")
	assert.Equal(t, c.Name, unpacked.Name, "name")
	assert.Equal(t, c.Description, unpacked.Description, "description")
	assert.Equal(t, c.Criteria, unpacked.Criteria, "criteria")
	assert.Equal(t, c.Signature, unpacked.Signature, "signature")
	assert.True(t, key.Account().Equal(unpacked.Caller()), "caller")

	repacked, err := unpacked.Pack(unpacked.Caller())
	assert.Nil(t, err, "repack")
	assert.Equal(t, packed, repacked, "repacked bytes")
}

func TestUpdateFrameworkSparse(t *testing.T) {
	key := makeKey(t, true, 0x12)
	inactive := false
	u := &instruction.UpdateFramework{
		Authority: key.Account(),
		Framework: address.Address{9, 9, 9},
		Bump:      253,
		Timestamp: -1,
		IsActive:  &inactive,
	}
	packed := signAndPack(t, u, key, func(s account.Signature) { u.Signature = s })

	result, _, err := packed.Unpack(true)
	if !assert.Nil(t, err, "unpack") {
		return
	}
	unpacked := result.(*instruction.UpdateFramework)
	assert.Nil(t, unpacked.Name, "name absent")
	assert.Nil(t, unpacked.Description, "description absent")
	assert.Nil(t, unpacked.Criteria, "criteria absent")
	if assert.NotNil(t, unpacked.IsActive, "is active present") {
		assert.False(t, *unpacked.IsActive, "is active value")
	}
	assert.Equal(t, u.Framework, unpacked.Framework, "framework")
	assert.Equal(t, u.Bump, unpacked.Bump, "bump")
	assert.Equal(t, int64(-1), unpacked.Timestamp, "timestamp")

	// an empty criteria list is present, not absent
	empty := []string{}
	u2 := &instruction.UpdateFramework{
		Authority: key.Account(),
		Framework: u.Framework,
		Bump:      u.Bump,
		Criteria:  &empty,
	}
	packed = signAndPack(t, u2, key, func(s account.Signature) { u2.Signature = s })
	result, _, err = packed.Unpack(true)
	if !assert.Nil(t, err, "unpack empty criteria") {
		return
	}
	unpacked = result.(*instruction.UpdateFramework)
	if assert.NotNil(t, unpacked.Criteria, "criteria present") {
		assert.Equal(t, 0, len(*unpacked.Criteria), "criteria empty")
	}
}

func TestCreateAsset(t *testing.T) {
	key := makeKey(t, false, 0x13)
	uri := "https://example.com/acme.json"
	c := &instruction.CreateAsset{
		Owner:       key.Account(),
		AssetId:     7,
		Name:        "Acme",
		AssetType:   record.Business,
		MetadataUri: &uri,
	}
	packed := signAndPack(t, c, key, func(s account.Signature) { c.Signature = s })

	result, _, err := packed.Unpack(false)
	if !assert.Nil(t, err, "unpack") {
		return
	}
	unpacked := result.(*instruction.CreateAsset)
	assert.Equal(t, record.Business, unpacked.AssetType, "asset type")
	if assert.NotNil(t, unpacked.MetadataUri, "uri") {
		assert.Equal(t, uri, *unpacked.MetadataUri, "uri")
	}

	_, _, err = packed.Unpack(true)
	assert.Equal(t, fault.WrongNetworkForPublicKey, err, "wrong network")
}

func TestIssueTrust(t *testing.T) {
	key := makeKey(t, true, 0x14)
	expires := int64(-1)
	i := &instruction.IssueTrust{
		Issuer:     key.Account(),
		Framework:  address.Address{1},
		Asset:      address.Address{2},
		TrustScore: 101,
		Evidence:   "verified",
		ExpiresAt:  &expires,
	}
	packed := signAndPack(t, i, key, func(s account.Signature) { i.Signature = s })

	result, _, err := packed.Unpack(true)
	if !assert.Nil(t, err, "unpack") {
		return
	}
	unpacked := result.(*instruction.IssueTrust)
	assert.Equal(t, uint64(101), unpacked.TrustScore, "score is not bounded in transport")
	if assert.NotNil(t, unpacked.ExpiresAt, "expiry") {
		assert.Equal(t, expires, *unpacked.ExpiresAt, "negative expiry")
	}
}

func TestSignatureFromOtherKey(t *testing.T) {
	key := makeKey(t, true, 0x15)
	other := makeKey(t, true, 0x16)
	c := &instruction.CreateFramework{
		Authority: key.Account(),
		Name:      "KYC",
	}
	message, err := c.Pack(key.Account())
	assert.Equal(t, fault.InvalidSignature, err, "unsigned")

	c.Signature = other.Sign(message)
	_, err = c.Pack(key.Account())
	assert.Equal(t, fault.InvalidSignature, err, "signed by other key")

	c.Authority = nil
	_, err = c.Pack(key.Account())
	assert.Equal(t, fault.MissingCaller, err, "no caller")
}

func TestUnpackCorrupt(t *testing.T) {
	_, _, err := instruction.Packed{}.Unpack(true)
	assert.Equal(t, fault.NotInstructionPack, err, "empty")

	_, _, err = instruction.Packed{0x7f}.Unpack(true)
	assert.Equal(t, fault.NotInstructionPack, err, "unknown tag")

	key := makeKey(t, true, 0x17)
	c := &instruction.CreateFramework{
		Authority: key.Account(),
		Name:      "KYC",
	}
	packed := signAndPack(t, c, key, func(s account.Signature) { c.Signature = s })

	_, _, err = packed[:len(packed)-10].Unpack(true)
	assert.Equal(t, fault.NotInstructionPack, err, "truncated")
}

func TestSign(t *testing.T) {
	key := makeKey(t, true, 0x15)
	i := &instruction.IssueTrust{
		Issuer:     key.Account(),
		Framework:  address.Address{1},
		Asset:      address.Address{2},
		TrustScore: 40,
	}
	packed, err := instruction.Sign(i, key)
	if !assert.Nil(t, err, "sign") {
		return
	}
	assert.NotEqual(t, 0, len(i.Signature), "signature stored")

	again, err := i.Pack(key.Account())
	assert.Nil(t, err, "pack signed")
	assert.Equal(t, packed, again, "same message")
}

func TestAuthenticate(t *testing.T) {
	key := makeKey(t, true, 0x16)
	c := &instruction.CreateAsset{
		Owner:     key.Account(),
		AssetId:   7,
		Name:      "Acme",
		AssetType: record.Business,
	}

	_, err := instruction.Authenticate(c, true)
	assert.Equal(t, fault.InvalidSignature, err, "unsigned")

	_, err = instruction.Sign(c, key)
	if !assert.Nil(t, err, "sign") {
		return
	}

	_, err = instruction.Authenticate(c, true)
	assert.Nil(t, err, "signed")

	_, err = instruction.Authenticate(c, false)
	assert.Equal(t, fault.WrongNetworkForPublicKey, err, "live node")

	// a signature made by another key under the caller's name
	other := makeKey(t, true, 0x17)
	c.Owner = other.Account()
	_, err = instruction.Authenticate(c, true)
	assert.Equal(t, fault.InvalidSignature, err, "impersonation")

	_, err = instruction.Authenticate(&instruction.CreateAsset{}, true)
	assert.Equal(t, fault.MissingCaller, err, "no caller")
}
