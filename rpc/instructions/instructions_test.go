// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instructions_test

import (
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/trustregistry/address"
	"github.com/bitmark-inc/trustregistry/fault"
	"github.com/bitmark-inc/trustregistry/fixtures"
	"github.com/bitmark-inc/trustregistry/instruction"
	"github.com/bitmark-inc/trustregistry/mode"
	"github.com/bitmark-inc/trustregistry/record"
	"github.com/bitmark-inc/trustregistry/registry"
	"github.com/bitmark-inc/trustregistry/rpc/assets"
	"github.com/bitmark-inc/trustregistry/rpc/frameworks"
	"github.com/bitmark-inc/trustregistry/rpc/instructions"
	"github.com/bitmark-inc/trustregistry/rpc/mocks"
	"github.com/bitmark-inc/trustregistry/rpc/trust"
)

const logCategory = "instructions"

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger(logCategory)
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

func normal(mode.Mode) bool { return true }

func newService(ops *mocks.MockOperations, testnet bool) *instructions.Instructions {
	log := logger.New(logCategory)
	isTesting := func() bool { return testnet }
	return instructions.New(
		log,
		isTesting,
		frameworks.New(log, ops, normal, isTesting),
		assets.New(log, ops, normal, isTesting),
		trust.New(log, ops, normal, isTesting),
	)
}

func TestSubmitCreateFramework(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ops := mocks.NewMockOperations(ctl)
	s := newService(ops, true)

	item := &instruction.CreateFramework{
		Authority:   fixtures.Authority.Account(),
		FrameworkId: 1,
		Name:        "KYC",
		Criteria:    []string{"id_check"},
	}
	packed, err := instruction.Sign(item, fixtures.Authority)
	if !assert.Nil(t, err, "sign") {
		return
	}

	expected := address.Address{1}
	ops.EXPECT().CreateFramework(gomock.Any(), registry.FrameworkArguments{
		FrameworkId: 1,
		Name:        "KYC",
		Criteria:    []string{"id_check"},
	}).Return(expected, nil).Times(1)

	var reply instructions.SubmitReply
	err = s.Submit(&instructions.SubmitArguments{Packed: packed}, &reply)
	assert.Nil(t, err, "submit")
	assert.Equal(t, instructions.CreateFrameworkType, reply.Type, "type")
	assert.Equal(t, expected, reply.Address, "address")
}

func TestSubmitIssueTrust(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ops := mocks.NewMockOperations(ctl)
	s := newService(ops, true)

	expires := fixtures.Now.Unix() + 60
	item := &instruction.IssueTrust{
		Issuer:     fixtures.Issuer.Account(),
		Framework:  address.Address{1},
		Asset:      address.Address{2},
		TrustScore: 85,
		Evidence:   "verified",
		ExpiresAt:  &expires,
	}
	packed, err := instruction.Sign(item, fixtures.Issuer)
	if !assert.Nil(t, err, "sign") {
		return
	}

	expected := address.Address{3}
	ops.EXPECT().IssueTrust(gomock.Any(), registry.TrustArguments{
		Framework:  address.Address{1},
		Asset:      address.Address{2},
		TrustScore: 85,
		Evidence:   "verified",
		ExpiresAt:  &expires,
	}).Return(expected, nil).Times(1)

	var reply instructions.SubmitReply
	err = s.Submit(&instructions.SubmitArguments{Packed: packed}, &reply)
	assert.Nil(t, err, "submit")
	assert.Equal(t, instructions.IssueTrustType, reply.Type, "type")
	assert.Equal(t, expected, reply.Address, "address")
}

func TestSubmitCreateAsset(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ops := mocks.NewMockOperations(ctl)
	s := newService(ops, true)

	item := &instruction.CreateAsset{
		Owner:     fixtures.Owner.Account(),
		AssetId:   7,
		Name:      "Acme",
		AssetType: record.Business,
	}
	packed, err := instruction.Sign(item, fixtures.Owner)
	if !assert.Nil(t, err, "sign") {
		return
	}

	expected := address.Address{7}
	ops.EXPECT().CreateAsset(gomock.Any(), gomock.Any()).Return(expected, nil).Times(1)

	var reply instructions.SubmitReply
	err = s.Submit(&instructions.SubmitArguments{Packed: packed}, &reply)
	assert.Nil(t, err, "submit")
	assert.Equal(t, instructions.CreateAssetType, reply.Type, "type")
	assert.Equal(t, expected, reply.Address, "address")
}

// the update path keeps its timestamp window and single use
func TestSubmitUpdateOnce(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ops := mocks.NewMockOperations(ctl)
	s := newService(ops, true)

	inactive := false
	item := &instruction.UpdateFramework{
		Authority: fixtures.Authority.Account(),
		Framework: address.Address{4},
		Bump:      254,
		Timestamp: fixtures.Now.Unix(),
		IsActive:  &inactive,
	}
	packed, err := instruction.Sign(item, fixtures.Authority)
	if !assert.Nil(t, err, "sign") {
		return
	}

	ops.EXPECT().Now().Return(fixtures.Now).Times(2)
	ops.EXPECT().UpdateFramework(gomock.Any(), address.Address{4}, uint8(254), registry.FrameworkUpdate{IsActive: &inactive}).Return(nil).Times(1)
	ops.EXPECT().Framework(address.Address{4}).Return(&record.TrustFramework{}, nil).Times(1)

	var reply instructions.SubmitReply
	err = s.Submit(&instructions.SubmitArguments{Packed: packed}, &reply)
	assert.Nil(t, err, "first submit")
	assert.Equal(t, instructions.UpdateFrameworkType, reply.Type, "type")
	assert.Equal(t, address.Address{4}, reply.Address, "address")

	err = s.Submit(&instructions.SubmitArguments{Packed: packed}, &reply)
	assert.Equal(t, fault.InstructionAlreadySeen, err, "second submit")
}

func TestSubmitRejected(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	// the registry must never be reached
	ops := mocks.NewMockOperations(ctl)
	s := newService(ops, true)
	live := newService(ops, false)

	item := &instruction.CreateFramework{
		Authority:   fixtures.Authority.Account(),
		FrameworkId: 1,
		Name:        "KYC",
	}
	packed, err := instruction.Sign(item, fixtures.Authority)
	if !assert.Nil(t, err, "sign") {
		return
	}

	trailing := append(append(instruction.Packed{}, packed...), 0)

	unsigned := append(instruction.Packed{}, packed...)
	unsigned[len(unsigned)-1] ^= 0xff

	var reply instructions.SubmitReply

	err = s.Submit(nil, &reply)
	assert.Equal(t, fault.MissingParameters, err, "nil arguments")

	err = s.Submit(&instructions.SubmitArguments{}, &reply)
	assert.Equal(t, fault.MissingParameters, err, "empty packed")

	err = s.Submit(&instructions.SubmitArguments{Packed: instruction.Packed{0x7f, 0x01}}, &reply)
	assert.Equal(t, fault.NotInstructionPack, err, "unknown tag")

	err = s.Submit(&instructions.SubmitArguments{Packed: trailing}, &reply)
	assert.Equal(t, fault.NotInstructionPack, err, "trailing bytes")

	err = s.Submit(&instructions.SubmitArguments{Packed: unsigned}, &reply)
	assert.Equal(t, fault.InvalidSignature, err, "corrupt signature")

	err = live.Submit(&instructions.SubmitArguments{Packed: packed}, &reply)
	assert.Equal(t, fault.WrongNetworkForPublicKey, err, "testnet key on live node")
}
