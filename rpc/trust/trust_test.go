// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package trust_test

import (
	"os"
	"testing"
	"time"

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
	"github.com/bitmark-inc/trustregistry/rpc/mocks"
	"github.com/bitmark-inc/trustregistry/rpc/trust"
)

const logCategory = "trust"

var (
	framework = address.Address{1}
	asset     = address.Address{2}
	now       = time.Unix(1700000000, 0)
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger(logCategory)
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

func newService(ops *mocks.MockOperations) *trust.Trust {
	return trust.New(logger.New(logCategory), ops, func(mode.Mode) bool { return true }, func() bool { return true })
}

func TestIssue(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ops := mocks.NewMockOperations(ctl)
	s := newService(ops)

	expires := now.Unix() + 3600
	arguments := &instruction.IssueTrust{
		Issuer:     fixtures.Issuer.Account(),
		Framework:  framework,
		Asset:      asset,
		TrustScore: 85,
		Evidence:   "verified",
		ExpiresAt:  &expires,
	}
	_, err := instruction.Sign(arguments, fixtures.Issuer)
	if !assert.Nil(t, err, "sign") {
		return
	}

	expected := address.Address{5}
	ops.EXPECT().IssueTrust(arguments.Issuer, registry.TrustArguments{
		Framework:  framework,
		Asset:      asset,
		TrustScore: 85,
		Evidence:   "verified",
		ExpiresAt:  &expires,
	}).Return(expected, nil).Times(1)

	var reply trust.IssueReply
	err = s.Issue(arguments, &reply)
	assert.Nil(t, err, "issue")
	assert.Equal(t, expected, reply.Trust, "trust address")
}

func TestIssueUnsigned(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := newService(mocks.NewMockOperations(ctl))

	arguments := &instruction.IssueTrust{
		Issuer:     fixtures.Issuer.Account(),
		Framework:  framework,
		Asset:      asset,
		TrustScore: 85,
	}

	var reply trust.IssueReply
	err := s.Issue(arguments, &reply)
	assert.Equal(t, fault.InvalidSignature, err, "unsigned")
}

func TestIssueRegistryOrder(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ops := mocks.NewMockOperations(ctl)
	s := newService(ops)

	// out of range score reaches the registry, which reports inactivity first
	arguments := &instruction.IssueTrust{
		Issuer:     fixtures.Issuer.Account(),
		Framework:  framework,
		Asset:      asset,
		TrustScore: 255,
	}
	_, _ = instruction.Sign(arguments, fixtures.Issuer)

	ops.EXPECT().IssueTrust(arguments.Issuer, gomock.Any()).Return(address.Address{}, fault.FrameworkInactive).Times(1)

	var reply trust.IssueReply
	err := s.Issue(arguments, &reply)
	assert.Equal(t, fault.FrameworkInactive, err, "registry error passed through")
}

func TestGet(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ops := mocks.NewMockOperations(ctl)
	s := newService(ops)

	expired := now.Unix()
	at := address.Address{5}
	r := &record.TrustRecord{
		Framework:   framework,
		Issuer:      fixtures.Issuer.Account(),
		TargetAsset: asset,
		TrustScore:  85,
		IsActive:    true,
		IssuedAt:    now.Unix() - 100,
		ExpiresAt:   &expired,
	}
	ops.EXPECT().Trust(at).Return(r, nil).Times(1)
	ops.EXPECT().Now().Return(now).Times(1)

	var reply trust.RecordReply
	err := s.Get(&trust.GetArguments{Trust: at}, &reply)
	assert.Nil(t, err, "get")
	assert.Equal(t, r, reply.Record, "record")
	assert.Equal(t, record.StatusExpired, reply.Status, "expiry equal to now")
}

func TestLookup(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ops := mocks.NewMockOperations(ctl)
	s := newService(ops)

	issuer := fixtures.Issuer.Account()
	at := address.Address{6}
	r := &record.TrustRecord{
		Framework:   framework,
		Issuer:      issuer,
		TargetAsset: asset,
		TrustScore:  60,
		IsActive:    true,
	}
	ops.EXPECT().LookupTrust(framework, issuer, asset).Return(at, r, nil).Times(1)
	ops.EXPECT().Now().Return(now).Times(1)

	var reply trust.RecordReply
	err := s.Lookup(&trust.LookupArguments{Framework: framework, Issuer: issuer, Asset: asset}, &reply)
	assert.Nil(t, err, "lookup")
	assert.Equal(t, at, reply.Trust, "address")
	assert.Equal(t, record.StatusActive, reply.Status, "status")

	ops.EXPECT().LookupTrust(framework, issuer, asset).Return(address.Address{}, nil, fault.TrustNotFound).Times(1)
	err = s.Lookup(&trust.LookupArguments{Framework: framework, Issuer: issuer, Asset: asset}, &reply)
	assert.Equal(t, fault.TrustNotFound, err, "not found")

	err = s.Lookup(&trust.LookupArguments{Framework: framework, Asset: asset}, &reply)
	assert.Equal(t, fault.MissingParameters, err, "no issuer")
}
