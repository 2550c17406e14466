// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package trust

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/trustregistry/account"
	"github.com/bitmark-inc/trustregistry/address"
	"github.com/bitmark-inc/trustregistry/fault"
	"github.com/bitmark-inc/trustregistry/instruction"
	"github.com/bitmark-inc/trustregistry/mode"
	"github.com/bitmark-inc/trustregistry/record"
	"github.com/bitmark-inc/trustregistry/registry"
	"github.com/bitmark-inc/trustregistry/rpc/ratelimit"
)

const (
	rateLimitTrust = 200
	rateBurstTrust = 100
)

// Trust - type for the RPC
type Trust struct {
	Log            *logger.L
	Limiter        *rate.Limiter
	Registry       registry.Operations
	IsNormalMode   func(mode.Mode) bool
	IsTestingChain func() bool
}

// New - create the trust record RPC service
func New(log *logger.L, ops registry.Operations, isNormalMode func(mode.Mode) bool, isTestingChain func() bool) *Trust {
	return &Trust{
		Log:            log,
		Limiter:        rate.NewLimiter(rateLimitTrust, rateBurstTrust),
		Registry:       ops,
		IsNormalMode:   isNormalMode,
		IsTestingChain: isTestingChain,
	}
}

// IssueReply - result from issue RPC
type IssueReply struct {
	Trust address.Address `json:"trust"`
}

// Issue - RPC for the signer to attest to an asset under a framework
func (trust *Trust) Issue(arguments *instruction.IssueTrust, reply *IssueReply) error {
	if err := ratelimit.Limit(trust.Limiter); nil != err {
		return err
	}
	if !trust.IsNormalMode(mode.Normal) {
		return fault.NotAvailableWhenStopped
	}
	if nil == arguments {
		return fault.MissingParameters
	}

	trust.Log.Infof("Trust.Issue: %+v", arguments)

	if _, err := instruction.Authenticate(arguments, trust.IsTestingChain()); nil != err {
		return err
	}

	trustAddress, err := trust.Registry.IssueTrust(arguments.Issuer, registry.TrustArguments{
		Framework:  arguments.Framework,
		Asset:      arguments.Asset,
		TrustScore: arguments.TrustScore,
		Evidence:   arguments.Evidence,
		ExpiresAt:  arguments.ExpiresAt,
	})
	if nil != err {
		return err
	}

	reply.Trust = trustAddress
	return nil
}

// GetArguments - arguments for get RPC
type GetArguments struct {
	Trust address.Address `json:"trust"`
}

// RecordReply - an attestation with its status at the node's time
type RecordReply struct {
	Trust  address.Address     `json:"trust"`
	Record *record.TrustRecord `json:"record"`
	Status record.Status       `json:"status"`
}

// Get - RPC to fetch a trust record by address
func (trust *Trust) Get(arguments *GetArguments, reply *RecordReply) error {
	if err := ratelimit.Limit(trust.Limiter); nil != err {
		return err
	}
	if !trust.IsNormalMode(mode.Normal) {
		return fault.NotAvailableWhenStopped
	}
	if nil == arguments {
		return fault.MissingParameters
	}

	r, err := trust.Registry.Trust(arguments.Trust)
	if nil != err {
		return err
	}

	reply.Trust = arguments.Trust
	reply.Record = r
	reply.Status = r.Status(trust.Registry.Now())
	return nil
}

// LookupArguments - the triple that determines a record address
type LookupArguments struct {
	Framework address.Address  `json:"framework"`
	Issuer    *account.Account `json:"issuer"`
	Asset     address.Address  `json:"asset"`
}

// Lookup - RPC to find the attestation of an issuer for an asset under a framework
func (trust *Trust) Lookup(arguments *LookupArguments, reply *RecordReply) error {
	if err := ratelimit.Limit(trust.Limiter); nil != err {
		return err
	}
	if !trust.IsNormalMode(mode.Normal) {
		return fault.NotAvailableWhenStopped
	}
	if nil == arguments || nil == arguments.Issuer {
		return fault.MissingParameters
	}

	trustAddress, r, err := trust.Registry.LookupTrust(arguments.Framework, arguments.Issuer, arguments.Asset)
	if nil != err {
		return err
	}

	reply.Trust = trustAddress
	reply.Record = r
	reply.Status = r.Status(trust.Registry.Now())
	return nil
}
