// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package frameworks

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/trustregistry/address"
	"github.com/bitmark-inc/trustregistry/fault"
	"github.com/bitmark-inc/trustregistry/instruction"
	"github.com/bitmark-inc/trustregistry/mode"
	"github.com/bitmark-inc/trustregistry/record"
	"github.com/bitmark-inc/trustregistry/registry"
	"github.com/bitmark-inc/trustregistry/rpc/ratelimit"
)

const (
	maximumFrameworks   = 100
	rateLimitFrameworks = 200
	rateBurstFrameworks = 100
)

// Frameworks - type for the RPC
type Frameworks struct {
	Log            *logger.L
	Limiter        *rate.Limiter
	Registry       registry.Operations
	IsNormalMode   func(mode.Mode) bool
	IsTestingChain func() bool
	replay         *replayGuard
}

// New - create the framework RPC service
func New(log *logger.L, ops registry.Operations, isNormalMode func(mode.Mode) bool, isTestingChain func() bool) *Frameworks {
	return &Frameworks{
		Log:            log,
		Limiter:        rate.NewLimiter(rateLimitFrameworks, rateBurstFrameworks),
		Registry:       ops,
		IsNormalMode:   isNormalMode,
		IsTestingChain: isTestingChain,
		replay:         newReplayGuard(UpdateWindow),
	}
}

// CreateReply - result from create RPC
type CreateReply struct {
	Framework address.Address `json:"framework"`
}

// Create - RPC to create a trust framework owned by the signer
func (frameworks *Frameworks) Create(arguments *instruction.CreateFramework, reply *CreateReply) error {
	if err := ratelimit.Limit(frameworks.Limiter); nil != err {
		return err
	}
	if !frameworks.IsNormalMode(mode.Normal) {
		return fault.NotAvailableWhenStopped
	}
	if nil == arguments {
		return fault.MissingParameters
	}

	frameworks.Log.Infof("Frameworks.Create: %+v", arguments)

	if _, err := instruction.Authenticate(arguments, frameworks.IsTestingChain()); nil != err {
		return err
	}

	frameworkAddress, err := frameworks.Registry.CreateFramework(arguments.Authority, registry.FrameworkArguments{
		FrameworkId: arguments.FrameworkId,
		Name:        arguments.Name,
		Description: arguments.Description,
		Criteria:    arguments.Criteria,
	})
	if nil != err {
		return err
	}

	reply.Framework = frameworkAddress
	return nil
}

// UpdateReply - the framework after the update
type UpdateReply struct {
	Framework *record.TrustFramework `json:"framework"`
}

// Update - RPC for the authority to change a framework
func (frameworks *Frameworks) Update(arguments *instruction.UpdateFramework, reply *UpdateReply) error {
	if err := ratelimit.Limit(frameworks.Limiter); nil != err {
		return err
	}
	if !frameworks.IsNormalMode(mode.Normal) {
		return fault.NotAvailableWhenStopped
	}
	if nil == arguments {
		return fault.MissingParameters
	}

	frameworks.Log.Infof("Frameworks.Update: %+v", arguments)

	if _, err := instruction.Authenticate(arguments, frameworks.IsTestingChain()); nil != err {
		return err
	}

	// a signed update is accepted once, close to the time it was signed
	if err := frameworks.replay.admit(arguments.Timestamp, frameworks.Registry.Now(), arguments.Signature); nil != err {
		frameworks.Log.Warnf("framework: %s update rejected: %s", arguments.Framework, err)
		return err
	}

	err := frameworks.Registry.UpdateFramework(arguments.Authority, arguments.Framework, arguments.Bump, registry.FrameworkUpdate{
		Name:        arguments.Name,
		Description: arguments.Description,
		Criteria:    arguments.Criteria,
		IsActive:    arguments.IsActive,
	})
	if nil != err {
		return err
	}

	framework, err := frameworks.Registry.Framework(arguments.Framework)
	if nil != err {
		return err
	}

	reply.Framework = framework
	return nil
}

// GetArguments - arguments for get RPC
type GetArguments struct {
	Addresses []address.Address `json:"addresses"`
}

// GetReply - results from get RPC, null for an unknown address
type GetReply struct {
	Frameworks []*record.TrustFramework `json:"frameworks"`
}

// Get - RPC to fetch frameworks
func (frameworks *Frameworks) Get(arguments *GetArguments, reply *GetReply) error {
	if nil == arguments {
		return fault.MissingParameters
	}

	count := len(arguments.Addresses)
	if err := ratelimit.LimitN(frameworks.Limiter, count, maximumFrameworks); nil != err {
		return err
	}
	if !frameworks.IsNormalMode(mode.Normal) {
		return fault.NotAvailableWhenStopped
	}

	frameworks.Log.Debugf("Frameworks.Get: %+v", arguments)

	f := make([]*record.TrustFramework, count)
	for i, at := range arguments.Addresses {
		framework, err := frameworks.Registry.Framework(at)
		if fault.IsErrNotFound(err) {
			continue
		}
		if nil != err {
			return err
		}
		f[i] = framework
	}

	reply.Frameworks = f
	return nil
}
