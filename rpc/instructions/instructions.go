// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instructions

import (
	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/trustregistry/address"
	"github.com/bitmark-inc/trustregistry/fault"
	"github.com/bitmark-inc/trustregistry/instruction"
	"github.com/bitmark-inc/trustregistry/rpc/assets"
	"github.com/bitmark-inc/trustregistry/rpc/frameworks"
	"github.com/bitmark-inc/trustregistry/rpc/trust"
)

// largest packed instruction accepted, well above any valid message
const maximumPackedLength = 65536

// reply types
const (
	CreateFrameworkType = "create_framework"
	UpdateFrameworkType = "update_framework"
	CreateAssetType     = "create_asset"
	IssueTrustType      = "issue_trust"
)

// Instructions - type for the RPC
//
// a packed instruction is dispatched to the service that handles its
// type, that service applies its own rate limit and mode checks
type Instructions struct {
	Log            *logger.L
	IsTestingChain func() bool
	Frameworks     *frameworks.Frameworks
	Assets         *assets.Assets
	Trust          *trust.Trust
}

// New - create the packed instruction RPC service
func New(log *logger.L, isTestingChain func() bool, f *frameworks.Frameworks, a *assets.Assets, t *trust.Trust) *Instructions {
	return &Instructions{
		Log:            log,
		IsTestingChain: isTestingChain,
		Frameworks:     f,
		Assets:         a,
		Trust:          t,
	}
}

// SubmitArguments - a signed instruction in its packed form
type SubmitArguments struct {
	Packed instruction.Packed `json:"packed"` // hex
}

// SubmitReply - the entity that was created or changed
type SubmitReply struct {
	Type    string          `json:"type"`
	Address address.Address `json:"address"`
}

// Submit - RPC to apply a packed instruction
func (instructions *Instructions) Submit(arguments *SubmitArguments, reply *SubmitReply) error {
	if nil == arguments || 0 == len(arguments.Packed) {
		return fault.MissingParameters
	}
	if len(arguments.Packed) > maximumPackedLength {
		return fault.NotInstructionPack
	}

	item, n, err := arguments.Packed.Unpack(instructions.IsTestingChain())
	if nil != err {
		return err
	}
	if n != len(arguments.Packed) {
		return fault.NotInstructionPack
	}

	instructions.Log.Debugf("Instructions.Submit: %T", item)

	switch i := item.(type) {

	case *instruction.CreateFramework:
		var r frameworks.CreateReply
		if err := instructions.Frameworks.Create(i, &r); nil != err {
			return err
		}
		reply.Type = CreateFrameworkType
		reply.Address = r.Framework

	case *instruction.UpdateFramework:
		var r frameworks.UpdateReply
		if err := instructions.Frameworks.Update(i, &r); nil != err {
			return err
		}
		reply.Type = UpdateFrameworkType
		reply.Address = i.Framework

	case *instruction.CreateAsset:
		var r assets.CreateReply
		if err := instructions.Assets.Create(i, &r); nil != err {
			return err
		}
		reply.Type = CreateAssetType
		reply.Address = r.Asset

	case *instruction.IssueTrust:
		var r trust.IssueReply
		if err := instructions.Trust.Issue(i, &r); nil != err {
			return err
		}
		reply.Type = IssueTrustType
		reply.Address = r.Trust

	default:
		return fault.InstructionTypeNotExpected
	}

	return nil
}
