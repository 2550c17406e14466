// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package assets

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

// Assets - type for the RPC
type Assets struct {
	Log            *logger.L
	Limiter        *rate.Limiter
	Registry       registry.Operations
	IsNormalMode   func(mode.Mode) bool
	IsTestingChain func() bool
}

const (
	maximumAssets   = 100
	rateLimitAssets = 200
	rateBurstAssets = 100
)

// New - create the asset RPC service
func New(log *logger.L, ops registry.Operations, isNormalMode func(mode.Mode) bool, isTestingChain func() bool) *Assets {
	return &Assets{
		Log:            log,
		Limiter:        rate.NewLimiter(rateLimitAssets, rateBurstAssets),
		Registry:       ops,
		IsNormalMode:   isNormalMode,
		IsTestingChain: isTestingChain,
	}
}

// CreateReply - results from create RPC
type CreateReply struct {
	Asset address.Address `json:"asset"`
}

// Create - RPC to register an asset profile owned by the signer
func (assets *Assets) Create(arguments *instruction.CreateAsset, reply *CreateReply) error {
	if err := ratelimit.Limit(assets.Limiter); nil != err {
		return err
	}
	if !assets.IsNormalMode(mode.Normal) {
		return fault.NotAvailableWhenStopped
	}
	if nil == arguments {
		return fault.MissingParameters
	}

	assets.Log.Infof("Assets.Create: %+v", arguments)

	if _, err := instruction.Authenticate(arguments, assets.IsTestingChain()); nil != err {
		return err
	}

	assetAddress, err := assets.Registry.CreateAsset(arguments.Owner, registry.AssetArguments{
		AssetId:     arguments.AssetId,
		Name:        arguments.Name,
		Description: arguments.Description,
		AssetType:   arguments.AssetType,
		MetadataUri: arguments.MetadataUri,
	})
	if nil != err {
		return err
	}

	reply.Asset = assetAddress
	return nil
}

// GetArguments - arguments for get RPC
type GetArguments struct {
	Addresses []address.Address `json:"addresses"`
}

// GetReply - results from get RPC, null for an unknown address
type GetReply struct {
	Assets []*record.AssetProfile `json:"assets"`
}

// Get - RPC to fetch asset profiles
func (assets *Assets) Get(arguments *GetArguments, reply *GetReply) error {
	if nil == arguments {
		return fault.MissingParameters
	}

	count := len(arguments.Addresses)
	if err := ratelimit.LimitN(assets.Limiter, count, maximumAssets); nil != err {
		return err
	}
	if !assets.IsNormalMode(mode.Normal) {
		return fault.NotAvailableWhenStopped
	}

	assets.Log.Debugf("Assets.Get: %+v", arguments)

	a := make([]*record.AssetProfile, count)
	for i, at := range arguments.Addresses {
		asset, err := assets.Registry.Asset(at)
		if fault.IsErrNotFound(err) {
			continue
		}
		if nil != err {
			return err
		}
		a[i] = asset
	}

	reply.Assets = a
	return nil
}
