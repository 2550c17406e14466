// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/trustregistry/account"
	"github.com/bitmark-inc/trustregistry/address"
	"github.com/bitmark-inc/trustregistry/instruction"
	"github.com/bitmark-inc/trustregistry/record"
	"github.com/bitmark-inc/trustregistry/rpc/assets"
)

// AssetData - fields for a new asset profile
type AssetData struct {
	Owner       *account.PrivateKey
	AssetId     uint64
	Name        string
	Description string
	AssetType   record.AssetType
	MetadataUri *string
}

// CreateAsset - sign and send a create asset request
func (client *Client) CreateAsset(data *AssetData) (*assets.CreateReply, error) {

	item := &instruction.CreateAsset{
		Owner:       data.Owner.Account(),
		AssetId:     data.AssetId,
		Name:        data.Name,
		Description: data.Description,
		AssetType:   data.AssetType,
		MetadataUri: data.MetadataUri,
	}
	if err := client.sign(item, data.Owner); nil != err {
		return nil, err
	}

	var reply assets.CreateReply
	if err := client.call("Assets.Create", "Create Asset", item, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// GetAsset - fetch a single asset profile, nil if unknown
func (client *Client) GetAsset(asset address.Address) (*record.AssetProfile, error) {

	arguments := assets.GetArguments{
		Addresses: []address.Address{asset},
	}

	var reply assets.GetReply
	if err := client.call("Assets.Get", "Get Asset", &arguments, &reply); nil != err {
		return nil, err
	}
	if 1 != len(reply.Assets) {
		return nil, nil
	}
	return reply.Assets[0], nil
}
