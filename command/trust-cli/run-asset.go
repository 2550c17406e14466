// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/trustregistry/command/trust-cli/rpccalls"
	"github.com/bitmark-inc/trustregistry/fault"
	"github.com/bitmark-inc/trustregistry/record"
)

func runCreateAsset(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if !c.IsSet("id") {
		return ErrRequiredId
	}
	name := c.String("name")
	if "" == name {
		return ErrRequiredName
	}

	assetType, err := record.AssetTypeFromString(c.String("type"))
	if nil != err {
		return err
	}

	var metadataUri *string
	if c.IsSet("metadata-uri") {
		uri := c.String("metadata-uri")
		metadataUri = &uri
	}

	key, err := signer(c, m)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.CreateAsset(&rpccalls.AssetData{
		Owner:       key,
		AssetId:     c.Uint64("id"),
		Name:        name,
		Description: c.String("description"),
		AssetType:   assetType,
		MetadataUri: metadataUri,
	})
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}

func runAsset(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	assetAddress, err := checkAddress(c.String("address"))
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	asset, err := client.GetAsset(assetAddress)
	if nil != err {
		return err
	}
	if nil == asset {
		return fault.AssetNotFound
	}

	return printJson(m.w, asset)
}
