// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/trustregistry/address"
	"github.com/bitmark-inc/trustregistry/record"
)

type derivedAddress struct {
	Address address.Address `json:"address"`
	Bump    uint8           `json:"bump"`
}

func runDeriveFramework(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if !c.IsSet("id") {
		return ErrRequiredId
	}
	authority, err := checkAccount(orIdentity(c, "authority"), m.config)
	if nil != err {
		return err
	}

	a, bump, err := record.FrameworkAddress(authority, c.Uint64("id"))
	if nil != err {
		return err
	}
	return printJson(m.w, derivedAddress{Address: a, Bump: bump})
}

func runDeriveAsset(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if !c.IsSet("id") {
		return ErrRequiredId
	}
	owner, err := checkAccount(orIdentity(c, "owner"), m.config)
	if nil != err {
		return err
	}

	a, bump, err := record.AssetAddress(owner, c.Uint64("id"))
	if nil != err {
		return err
	}
	return printJson(m.w, derivedAddress{Address: a, Bump: bump})
}

func runDeriveTrust(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	frameworkAddress, err := checkAddress(c.String("framework"))
	if nil != err {
		return err
	}
	assetAddress, err := checkAddress(c.String("asset"))
	if nil != err {
		return err
	}
	issuer, err := checkAccount(orIdentity(c, "issuer"), m.config)
	if nil != err {
		return err
	}

	a, bump, err := record.TrustAddress(frameworkAddress, issuer, assetAddress)
	if nil != err {
		return err
	}
	return printJson(m.w, derivedAddress{Address: a, Bump: bump})
}

// a flag value, otherwise the selected identity
func orIdentity(c *cli.Context, flag string) string {
	if s := c.String(flag); "" != s {
		return s
	}
	return c.GlobalString("identity")
}
