// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"time"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/trustregistry/command/trust-cli/rpccalls"
)

func runIssue(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	frameworkAddress, err := checkAddress(c.String("framework"))
	if nil != err {
		return err
	}
	assetAddress, err := checkAddress(c.String("asset"))
	if nil != err {
		return err
	}
	if !c.IsSet("score") {
		return ErrRequiredScore
	}

	// the node decides validity against its own clock
	var expiresAt *int64
	if c.IsSet("expires-in") {
		expires := time.Now().Add(c.Duration("expires-in")).Unix()
		expiresAt = &expires
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

	reply, err := client.IssueTrust(&rpccalls.TrustData{
		Issuer:     key,
		Framework:  frameworkAddress,
		Asset:      assetAddress,
		TrustScore: c.Uint64("score"),
		Evidence:   c.String("evidence"),
		ExpiresAt:  expiresAt,
	})
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}

func runTrust(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	trustAddress, err := checkAddress(c.String("address"))
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.GetTrust(trustAddress)
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}

func runLookup(c *cli.Context) error {

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

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.LookupTrust(frameworkAddress, issuer, assetAddress)
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}
