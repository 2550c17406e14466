// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/trustregistry/account"
	"github.com/bitmark-inc/trustregistry/command/trust-cli/rpccalls"
)

// open a connection to the configured node
func connect(m *metadata) (*rpccalls.Client, error) {
	return rpccalls.NewClient(m.testnet, m.config.Connect, m.verbose, m.e)
}

// the private key of the selected identity
func signer(c *cli.Context, m *metadata) (*account.PrivateKey, error) {
	name, err := checkName(c.GlobalString("identity"), m.config)
	if nil != err {
		return nil, err
	}

	private, err := unlockIdentity(m, name, c.GlobalString("password"))
	if nil != err {
		return nil, err
	}
	return private.PrivateKey, nil
}
