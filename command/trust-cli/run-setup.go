// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/trustregistry/command/trust-cli/configuration"
	"github.com/bitmark-inc/trustregistry/fault"
)

func runSetup(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name, err := checkName(c.GlobalString("identity"), nil)
	if nil != err {
		return err
	}

	connect, err := checkConnect(c.String("connect"))
	if nil != err {
		return err
	}

	description, err := checkDescription(c.String("description"))
	if nil != err {
		return err
	}

	privateKey, err := checkPrivateKey(c.String("private-key"), m.testnet)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "config: %s\n", m.file)
		fmt.Fprintf(m.e, "testnet: %t\n", m.testnet)
		fmt.Fprintf(m.e, "connect: %s\n", connect)
		fmt.Fprintf(m.e, "identity: %s\n", name)
		fmt.Fprintf(m.e, "description: %s\n", description)
	}

	// create the folder hierarchy for configuration if not existing
	configDir := path.Dir(m.file)
	d, err := checkFileExists(configDir)
	if nil != err {
		if err := os.MkdirAll(configDir, 0o750); nil != err {
			return err
		}
	} else if !d {
		return fmt.Errorf("path: %q is not a directory", configDir)
	}

	config := &configuration.Configuration{
		DefaultIdentity: name,
		TestNet:         m.testnet,
		Connect:         connect,
		Identities:      make(map[string]configuration.Identity),
	}

	password := c.GlobalString("password")
	if "" == password {
		password, err = promptNewPassword(m.e)
		if nil != err {
			return err
		}
	}

	err = config.AddIdentity(name, description, privateKey, password)
	if nil != err {
		return err
	}

	m.config = config
	m.save = true

	fmt.Fprintf(m.w, "account: %s\n", privateKey.Account())
	return nil
}

func runAdd(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name := c.GlobalString("identity")
	if "" == name {
		return ErrRequiredIdentity
	}

	description, err := checkDescription(c.String("description"))
	if nil != err {
		return err
	}

	key := c.String("private-key")
	generate := c.Bool("new")
	acc := c.String("account")

	if m.verbose {
		fmt.Fprintf(m.e, "identity: %s\n", name)
		fmt.Fprintf(m.e, "description: %s\n", description)
		fmt.Fprintf(m.e, "account: %s\n", acc)
		fmt.Fprintf(m.e, "new: %t\n", generate)
	}

	switch {
	case "" == acc && ("" != key) != generate:
		privateKey, err := checkPrivateKey(key, m.testnet)
		if nil != err {
			return err
		}

		password := c.GlobalString("password")
		if "" == password {
			password, err = promptNewPassword(m.e)
			if nil != err {
				return err
			}
		}

		err = m.config.AddIdentity(name, description, privateKey, password)
		if nil != err {
			return err
		}
		fmt.Fprintf(m.w, "account: %s\n", privateKey.Account())

	case "" != acc && "" == key && !generate:
		err = m.config.AddReceiveOnlyIdentity(name, description, acc)
		if nil != err {
			return err
		}

	default:
		return fault.IncompatibleOptions
	}

	// require configuration update
	m.save = true
	return nil
}

type identityInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Account     string `json:"account"`
	Default     bool   `json:"default"`
	CanSign     bool   `json:"can_sign"`
}

func runList(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	list := make([]identityInfo, 0, len(m.config.Identities))
	for _, name := range m.config.Names() {
		id := m.config.Identities[name]
		list = append(list, identityInfo{
			Name:        name,
			Description: id.Description,
			Account:     id.Account,
			Default:     name == m.config.DefaultIdentity,
			CanSign:     "" != id.Data,
		})
	}

	return printJson(m.w, list)
}
