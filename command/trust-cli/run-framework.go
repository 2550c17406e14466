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

func runCreateFramework(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if !c.IsSet("id") {
		return ErrRequiredId
	}
	name := c.String("name")
	if "" == name {
		return ErrRequiredName
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

	reply, err := client.CreateFramework(&rpccalls.FrameworkData{
		Authority:   key,
		FrameworkId: c.Uint64("id"),
		Name:        name,
		Description: c.String("description"),
		Criteria:    c.StringSlice("criterion"),
	})
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}

func runUpdateFramework(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if !c.IsSet("id") {
		return ErrRequiredId
	}

	key, err := signer(c, m)
	if nil != err {
		return err
	}

	frameworkAddress, bump, err := record.FrameworkAddress(key.Account(), c.Uint64("id"))
	if nil != err {
		return err
	}

	data := &rpccalls.FrameworkUpdateData{
		Authority: key,
		Framework: frameworkAddress,
		Bump:      bump,
	}

	if c.IsSet("name") {
		name := c.String("name")
		data.Name = &name
	}
	if c.IsSet("description") {
		description := c.String("description")
		data.Description = &description
	}

	criteria := c.StringSlice("criterion")
	switch {
	case c.Bool("clear-criteria") && 0 != len(criteria):
		return fault.IncompatibleOptions
	case c.Bool("clear-criteria"):
		empty := []string{}
		data.Criteria = &empty
	case 0 != len(criteria):
		data.Criteria = &criteria
	}

	switch {
	case c.Bool("activate") && c.Bool("deactivate"):
		return fault.IncompatibleOptions
	case c.Bool("activate"):
		active := true
		data.IsActive = &active
	case c.Bool("deactivate"):
		active := false
		data.IsActive = &active
	}

	if nil == data.Name && nil == data.Description && nil == data.Criteria && nil == data.IsActive {
		return ErrNothingToUpdate
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.UpdateFramework(data)
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}

func runFramework(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	frameworkAddress, err := checkAddress(c.String("address"))
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	framework, err := client.GetFramework(frameworkAddress)
	if nil != err {
		return err
	}
	if nil == framework {
		return fault.FrameworkNotFound
	}

	return printJson(m.w, framework)
}
