// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/trustregistry/chain"
	"github.com/bitmark-inc/trustregistry/fault"
	"github.com/bitmark-inc/trustregistry/instruction"
	"github.com/bitmark-inc/trustregistry/rpc/instructions"
)

type decodedInstruction struct {
	Type        string                  `json:"type"`
	Instruction instruction.Instruction `json:"instruction"`
}

// hex text of a packed instruction from the first argument
func packedArgument(c *cli.Context) (instruction.Packed, error) {
	s := c.Args().First()
	if "" == s {
		return nil, ErrRequiredPacked
	}
	var packed instruction.Packed
	if err := packed.UnmarshalText([]byte(s)); nil != err {
		return nil, fault.NotInstructionPack
	}
	return packed, nil
}

// decoding is offline, the network flag selects the key network
func runDecode(c *cli.Context) error {

	network := checkNetwork(c.GlobalString("network"))
	if "" == network {
		return fmt.Errorf("network: %q can only be live/testing/local", c.GlobalString("network"))
	}

	packed, err := packedArgument(c)
	if nil != err {
		return err
	}

	item, n, err := packed.Unpack(chain.IsTesting(network))
	if nil != err {
		return err
	}
	if n != len(packed) {
		return fault.NotInstructionPack
	}

	// a decoded message carries its own signature, check it here so a
	// bad message is reported before it is sent
	if _, err := instruction.Authenticate(item, chain.IsTesting(network)); nil != err {
		return err
	}

	return printJson(c.App.Writer, decodedInstruction{
		Type:        instructionType(item),
		Instruction: item,
	})
}

func instructionType(item instruction.Instruction) string {
	switch item.(type) {
	case *instruction.CreateFramework:
		return instructions.CreateFrameworkType
	case *instruction.UpdateFramework:
		return instructions.UpdateFrameworkType
	case *instruction.CreateAsset:
		return instructions.CreateAssetType
	case *instruction.IssueTrust:
		return instructions.IssueTrustType
	}
	return ""
}

func runSubmit(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	packed, err := packedArgument(c)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Submit(packed)
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}
