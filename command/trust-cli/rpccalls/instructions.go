// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/trustregistry/instruction"
	"github.com/bitmark-inc/trustregistry/rpc/instructions"
)

// Submit - send an instruction that was signed elsewhere
func (client *Client) Submit(packed instruction.Packed) (*instructions.SubmitReply, error) {

	arguments := instructions.SubmitArguments{
		Packed: packed,
	}

	var reply instructions.SubmitReply
	if err := client.call("Instructions.Submit", "Submit Instruction", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
