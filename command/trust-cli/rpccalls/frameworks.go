// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"time"

	"github.com/bitmark-inc/trustregistry/account"
	"github.com/bitmark-inc/trustregistry/address"
	"github.com/bitmark-inc/trustregistry/instruction"
	"github.com/bitmark-inc/trustregistry/record"
	"github.com/bitmark-inc/trustregistry/rpc/frameworks"
)

// FrameworkData - fields for a new trust framework
type FrameworkData struct {
	Authority   *account.PrivateKey
	FrameworkId uint64
	Name        string
	Description string
	Criteria    []string
}

// FrameworkUpdateData - sparse update, nil fields are unchanged
type FrameworkUpdateData struct {
	Authority   *account.PrivateKey
	Framework   address.Address
	Bump        uint8
	Name        *string
	Description *string
	Criteria    *[]string
	IsActive    *bool
	Timestamp   time.Time // zero is the local clock
}

// CreateFramework - sign and send a create framework request
func (client *Client) CreateFramework(data *FrameworkData) (*frameworks.CreateReply, error) {

	item := &instruction.CreateFramework{
		Authority:   data.Authority.Account(),
		FrameworkId: data.FrameworkId,
		Name:        data.Name,
		Description: data.Description,
		Criteria:    data.Criteria,
	}
	if err := client.sign(item, data.Authority); nil != err {
		return nil, err
	}

	var reply frameworks.CreateReply
	if err := client.call("Frameworks.Create", "Create Framework", item, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// UpdateFramework - sign and send an update framework request
func (client *Client) UpdateFramework(data *FrameworkUpdateData) (*frameworks.UpdateReply, error) {

	timestamp := data.Timestamp
	if timestamp.IsZero() {
		timestamp = time.Now()
	}

	item := &instruction.UpdateFramework{
		Authority:   data.Authority.Account(),
		Framework:   data.Framework,
		Bump:        data.Bump,
		Timestamp:   timestamp.Unix(),
		Name:        data.Name,
		Description: data.Description,
		Criteria:    data.Criteria,
		IsActive:    data.IsActive,
	}
	if err := client.sign(item, data.Authority); nil != err {
		return nil, err
	}

	var reply frameworks.UpdateReply
	if err := client.call("Frameworks.Update", "Update Framework", item, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// GetFramework - fetch a single framework, nil if unknown
func (client *Client) GetFramework(framework address.Address) (*record.TrustFramework, error) {

	arguments := frameworks.GetArguments{
		Addresses: []address.Address{framework},
	}

	var reply frameworks.GetReply
	if err := client.call("Frameworks.Get", "Get Framework", &arguments, &reply); nil != err {
		return nil, err
	}
	if 1 != len(reply.Frameworks) {
		return nil, nil
	}
	return reply.Frameworks[0], nil
}
