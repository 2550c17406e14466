// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/trustregistry/account"
	"github.com/bitmark-inc/trustregistry/address"
	"github.com/bitmark-inc/trustregistry/instruction"
	"github.com/bitmark-inc/trustregistry/rpc/trust"
)

// TrustData - fields for a new attestation
type TrustData struct {
	Issuer     *account.PrivateKey
	Framework  address.Address
	Asset      address.Address
	TrustScore uint64
	Evidence   string
	ExpiresAt  *int64
}

// IssueTrust - sign and send an issue trust request
func (client *Client) IssueTrust(data *TrustData) (*trust.IssueReply, error) {

	item := &instruction.IssueTrust{
		Issuer:     data.Issuer.Account(),
		Framework:  data.Framework,
		Asset:      data.Asset,
		TrustScore: data.TrustScore,
		Evidence:   data.Evidence,
		ExpiresAt:  data.ExpiresAt,
	}
	if err := client.sign(item, data.Issuer); nil != err {
		return nil, err
	}

	var reply trust.IssueReply
	if err := client.call("Trust.Issue", "Issue Trust", item, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// GetTrust - fetch an attestation by its address
func (client *Client) GetTrust(trustAddress address.Address) (*trust.RecordReply, error) {

	arguments := trust.GetArguments{
		Trust: trustAddress,
	}

	var reply trust.RecordReply
	if err := client.call("Trust.Get", "Get Trust", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// LookupTrust - fetch the attestation of an issuer for an asset under a framework
func (client *Client) LookupTrust(framework address.Address, issuer *account.Account, asset address.Address) (*trust.RecordReply, error) {

	arguments := trust.LookupArguments{
		Framework: framework,
		Issuer:    issuer,
		Asset:     asset,
	}

	var reply trust.RecordReply
	if err := client.call("Trust.Lookup", "Lookup Trust", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
