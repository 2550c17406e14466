// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server_test

import (
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/trustregistry/address"
	"github.com/bitmark-inc/trustregistry/chain"
	"github.com/bitmark-inc/trustregistry/counter"
	"github.com/bitmark-inc/trustregistry/fault"
	"github.com/bitmark-inc/trustregistry/fixtures"
	"github.com/bitmark-inc/trustregistry/instruction"
	"github.com/bitmark-inc/trustregistry/mode"
	"github.com/bitmark-inc/trustregistry/record"
	"github.com/bitmark-inc/trustregistry/registry"
	"github.com/bitmark-inc/trustregistry/rpc/assets"
	"github.com/bitmark-inc/trustregistry/rpc/frameworks"
	"github.com/bitmark-inc/trustregistry/rpc/node"
	"github.com/bitmark-inc/trustregistry/rpc/server"
	"github.com/bitmark-inc/trustregistry/rpc/trust"
	"github.com/bitmark-inc/trustregistry/storage"
)

const logCategory = "server"

var (
	databaseFileName = fixtures.Database("server")
	testNow          = time.Unix(1700000000, 0)
	rpcServer        *rpc.Server
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger(logCategory)

	_ = mode.Initialise(chain.Testing)
	_ = mode.Set(mode.Normal)

	err := storage.Initialise(databaseFileName, storage.ReadWrite)
	if nil != err {
		fixtures.TeardownTestLogger()
		panic(err)
	}

	pools := registry.Handles{
		Frameworks: storage.Pool.Frameworks,
		Assets:     storage.Pool.Assets,
		Records:    storage.Pool.Records,
	}
	ops := registry.New(pools, storage.NewDBTransaction, func() time.Time { return testNow }, true)

	var c counter.Counter
	rpcServer = server.Create(logger.New(logCategory), "1.0", &c, ops)

	rc := m.Run()

	storage.Finalise()
	_ = mode.Finalise()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

// a JSON-RPC client connected through an in-memory pipe
func connect(t *testing.T) *rpc.Client {
	serverConn, clientConn := net.Pipe()
	go rpcServer.ServeCodec(jsonrpc.NewServerCodec(serverConn))
	client := jsonrpc.NewClient(clientConn)
	t.Cleanup(func() { client.Close() })
	return client
}

func TestNodeInfo(t *testing.T) {
	client := connect(t)

	var reply node.InfoReply
	err := client.Call("Node.Info", &node.InfoArguments{}, &reply)
	assert.Nil(t, err, "Node.Info")
	assert.Equal(t, chain.Testing, reply.Chain, "chain")
	assert.Equal(t, "Normal", reply.Mode, "mode")
	assert.Equal(t, testNow.Unix(), reply.Time, "registry time")
}

// full round trip through the JSON codec and the real registry
func TestRegistryServices(t *testing.T) {
	client := connect(t)

	createFramework := &instruction.CreateFramework{
		Authority:   fixtures.Authority.Account(),
		FrameworkId: 1,
		Name:        "KYC",
		Criteria:    []string{"id_check"},
	}
	_, err := instruction.Sign(createFramework, fixtures.Authority)
	if !assert.Nil(t, err, "sign framework") {
		return
	}
	var frameworkReply frameworks.CreateReply
	err = client.Call("Frameworks.Create", createFramework, &frameworkReply)
	if !assert.Nil(t, err, "Frameworks.Create") {
		return
	}

	createAsset := &instruction.CreateAsset{
		Owner:     fixtures.Owner.Account(),
		AssetId:   7,
		Name:      "Acme",
		AssetType: record.Business,
	}
	_, err = instruction.Sign(createAsset, fixtures.Owner)
	if !assert.Nil(t, err, "sign asset") {
		return
	}
	var assetReply assets.CreateReply
	err = client.Call("Assets.Create", createAsset, &assetReply)
	if !assert.Nil(t, err, "Assets.Create") {
		return
	}

	issue := &instruction.IssueTrust{
		Issuer:     fixtures.Issuer.Account(),
		Framework:  frameworkReply.Framework,
		Asset:      assetReply.Asset,
		TrustScore: 85,
		Evidence:   "verified",
	}
	_, err = instruction.Sign(issue, fixtures.Issuer)
	if !assert.Nil(t, err, "sign issue") {
		return
	}
	var issueReply trust.IssueReply
	err = client.Call("Trust.Issue", issue, &issueReply)
	if !assert.Nil(t, err, "Trust.Issue") {
		return
	}

	// the same triple again is rejected with the stable tag
	err = client.Call("Trust.Issue", issue, &issueReply)
	if assert.NotNil(t, err, "second issue") {
		assert.Equal(t, fault.AddressAlreadyInUse.Error(), err.Error(), "duplicate tag")
	}

	var lookupReply trust.RecordReply
	err = client.Call("Trust.Lookup", &trust.LookupArguments{
		Framework: frameworkReply.Framework,
		Issuer:    fixtures.Issuer.Account(),
		Asset:     assetReply.Asset,
	}, &lookupReply)
	if !assert.Nil(t, err, "Trust.Lookup") {
		return
	}
	assert.Equal(t, issueReply.Trust, lookupReply.Trust, "lookup address")
	assert.Equal(t, uint8(85), lookupReply.Record.TrustScore, "score")
	assert.True(t, lookupReply.Record.Issuer.Equal(fixtures.Issuer.Account()), "issuer")
	assert.Equal(t, record.StatusActive, lookupReply.Status, "status")

	var getReply frameworks.GetReply
	err = client.Call("Frameworks.Get", &frameworks.GetArguments{Addresses: []address.Address{frameworkReply.Framework}}, &getReply)
	if !assert.Nil(t, err, "Frameworks.Get") {
		return
	}
	framework := getReply.Frameworks[0]

	inactive := false
	update := &instruction.UpdateFramework{
		Authority: fixtures.Authority.Account(),
		Framework: frameworkReply.Framework,
		Bump:      framework.Bump,
		Timestamp: testNow.Unix(),
		IsActive:  &inactive,
	}
	_, err = instruction.Sign(update, fixtures.Authority)
	if !assert.Nil(t, err, "sign update") {
		return
	}
	var updateReply frameworks.UpdateReply
	err = client.Call("Frameworks.Update", update, &updateReply)
	if !assert.Nil(t, err, "Frameworks.Update") {
		return
	}
	assert.False(t, updateReply.Framework.IsActive, "deactivated")
	assert.Equal(t, "KYC", updateReply.Framework.Name, "name unchanged")
}

// replaying an earlier signed update leaves the latest change in place
func TestUpdateReplayKeepsLatest(t *testing.T) {
	client := connect(t)

	createFramework := &instruction.CreateFramework{
		Authority:   fixtures.Authority.Account(),
		FrameworkId: 2,
		Name:        "AML",
	}
	_, err := instruction.Sign(createFramework, fixtures.Authority)
	if !assert.Nil(t, err, "sign framework") {
		return
	}
	var frameworkReply frameworks.CreateReply
	err = client.Call("Frameworks.Create", createFramework, &frameworkReply)
	if !assert.Nil(t, err, "Frameworks.Create") {
		return
	}
	_, bump, _ := record.FrameworkAddress(fixtures.Authority.Account(), 2)

	update := func(active bool, timestamp int64) *instruction.UpdateFramework {
		u := &instruction.UpdateFramework{
			Authority: fixtures.Authority.Account(),
			Framework: frameworkReply.Framework,
			Bump:      bump,
			Timestamp: timestamp,
			IsActive:  &active,
		}
		_, err := instruction.Sign(u, fixtures.Authority)
		assert.Nil(t, err, "sign update")
		return u
	}

	deactivate := update(false, testNow.Unix())
	reactivate := update(true, testNow.Unix()+1)

	var reply frameworks.UpdateReply
	err = client.Call("Frameworks.Update", deactivate, &reply)
	if !assert.Nil(t, err, "deactivate") {
		return
	}
	err = client.Call("Frameworks.Update", reactivate, &reply)
	if !assert.Nil(t, err, "reactivate") {
		return
	}
	assert.True(t, reply.Framework.IsActive, "active after reactivate")

	var replayReply frameworks.UpdateReply
	err = client.Call("Frameworks.Update", deactivate, &replayReply)
	if assert.NotNil(t, err, "replayed update") {
		assert.Equal(t, fault.InstructionAlreadySeen.Error(), err.Error(), "replay tag")
	}

	var getReply frameworks.GetReply
	err = client.Call("Frameworks.Get", &frameworks.GetArguments{Addresses: []address.Address{frameworkReply.Framework}}, &getReply)
	if assert.Nil(t, err, "Frameworks.Get") {
		assert.True(t, getReply.Frameworks[0].IsActive, "still active")
	}
}
