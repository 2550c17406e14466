// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc_test

import (
	"crypto/tls"
	"net"
	"net/rpc/jsonrpc"
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/trustregistry/chain"
	"github.com/bitmark-inc/trustregistry/fault"
	"github.com/bitmark-inc/trustregistry/fixtures"
	"github.com/bitmark-inc/trustregistry/mode"
	"github.com/bitmark-inc/trustregistry/rpc"
	"github.com/bitmark-inc/trustregistry/rpc/listeners"
	"github.com/bitmark-inc/trustregistry/rpc/mocks"
	"github.com/bitmark-inc/trustregistry/rpc/node"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger("rpc")
	_ = mode.Initialise(chain.Local)
	rc := m.Run()
	_ = mode.Finalise()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

func freeAddress(t *testing.T) string {
	l, err := net.Listen("tcp4", "127.0.0.1:0")
	if nil != err {
		t.Fatalf("listen error: %s", err)
	}
	defer l.Close()
	return l.Addr().String()
}

func TestInitialise(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ops := mocks.NewMockOperations(ctl)

	cer, key := fixtures.Certificate()
	listen := freeAddress(t)

	rpcConfig := listeners.RPCConfiguration{
		MaximumConnections: 100,
		Bandwidth:          10000000,
		Listen:             []string{listen},
		Certificate:        cer,
		PrivateKey:         key,
	}
	httpsConfig := listeners.HTTPSConfiguration{}

	err := rpc.Initialise(&rpcConfig, &httpsConfig, "1.0", ops)
	if !assert.Nil(t, err, "initialise") {
		return
	}
	defer rpc.Finalise()

	err = rpc.Initialise(&rpcConfig, &httpsConfig, "1.0", ops)
	assert.Equal(t, fault.AlreadyInitialised, err, "second initialise")

	conn, err := tls.Dial("tcp", listen, &tls.Config{InsecureSkipVerify: true})
	if nil != err {
		t.Fatalf("dial error: %s", err)
	}
	client := jsonrpc.NewClient(conn)
	defer client.Close()

	ops.EXPECT().Now().Return(fixtures.Now).Times(1)

	var reply node.InfoReply
	err = client.Call("Node.Info", &node.InfoArguments{}, &reply)
	assert.Nil(t, err, "Node.Info")
	assert.Equal(t, chain.Local, reply.Chain, "chain")
	assert.Equal(t, uint64(1), reply.RPCs, "this connection")
}

func TestInitialiseBadCertificate(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	rpcConfig := listeners.RPCConfiguration{
		MaximumConnections: 100,
		Bandwidth:          10000000,
		Listen:             []string{freeAddress(t)},
		Certificate:        "junk",
		PrivateKey:         "junk",
	}

	err := rpc.Initialise(&rpcConfig, &listeners.HTTPSConfiguration{}, "1.0", mocks.NewMockOperations(ctl))
	assert.NotNil(t, err, "bad certificate accepted")

	assert.Equal(t, fault.NotInitialised, rpc.Finalise(), "finalise after failure")
}
