// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"crypto/tls"
	"io"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"

	"github.com/bitmark-inc/trustregistry/account"
	"github.com/bitmark-inc/trustregistry/fault"
	"github.com/bitmark-inc/trustregistry/instruction"
)

// Client - to hold RPC connections streams
type Client struct {
	conn    net.Conn
	client  *rpc.Client
	testnet bool
	verbose bool
	handle  io.Writer // if verbose is set output items here
}

// NewClient - create a RPC connection to a trustd
func NewClient(testnet bool, connect string, verbose bool, handle io.Writer) (*Client, error) {

	if "" == connect {
		return nil, fault.NoConnectionsAvailable
	}

	// nodes use self-signed certificates
	tlsConfig := &tls.Config{
		InsecureSkipVerify: true,
	}

	conn, err := tls.Dial("tcp", connect, tlsConfig)
	if nil != err {
		return nil, err
	}

	return NewClientFromConn(testnet, conn, verbose, handle), nil
}

// NewClientFromConn - wrap an already open connection
func NewClientFromConn(testnet bool, conn net.Conn, verbose bool, handle io.Writer) *Client {
	return &Client{
		conn:    conn,
		client:  jsonrpc.NewClient(conn),
		testnet: testnet,
		verbose: verbose,
		handle:  handle,
	}
}

// Close - shutdown the trustd connection
func (client *Client) Close() {
	client.client.Close()
	client.conn.Close()
}

// sign an instruction with a key from the client's network
func (client *Client) sign(item instruction.Instruction, key *account.PrivateKey) error {
	if nil == key {
		return fault.NotPrivateKey
	}
	if key.IsTesting() != client.testnet {
		return fault.WrongNetworkForPrivateKey
	}
	_, err := instruction.Sign(item, key)
	return err
}
