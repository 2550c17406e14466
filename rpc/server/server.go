// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/trustregistry/counter"
	"github.com/bitmark-inc/trustregistry/mode"
	"github.com/bitmark-inc/trustregistry/registry"
	"github.com/bitmark-inc/trustregistry/rpc/assets"
	"github.com/bitmark-inc/trustregistry/rpc/frameworks"
	"github.com/bitmark-inc/trustregistry/rpc/instructions"
	"github.com/bitmark-inc/trustregistry/rpc/node"
	"github.com/bitmark-inc/trustregistry/rpc/trust"
)

// Create - an RPC server with every registry service registered
func Create(log *logger.L, version string, rpcCount *counter.Counter, ops registry.Operations) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	f := frameworks.New(log, ops, mode.Is, mode.IsTesting)
	a := assets.New(log, ops, mode.Is, mode.IsTesting)
	t := trust.New(log, ops, mode.Is, mode.IsTesting)

	_ = server.Register(f)
	_ = server.Register(a)
	_ = server.Register(t)
	_ = server.Register(instructions.New(log, mode.IsTesting, f, a, t))
	_ = server.Register(node.New(log, start, version, mode.ChainName, mode.String, ops.Now, rpcCount))

	return server
}
