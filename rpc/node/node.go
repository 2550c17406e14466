// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/trustregistry/counter"
	"github.com/bitmark-inc/trustregistry/rpc/ratelimit"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Node - type for RPC calls
type Node struct {
	Log       *logger.L
	Limiter   *rate.Limiter
	Start     time.Time
	Version   string
	ChainName func() string
	Mode      func() string
	Clock     func() time.Time
	counter   *counter.Counter
}

// New - create the node information service
func New(log *logger.L, start time.Time, version string, chainName func() string, mode func() string, clock func() time.Time, counter *counter.Counter) *Node {
	return &Node{
		Log:       log,
		Limiter:   rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:     start,
		Version:   version,
		ChainName: chainName,
		Mode:      mode,
		Clock:     clock,
		counter:   counter,
	}
}

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Chain   string `json:"chain"`
	Mode    string `json:"mode"`
	RPCs    uint64 `json:"rpcs"`
	Time    int64  `json:"time"`
	Version string `json:"version"`
	Uptime  string `json:"uptime"`
}

// Info - return some information about this node
//
// the time is the registry clock in unix seconds, the reference for
// trust record expiry
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	reply.Chain = node.ChainName()
	reply.Mode = node.Mode()
	reply.RPCs = node.counter.Uint64()
	reply.Time = node.Clock().Unix()
	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	return nil
}
