// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"sync/atomic"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/trustregistry/counter"
)

const reportInterval = time.Minute

// periodically log the number of open client connections
type reporter struct {
	log      *logger.L
	count    *counter.Counter
	interval time.Duration
	last     atomic.Uint64
}

// Run - only logs when the count changed since the previous report
func (r *reporter) Run(args interface{}, shutdown <-chan struct{}) {
	log := r.log
	log.Info("reporter: starting…")

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-ticker.C:
			n := r.count.Uint64()
			if r.last.Swap(n) != n {
				log.Infof("connections: %d", n)
			}
		}
	}

	log.Info("reporter: stopped")
}
