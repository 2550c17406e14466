// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/trustregistry/background"
)

type counting struct {
	ticks   atomic.Int64
	stopped atomic.Bool
}

func (c *counting) Run(args interface{}, shutdown <-chan struct{}) {
	delay := args.(time.Duration)
	for {
		select {
		case <-shutdown:
			c.stopped.Store(true)
			return
		case <-time.After(delay):
			c.ticks.Add(1)
		}
	}
}

func TestStartStop(t *testing.T) {
	proc1 := &counting{}
	proc2 := &counting{}

	p := background.Start(background.Processes{proc1, proc2}, time.Millisecond)

	assert.Eventually(t, func() bool {
		return proc1.ticks.Load() > 2 && proc2.ticks.Load() > 2
	}, time.Second, time.Millisecond, "processes are running")

	p.Stop()

	// Stop only returns after every Run has returned
	assert.True(t, proc1.stopped.Load(), "first process stopped")
	assert.True(t, proc2.stopped.Load(), "second process stopped")

	ticks := proc1.ticks.Load()
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, ticks, proc1.ticks.Load(), "no ticks after stop")
}

func TestStopNil(t *testing.T) {
	var p *background.T
	p.Stop()
}
