// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/trustregistry/background"
	"github.com/bitmark-inc/trustregistry/counter"
)

func TestReporter(t *testing.T) {
	var c counter.Counter
	r := &reporter{
		log:      logger.New("reporter"),
		count:    &c,
		interval: time.Millisecond,
	}

	p := background.Start(background.Processes{r}, nil)
	defer p.Stop()

	c.Increment()
	c.Increment()
	assert.Eventually(t, func() bool { return 2 == r.last.Load() }, time.Second, time.Millisecond, "first report")

	c.Decrement()
	assert.Eventually(t, func() bool { return 1 == r.last.Load() }, time.Second, time.Millisecond, "count changed")
}
