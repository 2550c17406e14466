// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"io"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// 160000 bytes per second with the minimum burst
const testBandwidth = 8 * 160000

// bytes beyond the first burst take half a second
const testLength = minimumBurst + 80000

func TestThrottledWrite(t *testing.T) {
	server, client := net.Pipe()
	defer client.Close()

	throttled := newThrottledConn(server, testBandwidth)
	defer throttled.Close()

	received := make(chan int)
	go func() {
		n, _ := io.Copy(io.Discard, client)
		received <- int(n)
	}()

	start := time.Now()
	n, err := throttled.Write(make([]byte, testLength))
	elapsed := time.Since(start)
	throttled.Close()

	assert.Nil(t, err, "write")
	assert.Equal(t, testLength, n, "written")
	assert.Equal(t, testLength, <-received, "received")
	assert.True(t, elapsed >= 400*time.Millisecond, "elapsed: %s", elapsed)
}

func TestThrottledRead(t *testing.T) {
	server, client := net.Pipe()
	defer client.Close()

	throttled := newThrottledConn(server, testBandwidth)
	defer throttled.Close()

	go func() {
		_, _ = client.Write(make([]byte, testLength))
		client.Close()
	}()

	start := time.Now()
	n, err := io.Copy(io.Discard, throttled)
	elapsed := time.Since(start)

	assert.Nil(t, err, "read")
	assert.Equal(t, int64(testLength), n, "read")
	assert.True(t, elapsed >= 400*time.Millisecond, "elapsed: %s", elapsed)
}

func TestThrottleBurst(t *testing.T) {
	server, client := net.Pipe()
	defer server.Close()
	defer client.Close()

	assert.Equal(t, minimumBurst, newThrottledConn(server, 1000000).out.Burst(), "minimum burst")
	assert.Equal(t, 312500, newThrottledConn(server, 25000000).out.Burst(), "tenth of a second")
}
