// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"context"
	"net"

	"golang.org/x/time/rate"
)

// smallest burst, one TLS record
const minimumBurst = 16384

// a connection limited to a number of bytes per second in each direction
type throttledConn struct {
	net.Conn
	in  *rate.Limiter
	out *rate.Limiter
}

// bandwidth is in bits per second
func newThrottledConn(conn net.Conn, bandwidth float64) *throttledConn {
	bytesPerSecond := bandwidth / 8

	burst := int(bytesPerSecond / 10)
	if burst < minimumBurst {
		burst = minimumBurst
	}

	return &throttledConn{
		Conn: conn,
		in:   rate.NewLimiter(rate.Limit(bytesPerSecond), burst),
		out:  rate.NewLimiter(rate.Limit(bytesPerSecond), burst),
	}
}

// Read - the bytes already read are charged before the next read
func (c *throttledConn) Read(p []byte) (int, error) {
	n, err := c.Conn.Read(p)
	if waitErr := wait(c.in, n); nil != waitErr && nil == err {
		err = waitErr
	}
	return n, err
}

// Write - send in chunks no larger than the burst
func (c *throttledConn) Write(p []byte) (int, error) {
	written := 0
	for written < len(p) {
		chunk := len(p) - written
		if burst := c.out.Burst(); chunk > burst {
			chunk = burst
		}
		if err := c.out.WaitN(context.Background(), chunk); nil != err {
			return written, err
		}
		n, err := c.Conn.Write(p[written : written+chunk])
		written += n
		if nil != err {
			return written, err
		}
	}
	return written, nil
}

func wait(limiter *rate.Limiter, n int) error {
	burst := limiter.Burst()
	for n > 0 {
		chunk := n
		if chunk > burst {
			chunk = burst
		}
		if err := limiter.WaitN(context.Background(), chunk); nil != err {
			return err
		}
		n -= chunk
	}
	return nil
}
