// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter

import (
	"sync/atomic"
)

// Counter - connection counter shared between listeners and services
type Counter struct {
	n atomic.Uint64
}

// Increment - add 1, returns new value
func (c *Counter) Increment() uint64 {
	return c.n.Add(1)
}

// Decrement - subtract 1, returns new value
func (c *Counter) Decrement() uint64 {
	return c.n.Add(^uint64(0))
}

// Uint64 - current value
func (c *Counter) Uint64() uint64 {
	return c.n.Load()
}

// IsZero - check if zero
func (c *Counter) IsZero() bool {
	return 0 == c.n.Load()
}
