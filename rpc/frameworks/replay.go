// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package frameworks

import (
	"encoding/hex"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/bitmark-inc/trustregistry/account"
	"github.com/bitmark-inc/trustregistry/fault"
)

// UpdateWindow - an update is accepted only while its timestamp is
// within this distance of the registry clock
const UpdateWindow = 5 * time.Minute

// signatures of accepted updates
//
// an entry must outlive every instant at which its timestamp is still
// inside the window, so it is kept for twice the window
type replayGuard struct {
	window time.Duration
	seen   *cache.Cache
}

func newReplayGuard(window time.Duration) *replayGuard {
	return &replayGuard{
		window: window,
		seen:   cache.New(2*window, window),
	}
}

// admit a signed update once
func (g *replayGuard) admit(timestamp int64, now time.Time, signature account.Signature) error {
	at := time.Unix(timestamp, 0)
	if at.Before(now.Add(-g.window)) || at.After(now.Add(g.window)) {
		return fault.TimestampOutOfWindow
	}
	if err := g.seen.Add(hex.EncodeToString(signature), struct{}{}, 2*g.window); nil != err {
		return fault.InstructionAlreadySeen
	}
	return nil
}
