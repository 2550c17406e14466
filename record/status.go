// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"time"
)

// Status - derived at read time, never stored
type Status string

// possible trust record states
const (
	StatusActive   = Status("active")
	StatusExpired  = Status("expired")
	StatusInactive = Status("inactive")
)

// Status - state of the attestation as seen at time now
func (trust *TrustRecord) Status(now time.Time) Status {
	if !trust.IsActive {
		return StatusInactive
	}
	if nil != trust.ExpiresAt && *trust.ExpiresAt <= now.Unix() {
		return StatusExpired
	}
	return StatusActive
}
