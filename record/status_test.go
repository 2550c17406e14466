// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/trustregistry/record"
)

func TestStatus(t *testing.T) {
	now := time.Unix(1700000000, 0)
	past := now.Unix()
	future := now.Unix() + 1

	tests := []struct {
		active  bool
		expires *int64
		status  record.Status
	}{
		{true, nil, record.StatusActive},
		{true, &future, record.StatusActive},
		{true, &past, record.StatusExpired},
		{false, nil, record.StatusInactive},
		{false, &past, record.StatusInactive},
	}

	for i, test := range tests {
		trust := &record.TrustRecord{
			IsActive:  test.active,
			ExpiresAt: test.expires,
		}
		assert.Equal(t, test.status, trust.Status(now), "%d: status", i)
	}
}
