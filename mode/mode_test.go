// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mode_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/trustregistry/chain"
	"github.com/bitmark-inc/trustregistry/fault"
	"github.com/bitmark-inc/trustregistry/fixtures"
	"github.com/bitmark-inc/trustregistry/mode"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger("mode")
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

func TestLifecycle(t *testing.T) {
	err := mode.Initialise(chain.Local)
	if !assert.Nil(t, err, "initialise") {
		return
	}

	assert.Equal(t, fault.AlreadyInitialised, mode.Initialise(chain.Live), "second initialise")
	assert.True(t, mode.IsTesting(), "local is testing")
	assert.Equal(t, chain.Local, mode.ChainName(), "chain name")
	assert.True(t, mode.Is(mode.Starting), "starting")

	assert.Nil(t, mode.Set(mode.Normal), "set normal")
	assert.True(t, mode.Is(mode.Normal), "normal")
	assert.Equal(t, "Normal", mode.String(), "string")

	assert.Equal(t, fault.InvalidMode, mode.Set(mode.Mode(99)), "invalid mode")
	assert.True(t, mode.Is(mode.Normal), "unchanged by invalid set")

	assert.Nil(t, mode.Finalise(), "finalise")
	assert.True(t, mode.Is(mode.Stopped), "stopped")
	assert.Equal(t, fault.NotInitialised, mode.Finalise(), "second finalise")
}

func TestInvalidChain(t *testing.T) {
	assert.Equal(t, fault.InvalidChain, mode.Initialise("bitmark"), "unknown chain")
}
