// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/trustregistry/fixtures"
	"github.com/bitmark-inc/trustregistry/storage"
)

// test database file
var databaseFileName = fixtures.Database("storage")

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger("storage")
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

// remove the database created by a test
func removeDatabase() {
	os.RemoveAll(databaseFileName + ".leveldb")
}

// configure for testing
func setup(t *testing.T) {
	removeDatabase()
	err := storage.Initialise(databaseFileName, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
}

// post test cleanup
func teardown(t *testing.T) {
	storage.Finalise()
	removeDatabase()
}
