// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/trustregistry/address"
	"github.com/bitmark-inc/trustregistry/fixtures"
	"github.com/bitmark-inc/trustregistry/record"
	"github.com/bitmark-inc/trustregistry/registry"
	"github.com/bitmark-inc/trustregistry/storage"
)

var databaseFileName = fixtures.Database("dumpdb")

type line struct {
	Pool    string          `json:"pool"`
	Address address.Address `json:"address"`
	Type    string          `json:"type"`
	Record  json.RawMessage `json:"record"`
	Error   string          `json:"error"`
}

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger("dumpdb")

	err := storage.Initialise(databaseFileName, storage.ReadWrite)
	if nil != err {
		fixtures.TeardownTestLogger()
		panic(err)
	}

	rc := m.Run()

	storage.Finalise()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

func lines(t *testing.T, text string) []line {
	result := []line{}
	scanner := bufio.NewScanner(bytes.NewBufferString(text))
	for scanner.Scan() {
		var l line
		assert.Nil(t, json.Unmarshal(scanner.Bytes(), &l), "decode line")
		result = append(result, l)
	}
	return result
}

func TestDump(t *testing.T) {
	r := registry.NewFromStorage(true)

	for id := uint64(1); id <= 3; id += 1 {
		_, err := r.CreateFramework(fixtures.Authority.Account(), registry.FrameworkArguments{
			FrameworkId: id,
			Name:        "framework",
		})
		assert.Nil(t, err, "create framework")
	}
	assetAddress, err := r.CreateAsset(fixtures.Owner.Account(), registry.AssetArguments{
		AssetId:   1,
		Name:      "asset",
		AssetType: record.Digital,
	})
	assert.Nil(t, err, "create asset")

	var out bytes.Buffer
	err = dump(&out, []string{"F", "Assets", "R"}, true, 0)
	assert.Nil(t, err, "dump")

	result := lines(t, out.String())
	if !assert.Equal(t, 4, len(result), "frameworks and asset") {
		return
	}
	for _, l := range result[:3] {
		assert.Equal(t, "Frameworks", l.Pool, "framework pool")
		assert.Equal(t, "", l.Error, "no error")
	}
	assert.Equal(t, "Assets", result[3].Pool, "asset pool")
	assert.Equal(t, assetAddress, result[3].Address, "asset address")

	var asset record.AssetProfile
	assert.Nil(t, json.Unmarshal(result[3].Record, &asset), "asset record")
	assert.Equal(t, "asset", asset.Name, "asset name")

	out.Reset()
	err = dump(&out, []string{"Frameworks"}, true, 2)
	assert.Nil(t, err, "limited dump")
	assert.Equal(t, 2, len(lines(t, out.String())), "count limit")

	err = dump(&out, []string{"X"}, true, 0)
	assert.NotNil(t, err, "unknown tag")
}

func TestPoolByTag(t *testing.T) {
	name, pool := poolByTag("R")
	assert.Equal(t, "Records", name, "by prefix")
	assert.Equal(t, storage.Pool.Records, pool, "records pool")

	name, pool = poolByTag("Frameworks")
	assert.Equal(t, "Frameworks", name, "by name")
	assert.Equal(t, storage.Pool.Frameworks, pool, "frameworks pool")

	_, pool = poolByTag("frameworks")
	assert.Nil(t, pool, "case matters")
}
