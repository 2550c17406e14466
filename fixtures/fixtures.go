// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures holds shared setup for package tests
package fixtures

import (
	"bytes"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/bitmark-inc/certgen"
	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/trustregistry/account"
)

const (
	dir = "testing"
)

// SetupTestLogger - log into a local testing directory at critical level
func SetupTestLogger(category string) {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", category),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - stop logging and remove the directory
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

// Database - leveldb name inside the testing directory
func Database(name string) string {
	return dir + "/" + name
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}

// PrivateKey - deterministic test network key
func PrivateKey(fill byte) *account.PrivateKey {
	key, err := account.PrivateKeyFromSeed(true, bytes.Repeat([]byte{fill}, 32))
	if nil != err {
		panic(err)
	}
	return key
}

// well known test principals
var (
	Authority = PrivateKey(0xa1)
	Owner     = PrivateKey(0xa2)
	Issuer    = PrivateKey(0xa3)
	Intruder  = PrivateKey(0xee)
)

var certificatePair struct {
	sync.Once
	certificate string
	key         string
}

// Certificate - a self-signed PEM pair for TLS listener tests
func Certificate() (string, string) {
	certificatePair.Do(func() {
		cert, key, err := certgen.NewTLSCertPair("trustd test", time.Now().Add(24*time.Hour), false, nil)
		if nil != err {
			panic(err)
		}
		certificatePair.certificate = string(cert)
		certificatePair.key = string(key)
	})
	return certificatePair.certificate, certificatePair.key
}

// Now - a fixed registry clock for tests
var Now = time.Unix(1700000000, 0)
