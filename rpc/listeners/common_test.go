// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners_test

import (
	"crypto/tls"
	"net"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/trustregistry/fixtures"
	"github.com/bitmark-inc/trustregistry/rpc/certificate"
)

const logCategory = "listeners"

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger(logCategory)
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

// a loopback address with a port that was free a moment ago
func freeAddress(t *testing.T) string {
	l, err := net.Listen("tcp4", "127.0.0.1:0")
	if nil != err {
		t.Fatalf("listen error: %s", err)
	}
	defer l.Close()
	return l.Addr().String()
}

func serverTLS(t *testing.T) (*tls.Config, [32]byte) {
	cer, key := fixtures.Certificate()
	tlsConfig, fingerprint, err := certificate.Get(logger.New(logCategory), "test", cer, key)
	if nil != err {
		t.Fatalf("certificate error: %s", err)
	}
	return tlsConfig, fingerprint
}

var clientTLS = &tls.Config{InsecureSkipVerify: true}
