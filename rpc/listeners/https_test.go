// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners_test

import (
	"io"
	"net"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/trustregistry/fault"
	"github.com/bitmark-inc/trustregistry/rpc/listeners"
)

type testHandler struct {
	allow map[string][]*net.IPNet
}

func (h *testHandler) RPC(w http.ResponseWriter, _ *http.Request) {
	_, _ = w.Write([]byte("RPC"))
}

func (h *testHandler) Details(w http.ResponseWriter, _ *http.Request) {
	_, _ = w.Write([]byte("Details"))
}

func (h *testHandler) Root(w http.ResponseWriter, _ *http.Request) {
	_, _ = w.Write([]byte("Root"))
}

func (h *testHandler) SetAllow(allow map[string][]*net.IPNet) {
	h.allow = allow
}

func newClient() *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.TLSClientConfig = clientTLS
	return &http.Client{Transport: transport}
}

func setupHTTPS(t *testing.T) (string, *testHandler, listeners.Listener) {
	listen := freeAddress(t)
	conf := listeners.HTTPSConfiguration{
		MaximumConnections: 5,
		Listen:             []string{listen},
		Allow: map[string][]string{
			"details": {"127.0.0.1/32", " ::1/128 "},
		},
	}

	tlsConfig, _ := serverTLS(t)
	h := &testHandler{}
	l, err := listeners.NewHTTPS(&conf, logger.New(logCategory), tlsConfig, h)
	if nil != err {
		t.Fatalf("NewHTTPS error: %s", err)
	}
	if err := l.Serve(); nil != err {
		t.Fatalf("Serve error: %s", err)
	}
	return listen, h, l
}

func get(t *testing.T, method string, url string) string {
	req, _ := http.NewRequest(method, url, nil)
	resp, err := newClient().Do(req)
	if nil != err {
		t.Fatalf("%s %s error: %s", method, url, err)
	}
	defer resp.Body.Close()
	b, _ := io.ReadAll(resp.Body)
	return string(b)
}

func TestHttpsListenerRoutes(t *testing.T) {
	listen, h, l := setupHTTPS(t)
	defer l.Close()

	assert.Equal(t, "RPC", get(t, http.MethodPost, "https://"+listen+"/trustd/rpc"), "rpc route")
	assert.Equal(t, "Details", get(t, http.MethodGet, "https://"+listen+"/trustd/details"), "details route")
	assert.Equal(t, "Root", get(t, http.MethodGet, "https://"+listen+"/unknown/path"), "fallback route")

	assert.Equal(t, 2, len(h.allow["details"]), "allow list passed to handler")
}

func TestHttpsListenerDisabled(t *testing.T) {
	l, err := listeners.NewHTTPS(&listeners.HTTPSConfiguration{}, logger.New(logCategory), nil, &testHandler{})
	assert.Nil(t, err, "no listen addresses")
	assert.Nil(t, l, "listener created")
}

func TestHttpsListenerConfiguration(t *testing.T) {
	conf := listeners.HTTPSConfiguration{
		MaximumConnections: 0,
		Listen:             []string{"127.0.0.1:2131"},
	}
	_, err := listeners.NewHTTPS(&conf, logger.New(logCategory), nil, &testHandler{})
	assert.Equal(t, fault.MissingParameters, err, "zero connections")

	conf.MaximumConnections = 1
	conf.Allow = map[string][]string{"details": {"not-a-network"}}
	_, err = listeners.NewHTTPS(&conf, logger.New(logCategory), nil, &testHandler{})
	assert.NotNil(t, err, "bad allow entry accepted")
}
