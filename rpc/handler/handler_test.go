// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"net/rpc"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/trustregistry/chain"
	"github.com/bitmark-inc/trustregistry/fixtures"
	"github.com/bitmark-inc/trustregistry/mode"
	"github.com/bitmark-inc/trustregistry/rpc/handler"
)

const (
	logCategory     = "handler"
	notAllowed      = "method not allowed"
	tooManyRequests = "Too Many Requests"
)

type eResp struct {
	Code  int    `json:"code"`
	Error string `json:"error"`
}

type jResp struct {
	ID     int         `json:"id"`
	Result int         `json:"result"`
	Error  interface{} `json:"error"`
}

type jReq struct {
	ID     int      `json:"id"`
	Method string   `json:"method"`
	Params []AddArg `json:"params"`
}

type Add struct{}
type AddArg struct {
	A int `json:"A"`
	B int `json:"B"`
}

func (a Add) Add(arg *AddArg, reply *int) error {
	*reply = arg.A + arg.B
	return nil
}

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger(logCategory)
	_ = mode.Initialise(chain.Testing)
	rc := m.Run()
	_ = mode.Finalise()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

func newHandler(maximumConnections uint64) handler.Handler {
	s := rpc.NewServer()
	_ = s.Register(Add{})
	return handler.New(logger.New(logCategory), s, time.Now(), "1.0", maximumConnections)
}

func TestRoot(t *testing.T) {
	h := newHandler(5)

	req := httptest.NewRequest("GET", "http://not.found", nil)
	w := httptest.NewRecorder()
	h.Root(w, req)

	var j eResp
	_ = json.NewDecoder(w.Result().Body).Decode(&j)
	assert.Equal(t, "not found", j.Error, "wrong response")
	assert.Equal(t, http.StatusNotFound, j.Code, "wrong http code")
}

func TestRPC(t *testing.T) {
	h := newHandler(5)

	add := AddArg{A: 1, B: 2}
	data, _ := json.Marshal(jReq{ID: 5, Method: "Add.Add", Params: []AddArg{add}})

	req := httptest.NewRequest("POST", "http://not.exist", bytes.NewReader(data))
	w := httptest.NewRecorder()
	h.RPC(w, req)

	resp := w.Result()
	var j jResp
	_ = json.NewDecoder(resp.Body).Decode(&j)
	assert.Equal(t, http.StatusOK, resp.StatusCode, "wrong status code")
	assert.Equal(t, 5, j.ID, "wrong id")
	assert.Equal(t, add.A+add.B, j.Result, "wrong result")
	assert.Nil(t, j.Error, "wrong error")
}

func TestRPCWhenWrongHTTPMethod(t *testing.T) {
	h := newHandler(5)

	req := httptest.NewRequest("GET", "http://not.exist", nil)
	w := httptest.NewRecorder()
	h.RPC(w, req)

	var j eResp
	_ = json.NewDecoder(w.Result().Body).Decode(&j)
	assert.Equal(t, notAllowed, j.Error, "wrong method")
}

func TestRPCWhenTooManyConnections(t *testing.T) {
	h := newHandler(0)

	req := httptest.NewRequest("POST", "http://not.exist", nil)
	w := httptest.NewRecorder()
	h.RPC(w, req)

	var j eResp
	_ = json.NewDecoder(w.Result().Body).Decode(&j)
	assert.Equal(t, tooManyRequests, j.Error, "wrong error")
}

func TestRPCWhenServeError(t *testing.T) {
	h := newHandler(5)

	data, _ := json.Marshal(jReq{})

	req := httptest.NewRequest("POST", "http://not.exist", bytes.NewReader(data))
	w := httptest.NewRecorder()
	h.RPC(w, req)

	b, _ := io.ReadAll(w.Result().Body)
	assert.Contains(t, string(b), "internal server error", "wrong response")
}

func allowTestAddress(h handler.Handler) {
	allow := make(map[string][]*net.IPNet)
	_, ipNet, _ := net.ParseCIDR("192.0.2.0/24")
	allow["details"] = []*net.IPNet{ipNet}
	h.SetAllow(allow)
}

func TestDetails(t *testing.T) {
	h := newHandler(5)
	allowTestAddress(h)

	// httptest requests come from 192.0.2.1
	req := httptest.NewRequest("GET", "http://test.com/trustd/details", nil)
	w := httptest.NewRecorder()
	h.Details(w, req)

	resp := w.Result()
	var reply map[string]interface{}
	_ = json.NewDecoder(resp.Body).Decode(&reply)
	assert.Equal(t, http.StatusOK, resp.StatusCode, "wrong status code")
	assert.Equal(t, chain.Testing, reply["chain"], "wrong chain")
	assert.Equal(t, "1.0", reply["version"], "wrong version")
}

func TestDetailsWhenNotAllowed(t *testing.T) {
	h := newHandler(5)

	req := httptest.NewRequest("GET", "http://test.com/trustd/details", nil)
	w := httptest.NewRecorder()
	h.Details(w, req)

	var j eResp
	_ = json.NewDecoder(w.Result().Body).Decode(&j)
	assert.Equal(t, "forbidden", j.Error, "wrong not allow")

	allowTestAddress(h)
	req = httptest.NewRequest("GET", "http://test.com/trustd/details", nil)
	req.RemoteAddr = "198.51.100.7:4000"
	w = httptest.NewRecorder()
	h.Details(w, req)

	_ = json.NewDecoder(w.Result().Body).Decode(&j)
	assert.Equal(t, http.StatusForbidden, j.Code, "outside allowed network")
}

func TestDetailsWhenWrongHTTPMethod(t *testing.T) {
	h := newHandler(5)
	allowTestAddress(h)

	req := httptest.NewRequest("POST", "http://test.com/trustd/details", nil)
	w := httptest.NewRecorder()
	h.Details(w, req)

	var j eResp
	_ = json.NewDecoder(w.Result().Body).Decode(&j)
	assert.Equal(t, notAllowed, j.Error, "wrong method")
}

func TestDetailsWhenTooManyConnections(t *testing.T) {
	h := newHandler(0)
	allowTestAddress(h)

	req := httptest.NewRequest("GET", "http://test.com/trustd/details", nil)
	w := httptest.NewRecorder()
	h.Details(w, req)

	var j eResp
	_ = json.NewDecoder(w.Result().Body).Decode(&j)
	assert.Equal(t, tooManyRequests, j.Error, "wrong error")
}
