// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/trustregistry/background"
	"github.com/bitmark-inc/trustregistry/counter"
	"github.com/bitmark-inc/trustregistry/fault"
	"github.com/bitmark-inc/trustregistry/registry"
	"github.com/bitmark-inc/trustregistry/rpc/certificate"
	"github.com/bitmark-inc/trustregistry/rpc/handler"
	"github.com/bitmark-inc/trustregistry/rpc/listeners"
	"github.com/bitmark-inc/trustregistry/rpc/server"
)

const (
	rpcName   = "client_rpc"
	httpsName = "https_rpc"
)

// globals
type rpcData struct {
	sync.RWMutex // to allow locking

	log *logger.L // logger

	connectionCount counter.Counter
	listeners       []listeners.Listener

	background *background.T

	// set once during initialise
	initialised bool
}

// global data
var globalData rpcData

// Initialise - start the JSON-RPC and HTTPS listeners
func Initialise(rpcConfiguration *listeners.RPCConfiguration, httpsConfiguration *listeners.HTTPSConfiguration, version string, ops registry.Operations) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	log := logger.New("rpc")
	globalData.log = log
	log.Info("starting…")

	tlsConfig, fingerprint, err := certificate.Get(log, rpcName, rpcConfiguration.Certificate, rpcConfiguration.PrivateKey)
	if nil != err {
		return err
	}

	rpcListener, err := listeners.NewRPC(
		rpcConfiguration,
		logger.New(rpcName),
		&globalData.connectionCount,
		server.Create(log, version, &globalData.connectionCount, ops),
		tlsConfig,
		fingerprint,
	)
	if nil != err {
		return err
	}

	if err := rpcListener.Serve(); nil != err {
		return err
	}
	globalData.listeners = append(globalData.listeners, rpcListener)

	httpsListener, err := newHTTPS(httpsConfiguration, version, ops)
	if nil != err {
		closeAll()
		return err
	}
	if nil != httpsListener {
		if err := httpsListener.Serve(); nil != err {
			closeAll()
			return err
		}
		globalData.listeners = append(globalData.listeners, httpsListener)
	}

	processes := background.Processes{
		&reporter{
			log:      log,
			count:    &globalData.connectionCount,
			interval: reportInterval,
		},
	}
	globalData.background = background.Start(processes, nil)

	// all data initialised
	globalData.initialised = true

	return nil
}

// Finalise - stop all listeners
func Finalise() error {

	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.background.Stop()
	globalData.background = nil

	closeAll()

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

func closeAll() {
	for _, l := range globalData.listeners {
		l.Close()
	}
	globalData.listeners = nil
}

// the HTTPS listener has its own key pair and connection limit
func newHTTPS(configuration *listeners.HTTPSConfiguration, version string, ops registry.Operations) (listeners.Listener, error) {
	log := logger.New(httpsName)

	if 0 == len(configuration.Listen) {
		log.Infof("disable: %s", httpsName)
		return nil, nil
	}

	tlsConfig, fingerprint, err := certificate.Get(log, httpsName, configuration.Certificate, configuration.PrivateKey)
	if nil != err {
		return nil, err
	}
	log.Infof("%s: SHA3-256 fingerprint: %x", httpsName, fingerprint)

	s := server.Create(log, version, &globalData.connectionCount, ops)
	h := handler.New(log, s, time.Now(), version, configuration.MaximumConnections)

	return listeners.NewHTTPS(configuration, log, tlsConfig, h)
}
