// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"strings"

	"github.com/bitmark-inc/trustregistry/account"
	"github.com/bitmark-inc/trustregistry/address"
	"github.com/bitmark-inc/trustregistry/chain"
	"github.com/bitmark-inc/trustregistry/command/trust-cli/configuration"
	"github.com/bitmark-inc/trustregistry/fault"
)

// command line errors
var (
	ErrRequiredAddress     = fault.InvalidError("address is required")
	ErrRequiredConnect     = fault.InvalidError("connect is required")
	ErrRequiredDescription = fault.InvalidError("description is required")
	ErrRequiredId          = fault.InvalidError("id is required")
	ErrRequiredIdentity    = fault.InvalidError("identity is required")
	ErrRequiredName        = fault.InvalidError("name is required")
	ErrRequiredPacked      = fault.InvalidError("packed instruction is required")
	ErrRequiredScore       = fault.InvalidError("score is required")
	ErrNothingToUpdate     = fault.InvalidError("nothing to update")
)

// map aliases to a network name, blank if unknown
func checkNetwork(network string) string {
	switch strings.ToLower(network) {
	case "", "testing", "test":
		return chain.Testing
	case "live", "production":
		return chain.Live
	case "local", "regression":
		return chain.Local
	default:
		return ""
	}
}

// identity is required, fall back to the configured default
func checkName(name string, config *configuration.Configuration) (string, error) {
	if "" == name && nil != config {
		name = config.DefaultIdentity
	}
	if "" == name {
		return "", ErrRequiredIdentity
	}
	return name, nil
}

// connect is required
func checkConnect(connect string) (string, error) {
	if "" == connect {
		return "", ErrRequiredConnect
	}
	return connect, nil
}

// description is required
func checkDescription(description string) (string, error) {
	if "" == description {
		return "", ErrRequiredDescription
	}
	return description, nil
}

// a base58 record address is required
func checkAddress(s string) (address.Address, error) {
	if "" == s {
		return address.Address{}, ErrRequiredAddress
	}
	return address.FromBase58(s)
}

// an identity name from the configuration or a base58 account
func checkAccount(s string, config *configuration.Configuration) (*account.Account, error) {
	name, err := checkName(s, config)
	if nil != err {
		return nil, err
	}
	if _, ok := config.Identities[name]; ok {
		return config.Account(name)
	}
	return account.AccountFromBase58(name)
}

// optional private key, blank generates a new one
func checkPrivateKey(s string, testnet bool) (*account.PrivateKey, error) {
	if "" == s {
		return account.NewPrivateKey(testnet)
	}
	privateKey, err := account.PrivateKeyFromBase58(s)
	if nil != err {
		return nil, err
	}
	if privateKey.IsTesting() != testnet {
		return nil, fault.WrongNetworkForPrivateKey
	}
	return privateKey, nil
}

// returns true if the name is a directory
func checkFileExists(name string) (bool, error) {
	s, err := os.Stat(name)
	if nil != err {
		return false, err
	}
	return s.IsDir(), nil
}
