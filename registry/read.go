// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/bitmark-inc/trustregistry/account"
	"github.com/bitmark-inc/trustregistry/address"
	"github.com/bitmark-inc/trustregistry/fault"
	"github.com/bitmark-inc/trustregistry/record"
	"github.com/bitmark-inc/trustregistry/storage"
)

// Framework - fetch a framework by address
func (r *Registry) Framework(at address.Address) (*record.TrustFramework, error) {
	r.Lock()
	defer r.Unlock()

	return r.framework(nil, at)
}

// Asset - fetch an asset profile by address
func (r *Registry) Asset(at address.Address) (*record.AssetProfile, error) {
	r.Lock()
	defer r.Unlock()

	return r.asset(nil, at)
}

// Trust - fetch a trust record by address
func (r *Registry) Trust(at address.Address) (*record.TrustRecord, error) {
	r.Lock()
	defer r.Unlock()

	return r.trust(nil, at)
}

// LookupTrust - derive the record address for the triple and fetch it
func (r *Registry) LookupTrust(framework address.Address, issuer *account.Account, asset address.Address) (address.Address, *record.TrustRecord, error) {
	if nil == issuer {
		return address.Address{}, nil, fault.MissingCaller
	}

	trustAddress, _, err := record.TrustAddress(framework, issuer, asset)
	if nil != err {
		return address.Address{}, nil, err
	}

	r.Lock()
	defer r.Unlock()

	trust, err := r.trust(nil, trustAddress)
	if nil != err {
		return address.Address{}, nil, err
	}
	return trustAddress, trust, nil
}

// read through trx when one is open, otherwise straight from the pool
func (r *Registry) get(trx storage.Transaction, pool storage.Handle, at address.Address) []byte {
	if nil == trx {
		return pool.Get(at[:])
	}
	return trx.Get(pool, at[:])
}

func (r *Registry) framework(trx storage.Transaction, at address.Address) (*record.TrustFramework, error) {
	packed := r.get(trx, r.pools.Frameworks, at)
	if nil == packed {
		return nil, fault.FrameworkNotFound
	}
	framework, err := record.Packed(packed).UnpackTrustFramework(r.testnet)
	if nil != err {
		r.log.Errorf("framework: %s unpack error: %s", at, err)
		return nil, err
	}
	return framework, nil
}

func (r *Registry) asset(trx storage.Transaction, at address.Address) (*record.AssetProfile, error) {
	packed := r.get(trx, r.pools.Assets, at)
	if nil == packed {
		return nil, fault.AssetNotFound
	}
	asset, err := record.Packed(packed).UnpackAssetProfile(r.testnet)
	if nil != err {
		r.log.Errorf("asset: %s unpack error: %s", at, err)
		return nil, err
	}
	return asset, nil
}

func (r *Registry) trust(trx storage.Transaction, at address.Address) (*record.TrustRecord, error) {
	packed := r.get(trx, r.pools.Records, at)
	if nil == packed {
		return nil, fault.TrustNotFound
	}
	trust, err := record.Packed(packed).UnpackTrustRecord(r.testnet)
	if nil != err {
		r.log.Errorf("trust record: %s unpack error: %s", at, err)
		return nil, err
	}
	return trust, nil
}
