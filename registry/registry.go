// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/trustregistry/account"
	"github.com/bitmark-inc/trustregistry/address"
	"github.com/bitmark-inc/trustregistry/record"
	"github.com/bitmark-inc/trustregistry/storage"
)

// Clock - time source, read once per operation
type Clock func() time.Time

// Handles - the pools the registry reads and writes
type Handles struct {
	Frameworks storage.Handle
	Assets     storage.Handle
	Records    storage.Handle
}

// Operations - everything the transport layer may call
type Operations interface {
	CreateFramework(caller *account.Account, arguments FrameworkArguments) (address.Address, error)
	CreateAsset(caller *account.Account, arguments AssetArguments) (address.Address, error)
	IssueTrust(caller *account.Account, arguments TrustArguments) (address.Address, error)
	UpdateFramework(caller *account.Account, framework address.Address, bump uint8, update FrameworkUpdate) error

	Framework(address.Address) (*record.TrustFramework, error)
	Asset(address.Address) (*record.AssetProfile, error)
	Trust(address.Address) (*record.TrustRecord, error)
	LookupTrust(framework address.Address, issuer *account.Account, asset address.Address) (address.Address, *record.TrustRecord, error)

	Now() time.Time
}

// FrameworkArguments - create_framework parameters
type FrameworkArguments struct {
	FrameworkId uint64
	Name        string
	Description string
	Criteria    []string
}

// AssetArguments - create_asset parameters
type AssetArguments struct {
	AssetId     uint64
	Name        string
	Description string
	AssetType   record.AssetType
	MetadataUri *string
}

// TrustArguments - issue_trust parameters
//
// the score is wider than the stored byte so out of range values are
// reported rather than wrapped
type TrustArguments struct {
	Framework  address.Address
	Asset      address.Address
	TrustScore uint64
	Evidence   string
	ExpiresAt  *int64
}

// FrameworkUpdate - sparse update, nil fields are left unchanged
type FrameworkUpdate struct {
	Name        *string
	Description *string
	Criteria    *[]string
	IsActive    *bool
}

// Registry - serialised access to the entity pools
type Registry struct {
	sync.Mutex
	log         *logger.L
	pools       Handles
	transaction func() (storage.Transaction, error)
	clock       Clock
	testnet     bool
}

// New - create a registry over the given pools
//
// transaction must return an already begun storage transaction
func New(pools Handles, transaction func() (storage.Transaction, error), clock Clock, testnet bool) *Registry {
	if nil == clock {
		clock = time.Now
	}
	return &Registry{
		log:         logger.New("registry"),
		pools:       pools,
		transaction: transaction,
		clock:       clock,
		testnet:     testnet,
	}
}

// NewFromStorage - registry over the global storage pools
func NewFromStorage(testnet bool) *Registry {
	pools := Handles{
		Frameworks: storage.Pool.Frameworks,
		Assets:     storage.Pool.Assets,
		Records:    storage.Pool.Records,
	}
	return New(pools, storage.NewDBTransaction, time.Now, testnet)
}

// Now - the registry clock
func (r *Registry) Now() time.Time {
	return r.clock()
}

// run f inside a transaction, committing only if f succeeds
func (r *Registry) atomically(f func(trx storage.Transaction) error) error {
	trx, err := r.transaction()
	if nil != err {
		return err
	}

	err = f(trx)
	if nil != err {
		trx.Abort()
		return err
	}
	return trx.Commit()
}
