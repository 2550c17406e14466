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

// UpdateFramework - sparse in-place update by the framework authority
//
// the supplied address and bump must be the canonical derivation from
// the stored authority and framework id
func (r *Registry) UpdateFramework(caller *account.Account, frameworkAddress address.Address, bump uint8, update FrameworkUpdate) error {
	if nil == caller {
		return fault.MissingCaller
	}

	r.Lock()
	defer r.Unlock()

	var frameworkId uint64
	err := r.atomically(func(trx storage.Transaction) error {

		framework, err := r.framework(trx, frameworkAddress)
		if nil != err {
			return err
		}
		frameworkId = framework.FrameworkId

		if !framework.Authority.Equal(caller) {
			r.log.Warnf("framework: %s update attempted by: %s", frameworkAddress, caller)
			return fault.Unauthorized
		}

		derived, err := address.CreateAddress(record.FrameworkSeeds(framework.Authority, framework.FrameworkId), framework.Bump)
		if nil != err || derived != frameworkAddress || bump != framework.Bump {
			return fault.AddressMismatch
		}

		if nil != update.Name {
			if err := record.CheckFrameworkName(*update.Name); nil != err {
				return err
			}
			framework.Name = *update.Name
		}
		if nil != update.Description {
			if err := record.CheckFrameworkDescription(*update.Description); nil != err {
				return err
			}
			framework.Description = *update.Description
		}
		if nil != update.Criteria {
			if err := record.CheckCriteria(*update.Criteria); nil != err {
				return err
			}
			framework.Criteria = *update.Criteria
		}
		if nil != update.IsActive {
			framework.IsActive = *update.IsActive
		}

		packed, err := framework.Pack()
		if nil != err {
			return err
		}
		trx.Put(r.pools.Frameworks, frameworkAddress[:], packed)
		return nil
	})
	if nil != err {
		r.log.Debugf("update framework: %s by: %s  error: %s", frameworkAddress, caller, err)
		return err
	}

	r.log.Infof("trust framework: %d updated", frameworkId)
	return nil
}
