// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

// Transaction - staged writes across all pools, committed as one batch
type Transaction interface {
	Begin() error
	Put(Handle, []byte, []byte)
	Get(Handle, []byte) []byte
	Has(Handle, []byte) bool
	Commit() error
	Abort()
	InUse() bool
}

// TransactionData - the single database transaction
type TransactionData struct {
	access Access
}

func newTransaction(access Access) Transaction {
	return &TransactionData{
		access: access,
	}
}

// Begin - open the batch
func (t *TransactionData) Begin() error {
	return t.access.Begin()
}

// Put - stage a value in a pool
func (t *TransactionData) Put(handle Handle, key []byte, value []byte) {
	handle.put(key, value)
}

// Get - read through the staged values
func (t *TransactionData) Get(handle Handle, key []byte) []byte {
	return handle.Get(key)
}

// Has - existence through the staged values
func (t *TransactionData) Has(handle Handle, key []byte) bool {
	return handle.Has(key)
}

// Commit - write the batch atomically
func (t *TransactionData) Commit() error {
	return t.access.Commit()
}

// Abort - discard the batch
func (t *TransactionData) Abort() {
	t.access.Abort()
}

// InUse - true while the batch is open
func (t *TransactionData) InUse() bool {
	return t.access.InUse()
}
