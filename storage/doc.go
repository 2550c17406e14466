// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage maintains the on-disk registry data store
//
// This maintains a LevelDB database split into a series of pools.
// Each pool is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available pools.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++       = concatenation of byte data
// 3. address  = 32 byte derived address
// 4. packed   = fixed size record, zero padded
//
// Registry:
//
//	F ++ address   - trust frameworks
//	                 data: packed TrustFramework (1360 bytes)
//	A ++ address   - asset profiles
//	                 data: packed AssetProfile (672 bytes)
//	R ++ address   - trust records
//	                 data: packed TrustRecord (628 bytes)
//
// Database version:
//
//	\x00VERSION    - big endian uint32
package storage
