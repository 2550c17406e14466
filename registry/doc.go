// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package registry applies the four mutating operations and the direct
// lookups of the trust registry.
//
// Every operation runs under one mutex and stages its writes in a
// single storage transaction; a failure aborts the transaction so
// nothing is written.  The caller has already been authenticated by
// the instruction layer and is bound as authority, owner or issuer of
// anything it creates.
package registry
