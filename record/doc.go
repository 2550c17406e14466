// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package record holds the three registry entities and their fixed
// capacity storage layout.
//
// Every packed record starts with an eight byte discriminator (the
// first bytes of SHA3-256 of "record:" and the type name) and is zero
// padded to exactly the Space of its type.  Integers are little
// endian, strings carry a four byte length, lists a four byte count,
// options and booleans a single byte.  Packing validates every bound
// first so nothing is ever truncated.
package record
