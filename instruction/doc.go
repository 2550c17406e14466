// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package instruction packs the signed requests that carry a caller's
// identity to the registry.
//
// The caller's account is part of the signed message, so a packed
// instruction that passes Pack is the only authentication the
// registry needs.
package instruction
