// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package address derives the storage location of every registry entity.
//
// An address is SHA3-256 over the seeds, a one byte bump and a fixed
// domain marker. Addresses that decode as an ed25519 point are
// rejected so that no storage location can double as a signing key;
// FindAddress searches the bump from 255 downward and the first
// acceptable value is the canonical bump stored in the record.
package address
