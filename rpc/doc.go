// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - set up the incoming JSON-RPC listeners for the
// registry services
//
// standard golang RPC clients with the JSON codec can be used to
// access these services, the HTTPS listener accepts the same requests
// as a POST body
package rpc
