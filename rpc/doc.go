// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - start and stop the client facing listeners
//
// a TLS JSON RPC listener serves the Registry, Vesting, Token,
// Coprocessor and Node services; an optional HTTPS listener serves
// read only wallet queries and a JSON RPC bridge, each path guarded by
// its own allow list
package rpc
