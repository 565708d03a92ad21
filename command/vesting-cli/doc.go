// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// vesting-cli - command line client for vestingd
//
// the configuration is kept in:
//
//   ${XDG_CONFIG_HOME}/vesting-cli/CHAIN-vesting-cli.json
//
// and holds the server connections and password protected identities
package main
