// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error values shared by all packages
//
// each error belongs to a class (access, exists, invalid, length, not
// found, process) so that the RPC and HTTPS layers can pick a status
// from the class alone, and callers compare against the single
// instance instead of matching message text
package fault
