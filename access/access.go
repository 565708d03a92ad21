// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package access - read authorisation for vesting account ledgers
//
// this only decides who may obtain a ledger handle; who may decrypt
// a handle is the grant table kept by the coprocessor
package access

import (
	"github.com/bitmark-inc/vestingd/fault"
	"github.com/bitmark-inc/vestingd/identity"
)

// Parties - the two identities with read rights on an account
type Parties interface {
	Owner() identity.Identity
	Beneficiary() identity.Identity
}

// CanRead - true iff requester is the owner or the beneficiary
func CanRead(requester identity.Identity, account Parties) bool {
	if requester.IsZero() {
		return false
	}
	return requester == account.Owner() || requester == account.Beneficiary()
}

// Check - CanRead as an error
func Check(requester identity.Identity, account Parties) error {
	if !CanRead(requester, account) {
		return fault.ErrNotAuthorized
	}
	return nil
}
