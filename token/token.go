// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package token - confidential fungible tokens with encrypted balances
package token

import (
	"context"

	"github.com/bitmark-inc/vestingd/fhe"
	"github.com/bitmark-inc/vestingd/identity"
)

// Token - the confidential token interface used by vesting accounts
//
// transfers never fail for lack of funds: an amount larger than the
// balance silently moves zero, and the returned handle is the amount
// actually moved
type Token interface {
	Identity() identity.Identity

	// holder moves its own funds
	ConfidentialTransfer(ctx context.Context, from identity.Identity, to identity.Identity, amount fhe.Handle) (fhe.Handle, error)

	// an operator of from moves funds on its behalf
	ConfidentialTransferFrom(ctx context.Context, spender identity.Identity, from identity.Identity, to identity.Identity, amount fhe.Handle) (fhe.Handle, error)

	ConfidentialBalanceOf(ctx context.Context, holder identity.Identity) (fhe.Handle, error)
}

// Resolver - find a token by its identity
type Resolver interface {
	Token(ctx context.Context, id identity.Identity) (Token, error)
}
