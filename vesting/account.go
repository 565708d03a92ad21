// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package vesting - a linear vesting schedule over confidential tokens
//
// each account keeps one encrypted ledger per token. Funding is
// permissionless, release is callable by anyone and always pays the
// beneficiary, and only the owner or beneficiary may read the ledger.
package vesting

import (
	"context"

	"github.com/bitmark-inc/vestingd/access"
	"github.com/bitmark-inc/vestingd/event"
	"github.com/bitmark-inc/vestingd/fault"
	"github.com/bitmark-inc/vestingd/fhe"
	"github.com/bitmark-inc/vestingd/identity"
	"github.com/bitmark-inc/vestingd/ledger"
	"github.com/bitmark-inc/vestingd/storage"
	"github.com/bitmark-inc/vestingd/token"
)

// Account - one vesting schedule
type Account struct {
	record Record
	env    *Environment
}

// marks a deposit in progress on one ledger
type depositGuard struct {
	account identity.Identity
	token   identity.Identity
}

// Load - open a stored account
func Load(ctx context.Context, env *Environment, id identity.Identity) (*Account, error) {
	buffer := env.Store.Reader(ctx).Get(env.Store.Pool.Accounts, id[:])
	if nil == buffer {
		return nil, fault.ErrAccountNotFound
	}
	r, err := UnpackRecord(id, buffer)
	if nil != err {
		return nil, err
	}
	return &Account{
		record: r,
		env:    env,
	}, nil
}

// Create - store a new account record
//
// the record is validated and must not already exist
func Create(ctx context.Context, env *Environment, r Record) (*Account, error) {
	err := Validate(r.Owner, r.Beneficiary, r.Start, r.Duration)
	if nil != err {
		return nil, err
	}
	if r.ID.IsZero() {
		return nil, fault.ErrInvalidIdentity
	}

	err = env.Store.Run(ctx, func(ctx context.Context, trx storage.Transaction) error {
		if trx.Has(env.Store.Pool.Accounts, r.ID[:]) {
			return fault.ErrAccountExists
		}
		trx.Put(env.Store.Pool.Accounts, r.ID[:], r.Pack())
		return nil
	})
	if nil != err {
		return nil, err
	}

	return &Account{
		record: r,
		env:    env,
	}, nil
}

// ID - the account identity, also its token holder address
func (a *Account) ID() identity.Identity { return a.record.ID }

// Owner - the party that created the schedule
func (a *Account) Owner() identity.Identity { return a.record.Owner }

// Beneficiary - the party receiving released tokens
func (a *Account) Beneficiary() identity.Identity { return a.record.Beneficiary }

// Token - the token named at creation
func (a *Account) Token() identity.Identity { return a.record.Token }

// Start - vesting start time
func (a *Account) Start() uint64 { return a.record.Start }

// Duration - vesting duration in seconds
func (a *Account) Duration() uint64 { return a.record.Duration }

// End - time at which everything is vested
func (a *Account) End() uint64 { return a.Schedule().End() }

// Record - copy of the immutable data
func (a *Account) Record() Record { return a.record }

// Schedule - the public vesting times
func (a *Account) Schedule() ledger.Schedule {
	return ledger.Schedule{
		Start:    a.record.Start,
		Duration: a.record.Duration,
	}
}

// DepositTokens - fund the account from depositor
//
// the encrypted amount must carry a proof bound to this account and
// the depositor. The allocation grows by what the token actually moved,
// so an amount above the depositor balance adds zero.
// Returns the updated total allocation handle.
func (a *Account) DepositTokens(ctx context.Context, depositor identity.Identity, tokenID identity.Identity, amount fhe.Handle, proof []byte) (fhe.Handle, error) {
	log := a.env.Log

	guard := depositGuard{account: a.record.ID, token: tokenID}
	if nil != ctx.Value(guard) {
		return fhe.Nil, fault.ErrReentrantCall
	}

	var total fhe.Handle
	err := a.env.Store.Run(ctx, func(ctx context.Context, trx storage.Transaction) error {
		ctx = context.WithValue(ctx, guard, true)

		verified, err := a.env.FHE.VerifyInput(ctx, amount, proof, a.record.ID, depositor)
		if nil != err {
			log.Warnf("deposit: %s  input rejected: %s", a.record.ID, err)
			return fault.ErrInvalidCiphertext
		}

		tok, err := a.env.Tokens.Token(ctx, tokenID)
		if nil != err {
			return err
		}
		if err := a.env.FHE.Allow(ctx, verified, tok.Identity()); nil != err {
			return err
		}

		transferred, err := tok.ConfidentialTransferFrom(ctx, a.record.ID, depositor, a.record.ID, verified)
		if nil != err {
			log.Warnf("deposit: %s  transfer from: %s  error: %s", a.record.ID, depositor, err)
			return fault.ErrTransferFailed
		}

		// read after the transfer so a nested call cannot be overwritten
		l, err := a.ledger(trx, tokenID)
		if nil != err {
			return err
		}
		l, err = l.Deposit(ctx, a.env.FHE, transferred)
		if nil != err {
			return err
		}
		trx.Put(a.env.Store.Pool.Ledgers, ledgerKey(a.record.ID, tokenID), l.Pack())

		err = fhe.AllowAll(ctx, a.env.FHE, l.TotalAllocation, a.record.ID, a.record.Owner, a.record.Beneficiary)
		if nil != err {
			return err
		}

		err = a.env.Events.Append(ctx, event.Event{
			Kind:      event.TokensDeposited,
			Timestamp: a.env.Clock(),
			Account:   a.record.ID,
			Token:     tokenID,
			Depositor: &depositor,
			Amount:    &transferred,
			Handle:    &l.TotalAllocation,
		})
		if nil != err {
			return err
		}

		total = l.TotalAllocation
		return nil
	})
	if nil != err {
		return fhe.Nil, err
	}

	log.Infof("deposit: %s  token: %s  depositor: %s", a.record.ID, tokenID, depositor)
	return total, nil
}

// Release - pay the claimable amount to the beneficiary
//
// released is updated before the token is called, so a call that
// re-enters Release from the transfer finds nothing more to claim.
// Releasing with nothing claimable succeeds and moves zero.
// Returns the claimable handle.
func (a *Account) Release(ctx context.Context, caller identity.Identity, tokenID identity.Identity) (fhe.Handle, error) {
	log := a.env.Log

	var claimable fhe.Handle
	err := a.env.Store.Run(ctx, func(ctx context.Context, trx storage.Transaction) error {

		tok, err := a.env.Tokens.Token(ctx, tokenID)
		if nil != err {
			return err
		}

		l, err := a.ledger(trx, tokenID)
		if nil != err {
			return err
		}
		l, amount, err := l.Release(ctx, a.env.FHE, a.Schedule(), a.env.Clock())
		if nil != err {
			return err
		}

		// effects
		trx.Put(a.env.Store.Pool.Ledgers, ledgerKey(a.record.ID, tokenID), l.Pack())

		err = fhe.AllowAll(ctx, a.env.FHE, l.Released, a.record.ID, a.record.Owner, a.record.Beneficiary)
		if nil != err {
			return err
		}
		err = fhe.AllowAll(ctx, a.env.FHE, amount, a.record.ID, a.record.Beneficiary, tok.Identity())
		if nil != err {
			return err
		}

		// interaction
		_, err = tok.ConfidentialTransfer(ctx, a.record.ID, a.record.Beneficiary, amount)
		if nil != err {
			log.Warnf("release: %s  transfer to: %s  error: %s", a.record.ID, a.record.Beneficiary, err)
			return fault.ErrTransferFailed
		}

		err = a.env.Events.Append(ctx, event.Event{
			Kind:      event.TokensReleased,
			Timestamp: a.env.Clock(),
			Account:   a.record.ID,
			Token:     tokenID,
			Handle:    &amount,
		})
		if nil != err {
			return err
		}

		claimable = amount
		return nil
	})
	if nil != err {
		return fhe.Nil, err
	}

	log.Infof("release: %s  token: %s  caller: %s", a.record.ID, tokenID, caller)
	return claimable, nil
}

// TotalAllocation - encrypted cumulative deposits
func (a *Account) TotalAllocation(ctx context.Context, requester identity.Identity, tokenID identity.Identity) (fhe.Handle, error) {
	l, err := a.read(ctx, requester, tokenID)
	if nil != err {
		return fhe.Nil, err
	}
	return l.TotalAllocation, nil
}

// Released - encrypted cumulative releases
func (a *Account) Released(ctx context.Context, requester identity.Identity, tokenID identity.Identity) (fhe.Handle, error) {
	l, err := a.read(ctx, requester, tokenID)
	if nil != err {
		return fhe.Nil, err
	}
	return l.Released, nil
}

// VestedAmount - encrypted amount vested at a given time
//
// the result is granted to the requester
func (a *Account) VestedAmount(ctx context.Context, requester identity.Identity, tokenID identity.Identity, at uint64) (fhe.Handle, error) {
	return a.compute(ctx, requester, tokenID, func(ctx context.Context, l ledger.Ledger) (fhe.Handle, error) {
		return l.VestedAmount(ctx, a.env.FHE, a.Schedule(), at)
	})
}

// Releasable - encrypted amount a release would pay now
//
// the result is granted to the requester
func (a *Account) Releasable(ctx context.Context, requester identity.Identity, tokenID identity.Identity) (fhe.Handle, error) {
	return a.compute(ctx, requester, tokenID, func(ctx context.Context, l ledger.Ledger) (fhe.Handle, error) {
		return l.Releasable(ctx, a.env.FHE, a.Schedule(), a.env.Clock())
	})
}

// gated read of a ledger, no side effects on rejection
func (a *Account) read(ctx context.Context, requester identity.Identity, tokenID identity.Identity) (ledger.Ledger, error) {
	if err := access.Check(requester, a); nil != err {
		return ledger.Ledger{}, err
	}
	return a.ledger(a.env.Store.Reader(ctx), tokenID)
}

// gated computation producing a new ciphertext for the requester
func (a *Account) compute(ctx context.Context, requester identity.Identity, tokenID identity.Identity, f func(context.Context, ledger.Ledger) (fhe.Handle, error)) (fhe.Handle, error) {
	if err := access.Check(requester, a); nil != err {
		return fhe.Nil, err
	}

	var result fhe.Handle
	err := a.env.Store.Run(ctx, func(ctx context.Context, trx storage.Transaction) error {
		l, err := a.ledger(trx, tokenID)
		if nil != err {
			return err
		}
		h, err := f(ctx, l)
		if nil != err {
			return err
		}
		if err := a.env.FHE.Allow(ctx, h, requester); nil != err {
			return err
		}
		result = h
		return nil
	})
	return result, err
}

func (a *Account) ledger(reader storage.Reader, tokenID identity.Identity) (ledger.Ledger, error) {
	return ledger.Unpack(reader.Get(a.env.Store.Pool.Ledgers, ledgerKey(a.record.ID, tokenID)))
}

// account ++ token
func ledgerKey(account identity.Identity, tokenID identity.Identity) []byte {
	key := make([]byte, 0, 2*identity.Length)
	key = append(key, account[:]...)
	return append(key, tokenID[:]...)
}

// ensure the reference token satisfies the interface used here
var _ token.Token = (*token.Confidential)(nil)
