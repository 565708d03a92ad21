// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token

import (
	"context"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/vestingd/fault"
	"github.com/bitmark-inc/vestingd/fhe"
	"github.com/bitmark-inc/vestingd/identity"
	"github.com/bitmark-inc/vestingd/storage"
)

// Confidential - a token whose balances live in the local database
type Confidential struct {
	log   *logger.L
	id    identity.Identity
	name  string
	store *storage.Store
	fhe   fhe.Coprocessor
	clock func() uint64
}

// Identity - address of the token
func (t *Confidential) Identity() identity.Identity {
	return t.id
}

// Name - the registered name
func (t *Confidential) Name() string {
	return t.name
}

// Mint - add an encrypted input to the balance of to
//
// the input proof must bind it to this token and the recipient.
// Returns the new balance handle of to.
func (t *Confidential) Mint(ctx context.Context, to identity.Identity, amount fhe.Handle, proof []byte) (fhe.Handle, error) {
	if to.IsZero() {
		return fhe.Nil, fault.ErrInvalidIdentity
	}

	var balance fhe.Handle
	err := t.store.Run(ctx, func(ctx context.Context, trx storage.Transaction) error {
		verified, err := t.fhe.VerifyInput(ctx, amount, proof, t.id, to)
		if nil != err {
			return err
		}

		b, err := t.fhe.Add(ctx, t.balance(trx, to), verified)
		if nil != err {
			return err
		}
		trx.Put(t.store.Pool.Balances, t.balanceKey(to), b[:])

		if err := fhe.AllowAll(ctx, t.fhe, b, to, t.id); nil != err {
			return err
		}
		balance = b
		return nil
	})
	if nil != err {
		t.log.Warnf("mint: %s  to: %s  error: %s", t.id, to, err)
		return fhe.Nil, err
	}

	t.log.Infof("mint: %s  to: %s", t.id, to)
	return balance, nil
}

// SetOperator - allow operator to move holder funds until a timestamp
func (t *Confidential) SetOperator(ctx context.Context, holder identity.Identity, operator identity.Identity, until uint64) error {
	if holder.IsZero() || operator.IsZero() {
		return fault.ErrInvalidIdentity
	}
	return t.store.Run(ctx, func(_ context.Context, trx storage.Transaction) error {
		trx.PutN(t.store.Pool.Operators, t.operatorKey(holder, operator), until)
		return nil
	})
}

// IsOperator - true if spender may move holder funds now
func (t *Confidential) IsOperator(ctx context.Context, holder identity.Identity, spender identity.Identity) bool {
	if holder == spender {
		return true
	}
	until, found := t.store.Reader(ctx).GetN(t.store.Pool.Operators, t.operatorKey(holder, spender))
	return found && t.clock() <= until
}

// ConfidentialBalanceOf - encrypted balance, Nil if never funded
func (t *Confidential) ConfidentialBalanceOf(ctx context.Context, holder identity.Identity) (fhe.Handle, error) {
	return t.balance(t.store.Reader(ctx), holder), nil
}

// ConfidentialTransfer - holder moves its own funds
func (t *Confidential) ConfidentialTransfer(ctx context.Context, from identity.Identity, to identity.Identity, amount fhe.Handle) (fhe.Handle, error) {
	return t.ConfidentialTransferFrom(ctx, from, from, to, amount)
}

// ConfidentialTransferFrom - move at most the balance of from
func (t *Confidential) ConfidentialTransferFrom(ctx context.Context, spender identity.Identity, from identity.Identity, to identity.Identity, amount fhe.Handle) (fhe.Handle, error) {
	if from.IsZero() || to.IsZero() {
		return fhe.Nil, fault.ErrInvalidIdentity
	}
	if !t.IsOperator(ctx, from, spender) {
		return fhe.Nil, fault.ErrNotOperator
	}
	if !t.fhe.IsAllowed(ctx, amount, spender) {
		return fhe.Nil, fault.ErrHandleNotAllowed
	}

	var transferred fhe.Handle
	err := t.store.Run(ctx, func(ctx context.Context, trx storage.Transaction) error {
		fromBalance := t.balance(trx, from)

		sufficient, err := t.fhe.Ge(ctx, fromBalance, amount)
		if nil != err {
			return err
		}
		moved, err := t.fhe.Select(ctx, sufficient, amount, fhe.Nil)
		if nil != err {
			return err
		}
		fromBalance, err = t.fhe.Sub(ctx, fromBalance, moved)
		if nil != err {
			return err
		}
		trx.Put(t.store.Pool.Balances, t.balanceKey(from), fromBalance[:])

		toBalance, err := t.fhe.Add(ctx, t.balance(trx, to), moved)
		if nil != err {
			return err
		}
		trx.Put(t.store.Pool.Balances, t.balanceKey(to), toBalance[:])

		if err := fhe.AllowAll(ctx, t.fhe, fromBalance, from, t.id); nil != err {
			return err
		}
		if err := fhe.AllowAll(ctx, t.fhe, toBalance, to, t.id); nil != err {
			return err
		}
		if err := fhe.AllowAll(ctx, t.fhe, moved, from, to, spender); nil != err {
			return err
		}

		transferred = moved
		return nil
	})
	if nil != err {
		return fhe.Nil, err
	}

	t.log.Debugf("transfer: %s  spender: %s  from: %s  to: %s", t.id, spender, from, to)
	return transferred, nil
}

func (t *Confidential) balance(reader storage.Reader, holder identity.Identity) fhe.Handle {
	buffer := reader.Get(t.store.Pool.Balances, t.balanceKey(holder))
	h, err := fhe.HandleFromBytes(buffer)
	if nil != err {
		return fhe.Nil
	}
	return h
}

// token ++ holder
func (t *Confidential) balanceKey(holder identity.Identity) []byte {
	key := make([]byte, 0, 2*identity.Length)
	key = append(key, t.id[:]...)
	return append(key, holder[:]...)
}

// token ++ holder ++ operator
func (t *Confidential) operatorKey(holder identity.Identity, operator identity.Identity) []byte {
	key := make([]byte, 0, 3*identity.Length)
	key = append(key, t.id[:]...)
	key = append(key, holder[:]...)
	return append(key, operator[:]...)
}
