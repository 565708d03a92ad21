// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - encrypted allocation and release accumulators
//
// a ledger is a value: every operation returns an updated copy and
// the caller decides when to persist it. Both accumulators only grow
// and released never exceeds the vested part of the allocation.
package ledger

import (
	"context"

	"github.com/bitmark-inc/vestingd/fault"
	"github.com/bitmark-inc/vestingd/fhe"
)

// PackedLength - bytes in a packed ledger
const PackedLength = 2 * fhe.HandleLength

// Ledger - the accumulators of one token in one vesting account
//
// a fresh ledger holds Nil handles which act as encrypted zero
type Ledger struct {
	TotalAllocation fhe.Handle `json:"totalAllocation"`
	Released        fhe.Handle `json:"released"`
}

// Pack - total allocation ++ released
func (l Ledger) Pack() []byte {
	buffer := make([]byte, 0, PackedLength)
	buffer = append(buffer, l.TotalAllocation[:]...)
	return append(buffer, l.Released[:]...)
}

// Unpack - a nil buffer is a fresh ledger
func Unpack(buffer []byte) (Ledger, error) {
	var l Ledger
	if nil == buffer {
		return l, nil
	}
	if PackedLength != len(buffer) {
		return l, fault.ErrInvalidRecordLength
	}
	copy(l.TotalAllocation[:], buffer[:fhe.HandleLength])
	copy(l.Released[:], buffer[fhe.HandleLength:])
	return l, nil
}

// Deposit - add an amount to the allocation
func (l Ledger) Deposit(ctx context.Context, c fhe.Coprocessor, amount fhe.Handle) (Ledger, error) {
	total, err := c.Add(ctx, l.TotalAllocation, amount)
	if nil != err {
		return l, err
	}
	l.TotalAllocation = total
	return l, nil
}

// VestedAmount - encrypted amount vested at time now
//
//   now < start            → 0
//   now >= start+duration  → total allocation
//   otherwise              → total allocation * (now - start) / duration
//
// the comparisons use public times, only the selected amount is secret
func (l Ledger) VestedAmount(ctx context.Context, c fhe.Coprocessor, s Schedule, now uint64) (fhe.Handle, error) {
	if err := s.Validate(); nil != err {
		return fhe.Nil, err
	}

	proportional, err := c.MulDiv(ctx, l.TotalAllocation, s.Elapsed(now), s.Duration)
	if nil != err {
		return fhe.Nil, err
	}

	vested := fhe.Choose(now < s.Start,
		fhe.Nil,
		fhe.Choose(now >= s.End(), l.TotalAllocation, proportional),
	)
	return vested, nil
}

// Releasable - max(0, vested - released) without revealing which
func (l Ledger) Releasable(ctx context.Context, c fhe.Coprocessor, s Schedule, now uint64) (fhe.Handle, error) {
	vested, err := l.VestedAmount(ctx, c, s, now)
	if nil != err {
		return fhe.Nil, err
	}

	ahead, err := c.Ge(ctx, vested, l.Released)
	if nil != err {
		return fhe.Nil, err
	}
	difference, err := c.Sub(ctx, vested, l.Released)
	if nil != err {
		return fhe.Nil, err
	}
	return c.Select(ctx, ahead, difference, fhe.Nil)
}

// Release - move the releasable amount into released
//
// returns the updated ledger and the claimable amount to transfer
func (l Ledger) Release(ctx context.Context, c fhe.Coprocessor, s Schedule, now uint64) (Ledger, fhe.Handle, error) {
	claimable, err := l.Releasable(ctx, c, s, now)
	if nil != err {
		return l, fhe.Nil, err
	}

	released, err := c.Add(ctx, l.Released, claimable)
	if nil != err {
		return l, fhe.Nil, err
	}
	l.Released = released
	return l, claimable, nil
}
