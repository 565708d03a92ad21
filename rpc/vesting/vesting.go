// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vesting

import (
	"context"
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/vestingd/fhe"
	"github.com/bitmark-inc/vestingd/identity"
	"github.com/bitmark-inc/vestingd/registry"
	"github.com/bitmark-inc/vestingd/rpc/auth"
	"github.com/bitmark-inc/vestingd/rpc/ratelimit"
	"github.com/bitmark-inc/vestingd/vesting"
)

// Vesting
// -------

const (
	rateLimitVesting = 200
	rateBurstVesting = 100
)

// Vesting - type for the RPC
type Vesting struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Registry *registry.Registry
	Replay   *auth.Replay
	Clock    func() time.Time
}

// New - vesting account service
func New(log *logger.L, r *registry.Registry, replay *auth.Replay, clock func() time.Time) *Vesting {
	return &Vesting{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitVesting, rateBurstVesting),
		Registry: r,
		Replay:   replay,
		Clock:    clock,
	}
}

// Account info
// ------------

// InfoArguments - arguments for RPC
type InfoArguments struct {
	Account identity.Identity `json:"account"`
}

// InfoReply - public schedule data
type InfoReply struct {
	vesting.Record
	End uint64 `json:"end"`
}

// Info - public data of one account
func (v *Vesting) Info(arguments *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(v.Limiter); nil != err {
		return err
	}

	a, err := v.Registry.Open(context.Background(), arguments.Account)
	if nil != err {
		return err
	}

	reply.Record = a.Record()
	reply.End = a.End()
	return nil
}

// Deposit
// -------

// DepositRequest - the signed part of a deposit
type DepositRequest struct {
	Account identity.Identity `json:"account"`
	Token   identity.Identity `json:"token"`
	Amount  fhe.Handle        `json:"amount"`
	Proof   []byte            `json:"proof"`
}

// DepositArguments - arguments for RPC
type DepositArguments struct {
	Authorization auth.Authorization `json:"authorization"`
	Request       DepositRequest     `json:"request"`
}

// DepositReply - result of deposit RPC
type DepositReply struct {
	TotalAllocation fhe.Handle `json:"totalAllocation"`
}

// Deposit - fund an account from the caller
func (v *Vesting) Deposit(arguments *DepositArguments, reply *DepositReply) error {

	if err := ratelimit.Limit(v.Limiter); nil != err {
		return err
	}

	request := arguments.Request
	return v.Replay.Once(context.Background(), arguments.Authorization, "Vesting.Deposit", &arguments.Request, v.Clock(), func(ctx context.Context) error {
		a, tokenID, err := v.open(ctx, request.Account, request.Token)
		if nil != err {
			return err
		}

		total, err := a.DepositTokens(ctx, arguments.Authorization.Caller, tokenID, request.Amount, request.Proof)
		if nil != err {
			return err
		}

		reply.TotalAllocation = total
		return nil
	})
}

// Release and queries
// -------------------

// AccountRequest - the signed part of release and query calls
//
// a zero token selects the token named at creation
type AccountRequest struct {
	Account identity.Identity `json:"account"`
	Token   identity.Identity `json:"token"`
}

// AccountArguments - arguments for RPC
type AccountArguments struct {
	Authorization auth.Authorization `json:"authorization"`
	Request       AccountRequest     `json:"request"`
}

// HandleReply - a ciphertext handle
type HandleReply struct {
	Handle fhe.Handle `json:"handle"`
}

// Release - pay the claimable amount to the beneficiary
func (v *Vesting) Release(arguments *AccountArguments, reply *HandleReply) error {

	if err := ratelimit.Limit(v.Limiter); nil != err {
		return err
	}

	request := arguments.Request
	return v.Replay.Once(context.Background(), arguments.Authorization, "Vesting.Release", &arguments.Request, v.Clock(), func(ctx context.Context) error {
		a, tokenID, err := v.open(ctx, request.Account, request.Token)
		if nil != err {
			return err
		}

		h, err := a.Release(ctx, arguments.Authorization.Caller, tokenID)
		if nil != err {
			return err
		}

		reply.Handle = h
		return nil
	})
}

// TotalAllocation - encrypted deposits, owner or beneficiary only
func (v *Vesting) TotalAllocation(arguments *AccountArguments, reply *HandleReply) error {
	return v.call("Vesting.TotalAllocation", arguments, reply, func(ctx context.Context, a *vesting.Account, caller identity.Identity, tokenID identity.Identity) (fhe.Handle, error) {
		return a.TotalAllocation(ctx, caller, tokenID)
	})
}

// Released - encrypted releases, owner or beneficiary only
func (v *Vesting) Released(arguments *AccountArguments, reply *HandleReply) error {
	return v.call("Vesting.Released", arguments, reply, func(ctx context.Context, a *vesting.Account, caller identity.Identity, tokenID identity.Identity) (fhe.Handle, error) {
		return a.Released(ctx, caller, tokenID)
	})
}

// Releasable - encrypted amount a release would pay now
func (v *Vesting) Releasable(arguments *AccountArguments, reply *HandleReply) error {
	return v.call("Vesting.Releasable", arguments, reply, func(ctx context.Context, a *vesting.Account, caller identity.Identity, tokenID identity.Identity) (fhe.Handle, error) {
		return a.Releasable(ctx, caller, tokenID)
	})
}

// VestedRequest - the signed part of a vested amount query
type VestedRequest struct {
	AccountRequest
	At uint64 `json:"at,string"`
}

// VestedArguments - arguments for RPC
type VestedArguments struct {
	Authorization auth.Authorization `json:"authorization"`
	Request       VestedRequest      `json:"request"`
}

// VestedAmount - encrypted amount vested at a time
func (v *Vesting) VestedAmount(arguments *VestedArguments, reply *HandleReply) error {
	forward := &AccountArguments{
		Authorization: arguments.Authorization,
		Request:       arguments.Request.AccountRequest,
	}
	if err := arguments.Authorization.Verify("Vesting.VestedAmount", &arguments.Request, v.Clock()); nil != err {
		return err
	}
	return v.call("", forward, reply, func(ctx context.Context, a *vesting.Account, caller identity.Identity, tokenID identity.Identity) (fhe.Handle, error) {
		return a.VestedAmount(ctx, caller, tokenID, arguments.Request.At)
	})
}

type operation func(context.Context, *vesting.Account, identity.Identity, identity.Identity) (fhe.Handle, error)

// verify, open and run; an empty method means already verified
func (v *Vesting) call(method string, arguments *AccountArguments, reply *HandleReply, op operation) error {

	if err := ratelimit.Limit(v.Limiter); nil != err {
		return err
	}

	if "" != method {
		if err := arguments.Authorization.Verify(method, &arguments.Request, v.Clock()); nil != err {
			return err
		}
	}

	ctx := context.Background()
	a, tokenID, err := v.open(ctx, arguments.Request.Account, arguments.Request.Token)
	if nil != err {
		return err
	}

	h, err := op(ctx, a, arguments.Authorization.Caller, tokenID)
	if nil != err {
		return err
	}

	reply.Handle = h
	return nil
}

func (v *Vesting) open(ctx context.Context, id identity.Identity, tokenID identity.Identity) (*vesting.Account, identity.Identity, error) {
	a, err := v.Registry.Open(ctx, id)
	if nil != err {
		return nil, identity.Zero, err
	}
	if tokenID.IsZero() {
		tokenID = a.Token()
	}
	return a, tokenID, nil
}
