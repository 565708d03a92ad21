// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"context"
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/vestingd/identity"
	"github.com/bitmark-inc/vestingd/registry"
	"github.com/bitmark-inc/vestingd/rpc/auth"
	"github.com/bitmark-inc/vestingd/rpc/ratelimit"
)

// Registry
// --------

const (
	rateLimitRegistry = 200
	rateBurstRegistry = 100
)

// Registry - type for the RPC
type Registry struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Registry *registry.Registry
	Replay   *auth.Replay
	Clock    func() time.Time
}

// New - registry service
func New(log *logger.L, r *registry.Registry, replay *auth.Replay, clock func() time.Time) *Registry {
	return &Registry{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitRegistry, rateBurstRegistry),
		Registry: r,
		Replay:   replay,
		Clock:    clock,
	}
}

// Create wallet
// -------------

// CreateRequest - the signed part of a create
type CreateRequest struct {
	Token       identity.Identity `json:"token"`
	Beneficiary identity.Identity `json:"beneficiary"`
	Start       uint64            `json:"start,string"`
	Duration    uint64            `json:"duration,string"`
}

// CreateArguments - arguments for RPC
type CreateArguments struct {
	Authorization auth.Authorization `json:"authorization"`
	Request       CreateRequest      `json:"request"`
}

// CreateReply - result of create RPC
type CreateReply struct {
	Account identity.Identity `json:"account"`
}

// Create - new vesting account owned by the caller
func (r *Registry) Create(arguments *CreateArguments, reply *CreateReply) error {

	if err := ratelimit.Limit(r.Limiter); nil != err {
		return err
	}

	request := arguments.Request
	return r.Replay.Once(context.Background(), arguments.Authorization, "Registry.Create", &arguments.Request, r.Clock(), func(ctx context.Context) error {
		id, err := r.Registry.CreateVestingWallet(ctx, arguments.Authorization.Caller, request.Token, request.Beneficiary, request.Start, request.Duration)
		if nil != err {
			return err
		}

		reply.Account = id
		return nil
	})
}

// Wallet lists
// ------------

// WalletsArguments - arguments for RPC
type WalletsArguments struct {
	Identity identity.Identity `json:"identity"`
	Start    uint64            `json:"start,string"` // first record number
	Count    int               `json:"count"`        // number of records
}

// WalletsReply - result of wallet list RPC
type WalletsReply struct {
	Next uint64          `json:"next,string"` // start value for the next call
	Data []registry.Item `json:"data"`
}

// OwnerWallets - accounts created by an identity
func (r *Registry) OwnerWallets(arguments *WalletsArguments, reply *WalletsReply) error {
	return r.wallets(arguments, reply, r.Registry.ListOwnerWallets)
}

// BeneficiaryWallets - accounts paying an identity
func (r *Registry) BeneficiaryWallets(arguments *WalletsArguments, reply *WalletsReply) error {
	return r.wallets(arguments, reply, r.Registry.ListBeneficiaryWallets)
}

func (r *Registry) wallets(arguments *WalletsArguments, reply *WalletsReply, list func(identity.Identity, uint64, int) ([]registry.Item, error)) error {

	if err := ratelimit.LimitN(r.Limiter, arguments.Count, registry.MaximumCount); nil != err {
		return err
	}

	items, err := list(arguments.Identity, arguments.Start, arguments.Count)
	if nil != err {
		return err
	}

	reply.Next = arguments.Start
	if n := len(items); n > 0 {
		reply.Next = items[n-1].N + 1
	}
	reply.Data = items
	return nil
}
