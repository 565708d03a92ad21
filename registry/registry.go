// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package registry - create vesting accounts and index them by owner
// and by beneficiary
package registry

import (
	"context"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/vestingd/event"
	"github.com/bitmark-inc/vestingd/identity"
	"github.com/bitmark-inc/vestingd/storage"
	"github.com/bitmark-inc/vestingd/vesting"
)

const counterName = "accounts"

// Registry - account factory
type Registry struct {
	log *logger.L
	env *vesting.Environment
}

// New - registry over the shared vesting environment
func New(env *vesting.Environment) *Registry {
	return &Registry{
		log: logger.New("registry"),
		env: env,
	}
}

// CreateVestingWallet - new account owned by caller
//
// the account id is derived from the caller and a registry wide
// sequence number, so ids are never reused
func (r *Registry) CreateVestingWallet(ctx context.Context, caller identity.Identity, tokenID identity.Identity, beneficiary identity.Identity, start uint64, duration uint64) (identity.Identity, error) {

	err := vesting.Validate(caller, beneficiary, start, duration)
	if nil != err {
		return identity.Zero, err
	}

	pools := r.env.Store.Pool

	var id identity.Identity
	err = r.env.Store.Run(ctx, func(ctx context.Context, trx storage.Transaction) error {
		n, _ := trx.GetN(pools.Counters, []byte(counterName))
		n++

		id = identity.Derive(caller, n)
		_, err := vesting.Create(ctx, r.env, vesting.Record{
			ID:          id,
			Owner:       caller,
			Beneficiary: beneficiary,
			Token:       tokenID,
			Start:       start,
			Duration:    duration,
		})
		if nil != err {
			return err
		}
		trx.PutN(pools.Counters, []byte(counterName), n)

		appendIndex(trx, pools.OwnerNextCount, pools.OwnerList, caller, id)
		appendIndex(trx, pools.BeneficiaryNextCount, pools.BeneficiaryList, beneficiary, id)

		return r.env.Events.Append(ctx, event.Event{
			Kind:        event.VestingWalletCreated,
			Timestamp:   r.env.Clock(),
			Account:     id,
			Token:       tokenID,
			Owner:       &caller,
			Beneficiary: &beneficiary,
		})
	})
	if nil != err {
		r.log.Warnf("create: owner: %s  beneficiary: %s  error: %s", caller, beneficiary, err)
		return identity.Zero, err
	}

	r.log.Infof("created: %s  owner: %s  beneficiary: %s  token: %s", id, caller, beneficiary, tokenID)
	return id, nil
}

// Open - an existing account
func (r *Registry) Open(ctx context.Context, id identity.Identity) (*vesting.Account, error) {
	return vesting.Load(ctx, r.env, id)
}

// Count - number of committed accounts
func (r *Registry) Count() uint64 {
	n, _ := r.env.Store.Pool.Counters.GetN([]byte(counterName))
	return n
}
