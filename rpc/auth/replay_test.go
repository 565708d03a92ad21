// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/vestingd/fault"
	"github.com/bitmark-inc/vestingd/fixtures"
	"github.com/bitmark-inc/vestingd/rpc/auth"
)

func TestReplayOnce(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	replay := auth.NewReplay(fixtures.OpenStore(t))
	ctx := context.Background()
	now := time.Unix(1600000000, 0)
	r := request{Account: fixtures.Beneficiary, Amount: 1000}

	a, err := auth.Sign(fixtures.DepositorKey, "Vesting.Deposit", &r, now)
	assert.Nil(t, err, "sign")

	calls := 0
	count := func(context.Context) error {
		calls += 1
		return nil
	}

	assert.Nil(t, replay.Once(ctx, a, "Vesting.Deposit", &r, now, count), "first")
	assert.Equal(t, fault.ErrReplayedRequest, replay.Once(ctx, a, "Vesting.Deposit", &r, now.Add(time.Second), count), "replay accepted")
	assert.Equal(t, 1, calls, "wrong number of runs")

	// a fresh signature over the same request is a new request
	b, err := auth.Sign(fixtures.DepositorKey, "Vesting.Deposit", &r, now.Add(time.Second))
	assert.Nil(t, err, "sign")
	assert.Nil(t, replay.Once(ctx, b, "Vesting.Deposit", &r, now.Add(time.Second), count), "re-signed")
	assert.Equal(t, 2, calls, "wrong number of runs")

	// unverified requests never reach fn
	assert.Equal(t, fault.ErrRequestSignerMismatch, replay.Once(ctx, a, "Vesting.Release", &r, now, count), "other method accepted")
	assert.Equal(t, 2, calls, "wrong number of runs")
}

func TestReplayFailedRequestIsNotRecorded(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	replay := auth.NewReplay(fixtures.OpenStore(t))
	ctx := context.Background()
	now := time.Unix(1600000000, 0)
	r := request{Account: fixtures.Beneficiary, Amount: 5}

	a, err := auth.Sign(fixtures.OwnerKey, "Vesting.Release", &r, now)
	assert.Nil(t, err, "sign")

	failure := errors.New("failed")
	err = replay.Once(ctx, a, "Vesting.Release", &r, now, func(context.Context) error {
		return failure
	})
	assert.Equal(t, failure, err, "wrong error")

	err = replay.Once(ctx, a, "Vesting.Release", &r, now, func(context.Context) error {
		return nil
	})
	assert.Nil(t, err, "retry after failure")
}

func TestReplayPrune(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	replay := auth.NewReplay(fixtures.OpenStore(t))
	ctx := context.Background()
	start := time.Unix(1600000000, 0)
	run := func(context.Context) error { return nil }

	signed := make([]auth.Authorization, 0, 3)
	for i := 0; i < 3; i += 1 {
		r := request{Account: fixtures.Beneficiary, Amount: uint64(i)}
		at := start.Add(time.Duration(i) * time.Minute)
		a, err := auth.Sign(fixtures.OwnerKey, "Vesting.Release", &r, at)
		assert.Nil(t, err, "sign")
		assert.Nil(t, replay.Once(ctx, a, "Vesting.Release", &r, at, run), "once")
		signed = append(signed, a)
	}

	n, err := replay.Prune(ctx, start.Add(auth.MaximumSkew))
	assert.Nil(t, err, "prune")
	assert.Equal(t, 0, n, "pruned live requests")

	n, err = replay.Prune(ctx, start.Add(auth.MaximumSkew+90*time.Second))
	assert.Nil(t, err, "prune")
	assert.Equal(t, 2, n, "wrong number pruned")

	// the newest is still remembered
	r := request{Account: fixtures.Beneficiary, Amount: 2}
	err = replay.Once(ctx, signed[2], "Vesting.Release", &r, start.Add(2*time.Minute), run)
	assert.Equal(t, fault.ErrReplayedRequest, err, "pruned too much")
}
