// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/vestingd/fault"
	"github.com/bitmark-inc/vestingd/fixtures"
	"github.com/bitmark-inc/vestingd/identity"
	"github.com/bitmark-inc/vestingd/rpc/auth"
)

type request struct {
	Account identity.Identity `json:"account"`
	Amount  uint64            `json:"amount,string"`
}

func TestSignAndVerify(t *testing.T) {
	now := time.Unix(1600000000, 0)
	r := request{Account: fixtures.Beneficiary, Amount: 12}

	a, err := auth.Sign(fixtures.OwnerKey, "Vesting.Release", &r, now)
	assert.Nil(t, err, "sign")
	assert.Equal(t, fixtures.Owner, a.Caller, "wrong caller")

	assert.Nil(t, a.Verify("Vesting.Release", &r, now.Add(time.Minute)), "verify")

	assert.Equal(t, fault.ErrRequestSignerMismatch, a.Verify("Vesting.Deposit", &r, now), "other method accepted")

	changed := r
	changed.Amount = 13
	assert.Equal(t, fault.ErrRequestSignerMismatch, a.Verify("Vesting.Release", &changed, now), "changed request accepted")

	assert.Equal(t, fault.ErrInvalidTimestamp, a.Verify("Vesting.Release", &r, now.Add(auth.MaximumSkew+time.Second)), "stale request accepted")
	assert.Equal(t, fault.ErrInvalidTimestamp, a.Verify("Vesting.Release", &r, now.Add(-auth.MaximumSkew-time.Second)), "future request accepted")
}

func TestImpersonation(t *testing.T) {
	now := time.Unix(1600000000, 0)
	r := request{Account: fixtures.Beneficiary}

	a, err := auth.Sign(fixtures.StrangerKey, "Vesting.TotalAllocation", &r, now)
	assert.Nil(t, err, "sign")

	a.Caller = fixtures.Owner
	assert.Equal(t, fault.ErrRequestSignerMismatch, a.Verify("Vesting.TotalAllocation", &r, now), "impersonation accepted")

	a.Signature = a.Signature[:10]
	assert.Equal(t, fault.ErrInvalidSignature, a.Verify("Vesting.TotalAllocation", &r, now), "short signature accepted")

	assert.Equal(t, fault.ErrMissingParameters, auth.Authorization{}.Verify("Vesting.TotalAllocation", &r, now), "empty authorization accepted")
}
