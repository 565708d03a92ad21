// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/vestingd/fault"
	"github.com/bitmark-inc/vestingd/fixtures"
	"github.com/bitmark-inc/vestingd/identity"
	rpcfixtures "github.com/bitmark-inc/vestingd/rpc/fixtures"
	"github.com/bitmark-inc/vestingd/rpc/token"
)

func mintArguments(t *testing.T, e *rpcfixtures.Engine, to identity.Identity, value uint64) *token.MintArguments {
	h, proof, err := e.Coprocessor.EncryptInput(context.Background(), value, e.Token.Identity(), to)
	assert.Nil(t, err, "encrypt")
	return &token.MintArguments{
		Token:  e.Token.Identity(),
		To:     to,
		Amount: h,
		Proof:  proof,
	}
}

func TestMintAndBalance(t *testing.T) {
	rpcfixtures.SetupTestLogger()
	defer rpcfixtures.TeardownTestLogger()

	e := rpcfixtures.Setup(t)
	live := false
	tok := token.New(logger.New(rpcfixtures.LogCategory), e.Directory, e.Replay, func() bool { return !live }, rpcfixtures.Clock)

	var minted token.MintReply
	err := tok.Mint(mintArguments(t, e, fixtures.Depositor, 700), &minted)
	assert.Nil(t, err, "wrong Mint")
	err = tok.Mint(mintArguments(t, e, fixtures.Depositor, 300), &minted)
	assert.Nil(t, err, "wrong second Mint")

	var balance token.BalanceReply
	err = tok.Balance(&token.BalanceArguments{Token: e.Token.Identity(), Holder: fixtures.Depositor}, &balance)
	assert.Nil(t, err, "wrong Balance")
	assert.Equal(t, minted.Balance, balance.Balance, "wrong balance handle")

	value, err := e.Coprocessor.UserDecrypt(context.Background(), balance.Balance, fixtures.Depositor)
	assert.Nil(t, err, "decrypt")
	assert.Equal(t, uint64(1000), value, "wrong balance")

	arguments := mintArguments(t, e, fixtures.Depositor, 5)
	arguments.To = fixtures.Stranger
	err = tok.Mint(arguments, &minted)
	assert.Equal(t, fault.ErrInvalidProof, err, "input for another holder accepted")

	err = tok.Balance(&token.BalanceArguments{Token: identity.FromName("none"), Holder: fixtures.Depositor}, &balance)
	assert.Equal(t, fault.ErrTokenNotFound, err, "unknown token")

	live = true
	err = tok.Mint(mintArguments(t, e, fixtures.Depositor, 1), &minted)
	assert.Equal(t, fault.ErrWrongNetwork, err, "mint on live chain")
	err = tok.Register(&token.RegisterArguments{Name: "EURx"}, &token.RegisterReply{})
	assert.Equal(t, fault.ErrWrongNetwork, err, "register on live chain")
}

func TestRegisterAndList(t *testing.T) {
	rpcfixtures.SetupTestLogger()
	defer rpcfixtures.TeardownTestLogger()

	e := rpcfixtures.Setup(t)
	tok := token.New(logger.New(rpcfixtures.LogCategory), e.Directory, e.Replay, func() bool { return true }, rpcfixtures.Clock)

	var registered token.RegisterReply
	err := tok.Register(&token.RegisterArguments{Name: "EURx"}, &registered)
	assert.Nil(t, err, "wrong Register")
	assert.Equal(t, identity.FromName("EURx"), registered.Token, "wrong token id")

	var list token.ListReply
	err = tok.List(&token.ListArguments{}, &list)
	assert.Nil(t, err, "wrong List")
	assert.Equal(t, 2, len(list.Tokens), "wrong token count")
}

func TestSetOperator(t *testing.T) {
	rpcfixtures.SetupTestLogger()
	defer rpcfixtures.TeardownTestLogger()

	e := rpcfixtures.Setup(t)
	tok := token.New(logger.New(rpcfixtures.LogCategory), e.Directory, e.Replay, func() bool { return true }, rpcfixtures.Clock)
	ctx := context.Background()

	request := token.SetOperatorRequest{
		Token:    e.Token.Identity(),
		Operator: fixtures.Stranger,
		Until:    e.Time + 10,
	}
	arguments := token.SetOperatorArguments{
		Authorization: rpcfixtures.Authorize(t, fixtures.DepositorKey, "Token.SetOperator", &request),
		Request:       request,
	}

	assert.False(t, e.Token.IsOperator(ctx, fixtures.Depositor, fixtures.Stranger), "operator before grant")
	err := tok.SetOperator(&arguments, &token.SetOperatorReply{})
	assert.Nil(t, err, "wrong SetOperator")
	assert.True(t, e.Token.IsOperator(ctx, fixtures.Depositor, fixtures.Stranger), "operator not granted")

	e.Time += 11
	assert.False(t, e.Token.IsOperator(ctx, fixtures.Depositor, fixtures.Stranger), "operator after expiry")

	// the expired grant cannot be renewed by sending it again
	err = tok.SetOperator(&arguments, &token.SetOperatorReply{})
	assert.Equal(t, fault.ErrReplayedRequest, err, "replayed SetOperator accepted")
	assert.False(t, e.Token.IsOperator(ctx, fixtures.Depositor, fixtures.Stranger), "operator renewed")
}
