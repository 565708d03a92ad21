// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - a complete engine for RPC service tests
package fixtures

import (
	"context"
	"testing"
	"time"

	"github.com/btcsuite/btcd/btcec/v2"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/vestingd/coprocessor"
	"github.com/bitmark-inc/vestingd/event"
	"github.com/bitmark-inc/vestingd/fhe"
	"github.com/bitmark-inc/vestingd/fixtures"
	"github.com/bitmark-inc/vestingd/identity"
	"github.com/bitmark-inc/vestingd/registry"
	"github.com/bitmark-inc/vestingd/rpc/auth"
	"github.com/bitmark-inc/vestingd/token"
	"github.com/bitmark-inc/vestingd/vesting"
)

// LogCategory - shared with the top level fixtures
const LogCategory = fixtures.LogCategory

// Now - fixed wall clock for signed requests
var Now = time.Unix(1600000000, 0)

// Engine - all the components behind the RPC services
type Engine struct {
	Time        uint64
	Coprocessor *coprocessor.Coprocessor
	Directory   *token.Directory
	Token       *token.Confidential
	Environment *vesting.Environment
	Registry    *registry.Registry
	Replay      *auth.Replay
}

// SetupTestLogger - as the top level fixture
func SetupTestLogger() {
	fixtures.SetupTestLogger()
}

// TeardownTestLogger - as the top level fixture
func TeardownTestLogger() {
	fixtures.TeardownTestLogger()
}

// Setup - engine with one registered token "USDx"
func Setup(t *testing.T) *Engine {
	store := fixtures.OpenStore(t)
	keys, err := coprocessor.GenerateKeys()
	if nil != err {
		t.Fatalf("generate keys error: %s", err)
	}
	c, err := coprocessor.New(logger.New(LogCategory), store, keys)
	if nil != err {
		t.Fatalf("coprocessor error: %s", err)
	}

	e := &Engine{
		Time:        1000,
		Coprocessor: c,
	}
	clock := func() uint64 { return e.Time }

	e.Directory = token.NewDirectory(store, c, clock)
	e.Token, err = e.Directory.Register(context.Background(), "USDx")
	if nil != err {
		t.Fatalf("register error: %s", err)
	}

	e.Environment = &vesting.Environment{
		Log:    logger.New(LogCategory),
		Store:  store,
		FHE:    c,
		Tokens: e.Directory,
		Events: event.New(store),
		Clock:  clock,
	}
	e.Registry = registry.New(e.Environment)
	e.Replay = auth.NewReplay(store)
	return e
}

// Fund - mint value of the test token to a holder, returns its balance handle
func (e *Engine) Fund(t *testing.T, to identity.Identity, value uint64) fhe.Handle {
	ctx := context.Background()
	h, proof, err := e.Coprocessor.EncryptInput(ctx, value, e.Token.Identity(), to)
	if nil != err {
		t.Fatalf("encrypt error: %s", err)
	}
	balance, err := e.Token.Mint(ctx, to, h, proof)
	if nil != err {
		t.Fatalf("mint error: %s", err)
	}
	return balance
}

// Authorize - sign a request at Now
func Authorize(t *testing.T, key *btcec.PrivateKey, method string, request interface{}) auth.Authorization {
	a, err := auth.Sign(key, method, request, Now)
	if nil != err {
		t.Fatalf("sign error: %s", err)
	}
	return a
}

// Clock - returns Now
func Clock() time.Time {
	return Now
}
