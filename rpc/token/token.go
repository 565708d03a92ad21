// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token

import (
	"context"
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/vestingd/fault"
	"github.com/bitmark-inc/vestingd/fhe"
	"github.com/bitmark-inc/vestingd/identity"
	"github.com/bitmark-inc/vestingd/rpc/auth"
	"github.com/bitmark-inc/vestingd/rpc/ratelimit"
	"github.com/bitmark-inc/vestingd/token"
)

// Token
// -----

const (
	rateLimitToken = 200
	rateBurstToken = 100
)

// Token - type for the RPC
type Token struct {
	Log       *logger.L
	Limiter   *rate.Limiter
	Directory *token.Directory
	Replay    *auth.Replay
	IsTesting func() bool
	Clock     func() time.Time
}

// New - reference token service
func New(log *logger.L, directory *token.Directory, replay *auth.Replay, isTesting func() bool, clock func() time.Time) *Token {
	return &Token{
		Log:       log,
		Limiter:   rate.NewLimiter(rateLimitToken, rateBurstToken),
		Directory: directory,
		Replay:    replay,
		IsTesting: isTesting,
		Clock:     clock,
	}
}

// Register
// --------

// RegisterArguments - arguments for RPC
type RegisterArguments struct {
	Name string `json:"name"`
}

// RegisterReply - result of register RPC
type RegisterReply struct {
	Token identity.Identity `json:"token"`
}

// Register - add a named token, testing chains only
func (t *Token) Register(arguments *RegisterArguments, reply *RegisterReply) error {

	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}

	if !t.IsTesting() {
		return fault.ErrWrongNetwork
	}

	c, err := t.Directory.Register(context.Background(), arguments.Name)
	if nil != err {
		return err
	}

	reply.Token = c.Identity()
	return nil
}

// List
// ----

// ListArguments - empty arguments for list request
type ListArguments struct{}

// ListReply - all registered tokens
type ListReply struct {
	Tokens []token.Info `json:"tokens"`
}

// List - registered tokens
func (t *Token) List(_ *ListArguments, reply *ListReply) error {

	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}

	tokens, err := t.Directory.List()
	if nil != err {
		return err
	}

	reply.Tokens = tokens
	return nil
}

// Mint
// ----

// MintArguments - arguments for RPC
//
// Amount is an encrypted input for the token with To as submitter
type MintArguments struct {
	Token  identity.Identity `json:"token"`
	To     identity.Identity `json:"to"`
	Amount fhe.Handle        `json:"amount"`
	Proof  []byte            `json:"proof"`
}

// MintReply - new balance handle of the recipient
type MintReply struct {
	Balance fhe.Handle `json:"balance"`
}

// Mint - create supply, testing chains only
func (t *Token) Mint(arguments *MintArguments, reply *MintReply) error {

	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}

	if !t.IsTesting() {
		return fault.ErrWrongNetwork
	}

	ctx := context.Background()
	c, err := t.Directory.Confidential(ctx, arguments.Token)
	if nil != err {
		return err
	}

	balance, err := c.Mint(ctx, arguments.To, arguments.Amount, arguments.Proof)
	if nil != err {
		return err
	}

	reply.Balance = balance
	return nil
}

// Operators
// ---------

// SetOperatorRequest - the signed part of an operator grant
type SetOperatorRequest struct {
	Token    identity.Identity `json:"token"`
	Operator identity.Identity `json:"operator"`
	Until    uint64            `json:"until,string"`
}

// SetOperatorArguments - arguments for RPC
type SetOperatorArguments struct {
	Authorization auth.Authorization `json:"authorization"`
	Request       SetOperatorRequest `json:"request"`
}

// SetOperatorReply - empty result
type SetOperatorReply struct{}

// SetOperator - let an operator move the caller's funds until a time
func (t *Token) SetOperator(arguments *SetOperatorArguments, _ *SetOperatorReply) error {

	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}

	request := arguments.Request
	return t.Replay.Once(context.Background(), arguments.Authorization, "Token.SetOperator", &arguments.Request, t.Clock(), func(ctx context.Context) error {
		c, err := t.Directory.Confidential(ctx, request.Token)
		if nil != err {
			return err
		}
		return c.SetOperator(ctx, arguments.Authorization.Caller, request.Operator, request.Until)
	})
}

// Balance
// -------

// BalanceArguments - arguments for RPC
type BalanceArguments struct {
	Token  identity.Identity `json:"token"`
	Holder identity.Identity `json:"holder"`
}

// BalanceReply - encrypted balance
type BalanceReply struct {
	Balance fhe.Handle `json:"balance"`
}

// Balance - encrypted balance handle of a holder
func (t *Token) Balance(arguments *BalanceArguments, reply *BalanceReply) error {

	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}

	ctx := context.Background()
	c, err := t.Directory.Token(ctx, arguments.Token)
	if nil != err {
		return err
	}

	balance, err := c.ConfidentialBalanceOf(ctx, arguments.Holder)
	if nil != err {
		return err
	}

	reply.Balance = balance
	return nil
}
