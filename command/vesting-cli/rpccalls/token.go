// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/vestingd/fhe"
	"github.com/bitmark-inc/vestingd/identity"
	"github.com/bitmark-inc/vestingd/rpc/token"
)

// RegisterToken - new confidential token (testing chains)
func (client *Client) RegisterToken(name string) (identity.Identity, error) {
	var reply token.RegisterReply
	if err := client.call("Token.Register", &token.RegisterArguments{Name: name}, &reply); err != nil {
		return identity.Identity{}, err
	}
	return reply.Token, nil
}

// ListTokens - all registered tokens
func (client *Client) ListTokens() (*token.ListReply, error) {
	var reply token.ListReply
	if err := client.call("Token.List", &token.ListArguments{}, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// Mint - create supply for a holder (testing chains), returns the
// new balance handle of the holder
func (client *Client) Mint(tokenID identity.Identity, to identity.Identity, amount uint64) (fhe.Handle, error) {
	input, err := client.encrypt(amount, tokenID, to)
	if nil != err {
		return fhe.Handle{}, err
	}

	arguments := token.MintArguments{
		Token:  tokenID,
		To:     to,
		Amount: input.Handle,
		Proof:  input.Proof,
	}

	var reply token.MintReply
	if err := client.call("Token.Mint", &arguments, &reply); err != nil {
		return fhe.Handle{}, err
	}
	return reply.Balance, nil
}

// SetOperator - allow operator to move the caller's balance until a time
func (client *Client) SetOperator(tokenID identity.Identity, operator identity.Identity, until uint64) error {
	request := token.SetOperatorRequest{
		Token:    tokenID,
		Operator: operator,
		Until:    until,
	}
	a, err := client.authorize("Token.SetOperator", &request)
	if nil != err {
		return err
	}

	arguments := token.SetOperatorArguments{
		Authorization: a,
		Request:       request,
	}
	var reply token.SetOperatorReply
	return client.call("Token.SetOperator", &arguments, &reply)
}

// Balance - encrypted balance handle of a holder
func (client *Client) Balance(tokenID identity.Identity, holder identity.Identity) (fhe.Handle, error) {
	arguments := token.BalanceArguments{
		Token:  tokenID,
		Holder: holder,
	}

	var reply token.BalanceReply
	if err := client.call("Token.Balance", &arguments, &reply); err != nil {
		return fhe.Handle{}, err
	}
	return reply.Balance, nil
}
