// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/vestingd/fhe"
	"github.com/bitmark-inc/vestingd/identity"
	"github.com/bitmark-inc/vestingd/rpc/registry"
	"github.com/bitmark-inc/vestingd/rpc/vesting"
)

// CreateData - parameters of a new wallet
type CreateData struct {
	Token       identity.Identity
	Beneficiary identity.Identity
	Start       uint64
	Duration    uint64
}

// CreateWallet - new vesting account owned by the caller
func (client *Client) CreateWallet(data *CreateData) (identity.Identity, error) {
	request := registry.CreateRequest{
		Token:       data.Token,
		Beneficiary: data.Beneficiary,
		Start:       data.Start,
		Duration:    data.Duration,
	}
	a, err := client.authorize("Registry.Create", &request)
	if nil != err {
		return identity.Identity{}, err
	}

	arguments := registry.CreateArguments{
		Authorization: a,
		Request:       request,
	}
	var reply registry.CreateReply
	if err := client.call("Registry.Create", &arguments, &reply); err != nil {
		return identity.Identity{}, err
	}
	return reply.Account, nil
}

// OwnerWallets - page of wallets created by an owner
func (client *Client) OwnerWallets(id identity.Identity, start uint64, count int) (*registry.WalletsReply, error) {
	return client.wallets("Registry.OwnerWallets", id, start, count)
}

// BeneficiaryWallets - page of wallets paying a beneficiary
func (client *Client) BeneficiaryWallets(id identity.Identity, start uint64, count int) (*registry.WalletsReply, error) {
	return client.wallets("Registry.BeneficiaryWallets", id, start, count)
}

func (client *Client) wallets(method string, id identity.Identity, start uint64, count int) (*registry.WalletsReply, error) {
	arguments := registry.WalletsArguments{
		Identity: id,
		Start:    start,
		Count:    count,
	}

	var reply registry.WalletsReply
	if err := client.call(method, &arguments, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// WalletInfo - public schedule of a wallet
func (client *Client) WalletInfo(account identity.Identity) (*vesting.InfoReply, error) {
	var reply vesting.InfoReply
	if err := client.call("Vesting.Info", &vesting.InfoArguments{Account: account}, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// Deposit - encrypt amount for the wallet and fund it from the caller's balance
func (client *Client) Deposit(account identity.Identity, tokenID identity.Identity, amount uint64) (fhe.Handle, error) {
	input, err := client.Encrypt(amount, account)
	if nil != err {
		return fhe.Handle{}, err
	}

	request := vesting.DepositRequest{
		Account: account,
		Token:   tokenID,
		Amount:  input.Handle,
		Proof:   input.Proof,
	}
	a, err := client.authorize("Vesting.Deposit", &request)
	if nil != err {
		return fhe.Handle{}, err
	}

	arguments := vesting.DepositArguments{
		Authorization: a,
		Request:       request,
	}
	var reply vesting.DepositReply
	if err := client.call("Vesting.Deposit", &arguments, &reply); err != nil {
		return fhe.Handle{}, err
	}
	return reply.TotalAllocation, nil
}

// Release - pay the releasable amount to the beneficiary
func (client *Client) Release(account identity.Identity, tokenID identity.Identity) (fhe.Handle, error) {
	return client.accountCall("Vesting.Release", account, tokenID)
}

// TotalAllocation - encrypted sum of all deposits
func (client *Client) TotalAllocation(account identity.Identity, tokenID identity.Identity) (fhe.Handle, error) {
	return client.accountCall("Vesting.TotalAllocation", account, tokenID)
}

// Released - encrypted amount already paid out
func (client *Client) Released(account identity.Identity, tokenID identity.Identity) (fhe.Handle, error) {
	return client.accountCall("Vesting.Released", account, tokenID)
}

// Releasable - encrypted amount that a release would pay now
func (client *Client) Releasable(account identity.Identity, tokenID identity.Identity) (fhe.Handle, error) {
	return client.accountCall("Vesting.Releasable", account, tokenID)
}

// VestedAmount - encrypted amount vested at a time
func (client *Client) VestedAmount(account identity.Identity, tokenID identity.Identity, at uint64) (fhe.Handle, error) {
	request := vesting.VestedRequest{
		AccountRequest: vesting.AccountRequest{
			Account: account,
			Token:   tokenID,
		},
		At: at,
	}
	a, err := client.authorize("Vesting.VestedAmount", &request)
	if nil != err {
		return fhe.Handle{}, err
	}

	arguments := vesting.VestedArguments{
		Authorization: a,
		Request:       request,
	}
	var reply vesting.HandleReply
	if err := client.call("Vesting.VestedAmount", &arguments, &reply); err != nil {
		return fhe.Handle{}, err
	}
	return reply.Handle, nil
}

func (client *Client) accountCall(method string, account identity.Identity, tokenID identity.Identity) (fhe.Handle, error) {
	request := vesting.AccountRequest{
		Account: account,
		Token:   tokenID,
	}
	a, err := client.authorize(method, &request)
	if nil != err {
		return fhe.Handle{}, err
	}

	arguments := vesting.AccountArguments{
		Authorization: a,
		Request:       request,
	}
	var reply vesting.HandleReply
	if err := client.call(method, &arguments, &reply); err != nil {
		return fhe.Handle{}, err
	}
	return reply.Handle, nil
}
