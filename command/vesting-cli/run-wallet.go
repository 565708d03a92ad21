// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/vestingd/command/vesting-cli/rpccalls"
	"github.com/bitmark-inc/vestingd/fhe"
	"github.com/bitmark-inc/vestingd/identity"
)

func runCreateWallet(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	tokenID, err := m.account(c.String("token"), ErrRequiredToken)
	if nil != err {
		return err
	}

	beneficiary, err := m.account(c.String("beneficiary"), ErrRequiredAccount)
	if nil != err {
		return err
	}

	start := c.Uint64("start")
	if 0 == start {
		return ErrRequiredTime
	}

	duration := c.Uint64("duration")
	if 0 == duration {
		return ErrRequiredDuration
	}

	if m.verbose {
		fmt.Fprintf(m.e, "token: %s\n", tokenID)
		fmt.Fprintf(m.e, "beneficiary: %s\n", beneficiary)
		fmt.Fprintf(m.e, "start: %d\n", start)
		fmt.Fprintf(m.e, "duration: %d\n", duration)
	}

	client, err := m.signedClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	account, err := client.CreateWallet(&rpccalls.CreateData{
		Token:       tokenID,
		Beneficiary: beneficiary,
		Start:       start,
		Duration:    duration,
	})
	if nil != err {
		return err
	}

	printJson(m.w, map[string]identity.Identity{"account": account})
	return nil
}

func runWallet(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	account, err := m.account(c.String("wallet"), ErrRequiredWallet)
	if nil != err {
		return err
	}

	client, err := m.connect(nil)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.WalletInfo(account)
	if nil != err {
		return err
	}

	printJson(m.w, reply)
	return nil
}

func runWallets(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	owner := c.String("owner")
	beneficiary := c.String("beneficiary")
	if "" != owner && "" != beneficiary {
		return ErrIncompatibleOptions
	}

	list := func(client *rpccalls.Client, id identity.Identity) (interface{}, error) {
		return client.OwnerWallets(id, c.Uint64("start"), c.Int("count"))
	}
	who := owner
	if "" != beneficiary {
		who = beneficiary
		list = func(client *rpccalls.Client, id identity.Identity) (interface{}, error) {
			return client.BeneficiaryWallets(id, c.Uint64("start"), c.Int("count"))
		}
	}

	var id identity.Identity
	var err error
	if "" == who {
		id, err = m.current(c)
	} else {
		id, err = m.account(who, ErrRequiredAccount)
	}
	if nil != err {
		return err
	}

	client, err := m.connect(nil)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := list(client, id)
	if nil != err {
		return err
	}

	printJson(m.w, reply)
	return nil
}

func runDeposit(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	amount := c.Uint64("amount")
	if 0 == amount {
		return ErrRequiredAmount
	}

	client, err := m.signedClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	account, tokenID, err := walletToken(c, m, client)
	if nil != err {
		return err
	}

	if until := c.Uint64("approve-until"); 0 != until {
		err := client.SetOperator(tokenID, account, until)
		if nil != err {
			return err
		}
	}

	total, err := client.Deposit(account, tokenID, amount)
	if nil != err {
		return err
	}

	return showHandle(client, m.w, "total_allocation", total, c.Bool("decrypt"))
}

type accountCall func(*rpccalls.Client, identity.Identity, identity.Identity) (fhe.Handle, error)

// signed wallet call with optional decryption of the result
func runAccountCall(c *cli.Context, title string, call accountCall) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := m.signedClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	account, tokenID, err := walletToken(c, m, client)
	if nil != err {
		return err
	}

	h, err := call(client, account, tokenID)
	if nil != err {
		return err
	}

	return showHandle(client, m.w, title, h, c.Bool("decrypt"))
}

func runRelease(c *cli.Context) error {
	return runAccountCall(c, "released", (*rpccalls.Client).Release)
}

func runTotalAllocation(c *cli.Context) error {
	return runAccountCall(c, "total_allocation", (*rpccalls.Client).TotalAllocation)
}

func runReleased(c *cli.Context) error {
	return runAccountCall(c, "released", (*rpccalls.Client).Released)
}

func runReleasable(c *cli.Context) error {
	return runAccountCall(c, "releasable", (*rpccalls.Client).Releasable)
}

func runVested(c *cli.Context) error {
	at := c.Uint64("at")
	if 0 == at {
		return ErrRequiredTime
	}
	return runAccountCall(c, "vested", func(client *rpccalls.Client, account identity.Identity, tokenID identity.Identity) (fhe.Handle, error) {
		return client.VestedAmount(account, tokenID, at)
	})
}

func runDecrypt(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	s := c.String("handle")
	if "" == s {
		return ErrRequiredHandle
	}
	var h fhe.Handle
	if err := h.UnmarshalText([]byte(s)); nil != err {
		return err
	}

	client, err := m.signedClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	return showHandle(client, m.w, "handle", h, true)
}

// wallet from the flags, token defaults to the wallet token
func walletToken(c *cli.Context, m *metadata, client *rpccalls.Client) (identity.Identity, identity.Identity, error) {
	account, err := m.account(c.String("wallet"), ErrRequiredWallet)
	if nil != err {
		return identity.Identity{}, identity.Identity{}, err
	}

	if "" != c.String("token") {
		tokenID, err := m.account(c.String("token"), ErrRequiredToken)
		return account, tokenID, err
	}

	info, err := client.WalletInfo(account)
	if nil != err {
		return identity.Identity{}, identity.Identity{}, err
	}
	return account, info.Token, nil
}
