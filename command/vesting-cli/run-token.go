// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/vestingd/identity"
)

func runTokens(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := m.connect(nil)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.ListTokens()
	if nil != err {
		return err
	}

	printJson(m.w, reply)
	return nil
}

func runRegisterToken(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name := c.String("name")
	if "" == name {
		return ErrRequiredName
	}

	client, err := m.connect(nil)
	if nil != err {
		return err
	}
	defer client.Close()

	id, err := client.RegisterToken(name)
	if nil != err {
		return err
	}

	printJson(m.w, map[string]identity.Identity{"token": id})
	return nil
}

func runMint(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	tokenID, err := m.account(c.String("token"), ErrRequiredToken)
	if nil != err {
		return err
	}

	var to identity.Identity
	if "" == c.String("to") {
		to, err = m.current(c)
	} else {
		to, err = m.account(c.String("to"), ErrRequiredAccount)
	}
	if nil != err {
		return err
	}

	amount := c.Uint64("amount")
	if 0 == amount {
		return ErrRequiredAmount
	}

	if m.verbose {
		fmt.Fprintf(m.e, "token: %s\n", tokenID)
		fmt.Fprintf(m.e, "to: %s\n", to)
		fmt.Fprintf(m.e, "amount: %d\n", amount)
	}

	client, err := m.connect(nil)
	if nil != err {
		return err
	}
	defer client.Close()

	balance, err := client.Mint(tokenID, to, amount)
	if nil != err {
		return err
	}

	return showHandle(client, m.w, "balance", balance, false)
}

func runSetOperator(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	tokenID, err := m.account(c.String("token"), ErrRequiredToken)
	if nil != err {
		return err
	}

	operator, err := m.account(c.String("operator"), ErrRequiredAccount)
	if nil != err {
		return err
	}

	until := c.Uint64("until")
	if 0 == until {
		return ErrRequiredTime
	}

	client, err := m.signedClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	return client.SetOperator(tokenID, operator, until)
}

func runBalance(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	tokenID, err := m.account(c.String("token"), ErrRequiredToken)
	if nil != err {
		return err
	}

	var holder identity.Identity
	if "" == c.String("holder") {
		holder, err = m.current(c)
	} else {
		holder, err = m.account(c.String("holder"), ErrRequiredAccount)
	}
	if nil != err {
		return err
	}

	decrypt := c.Bool("decrypt")
	client, err := m.clientFor(c, decrypt)
	if nil != err {
		return err
	}
	defer client.Close()

	balance, err := client.Balance(tokenID, holder)
	if nil != err {
		return err
	}

	return showHandle(client, m.w, "balance", balance, decrypt)
}
