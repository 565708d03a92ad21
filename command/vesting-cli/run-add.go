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

func runAdd(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name, err := checkName(c.GlobalString("identity"))
	if nil != err {
		return err
	}

	description, err := checkDescription(c.String("description"))
	if nil != err {
		return err
	}

	key := c.String("key")
	acc := c.String("account")

	if m.verbose {
		fmt.Fprintf(m.e, "identity: %s\n", name)
		fmt.Fprintf(m.e, "description: %s\n", description)
		fmt.Fprintf(m.e, "account: %s\n", acc)
	}

	switch {
	case "" == acc:
		privateKey, err := checkKey(key)
		if nil != err {
			return err
		}

		password := c.GlobalString("password")
		if "" == password {
			password, err = promptNewPassword()
			if nil != err {
				return err
			}
		}

		err = m.config.AddIdentity(name, description, privateKey, password)
		if nil != err {
			return err
		}

	case "" == key:
		id, err := identity.FromString(acc)
		if nil != err {
			return err
		}
		err = m.config.AddReceiveOnlyIdentity(name, description, id)
		if nil != err {
			return err
		}

	default:
		return ErrIncompatibleOptions
	}

	// require configuration update
	m.save = true
	return nil
}
