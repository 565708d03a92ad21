// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/vestingd/command/vesting-cli/rpccalls"
	"github.com/bitmark-inc/vestingd/fault"
	"github.com/bitmark-inc/vestingd/fhe"
	"github.com/bitmark-inc/vestingd/identity"
	"github.com/bitmark-inc/vestingd/util"
)

// command line errors
var (
	ErrIncompatibleOptions   = fault.InvalidError("incompatible options")
	ErrInvalidPasswordLength = fault.InvalidError("password is too short")
	ErrPasswordMismatch      = fault.InvalidError("passwords do not match")
	ErrRequiredAccount       = fault.InvalidError("account is required")
	ErrRequiredAmount        = fault.InvalidError("amount is required")
	ErrRequiredConnect       = fault.InvalidError("connect is required")
	ErrRequiredDescription   = fault.InvalidError("description is required")
	ErrRequiredDuration      = fault.InvalidError("duration is required")
	ErrRequiredHandle        = fault.InvalidError("handle is required")
	ErrRequiredIdentity      = fault.InvalidError("identity is required")
	ErrRequiredName          = fault.InvalidError("name is required")
	ErrRequiredTime          = fault.InvalidError("time is required")
	ErrRequiredToken         = fault.InvalidError("token is required")
	ErrRequiredWallet        = fault.InvalidError("wallet is required")
)

func checkFileExists(name string) (bool, error) {
	info, err := os.Stat(name)
	if nil != err {
		return false, err
	}
	return info.IsDir(), nil
}

// identity is required, but not check the config file
func checkName(name string) (string, error) {
	if "" == name {
		return "", ErrRequiredIdentity
	}
	return name, nil
}

func checkDescription(description string) (string, error) {
	if "" == description {
		return "", ErrRequiredDescription
	}
	return description, nil
}

// one or more comma separated HOST:PORT
func checkConnect(connect string) ([]string, error) {
	connect = strings.TrimSpace(connect)
	if "" == connect {
		return nil, ErrRequiredConnect
	}

	connections := strings.Split(connect, ",")
	for i, c := range connections {
		canonical, err := util.CanonicalHostPort(c)
		if nil != err {
			return nil, fmt.Errorf("connect: %q  error: %s", c, err)
		}
		connections[i] = canonical
	}
	return connections, nil
}

// blank for a new random key
func checkKey(key string) (*btcec.PrivateKey, error) {
	if "" == key {
		return btcec.NewPrivateKey()
	}
	return identity.PrivateKeyFromHex(key)
}

// an identity name from the configuration or a hex account
func (m *metadata) account(s string, required error) (identity.Identity, error) {
	if "" == s {
		return identity.Identity{}, required
	}
	if nil != m.config {
		if id, ok := m.config.Identities[s]; ok {
			return id.Identity, nil
		}
	}
	return identity.FromString(s)
}

// the account of the selected identity
func (m *metadata) current(c *cli.Context) (identity.Identity, error) {
	id, err := m.config.Identity(c.GlobalString("identity"))
	if nil != err {
		return identity.Identity{}, err
	}
	return id.Identity, nil
}

// decrypt the selected identity
func (m *metadata) privateKey(c *cli.Context) (*btcec.PrivateKey, error) {
	name := c.GlobalString("identity")
	if _, err := m.config.Identity(name); nil != err {
		return nil, err
	}

	password := c.GlobalString("password")
	if "" == password {
		var err error
		password, err = promptPassword()
		if nil != err {
			return nil, err
		}
	}
	return m.config.PrivateKey(password, name)
}

// connect to the first configured server
func (m *metadata) connect(key *btcec.PrivateKey) (*rpccalls.Client, error) {
	if 0 == len(m.config.Connections) {
		return nil, ErrRequiredConnect
	}
	return rpccalls.NewClient(m.config.Connections[0], key, m.verbose, m.e)
}

// connect signing as the selected identity
func (m *metadata) signedClient(c *cli.Context) (*rpccalls.Client, error) {
	key, err := m.privateKey(c)
	if nil != err {
		return nil, err
	}
	return m.connect(key)
}

// signing client only when needed
func (m *metadata) clientFor(c *cli.Context, signed bool) (*rpccalls.Client, error) {
	if signed {
		return m.signedClient(c)
	}
	return m.connect(nil)
}

// output a handle, and its value if requested
func showHandle(client *rpccalls.Client, w io.Writer, title string, handle fhe.Handle, decrypt bool) error {
	result := map[string]interface{}{
		title: handle,
	}
	if decrypt {
		value, err := client.Decrypt(handle)
		if nil != err {
			return err
		}
		result["value"] = fmt.Sprintf("%d", value)
	}
	printJson(w, result)
	return nil
}

func printJson(handle io.Writer, message interface{}) {
	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		fmt.Fprintf(handle, "error: %s\n", err)
		return
	}
	fmt.Fprintf(handle, "%s\n", b)
}
