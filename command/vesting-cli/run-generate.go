// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/vestingd/identity"
)

type generateResult struct {
	PrivateKey string            `json:"private_key"`
	Account    identity.Identity `json:"account"`
}

func runGenerate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	key, err := btcec.NewPrivateKey()
	if nil != err {
		return err
	}

	printJson(m.w, generateResult{
		PrivateKey: hex.EncodeToString(key.Serialize()),
		Account:    identity.FromPublicKey(key.PubKey()),
	})
	return nil
}
