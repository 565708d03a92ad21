// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/vestingd/identity"
)

type identityInfo struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Account     identity.Identity `json:"account"`
	CanSign     bool              `json:"can_sign"`
}

type infoResult struct {
	Chain           string         `json:"chain"`
	Connections     []string       `json:"connections"`
	DefaultIdentity string         `json:"default_identity"`
	Identities      []identityInfo `json:"identities"`
}

func runInfo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	info := infoResult{
		Chain:           m.config.Chain,
		Connections:     m.config.Connections,
		DefaultIdentity: m.config.DefaultIdentity,
		Identities:      make([]identityInfo, 0, len(m.config.Identities)),
	}
	for name, id := range m.config.Identities {
		info.Identities = append(info.Identities, identityInfo{
			Name:        name,
			Description: id.Description,
			Account:     id.Identity,
			CanSign:     "" != id.Data,
		})
	}

	printJson(m.w, info)
	return nil
}

func runNodeInfo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := m.connect(nil)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.GetNodeInfo()
	if nil != err {
		return err
	}

	printJson(m.w, reply)
	return nil
}

func runEvents(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := m.connect(nil)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.ListEvents(c.Uint64("start"), c.Int("count"))
	if nil != err {
		return err
	}

	printJson(m.w, reply)
	return nil
}
