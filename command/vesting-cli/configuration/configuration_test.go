// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"path/filepath"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/vestingd/command/vesting-cli/configuration"
	"github.com/bitmark-inc/vestingd/fault"
	"github.com/bitmark-inc/vestingd/identity"
)

func TestIdentityRoundTrip(t *testing.T) {
	key, err := btcec.NewPrivateKey()
	assert.Nil(t, err, "key")

	c := configuration.New("local", "127.0.0.1:2330")
	err = c.AddIdentity("alice", "first", key, "secret")
	assert.Nil(t, err, "add identity")
	assert.Equal(t, "alice", c.DefaultIdentity, "first identity is not default")

	err = c.AddIdentity("alice", "again", key, "secret")
	assert.Equal(t, fault.ErrIdentityNameAlreadyExists, err, "duplicate name")

	err = c.AddReceiveOnlyIdentity("bob", "watch", identity.Identity{2})
	assert.Nil(t, err, "add receive only")

	file := filepath.Join(t.TempDir(), "cli", "local-vesting-cli.json")
	err = configuration.Save(file, c)
	assert.Nil(t, err, "save")

	loaded, err := configuration.Load(file)
	assert.Nil(t, err, "load")
	assert.Equal(t, c, loaded, "configuration changed")

	private, err := loaded.PrivateKey("secret", "")
	assert.Nil(t, err, "decrypt default")
	assert.Equal(t, key.Serialize(), private.Serialize(), "wrong key")

	_, err = loaded.PrivateKey("wrong", "alice")
	assert.Equal(t, fault.ErrWrongPassword, err, "wrong password accepted")

	_, err = loaded.PrivateKey("secret", "bob")
	assert.Equal(t, fault.ErrNotPrivateKey, err, "receive only identity decrypted")

	_, err = loaded.PrivateKey("secret", "carol")
	assert.Equal(t, fault.ErrIdentityNameNotFound, err, "unknown identity")

	id, err := loaded.Identity("bob")
	assert.Nil(t, err, "identity")
	assert.Equal(t, identity.Identity{2}, id.Identity, "wrong identity")
}

func TestSaveKeepsBackup(t *testing.T) {
	file := filepath.Join(t.TempDir(), "test.json")

	first := configuration.New("local", "a:1")
	assert.Nil(t, configuration.Save(file, first), "first save")

	second := configuration.New("local", "b:2")
	assert.Nil(t, configuration.Save(file, second), "second save")

	backup, err := configuration.Load(file + ".bk")
	assert.Nil(t, err, "backup")
	assert.Equal(t, []string{"a:1"}, backup.Connections, "wrong backup")

	current, err := configuration.Load(file)
	assert.Nil(t, err, "current")
	assert.Equal(t, []string{"b:2"}, current.Connections, "wrong current")
}
