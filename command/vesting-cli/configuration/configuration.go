// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - the vesting-cli JSON file of connections and
// password protected identities
package configuration

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/btcsuite/btcd/btcec/v2"

	"github.com/bitmark-inc/vestingd/fault"
	"github.com/bitmark-inc/vestingd/identity"
)

// Configuration - configuration file data format
type Configuration struct {
	DefaultIdentity string              `json:"default_identity"`
	Chain           string              `json:"chain"`
	Connections     []string            `json:"connections"`
	Identities      map[string]Identity `json:"identities"`
}

// Identity - public address and encrypted private key
type Identity struct {
	Description string            `json:"description"`
	Identity    identity.Identity `json:"identity"`
	Data        string            `json:"data"`
	Salt        string            `json:"salt"`
}

// New - empty configuration for a chain
func New(chain string, connect string) *Configuration {
	return &Configuration{
		Chain:       chain,
		Connections: []string{connect},
		Identities:  make(map[string]Identity),
	}
}

// Load - read the configuration
func Load(filename string) (*Configuration, error) {

	filename, err := filepath.Abs(filepath.Clean(filename))
	if nil != err {
		return nil, err
	}

	f, err := os.Open(filename)
	if nil != err {
		return nil, err
	}
	defer f.Close()

	options := &Configuration{}
	err = json.NewDecoder(f).Decode(options)
	if nil != err {
		return nil, err
	}
	if nil == options.Identities {
		options.Identities = make(map[string]Identity)
	}
	return options, nil
}

// Save - replace the configuration file, keeping one backup
func Save(filename string, configuration *Configuration) error {
	tempFile := filename + ".new"
	previousFile := filename + ".bk"

	if err := os.MkdirAll(filepath.Dir(filename), 0700); nil != err {
		return err
	}

	data, err := json.MarshalIndent(configuration, "", "  ")
	if nil != err {
		return err
	}
	if err := os.WriteFile(tempFile, append(data, '\n'), 0600); nil != err {
		return err
	}

	if err := os.Remove(previousFile); nil != err && !os.IsNotExist(err) {
		return err
	}
	if err := os.Rename(filename, previousFile); nil != err && !os.IsNotExist(err) {
		return err
	}
	return os.Rename(tempFile, filename)
}

// Identity - find identity for a given name
func (config *Configuration) Identity(name string) (*Identity, error) {
	if "" == name {
		name = config.DefaultIdentity
	}
	id, ok := config.Identities[name]
	if !ok {
		return nil, fault.ErrIdentityNameNotFound
	}
	return &id, nil
}

// PrivateKey - decrypt the key of a named identity
func (config *Configuration) PrivateKey(password string, name string) (*btcec.PrivateKey, error) {
	id, err := config.Identity(name)
	if nil != err {
		return nil, err
	}
	return decryptIdentity(password, id)
}

// AddIdentity - store an encrypted identity, the first one becomes the default
func (config *Configuration) AddIdentity(name string, description string, privateKey *btcec.PrivateKey, password string) error {

	if _, ok := config.Identities[name]; ok {
		return fault.ErrIdentityNameAlreadyExists
	}

	salt, secretKey, err := hashPassword(password)
	if nil != err {
		return err
	}

	encrypted, err := encryptData(privateKey.Serialize(), secretKey)
	if nil != err {
		return err
	}

	config.Identities[name] = Identity{
		Description: description,
		Identity:    identity.FromPublicKey(privateKey.PubKey()),
		Data:        encrypted,
		Salt:        salt.String(),
	}
	if "" == config.DefaultIdentity {
		config.DefaultIdentity = name
	}

	return nil
}

// AddReceiveOnlyIdentity - store public-only identity
func (config *Configuration) AddReceiveOnlyIdentity(name string, description string, id identity.Identity) error {

	if _, ok := config.Identities[name]; ok {
		return fault.ErrIdentityNameAlreadyExists
	}

	config.Identities[name] = Identity{
		Description: description,
		Identity:    id,
	}

	return nil
}
