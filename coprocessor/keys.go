// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coprocessor

import (
	"crypto/ed25519"
	"crypto/rand"

	"golang.org/x/crypto/chacha20poly1305"

	"github.com/bitmark-inc/vestingd/util"
)

const (
	taggedSeal  = "SEAL"
	taggedInput = "INPUT"
)

// Keys - secret material of the coprocessor
type Keys struct {
	Seal  []byte             // XChaCha20-Poly1305 key
	Input ed25519.PrivateKey // signs input proofs
}

// GenerateKeys - fresh random keys
func GenerateKeys() (*Keys, error) {
	seal := make([]byte, chacha20poly1305.KeySize)
	if _, err := rand.Read(seal); nil != err {
		return nil, err
	}

	_, input, err := ed25519.GenerateKey(rand.Reader)
	if nil != err {
		return nil, err
	}

	return &Keys{
		Seal:  seal,
		Input: input,
	}, nil
}

// WriteKeys - save keys to a new file
func WriteKeys(filename string, keys *Keys) error {
	return util.WriteTaggedKeys(
		filename,
		[]string{taggedSeal, taggedInput},
		[][]byte{keys.Seal, keys.Input.Seed()},
	)
}

// ReadKeys - load keys from a file
func ReadKeys(filename string) (*Keys, error) {
	data, err := util.ReadTaggedKeys(filename, map[string]int{
		taggedSeal:  chacha20poly1305.KeySize,
		taggedInput: ed25519.SeedSize,
	})
	if nil != err {
		return nil, err
	}

	return &Keys{
		Seal:  data[taggedSeal],
		Input: ed25519.NewKeyFromSeed(data[taggedInput]),
	}, nil
}
