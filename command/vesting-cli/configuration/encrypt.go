// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"crypto/rand"
	"encoding/hex"
	"io"

	"github.com/btcsuite/btcd/btcec/v2"
	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/nacl/secretbox"

	"github.com/bitmark-inc/vestingd/fault"
)

const (
	saltSize  = 16
	nonceSize = 24

	argonTime    = 5
	argonMemory  = 1 << 16
	argonThreads = 4
)

// Salt - random input to the password hash
type Salt [saltSize]byte

// MakeSalt - new random salt
func MakeSalt() (*Salt, error) {
	salt := new(Salt)
	if _, err := io.ReadFull(rand.Reader, salt[:]); err != nil {
		return nil, err
	}
	return salt, nil
}

// String - hex form
func (salt Salt) String() string {
	return hex.EncodeToString(salt[:])
}

// SaltFromString - decode hex form
func SaltFromString(s string) (*Salt, error) {
	buffer, err := hex.DecodeString(s)
	if nil != err || saltSize != len(buffer) {
		return nil, fault.ErrNotPrivateKey
	}
	salt := new(Salt)
	copy(salt[:], buffer)
	return salt, nil
}

// check if password unlocks data in the configuration file
func decryptIdentity(password string, id *Identity) (*btcec.PrivateKey, error) {
	if "" == id.Data {
		return nil, fault.ErrNotPrivateKey
	}
	salt, err := SaltFromString(id.Salt)
	if nil != err {
		return nil, err
	}

	data, err := decryptData(id.Data, generateKey(password, salt))
	if nil != err {
		return nil, fault.ErrWrongPassword
	}

	privateKey, _ := btcec.PrivKeyFromBytes(data)
	return privateKey, nil
}

func hashPassword(password string) (*Salt, *[32]byte, error) {
	salt, err := MakeSalt()
	if err != nil {
		return nil, nil, err
	}
	return salt, generateKey(password, salt), nil
}

func generateKey(password string, salt *Salt) *[32]byte {
	hash := argon2.Key([]byte(password), salt[:], argonTime, argonMemory, argonThreads, 32)
	var secretKey [32]byte
	copy(secretKey[:], hash)
	return &secretKey
}

// encrypt data and convert to hex, nonce first
func encryptData(data []byte, secretKey *[32]byte) (string, error) {
	var nonce [nonceSize]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return "", fault.ErrCryptoFailed
	}

	ciphertext := secretbox.Seal(nonce[:], data, &nonce, secretKey)
	return hex.EncodeToString(ciphertext), nil
}

// decrypt a hex string and return plaintext
func decryptData(ciphertext string, secretKey *[32]byte) ([]byte, error) {
	encrypted, err := hex.DecodeString(ciphertext)
	if err != nil {
		return nil, err
	}
	if len(encrypted) <= nonceSize {
		return nil, fault.ErrCryptoFailed
	}

	var nonce [nonceSize]byte
	copy(nonce[:], encrypted[:nonceSize])
	decrypted, ok := secretbox.Open(nil, encrypted[nonceSize:], &nonce, secretKey)
	if !ok {
		return nil, fault.ErrCryptoFailed
	}
	return decrypted, nil
}
