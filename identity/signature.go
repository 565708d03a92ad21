// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package identity

import (
	"encoding/hex"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"

	"github.com/bitmark-inc/vestingd/fault"
)

// SignatureLength - recoverable compact signature size
const SignatureLength = 65

// Signature - compact recoverable secp256k1 signature
type Signature []byte

// Sign - produce a recoverable signature over Keccak-256(message)
func Sign(privateKey *btcec.PrivateKey, message []byte) (Signature, error) {
	return ecdsa.SignCompact(privateKey, Keccak256(message), false), nil
}

// Recover - return the identity that produced the signature
func Recover(message []byte, signature Signature) (Identity, error) {
	if SignatureLength != len(signature) {
		return Zero, fault.ErrInvalidSignature
	}
	publicKey, _, err := ecdsa.RecoverCompact(signature, Keccak256(message))
	if nil != err {
		return Zero, fault.ErrInvalidSignature
	}
	return FromPublicKey(publicKey), nil
}

// PrivateKeyFromHex - load a secp256k1 private key
func PrivateKeyFromHex(s string) (*btcec.PrivateKey, error) {
	buffer, err := hex.DecodeString(strings.TrimPrefix(strings.TrimSpace(s), "0x"))
	if nil != err || 32 != len(buffer) {
		return nil, fault.ErrInvalidKeyFile
	}
	privateKey, _ := btcec.PrivKeyFromBytes(buffer)
	return privateKey, nil
}

// MarshalText - signature as hex
func (signature Signature) MarshalText() ([]byte, error) {
	buffer := make([]byte, hex.EncodedLen(len(signature)))
	hex.Encode(buffer, signature)
	return buffer, nil
}

// UnmarshalText - signature from hex
func (signature *Signature) UnmarshalText(s []byte) error {
	buffer := make([]byte, hex.DecodedLen(len(s)))
	n, err := hex.Decode(buffer, s)
	if nil != err {
		return fault.ErrInvalidSignature
	}
	*signature = buffer[:n]
	return nil
}
