// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fhe - operations on encrypted 64 bit amounts
//
// values never appear in plaintext: every operation consumes and
// produces handles. Arithmetic wraps modulo 2^64 like the plaintext
// uint64 it models, so callers guard with Ge and Select.
// A Nil operand behaves as an encryption of zero.
package fhe

import (
	"context"

	"github.com/bitmark-inc/vestingd/identity"
)

// Coprocessor - the homomorphic evaluator and its access control list
type Coprocessor interface {
	// validate an encrypted input submitted by submitter for contract
	// and grant contract the right to use it
	VerifyInput(ctx context.Context, input Handle, proof []byte, contract identity.Identity, submitter identity.Identity) (Handle, error)

	TrivialEncrypt(ctx context.Context, value uint64) (Handle, error)

	Add(ctx context.Context, a Handle, b Handle) (Handle, error)
	Sub(ctx context.Context, a Handle, b Handle) (Handle, error)

	// encrypted a >= b
	Ge(ctx context.Context, a Handle, b Handle) (Handle, error)

	// condition ? a : b without revealing condition
	Select(ctx context.Context, condition Handle, a Handle, b Handle) (Handle, error)

	// a * numerator / denominator with a 128 bit intermediate
	MulDiv(ctx context.Context, a Handle, numerator uint64, denominator uint64) (Handle, error)

	Allow(ctx context.Context, h Handle, who identity.Identity) error
	IsAllowed(ctx context.Context, h Handle, who identity.Identity) bool
}

// Decrypter - decryption for a party holding a grant
type Decrypter interface {
	UserDecrypt(ctx context.Context, h Handle, who identity.Identity) (uint64, error)
}

// InputEncrypter - client side encryption of an input with its proof
type InputEncrypter interface {
	EncryptInput(ctx context.Context, value uint64, contract identity.Identity, submitter identity.Identity) (Handle, []byte, error)
}

// Choose - select one of two handles on a plaintext predicate
func Choose(predicate bool, ifTrue Handle, ifFalse Handle) Handle {
	if predicate {
		return ifTrue
	}
	return ifFalse
}

// AllowAll - grant one handle to several parties
func AllowAll(ctx context.Context, c Coprocessor, h Handle, parties ...identity.Identity) error {
	for _, who := range parties {
		if err := c.Allow(ctx, h, who); nil != err {
			return err
		}
	}
	return nil
}
