// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coprocessor

import (
	"context"
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/vestingd/fhe"
	"github.com/bitmark-inc/vestingd/identity"
	"github.com/bitmark-inc/vestingd/rpc/auth"
	"github.com/bitmark-inc/vestingd/rpc/ratelimit"
)

// Coprocessor
// -----------

const (
	rateLimitCoprocessor = 100
	rateBurstCoprocessor = 50
)

// Coprocessor - type for the RPC
type Coprocessor struct {
	Log       *logger.L
	Limiter   *rate.Limiter
	Encrypter fhe.InputEncrypter
	Decrypter fhe.Decrypter
	Clock     func() time.Time
}

// New - ciphertext service
func New(log *logger.L, encrypter fhe.InputEncrypter, decrypter fhe.Decrypter, clock func() time.Time) *Coprocessor {
	return &Coprocessor{
		Log:       log,
		Limiter:   rate.NewLimiter(rateLimitCoprocessor, rateBurstCoprocessor),
		Encrypter: encrypter,
		Decrypter: decrypter,
		Clock:     clock,
	}
}

// Encrypt
// -------

// EncryptArguments - arguments for RPC
type EncryptArguments struct {
	Value     uint64            `json:"value,string"`
	Contract  identity.Identity `json:"contract"`
	Submitter identity.Identity `json:"submitter"`
}

// EncryptReply - input handle and its proof
type EncryptReply struct {
	Handle fhe.Handle `json:"handle"`
	Proof  []byte     `json:"proof"`
}

// Encrypt - produce an input for submitter to pass to contract
func (c *Coprocessor) Encrypt(arguments *EncryptArguments, reply *EncryptReply) error {

	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}

	h, proof, err := c.Encrypter.EncryptInput(context.Background(), arguments.Value, arguments.Contract, arguments.Submitter)
	if nil != err {
		return err
	}

	reply.Handle = h
	reply.Proof = proof
	return nil
}

// Decrypt
// -------

// DecryptRequest - the signed part of a decrypt
type DecryptRequest struct {
	Handle fhe.Handle `json:"handle"`
}

// DecryptArguments - arguments for RPC
type DecryptArguments struct {
	Authorization auth.Authorization `json:"authorization"`
	Request       DecryptRequest     `json:"request"`
}

// DecryptReply - plaintext value
type DecryptReply struct {
	Value uint64 `json:"value,string"`
}

// Decrypt - reveal a handle to a caller holding a grant on it
func (c *Coprocessor) Decrypt(arguments *DecryptArguments, reply *DecryptReply) error {

	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}

	if err := arguments.Authorization.Verify("Coprocessor.Decrypt", &arguments.Request, c.Clock()); nil != err {
		return err
	}

	value, err := c.Decrypter.UserDecrypt(context.Background(), arguments.Request.Handle, arguments.Authorization.Caller)
	if nil != err {
		c.Log.Debugf("decrypt: %s  caller: %s  error: %s", arguments.Request.Handle, arguments.Authorization.Caller, err)
		return err
	}

	reply.Value = value
	return nil
}
