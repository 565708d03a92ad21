// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package coprocessor - a local evaluator for encrypted amounts
//
// every ciphertext is sealed with XChaCha20-Poly1305 under the node
// key and stored in the ciphertext pool; its handle is the SHA3-256
// digest of the sealed record with the last byte replaced by the kind.
// Each operation opens its operands, computes in plaintext and seals
// the result under a fresh nonce, so equal values never share a handle.
package coprocessor

import (
	"bytes"
	"context"
	"crypto/cipher"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/binary"
	"math/bits"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/vestingd/fault"
	"github.com/bitmark-inc/vestingd/fhe"
	"github.com/bitmark-inc/vestingd/identity"
	"github.com/bitmark-inc/vestingd/storage"
)

const plaintextLength = 8

var grantedMarker = []byte{0x01}

// Coprocessor - evaluator backed by the local database
type Coprocessor struct {
	log         *logger.L
	store       *storage.Store
	ciphertexts *storage.PoolHandle
	grants      *storage.PoolHandle
	aead        cipher.AEAD
	signer      ed25519.PrivateKey
	verifier    ed25519.PublicKey
}

// New - create a coprocessor over an open store
func New(log *logger.L, store *storage.Store, keys *Keys) (*Coprocessor, error) {
	if nil == keys {
		return nil, fault.ErrMissingParameters
	}

	aead, err := chacha20poly1305.NewX(keys.Seal)
	if nil != err {
		return nil, fault.ErrInvalidKeyFile
	}
	if ed25519.PrivateKeySize != len(keys.Input) {
		return nil, fault.ErrInvalidKeyFile
	}

	return &Coprocessor{
		log:         log,
		store:       store,
		ciphertexts: store.Pool.Ciphertexts,
		grants:      store.Pool.Grants,
		aead:        aead,
		signer:      keys.Input,
		verifier:    keys.Input.Public().(ed25519.PublicKey),
	}, nil
}

// TrivialEncrypt - encrypt a public constant
func (c *Coprocessor) TrivialEncrypt(ctx context.Context, value uint64) (fhe.Handle, error) {
	return c.seal(ctx, fhe.KindUint64, value)
}

// Add - a + b modulo 2^64
func (c *Coprocessor) Add(ctx context.Context, a fhe.Handle, b fhe.Handle) (fhe.Handle, error) {
	x, y, err := c.open2(ctx, a, b)
	if nil != err {
		return fhe.Nil, err
	}
	return c.seal(ctx, fhe.KindUint64, x+y)
}

// Sub - a - b modulo 2^64
func (c *Coprocessor) Sub(ctx context.Context, a fhe.Handle, b fhe.Handle) (fhe.Handle, error) {
	x, y, err := c.open2(ctx, a, b)
	if nil != err {
		return fhe.Nil, err
	}
	return c.seal(ctx, fhe.KindUint64, x-y)
}

// Ge - encrypted boolean a >= b
func (c *Coprocessor) Ge(ctx context.Context, a fhe.Handle, b fhe.Handle) (fhe.Handle, error) {
	x, y, err := c.open2(ctx, a, b)
	if nil != err {
		return fhe.Nil, err
	}
	result := uint64(0)
	if x >= y {
		result = 1
	}
	return c.seal(ctx, fhe.KindBool, result)
}

// Select - fresh encryption of a if condition holds, otherwise of b
func (c *Coprocessor) Select(ctx context.Context, condition fhe.Handle, a fhe.Handle, b fhe.Handle) (fhe.Handle, error) {
	flag, err := c.open(ctx, condition, fhe.KindBool)
	if nil != err {
		return fhe.Nil, err
	}
	x, y, err := c.open2(ctx, a, b)
	if nil != err {
		return fhe.Nil, err
	}
	if 0 != flag {
		return c.seal(ctx, fhe.KindUint64, x)
	}
	return c.seal(ctx, fhe.KindUint64, y)
}

// MulDiv - floor(a * numerator / denominator)
func (c *Coprocessor) MulDiv(ctx context.Context, a fhe.Handle, numerator uint64, denominator uint64) (fhe.Handle, error) {
	if 0 == denominator {
		return fhe.Nil, fault.ErrZeroDenominator
	}
	x, err := c.open(ctx, a, fhe.KindUint64)
	if nil != err {
		return fhe.Nil, err
	}

	hi, lo := bits.Mul64(x, numerator)
	if hi >= denominator {
		return fhe.Nil, fault.ErrOverflow
	}
	quotient, _ := bits.Div64(hi, lo, denominator)

	return c.seal(ctx, fhe.KindUint64, quotient)
}

// Allow - grant who the right to use and decrypt h
func (c *Coprocessor) Allow(ctx context.Context, h fhe.Handle, who identity.Identity) error {
	if h.IsNil() {
		return nil
	}
	return c.store.Run(ctx, func(_ context.Context, trx storage.Transaction) error {
		if !trx.Has(c.ciphertexts, h[:]) {
			return fault.ErrHandleNotFound
		}
		trx.Put(c.grants, grantKey(h, who), grantedMarker)
		return nil
	})
}

// IsAllowed - true if who holds a grant on h
//
// the Nil handle is a public zero and allowed to everyone
func (c *Coprocessor) IsAllowed(ctx context.Context, h fhe.Handle, who identity.Identity) bool {
	if h.IsNil() {
		return true
	}
	return c.store.Reader(ctx).Has(c.grants, grantKey(h, who))
}

// UserDecrypt - reveal h to a party holding a grant
func (c *Coprocessor) UserDecrypt(ctx context.Context, h fhe.Handle, who identity.Identity) (uint64, error) {
	if h.IsNil() {
		return 0, nil
	}
	if !c.IsAllowed(ctx, h, who) {
		return 0, fault.ErrDecryptNotGranted
	}
	return c.open(ctx, h, h.Kind())
}

// EncryptInput - encrypt a value for submission by submitter to contract
//
// returns the handle and the proof VerifyInput checks
func (c *Coprocessor) EncryptInput(ctx context.Context, value uint64, contract identity.Identity, submitter identity.Identity) (fhe.Handle, []byte, error) {
	h, err := c.seal(ctx, fhe.KindUint64, value)
	if nil != err {
		return fhe.Nil, nil, err
	}
	proof := ed25519.Sign(c.signer, inputDigest(h, contract, submitter))
	return h, proof, nil
}

// VerifyInput - check the proof binds input to contract and submitter
func (c *Coprocessor) VerifyInput(ctx context.Context, input fhe.Handle, proof []byte, contract identity.Identity, submitter identity.Identity) (fhe.Handle, error) {
	if input.IsNil() || fhe.KindUint64 != input.Kind() {
		return fhe.Nil, fault.ErrInvalidHandle
	}
	if ed25519.SignatureSize != len(proof) || !ed25519.Verify(c.verifier, inputDigest(input, contract, submitter), proof) {
		c.log.Warnf("input proof rejected: handle: %s  contract: %s  submitter: %s", input, contract, submitter)
		return fhe.Nil, fault.ErrInvalidProof
	}
	if err := c.Allow(ctx, input, contract); nil != err {
		return fhe.Nil, err
	}
	return input, nil
}

// digest signed by an input proof
func inputDigest(h fhe.Handle, contract identity.Identity, submitter identity.Identity) []byte {
	digest := sha3.New256()
	digest.Write(h[:])
	digest.Write(contract[:])
	digest.Write(submitter[:])
	return digest.Sum(nil)
}

func grantKey(h fhe.Handle, who identity.Identity) []byte {
	key := make([]byte, 0, fhe.HandleLength+identity.Length)
	key = append(key, h[:]...)
	return append(key, who[:]...)
}

// record: kind ++ nonce ++ sealed(value)
func (c *Coprocessor) seal(ctx context.Context, kind fhe.Kind, value uint64) (fhe.Handle, error) {
	plaintext := make([]byte, plaintextLength)
	binary.BigEndian.PutUint64(plaintext, value)

	nonceSize := c.aead.NonceSize()
	record := make([]byte, 1+nonceSize, 1+nonceSize+plaintextLength+c.aead.Overhead())
	record[0] = byte(kind)
	if _, err := rand.Read(record[1:]); nil != err {
		return fhe.Nil, fault.ErrSealFailed
	}
	nonce := make([]byte, nonceSize)
	copy(nonce, record[1:])
	record = c.aead.Seal(record, nonce, plaintext, []byte{byte(kind)})

	h := handleOf(record, kind)

	err := c.store.Run(ctx, func(_ context.Context, trx storage.Transaction) error {
		trx.Put(c.ciphertexts, h[:], record)
		return nil
	})
	if nil != err {
		return fhe.Nil, err
	}
	return h, nil
}

// the Nil handle opens as zero of any kind
func (c *Coprocessor) open(ctx context.Context, h fhe.Handle, kind fhe.Kind) (uint64, error) {
	if h.IsNil() {
		return 0, nil
	}
	if kind != h.Kind() {
		return 0, fault.ErrInvalidHandleKind
	}

	record := c.store.Reader(ctx).Get(c.ciphertexts, h[:])
	if nil == record {
		return 0, fault.ErrHandleNotFound
	}

	nonceSize := c.aead.NonceSize()
	if len(record) != 1+nonceSize+plaintextLength+c.aead.Overhead() {
		return 0, fault.ErrInvalidCiphertext
	}
	if check := handleOf(record, kind); !bytes.Equal(check[:], h[:]) {
		return 0, fault.ErrInvalidCiphertext
	}

	plaintext, err := c.aead.Open(nil, record[1:1+nonceSize], record[1+nonceSize:], []byte{byte(kind)})
	if nil != err || plaintextLength != len(plaintext) {
		return 0, fault.ErrInvalidCiphertext
	}
	return binary.BigEndian.Uint64(plaintext), nil
}

func (c *Coprocessor) open2(ctx context.Context, a fhe.Handle, b fhe.Handle) (uint64, uint64, error) {
	x, err := c.open(ctx, a, fhe.KindUint64)
	if nil != err {
		return 0, 0, err
	}
	y, err := c.open(ctx, b, fhe.KindUint64)
	if nil != err {
		return 0, 0, err
	}
	return x, y, nil
}

func handleOf(record []byte, kind fhe.Kind) fhe.Handle {
	h := fhe.Handle(sha3.Sum256(record))
	h[fhe.HandleLength-1] = byte(kind)
	return h
}
