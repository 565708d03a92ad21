// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package identity_test

import (
	"encoding/json"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/vestingd/fault"
	"github.com/bitmark-inc/vestingd/identity"
)

// private key 1 has a well known address
const keyOne = "0000000000000000000000000000000000000000000000000000000000000001"
const addressOne = "0x7E5F4552091A69125d5DfCb7b8C2659029395Bdf"

func TestFromPublicKey(t *testing.T) {
	privateKey, err := identity.PrivateKeyFromHex(keyOne)
	assert.Nil(t, err, "key error")

	id := identity.FromPublicKey(privateKey.PubKey())
	assert.Equal(t, addressOne, id.String(), "wrong address")
	assert.False(t, id.IsZero(), "should not be zero")
}

func TestFromString(t *testing.T) {
	id, err := identity.FromString(addressOne)
	assert.Nil(t, err, "checksummed decode")

	lower, err := identity.FromString("0x7e5f4552091a69125d5dfcb7b8c2659029395bdf")
	assert.Nil(t, err, "lower case decode")
	assert.Equal(t, id, lower, "case should not matter")

	_, err = identity.FromString("0x7E5F4552091A69125d5DfCb7b8C2659029395BdF")
	assert.Equal(t, fault.ErrInvalidIdentity, err, "bad checksum accepted")

	_, err = identity.FromString("0x7e5f45")
	assert.Equal(t, fault.ErrInvalidIdentityLength, err, "short identity accepted")

	_, err = identity.FromString("0xzz5f4552091a69125d5dfcb7b8c2659029395bdf")
	assert.Equal(t, fault.ErrInvalidIdentity, err, "non hex accepted")
}

func TestFromBytes(t *testing.T) {
	_, err := identity.FromBytes([]byte{1, 2, 3})
	assert.Equal(t, fault.ErrInvalidIdentityLength, err, "short bytes accepted")

	id, err := identity.FromBytes(make([]byte, identity.Length))
	assert.Nil(t, err, "zero bytes")
	assert.True(t, id.IsZero(), "should be zero")
	assert.Equal(t, identity.Zero, id, "should equal Zero")
}

func TestJSON(t *testing.T) {
	id, _ := identity.FromString(addressOne)

	type item struct {
		Owner identity.Identity `json:"owner"`
	}
	buffer, err := json.Marshal(item{Owner: id})
	assert.Nil(t, err, "marshal")
	assert.Equal(t, `{"owner":"`+addressOne+`"}`, string(buffer), "wrong JSON")

	var decoded item
	err = json.Unmarshal(buffer, &decoded)
	assert.Nil(t, err, "unmarshal")
	assert.Equal(t, id, decoded.Owner, "round trip")
}

func TestDerive(t *testing.T) {
	creator, _ := identity.FromString(addressOne)

	a := identity.Derive(creator, 1)
	b := identity.Derive(creator, 2)
	assert.NotEqual(t, a, b, "different nonces must differ")
	assert.Equal(t, a, identity.Derive(creator, 1), "derive must be deterministic")
	assert.Equal(t, identity.FromName("USDx"), identity.FromName("USDx"), "name must be deterministic")
}

func TestSignRecover(t *testing.T) {
	privateKey, err := btcec.NewPrivateKey()
	assert.Nil(t, err, "key generation")

	message := []byte("release 0x7E5F4552091A69125d5DfCb7b8C2659029395Bdf")
	signature, err := identity.Sign(privateKey, message)
	assert.Nil(t, err, "sign")
	assert.Equal(t, identity.SignatureLength, len(signature), "signature length")

	signer, err := identity.Recover(message, signature)
	assert.Nil(t, err, "recover")
	assert.Equal(t, identity.FromPublicKey(privateKey.PubKey()), signer, "wrong signer")

	other, err := identity.Recover([]byte("tampered"), signature)
	if nil == err {
		assert.NotEqual(t, signer, other, "tampered message recovered same signer")
	}

	_, err = identity.Recover(message, signature[:10])
	assert.Equal(t, fault.ErrInvalidSignature, err, "short signature accepted")
}
