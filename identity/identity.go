// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package identity

import (
	"encoding/binary"
	"encoding/hex"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/vestingd/fault"
)

// Length - number of bytes in an identity
const Length = 20

// Identity - a 20 byte address for owners, beneficiaries, tokens and vesting accounts
type Identity [Length]byte

// Zero - the unset identity
var Zero Identity

// FromBytes - convert a byte slice to an identity
func FromBytes(buffer []byte) (Identity, error) {
	var id Identity
	if Length != len(buffer) {
		return id, fault.ErrInvalidIdentityLength
	}
	copy(id[:], buffer)
	return id, nil
}

// FromString - decode a hex identity with an optional 0x prefix
//
// mixed case input must carry a valid checksum
func FromString(s string) (Identity, error) {
	var id Identity
	text := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if 2*Length != len(text) {
		return id, fault.ErrInvalidIdentityLength
	}
	buffer, err := hex.DecodeString(text)
	if nil != err {
		return id, fault.ErrInvalidIdentity
	}
	copy(id[:], buffer)

	if text != strings.ToLower(text) && text != strings.ToUpper(text) {
		if id.checksummed() != text {
			return Zero, fault.ErrInvalidIdentity
		}
	}
	return id, nil
}

// FromPublicKey - the identity controlled by a secp256k1 key
//
// last 20 bytes of Keccak-256 over the uncompressed point without its 0x04 tag
func FromPublicKey(publicKey *btcec.PublicKey) Identity {
	var id Identity
	digest := Keccak256(publicKey.SerializeUncompressed()[1:])
	copy(id[:], digest[12:])
	return id
}

// Derive - deterministic identity for an object created by creator
func Derive(creator Identity, nonce uint64) Identity {
	buffer := make([]byte, Length+8)
	copy(buffer, creator[:])
	binary.BigEndian.PutUint64(buffer[Length:], nonce)

	var id Identity
	digest := Keccak256(buffer)
	copy(id[:], digest[12:])
	return id
}

// FromName - deterministic identity for a named object such as a token
func FromName(name string) Identity {
	var id Identity
	digest := Keccak256([]byte(name))
	copy(id[:], digest[12:])
	return id
}

// Keccak256 - legacy Keccak digest used for addresses and request signing
func Keccak256(data ...[]byte) []byte {
	h := sha3.NewLegacyKeccak256()
	for _, d := range data {
		h.Write(d)
	}
	return h.Sum(nil)
}

// IsZero - true if the identity is unset
func (id Identity) IsZero() bool {
	return Zero == id
}

// Bytes - copy of the identity bytes
func (id Identity) Bytes() []byte {
	buffer := make([]byte, Length)
	copy(buffer, id[:])
	return buffer
}

// String - checksummed hex with 0x prefix
func (id Identity) String() string {
	return "0x" + id.checksummed()
}

// GoString - for %#v
func (id Identity) GoString() string {
	return "<identity:" + id.String() + ">"
}

// MarshalText - convert identity to text
func (id Identity) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText - convert text to identity
func (id *Identity) UnmarshalText(s []byte) error {
	i, err := FromString(string(s))
	if nil != err {
		return err
	}
	*id = i
	return nil
}

// mixed-case checksum: a hex letter is upper case when the matching
// nibble of the Keccak digest of the lower case text is >= 8
func (id Identity) checksummed() string {
	lower := hex.EncodeToString(id[:])
	digest := Keccak256([]byte(lower))

	result := []byte(lower)
	for i, c := range result {
		if c < 'a' {
			continue
		}
		nibble := digest[i/2]
		if 0 == i%2 {
			nibble >>= 4
		}
		if nibble&0x0f >= 8 {
			result[i] = c - 'a' + 'A'
		}
	}
	return string(result)
}
