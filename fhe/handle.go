// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fhe

import (
	"encoding/hex"
	"strings"

	"github.com/bitmark-inc/vestingd/fault"
)

// HandleLength - number of bytes in a handle
const HandleLength = 32

// Kind - the plaintext type behind a handle, held in its last byte
type Kind byte

// supported kinds
const (
	KindBool   Kind = 0x00
	KindUint64 Kind = 0x05
)

// Handle - opaque reference to a ciphertext held by the coprocessor
//
// the all zero handle is Nil and decrypts as zero
type Handle [HandleLength]byte

// Nil - the uninitialised handle
var Nil Handle

// IsNil - true for an uninitialised handle
func (h Handle) IsNil() bool {
	return Nil == h
}

// Kind - plaintext type of the handle
func (h Handle) Kind() Kind {
	return Kind(h[HandleLength-1])
}

// HandleFromBytes - convert a byte slice to a handle
func HandleFromBytes(buffer []byte) (Handle, error) {
	var h Handle
	if HandleLength != len(buffer) {
		return h, fault.ErrInvalidHandleLength
	}
	copy(h[:], buffer)
	return h, nil
}

// String - hex with 0x prefix
func (h Handle) String() string {
	return "0x" + hex.EncodeToString(h[:])
}

// MarshalText - convert handle to text
func (h Handle) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// UnmarshalText - convert text to handle
func (h *Handle) UnmarshalText(s []byte) error {
	text := strings.TrimPrefix(string(s), "0x")
	if 2*HandleLength != len(text) {
		return fault.ErrInvalidHandleLength
	}
	buffer, err := hex.DecodeString(text)
	if nil != err {
		return fault.ErrInvalidHandle
	}
	copy(h[:], buffer)
	return nil
}
