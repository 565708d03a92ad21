// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vesting

import (
	"encoding/binary"

	"github.com/bitmark-inc/vestingd/fault"
	"github.com/bitmark-inc/vestingd/identity"
	"github.com/bitmark-inc/vestingd/ledger"
)

// packed: owner ++ beneficiary ++ token ++ start ++ duration
const packedRecordLength = 3*identity.Length + 2*8

// Record - the immutable part of a vesting account
type Record struct {
	ID          identity.Identity `json:"id"`
	Owner       identity.Identity `json:"owner"`
	Beneficiary identity.Identity `json:"beneficiary"`
	Token       identity.Identity `json:"token"`
	Start       uint64            `json:"start"`
	Duration    uint64            `json:"duration"`
}

// Validate - check the creation parameters
func Validate(owner identity.Identity, beneficiary identity.Identity, start uint64, duration uint64) error {
	if owner.IsZero() {
		return fault.ErrInvalidOwner
	}
	if beneficiary.IsZero() {
		return fault.ErrInvalidBeneficiary
	}
	return ledger.Schedule{Start: start, Duration: duration}.Validate()
}

// Pack - binary form stored under the account id
func (r Record) Pack() []byte {
	buffer := make([]byte, 0, packedRecordLength)
	buffer = append(buffer, r.Owner[:]...)
	buffer = append(buffer, r.Beneficiary[:]...)
	buffer = append(buffer, r.Token[:]...)
	buffer = binary.BigEndian.AppendUint64(buffer, r.Start)
	return binary.BigEndian.AppendUint64(buffer, r.Duration)
}

// UnpackRecord - decode a stored record
func UnpackRecord(id identity.Identity, buffer []byte) (Record, error) {
	r := Record{
		ID: id,
	}
	if packedRecordLength != len(buffer) {
		return r, fault.ErrInvalidRecordLength
	}

	n := 0
	for _, field := range []*identity.Identity{&r.Owner, &r.Beneficiary, &r.Token} {
		copy(field[:], buffer[n:n+identity.Length])
		n += identity.Length
	}
	r.Start = binary.BigEndian.Uint64(buffer[n:])
	r.Duration = binary.BigEndian.Uint64(buffer[n+8:])
	return r, nil
}
