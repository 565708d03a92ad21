// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/bitmark-inc/vestingd/fault"
)

var (
	ErrAccessOne   = fault.AccessError("access one")
	ErrAccessTwo   = fault.AccessError("access two")
	ErrExistsOne   = fault.ExistsError("exists one ")
	ErrExistsTwo   = fault.ExistsError("exists two")
	ErrInvalidOne  = fault.InvalidError("invalid one")
	ErrInvalidTwo  = fault.InvalidError("invalid two")
	ErrLengthOne   = fault.LengthError("length one")
	ErrLengthTwo   = fault.LengthError("length two")
	ErrNotFoundOne = fault.NotFoundError("not found one")
	ErrNotFoundTwo = fault.NotFoundError("not found two")
	ErrProcessOne  = fault.ProcessError("process one")
	ErrProcessTwo  = fault.ProcessError("process two")
)

// test that the error classes are distinct
func TestClasses(t *testing.T) {
	errorList := []struct {
		err      error
		access   bool
		exists   bool
		invalid  bool
		length   bool
		notFound bool
		process  bool
	}{
		{ErrAccessOne, true, false, false, false, false, false},
		{ErrAccessTwo, true, false, false, false, false, false},
		{ErrExistsOne, false, true, false, false, false, false},
		{ErrExistsTwo, false, true, false, false, false, false},
		{ErrInvalidOne, false, false, true, false, false, false},
		{ErrInvalidTwo, false, false, true, false, false, false},
		{ErrLengthOne, false, false, false, true, false, false},
		{ErrLengthTwo, false, false, false, true, false, false},
		{ErrNotFoundOne, false, false, false, false, true, false},
		{ErrNotFoundTwo, false, false, false, false, true, false},
		{ErrProcessOne, false, false, false, false, false, true},
		{ErrProcessTwo, false, false, false, false, false, true},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrAccess(err) != e.access {
			t.Errorf("%d: expected 'access' == %v for err = %v", i, e.access, err)
		}
		if fault.IsErrExists(err) != e.exists {
			t.Errorf("%d: expected 'exists' == %v for err = %v", i, e.exists, err)
		}
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrLength(err) != e.length {
			t.Errorf("%d: expected 'length' == %v for err = %v", i, e.length, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, e.notFound, err)
		}
		if fault.IsErrProcess(err) != e.process {
			t.Errorf("%d: expected 'process' == %v for err = %v", i, e.process, err)
		}
		if !fault.IsFault(err) {
			t.Errorf("%d: expected fault for err = %v", i, err)
		}
	}
}

// the vesting failures must land in the documented classes
func TestVestingTaxonomy(t *testing.T) {
	if !fault.IsErrInvalid(fault.ErrInvalidBeneficiary) {
		t.Error("invalid beneficiary is not an invalid error")
	}
	if !fault.IsErrInvalid(fault.ErrInvalidDuration) {
		t.Error("invalid duration is not an invalid error")
	}
	if !fault.IsErrInvalid(fault.ErrInvalidCiphertext) {
		t.Error("invalid ciphertext is not an invalid error")
	}
	if !fault.IsErrProcess(fault.ErrTransferFailed) {
		t.Error("transfer failed is not a process error")
	}
	if !fault.IsErrAccess(fault.ErrNotAuthorized) {
		t.Error("not authorized is not an access error")
	}
	if fault.ErrNotAuthorized.Error() != "not authorized" {
		t.Errorf("unexpected message: %q", fault.ErrNotAuthorized)
	}
}
