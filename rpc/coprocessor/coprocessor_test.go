// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coprocessor_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/vestingd/fault"
	"github.com/bitmark-inc/vestingd/fhe"
	"github.com/bitmark-inc/vestingd/fhe/mocks"
	"github.com/bitmark-inc/vestingd/fixtures"
	"github.com/bitmark-inc/vestingd/rpc/coprocessor"
	rpcfixtures "github.com/bitmark-inc/vestingd/rpc/fixtures"
)

func handle(n byte) fhe.Handle {
	var h fhe.Handle
	h[0] = n
	h[fhe.HandleLength-1] = byte(fhe.KindUint64)
	return h
}

func TestEncrypt(t *testing.T) {
	rpcfixtures.SetupTestLogger()
	defer rpcfixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	e := mocks.NewMockInputEncrypter(ctl)
	d := mocks.NewMockDecrypter(ctl)
	c := coprocessor.New(logger.New(rpcfixtures.LogCategory), e, d, rpcfixtures.Clock)

	e.EXPECT().EncryptInput(gomock.Any(), uint64(250), fixtures.Owner, fixtures.Depositor).Return(handle(7), []byte{1, 2, 3}, nil).Times(1)

	var reply coprocessor.EncryptReply
	err := c.Encrypt(&coprocessor.EncryptArguments{Value: 250, Contract: fixtures.Owner, Submitter: fixtures.Depositor}, &reply)
	assert.Nil(t, err, "wrong Encrypt")
	assert.Equal(t, handle(7), reply.Handle, "wrong handle")
	assert.Equal(t, []byte{1, 2, 3}, reply.Proof, "wrong proof")
}

func TestDecrypt(t *testing.T) {
	rpcfixtures.SetupTestLogger()
	defer rpcfixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	e := mocks.NewMockInputEncrypter(ctl)
	d := mocks.NewMockDecrypter(ctl)
	c := coprocessor.New(logger.New(rpcfixtures.LogCategory), e, d, rpcfixtures.Clock)

	request := coprocessor.DecryptRequest{Handle: handle(9)}
	arguments := coprocessor.DecryptArguments{
		Authorization: rpcfixtures.Authorize(t, fixtures.BeneficiaryKey, "Coprocessor.Decrypt", &request),
		Request:       request,
	}

	gomock.InOrder(
		d.EXPECT().UserDecrypt(gomock.Any(), handle(9), fixtures.Beneficiary).Return(uint64(42), nil),
		d.EXPECT().UserDecrypt(gomock.Any(), handle(9), fixtures.Beneficiary).Return(uint64(0), fault.ErrDecryptNotGranted),
	)

	var reply coprocessor.DecryptReply
	err := c.Decrypt(&arguments, &reply)
	assert.Nil(t, err, "wrong Decrypt")
	assert.Equal(t, uint64(42), reply.Value, "wrong value")

	err = c.Decrypt(&arguments, &reply)
	assert.Equal(t, fault.ErrDecryptNotGranted, err, "decrypt without grant")

	// decrypter must not be reached
	arguments.Request.Handle = handle(10)
	err = c.Decrypt(&arguments, &reply)
	assert.Equal(t, fault.ErrRequestSignerMismatch, err, "altered handle")
}
