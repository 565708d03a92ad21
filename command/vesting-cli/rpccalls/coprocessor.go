// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/vestingd/fhe"
	"github.com/bitmark-inc/vestingd/identity"
	"github.com/bitmark-inc/vestingd/rpc/coprocessor"
)

// Encrypt - value as an input ciphertext bound to contract and caller
func (client *Client) Encrypt(value uint64, contract identity.Identity) (*coprocessor.EncryptReply, error) {
	submitter, err := client.Caller()
	if nil != err {
		return nil, err
	}
	return client.encrypt(value, contract, submitter)
}

func (client *Client) encrypt(value uint64, contract identity.Identity, submitter identity.Identity) (*coprocessor.EncryptReply, error) {
	arguments := coprocessor.EncryptArguments{
		Value:     value,
		Contract:  contract,
		Submitter: submitter,
	}

	var reply coprocessor.EncryptReply
	if err := client.call("Coprocessor.Encrypt", &arguments, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// Decrypt - plaintext of a handle the caller was granted
func (client *Client) Decrypt(handle fhe.Handle) (uint64, error) {
	request := coprocessor.DecryptRequest{
		Handle: handle,
	}
	a, err := client.authorize("Coprocessor.Decrypt", &request)
	if nil != err {
		return 0, err
	}

	arguments := coprocessor.DecryptArguments{
		Authorization: a,
		Request:       request,
	}
	var reply coprocessor.DecryptReply
	if err := client.call("Coprocessor.Decrypt", &arguments, &reply); err != nil {
		return 0, err
	}
	return reply.Value, nil
}
