// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package auth - signed caller identity for RPC requests
//
// a request that acts on behalf of a party carries an Authorization:
// the caller, a unix timestamp and a recoverable signature over
//
//   "vestingd:" method ":" timestamp ":" JSON(request)
//
// the server re-encodes the decoded request, so both sides must use the
// same request type.
package auth

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/btcsuite/btcd/btcec/v2"

	"github.com/bitmark-inc/vestingd/fault"
	"github.com/bitmark-inc/vestingd/identity"
)

// MaximumSkew - accepted clock difference between client and server
const MaximumSkew = 300 * time.Second

// Authorization - proof that the caller made the request
type Authorization struct {
	Caller    identity.Identity  `json:"caller"`
	Timestamp int64              `json:"timestamp,string"`
	Signature identity.Signature `json:"signature"`
}

// Sign - authorise a request as the holder of privateKey
func Sign(privateKey *btcec.PrivateKey, method string, request interface{}, now time.Time) (Authorization, error) {
	timestamp := now.Unix()
	message, err := Message(method, timestamp, request)
	if nil != err {
		return Authorization{}, err
	}
	signature, err := identity.Sign(privateKey, message)
	if nil != err {
		return Authorization{}, err
	}
	return Authorization{
		Caller:    identity.FromPublicKey(privateKey.PubKey()),
		Timestamp: timestamp,
		Signature: signature,
	}, nil
}

// Verify - check the signature covers this method and request and was
// made by the declared caller recently
func (a Authorization) Verify(method string, request interface{}, now time.Time) error {
	if a.Caller.IsZero() || 0 == len(a.Signature) {
		return fault.ErrMissingParameters
	}

	skew := now.Sub(time.Unix(a.Timestamp, 0))
	if skew > MaximumSkew || skew < -MaximumSkew {
		return fault.ErrInvalidTimestamp
	}

	message, err := Message(method, a.Timestamp, request)
	if nil != err {
		return err
	}
	signer, err := identity.Recover(message, a.Signature)
	if nil != err {
		return err
	}
	if signer != a.Caller {
		return fault.ErrRequestSignerMismatch
	}
	return nil
}

// Message - the bytes covered by a signature
func Message(method string, timestamp int64, request interface{}) ([]byte, error) {
	body, err := json.Marshal(request)
	if nil != err {
		return nil, err
	}
	message := make([]byte, 0, len(method)+len(body)+32)
	message = append(message, "vestingd:"...)
	message = append(message, method...)
	message = append(message, ':')
	message = strconv.AppendInt(message, timestamp, 10)
	message = append(message, ':')
	return append(message, body...), nil
}
