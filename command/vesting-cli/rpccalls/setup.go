// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpccalls - client side of the vestingd JSON RPC services
package rpccalls

import (
	"crypto/tls"
	"io"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"time"

	"github.com/btcsuite/btcd/btcec/v2"

	"github.com/bitmark-inc/vestingd/fault"
	"github.com/bitmark-inc/vestingd/identity"
	"github.com/bitmark-inc/vestingd/rpc/auth"
)

// Client - to hold RPC connections streams
type Client struct {
	conn    net.Conn
	client  *rpc.Client
	key     *btcec.PrivateKey // nil for read only commands
	clock   func() time.Time
	verbose bool
	handle  io.Writer // if verbose is set output items here
}

// NewClient - create a RPC connection to a vestingd
func NewClient(connect string, key *btcec.PrivateKey, verbose bool, handle io.Writer) (*Client, error) {

	tlsConfig := &tls.Config{
		InsecureSkipVerify: true,
	}

	conn, err := tls.Dial("tcp", connect, tlsConfig)
	if err != nil {
		return nil, err
	}

	return newClient(conn, key, verbose, handle), nil
}

func newClient(conn net.Conn, key *btcec.PrivateKey, verbose bool, handle io.Writer) *Client {
	return &Client{
		conn:    conn,
		client:  jsonrpc.NewClient(conn),
		key:     key,
		clock:   time.Now,
		verbose: verbose,
		handle:  handle,
	}
}

// Close - shutdown the vestingd connection
func (client *Client) Close() {
	client.client.Close()
	client.conn.Close()
}

// Caller - identity used to sign requests
func (client *Client) Caller() (identity.Identity, error) {
	if nil == client.key {
		return identity.Identity{}, fault.ErrNotPrivateKey
	}
	return identity.FromPublicKey(client.key.PubKey()), nil
}

// sign a request for method with the client key
func (client *Client) authorize(method string, request interface{}) (auth.Authorization, error) {
	if nil == client.key {
		return auth.Authorization{}, fault.ErrNotPrivateKey
	}
	return auth.Sign(client.key, method, request, client.clock())
}

// call one method, showing the exchange when verbose
func (client *Client) call(method string, arguments interface{}, reply interface{}) error {
	client.traceRequest(method, arguments)

	start := time.Now()
	err := client.client.Call(method, arguments, reply)
	client.traceResult(method, reply, err, time.Since(start))
	return err
}
