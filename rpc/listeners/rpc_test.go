// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners_test

import (
	"crypto/tls"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/vestingd/counter"
	"github.com/bitmark-inc/vestingd/fault"
	"github.com/bitmark-inc/vestingd/rpc/certificate"
	"github.com/bitmark-inc/vestingd/rpc/fixtures"
	"github.com/bitmark-inc/vestingd/rpc/listeners"
)

type Add struct{}
type AddArg struct {
	A, B int
}

func (a Add) Add(arg *AddArg, reply *int) error {
	*reply = arg.A + arg.B
	return nil
}

// a loopback address with a port that was free a moment ago
func freeAddress(t *testing.T) string {
	l, err := net.Listen("tcp4", "127.0.0.1:0")
	if nil != err {
		t.Fatalf("listen error: %s", err)
	}
	address := l.Addr().String()
	_ = l.Close()
	return address
}

func serverTLS(t *testing.T) (*tls.Config, [32]byte) {
	dir := t.TempDir()
	certificateFile := filepath.Join(dir, "rpc.crt")
	keyFile := filepath.Join(dir, "rpc.key")
	err := certificate.MakeSelfSigned("test", certificateFile, keyFile, false, nil)
	if nil != err {
		t.Fatalf("make certificate error: %s", err)
	}
	config, fingerprint, err := certificate.Get(logger.New(fixtures.LogCategory), "test", certificateFile, keyFile)
	if nil != err {
		t.Fatalf("get certificate error: %s", err)
	}
	return config, fingerprint
}

func TestRPCListenerServe(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	listen := freeAddress(t)
	con := listeners.RPCConfiguration{
		MaximumConnections: 5,
		Listen:             []string{listen},
	}

	s := rpc.NewServer()
	err := s.Register(Add{})
	assert.Nil(t, err, "register error")

	config, fingerprint := serverTLS(t)
	count := &counter.Counter{}

	l, err := listeners.NewRPC(&con, logger.New(fixtures.LogCategory), count, s, config, fingerprint)
	assert.Nil(t, err, "wrong NewRPC")

	err = l.Serve()
	assert.Nil(t, err, "wrong Serve")
	defer l.Close()

	c, err := tls.Dial("tcp", listen, &tls.Config{InsecureSkipVerify: true})
	if nil != err {
		t.Fatalf("dial error: %s", err)
	}

	client := jsonrpc.NewClient(c)
	defer client.Close()

	arg := AddArg{
		A: 2,
		B: 5,
	}
	var reply int
	err = client.Call("Add.Add", &arg, &reply)
	assert.Nil(t, err, "wrong client Call")
	assert.Equal(t, arg.A+arg.B, reply, "wrong result")
	assert.Equal(t, uint64(1), count.Uint64(), "wrong connection count")
}

func TestRPCListenerInvalidConfiguration(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	log := logger.New(fixtures.LogCategory)
	s := rpc.NewServer()

	_, err := listeners.NewRPC(&listeners.RPCConfiguration{
		MaximumConnections: 0,
		Listen:             []string{"127.0.0.1:2130"},
	}, log, &counter.Counter{}, s, &tls.Config{}, [32]byte{})
	assert.Equal(t, fault.ErrMissingParameters, err, "zero connections")

	_, err = listeners.NewRPC(&listeners.RPCConfiguration{
		MaximumConnections: 1,
	}, log, &counter.Counter{}, s, &tls.Config{}, [32]byte{})
	assert.Equal(t, fault.ErrMissingParameters, err, "empty listen")

	_, err = listeners.NewRPC(&listeners.RPCConfiguration{
		MaximumConnections: 1,
		Listen:             []string{"localhost:2130"},
	}, log, &counter.Counter{}, s, &tls.Config{}, [32]byte{})
	assert.Equal(t, fault.ErrInvalidIPAddress, err, "host name")

	_, err = listeners.NewRPC(&listeners.RPCConfiguration{
		MaximumConnections: 1,
		Listen:             []string{"*:2130", "[::1]:2131", "127.0.0.1:2132"},
	}, log, &counter.Counter{}, s, &tls.Config{}, [32]byte{})
	assert.Nil(t, err, "valid listen")
}
