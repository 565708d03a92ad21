// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/vestingd/counter"
	"github.com/bitmark-inc/vestingd/event"
	"github.com/bitmark-inc/vestingd/fhe"
	"github.com/bitmark-inc/vestingd/mode"
	"github.com/bitmark-inc/vestingd/registry"
	"github.com/bitmark-inc/vestingd/rpc/auth"
	rpccoprocessor "github.com/bitmark-inc/vestingd/rpc/coprocessor"
	"github.com/bitmark-inc/vestingd/rpc/node"
	rpcregistry "github.com/bitmark-inc/vestingd/rpc/registry"
	rpctoken "github.com/bitmark-inc/vestingd/rpc/token"
	rpcvesting "github.com/bitmark-inc/vestingd/rpc/vesting"
	"github.com/bitmark-inc/vestingd/token"
)

// Coprocessor - the client facing part of the FHE service
type Coprocessor interface {
	fhe.InputEncrypter
	fhe.Decrypter
}

// Services - engine components exposed over RPC
type Services struct {
	Start       time.Time
	Registry    *registry.Registry
	Directory   *token.Directory
	Coprocessor Coprocessor
	Events      *event.Log
	Replay      *auth.Replay
	Clock       func() time.Time
}

// Create - RPC server with all services registered
func Create(log *logger.L, version string, services Services, rpcCount *counter.Counter) *rpc.Server {

	clock := services.Clock
	if nil == clock {
		clock = time.Now
	}

	server := rpc.NewServer()

	_ = server.Register(node.New(log, services.Start, version, rpcCount, services.Registry, services.Events))
	_ = server.Register(rpcregistry.New(log, services.Registry, services.Replay, clock))
	_ = server.Register(rpcvesting.New(log, services.Registry, services.Replay, clock))
	_ = server.Register(rpccoprocessor.New(log, services.Coprocessor, services.Coprocessor, clock))
	_ = server.Register(rpctoken.New(log, services.Directory, services.Replay, mode.IsTesting, clock))

	return server
}
