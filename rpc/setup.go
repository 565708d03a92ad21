// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"net"
	"sync"

	"github.com/gofiber/fiber/v2"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/vestingd/counter"
	"github.com/bitmark-inc/vestingd/fault"
	"github.com/bitmark-inc/vestingd/rpc/certificate"
	"github.com/bitmark-inc/vestingd/rpc/handler"
	"github.com/bitmark-inc/vestingd/rpc/listeners"
	"github.com/bitmark-inc/vestingd/rpc/node"
	"github.com/bitmark-inc/vestingd/rpc/server"
)

const (
	tlsName = "client_rpc"
)

// globals
type rpcData struct {
	sync.RWMutex // to allow locking

	log *logger.L // logger

	listeners []listeners.Listener

	// set once during initialise
	initialised bool
}

// global data
var globalData rpcData

// connection counters
var (
	connectionCountRPC   counter.Counter
	connectionCountHTTPS counter.Counter
)

// Initialise - start the RPC and HTTPS listeners
func Initialise(rpcConfiguration *listeners.RPCConfiguration, httpsConfiguration *listeners.HTTPSConfiguration, version string, services server.Services) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to Start if already started
	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	log := logger.New("rpc")
	globalData.log = log
	log.Info("starting…")

	tlsConfig, certificateFingerprint, err := certificate.Get(log, tlsName, rpcConfiguration.Certificate, rpcConfiguration.PrivateKey)
	if nil != err {
		return err
	}

	rpcServer := server.Create(log, version, services, &connectionCountRPC)

	rpcListener, err := listeners.NewRPC(
		rpcConfiguration,
		log,
		&connectionCountRPC,
		rpcServer,
		tlsConfig,
		certificateFingerprint,
	)
	if nil != err {
		return err
	}
	err = rpcListener.Serve()
	if nil != err {
		return err
	}
	globalData.listeners = append(globalData.listeners, rpcListener)

	httpsListener, err := initialiseHTTPS(log, httpsConfiguration, version, services)
	if nil != err {
		_ = rpcListener.Close()
		globalData.listeners = nil
		return err
	}
	if nil != httpsListener {
		globalData.listeners = append(globalData.listeners, httpsListener)
	}

	// all data initialised
	globalData.initialised = true

	return nil
}

// Finalise - stop all listeners
func Finalise() error {

	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	for _, l := range globalData.listeners {
		if err := l.Close(); nil != err {
			globalData.log.Errorf("listener close error: %s", err)
		}
	}
	globalData.listeners = nil

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

func initialiseHTTPS(log *logger.L, configuration *listeners.HTTPSConfiguration, version string, services server.Services) (listeners.Listener, error) {
	if 0 == len(configuration.Listen) {
		log.Infof("disable: https_rpc")
		return nil, nil
	}

	tlsConfig, fingerprint, err := certificate.Get(log, "https_rpc", configuration.Certificate, configuration.PrivateKey)
	if nil != err {
		return nil, err
	}
	log.Infof("https_rpc: SHA3-256 fingerprint: %x", fingerprint)

	rpcServer := server.Create(log, version, services, &connectionCountHTTPS)
	n := node.New(log, services.Start, version, &connectionCountHTTPS, services.Registry, services.Events)

	routes := func(allow map[string][]*net.IPNet) *fiber.App {
		h := handler.New(log, rpcServer, n, services.Registry, &connectionCountHTTPS, configuration.MaximumConnections, allow)
		return h.App()
	}

	l, err := listeners.NewHTTPS(configuration, log, tlsConfig, routes)
	if nil != err {
		return nil, err
	}
	if err := l.Serve(); nil != err {
		return nil, err
	}
	return l, nil
}
