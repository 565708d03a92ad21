// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"crypto/tls"
	"net"
	"strings"
	"sync"

	"github.com/gofiber/fiber/v2"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/vestingd/fault"
)

const (
	httpsLogName = "https_rpc"
)

// HTTPSConfiguration - configuration file data for HTTPS setup
type HTTPSConfiguration struct {
	MaximumConnections uint64              `gluamapper:"maximum_connections" json:"maximum_connections"`
	Listen             []string            `gluamapper:"listen" json:"listen"`
	Certificate        string              `gluamapper:"certificate" json:"certificate"`
	PrivateKey         string              `gluamapper:"private_key" json:"private_key"`
	Allow              map[string][]string `gluamapper:"allow" json:"allow"`
}

// Routes - builds the application once access lists are known
type Routes func(allow map[string][]*net.IPNet) *fiber.App

type httpsListener struct {
	sync.Mutex
	log       *logger.L
	app       *fiber.App
	tlsConfig *tls.Config
	networks  []string
	addresses []string
	listeners []net.Listener
}

// NewHTTPS - fiber application over TLS
//
// returns nil when no listen address is configured
func NewHTTPS(
	configuration *HTTPSConfiguration,
	log *logger.L,
	tlsConfig *tls.Config,
	routes Routes,
) (Listener, error) {
	if 0 == len(configuration.Listen) {
		log.Infof("disable: %s", httpsLogName)
		return nil, nil
	}

	if configuration.MaximumConnections < minConnectionCount {
		log.Errorf("invalid %s maximum connection limit: %d", httpsLogName, configuration.MaximumConnections)
		return nil, fault.ErrMissingParameters
	}

	allow, err := parseAllow(configuration.Allow)
	if nil != err {
		log.Errorf("invalid %s allow: %s", httpsLogName, err)
		return nil, err
	}

	networks, addresses, err := parseListenAddress(configuration.Listen, log)
	if nil != err {
		return nil, err
	}

	config := tlsConfig.Clone()
	config.NextProtos = []string{"http/1.1"}

	return &httpsListener{
		log:       log,
		app:       routes(allow),
		tlsConfig: config,
		networks:  networks,
		addresses: addresses,
	}, nil
}

// Serve - start the application on all addresses
func (h *httpsListener) Serve() error {
	h.Lock()
	defer h.Unlock()

	for i, address := range h.addresses {
		h.log.Infof("starting server: %s on: %q", httpsLogName, address)
		ln, err := net.Listen(h.networks[i], address)
		if nil != err {
			h.log.Errorf("%s listen error: %s", httpsLogName, err)
			return err
		}
		l := tls.NewListener(ln, h.tlsConfig)
		h.listeners = append(h.listeners, l)

		go func() {
			if err := h.app.Listener(l); nil != err {
				h.log.Infof("%s terminated: %s", httpsLogName, err)
			}
		}()
	}

	return nil
}

// Close - stop the application
func (h *httpsListener) Close() error {
	h.Lock()
	defer h.Unlock()

	h.listeners = nil
	return h.app.Shutdown()
}

// create access control lists from CIDR strings
func parseAllow(configuration map[string][]string) (map[string][]*net.IPNet, error) {
	allow := make(map[string][]*net.IPNet)
	for path, addresses := range configuration {
		set := make([]*net.IPNet, len(addresses))
		for i, ip := range addresses {
			_, cidr, err := net.ParseCIDR(strings.TrimSpace(ip))
			if nil != err {
				return nil, err
			}
			set[i] = cidr
		}
		allow[path] = set
	}
	return allow, nil
}
