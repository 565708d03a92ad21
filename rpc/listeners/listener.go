// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"net"
	"strings"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/vestingd/fault"
)

// Listener - a started or startable network service
type Listener interface {
	Serve() error
	Close() error
}

// convert listen strings to network type and address pairs
//
// "*:PORT" listens on tcp4 and tcp6, "[IPv6]:PORT" on tcp6 and "IPv4:PORT" on tcp4
func parseListenAddress(addrs []string, log *logger.L) ([]string, []string, error) {
	networks := make([]string, len(addrs))
	addresses := make([]string, len(addrs))
	for i, listen := range addrs {
		host, port, err := net.SplitHostPort(strings.TrimSpace(listen))
		if nil != err {
			log.Errorf("listen: %q  error: %s", listen, err)
			return nil, nil, fault.ErrInvalidIPAddress
		}

		switch {
		case "*" == host:
			host = "::"
			networks[i] = "tcp"
		case strings.Contains(host, ":"):
			networks[i] = "tcp6"
		default:
			networks[i] = "tcp4"
		}

		if ip := net.ParseIP(host); nil == ip {
			log.Errorf("listen: %q  error: invalid IP", listen)
			return nil, nil, fault.ErrInvalidIPAddress
		}
		addresses[i] = net.JoinHostPort(host, port)
	}

	return networks, addresses, nil
}
