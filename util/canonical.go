// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"net"
	"strconv"
	"strings"

	"github.com/bitmark-inc/vestingd/fault"
)

// CanonicalHostPort - normalise a server address
//
// IP addresses are reformatted, names are lower cased and the port must
// be in 1..65535
func CanonicalHostPort(hostPort string) (string, error) {

	host, port, err := net.SplitHostPort(strings.TrimSpace(hostPort))
	if nil != err {
		return "", fault.ErrInvalidIPAddress
	}

	host = strings.TrimSpace(host)
	if "" == host || strings.ContainsAny(host, " *[]") {
		return "", fault.ErrInvalidIPAddress
	}

	numericPort, err := strconv.Atoi(strings.TrimSpace(port))
	if nil != err || numericPort < 1 || numericPort > 65535 {
		return "", fault.ErrInvalidPortNumber
	}

	if IP := net.ParseIP(host); nil != IP {
		host = IP.String()
	} else if strings.Contains(host, ":") {
		return "", fault.ErrInvalidIPAddress
	} else {
		host = strings.ToLower(host)
	}
	return net.JoinHostPort(host, strconv.Itoa(numericPort)), nil
}
