// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chain - the deployments a node or client can select
package chain

import (
	"strings"
)

// chain names
const (
	Live    = "live"
	Testing = "testing"
	Local   = "local"
)

// accepted spellings on the command line
var aliases = map[string]string{
	"live":        Live,
	"production":  Live,
	"testing":     Testing,
	"test":        Testing,
	"local":       Local,
	"development": Local,
	"dev":         Local,
}

// Canonical - chain name for an alias, blank if unknown
func Canonical(name string) string {
	return aliases[strings.ToLower(strings.TrimSpace(name))]
}

// Valid - true only for an exact chain name
func Valid(name string) bool {
	return "" != name && Canonical(name) == name
}

// IsDevelopment - chains where plaintext helpers are enabled
func IsDevelopment(name string) bool {
	return Live != name && Valid(name)
}
