// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/vestingd/chain"
)

func TestValid(t *testing.T) {
	for _, name := range []string{chain.Live, chain.Testing, chain.Local} {
		assert.True(t, chain.Valid(name), "chain: %s", name)
	}
	assert.False(t, chain.Valid("bitmark"), "unknown chain")
	assert.False(t, chain.Valid(""), "empty chain")
	assert.False(t, chain.Valid("dev"), "alias is not a chain name")
	assert.False(t, chain.Valid("LIVE"), "upper case chain name")

	assert.False(t, chain.IsDevelopment(chain.Live), "live is development")
	assert.True(t, chain.IsDevelopment(chain.Local), "local is not development")
	assert.True(t, chain.IsDevelopment(chain.Testing), "testing is not development")
	assert.False(t, chain.IsDevelopment("bitmark"), "unknown chain is development")
}

func TestCanonical(t *testing.T) {
	testData := map[string]string{
		"live":       chain.Live,
		"Production": chain.Live,
		" test ":     chain.Testing,
		"dev":        chain.Local,
		"local":      chain.Local,
		"bitmark":    "",
		"":           "",
	}
	for alias, expected := range testData {
		assert.Equal(t, expected, chain.Canonical(alias), "alias: %q", alias)
	}
}
