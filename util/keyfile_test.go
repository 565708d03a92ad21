// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/vestingd/fault"
	"github.com/bitmark-inc/vestingd/util"
)

func TestTaggedKeys(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "test.keys")

	err := util.WriteTaggedKeys(filename, []string{"ONE", "TWO"}, [][]byte{{1, 2}, {3, 4, 5}})
	assert.Nil(t, err, "write")

	err = util.WriteTaggedKeys(filename, []string{"ONE"}, [][]byte{{1}})
	assert.Equal(t, fault.ErrKeyFileAlreadyExists, err, "overwrote existing file")

	keys, err := util.ReadTaggedKeys(filename, map[string]int{"ONE": 2, "TWO": 3})
	assert.Nil(t, err, "read")
	assert.Equal(t, []byte{1, 2}, keys["ONE"], "wrong ONE")
	assert.Equal(t, []byte{3, 4, 5}, keys["TWO"], "wrong TWO")

	_, err = util.ReadTaggedKeys(filename, map[string]int{"ONE": 2, "TWO": 4})
	assert.Equal(t, fault.ErrInvalidKeyFile, err, "wrong length accepted")

	_, err = util.ReadTaggedKeys(filename, map[string]int{"ONE": 2, "TWO": 3, "THREE": 1})
	assert.Equal(t, fault.ErrInvalidKeyFile, err, "missing tag accepted")

	bad := filepath.Join(t.TempDir(), "bad.keys")
	_ = os.WriteFile(bad, []byte("ONE 0102\n"), 0600)
	_, err = util.ReadTaggedKeys(bad, map[string]int{"ONE": 2})
	assert.Equal(t, fault.ErrInvalidKeyFile, err, "untagged line accepted")
}
