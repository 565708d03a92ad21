// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared test setup
package fixtures

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/vestingd/identity"
	"github.com/bitmark-inc/vestingd/storage"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

// well known test parties
var (
	OwnerKey       = mustKey("1111111111111111111111111111111111111111111111111111111111111111")
	BeneficiaryKey = mustKey("2222222222222222222222222222222222222222222222222222222222222222")
	DepositorKey   = mustKey("3333333333333333333333333333333333333333333333333333333333333333")
	StrangerKey    = mustKey("4444444444444444444444444444444444444444444444444444444444444444")

	Owner       = identity.FromPublicKey(OwnerKey.PubKey())
	Beneficiary = identity.FromPublicKey(BeneficiaryKey.PubKey())
	Depositor   = identity.FromPublicKey(DepositorKey.PubKey())
	Stranger    = identity.FromPublicKey(StrangerKey.PubKey())
)

// stores still open when the logger is torn down
var open struct {
	sync.Mutex
	stores []*storage.Store
}

func mustKey(s string) *btcec.PrivateKey {
	key, err := identity.PrivateKeyFromHex(s)
	if nil != err {
		panic(err)
	}
	return key
}

// SetupTestLogger - log to a local directory at critical level
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - close any stores left open, then stop logging
// and remove its files
func TeardownTestLogger() {
	open.Lock()
	for _, store := range open.stores {
		store.Close()
	}
	open.stores = nil
	open.Unlock()

	logger.Finalise()
	removeFiles()
}

// OpenStore - a fresh database in a temporary directory, closed by
// TeardownTestLogger or at the end of the test, whichever comes first
func OpenStore(t *testing.T) *storage.Store {
	store, err := storage.Open(filepath.Join(t.TempDir(), "testing.leveldb"), storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage open error: %s", err)
	}

	open.Lock()
	open.stores = append(open.stores, store)
	open.Unlock()

	t.Cleanup(store.Close)
	return store
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}
