// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/vestingd/fault"
	"github.com/bitmark-inc/vestingd/fixtures"
	"github.com/bitmark-inc/vestingd/storage"
)

func TestRunCommit(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	store := fixtures.OpenStore(t)
	pool := store.Pool.TestData

	err := store.Run(context.Background(), func(_ context.Context, trx storage.Transaction) error {
		trx.Put(pool, []byte("key-1"), []byte("value-1"))
		trx.PutN(pool, []byte("count"), 42)

		assert.Nil(t, pool.Get([]byte("key-1")), "uncommitted data visible outside transaction")
		assert.Equal(t, []byte("value-1"), trx.Get(pool, []byte("key-1")), "transaction cannot read own write")
		assert.True(t, trx.Has(pool, []byte("key-1")), "transaction Has missed own write")
		return nil
	})
	assert.Nil(t, err, "run error")

	assert.Equal(t, []byte("value-1"), pool.Get([]byte("key-1")), "wrong committed value")
	n, found := pool.GetN([]byte("count"))
	assert.True(t, found, "count not found")
	assert.Equal(t, uint64(42), n, "wrong count")
}

func TestRunAbort(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	store := fixtures.OpenStore(t)
	pool := store.Pool.TestData
	pool.Put([]byte("keep"), []byte("original"))

	expected := errors.New("abort")
	err := store.Run(context.Background(), func(_ context.Context, trx storage.Transaction) error {
		trx.Put(pool, []byte("keep"), []byte("changed"))
		trx.Put(pool, []byte("new"), []byte("value"))
		return expected
	})
	assert.Equal(t, expected, err, "wrong error")

	assert.Equal(t, []byte("original"), pool.Get([]byte("keep")), "aborted write committed")
	assert.False(t, pool.Has([]byte("new")), "aborted write committed")

	// the overlay must also be cleared
	_ = store.Run(context.Background(), func(_ context.Context, trx storage.Transaction) error {
		assert.Equal(t, []byte("original"), trx.Get(pool, []byte("keep")), "stale overlay")
		assert.False(t, trx.Has(pool, []byte("new")), "stale overlay")
		return nil
	})
}

func TestRunPanicAborts(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	store := fixtures.OpenStore(t)
	pool := store.Pool.TestData

	assert.Panics(t, func() {
		_ = store.Run(context.Background(), func(_ context.Context, trx storage.Transaction) error {
			trx.Put(pool, []byte("key"), []byte("value"))
			panic("failed")
		})
	}, "panic not propagated")

	assert.False(t, pool.Has([]byte("key")), "write committed after panic")

	// store must still be usable
	err := store.Run(context.Background(), func(_ context.Context, trx storage.Transaction) error {
		trx.Put(pool, []byte("key"), []byte("value"))
		return nil
	})
	assert.Nil(t, err, "run after panic")
	assert.True(t, pool.Has([]byte("key")), "write not committed")
}

func TestRunNested(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	store := fixtures.OpenStore(t)
	pool := store.Pool.TestData

	err := store.Run(context.Background(), func(ctx context.Context, outer storage.Transaction) error {
		outer.Put(pool, []byte("outer"), []byte("1"))

		return store.Run(ctx, func(ctx context.Context, inner storage.Transaction) error {
			assert.Equal(t, []byte("1"), inner.Get(pool, []byte("outer")), "inner cannot see outer write")
			inner.Put(pool, []byte("inner"), []byte("2"))
			assert.Equal(t, inner, store.Reader(ctx), "reader is not the joined transaction")
			return nil
		})
	})
	assert.Nil(t, err, "nested run error")
	assert.True(t, pool.Has([]byte("outer")), "outer write missing")
	assert.True(t, pool.Has([]byte("inner")), "inner write missing")

	err = store.Run(context.Background(), func(ctx context.Context, outer storage.Transaction) error {
		outer.Put(pool, []byte("outer-2"), []byte("1"))
		return store.Run(ctx, func(_ context.Context, inner storage.Transaction) error {
			inner.Put(pool, []byte("inner-2"), []byte("2"))
			return fault.ErrTransferFailed
		})
	})
	assert.Equal(t, fault.ErrTransferFailed, err, "wrong error")
	assert.False(t, pool.Has([]byte("outer-2")), "inner failure must abort outer writes")
	assert.False(t, pool.Has([]byte("inner-2")), "inner failure must abort inner writes")
}

func TestDelete(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	store := fixtures.OpenStore(t)
	pool := store.Pool.TestData
	pool.Put([]byte("gone"), []byte("soon"))

	err := store.Run(context.Background(), func(_ context.Context, trx storage.Transaction) error {
		trx.Delete(pool, []byte("gone"))
		assert.False(t, trx.Has(pool, []byte("gone")), "deleted key still present")
		assert.Nil(t, trx.Get(pool, []byte("gone")), "deleted key still readable")
		return nil
	})
	assert.Nil(t, err, "run error")
	assert.False(t, pool.Has([]byte("gone")), "delete not committed")
}

func TestReadOnly(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	name := filepath.Join(t.TempDir(), "test.leveldb")

	_, err := storage.Open(name, storage.ReadOnly)
	assert.NotNil(t, err, "read only open of missing database")

	store, err := storage.Open(name, storage.ReadWrite)
	assert.Nil(t, err, "create database")
	store.Pool.TestData.Put([]byte("key"), []byte("value"))
	store.Close()

	store, err = storage.Open(name, storage.ReadOnly)
	assert.Nil(t, err, "read only open")
	defer store.Close()

	assert.True(t, store.IsReadOnly(), "not read only")
	assert.Equal(t, []byte("value"), store.Pool.TestData.Get([]byte("key")), "data lost")

	err = store.Run(context.Background(), func(context.Context, storage.Transaction) error {
		return nil
	})
	assert.Equal(t, fault.ErrReadOnly, err, "read only store accepted a transaction")
}

func TestFetchCursor(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	store := fixtures.OpenStore(t)
	pool := store.Pool.TestData

	keys := []string{"a", "b", "b\x00", "c", "d"}
	for _, k := range keys {
		pool.Put([]byte(k), []byte("v-"+k))
	}
	// adjacent pools must not leak into the range
	store.Pool.Events.Put([]byte("x"), []byte("event"))

	cursor := pool.NewFetchCursor()
	fetched := []string{}
	for {
		elements, err := cursor.Fetch(2)
		assert.Nil(t, err, "fetch error")
		if 0 == len(elements) {
			break
		}
		for _, e := range elements {
			fetched = append(fetched, string(e.Key))
			assert.Equal(t, "v-"+string(e.Key), string(e.Value), "wrong value")
		}
	}
	assert.Equal(t, keys, fetched, "wrong keys")

	elements, err := pool.NewFetchCursor().Seek([]byte("c")).Fetch(10)
	assert.Nil(t, err, "seek fetch error")
	assert.Equal(t, 2, len(elements), "wrong seek count")
	assert.Equal(t, []byte("c"), elements[0].Key, "wrong seek start")

	_, err = pool.NewFetchCursor().Fetch(0)
	assert.Equal(t, fault.ErrInvalidCount, err, "zero count accepted")

	count := 0
	err = pool.NewFetchCursor().Map(func(key []byte, value []byte) error {
		count += 1
		return nil
	})
	assert.Nil(t, err, "map error")
	assert.Equal(t, len(keys), count, "wrong map count")

	err = pool.NewFetchCursor().Map(func(key []byte, value []byte) error {
		return fault.ErrInvalidCursor
	})
	assert.Equal(t, fault.ErrInvalidCursor, err, "map error not returned")
}
