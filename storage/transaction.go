// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"context"

	"github.com/bitmark-inc/vestingd/fault"
)

// Reader - read access to pools
type Reader interface {
	Get(*PoolHandle, []byte) []byte
	GetN(*PoolHandle, []byte) (uint64, bool)
	Has(*PoolHandle, []byte) bool
}

// Transaction - reads see the pending writes, all writes are
// committed together or not at all
type Transaction interface {
	Reader
	Put(*PoolHandle, []byte, []byte)
	PutN(*PoolHandle, []byte, uint64)
	Delete(*PoolHandle, []byte)
}

// key for the active transaction in a context
type transactionKey struct{}

type transaction struct {
	store *Store
}

// Run - execute fn as one atomic unit
//
// a Run nested inside another Run on the same store joins the outer
// transaction and only the outermost call commits; any error or panic
// discards every write made since the outermost call began
func (s *Store) Run(ctx context.Context, fn func(context.Context, Transaction) error) error {

	if t, ok := ctx.Value(transactionKey{}).(*transaction); ok && t.store == s {
		return fn(ctx, t)
	}

	if s.readOnly {
		return fault.ErrReadOnly
	}

	s.writer.Lock()
	defer s.writer.Unlock()

	t := &transaction{
		store: s,
	}

	committed := false
	defer func() {
		if !committed {
			s.abort()
		}
	}()

	err := fn(context.WithValue(ctx, transactionKey{}, t), t)
	if nil != err {
		return err
	}

	err = s.commit()
	if nil != err {
		return err
	}
	committed = true
	return nil
}

// Reader - the active transaction of ctx, otherwise committed data
func (s *Store) Reader(ctx context.Context) Reader {
	if t, ok := ctx.Value(transactionKey{}).(*transaction); ok && t.store == s {
		return t
	}
	return committedReader{}
}

func (s *Store) commit() error {
	s.RLock()
	defer s.RUnlock()

	if nil == s.db {
		return fault.ErrNotInitialised
	}

	defer s.pending.reset()
	defer s.batch.Reset()

	if 0 == s.batch.Len() {
		return nil
	}
	s.log.Debugf("commit: %d operations  %d keys", s.batch.Len(), s.pending.size())
	return s.db.Write(s.batch, nil)
}

func (s *Store) abort() {
	s.batch.Reset()
	s.pending.reset()
}

// Put - stage a key/value pair
func (t *transaction) Put(p *PoolHandle, key []byte, value []byte) {
	if nil == value {
		value = []byte{}
	}
	k := p.prefixKey(key)
	t.store.batch.Put(k, value)
	t.store.pending.put(k, value)
}

// PutN - stage a big endian uint64 value
func (t *transaction) PutN(p *PoolHandle, key []byte, value uint64) {
	t.Put(p, key, encodeN(value))
}

// Delete - stage removal of a key
func (t *transaction) Delete(p *PoolHandle, key []byte) {
	k := p.prefixKey(key)
	t.store.batch.Delete(k)
	t.store.pending.remove(k)
}

// Get - pending value if any, otherwise the committed value
func (t *transaction) Get(p *PoolHandle, key []byte) []byte {
	if value, found := t.store.pending.lookup(p.prefixKey(key)); found {
		return value
	}
	return p.Get(key)
}

// GetN - as Get, decoding a big endian uint64
func (t *transaction) GetN(p *PoolHandle, key []byte) (uint64, bool) {
	return decodeN(key, t.Get(p, key))
}

// Has - true if the key exists after the pending writes
func (t *transaction) Has(p *PoolHandle, key []byte) bool {
	if value, found := t.store.pending.lookup(p.prefixKey(key)); found {
		return nil != value
	}
	return p.Has(key)
}

// read only committed data
type committedReader struct{}

func (committedReader) Get(p *PoolHandle, key []byte) []byte {
	return p.Get(key)
}

func (committedReader) GetN(p *PoolHandle, key []byte) (uint64, bool) {
	return p.GetN(key)
}

func (committedReader) Has(p *PoolHandle, key []byte) bool {
	return p.Has(key)
}
