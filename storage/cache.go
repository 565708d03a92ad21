// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"time"

	cache "github.com/patrickmn/go-cache"
)

// entries never expire, they are flushed when a transaction ends
const pendingSweep = 2 * time.Minute

// pending - writes staged in the open transaction, keyed by full
// prefixed key, so reads inside the transaction see them
type pending struct {
	entries *cache.Cache
}

// a staged write, nil value for a delete
type pendingEntry struct {
	deleted bool
	value   []byte
}

func newPending() *pending {
	return &pending{
		entries: cache.New(cache.NoExpiration, pendingSweep),
	}
}

// lookup - found is false when the key was not staged; a staged
// delete is found with a nil value
func (p *pending) lookup(key []byte) (value []byte, found bool) {
	obj, found := p.entries.Get(string(key))
	if !found {
		return nil, false
	}
	entry := obj.(pendingEntry)
	if entry.deleted {
		return nil, true
	}
	return entry.value, true
}

func (p *pending) put(key []byte, value []byte) {
	p.entries.Set(string(key), pendingEntry{value: value}, cache.NoExpiration)
}

func (p *pending) remove(key []byte) {
	p.entries.Set(string(key), pendingEntry{deleted: true}, cache.NoExpiration)
}

func (p *pending) reset() {
	p.entries.Flush()
}

// number of staged keys
func (p *pending) size() int {
	return p.entries.ItemCount()
}
