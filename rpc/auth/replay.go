// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package auth

import (
	"context"
	"encoding/binary"
	"time"

	"github.com/bitmark-inc/vestingd/fault"
	"github.com/bitmark-inc/vestingd/identity"
	"github.com/bitmark-inc/vestingd/storage"
)

const (
	timestampLength = 8
	pruneBatch      = 100
)

// Replay - signed requests already acted on
//
// an accepted request is recorded as
//
//   timestamp ++ Keccak-256(caller ++ message)
//
// in the same transaction as its effects, so a request that failed may
// be sent again and one that succeeded may not
type Replay struct {
	store *storage.Store
	pool  *storage.PoolHandle
}

// NewReplay - request records kept in the store
func NewReplay(store *storage.Store) *Replay {
	return &Replay{
		store: store,
		pool:  store.Pool.Requests,
	}
}

// Once - verify the authorization then run fn in one transaction with
// the request record
func (r *Replay) Once(ctx context.Context, a Authorization, method string, request interface{}, now time.Time, fn func(context.Context) error) error {
	if err := a.Verify(method, request, now); nil != err {
		return err
	}

	key, err := a.requestKey(method, request)
	if nil != err {
		return err
	}

	return r.store.Run(ctx, func(ctx context.Context, trx storage.Transaction) error {
		if trx.Has(r.pool, key) {
			return fault.ErrReplayedRequest
		}
		trx.Put(r.pool, key, []byte{})
		return fn(ctx)
	})
}

// Prune - forget requests too old to pass Verify, returns the number removed
func (r *Replay) Prune(ctx context.Context, now time.Time) (int, error) {
	cutoff := uint64(now.Add(-MaximumSkew).Unix())

	expired := make([][]byte, 0, pruneBatch)
	cursor := r.pool.NewFetchCursor()
scan:
	for {
		elements, err := cursor.Fetch(pruneBatch)
		if nil != err {
			return 0, err
		}
		for _, e := range elements {
			if binary.BigEndian.Uint64(e.Key[:timestampLength]) >= cutoff {
				break scan
			}
			expired = append(expired, e.Key)
		}
		if len(elements) < pruneBatch {
			break scan
		}
	}

	if 0 == len(expired) {
		return 0, nil
	}

	err := r.store.Run(ctx, func(_ context.Context, trx storage.Transaction) error {
		for _, key := range expired {
			trx.Delete(r.pool, key)
		}
		return nil
	})
	if nil != err {
		return 0, err
	}
	return len(expired), nil
}

func (a Authorization) requestKey(method string, request interface{}) ([]byte, error) {
	message, err := Message(method, a.Timestamp, request)
	if nil != err {
		return nil, err
	}

	key := make([]byte, timestampLength, timestampLength+32)
	binary.BigEndian.PutUint64(key, uint64(a.Timestamp))
	return append(key, identity.Keccak256(a.Caller[:], message)...), nil
}
