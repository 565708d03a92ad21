// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package event - append only log of vesting events
//
// events carry identities and ciphertext handles, never amounts
package event

import (
	"context"
	"encoding/binary"
	"encoding/json"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/vestingd/fault"
	"github.com/bitmark-inc/vestingd/fhe"
	"github.com/bitmark-inc/vestingd/identity"
	"github.com/bitmark-inc/vestingd/storage"
)

// Kind - type of event
type Kind string

// event kinds
const (
	VestingWalletCreated Kind = "VestingWalletCreated"
	TokensDeposited      Kind = "TokensDeposited"
	TokensReleased       Kind = "TokensReleased"
)

const (
	// MaximumCount - limit for a single List
	MaximumCount = 100
	counterName  = "events"
)

// Event - one log entry
type Event struct {
	Sequence    uint64             `json:"sequence"`
	Kind        Kind               `json:"kind"`
	Timestamp   uint64             `json:"timestamp"`
	Account     identity.Identity  `json:"account"`
	Token       identity.Identity  `json:"token"`
	Owner       *identity.Identity `json:"owner,omitempty"`
	Beneficiary *identity.Identity `json:"beneficiary,omitempty"`
	Depositor   *identity.Identity `json:"depositor,omitempty"`
	Amount      *fhe.Handle        `json:"amount,omitempty"`
	Handle      *fhe.Handle        `json:"handle,omitempty"`
}

// Log - the event store
type Log struct {
	log   *logger.L
	store *storage.Store
}

// New - event log in a store
func New(store *storage.Store) *Log {
	return &Log{
		log:   logger.New("event"),
		store: store,
	}
}

// Append - add an event in the transaction of ctx
//
// the sequence number is assigned here
func (l *Log) Append(ctx context.Context, e Event) error {
	return l.store.Run(ctx, func(_ context.Context, trx storage.Transaction) error {
		n, _ := trx.GetN(l.store.Pool.Counters, []byte(counterName))
		e.Sequence = n

		data, err := json.Marshal(e)
		if nil != err {
			return err
		}

		trx.Put(l.store.Pool.Events, sequenceKey(n), data)
		trx.PutN(l.store.Pool.Counters, []byte(counterName), n+1)

		l.log.Debugf("event: %d  %s  account: %s", n, e.Kind, e.Account)
		return nil
	})
}

// List - committed events from start
//
// returns the events and the start value for the next call
func (l *Log) List(start uint64, count int) ([]Event, uint64, error) {
	if count <= 0 || count > MaximumCount {
		return nil, start, fault.ErrInvalidCount
	}

	items, err := l.store.Pool.Events.NewFetchCursor().Seek(sequenceKey(start)).Fetch(count)
	if nil != err {
		return nil, start, err
	}

	events := make([]Event, 0, len(items))
	next := start
	for _, item := range items {
		var e Event
		err := json.Unmarshal(item.Value, &e)
		if nil != err {
			return nil, start, err
		}
		events = append(events, e)
		next = e.Sequence + 1
	}
	return events, next, nil
}

// Count - number of committed events
func (l *Log) Count() uint64 {
	n, _ := l.store.Pool.Counters.GetN([]byte(counterName))
	return n
}

func sequenceKey(n uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, n)
	return key
}
