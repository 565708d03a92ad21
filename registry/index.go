// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"bytes"
	"encoding/binary"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/vestingd/fault"
	"github.com/bitmark-inc/vestingd/identity"
	"github.com/bitmark-inc/vestingd/storage"
)

// MaximumCount - limit for a single page of an index
const MaximumCount = 100

const uint64ByteSize = 8

// from storage/setup.go:
//
// Index:
//   OwnerNextCount        BN        - next count value to use for appending to an owner list
//   OwnerList             accountId - owner ++ count
//   BeneficiaryNextCount  BN        - as above for beneficiaries
//   BeneficiaryList       accountId - beneficiary ++ count

// Item - one index entry
type Item struct {
	N       uint64            `json:"n,string"`
	Account identity.Identity `json:"account"`
}

// GetOwnerWallets - all accounts created by owner in creation order
func (r *Registry) GetOwnerWallets(owner identity.Identity) ([]identity.Identity, error) {
	return all(r.env.Store.Pool.OwnerList, owner)
}

// GetBeneficiaryWallets - all accounts paying beneficiary in creation order
func (r *Registry) GetBeneficiaryWallets(beneficiary identity.Identity) ([]identity.Identity, error) {
	return all(r.env.Store.Pool.BeneficiaryList, beneficiary)
}

// ListOwnerWallets - one page of the owner index
func (r *Registry) ListOwnerWallets(owner identity.Identity, start uint64, count int) ([]Item, error) {
	return list(r.env.Store.Pool.OwnerList, owner, start, count)
}

// ListBeneficiaryWallets - one page of the beneficiary index
func (r *Registry) ListBeneficiaryWallets(beneficiary identity.Identity, start uint64, count int) ([]Item, error) {
	return list(r.env.Store.Pool.BeneficiaryList, beneficiary, start, count)
}

// append id to the list of who, must be inside the creating transaction
func appendIndex(trx storage.Transaction, next *storage.PoolHandle, index *storage.PoolHandle, who identity.Identity, id identity.Identity) {
	n, _ := trx.GetN(next, who[:])
	trx.Put(index, indexKey(who, n), id[:])
	trx.PutN(next, who[:], n+1)
}

func all(index *storage.PoolHandle, who identity.Identity) ([]identity.Identity, error) {
	ids := make([]identity.Identity, 0, 8)
	start := uint64(0)
	for {
		items, err := list(index, who, start, MaximumCount)
		if nil != err {
			return nil, err
		}
		for _, item := range items {
			ids = append(ids, item.Account)
		}
		if len(items) < MaximumCount {
			return ids, nil
		}
		start = items[len(items)-1].N + 1
	}
}

func list(index *storage.PoolHandle, who identity.Identity, start uint64, count int) ([]Item, error) {
	if count <= 0 || count > MaximumCount {
		return nil, fault.ErrInvalidCount
	}

	// who ++ count → accountId
	items, err := index.NewFetchCursor().Seek(indexKey(who, start)).Fetch(count)
	if nil != err {
		return nil, err
	}

	records := make([]Item, 0, len(items))

loop:
	for _, item := range items {
		n := len(item.Key)
		split := n - uint64ByteSize
		if split <= 0 {
			logger.Panicf("split cannot be <= 0: %d", split)
		}
		if !bytes.Equal(who[:], item.Key[:split]) {
			break loop
		}

		id, err := identity.FromBytes(item.Value)
		if nil != err {
			return nil, err
		}
		records = append(records, Item{
			N:       binary.BigEndian.Uint64(item.Key[split:]),
			Account: id,
		})
	}

	return records, nil
}

func indexKey(who identity.Identity, n uint64) []byte {
	key := make([]byte, identity.Length+uint64ByteSize)
	copy(key, who[:])
	binary.BigEndian.PutUint64(key[identity.Length:], n)
	return key
}
