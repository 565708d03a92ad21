// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token

import (
	"context"
	"strings"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/vestingd/fault"
	"github.com/bitmark-inc/vestingd/fhe"
	"github.com/bitmark-inc/vestingd/identity"
	"github.com/bitmark-inc/vestingd/storage"
)

const maximumNameLength = 64

// Directory - the registered confidential tokens
type Directory struct {
	log   *logger.L
	store *storage.Store
	fhe   fhe.Coprocessor
	clock func() uint64
}

// Info - a registered token
type Info struct {
	Token identity.Identity `json:"token"`
	Name  string            `json:"name"`
}

// NewDirectory - tokens stored in store, computed by coprocessor
//
// clock gives the current unix time for operator expiry
func NewDirectory(store *storage.Store, coprocessor fhe.Coprocessor, clock func() uint64) *Directory {
	return &Directory{
		log:   logger.New("token"),
		store: store,
		fhe:   coprocessor,
		clock: clock,
	}
}

// Register - add a token, registering an existing name is a no-op
func (d *Directory) Register(ctx context.Context, name string) (*Confidential, error) {
	name = strings.TrimSpace(name)
	if "" == name || len(name) > maximumNameLength {
		return nil, fault.ErrInvalidTokenName
	}

	id := identity.FromName(name)
	err := d.store.Run(ctx, func(_ context.Context, trx storage.Transaction) error {
		if !trx.Has(d.store.Pool.Tokens, id[:]) {
			trx.Put(d.store.Pool.Tokens, id[:], []byte(name))
			d.log.Infof("register: %q as: %s", name, id)
		}
		return nil
	})
	if nil != err {
		return nil, err
	}
	return d.confidential(id, name), nil
}

// Token - find a registered token
func (d *Directory) Token(ctx context.Context, id identity.Identity) (Token, error) {
	return d.Confidential(ctx, id)
}

// Confidential - find a registered token with its administrative operations
func (d *Directory) Confidential(ctx context.Context, id identity.Identity) (*Confidential, error) {
	name := d.store.Reader(ctx).Get(d.store.Pool.Tokens, id[:])
	if nil == name {
		return nil, fault.ErrTokenNotFound
	}
	return d.confidential(id, string(name)), nil
}

// List - all registered tokens
func (d *Directory) List() ([]Info, error) {
	tokens := []Info{}
	err := d.store.Pool.Tokens.NewFetchCursor().Map(func(key []byte, value []byte) error {
		id, err := identity.FromBytes(key)
		if nil != err {
			return err
		}
		tokens = append(tokens, Info{
			Token: id,
			Name:  string(value),
		})
		return nil
	})
	return tokens, err
}

func (d *Directory) confidential(id identity.Identity, name string) *Confidential {
	return &Confidential{
		log:   d.log,
		id:    id,
		name:  name,
		store: d.store,
		fhe:   d.fhe,
		clock: d.clock,
	}
}
