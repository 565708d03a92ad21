// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vesting

import (
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/vestingd/event"
	"github.com/bitmark-inc/vestingd/fhe"
	"github.com/bitmark-inc/vestingd/storage"
	"github.com/bitmark-inc/vestingd/token"
)

// Environment - collaborators shared by all vesting accounts
type Environment struct {
	Log    *logger.L
	Store  *storage.Store
	FHE    fhe.Coprocessor
	Tokens token.Resolver
	Events *event.Log
	Clock  func() uint64
}

// SystemClock - current unix time in seconds
func SystemClock() uint64 {
	return uint64(time.Now().Unix())
}
