// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package counter - connection counting shared by the listeners
package counter

import (
	"sync/atomic"
)

// Counter - concurrent count of open connections
type Counter struct {
	n atomic.Uint64
}

// Increment - add 1, returns new value
func (c *Counter) Increment() uint64 {
	return c.n.Add(1)
}

// Decrement - subtract 1, returns new value
func (c *Counter) Decrement() uint64 {
	return c.n.Add(^uint64(0))
}

// Uint64 - current value
func (c *Counter) Uint64() uint64 {
	return c.n.Load()
}

// Acquire - take a slot if fewer than limit are in use
//
// a successful Acquire must be paired with a Decrement
func (c *Counter) Acquire(limit uint64) bool {
	if c.Increment() <= limit {
		return true
	}
	c.Decrement()
	return false
}
