// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"math"

	"github.com/bitmark-inc/vestingd/fault"
)

// Schedule - linear vesting between Start and Start + Duration
//
// times are unix seconds and public
type Schedule struct {
	Start    uint64 `json:"start"`
	Duration uint64 `json:"duration"`
}

// Validate - duration must be positive and the end representable
func (s Schedule) Validate() error {
	if 0 == s.Duration || s.Duration > math.MaxUint64-s.Start {
		return fault.ErrInvalidDuration
	}
	return nil
}

// End - first second at which everything is vested
func (s Schedule) End() uint64 {
	return s.Start + s.Duration
}

// Elapsed - seconds since start clamped to [0, Duration]
func (s Schedule) Elapsed(now uint64) uint64 {
	switch {
	case now <= s.Start:
		return 0
	case now >= s.End():
		return s.Duration
	default:
		return now - s.Start
	}
}
