// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"runtime"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/vestingd/mode"
)

const (
	statsDelay  = 60 * time.Second
	statusDelay = 5 * time.Minute
	mega        = 1048576
)

// counts reported by the status process
type counted interface {
	Count() uint64
}

// periodic memory and goroutine usage
type memoryStats struct {
	log   *logger.L
	delay time.Duration
}

func (m *memoryStats) Run(_ interface{}, shutdown <-chan struct{}) {

	tick := time.NewTicker(m.delay)
	defer tick.Stop()

	for {
		var s runtime.MemStats
		runtime.ReadMemStats(&s)

		m.log.Infof("heap objects: %d  gc cycles: %d  goroutines: %d", s.HeapObjects, s.NumGC, runtime.NumGoroutine())
		m.log.Infof("allocated: %d M  cumulative: %d M  OS virtual: %d M", s.Alloc/mega, s.TotalAlloc/mega, s.Sys/mega)

		select {
		case <-shutdown:
			return
		case <-tick.C:
		}
	}
}

// periodic engine totals
type status struct {
	log      *logger.L
	delay    time.Duration
	accounts counted
	events   counted
}

func (s *status) Run(_ interface{}, shutdown <-chan struct{}) {

	tick := time.NewTicker(s.delay)
	defer tick.Stop()

	for {
		select {
		case <-shutdown:
			s.log.Info("stopped")
			return
		case <-tick.C:
			s.log.Infof("mode: %s  accounts: %d  events: %d", mode.String(), s.accounts.Count(), s.events.Count())
		}
	}
}
