// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/vestingd/background"
)

type ticker struct {
	ticks    int64
	finished int32
}

func (p *ticker) Run(args interface{}, shutdown <-chan struct{}) {
	interval := args.(time.Duration)

	tick := time.NewTicker(interval)
	defer tick.Stop()

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-tick.C:
			atomic.AddInt64(&p.ticks, 1)
		}
	}
	atomic.StoreInt32(&p.finished, 1)
}

func TestStartStop(t *testing.T) {
	p1 := &ticker{}
	p2 := &ticker{}

	b := background.Start(background.Processes{p1, p2}, time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	b.Stop()

	assert.Equal(t, int32(1), atomic.LoadInt32(&p1.finished), "first process still running")
	assert.Equal(t, int32(1), atomic.LoadInt32(&p2.finished), "second process still running")
	assert.True(t, atomic.LoadInt64(&p1.ticks) > 0, "first process did not run")
	assert.True(t, atomic.LoadInt64(&p2.ticks) > 0, "second process did not run")

	// second stop is harmless
	b.Stop()
}

func TestStopEmpty(t *testing.T) {
	b := background.Start(nil, nil)
	b.Stop()
}
