// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"time"

	"github.com/bitmark-inc/logger"
)

const (
	pruneDelay = 2 * time.Minute
)

// forgets signed requests once they are too old to be accepted
type expiring interface {
	Prune(ctx context.Context, now time.Time) (int, error)
}

type pruner struct {
	log    *logger.L
	delay  time.Duration
	replay expiring
	clock  func() time.Time
}

func (p *pruner) Run(_ interface{}, shutdown <-chan struct{}) {

	tick := time.NewTicker(p.delay)
	defer tick.Stop()

	for {
		select {
		case <-shutdown:
			return
		case <-tick.C:
			n, err := p.replay.Prune(context.Background(), p.clock())
			if nil != err {
				p.log.Errorf("prune error: %s", err)
				continue
			}
			if n > 0 {
				p.log.Debugf("pruned: %d requests", n)
			}
		}
	}
}
