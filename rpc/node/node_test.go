// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node_test

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/vestingd/chain"
	"github.com/bitmark-inc/vestingd/counter"
	"github.com/bitmark-inc/vestingd/event"
	"github.com/bitmark-inc/vestingd/fault"
	"github.com/bitmark-inc/vestingd/identity"
	"github.com/bitmark-inc/vestingd/mode"
	"github.com/bitmark-inc/vestingd/rpc/fixtures"
	"github.com/bitmark-inc/vestingd/rpc/mocks"
	"github.com/bitmark-inc/vestingd/rpc/node"
)

func TestNodeInfo(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	err := mode.Initialise(chain.Testing)
	assert.Nil(t, err, "mode initialise")
	defer mode.Finalise()

	a := mocks.NewMockAccounts(ctl)
	e := mocks.NewMockEvents(ctl)
	a.EXPECT().Count().Return(uint64(4)).Times(1)
	e.EXPECT().Count().Return(uint64(9)).Times(1)

	ctr := &counter.Counter{}
	ctr.Increment()
	ctr.Increment()

	n := node.New(logger.New(fixtures.LogCategory), time.Now().Add(-time.Minute), "1.2.3", ctr, a, e)

	var reply node.InfoReply
	err = n.Info(&node.InfoArguments{}, &reply)
	assert.Nil(t, err, "wrong Info")
	assert.Equal(t, chain.Testing, reply.Chain, "wrong chain")
	assert.Equal(t, mode.Starting.String(), reply.Mode, "wrong mode")
	assert.Equal(t, uint64(2), reply.RPCs, "wrong RPC count")
	assert.Equal(t, uint64(4), reply.Accounts, "wrong account count")
	assert.Equal(t, uint64(9), reply.Events, "wrong event count")
	assert.Equal(t, "1.2.3", reply.Version, "wrong version")
	assert.NotEqual(t, "", reply.Uptime, "missing uptime")
}

func TestNodeListEvents(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockAccounts(ctl)
	e := mocks.NewMockEvents(ctl)

	events := []event.Event{
		{Sequence: 5, Kind: event.VestingWalletCreated, Account: identity.Identity{1}},
		{Sequence: 6, Kind: event.TokensDeposited, Account: identity.Identity{1}},
	}
	e.EXPECT().List(uint64(5), 10).Return(events, uint64(7), nil).Times(1)

	n := node.New(logger.New(fixtures.LogCategory), time.Now(), "1", &counter.Counter{}, a, e)

	var reply node.EventsReply
	err := n.ListEvents(&node.EventsArguments{Start: 5, Count: 10}, &reply)
	assert.Nil(t, err, "wrong ListEvents")
	assert.Equal(t, events, reply.Events, "wrong events")
	assert.Equal(t, uint64(7), reply.NextStart, "wrong next start")

	err = n.ListEvents(&node.EventsArguments{Start: 0, Count: event.MaximumCount + 1}, &reply)
	assert.Equal(t, fault.ErrInvalidCount, err, "wrong error")
}
