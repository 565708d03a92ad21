// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/vestingd/counter"
	"github.com/bitmark-inc/vestingd/event"
	"github.com/bitmark-inc/vestingd/mode"
	"github.com/bitmark-inc/vestingd/rpc/ratelimit"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Accounts - account counting
type Accounts interface {
	Count() uint64
}

// Events - read access to the event log
type Events interface {
	Count() uint64
	List(start uint64, count int) ([]event.Event, uint64, error)
}

// Node - type for RPC calls
type Node struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Start    time.Time
	Version  string
	Accounts Accounts
	Events   Events
	counter  *counter.Counter
}

// New - node service
func New(log *logger.L, start time.Time, version string, counter *counter.Counter, accounts Accounts, events Events) *Node {
	return &Node{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:    start,
		Version:  version,
		Accounts: accounts,
		Events:   events,
		counter:  counter,
	}
}

// ---

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Chain    string `json:"chain"`
	Mode     string `json:"mode"`
	RPCs     uint64 `json:"rpcs"`
	Accounts uint64 `json:"accounts"`
	Events   uint64 `json:"events"`
	Version  string `json:"version"`
	Uptime   string `json:"uptime"`
}

// Info - return some information about this node
// only enough for clients to determine node state
// for more detail information use HTTP GET requests
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	reply.Chain = mode.ChainName()
	reply.Mode = mode.String()
	reply.RPCs = node.counter.Uint64()
	reply.Accounts = node.Accounts.Count()
	reply.Events = node.Events.Count()
	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	return nil
}

// ---

// EventsArguments - arguments for RPC
type EventsArguments struct {
	Start uint64 `json:"start,string"`
	Count int    `json:"count"`
}

// EventsReply - result from RPC
type EventsReply struct {
	Events    []event.Event `json:"events"`
	NextStart uint64        `json:"nextStart,string"`
}

// ListEvents - page through the event log
func (node *Node) ListEvents(arguments *EventsArguments, reply *EventsReply) error {

	if err := ratelimit.LimitN(node.Limiter, arguments.Count, event.MaximumCount); nil != err {
		return err
	}

	events, next, err := node.Events.List(arguments.Start, arguments.Count)
	if nil != err {
		return err
	}
	reply.Events = events
	reply.NextStart = next

	return nil
}
