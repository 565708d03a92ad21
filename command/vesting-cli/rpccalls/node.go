// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/vestingd/rpc/node"
)

// GetNodeInfo - request status from vestingd
func (client *Client) GetNodeInfo() (*node.InfoReply, error) {
	var reply node.InfoReply
	if err := client.call("Node.Info", &node.InfoArguments{}, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// ListEvents - page of the event log
func (client *Client) ListEvents(start uint64, count int) (*node.EventsReply, error) {
	arguments := node.EventsArguments{
		Start: start,
		Count: count,
	}

	var reply node.EventsReply
	if err := client.call("Node.ListEvents", &arguments, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}
