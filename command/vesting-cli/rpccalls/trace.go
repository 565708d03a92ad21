// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"encoding/json"
	"fmt"
	"time"
)

// show the request side of a call
func (client *Client) traceRequest(method string, arguments interface{}) {
	if !client.verbose {
		return
	}
	client.trace(method+" request", arguments)
}

// show how a call ended: the reply or the error, and the round trip
func (client *Client) traceResult(method string, reply interface{}, err error, elapsed time.Duration) {
	if !client.verbose {
		return
	}
	elapsed = elapsed.Round(time.Microsecond)
	if nil != err {
		fmt.Fprintf(client.handle, "%s error after %s: %s\n", method, elapsed, err)
		return
	}
	client.trace(fmt.Sprintf("%s reply after %s", method, elapsed), reply)
}

func (client *Client) trace(title string, message interface{}) {
	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		fmt.Fprintf(client.handle, "%s: unprintable: %s\n", title, err)
		return
	}
	fmt.Fprintf(client.handle, "%s:\n%s\n", title, b)
}
