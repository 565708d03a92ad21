// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package mode - daemon run state and chain selection
//
// the chain is fixed by Initialise; the run state moves
// Stopped → Starting → Normal → Stopping → Stopped
package mode

import (
	"sync"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/vestingd/chain"
	"github.com/bitmark-inc/vestingd/fault"
)

// Mode - run state
type Mode int

// all possible modes
const (
	Stopped Mode = iota
	Starting
	Normal
	Stopping
)

var modeNames = [...]string{
	Stopped:  "Stopped",
	Starting: "Starting",
	Normal:   "Normal",
	Stopping: "Stopping",
}

type state struct {
	sync.RWMutex
	log         *logger.L
	mode        Mode
	chain       string
	development bool
	initialised bool
}

var current state

// Initialise - fix the chain and enter Starting
func Initialise(chainName string) error {

	current.Lock()
	defer current.Unlock()

	if current.initialised {
		return fault.ErrAlreadyInitialised
	}

	log := logger.New("mode")
	if !chain.Valid(chainName) {
		log.Criticalf("invalid chain: %q", chainName)
		return fault.ErrInvalidChain
	}

	current.log = log
	current.chain = chainName
	current.development = chain.IsDevelopment(chainName)
	current.mode = Starting
	current.initialised = true

	log.Infof("chain: %s  development: %t", chainName, current.development)
	return nil
}

// Finalise - return to Stopped
func Finalise() error {

	current.Lock()
	defer current.Unlock()

	if !current.initialised {
		return fault.ErrNotInitialised
	}

	current.mode = Stopped
	current.initialised = false

	current.log.Info("finished")
	current.log.Flush()
	return nil
}

// Set - change the run state, out of range values are ignored
func Set(mode Mode) {
	current.Lock()
	defer current.Unlock()

	if mode < Stopped || mode > Stopping {
		if nil != current.log {
			current.log.Errorf("ignore invalid set: %d", mode)
		}
		return
	}

	current.mode = mode
	if nil != current.log {
		current.log.Infof("set: %s", mode)
	}
}

// Is - true if in the given state
func Is(mode Mode) bool {
	current.RLock()
	defer current.RUnlock()
	return mode == current.mode
}

// IsTesting - plaintext helpers allowed
func IsTesting() bool {
	current.RLock()
	defer current.RUnlock()
	return current.development
}

// ChainName - name of the current chain
func ChainName() string {
	current.RLock()
	defer current.RUnlock()
	return current.chain
}

// String - current run state
func String() string {
	current.RLock()
	defer current.RUnlock()
	return current.mode.String()
}

func (m Mode) String() string {
	if m < Stopped || m > Stopping {
		return "*Unknown*"
	}
	return modeNames[m]
}
