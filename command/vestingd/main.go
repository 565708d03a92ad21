// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/vestingd/background"
	"github.com/bitmark-inc/vestingd/coprocessor"
	"github.com/bitmark-inc/vestingd/event"
	"github.com/bitmark-inc/vestingd/mode"
	"github.com/bitmark-inc/vestingd/registry"
	"github.com/bitmark-inc/vestingd/rpc"
	"github.com/bitmark-inc/vestingd/rpc/auth"
	"github.com/bitmark-inc/vestingd/rpc/server"
	"github.com/bitmark-inc/vestingd/storage"
	"github.com/bitmark-inc/vestingd/token"
	"github.com/bitmark-inc/vestingd/vesting"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "define", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'd'},
		{Long: "memory-stats", HasArg: getoptions.NO_ARGUMENT, Short: 'm'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	// these commands do not require the configuration and
	// process data needed for initial setup
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// variables passed to the configuration script as: name=value
	variables := make(map[string]string)
	for _, d := range options["define"] {
		s := strings.SplitN(d, "=", 2)
		if 2 != len(s) {
			exitwithstatus.Message("%s: define: %q is not name=value", program, d)
		}
		variables[strings.TrimSpace(s[0])] = strings.TrimSpace(s[1])
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile, variables)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// these commands require the configuration and
	// perform enquiries on the configuration
	if len(arguments) > 0 && processConfigCommand(arguments, theConfiguration) {
		return
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	// ------------------
	// start of real main
	// ------------------

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != theConfiguration.PidFile {
		lockFile, err := os.OpenFile(theConfiguration.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if err != nil {
			if os.IsExist(err) {
				exitwithstatus.Message("%s: another instance is already running", program)
			}
			exitwithstatus.Message("%s: PID file: %q creation failed, error: %s", program, theConfiguration.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(theConfiguration.PidFile)
	}

	// set the initial system mode - before any background tasks are started
	err = mode.Initialise(theConfiguration.Chain)
	if nil != err {
		log.Criticalf("mode initialise error: %s", err)
		exitwithstatus.Message("mode initialise error: %s", err)
	}
	defer mode.Finalise()

	// general info
	log.Infof("test mode: %v", mode.IsTesting())
	log.Infof("database: %q", theConfiguration.Database)

	// connection info
	log.Debugf("%s = %#v", "ClientRPC", theConfiguration.ClientRPC)
	log.Debugf("%s = %#v", "HttpsRPC", theConfiguration.HttpsRPC)

	// start the data storage
	log.Info("initialise storage")
	store, err := storage.Open(theConfiguration.Database.Name, storage.ReadWrite)
	if nil != err {
		log.Criticalf("storage initialise error: %s", err)
		exitwithstatus.Message("storage initialise error: %s", err)
	}
	defer store.Close()

	// reference coprocessor
	log.Info("initialise coprocessor")
	keys, err := coprocessor.ReadKeys(theConfiguration.Coprocessor.KeyFile)
	if nil != err {
		log.Criticalf("coprocessor keys: %q  error: %s", theConfiguration.Coprocessor.KeyFile, err)
		exitwithstatus.Message("coprocessor keys: %q  error: %s", theConfiguration.Coprocessor.KeyFile, err)
	}
	c, err := coprocessor.New(logger.New("coprocessor"), store, keys)
	if nil != err {
		log.Criticalf("coprocessor initialise error: %s", err)
		exitwithstatus.Message("coprocessor initialise error: %s", err)
	}

	directory := token.NewDirectory(store, c, vesting.SystemClock)
	environment := &vesting.Environment{
		Log:    logger.New("vesting"),
		Store:  store,
		FHE:    c,
		Tokens: directory,
		Events: event.New(store),
		Clock:  vesting.SystemClock,
	}
	r := registry.New(environment)

	// these commands are allowed to access the internal database
	if len(arguments) > 0 && processDataCommand(log, arguments, r, environment.Events) {
		return
	}

	// start up the rpc background processes
	replay := auth.NewReplay(store)
	services := server.Services{
		Start:       time.Now().UTC(),
		Registry:    r,
		Directory:   directory,
		Coprocessor: c,
		Events:      environment.Events,
		Replay:      replay,
	}
	err = rpc.Initialise(&theConfiguration.ClientRPC, &theConfiguration.HttpsRPC, version, services)
	if nil != err {
		log.Criticalf("rpc initialise error: %s", err)
		exitwithstatus.Message("rpc initialise error: %s", err)
	}
	defer rpc.Finalise()

	mode.Set(mode.Normal)

	processes := background.Processes{
		&status{
			log:      logger.New("status"),
			delay:    statusDelay,
			accounts: r,
			events:   environment.Events,
		},
		&pruner{
			log:    logger.New("replay"),
			delay:  pruneDelay,
			replay: replay,
			clock:  time.Now,
		},
	}
	if len(options["memory-stats"]) > 0 {
		processes = append(processes, &memoryStats{
			log:   logger.New("memory"),
			delay: statsDelay,
		})
	}
	bg := background.Start(processes, nil)
	defer bg.Stop()

	// wait for CTRL-C before shutting down to allow manual testing
	if 0 == len(options["quiet"]) {
		fmt.Printf("\n\nWaiting for CTRL-C (SIGINT) or 'kill <pid>' (SIGTERM)…")
	}

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	sig := <-ch
	log.Infof("received signal: %v", sig)
	if 0 == len(options["quiet"]) {
		fmt.Printf("\nreceived signal: %v\n", sig)
		fmt.Printf("\nshutting down…\n")
	}

	log.Info("shutting down…")
	mode.Set(mode.Stopping)
}
