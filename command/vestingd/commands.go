// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/vestingd/coprocessor"
	"github.com/bitmark-inc/vestingd/event"
	"github.com/bitmark-inc/vestingd/fault"
	"github.com/bitmark-inc/vestingd/identity"
	"github.com/bitmark-inc/vestingd/registry"
	"github.com/bitmark-inc/vestingd/rpc/certificate"
	"github.com/bitmark-inc/vestingd/util"
)

const (
	rpcCertificateKeyFilename = "rpc.crt"
	rpcPrivateKeyFilename     = "rpc.key"
	coprocessorKeysFilename   = "coprocessor.keys"
)

// setup command handler
//
// commands that run to create key and certificate files these
// commands cannot access any internal database or states or the
// configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "gen-rpc-cert", "rpc":
		certificateFilename := getFilenameWithDirectory(arguments, rpcCertificateKeyFilename)
		privateKeyFilename := getFilenameWithDirectory(arguments, rpcPrivateKeyFilename)

		addresses := []string{}
		if len(arguments) >= 2 {
			for _, a := range arguments[1:] {
				if "" != a {
					addresses = append(addresses, a)
				}
			}
		}

		err := certificate.MakeSelfSigned("rpc", certificateFilename, privateKeyFilename, 0 != len(addresses), addresses)
		if nil != err {
			fmt.Printf("generate RPC key: %q and certificate: %q error: %s\n", privateKeyFilename, certificateFilename, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated RPC key: %q and certificate: %q\n", privateKeyFilename, certificateFilename)

	case "gen-coprocessor-keys", "keys":
		keysFilename := getFilenameWithDirectory(arguments, coprocessorKeysFilename)

		if util.EnsureFileExists(keysFilename) {
			fmt.Printf("generate coprocessor keys: %q error: %s\n", keysFilename, fault.ErrKeyFileAlreadyExists)
			exitwithstatus.Exit(1)
		}

		keys, err := coprocessor.GenerateKeys()
		if nil != err {
			fmt.Printf("generate coprocessor keys: %q error: %s\n", keysFilename, err)
			exitwithstatus.Exit(1)
		}
		if err := coprocessor.WriteKeys(keysFilename, keys); nil != err {
			_ = os.Remove(keysFilename)
			fmt.Printf("generate coprocessor keys: %q error: %s\n", keysFilename, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated coprocessor keys: %q\n", keysFilename)

	case "start", "run":
		return false // continue processing

	case "config-test", "cfg":
		return false // defer processing until configuration is read

	case "dump-wallets", "wallets", "dump-events", "events":
		return false // defer processing until database is loaded

	case "version", "v":
		fmt.Printf("%s\n", version)
		return true

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [--define=NAME=VALUE] [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version sting\n\n")

		fmt.Printf("  gen-rpc-cert [DIR]         (rpc)    - create private key in:  %q\n", "DIR/"+rpcPrivateKeyFilename)
		fmt.Printf("                                        and the certificate in: %q\n", "DIR/"+rpcCertificateKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  gen-rpc-cert [DIR] [IPs...]         - create private key in:  %q\n", "DIR/"+rpcPrivateKeyFilename)
		fmt.Printf("                                        and the certificate in: %q\n", "DIR/"+rpcCertificateKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  gen-coprocessor-keys [DIR] (keys)   - create coprocessor keys in: %q\n", "DIR/"+coprocessorKeysFilename)
		fmt.Printf("\n")

		fmt.Printf("  start                      (run)    - just run the program, same as no arguments\n")
		fmt.Printf("                                        for convienience when passing script arguments\n")
		fmt.Printf("\n")

		fmt.Printf("  config-test                (cfg)    - just check the configuration file\n")
		fmt.Printf("\n")

		fmt.Printf("  dump-wallets owner|beneficiary ID  (wallets)  - list the vesting accounts of an identity\n")
		fmt.Printf("\n")

		fmt.Printf("  dump-events [START [COUNT]]        (events)   - list events as JSON\n")
		fmt.Printf("\n")

		exitwithstatus.Exit(1)
	}

	// indicate processing complete and preform normal exit from main
	return true
}

// configuration file enquiry commands
// have configuration file read and decoded, but nothing else
func processConfigCommand(arguments []string, options *Configuration) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "config-test", "cfg":
		if err := printJSON(os.Stdout, options); nil != err {
			exitwithstatus.Message("error: %s", err)
		}

	default: // unknown commands fall through to data command
		return false
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// data command handler
// the storage and registry are available so these commands can
// read the databases
func processDataCommand(log *logger.L, arguments []string, r *registry.Registry, events *event.Log) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {

	case "start", "run":
		return false // continue processing

	case "dump-wallets", "wallets":
		if len(arguments) < 2 {
			exitwithstatus.Message("missing owner|beneficiary and identity arguments")
		}
		who, err := identity.FromString(arguments[1])
		if nil != err {
			exitwithstatus.Message("error in identity: %s", err)
		}

		var ids []identity.Identity
		switch arguments[0] {
		case "owner", "o":
			ids, err = r.GetOwnerWallets(who)
		case "beneficiary", "b":
			ids, err = r.GetBeneficiaryWallets(who)
		default:
			exitwithstatus.Message("error: %q is not owner or beneficiary", arguments[0])
		}
		if nil != err {
			exitwithstatus.Message("wallet list error: %s", err)
		}

		type wallet struct {
			Account     identity.Identity `json:"account"`
			Owner       identity.Identity `json:"owner"`
			Beneficiary identity.Identity `json:"beneficiary"`
			Token       identity.Identity `json:"token"`
			Start       uint64            `json:"start"`
			End         uint64            `json:"end"`
		}
		wallets := make([]wallet, 0, len(ids))
		for _, id := range ids {
			a, err := r.Open(context.Background(), id)
			if nil != err {
				exitwithstatus.Message("open: %s  error: %s", id, err)
			}
			wallets = append(wallets, wallet{
				Account:     a.ID(),
				Owner:       a.Owner(),
				Beneficiary: a.Beneficiary(),
				Token:       a.Token(),
				Start:       a.Start(),
				End:         a.End(),
			})
		}
		log.Infof("dump-wallets: %s  count: %d", who, len(wallets))

		if err := printJSON(os.Stdout, wallets); nil != err {
			exitwithstatus.Message("error: %s", err)
		}

	case "dump-events", "events":
		start := uint64(0)
		count := event.MaximumCount
		var err error
		if len(arguments) > 0 {
			start, err = strconv.ParseUint(arguments[0], 10, 64)
			if nil != err {
				exitwithstatus.Message("error in start: %s", err)
			}
		}
		if len(arguments) > 1 {
			count, err = strconv.Atoi(arguments[1])
			if nil != err {
				exitwithstatus.Message("error in count: %s", err)
			}
		}

		list, next, err := events.List(start, count)
		if nil != err {
			exitwithstatus.Message("event list error: %s", err)
		}
		log.Infof("dump-events: start: %d  next: %d", start, next)

		if err := printJSON(os.Stdout, list); nil != err {
			exitwithstatus.Message("error: %s", err)
		}

	default:
		log.Errorf("unrecognised command: %q", command)
		exitwithstatus.Message("unrecognised command: %q", command)
	}

	// indicate processing complete and perform normal exit from main
	return true
}

func getFilenameWithDirectory(arguments []string, name string) string {
	dir := "."
	if len(arguments) >= 1 {
		dir = arguments[0]
	}

	return filepath.Join(dir, name)
}

func printJSON(w io.Writer, item interface{}) error {
	b, err := json.MarshalIndent(item, "", "  ")
	if nil != err {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", b)
	return err
}
