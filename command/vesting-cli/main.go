// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"path"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/vestingd/chain"
	"github.com/bitmark-inc/vestingd/command/vesting-cli/configuration"
)

type metadata struct {
	file    string
	config  *configuration.Configuration
	chain   string
	save    bool
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp()
	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {

	app := cli.NewApp()
	app.Name = "vesting-cli"
	app.Usage = "confidential vesting wallet client"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	accountFlags := []cli.Flag{
		cli.StringFlag{
			Name:  "wallet, W",
			Value: "",
			Usage: "*vesting wallet `ACCOUNT`",
		},
		cli.StringFlag{
			Name:  "token, t",
			Value: "",
			Usage: " token `ID` [wallet token]",
		},
		cli.BoolFlag{
			Name:  "decrypt, d",
			Usage: " decrypt the result handle",
		},
	}

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "chain, c",
			Value: chain.Local,
			Usage: " connect to vestingd `CHAIN` [live|testing|local]",
		},
		cli.StringFlag{
			Name:  "identity, i",
			Value: "",
			Usage: " identity `NAME` [default identity]",
		},
		cli.StringFlag{
			Name:  "password, p",
			Value: "",
			Usage: " identity `PASSWORD`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate key pair, will not store in config file",
			ArgsUsage: "\n   (* = required)",
			Action:    runGenerate,
		},
		{
			Name:      "setup",
			Usage:     "initialise vesting-cli configuration",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "connect, C",
					Value: "",
					Usage: "*vestingd host/IP and port, `HOST:PORT`",
				},
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: "*identity description `STRING`",
				},
				cli.StringFlag{
					Name:  "key, k",
					Value: "",
					Usage: " using existing hex private `KEY`",
				},
			},
			Action: runSetup,
		},
		{
			Name:      "add",
			Usage:     "add a new identity to config file",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: "*identity description `STRING`",
				},
				cli.StringFlag{
					Name:  "key, k",
					Value: "",
					Usage: " using existing hex private `KEY`",
				},
				cli.StringFlag{
					Name:  "account, a",
					Value: "",
					Usage: " receive only identity `ACCOUNT`",
				},
			},
			Action: runAdd,
		},
		{
			Name:   "info",
			Usage:  "display vesting-cli status",
			Action: runInfo,
		},
		{
			Name:   "node-info",
			Usage:  "display vestingd status",
			Action: runNodeInfo,
		},
		{
			Name:   "tokens",
			Usage:  "list registered tokens",
			Action: runTokens,
		},
		{
			Name:      "register-token",
			Usage:     "register a confidential token (testing chains)",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "name, n",
					Value: "",
					Usage: "*token `NAME`",
				},
			},
			Action: runRegisterToken,
		},
		{
			Name:      "mint",
			Usage:     "mint token supply (testing chains)",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "token, t",
					Value: "",
					Usage: "*token `ID`",
				},
				cli.StringFlag{
					Name:  "to, r",
					Value: "",
					Usage: " receiving identity `ACCOUNT` [current identity]",
				},
				cli.Uint64Flag{
					Name:  "amount, a",
					Value: 0,
					Usage: "*`AMOUNT` to mint",
				},
			},
			Action: runMint,
		},
		{
			Name:      "set-operator",
			Usage:     "allow an operator to move the identity balance",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "token, t",
					Value: "",
					Usage: "*token `ID`",
				},
				cli.StringFlag{
					Name:  "operator, o",
					Value: "",
					Usage: "*operator `ACCOUNT`",
				},
				cli.Uint64Flag{
					Name:  "until, u",
					Value: 0,
					Usage: "*unix `TIME` the approval ends",
				},
			},
			Action: runSetOperator,
		},
		{
			Name:      "balance",
			Usage:     "display the encrypted token balance",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "token, t",
					Value: "",
					Usage: "*token `ID`",
				},
				cli.StringFlag{
					Name:  "holder, o",
					Value: "",
					Usage: " holder `ACCOUNT` [current identity]",
				},
				cli.BoolFlag{
					Name:  "decrypt, d",
					Usage: " decrypt the balance",
				},
			},
			Action: runBalance,
		},
		{
			Name:      "create-wallet",
			Usage:     "create a vesting wallet owned by the identity",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "token, t",
					Value: "",
					Usage: "*token `ID`",
				},
				cli.StringFlag{
					Name:  "beneficiary, b",
					Value: "",
					Usage: "*beneficiary `ACCOUNT`",
				},
				cli.Uint64Flag{
					Name:  "start, s",
					Value: 0,
					Usage: "*unix `TIME` vesting starts",
				},
				cli.Uint64Flag{
					Name:  "duration, D",
					Value: 0,
					Usage: "*vesting `SECONDS`",
				},
			},
			Action: runCreateWallet,
		},
		{
			Name:      "wallet",
			Usage:     "display the public schedule of a wallet",
			ArgsUsage: "\n   (* = required)",
			Flags:     accountFlags[:1],
			Action:    runWallet,
		},
		{
			Name:      "wallets",
			Usage:     "list wallets of an owner or beneficiary",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " owner `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "beneficiary, b",
					Value: "",
					Usage: " beneficiary `ACCOUNT`",
				},
				cli.Uint64Flag{
					Name:  "start, s",
					Value: 0,
					Usage: " start point `COUNT`",
				},
				cli.IntFlag{
					Name:  "count, n",
					Value: 20,
					Usage: " maximum records to output `COUNT`",
				},
			},
			Action: runWallets,
		},
		{
			Name:      "deposit",
			Usage:     "fund a wallet from the identity balance",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				accountFlags[0],
				accountFlags[1],
				cli.Uint64Flag{
					Name:  "amount, a",
					Value: 0,
					Usage: "*`AMOUNT` to deposit",
				},
				cli.Uint64Flag{
					Name:  "approve-until, u",
					Value: 0,
					Usage: " approve the wallet as operator until unix `TIME` first",
				},
				accountFlags[2],
			},
			Action: runDeposit,
		},
		{
			Name:      "release",
			Usage:     "pay the releasable amount to the beneficiary",
			ArgsUsage: "\n   (* = required)",
			Flags:     accountFlags,
			Action:    runRelease,
		},
		{
			Name:      "total",
			Usage:     "display the encrypted total allocation",
			ArgsUsage: "\n   (* = required)",
			Flags:     accountFlags,
			Action:    runTotalAllocation,
		},
		{
			Name:      "released",
			Usage:     "display the encrypted released amount",
			ArgsUsage: "\n   (* = required)",
			Flags:     accountFlags,
			Action:    runReleased,
		},
		{
			Name:      "releasable",
			Usage:     "display the encrypted releasable amount",
			ArgsUsage: "\n   (* = required)",
			Flags:     accountFlags,
			Action:    runReleasable,
		},
		{
			Name:      "vested",
			Usage:     "display the encrypted amount vested at a time",
			ArgsUsage: "\n   (* = required)",
			Flags: append([]cli.Flag{
				cli.Uint64Flag{
					Name:  "at, T",
					Value: 0,
					Usage: "*unix `TIME`",
				},
			}, accountFlags...),
			Action: runVested,
		},
		{
			Name:      "decrypt",
			Usage:     "decrypt a handle granted to the identity",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "handle, H",
					Value: "",
					Usage: "*ciphertext `HANDLE`",
				},
			},
			Action: runDecrypt,
		},
		{
			Name:      "events",
			Usage:     "list the event log",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "start, s",
					Value: 0,
					Usage: " first event `NUMBER`",
				},
				cli.IntFlag{
					Name:  "count, n",
					Value: 20,
					Usage: " maximum records to output `COUNT`",
				},
			},
			Action: runEvents,
		},
		{
			Name:  "version",
			Usage: "display vesting-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// read the configuration
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// to suppress reading config file if certain commands
		command := c.Args().Get(0)
		switch command {
		case "", "version", "generate", "help", "h":
			c.App.Metadata["config"] = &metadata{
				verbose: verbose,
				e:       e,
				w:       w,
			}
			return nil
		}

		chainName := chain.Canonical(c.GlobalString("chain"))
		if "" == chainName {
			return fmt.Errorf("chain: %q can only be live/testing/local", c.GlobalString("chain"))
		}

		p := os.Getenv("XDG_CONFIG_HOME")
		if "" == p {
			return fmt.Errorf("XDG_CONFIG_HOME environment is not set")
		}
		dir, err := checkFileExists(p)
		if nil != err {
			return err
		}
		if !dir {
			return fmt.Errorf("not a directory: %q", p)
		}
		file := path.Join(p, app.Name, chainName+"-"+app.Name+".json")

		if verbose {
			fmt.Fprintf(e, "file: %q\n", file)
		}

		m := &metadata{
			file:    file,
			chain:   chainName,
			verbose: verbose,
			e:       e,
			w:       w,
		}

		if "setup" == command {
			// do not run setup if there is an existing configuration
			if _, err := checkFileExists(file); nil == err {
				return fmt.Errorf("not overwriting existing configuration: %q", file)
			}
		} else {
			m.config, err = configuration.Load(file)
			if nil != err {
				return err
			}
			if chainName != m.config.Chain {
				return fmt.Errorf("configuration chain: %q does not match: %q", m.config.Chain, chainName)
			}
		}

		c.App.Metadata["config"] = m
		return nil
	}

	// update the configuration if required
	app.After = func(c *cli.Context) error {
		e := c.App.ErrWriter
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok {
			return nil
		}
		if m.save {
			if m.verbose {
				fmt.Fprintf(e, "updating config file: %s\n", m.file)
			}
			err := configuration.Save(m.file, m.config)
			if nil != err {
				return err
			}
		}
		return nil
	}

	return app
}
