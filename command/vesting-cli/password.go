// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

const minimumPasswordLength = 8

// read a line from the controlling terminal without echo
func readPassword(prompt string) (string, error) {
	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if nil != err {
		return "", fmt.Errorf("no console: %s", err)
	}
	defer tty.Close()

	fd := int(tty.Fd())
	state, err := term.MakeRaw(fd)
	if nil != err {
		return "", err
	}
	defer term.Restore(fd, state)

	console := term.NewTerminal(tty, "vesting-cli: ")
	return console.ReadPassword(prompt)
}

// new password, entered twice
func promptNewPassword() (string, error) {
	password, err := readPassword(fmt.Sprintf("Set identity password (length >= %d): ", minimumPasswordLength))
	if nil != err {
		return "", err
	}
	if len(password) < minimumPasswordLength {
		return "", ErrInvalidPasswordLength
	}

	verifyPassword, err := readPassword("Verify password: ")
	if nil != err {
		return "", err
	}
	if password != verifyPassword {
		return "", ErrPasswordMismatch
	}
	return password, nil
}

func promptPassword() (string, error) {
	return readPassword("password: ")
}
