// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package util - small file and address helpers shared by the commands
package util

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/vestingd/fault"
)

// EnsureAbsolute - relative names are taken from directory
func EnsureAbsolute(directory string, name string) string {
	if filepath.IsAbs(name) {
		return filepath.Clean(name)
	}
	return filepath.Join(directory, name)
}

// EnsureFileExists - true if name can be stat'ed
func EnsureFileExists(name string) bool {
	_, err := os.Stat(name)
	return nil == err
}

// EnsureDirectory - create a private directory, or check an existing one
func EnsureDirectory(name string) error {
	info, err := os.Stat(name)
	if os.IsNotExist(err) {
		return os.MkdirAll(name, 0700)
	}
	if nil != err {
		return err
	}
	if !info.IsDir() {
		return fault.ErrNotADirectory
	}
	return nil
}
