// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"encoding/hex"
	"os"
	"strings"

	"github.com/bitmark-inc/vestingd/fault"
)

// WriteTaggedKeys - write a key file of "TAG:hex" lines
//
// an existing file is never overwritten
func WriteTaggedKeys(filename string, tags []string, keys [][]byte) error {
	if EnsureFileExists(filename) {
		return fault.ErrKeyFileAlreadyExists
	}
	if len(tags) != len(keys) {
		return fault.ErrMissingParameters
	}

	s := strings.Builder{}
	for i, tag := range tags {
		s.WriteString(tag)
		s.WriteString(":")
		s.WriteString(hex.EncodeToString(keys[i]))
		s.WriteString("\n")
	}

	err := os.WriteFile(filename, []byte(s.String()), 0600)
	if nil != err {
		_ = os.Remove(filename)
	}
	return err
}

// ReadTaggedKeys - read a key file of "TAG:hex" lines
//
// every tag must be present with exactly the given byte length
func ReadTaggedKeys(filename string, lengths map[string]int) (map[string][]byte, error) {
	data, err := os.ReadFile(filename)
	if nil != err {
		return nil, err
	}

	keys := make(map[string][]byte)
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if "" == line || strings.HasPrefix(line, "#") {
			continue
		}
		tag, value, ok := strings.Cut(line, ":")
		if !ok {
			return nil, fault.ErrInvalidKeyFile
		}
		length, ok := lengths[tag]
		if !ok {
			return nil, fault.ErrInvalidKeyFile
		}
		key, err := hex.DecodeString(strings.TrimSpace(value))
		if nil != err || length != len(key) {
			return nil, fault.ErrInvalidKeyFile
		}
		keys[tag] = key
	}

	for tag := range lengths {
		if _, ok := keys[tag]; !ok {
			return nil, fault.ErrInvalidKeyFile
		}
	}
	return keys, nil
}
