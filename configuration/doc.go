// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - Lua configuration files
//
// the file is an ordinary Lua chunk returning one table; the table is
// copied into the caller's struct by "gluamapper" tags. Scripts can use
// arg[0] to find their own directory and the "variables" table for
// values given on the command line.
package configuration
