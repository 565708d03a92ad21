// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"reflect"

	"github.com/yuin/gluamapper"
	lua "github.com/yuin/gopher-lua"

	"github.com/bitmark-inc/vestingd/fault"
)

// ParseConfigurationFile - run a Lua file and map the table it returns
// onto config, which must be a pointer to a struct
//
// the script sees arg[0] as its own file name and the global table
// "variables" holding the name=value pairs given on the command line
func ParseConfigurationFile(fileName string, config interface{}, variables map[string]string) error {

	rv := reflect.ValueOf(config)
	if reflect.Ptr != rv.Kind() || rv.IsNil() || reflect.Struct != rv.Elem().Kind() {
		return fault.ErrInvalidStructPointer
	}

	L := newState(fileName, variables)
	defer L.Close()

	if err := L.DoFile(fileName); nil != err {
		return err
	}

	table, ok := L.Get(-1).(*lua.LTable)
	if !ok {
		return fault.ErrInvalidConfiguration
	}

	mapper := gluamapper.NewMapper(gluamapper.Option{
		NameFunc: gluamapper.Id,
		TagName:  "gluamapper",
	})
	return mapper.Map(table, config)
}

// interpreter with the standard libraries and the two globals
func newState(fileName string, variables map[string]string) *lua.LState {
	L := lua.NewState()
	L.OpenLibs()

	arg := L.NewTable()
	arg.RawSetInt(0, lua.LString(fileName))
	L.SetGlobal("arg", arg)

	vars := L.NewTable()
	for k, v := range variables {
		vars.RawSetString(k, lua.LString(v))
	}
	L.SetGlobal("variables", vars)

	return L
}
