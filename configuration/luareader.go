// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"github.com/yuin/gluamapper"
	lua "github.com/yuin/gopher-lua"

	"github.com/bitmark-inc/commandline/configset"
	"github.com/bitmark-inc/commandline/fault"
)

// Load - execute a Lua configuration file and store its returned
// table in a configset
//
// The script sees a global "arg" table with arg[0] set to the file
// name, so it can locate files relative to itself.
func Load(fileName string, conf *configset.Set) error {

	L := lua.NewState()
	defer L.Close()

	L.OpenLibs()

	// create the global "arg" table
	// arg[0] = config file
	arg := &lua.LTable{}
	arg.Insert(0, lua.LString(fileName))
	L.SetGlobal("arg", arg)

	// execute configuration
	if err := L.DoFile(fileName); nil != err {
		return &fault.ConfigurationError{File: fileName, Reason: err.Error()}
	}

	table, ok := L.Get(L.GetTop()).(*lua.LTable)
	if !ok {
		return &fault.ConfigurationError{File: fileName, Reason: "script must return a table"}
	}

	mapperOption := gluamapper.Option{
		NameFunc: func(s string) string {
			return s
		},
		TagName: "gluamapper",
	}
	values, ok := gluamapper.ToGoValue(table, mapperOption).(map[string]interface{})
	if !ok {
		return &fault.ConfigurationError{File: fileName, Reason: "script must return a key/value table"}
	}

	for key, value := range values {
		switch v := value.(type) {
		case string, bool, float64:
			conf.Set(key, v)
		case []interface{}:
			for _, item := range v {
				text, ok := item.(string)
				if !ok {
					return &fault.ConfigurationError{File: fileName, Reason: "list values must be strings: " + key}
				}
				conf.Append(key, text)
			}
		default:
			return &fault.ConfigurationError{File: fileName, Reason: "unsupported value for key: " + key}
		}
	}

	return nil
}
