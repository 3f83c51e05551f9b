// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/commandline/cmdline"
	"github.com/bitmark-inc/commandline/configset"
	"github.com/bitmark-inc/commandline/configuration"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// option descriptions, compiled once at startup
var descriptions = []string{
	":help,h:display this help and exit",
	":version,V:display version and exit",
	":verbose,v:enable debug logging",
	":config-file,c=string:load defaults from FILE before parsing",
	"*:include,I=string:add an include search path",
	"limit:max-jobs,j=int,4:maximum parallel jobs",
	":colour?string,auto:when to use colours",
}

// demonstration front end for the commandline library
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	program := filepath.Base(os.Args[0])

	c, err := cmdline.New("usage: "+program+" [options] packages...", descriptions)
	if nil != err {
		exitwithstatus.Message("%s: option table error: %s", program, err)
	}

	// first pass to pick up --help/--version/--config-file
	conf := configset.New()
	arguments, err := c.Parse(os.Args[1:], conf)
	if nil != err {
		c.Usage(os.Stderr)
		exitwithstatus.Message("%s: %s", program, err)
	}

	if has, _ := conf.GetBool("help"); has {
		c.Usage(os.Stdout)
		return
	}

	if has, _ := conf.GetBool("version"); has {
		fmt.Printf("%s: version: %s\n", program, version)
		return
	}

	if verbose, _ := conf.GetBool("verbose"); verbose {
		logging := logger.Configuration{
			Directory: ".",
			File:      program + ".log",
			Size:      1048576,
			Count:     10,
			Levels: map[string]string{
				logger.DefaultTag: "debug",
			},
		}
		if err := logger.Initialise(logging); nil != err {
			exitwithstatus.Message("%s: logger setup failed: %s", program, err)
		}
		defer logger.Finalise()
		c.SetLogger(logger.New("main"))
	}

	// with a configuration file the store is rebuilt: file values
	// first, then the command line on top so it wins
	if fileName, ok := conf.GetString("config-file"); ok {
		conf = configset.New()
		if err := configuration.Load(fileName, conf); nil != err {
			exitwithstatus.Message("%s: %s", program, err)
		}
		arguments, err = c.Parse(os.Args[1:], conf)
		if nil != err {
			c.Usage(os.Stderr)
			exitwithstatus.Message("%s: %s", program, err)
		}
	}

	for _, key := range conf.Keys() {
		value, _ := conf.Get(key)
		fmt.Printf("%s = %v\n", key, value)
	}
	for i, argument := range arguments {
		fmt.Printf("argument[%d] = %q\n", i, argument)
	}
}
