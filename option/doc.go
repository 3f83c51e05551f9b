// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package option - compile option description strings
//
// One description string declares one command-line option.  The full
// syntax is:
//
//   [!][*][config_key]:long_name[,short_name][ARGSPEC][:help_text]
//
//   ARGSPEC := "=" value_type [ "," default ]
//            | "?" value_type "," default
//   value_type := "int" | "bool" | "string"
//
// Leading "!" marks the option required, leading "*" makes repeated
// occurrences accumulate into a list; both may appear, in either
// order, each at most once.  If config_key is omitted the long name is
// used as the key.
//
// "=type" declares a mandatory argument; a trailing ",default" after
// "=" is a fallback stored only when the option never appears on the
// command line at all.  "?type,default" declares an optional argument
// whose default is substituted when the option is present but its
// argument is omitted; the default is mandatory in this form.  With no
// ARGSPEC the option takes no argument and stores boolean true when
// matched.
//
// Examples:
//
//   ":help,h:display this help and exit"
//   ":recursive,r:equivalent to --directories=recurse"
//   ":max-count,m=int:stop after NUM matches"
//   "*:include,I=string:add an include path"
//   "!:identity,i=string:identity name (mandatory)"
package option
