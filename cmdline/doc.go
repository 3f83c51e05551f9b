// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package cmdline - match a command line against declared options
//
// A CommandLine is built once from a list of option description
// strings (see the option package for the syntax) and is read-only
// afterwards.  Parse walks an argument vector against the table:
//
//   --name          long option
//   --name=value    long option with inline argument
//   -abc            clustered short options, gcc style
//   -xVALUE         short option with inline argument
//   --              end of options, the rest is positional
//
// Each matched option writes one entry to a configset.Set: the
// argument's text, or boolean true for options without arguments.
// Options declared with "*" accumulate a list, otherwise the last
// occurrence wins.  Tokens not consumed as options or arguments are
// returned as positional leftovers in their original order.
//
// Parse is re-entrant across independent CommandLine/Set pairs;
// concurrent calls sharing one Set need external synchronisation.
package cmdline
