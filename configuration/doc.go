// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - seed a configset from a Lua file
//
// The configuration file is a Lua script whose final expression is a
// table of key/value pairs; scalars become scalar entries, arrays of
// strings become lists.  Loading happens before command-line parsing
// so values from the command line overwrite values from the file.
//
// A Watcher is provided for long-running callers that want to reload
// when the file changes on disk.
package configuration
