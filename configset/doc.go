// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configset - the key/value store filled during parsing
//
// Values arrive from two places: the argument matcher writes one entry
// per matched option, and the configuration file loader seeds defaults
// before parsing starts.  Scalars overwrite, lists accumulate.  Typed
// accessors convert stored text on the way out, so an int-typed option
// is stored as its validated text and read back as a number.
package configset
