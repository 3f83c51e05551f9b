// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides the error values returned by the option compiler and the
// argument matcher.  Each kind of failure is a distinct type carrying
// the offending text, so callers can recover from one kind (e.g. an
// unknown option) while treating another (a malformed description) as
// a programming error.  Class predicates allow testing without partial
// string matches.
package fault
