// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package option

import (
	"strconv"
	"strings"

	"github.com/bitmark-inc/commandline/fault"
)

// CheckArgument - validate an argument's text against the declared
// value type
//
// int must parse as base-10 signed, bool must be one of the recognised
// spellings, string accepts anything.  Only called for options that
// take an argument, so Untyped never fails.
func (s *Spec) CheckArgument(value string) error {
	switch s.Type {
	case Integer:
		if _, err := strconv.ParseInt(value, 10, 64); nil != err {
			return s.mismatch(value)
		}
	case Boolean:
		switch strings.ToLower(value) {
		case "0", "1", "false", "true":
		default:
			return s.mismatch(value)
		}
	case String, Untyped:
	}
	return nil
}

func (s *Spec) mismatch(value string) error {
	return &fault.TypeMismatchError{
		Name:  s.Long,
		Value: value,
		Type:  s.Type.String(),
	}
}
