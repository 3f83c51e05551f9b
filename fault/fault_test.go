// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/bitmark-inc/commandline/fault"
)

type classTest struct {
	err       error
	predicate func(error) bool
	text      string
}

func TestClasses(t *testing.T) {

	tests := []classTest{
		{
			err:       &fault.MalformedDescriptionError{Source: ":x,ab", Reason: "short name too long"},
			predicate: fault.IsErrMalformedDescription,
			text:      `malformed option description: ":x,ab": short name too long`,
		},
		{
			err:       &fault.DuplicateOptionError{Name: "verbose"},
			predicate: fault.IsErrDuplicateOption,
			text:      `duplicate option: "verbose"`,
		},
		{
			err:       &fault.UnknownOptionError{Name: "frobnicate"},
			predicate: fault.IsErrUnknownOption,
			text:      `unknown option: "frobnicate"`,
		},
		{
			err:       &fault.MissingArgumentError{Name: "output"},
			predicate: fault.IsErrMissingArgument,
			text:      `option "output" needs an argument`,
		},
		{
			err:       &fault.TypeMismatchError{Name: "count", Value: "many", Type: "int"},
			predicate: fault.IsErrTypeMismatch,
			text:      `option "count": "many" is not a valid int`,
		},
		{
			err:       &fault.MissingRequiredOptionError{Name: "identity"},
			predicate: fault.IsErrMissingRequiredOption,
			text:      `required option "identity" is missing`,
		},
		{
			err:       &fault.ConfigurationError{File: "test.conf", Reason: "no such file"},
			predicate: fault.IsErrConfiguration,
			text:      `configuration file "test.conf": no such file`,
		},
	}

	for i, test := range tests {
		if !test.predicate(test.err) {
			t.Errorf("%d: predicate rejected its own class: %v", i, test.err)
		}
		if test.err.Error() != test.text {
			t.Errorf("%d: text: %q  expected: %q", i, test.err.Error(), test.text)
		}
	}

	// cross-class confusion
	if fault.IsErrUnknownOption(&fault.DuplicateOptionError{Name: "x"}) {
		t.Error("IsErrUnknownOption accepted a DuplicateOptionError")
	}
	if fault.IsErrMalformedDescription(nil) {
		t.Error("IsErrMalformedDescription accepted nil")
	}
}
