// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package option

import (
	"strings"

	"github.com/bitmark-inc/commandline/fault"
)

// report a description that does not follow the grammar
func malformed(source string, reason string) error {
	return &fault.MalformedDescriptionError{
		Source: source,
		Reason: reason,
	}
}

// Compile - parse one option description string
//
// The syntax is documented in the package comment.  Returns a
// MalformedDescriptionError carrying the original string and a reason
// if the description does not follow the grammar.
func Compile(description string) (*Spec, error) {

	spec := &Spec{}
	s := description

	// leading flags, each at most once, in either order
flags:
	for 0 != len(s) {
		switch s[0] {
		case '!':
			if spec.Required {
				return nil, malformed(description, "duplicate '!' flag")
			}
			spec.Required = true
			s = s[1:]
		case '*':
			if spec.Multiple {
				return nil, malformed(description, "duplicate '*' flag")
			}
			spec.Multiple = true
			s = s[1:]
		default:
			break flags
		}
	}

	// config key runs up to the first ':'
	colon := strings.IndexByte(s, ':')
	if colon < 0 {
		return nil, malformed(description, "missing ':' before the long name")
	}
	spec.ConfigKey = s[:colon]
	s = s[colon+1:]

	// long name runs to the first structural character
	n := strings.IndexAny(s, ",=?:")
	if n < 0 {
		spec.Long = s
		s = ""
	} else {
		spec.Long = s[:n]
		s = s[n:]
	}
	if 0 == len(spec.Long) {
		return nil, malformed(description, "empty long name")
	}
	if 0 == len(spec.ConfigKey) {
		spec.ConfigKey = spec.Long
	}

	// optional single character short name after a ','
	if 0 != len(s) && ',' == s[0] {
		s = s[1:]
		n = strings.IndexAny(s, "=?:")
		short := s
		if n < 0 {
			s = ""
		} else {
			short = s[:n]
			s = s[n:]
		}
		if 1 != len(short) {
			return nil, malformed(description, "short name must be exactly one character")
		}
		spec.Short = short
	}

	// argument specification
	//   =type[,default]  mandatory argument, default applies when the
	//                    option is entirely absent
	//   ?type,default    optional argument, default applies when the
	//                    argument is omitted
	if 0 != len(s) && ('=' == s[0] || '?' == s[0]) {
		optional := '?' == s[0]
		s = s[1:]

		n = strings.IndexAny(s, ",:")
		typeName := s
		if n < 0 {
			s = ""
		} else {
			typeName = s[:n]
			s = s[n:]
		}
		valueType, err := typeFromString(typeName)
		if nil != err {
			return nil, malformed(description, err.(*fault.MalformedDescriptionError).Reason)
		}
		spec.Type = valueType
		if optional {
			spec.Kind = OptionalArgument
		} else {
			spec.Kind = RequiredArgument
		}

		if 0 != len(s) && ',' == s[0] {
			s = s[1:]
			n = strings.IndexByte(s, ':')
			def := s
			if n < 0 {
				s = ""
			} else {
				def = s[:n]
				s = s[n:]
			}
			spec.HasDefault = true
			spec.Default = def
		} else if optional {
			return nil, malformed(description, "optional argument needs a default")
		}
	}

	// a required option with an absence default is contradictory: the
	// default could never be used
	if spec.Required && spec.HasDefault && RequiredArgument == spec.Kind {
		return nil, malformed(description, "a required option cannot carry a default")
	}

	// remaining text is the help string after a ':'
	if 0 != len(s) {
		if ':' != s[0] {
			return nil, malformed(description, "unexpected text after option names")
		}
		spec.Help = s[1:]
	}

	return spec, nil
}
