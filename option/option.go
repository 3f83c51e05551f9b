// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package option

import (
	"fmt"

	"github.com/bitmark-inc/commandline/fault"
)

// ArgumentKind - whether an option takes an argument
type ArgumentKind int

// possible argument kinds
const (
	NoArgument       ArgumentKind = iota // matched option stores boolean true
	RequiredArgument ArgumentKind = iota // argument is mandatory once the option appears
	OptionalArgument ArgumentKind = iota // inline argument or the declared default
)

// ValueType - how an argument's text is validated at match time
type ValueType int

// possible value types
//
// Untyped is only valid together with NoArgument
const (
	Untyped ValueType = iota
	Integer ValueType = iota
	Boolean ValueType = iota
	String  ValueType = iota
)

// Spec - one compiled option description
type Spec struct {
	ConfigKey  string // key under which matched values are stored
	Long       string // the --name form, without the dashes
	Short      string // the -x form, empty or exactly one character
	Help       string
	Kind       ArgumentKind
	Type       ValueType
	HasDefault bool
	Default    string
	Multiple   bool // occurrences append to a list instead of overwriting
	Required   bool // absence after parsing is fatal
}

// internal conversion
func kindToString(k ArgumentKind) (string, error) {
	switch k {
	case NoArgument:
		return "none", nil
	case RequiredArgument:
		return "required", nil
	case OptionalArgument:
		return "optional", nil
	default:
		return "", &fault.MalformedDescriptionError{Reason: "invalid argument kind"}
	}
}

// convert an argument kind to its string name
func (k ArgumentKind) String() string {
	s, err := kindToString(k)
	if nil != err {
		panic(fmt.Sprintf("invalid argument kind enumeration: %d", int(k)))
	}
	return s
}

// convert both enum value and name, for debugging
func (k ArgumentKind) GoString() string {
	return fmt.Sprintf("<ArgumentKind#%d:%q>", int(k), k.String())
}

// internal conversion
func typeToString(v ValueType) (string, error) {
	switch v {
	case Untyped:
		return "", nil
	case Integer:
		return "int", nil
	case Boolean:
		return "bool", nil
	case String:
		return "string", nil
	default:
		return "", &fault.MalformedDescriptionError{Reason: "invalid value type"}
	}
}

// convert a type name from a description string to a value type
func typeFromString(in string) (ValueType, error) {
	switch in {
	case "int":
		return Integer, nil
	case "bool":
		return Boolean, nil
	case "string":
		return String, nil
	default:
		return Untyped, &fault.MalformedDescriptionError{Reason: "unknown value type: " + in}
	}
}

// convert a value type to its description-string name
func (v ValueType) String() string {
	s, err := typeToString(v)
	if nil != err {
		panic(fmt.Sprintf("invalid value type enumeration: %d", int(v)))
	}
	return s
}

// convert both enum value and name, for debugging
func (v ValueType) GoString() string {
	return fmt.Sprintf("<ValueType#%d:%q>", int(v), v.String())
}

// HasArgument - true if the option consumes an argument when matched
func (s *Spec) HasArgument() bool {
	return NoArgument != s.Kind
}
