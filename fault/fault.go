// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
)

// MalformedDescriptionError - an option description string does not
// follow the declaration grammar
type MalformedDescriptionError struct {
	Source string // the complete description string as supplied
	Reason string
}

// DuplicateOptionError - two descriptions in one table share a long or
// short name
type DuplicateOptionError struct {
	Name string
}

// UnknownOptionError - a command-line token references a long or short
// name absent from the table
type UnknownOptionError struct {
	Name string
}

// MissingArgumentError - an option with a mandatory argument was the
// last token and nothing followed
type MissingArgumentError struct {
	Name string
}

// TypeMismatchError - an argument's text failed its declared type check
type TypeMismatchError struct {
	Name  string
	Value string
	Type  string
}

// MissingRequiredOptionError - a required option never received a
// value, detected after the whole vector was scanned
type MissingRequiredOptionError struct {
	Name string
}

// ConfigurationError - a configuration file could not be loaded
type ConfigurationError struct {
	File   string
	Reason string
}

// the error interface methods
func (e *MalformedDescriptionError) Error() string {
	return fmt.Sprintf("malformed option description: %q: %s", e.Source, e.Reason)
}
func (e *DuplicateOptionError) Error() string {
	return fmt.Sprintf("duplicate option: %q", e.Name)
}
func (e *UnknownOptionError) Error() string {
	return fmt.Sprintf("unknown option: %q", e.Name)
}
func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("option %q needs an argument", e.Name)
}
func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("option %q: %q is not a valid %s", e.Name, e.Value, e.Type)
}
func (e *MissingRequiredOptionError) Error() string {
	return fmt.Sprintf("required option %q is missing", e.Name)
}
func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration file %q: %s", e.File, e.Reason)
}

// determine the class of an error
func IsErrMalformedDescription(e error) bool { _, ok := e.(*MalformedDescriptionError); return ok }
func IsErrDuplicateOption(e error) bool      { _, ok := e.(*DuplicateOptionError); return ok }
func IsErrUnknownOption(e error) bool        { _, ok := e.(*UnknownOptionError); return ok }
func IsErrMissingArgument(e error) bool      { _, ok := e.(*MissingArgumentError); return ok }
func IsErrTypeMismatch(e error) bool         { _, ok := e.(*TypeMismatchError); return ok }
func IsErrMissingRequiredOption(e error) bool {
	_, ok := e.(*MissingRequiredOptionError)
	return ok
}
func IsErrConfiguration(e error) bool { _, ok := e.(*ConfigurationError); return ok }
