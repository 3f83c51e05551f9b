// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cmdline

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/commandline/fault"
	"github.com/bitmark-inc/commandline/option"
)

// CommandLine - an ordered table of compiled option specifications
//
// built once, read-only during matching
type CommandLine struct {
	banner  string
	options []*option.Spec
	longs   map[string]*option.Spec
	shorts  map[string]*option.Spec
	log     *logger.L
}

// New - compile a list of option descriptions into a table
//
// Descriptions are compiled in order; the first malformed one aborts
// the build.  Long and short names must be unique across the table.
func New(banner string, descriptions []string) (*CommandLine, error) {

	c := &CommandLine{
		banner:  banner,
		options: make([]*option.Spec, 0, len(descriptions)),
		longs:   make(map[string]*option.Spec),
		shorts:  make(map[string]*option.Spec),
	}

	for _, description := range descriptions {
		spec, err := option.Compile(description)
		if nil != err {
			return nil, err
		}
		if _, ok := c.longs[spec.Long]; ok {
			return nil, &fault.DuplicateOptionError{Name: spec.Long}
		}
		c.longs[spec.Long] = spec
		if 0 != len(spec.Short) {
			if _, ok := c.shorts[spec.Short]; ok {
				return nil, &fault.DuplicateOptionError{Name: spec.Short}
			}
			c.shorts[spec.Short] = spec
		}
		c.options = append(c.options, spec)
	}

	return c, nil
}

// SetLogger - attach a tagged logging channel
//
// optional: the table works without one, so the library is usable
// before logger.Initialise
func (c *CommandLine) SetLogger(log *logger.L) {
	c.log = log
}

// Options - the compiled specifications in declaration order
func (c *CommandLine) Options() []*option.Spec {
	return c.options
}

// Banner - the first line of the usage output
func (c *CommandLine) Banner() string {
	return c.banner
}
