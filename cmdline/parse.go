// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cmdline

import (
	"strings"

	"github.com/bitmark-inc/commandline/configset"
	"github.com/bitmark-inc/commandline/fault"
	"github.com/bitmark-inc/commandline/option"
)

// transient per-parse state, discarded when Parse returns
type session struct {
	conf      *configset.Set
	matched   map[string]struct{} // config keys written during this parse
	leftovers []string
}

// Parse - match an argument vector against the table
//
// arguments excludes the program name.  Matched options are written to
// conf as they are encountered; on success the positional leftovers
// are returned in their original order.  On failure the error names
// the offending option or token; values stored before the failure
// remain in conf.
func (c *CommandLine) Parse(arguments []string, conf *configset.Set) ([]string, error) {

	s := &session{
		conf:      conf,
		matched:   make(map[string]struct{}),
		leftovers: make([]string, 0, len(arguments)),
	}

	if nil != c.log {
		c.log.Debugf("parse: %d arguments", len(arguments))
	}

loop:
	for i := 0; i < len(arguments); i += 1 {
		item := arguments[i]

		switch {

		case "--" == item:
			// explicit end of options
			s.leftovers = append(s.leftovers, arguments[i+1:]...)
			break loop

		case strings.HasPrefix(item, "--"):
			name := item[2:]
			value := ""
			hasValue := false
			if n := strings.IndexByte(name, '='); n >= 0 {
				value = name[n+1:]
				name = name[:n]
				hasValue = true
			}
			opt, ok := c.longs[name]
			if !ok {
				return nil, &fault.UnknownOptionError{Name: name}
			}
			consumed, err := s.match(c, opt, value, hasValue, arguments, i)
			if nil != err {
				return nil, err
			}
			i += consumed

		case len(item) > 1 && '-' == item[0]:
			// short option cluster: -abc is -a -b -c, but a
			// character taking an argument consumes the remainder
			rest := item[1:]
			for 0 != len(rest) {
				name := rest[:1]
				rest = rest[1:]
				opt, ok := c.shorts[name]
				if !ok {
					return nil, &fault.UnknownOptionError{Name: name}
				}
				if opt.HasArgument() && 0 != len(rest) {
					_, err := s.match(c, opt, rest, true, arguments, i)
					if nil != err {
						return nil, err
					}
					break
				}
				consumed, err := s.match(c, opt, "", false, arguments, i)
				if nil != err {
					return nil, err
				}
				i += consumed
			}

		default:
			s.leftovers = append(s.leftovers, item)
		}
	}

	// absence defaults: the "=type,default" fallback for options that
	// never appeared; a value already present (e.g. seeded from a
	// configuration file) is left alone
	for _, opt := range c.options {
		if !opt.HasDefault || option.RequiredArgument != opt.Kind {
			continue
		}
		if _, done := s.matched[opt.ConfigKey]; done {
			continue
		}
		if s.conf.Has(opt.ConfigKey) {
			continue
		}
		s.store(opt, opt.Default)
	}

	// required check, deferred so every other option got its chance to
	// match; first violation in declaration order is reported
	for _, opt := range c.options {
		if opt.Required && !s.conf.Has(opt.ConfigKey) {
			return nil, &fault.MissingRequiredOptionError{Name: opt.Long}
		}
	}

	return s.leftovers, nil
}

// consume and store one matched option
//
// inline is the attached value ("--name=value" or clustered "-xvalue")
// when hasInline is set.  Returns how many extra vector tokens were
// consumed (0 or 1).
func (s *session) match(c *CommandLine, opt *option.Spec, inline string, hasInline bool, arguments []string, i int) (int, error) {

	consumed := 0

	switch opt.Kind {

	case option.NoArgument:
		// an unexpected inline value is ignored, the match itself is
		// what counts
		if nil != c.log {
			c.log.Debugf("matched flag: --%s", opt.Long)
		}
		s.store(opt, true)

	case option.RequiredArgument:
		value := inline
		if !hasInline {
			if i+1 >= len(arguments) {
				return 0, &fault.MissingArgumentError{Name: opt.Long}
			}
			value = arguments[i+1]
			consumed = 1
		}
		if err := opt.CheckArgument(value); nil != err {
			return 0, err
		}
		if nil != c.log {
			c.log.Debugf("matched option: --%s = %q", opt.Long, value)
		}
		s.store(opt, value)

	case option.OptionalArgument:
		value := opt.Default
		if hasInline {
			if err := opt.CheckArgument(inline); nil != err {
				return 0, err
			}
			value = inline
		}
		if nil != c.log {
			c.log.Debugf("matched option: --%s = %q", opt.Long, value)
		}
		s.store(opt, value)
	}

	return consumed, nil
}

// write one value under the option's config key
func (s *session) store(opt *option.Spec, value interface{}) {
	if opt.Multiple {
		switch v := value.(type) {
		case string:
			s.conf.Append(opt.ConfigKey, v)
		case bool:
			s.conf.Append(opt.ConfigKey, "true")
		}
	} else {
		s.conf.Set(opt.ConfigKey, value)
	}
	s.matched[opt.ConfigKey] = struct{}{}
}
