// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cmdline

import (
	"fmt"
	"io"
	"strings"

	"github.com/bitmark-inc/commandline/option"
)

// Usage - write the banner and the option table to a sink
//
// One line per option in declaration order: short and long forms, an
// argument hint derived from the declared kind and type, the help
// text, and the default if one was declared.
func (c *CommandLine) Usage(w io.Writer) {

	fmt.Fprintf(w, "%s\n", c.banner)

	for _, opt := range c.options {

		names := "    "
		if 0 != len(opt.Short) {
			names = "-" + opt.Short + ", "
		}
		names += "--" + opt.Long + argumentHint(opt)

		help := opt.Help
		if opt.HasDefault {
			help = strings.TrimRight(help+" ", " ") + fmt.Sprintf(" (default: %q)", opt.Default)
			help = strings.TrimLeft(help, " ")
		}

		fmt.Fprintf(w, "  %-30s %s\n", names, help)
	}
}

// the argument hint shown after the long name
func argumentHint(opt *option.Spec) string {
	switch opt.Kind {
	case option.RequiredArgument:
		return "=" + strings.ToUpper(opt.Type.String())
	case option.OptionalArgument:
		return "[=" + strings.ToUpper(opt.Type.String()) + "]"
	default:
		return ""
	}
}
