// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cmdline_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/commandline/cmdline"
)

func TestUsage(t *testing.T) {
	c, err := cmdline.New(
		"usage: pkg-options [options] packages...",
		[]string{
			":help,h:display this help and exit",
			"*:include,I=string:add an include path",
			":colour,c?string,auto:when to use colours",
			":recursive:scan directories recursively",
		},
	)
	assert.Nil(t, err, "table build error")

	buffer := &bytes.Buffer{}
	c.Usage(buffer)
	out := buffer.String()

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Equal(t, 5, len(lines), "banner plus one line per option")
	assert.Equal(t, "usage: pkg-options [options] packages...", lines[0], "wrong banner")

	// declared names and help appear verbatim, in declaration order
	assert.Contains(t, lines[1], "--help", "missing long name")
	assert.Contains(t, lines[1], "-h", "missing short name")
	assert.Contains(t, lines[1], "display this help and exit", "missing help text")

	assert.Contains(t, lines[2], "--include=STRING", "missing argument hint")
	assert.Contains(t, lines[2], "-I", "missing short name")

	assert.Contains(t, lines[3], "--colour[=STRING]", "missing optional hint")
	assert.Contains(t, lines[3], `(default: "auto")`, "missing default")

	assert.Contains(t, lines[4], "--recursive", "missing long name")
	assert.NotContains(t, lines[4], "=", "no-argument option must have no hint")
}

// rendering is stable across calls
func TestUsageStable(t *testing.T) {
	c, err := cmdline.New("usage: test", []string{":verbose,v", ":output,o=string"})
	assert.Nil(t, err, "table build error")

	first := &bytes.Buffer{}
	second := &bytes.Buffer{}
	c.Usage(first)
	c.Usage(second)
	assert.Equal(t, first.String(), second.String(), "unstable rendering")
}
