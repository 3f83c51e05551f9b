// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/commandline/configset"
)

func TestScalarOverwrite(t *testing.T) {
	conf := configset.New()

	assert.False(t, conf.Has("output"), "empty store has a key")

	conf.Set("output", "a.out")
	conf.Set("output", "b.out")

	value, ok := conf.GetString("output")
	assert.True(t, ok, "missing key")
	assert.Equal(t, "b.out", value, "last write should win")
}

func TestAppend(t *testing.T) {
	conf := configset.New()

	conf.Append("include", "/a")
	conf.Append("include", "/b")
	conf.Append("include", "/c")

	list, ok := conf.GetStrings("include")
	assert.True(t, ok, "missing list")
	assert.Equal(t, []string{"/a", "/b", "/c"}, list, "wrong list content")
}

func TestAppendReplacesScalar(t *testing.T) {
	conf := configset.New()

	conf.Set("include", "/stale")
	conf.Append("include", "/a")

	list, ok := conf.GetStrings("include")
	assert.True(t, ok, "missing list")
	assert.Equal(t, []string{"/a"}, list, "scalar must be replaced by a fresh list")
}

func TestTypedAccessors(t *testing.T) {
	conf := configset.New()

	conf.Set("jobs", "4")
	conf.Set("workers", 8)
	conf.Set("scale", 2.0)
	conf.Set("verbose", true)
	conf.Set("follow", "False")
	conf.Set("name", "pkg")

	n, ok := conf.GetInt("jobs")
	assert.True(t, ok, "jobs not an int")
	assert.Equal(t, int64(4), n, "wrong jobs value")

	n, ok = conf.GetInt("workers")
	assert.True(t, ok, "workers not an int")
	assert.Equal(t, int64(8), n, "wrong workers value")

	n, ok = conf.GetInt("scale")
	assert.True(t, ok, "scale not an int")
	assert.Equal(t, int64(2), n, "wrong scale value")

	b, ok := conf.GetBool("verbose")
	assert.True(t, ok, "verbose not a bool")
	assert.True(t, b, "wrong verbose value")

	b, ok = conf.GetBool("follow")
	assert.True(t, ok, "follow not a bool")
	assert.False(t, b, "wrong follow value")

	_, ok = conf.GetInt("name")
	assert.False(t, ok, "name accepted as int")

	_, ok = conf.GetBool("name")
	assert.False(t, ok, "name accepted as bool")

	_, ok = conf.GetString("missing")
	assert.False(t, ok, "missing key returned a value")
}

func TestKeys(t *testing.T) {
	conf := configset.New()

	conf.Set("zeta", "1")
	conf.Set("alpha", "2")
	conf.Append("mid", "3")

	assert.Equal(t, []string{"alpha", "mid", "zeta"}, conf.Keys(), "keys must be sorted")
}
