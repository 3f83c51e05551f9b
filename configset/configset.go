// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configset

import (
	"sort"
	"strconv"
	"strings"

	cache "github.com/patrickmn/go-cache"
)

// Set - an associative store of configuration values
type Set struct {
	store *cache.Cache
}

// New - create an empty store
func New() *Set {
	return &Set{
		store: cache.New(cache.NoExpiration, 0),
	}
}

// Set - store a scalar, overwriting any previous value
func (s *Set) Set(key string, value interface{}) {
	s.store.Set(key, value, cache.NoExpiration)
}

// Append - add one value to the list under key
//
// The first append creates the list; a scalar already stored under the
// key is replaced by a fresh list.
func (s *Set) Append(key string, value string) {
	list, ok := s.GetStrings(key)
	if !ok {
		list = nil
	}
	s.store.Set(key, append(list, value), cache.NoExpiration)
}

// Has - true if any value is stored under key
func (s *Set) Has(key string) bool {
	_, ok := s.store.Get(key)
	return ok
}

// Get - the raw stored value
func (s *Set) Get(key string) (interface{}, bool) {
	return s.store.Get(key)
}

// Keys - all stored keys in sorted order
func (s *Set) Keys() []string {
	items := s.store.Items()
	keys := make([]string, 0, len(items))
	for key := range items {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// GetString - a scalar as text
func (s *Set) GetString(key string) (string, bool) {
	value, ok := s.store.Get(key)
	if !ok {
		return "", false
	}
	text, ok := value.(string)
	return text, ok
}

// GetInt - a scalar as a signed integer
//
// Accepts stored text (from the matcher) as well as native numbers
// (from a configuration file).
func (s *Set) GetInt(key string) (int64, bool) {
	value, ok := s.store.Get(key)
	if !ok {
		return 0, false
	}
	switch n := value.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case float64:
		return int64(n), true
	case string:
		i, err := strconv.ParseInt(n, 10, 64)
		if nil == err {
			return i, true
		}
	}
	return 0, false
}

// GetBool - a scalar as a boolean
//
// Accepts a native bool (a matched no-argument option) or the
// recognised text spellings of a bool-typed argument.
func (s *Set) GetBool(key string) (bool, bool) {
	value, ok := s.store.Get(key)
	if !ok {
		return false, false
	}
	switch b := value.(type) {
	case bool:
		return b, true
	case string:
		switch strings.ToLower(b) {
		case "1", "true":
			return true, true
		case "0", "false":
			return false, true
		}
	}
	return false, false
}

// GetStrings - the accumulated list under key
func (s *Set) GetStrings(key string) ([]string, bool) {
	value, ok := s.store.Get(key)
	if !ok {
		return nil, false
	}
	switch list := value.(type) {
	case []string:
		return list, true
	case []interface{}:
		strs := make([]string, 0, len(list))
		for _, item := range list {
			text, ok := item.(string)
			if !ok {
				return nil, false
			}
			strs = append(strs, text)
		}
		return strs, true
	}
	return nil, false
}
