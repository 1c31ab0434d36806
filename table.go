// Copyright 2011 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package fjson

import (
	"github.com/fracturedjson/fjson/internal/keytable"
)

// BuildGlobalTableFromKeys serializes keys, in the given order, as a global
// keys table suitable for WithGlobalTable.
func BuildGlobalTableFromKeys(keys []string) ([]byte, error) {
	return keytable.FromKeys(keys)
}

// BuildGlobalTableFromJSON walks v, counts object-key occurrences, and
// serializes a global keys table of the most frequently occurring keys,
// sorted by descending count (ties broken by first-encounter order). A
// maxCount <= 0 keeps every qualifying key; an occurrenceCutoff <= 0 keeps
// every key regardless of frequency.
func BuildGlobalTableFromJSON(v Value, maxCount, occurrenceCutoff int) ([]byte, error) {
	return keytable.FromJSON(v, maxCount, occurrenceCutoff)
}
