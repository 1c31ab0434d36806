// Copyright 2011 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package keytable

import (
	"sort"

	"github.com/fracturedjson/fjson/internal/jsonvalue"
)

// FromKeys returns a global table's serialized bytes containing exactly the
// given keys, in the given order.
func FromKeys(keys []string) ([]byte, error) {
	return SerializeGlobal(keys)
}

// FromJSON walks v, counts how often each object key occurs, and returns a
// global table's serialized bytes containing the keys sorted by descending
// occurrence count (ties broken by first-encounter order), optionally
// truncated to maxCount entries and/or filtered to entries occurring at
// least occurrenceCutoff times. maxCount <= 0 means "no limit"; the same
// for occurrenceCutoff (a zero cutoff keeps every key, matching
// frac_json_rust/keys_table_utils.rs's global_table_from_json_limited).
func FromJSON(v jsonvalue.Value, maxCount, occurrenceCutoff int) ([]byte, error) {
	counts := map[string]int{}
	order := map[string]int{}
	next := 0
	walk(v, counts, order, &next)

	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		ci, cj := counts[keys[i]], counts[keys[j]]
		if ci != cj {
			return ci > cj
		}
		return order[keys[i]] < order[keys[j]]
	})

	if occurrenceCutoff > 0 {
		filtered := keys[:0:0]
		for _, k := range keys {
			if counts[k] >= occurrenceCutoff {
				filtered = append(filtered, k)
			}
		}
		keys = filtered
	}
	if maxCount > 0 && len(keys) > maxCount {
		keys = keys[:maxCount]
	}
	return SerializeGlobal(keys)
}

func walk(v jsonvalue.Value, counts, order map[string]int, next *int) {
	switch t := v.(type) {
	case *jsonvalue.Array:
		for _, item := range t.Items {
			walk(item, counts, order, next)
		}
	case *jsonvalue.Object:
		for _, m := range t.Members {
			if _, ok := order[m.Key]; !ok {
				order[m.Key] = *next
				*next++
			}
			counts[m.Key]++
			walk(m.Value, counts, order, next)
		}
	}
}
