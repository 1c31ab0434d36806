// Copyright 2011 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package jsonvalue

import (
	"strconv"
	"strings"
)

// Text renders v back to canonical JSON text. It exists for the benchmark
// CLI and for test failure messages; the codec itself never needs a text
// form of a Value.
func Text(v Value) string {
	var sb strings.Builder
	writeText(&sb, v)
	return sb.String()
}

func writeText(sb *strings.Builder, v Value) {
	switch t := v.(type) {
	case nil:
		sb.WriteString("null")
	case bool:
		if t {
			sb.WriteString("true")
		} else {
			sb.WriteString("false")
		}
	case string:
		sb.WriteString(strconv.Quote(t))
	case Number:
		sb.WriteString(t.String())
	case *Array:
		sb.WriteByte('[')
		for i, item := range t.Items {
			if i > 0 {
				sb.WriteByte(',')
			}
			writeText(sb, item)
		}
		sb.WriteByte(']')
	case *Object:
		sb.WriteByte('{')
		for i, m := range t.Members {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.Quote(m.Key))
			sb.WriteByte(':')
			writeText(sb, m.Value)
		}
		sb.WriteByte('}')
	}
}
