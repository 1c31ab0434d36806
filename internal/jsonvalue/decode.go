// Copyright 2011 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package jsonvalue

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// Parse decodes textual JSON into a Value tree, preserving object key order
// and classifying each number's integer-ness from its literal form rather
// than re-deriving it from a float64. It is built on encoding/json's token
// stream rather than Unmarshal, since Unmarshal's map[string]any loses both
// key order and the int/float distinction.
func Parse(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	v, err := parseValue(dec)
	if err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, errors.New("jsonvalue: trailing data after JSON value")
	}
	return v, nil
}

func parseValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, errors.Wrap(err, "jsonvalue: reading token")
	}
	return parseFromToken(dec, tok)
}

func parseFromToken(dec *json.Decoder, tok json.Token) (Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return parseObject(dec)
		case '[':
			return parseArray(dec)
		default:
			return nil, errors.Newf("jsonvalue: unexpected delimiter %q", t)
		}
	case nil:
		return nil, nil
	case bool:
		return t, nil
	case string:
		return t, nil
	case json.Number:
		return parseNumber(t)
	default:
		return nil, errors.Newf("jsonvalue: unsupported token %v", t)
	}
}

func parseObject(dec *json.Decoder) (Value, error) {
	obj := NewObject()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, errors.Wrap(err, "jsonvalue: reading object key")
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, errors.Newf("jsonvalue: object key is not a string: %v", keyTok)
		}
		val, err := parseValue(dec)
		if err != nil {
			return nil, err
		}
		obj.Set(key, val)
	}
	if _, err := dec.Token(); err != nil { // consume closing '}'
		return nil, errors.Wrap(err, "jsonvalue: closing object")
	}
	return obj, nil
}

func parseArray(dec *json.Decoder) (Value, error) {
	arr := NewArray()
	for dec.More() {
		val, err := parseValue(dec)
		if err != nil {
			return nil, err
		}
		arr.Append(val)
	}
	if _, err := dec.Token(); err != nil { // consume closing ']'
		return nil, errors.Wrap(err, "jsonvalue: closing array")
	}
	return arr, nil
}

// parseNumber classifies a JSON number literal the way serde_json does:
// no '.'/'e'/'E' and it fits in an int64 or uint64 -> integer; otherwise a
// float. This mirrors frac_json_rust/json_types/value.rs's as_i64/as_u64/
// as_f64 cascade.
func parseNumber(n json.Number) (Value, error) {
	s := string(n)
	if !strings.ContainsAny(s, ".eE") {
		if iv, err := strconv.ParseInt(s, 10, 64); err == nil {
			return Int(iv), nil
		}
		if uv, err := strconv.ParseUint(s, 10, 64); err == nil {
			return Uint(uv), nil
		}
		// Integer literal too large for uint64: fall through to float64,
		// same as serde_json's Number would once both as_i64/as_u64 fail.
	}
	fv, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, errors.Wrapf(err, "jsonvalue: invalid number literal %q", s)
	}
	return Float(fv), nil
}
