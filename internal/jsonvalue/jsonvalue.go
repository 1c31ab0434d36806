// Copyright 2011 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package jsonvalue is the JSON abstract-syntax-tree collaborator the codec
// depends on: a recursive value tree that preserves object key order and
// distinguishes integers from floats, the two properties encoding/json's own
// map[string]any/float64 model does not give you for free.
package jsonvalue

import (
	"fmt"
	"math"
)

// NumberKind classifies a Number as it was parsed or constructed, so the
// value codec can choose the narrowest integer or float representation
// without re-deriving integer-ness from a float64 (which would lose
// precision for values outside float64's exact integer range).
type NumberKind int

const (
	// KindInt holds values representable as a signed 64-bit integer.
	KindInt NumberKind = iota
	// KindUint holds non-negative values too large for int64 but not for uint64.
	KindUint
	// KindFloat holds any value with a fractional part or exponent, or an
	// integer literal too large for uint64.
	KindFloat
)

// Number is a JSON number in one of three representations. Exactly the
// fields matching Kind are meaningful.
type Number struct {
	Kind NumberKind
	I    int64
	U    uint64
	F    float64
}

// Int constructs an integer Number.
func Int(v int64) Number { return Number{Kind: KindInt, I: v} }

// Uint constructs a Number for values beyond int64's range.
func Uint(v uint64) Number { return Number{Kind: KindUint, U: v} }

// Float constructs a floating-point Number.
func Float(v float64) Number { return Number{Kind: KindFloat, F: v} }

// IsInteger reports whether this number was classified as an integer
// rather than a float.
func (n Number) IsInteger() bool { return n.Kind == KindInt || n.Kind == KindUint }

func (n Number) String() string {
	switch n.Kind {
	case KindInt:
		return fmt.Sprintf("%d", n.I)
	case KindUint:
		return fmt.Sprintf("%d", n.U)
	default:
		return fmt.Sprintf("%v", n.F)
	}
}

// Member is a single (key, value) pair inside an Object, in caller order.
type Member struct {
	Key   string
	Value Value
}

// Object is an ordered sequence of distinct-keyed members. Order is
// preserved exactly as supplied by the caller; the codec neither sorts
// nor deduplicates it.
type Object struct {
	Members []Member
}

// NewObject returns an empty Object.
func NewObject() *Object { return &Object{} }

// Set appends a member. It does not check for duplicate keys; callers are
// responsible for supplying distinct keys.
func (o *Object) Set(key string, v Value) *Object {
	o.Members = append(o.Members, Member{Key: key, Value: v})
	return o
}

// Get returns the value for key and whether it was found. Looks up in
// member order (first match wins).
func (o *Object) Get(key string) (Value, bool) {
	for _, m := range o.Members {
		if m.Key == key {
			return m.Value, true
		}
	}
	return nil, false
}

// Array is an ordered sequence of values.
type Array struct {
	Items []Value
}

// NewArray returns an empty Array, optionally seeded with items.
func NewArray(items ...Value) *Array { return &Array{Items: items} }

// Append appends a value.
func (a *Array) Append(v Value) *Array {
	a.Items = append(a.Items, v)
	return a
}

// Value is the recursive JSON value variant: nil (null), bool, Number,
// string, *Array, or *Object.
type Value any

// Equal reports whether a and b represent the same JSON value, comparing
// floats by exact bit pattern rather than numeric equality.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case nil:
		return b == nil
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case Number:
		bv, ok := b.(Number)
		if !ok {
			return false
		}
		return numbersEqual(av, bv)
	case *Array:
		bv, ok := b.(*Array)
		if !ok || len(av.Items) != len(bv.Items) {
			return false
		}
		for i := range av.Items {
			if !Equal(av.Items[i], bv.Items[i]) {
				return false
			}
		}
		return true
	case *Object:
		bv, ok := b.(*Object)
		if !ok || len(av.Members) != len(bv.Members) {
			return false
		}
		for i := range av.Members {
			if av.Members[i].Key != bv.Members[i].Key {
				return false
			}
			if !Equal(av.Members[i].Value, bv.Members[i].Value) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func numbersEqual(a, b Number) bool {
	toFloat := func(n Number) (float64, bool) {
		if n.Kind == KindFloat {
			return n.F, true
		}
		return 0, false
	}
	if af, aIsFloat := toFloat(a); aIsFloat {
		bf, bIsFloat := toFloat(b)
		if !bIsFloat {
			return false
		}
		// Exact bit comparison, so NaN (not accepted by this codec, but
		// harmless to compare) and ±0 are distinguished like IEEE-754
		// requires for a round-trip check.
		return floatBitsEqual(af, bf)
	}
	// Both integral: normalize through a common comparable form. Kind may
	// differ (Int vs Uint) for the same numeric value at the int64/uint64
	// boundary, so compare the actual magnitude and sign instead of Kind.
	av, aOK := asInt128(a)
	bv, bOK := asInt128(b)
	return aOK && bOK && av == bv
}

// asInt128 widens Int/Uint numbers into a pair that can be compared without
// sign-related overflow at the int64/uint64 boundary.
func asInt128(n Number) (i128, bool) {
	switch n.Kind {
	case KindInt:
		if n.I < 0 {
			return i128{neg: true, mag: uint64(-n.I)}, true
		}
		return i128{mag: uint64(n.I)}, true
	case KindUint:
		return i128{mag: n.U}, true
	default:
		return i128{}, false
	}
}

type i128 struct {
	neg bool
	mag uint64
}

func floatBitsEqual(a, b float64) bool {
	return math.Float64bits(a) == math.Float64bits(b)
}
