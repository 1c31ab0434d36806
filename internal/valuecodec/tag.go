// Copyright 2011 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package valuecodec implements recursive JSON value encoding: a single
// type-tag byte per value, size-class selection for containers and strings,
// and the numeric downcast policy.
package valuecodec

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"

	"github.com/fracturedjson/fjson/internal/bytestream"
)

// Category is the broad kind a type tag belongs to.
type Category int

const (
	CategoryObject Category = iota
	CategoryArray
	CategoryString
	CategoryInteger
	CategoryFloat
	CategoryBool
	CategoryNull
)

// Tag is one byte of the closed type-tag alphabet.
type Tag byte

// The full type-tag alphabet. Object/array/string each have four size
// classes (empty, u8, u16, u32); integers and floats are tagged directly by
// width; bool and null need no payload.
const (
	TagEmptyObject Tag = 'o'
	TagSmallObject Tag = 'O'
	TagBigObject   Tag = 'p'
	TagLongObject  Tag = 'P'

	TagEmptyArray Tag = 'a'
	TagSmallArray Tag = 'A'
	TagBigArray   Tag = 'c'
	TagLongArray  Tag = 'C'

	TagEmptyString Tag = 's'
	TagSmallString Tag = 'S'
	TagBigString   Tag = 't'
	TagLongString  Tag = 'T'

	TagIntZero Tag = '0'
	TagIntI8   Tag = 'i'
	TagIntU8   Tag = 'I'
	TagIntI16  Tag = 'j'
	TagIntU16  Tag = 'J'
	TagIntI32  Tag = 'k'
	TagIntU32  Tag = 'K'
	TagIntI64  Tag = 'l'
	TagIntU64  Tag = 'L'

	TagFloatZero Tag = 'f'
	TagFloatF32  Tag = 'F'
	TagFloatF64  Tag = 'd'

	TagBoolFalse Tag = 'b'
	TagBoolTrue  Tag = 'B'

	TagNull Tag = 'z'
)

// ErrBadTypeTag is returned when a byte in the tag position matches no
// entry in the alphabet above.
var ErrBadTypeTag = errors.New("valuecodec: bad type tag")

// Category classifies tag, or returns ErrBadTypeTag.
func (tag Tag) Category() (Category, error) {
	switch tag {
	case TagEmptyObject, TagSmallObject, TagBigObject, TagLongObject:
		return CategoryObject, nil
	case TagEmptyArray, TagSmallArray, TagBigArray, TagLongArray:
		return CategoryArray, nil
	case TagEmptyString, TagSmallString, TagBigString, TagLongString:
		return CategoryString, nil
	case TagIntZero, TagIntI8, TagIntU8, TagIntI16, TagIntU16, TagIntI32, TagIntU32, TagIntI64, TagIntU64:
		return CategoryInteger, nil
	case TagFloatZero, TagFloatF32, TagFloatF64:
		return CategoryFloat, nil
	case TagBoolFalse, TagBoolTrue:
		return CategoryBool, nil
	case TagNull:
		return CategoryNull, nil
	default:
		return 0, errors.Wrapf(ErrBadTypeTag, "byte %#x", redact.Safe(byte(tag)))
	}
}

// ReadTag reads and classifies the next type-tag byte.
func ReadTag(s *bytestream.Stream) (Tag, Category, error) {
	b, err := s.ReadU8()
	if err != nil {
		return 0, 0, err
	}
	tag := Tag(b)
	cat, err := tag.Category()
	return tag, cat, err
}
