// Copyright 2011 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package valuecodec

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"

	"github.com/fracturedjson/fjson/internal/bytestream"
)

// ErrSizeTooBig is returned when a container/string is larger than a u32 can
// address.
var ErrSizeTooBig = errors.New("valuecodec: size too big")

// sizeTags bundles the four tags for one category's size classes, in the
// order empty/u8/u16/u32.
type sizeTags struct {
	Empty, Small, Big, Long Tag
}

var (
	objectTags = sizeTags{TagEmptyObject, TagSmallObject, TagBigObject, TagLongObject}
	arrayTags  = sizeTags{TagEmptyArray, TagSmallArray, TagBigArray, TagLongArray}
	stringTags = sizeTags{TagEmptyString, TagSmallString, TagBigString, TagLongString}
)

// writeSizeClass picks the smallest size class whose size field fits n and
// writes the tag byte followed by that size field (or nothing, for empty).
func writeSizeClass(s *bytestream.Stream, n int, tags sizeTags) error {
	switch {
	case n == 0:
		s.WriteU8(byte(tags.Empty))
	case n <= 0xFF:
		s.WriteU8(byte(tags.Small))
		s.WriteU8(uint8(n))
	case n <= 0xFFFF:
		s.WriteU8(byte(tags.Big))
		s.WriteU16(uint16(n))
	case n <= 0xFFFFFFFF:
		s.WriteU8(byte(tags.Long))
		s.WriteU32(uint32(n))
	default:
		return errors.Wrapf(ErrSizeTooBig, "size %s", redact.Safe(n))
	}
	return nil
}

// readSize reads the size field matching tag's size class (0 for Empty).
func readSize(s *bytestream.Stream, tag Tag, tags sizeTags) (int, error) {
	switch tag {
	case tags.Empty:
		return 0, nil
	case tags.Small:
		v, err := s.ReadU8()
		return int(v), err
	case tags.Big:
		v, err := s.ReadU16()
		return int(v), err
	case tags.Long:
		v, err := s.ReadU32()
		return int(v), err
	default:
		return 0, errors.Wrapf(ErrBadTypeTag, "tag %q is not a size-class tag for this category", byte(tag))
	}
}
