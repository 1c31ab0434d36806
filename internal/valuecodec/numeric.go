// Copyright 2011 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package valuecodec

import (
	"math"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"

	"github.com/fracturedjson/fjson/internal/bytestream"
	"github.com/fracturedjson/fjson/internal/jsonvalue"
)

// ErrNonFiniteNumber is returned for NaN/±Inf, which are outside the
// accepted JSON number domain.
var ErrNonFiniteNumber = errors.New("valuecodec: non-finite number")

// f32SmallestNormal and f32LargestExactInteger bound the conservative band
// within which a float64 may be stored as an f32: the smallest positive
// normal IEEE-754 single and 2^24, the top of the range in which every
// integer is exactly representable as an f32. Inside the band, canBeF32
// additionally requires the value to survive the f32 conversion unchanged.
const (
	f32SmallestNormal      = 1.1754944e-38
	f32LargestExactInteger = 16777216.0
)

// fitsInRange reports whether v fits in the inclusive [lo, hi] range for T,
// used by the signed branches of the integer-narrowing cascade below so they
// do not each repeat the same comparison shape.
func fitsInRange[T constraints.Integer](v int64, lo, hi T) bool {
	return int64(lo) <= v && v <= int64(hi)
}

// writeInteger emits the narrowest integer tag for n, preferring unsigned
// tags for non-negative values.
func writeInteger(s *bytestream.Stream, n jsonvalue.Number) error {
	if n.Kind == jsonvalue.KindUint {
		return writeUnsigned(s, n.U)
	}
	v := n.I
	if v == 0 {
		s.WriteU8(byte(TagIntZero))
		return nil
	}
	if v > 0 {
		return writeUnsigned(s, uint64(v))
	}
	switch {
	case fitsInRange(v, int64(math.MinInt8), int64(-1)):
		s.WriteU8(byte(TagIntI8))
		s.WriteI8(int8(v))
	case fitsInRange(v, int64(math.MinInt16), int64(-1)):
		s.WriteU8(byte(TagIntI16))
		s.WriteI16(int16(v))
	case fitsInRange(v, int64(math.MinInt32), int64(-1)):
		s.WriteU8(byte(TagIntI32))
		s.WriteI32(int32(v))
	default:
		s.WriteU8(byte(TagIntI64))
		s.WriteI64(v)
	}
	return nil
}

func writeUnsigned(s *bytestream.Stream, v uint64) error {
	switch {
	case v == 0:
		s.WriteU8(byte(TagIntZero))
	case v <= 0xFF:
		s.WriteU8(byte(TagIntU8))
		s.WriteU8(uint8(v))
	case v <= 0xFFFF:
		s.WriteU8(byte(TagIntU16))
		s.WriteU16(uint16(v))
	case v <= 0xFFFFFFFF:
		s.WriteU8(byte(TagIntU32))
		s.WriteU32(uint32(v))
	default:
		s.WriteU8(byte(TagIntU64))
		s.WriteU64(v)
	}
	return nil
}

func readInteger(s *bytestream.Stream, tag Tag) (jsonvalue.Number, error) {
	switch tag {
	case TagIntZero:
		return jsonvalue.Int(0), nil
	case TagIntU8:
		v, err := s.ReadU8()
		return jsonvalue.Int(int64(v)), err
	case TagIntI8:
		v, err := s.ReadI8()
		return jsonvalue.Int(int64(v)), err
	case TagIntU16:
		v, err := s.ReadU16()
		return jsonvalue.Int(int64(v)), err
	case TagIntI16:
		v, err := s.ReadI16()
		return jsonvalue.Int(int64(v)), err
	case TagIntU32:
		v, err := s.ReadU32()
		return jsonvalue.Int(int64(v)), err
	case TagIntI32:
		v, err := s.ReadI32()
		return jsonvalue.Int(int64(v)), err
	case TagIntU64:
		v, err := s.ReadU64()
		if v > math.MaxInt64 {
			return jsonvalue.Uint(v), err
		}
		return jsonvalue.Int(int64(v)), err
	case TagIntI64:
		v, err := s.ReadI64()
		return jsonvalue.Int(v), err
	default:
		return jsonvalue.Number{}, errors.Wrapf(ErrBadTypeTag, "tag %q is not an integer tag", byte(tag))
	}
}

// writeFloat emits the 0/f32/f64 tag for f per the band rule below.
func writeFloat(s *bytestream.Stream, f float64) error {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return ErrNonFiniteNumber
	}
	if f == 0.0 {
		s.WriteU8(byte(TagFloatZero))
		return nil
	}
	if canBeF32(f) {
		s.WriteU8(byte(TagFloatF32))
		s.WriteF32(float32(f))
		return nil
	}
	s.WriteU8(byte(TagFloatF64))
	s.WriteF64(f)
	return nil
}

// canBeF32 reports whether f's magnitude lies in the conservative
// [smallest-normal-f32, largest-exact-integer-f32] band and converts to f32
// and back without loss, which is what guarantees losslessness. Do not
// widen this band.
func canBeF32(f float64) bool {
	abs := math.Abs(f)
	return abs >= f32SmallestNormal && abs <= f32LargestExactInteger &&
		float64(float32(f)) == f
}

func readFloat(s *bytestream.Stream, tag Tag) (float64, error) {
	switch tag {
	case TagFloatZero:
		return 0.0, nil
	case TagFloatF32:
		v, err := s.ReadF32()
		return float64(v), err
	case TagFloatF64:
		return s.ReadF64()
	default:
		return 0, errors.Wrapf(ErrBadTypeTag, "tag %q is not a float tag", byte(tag))
	}
}
