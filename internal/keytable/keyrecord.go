// Copyright 2011 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package keytable

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"

	"github.com/fracturedjson/fjson/internal/bytestream"
)

// Key-record first-byte mode boundaries.
const (
	modeImmediateExt = 0x00
	modeLocalExt      = 0x01
	modeGlobalExt     = 0x02

	tinyImmediateLo = 0x03
	tinyImmediateHi = 0x56
	tinyLocalLo     = 0x57
	tinyLocalHi     = 0xAA
	tinyGlobalLo    = 0xAB
	tinyGlobalHi    = 0xFE

	reservedByte = 0xFF

	// tinyRange is the number of distinct tiny-mode values (0x54 = 84),
	// i.e. the cutoff below which a length/index fits the tiny encoding.
	tinyRange = tinyImmediateHi - tinyImmediateLo + 1
)

// ErrBadKeyTag is returned when a key record's first byte is 0xFF or falls
// outside every known mode.
var ErrBadKeyTag = errors.New("keytable: bad key tag byte")

// ErrBadVarint is returned when a VU16 is malformed (stray bits in its
// extension bytes past the declared cap).
var ErrBadVarint = errors.New("keytable: bad varint")

// maxVU16 is the largest value representable by VU16: 16 bits, matching
// the 2-data-bit third byte (see DESIGN.md for the resolved bit width).
const maxVU16 = 0xFFFF

// WriteVU16 appends v (which must be <= maxVU16) in the shortest form: 1
// byte for v < 128, 2 bytes for v < 16384, 3 bytes otherwise.
func WriteVU16(s *bytestream.Stream, v uint32) error {
	if v > maxVU16 {
		return errors.Newf("keytable: value %d exceeds VU16 range", v)
	}
	b0 := byte(v & 0x7F)
	if v < 0x80 {
		s.WriteU8(b0)
		return nil
	}
	s.WriteU8(b0 | 0x80)
	v >>= 7
	b1 := byte(v & 0x7F)
	if v < 0x80 {
		s.WriteU8(b1)
		return nil
	}
	s.WriteU8(b1 | 0x80)
	v >>= 7
	// Only the low 2 bits may be set here; the cap guarantees v <= 3.
	s.WriteU8(byte(v))
	return nil
}

// ReadVU16 reads a VU16 value, failing with ErrBadVarint if the third byte
// carries bits outside its legal 2-bit range.
func ReadVU16(s *bytestream.Stream) (uint32, error) {
	b0, err := s.ReadU8()
	if err != nil {
		return 0, err
	}
	v := uint32(b0 & 0x7F)
	if b0&0x80 == 0 {
		return v, nil
	}
	b1, err := s.ReadU8()
	if err != nil {
		return 0, err
	}
	v |= uint32(b1&0x7F) << 7
	if b1&0x80 == 0 {
		return v, nil
	}
	b2, err := s.ReadU8()
	if err != nil {
		return 0, err
	}
	if b2 > 0x03 {
		return 0, errors.Wrapf(ErrBadVarint, "third byte %#x has bits set beyond the 2-bit cap", redact.Safe(b2))
	}
	v |= uint32(b2) << 14
	return v, nil
}

// WriteKeyRecord emits the key reference for key, given its resolved
// location and index. For an immediate (not-yet-seen) key, pass
// immediate=true; loc and index are then ignored. Resolve has already
// appended such a key to the local table, so callers must not call
// NoteInline for it again; WriteKeyRecord only emits bytes.
func WriteKeyRecord(s *bytestream.Stream, key string, loc Location, index int, immediate bool) error {
	if immediate {
		return writeImmediate(s, key)
	}
	switch loc {
	case Local:
		return writeRef(s, index, tinyLocalLo, tinyLocalHi, modeLocalExt)
	case Global:
		return writeRef(s, index, tinyGlobalLo, tinyGlobalHi, modeGlobalExt)
	default:
		return errors.Newf("keytable: unknown location %d", loc)
	}
}

func writeImmediate(s *bytestream.Stream, key string) error {
	n := len(key)
	if n < tinyRange {
		s.WriteU8(byte(tinyImmediateLo + n))
		s.WriteString(key)
		return nil
	}
	s.WriteU8(modeImmediateExt)
	if err := WriteVU16(s, uint32(n)); err != nil {
		return err
	}
	s.WriteString(key)
	return nil
}

func writeRef(s *bytestream.Stream, index int, tinyLo, tinyHi byte, extMode byte) error {
	if index < int(tinyHi-tinyLo+1) {
		s.WriteU8(tinyLo + byte(index))
		return nil
	}
	s.WriteU8(extMode)
	return WriteVU16(s, uint32(index))
}

// KeyRecordKind describes what ReadKeyRecord found.
type KeyRecordKind int

const (
	// KeyImmediate means the record carried the key's literal bytes.
	KeyImmediate KeyRecordKind = iota
	// KeyLocalRef means the record referenced the local table by index.
	KeyLocalRef
	// KeyGlobalRef means the record referenced the global table by index.
	KeyGlobalRef
)

// KeyRecord is one key reference as read by ReadKeyRecord. For KeyImmediate, Key holds the
// literal string and Index is unused; for the Ref kinds, Index holds the
// resolved table position and Key is empty (the caller must look it up).
type KeyRecord struct {
	Kind  KeyRecordKind
	Key   string
	Index int
}

// ReadKeyRecord reads and classifies the next key record. It
// does not touch the keys tables; callers combine it with Tables.NoteInline
// / Tables.LookupLocal / Tables.LookupGlobal as appropriate.
func ReadKeyRecord(s *bytestream.Stream) (KeyRecord, error) {
	first, err := s.ReadU8()
	if err != nil {
		return KeyRecord{}, err
	}
	switch {
	case first == modeImmediateExt:
		n, err := ReadVU16(s)
		if err != nil {
			return KeyRecord{}, err
		}
		key, err := s.ReadString(int(n))
		if err != nil {
			return KeyRecord{}, err
		}
		return KeyRecord{Kind: KeyImmediate, Key: key}, nil
	case first == modeLocalExt:
		idx, err := ReadVU16(s)
		if err != nil {
			return KeyRecord{}, err
		}
		return KeyRecord{Kind: KeyLocalRef, Index: int(idx)}, nil
	case first == modeGlobalExt:
		idx, err := ReadVU16(s)
		if err != nil {
			return KeyRecord{}, err
		}
		return KeyRecord{Kind: KeyGlobalRef, Index: int(idx)}, nil
	case first >= tinyImmediateLo && first <= tinyImmediateHi:
		n := int(first - tinyImmediateLo)
		key, err := s.ReadString(n)
		if err != nil {
			return KeyRecord{}, err
		}
		return KeyRecord{Kind: KeyImmediate, Key: key}, nil
	case first >= tinyLocalLo && first <= tinyLocalHi:
		return KeyRecord{Kind: KeyLocalRef, Index: int(first - tinyLocalLo)}, nil
	case first >= tinyGlobalLo && first <= tinyGlobalHi:
		return KeyRecord{Kind: KeyGlobalRef, Index: int(first - tinyGlobalLo)}, nil
	case first == reservedByte:
		return KeyRecord{}, errors.Wrapf(ErrBadKeyTag, "reserved byte %#x", redact.Safe(first))
	default:
		return KeyRecord{}, errors.Wrapf(ErrBadKeyTag, "byte %#x matches no key-record mode", redact.Safe(first))
	}
}
