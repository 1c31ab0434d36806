// Copyright 2011 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package bytestream implements a minimal append-only/cursor-based byte
// buffer used by the rest of the codec to read and write little-endian
// primitives without every caller re-deriving offset arithmetic.
package bytestream

import (
	"encoding/binary"
	"math"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
)

// Sentinel error kinds. Every failure the byte stream can produce is one of
// these; callers should compare with errors.Is rather than parsing messages.
var (
	ErrShortRead   = errors.New("bytestream: short read")
	ErrBadSeek     = errors.New("bytestream: bad seek")
	ErrInvalidUTF8 = errors.New("bytestream: invalid utf-8")
)

// Stream is a growable byte buffer with a read/write cursor. Writes are only
// valid when the cursor sits at the end of the buffer (append-only); reads
// consume from the cursor forward. A Stream is not safe for concurrent use.
type Stream struct {
	buf []byte
	pos int
}

// New returns an empty Stream ready for writing.
func New() *Stream {
	return &Stream{}
}

// Make wraps an existing byte slice for reading. The slice is not copied;
// callers must not mutate it while the Stream is in use.
func Make(b []byte) *Stream {
	return &Stream{buf: b}
}

// Len returns the total number of bytes in the stream.
func (s *Stream) Len() int { return len(s.buf) }

// Pos returns the current cursor position.
func (s *Stream) Pos() int { return s.pos }

// Bytes returns the underlying buffer. Callers must not retain it past
// further writes to the Stream.
func (s *Stream) Bytes() []byte { return s.buf }

// Seek repositions the cursor within [0, Len()].
func (s *Stream) Seek(pos int) error {
	if pos < 0 || pos > len(s.buf) {
		return errors.Wrapf(ErrBadSeek, "seek to %s, only %s bytes in stream",
			redact.Safe(pos), redact.Safe(len(s.buf)))
	}
	s.pos = pos
	return nil
}

func (s *Stream) checkReadWillError(count int) error {
	if s.pos+count > len(s.buf) {
		return errors.Wrapf(ErrShortRead, "cannot read %s bytes at offset %s, only %s bytes left",
			redact.Safe(count), redact.Safe(s.pos), redact.Safe(len(s.buf)-s.pos))
	}
	return nil
}

// Read consumes and returns the next n bytes.
func (s *Stream) Read(n int) ([]byte, error) {
	if err := s.checkReadWillError(n); err != nil {
		return nil, err
	}
	b := s.buf[s.pos : s.pos+n]
	s.pos += n
	return b, nil
}

// ReadRemaining consumes and returns every byte left in the stream.
func (s *Stream) ReadRemaining() []byte {
	b := s.buf[s.pos:]
	s.pos = len(s.buf)
	return b
}

// ReadU8 reads a little-endian uint8.
func (s *Stream) ReadU8() (uint8, error) {
	b, err := s.Read(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadI8 reads a little-endian int8.
func (s *Stream) ReadI8() (int8, error) {
	v, err := s.ReadU8()
	return int8(v), err
}

// ReadU16 reads a little-endian uint16.
func (s *Stream) ReadU16() (uint16, error) {
	b, err := s.Read(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// ReadI16 reads a little-endian int16.
func (s *Stream) ReadI16() (int16, error) {
	v, err := s.ReadU16()
	return int16(v), err
}

// ReadU32 reads a little-endian uint32.
func (s *Stream) ReadU32() (uint32, error) {
	b, err := s.Read(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// ReadI32 reads a little-endian int32.
func (s *Stream) ReadI32() (int32, error) {
	v, err := s.ReadU32()
	return int32(v), err
}

// ReadU64 reads a little-endian uint64.
func (s *Stream) ReadU64() (uint64, error) {
	b, err := s.Read(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// ReadI64 reads a little-endian int64.
func (s *Stream) ReadI64() (int64, error) {
	v, err := s.ReadU64()
	return int64(v), err
}

// ReadF32 reads a little-endian IEEE-754 single.
func (s *Stream) ReadF32() (float32, error) {
	v, err := s.ReadU32()
	return math.Float32frombits(v), err
}

// ReadF64 reads a little-endian IEEE-754 double.
func (s *Stream) ReadF64() (float64, error) {
	v, err := s.ReadU64()
	return math.Float64frombits(v), err
}

// ReadString consumes n bytes and decodes them as UTF-8.
func (s *Stream) ReadString(n int) (string, error) {
	b, err := s.Read(n)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", errors.Wrapf(ErrInvalidUTF8, "at offset %s", redact.Safe(s.pos-n))
	}
	return string(b), nil
}

func (s *Stream) write(b []byte) {
	s.buf = append(s.buf, b...)
	s.pos += len(b)
}

// Write appends raw bytes. Writes are only valid at the end of the stream.
func (s *Stream) Write(b []byte) { s.write(b) }

// WriteU8 appends a little-endian uint8.
func (s *Stream) WriteU8(v uint8) { s.write([]byte{v}) }

// WriteI8 appends a little-endian int8.
func (s *Stream) WriteI8(v int8) { s.WriteU8(uint8(v)) }

// WriteU16 appends a little-endian uint16.
func (s *Stream) WriteU16(v uint16) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	s.write(b[:])
}

// WriteI16 appends a little-endian int16.
func (s *Stream) WriteI16(v int16) { s.WriteU16(uint16(v)) }

// WriteU32 appends a little-endian uint32.
func (s *Stream) WriteU32(v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	s.write(b[:])
}

// WriteI32 appends a little-endian int32.
func (s *Stream) WriteI32(v int32) { s.WriteU32(uint32(v)) }

// WriteU64 appends a little-endian uint64.
func (s *Stream) WriteU64(v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	s.write(b[:])
}

// WriteI64 appends a little-endian int64.
func (s *Stream) WriteI64(v int64) { s.WriteU64(uint64(v)) }

// WriteF32 appends a little-endian IEEE-754 single.
func (s *Stream) WriteF32(v float32) { s.WriteU32(math.Float32bits(v)) }

// WriteF64 appends a little-endian IEEE-754 double.
func (s *Stream) WriteF64(v float64) { s.WriteU64(math.Float64bits(v)) }

// WriteString appends the raw UTF-8 bytes of s.
func (s *Stream) WriteString(str string) { s.write([]byte(str)) }
