// Copyright 2011 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package valuecodec

import (
	"github.com/fracturedjson/fjson/internal/bytestream"
)

func writeString(s *bytestream.Stream, str string) error {
	if err := writeSizeClass(s, len(str), stringTags); err != nil {
		return err
	}
	s.WriteString(str)
	return nil
}

func readString(s *bytestream.Stream, tag Tag) (string, error) {
	n, err := readSize(s, tag, stringTags)
	if err != nil {
		return "", err
	}
	return s.ReadString(n)
}

func writeBool(s *bytestream.Stream, b bool) {
	if b {
		s.WriteU8(byte(TagBoolTrue))
		return
	}
	s.WriteU8(byte(TagBoolFalse))
}

func writeNull(s *bytestream.Stream) {
	s.WriteU8(byte(TagNull))
}
