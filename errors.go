// Copyright 2011 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package fjson

import (
	"github.com/fracturedjson/fjson/internal/bytestream"
	"github.com/fracturedjson/fjson/internal/frame"
	"github.com/fracturedjson/fjson/internal/keytable"
	"github.com/fracturedjson/fjson/internal/valuecodec"
)

// Error kind sentinels, re-exported from the internal packages that define
// them so callers can write errors.Is(err, fjson.ErrBadMagic) without
// reaching into internal/.
var (
	ErrShortRead              = bytestream.ErrShortRead
	ErrBadSeek                = bytestream.ErrBadSeek
	ErrInvalidUTF8            = bytestream.ErrInvalidUTF8
	ErrSizeTooBig             = valuecodec.ErrSizeTooBig
	ErrBadMagic               = frame.ErrBadMagic
	ErrUnsupportedVersion     = frame.ErrUnsupportedVersion
	ErrBadTypeTag             = valuecodec.ErrBadTypeTag
	ErrBadKeyTag              = keytable.ErrBadKeyTag
	ErrBadVarint              = keytable.ErrBadVarint
	ErrUnsupportedTableConfig = keytable.ErrUnsupportedTableConfig
	ErrKeyTooLong             = keytable.ErrKeyTooLong
	ErrTableFull              = keytable.ErrTableFull
	ErrNonFiniteNumber        = valuecodec.ErrNonFiniteNumber
	ErrBadIndex               = keytable.ErrBadIndex
	ErrCompressorFailure      = frame.ErrCompressorFailure
	ErrDecompressionTooLarge  = frame.ErrDecompressionTooLarge
	ErrUnknownExtension       = frame.ErrUnknownExtension
)
