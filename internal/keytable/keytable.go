// Copyright 2011 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package keytable implements a two-level keys dictionary: a caller-supplied,
// read-only global table and a codec-maintained local table that both sides
// rebuild in lockstep from the byte stream.
package keytable

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
	"github.com/cockroachdb/swiss"

	"github.com/fracturedjson/fjson/internal/bytestream"
)

// MaxTableSize is the largest number of entries either table may hold.
const MaxTableSize = 0x7FFF

var (
	// ErrTableFull is returned by NoteInline/Resolve when the local table has
	// already reached MaxTableSize entries.
	ErrTableFull = errors.New("keytable: local table is full")
	// ErrBadIndex is returned by Lookup* when the index has no entry.
	ErrBadIndex = errors.New("keytable: index out of range")
	// ErrKeyTooLong is returned when serializing a key whose length does not
	// fit the single-byte length prefix (0xFF is disallowed).
	ErrKeyTooLong = errors.New("keytable: key too long")
	// ErrUnsupportedTableConfig is returned when a serialized global table's
	// configuration byte is non-zero.
	ErrUnsupportedTableConfig = errors.New("keytable: unsupported table config byte")
)

// Location distinguishes which sub-table an index or lookup refers to.
type Location int

const (
	// Global identifies the caller-supplied, read-only side-channel table.
	Global Location = iota
	// Local identifies the codec-maintained, append-only table.
	Local
)

// table is one ordered dictionary of strings with a fast key->index lookup.
// The slice is the source of truth for order and for Lookup; the map only
// accelerates Resolve/contains-checks and never affects wire output, so
// using a hash map here (rather than a linear scan) changes nothing
// observable about encoding order; see DESIGN.md.
type table struct {
	entries []string
	index   *swiss.Map[string, int]
}

func newTable(entries []string) *table {
	idx := swiss.New[string, int](len(entries))
	for i, k := range entries {
		idx.Put(k, i)
	}
	return &table{entries: entries, index: idx}
}

func (t *table) lookup(i int) (string, error) {
	if i < 0 || i >= len(t.entries) {
		return "", errors.Wrapf(ErrBadIndex, "index %s not in table of size %s",
			redact.Safe(i), redact.Safe(len(t.entries)))
	}
	return t.entries[i], nil
}

func (t *table) find(key string) (int, bool) {
	return t.index.Get(key)
}

func (t *table) push(key string) int {
	i := len(t.entries)
	t.entries = append(t.entries, key)
	t.index.Put(key, i)
	return i
}

func (t *table) isFull() bool { return len(t.entries) >= MaxTableSize }
func (t *table) isEmpty() bool { return len(t.entries) == 0 }
func (t *table) len() int      { return len(t.entries) }

// Tables binds a read-only global table (possibly empty) with an
// append-only local table, implementing both the encoder's Resolve/
// NoteInline contract and the decoder's Lookup*/NoteInline contract.
type Tables struct {
	global *table
	local  *table
}

// New returns a fresh Tables with an empty local table and the given
// global table contents (nil or empty means "no global table").
func New(globalEntries []string) *Tables {
	return &Tables{global: newTable(globalEntries), local: newTable(nil)}
}

// LocalEntries returns the local table's entries in append order, mainly
// for tests asserting encoder/decoder synchronization.
func (t *Tables) LocalEntries() []string {
	out := make([]string, len(t.local.entries))
	copy(out, t.local.entries)
	return out
}

// HasLocalKeysTable reports whether the local table has gained any entries.
// The frame encoder does not consult it: it never sets the legacy
// "uses-local-keys-table" config bit.
func (t *Tables) HasLocalKeysTable() bool { return !t.local.isEmpty() }

// Resolve returns the (location, index) a key should be referenced by: an
// existing global or local entry, or a newly appended local entry. isNew
// reports whether this call just inserted key into the local table (i.e.
// whether the caller should emit it as an immediate/inline record rather
// than a back-reference). It fails with ErrTableFull if the key is new and
// the local table is already full.
func (t *Tables) Resolve(key string) (loc Location, index int, isNew bool, err error) {
	if i, ok := t.global.find(key); ok {
		return Global, i, false, nil
	}
	if i, ok := t.local.find(key); ok {
		return Local, i, false, nil
	}
	if t.local.isFull() {
		return 0, 0, false, ErrTableFull
	}
	return Local, t.local.push(key), true, nil
}

// NoteInline appends key to the local table, used after an immediate key is
// written or read so both sides' local tables stay in lockstep.
func (t *Tables) NoteInline(key string) error {
	if t.local.isFull() {
		return ErrTableFull
	}
	t.local.push(key)
	return nil
}

// LookupLocal returns the i-th local-table key.
func (t *Tables) LookupLocal(i int) (string, error) { return t.local.lookup(i) }

// LookupGlobal returns the i-th global-table key.
func (t *Tables) LookupGlobal(i int) (string, error) { return t.global.lookup(i) }

// SerializeGlobal writes the global-table wire format: a zero configuration
// byte, a u16 count, then each entry as a u8 length + UTF-8 bytes.
func SerializeGlobal(entries []string) ([]byte, error) {
	s := bytestream.New()
	s.WriteU8(0)
	if len(entries) > MaxTableSize {
		return nil, errors.Newf("keytable: %d entries exceeds max table size %d", len(entries), MaxTableSize)
	}
	s.WriteU16(uint16(len(entries)))
	for _, key := range entries {
		if len(key) >= 0xFF {
			return nil, errors.Wrapf(ErrKeyTooLong, "key %q has length %s", key, redact.Safe(len(key)))
		}
		s.WriteU8(uint8(len(key)))
		s.WriteString(key)
	}
	return s.Bytes(), nil
}

// DeserializeGlobal reads the global-table wire format produced by
// SerializeGlobal, consuming exactly its own bytes from s.
func DeserializeGlobal(s *bytestream.Stream) ([]string, error) {
	config, err := s.ReadU8()
	if err != nil {
		return nil, err
	}
	if config != 0 {
		return nil, errors.Wrapf(ErrUnsupportedTableConfig, "config byte %#x", redact.Safe(config))
	}
	count, err := s.ReadU16()
	if err != nil {
		return nil, err
	}
	entries := make([]string, 0, count)
	for i := 0; i < int(count); i++ {
		length, err := s.ReadU8()
		if err != nil {
			return nil, err
		}
		key, err := s.ReadString(int(length))
		if err != nil {
			return nil, err
		}
		entries = append(entries, key)
	}
	return entries, nil
}
