// Copyright 2026 The Gurmukhi Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mapping holds the static symbol tables shared by the Gurmukhi
// converters.
//
// The legacy table is authored in one direction only, from legacy glyph
// sequences to Unicode. The reverse table is derived from it. Some legacy
// glyphs are typographic variants of another glyph; those entries are marked
// ImportOnly and are read but never written. Every other entry must map to a
// distinct Unicode sequence, which is checked when the package is
// initialized.
//
// All tables are built once and never modified. Functions returning maps
// return copies.
package mapping

import (
	"fmt"
	"maps"
	"sort"
	"unicode/utf8"
)

// An Entry maps a sequence of legacy font glyphs to Unicode Gurmukhi.
type Entry struct {
	Legacy  string
	Unicode string

	// ImportOnly marks a lossy variant. The entry is used when converting to
	// Unicode but is excluded from the derived reverse table.
	ImportOnly bool
}

var (
	toUnicode map[string]string
	toLegacy  map[string]string
	inverse   []Entry
)

func init() {
	toUnicode = make(map[string]string, len(legacyEntries))
	toLegacy = make(map[string]string, len(legacyEntries))
	for _, e := range legacyEntries {
		if e.Legacy == "" {
			panic("mapping: empty legacy key")
		}
		if _, dup := toUnicode[e.Legacy]; dup {
			panic(fmt.Sprintf("mapping: duplicate legacy key %q", e.Legacy))
		}
		toUnicode[e.Legacy] = e.Unicode
	}
	inverse = deriveInverse(legacyEntries)
	for _, e := range inverse {
		toLegacy[e.Unicode] = e.Legacy
	}
}

// deriveInverse returns the canonical entries ordered by decreasing length of
// their Unicode side. Entries with an empty Unicode side cannot be inverted
// and are skipped. Two canonical entries sharing a Unicode value are a
// table error.
func deriveInverse(entries []Entry) []Entry {
	var inv []Entry
	owner := map[string]string{}
	for _, e := range entries {
		if e.ImportOnly || e.Unicode == "" {
			continue
		}
		if prev, ok := owner[e.Unicode]; ok {
			panic(fmt.Sprintf("mapping: %q and %q both claim %+q; mark one ImportOnly", prev, e.Legacy, e.Unicode))
		}
		owner[e.Unicode] = e.Legacy
		inv = append(inv, e)
	}
	sort.SliceStable(inv, func(i, j int) bool {
		return utf8.RuneCountInString(inv[i].Unicode) > utf8.RuneCountInString(inv[j].Unicode)
	})
	return inv
}

// LegacyToUnicode returns the forward table keyed by legacy glyph sequence.
func LegacyToUnicode() map[string]string { return maps.Clone(toUnicode) }

// UnicodeToLegacy returns the derived reverse table keyed by Unicode
// sequence.
func UnicodeToLegacy() map[string]string { return maps.Clone(toLegacy) }
