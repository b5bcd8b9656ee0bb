// Copyright 2026 The Gurmukhi Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package legacy converts between Unicode Gurmukhi and the legacy font
// encoding used by most Gurmukhi text produced before Unicode.
//
// The legacy encoding stores glyphs in visual order: the sihari (short i)
// sign is typed before the consonant it follows when spoken, and several
// subjoined letters, nasal marks and vowel variants have their own glyph
// codes. Unicode stores text in logical order. Conversion therefore needs
// contextual reordering in addition to symbol substitution.
//
// Characters without a mapping pass through unchanged, so embedded Latin
// text and punctuation survive conversion in both directions.
package legacy // import "github.com/gurmukhi-go/gurmukhi/legacy"

import (
	"github.com/gurmukhi-go/gurmukhi/internal/rewrite"
	"github.com/gurmukhi-go/gurmukhi/mapping"
)

// pair holds the legacy glyphs for subjoined letters and the yakash.
const pair = `R®H§ÍÏçœ˜†`

var (
	toUnicode = rewrite.NewTable(mapping.LegacyToUnicode())
	toLegacy  = rewrite.NewTable(mapping.UnicodeToLegacy())
)

// importRules puts legacy glyphs into logical order before substitution.
var importRules = rewrite.NewChain("legacy/import",
	// Sihari follows the letter it is pronounced after.
	rewrite.New(`i(.)`, "${1}i"),
	rewrite.New(`®`, "R"),
	// Vowel signs and tippi follow a subjoined letter.
	rewrite.New(`([iMµyY])([`+pair+`])`, "${2}${1}"),
	rewrite.New(`([MµyY])([uU])`, "${2}${1}"),
	// Adhak follows a vowel sign typed after it.
	rewrite.New("`([wWIoOyYuU´"+pair+"])", "${1}`"),
	rewrite.New(`i([´Î])`, "${1}i"),
	rewrite.New(`([Mµ])[Nˆ]`, "${1}"),
	toUnicode.Rule(),
)

// exportRules substitutes symbols first and then moves glyphs into visual
// order, choosing the glyph variants a typesetter would use.
var exportRules = rewrite.NewChain("legacy/export",
	rewrite.New(`(.)ਿ਼`, "${1}਼ਿ"),
	toLegacy.Rule(),
	rewrite.New(`sæ`, "S"),
	rewrite.New(`Kæ`, "^"),
	rewrite.New(`gæ`, "Z"),
	rewrite.New(`jæ`, "z"),
	rewrite.New(`Pæ`, "&"),
	rewrite.New(`læ`, "L"),
	rewrite.New(`(.)i`, "i${1}"),
	rewrite.New(`wN`, "W"),
	rewrite.New(`(.)i([`+pair+`´Î])`, "i${1}${2}"),
	rewrite.New(`kR`, "k®"),
	rewrite.New(`([nl])M`, "${1}µ"),
	rewrite.New(`i([nl])µ`, "i${1}M"),
	rewrite.New(`([NMˆµ])I`, "${1}ØI"),
	rewrite.New(`NØI`, "ˆØI"),
	rewrite.New(`MØI`, "µØI"),
	rewrite.New(`([@R®H´ÍÏçœ˜†])u`, "${1}ü"),
	rewrite.New(`([@R®H´ÍÏçœ˜†])U`, "${1}¨"),
)

// ToUnicode converts text in the legacy font encoding to Unicode Gurmukhi.
func ToUnicode(s string) string {
	return importRules.Apply(s)
}

// ToLegacy converts Unicode Gurmukhi to the legacy font encoding.
//
// Letters with a nukta may be given precomposed or as a base letter followed
// by U+0A3C; both produce the single legacy glyph. ToUnicode always yields
// the precomposed letter.
func ToLegacy(s string) string {
	return exportRules.Apply(s)
}
