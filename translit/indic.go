// Copyright 2026 The Gurmukhi Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package translit

import (
	"github.com/gurmukhi-go/gurmukhi/internal/pattern"
	"github.com/gurmukhi-go/gurmukhi/internal/rewrite"
	"github.com/gurmukhi-go/gurmukhi/mapping"
)

// consonants matches any Gurmukhi consonant, including those with nukta.
const consonants = `[\x{0A15}-\x{0A39}\x{0A59}-\x{0A5E}]`

// unaspirated gives the plain stop an aspirate is doubled with.
var unaspirated = map[rune]rune{
	'ਖ': 'ਕ',
	'ਘ': 'ਗ',
	'ਛ': 'ਚ',
	'ਝ': 'ਜ',
	'ਠ': 'ਟ',
	'ਢ': 'ਡ',
	'ਥ': 'ਤ',
	'ਧ': 'ਦ',
	'ਫ': 'ਪ',
	'ਭ': 'ਬ',
}

// geminate spells out the consonant doubled by an adhak, since Devanagari
// has no gemination mark.
func geminate(m string) string {
	c := []rune(m)[1]
	first := c
	if u, ok := unaspirated[c]; ok {
		first = u
	}
	return string(first) + "੍" + string(c)
}

// vowelLetters composes a vowel carrier and a vowel sign into the
// independent vowel.
var vowelLetters = rewrite.NewTable(map[string]string{
	"ੲਿ": "ਇ",
	"ੲੀ": "ਈ",
	"ੲੇ": "ਏ",
	"ੳੁ": "ਉ",
	"ੳੂ": "ਊ",
	"ੳੋ": "ਓ",
	"ਅਾ": "ਆ",
	"ਅੈ": "ਐ",
	"ਅੌ": "ਔ",
})

var hindi = rewrite.NewChain("hindi",
	rewrite.New(`(ੰ|ਂ)(ੀ)`, "${2}${1}"),
	rewrite.Func(`ੱ`+consonants, geminate),
	vowelLetters.Rule(),
	rewrite.NewTable(mapping.Devanagari()).Rule(),
)

// ToHindi transliterates Unicode Gurmukhi to Devanagari.
func ToHindi(s string) string {
	return hindi.Apply(s)
}

var shahmukhi = rewrite.NewChain("shahmukhi",
	// A final sihari or aunkar is not written except after ਹ.
	rewrite.New(`([^`+pattern.Space+`][^ਹ])([ਿੁ])([`+pattern.Space+`]|`+pattern.Class(mapping.VishraamGlyphs())+`)`, "${1}${3}"),
	rewrite.NewTable(mapping.Shahmukhi()).Rule(),
)

// ToShahmukhi transliterates Unicode Gurmukhi to Shahmukhi, the
// Perso-Arabic script used for Punjabi in Pakistan.
func ToShahmukhi(s string) string {
	return shahmukhi.Apply(s)
}
