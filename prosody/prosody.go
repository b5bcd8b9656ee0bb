// Copyright 2026 The Gurmukhi Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package prosody classifies Gurmukhi syllables by weight, as used in the
// metrical analysis of verse.
//
// Every base letter is a light syllable, written 1. A base letter that
// carries one or more length marks is a heavy syllable, written 2. Words are
// separated by a single space in the result.
package prosody // import "github.com/gurmukhi-go/gurmukhi/prosody"

import (
	"github.com/gurmukhi-go/gurmukhi/internal/pattern"
	"github.com/gurmukhi-go/gurmukhi/internal/rewrite"
	"github.com/gurmukhi-go/gurmukhi/legacy"
)

// Symbols of the syllabic notation.
const (
	Light = "1"
	Heavy = "2"

	// long marks a length sign before it is merged with its base letter.
	long = "s"
)

// weightless lists signs and punctuation that do not affect syllable weight.
// Subjoined letters come before the bare virama so that the letter is
// removed with it.
var weightless = []string{
	"੍ਰ", "ੵ", "ੑ", "੍ਵ", "੍ਹ", "੍ਟ", "੍ਨ", "੍ਯ", "੍ਚ", "੍ਤ", "੍",
	"ਿ", "ੁ", "ਂ", "ਃ",
	"।", "॥", "☬", "਼", "❁",
}

var bases = []rune{
	'ਇ', 'ਉ', 'ਙ', 'ੳ', 'ਅ', 'ਬ', 'ਭ', 'ਚ', 'ਛ', 'ਦ', 'ਧ', 'ੲ', 'ਡ', 'ਢ',
	'ਗ', 'ਘ', 'ਹ', 'ਜ', 'ਝ', 'ਕ', 'ਖ', 'ਲ', 'ਮ', 'ਨ', 'ਪ', 'ਫ', 'ਤ', 'ਥ',
	'ਰ', 'ਸ', 'ਟ', 'ਠ', 'ਵ', 'ੜ', 'ਣ', 'ਯ', 'ਞ',
	'ਲ਼', 'ਸ਼', 'ਖ਼', 'ਗ਼', 'ਜ਼', 'ਫ਼',
}

// lengthMarks lengthen the syllable of the base letter before them.
var lengthMarks = []rune{'ੰ', 'ੀ', 'ੂ', 'ੇ', 'ੈ', 'ੋ', 'ੌ', 'ਾ', 'ੱ'}

// longVowels are independent vowels that combine a base and a length mark.
var longVowels = []rune{'ਊ', 'ਓ', 'ਈ', 'ਏ', 'ਐ', 'ਆ', 'ਔ'}

// ikOnkar is read as ਇੱਕ ਓਅੰਕਾਰ.
const ikOnkar = "21 2221"

var weights = func() map[rune]string {
	m := map[rune]string{
		'ੴ': ikOnkar,
		' ': " ",
	}
	for _, r := range bases {
		m[r] = Light
	}
	for _, r := range lengthMarks {
		m[r] = long
	}
	for _, r := range longVowels {
		m[r] = Light + long
	}
	return m
}()

// weigh maps a single character to its symbol. Characters that carry no
// syllable, such as digits and Latin letters, separate words.
func weigh(c string) string {
	for _, r := range c {
		if w, ok := weights[r]; ok {
			return w
		}
	}
	return " "
}

var symbols = rewrite.NewChain("prosody",
	rewrite.New(pattern.Group(weightless...), ""),
	rewrite.Func(`(?s:.)`, weigh),
	rewrite.New(` +`, " "),
	// A base letter with several length marks is still one heavy syllable.
	rewrite.New(long+`+`, long),
	rewrite.New(Light+long, Heavy),
)

// ToSyllabicSymbols returns the weight of every syllable in text, which may
// be Unicode Gurmukhi or use the legacy font encoding.
func ToSyllabicSymbols(text string) string {
	return symbols.Apply(legacy.ToUnicode(text))
}

// CountSyllables returns the number of light syllable units in text, where
// a heavy syllable counts as two. It is the sum of the digits of
// ToSyllabicSymbols.
func CountSyllables(text string) int {
	n := 0
	for _, r := range ToSyllabicSymbols(text) {
		if '0' <= r && r <= '9' {
			n += int(r - '0')
		}
	}
	return n
}
