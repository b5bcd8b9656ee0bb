// Copyright 2026 The Gurmukhi Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package search

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/rangetable"

	"github.com/gurmukhi-go/gurmukhi/mapping"
)

// Gurmukhi is the Unicode Gurmukhi block, U+0A00 to U+0A7F.
var Gurmukhi = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0x0A00, Hi: 0x0A7F, Stride: 1}},
}

// ignorable holds characters that Gurmukhi text shares with other scripts:
// the space, the zero width space, the dandas and the pause marks.
var ignorable = rangetable.New([]rune(" \u200b।॥" + mapping.VishraamGlyphs())...)

// IsGurmukhi reports whether text is written in Gurmukhi. Unless exhaustive
// is set only the first character is checked, and empty text is not
// Gurmukhi. Otherwise every character must be Gurmukhi apart from spaces,
// dandas and pause marks, so text made only of those, or no text at all,
// qualifies.
func IsGurmukhi(text string, exhaustive bool) bool {
	if !exhaustive {
		r, _ := utf8.DecodeRuneInString(text)
		return unicode.Is(Gurmukhi, r)
	}
	for _, r := range text {
		if !unicode.Is(ignorable, r) && !unicode.Is(Gurmukhi, r) {
			return false
		}
	}
	return true
}

var carriers = mapping.VowelCarriers()

// FirstLetters returns the first letter of every word in line, together with
// any pause mark that ends the word. Independent vowels are given as their
// vowel carrier, so that ਇ, ਈ and ਏ all yield ੲ. Words are separated by
// spaces; runs of spaces are ignored.
//
// The line may be Unicode Gurmukhi or its Devanagari or Latin
// transliteration.
func FirstLetters(line string) string {
	var b strings.Builder
	for _, w := range strings.Split(line, " ") {
		if strings.TrimSpace(w) == "" {
			continue
		}
		first, _ := utf8.DecodeRuneInString(w)
		if c, ok := carriers[first]; ok {
			first = c
		}
		b.WriteRune(first)
		last, _ := utf8.DecodeLastRuneInString(w)
		if strings.ContainsRune(mapping.VishraamGlyphs(), last) {
			b.WriteRune(last)
		}
	}
	return b.String()
}
