// Copyright 2026 The Gurmukhi Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package strip removes recitation marks, line endings and accents from
// Gurmukhi text, typically to prepare it for display or search.
package strip // import "github.com/gurmukhi-go/gurmukhi/strip"

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/rangetable"

	"github.com/gurmukhi-go/gurmukhi/internal/pattern"
	"github.com/gurmukhi-go/gurmukhi/legacy"
	"github.com/gurmukhi-go/gurmukhi/mapping"
	"github.com/gurmukhi-go/gurmukhi/translit"
)

// Vishraam is a set of pause strengths.
type Vishraam = mapping.Vishraam

// Pause strengths.
const (
	Light        = mapping.Light
	Medium       = mapping.Medium
	Heavy        = mapping.Heavy
	AllVishraams = mapping.AllVishraams
)

// Vishraams removes the pause marks in v from text. Text in either encoding
// is accepted, as the marks are the same. Passing AllVishraams removes every
// pause mark; passing zero returns text unchanged.
func Vishraams(text string, v Vishraam) string {
	g := v.Glyphs()
	if len(g) == 0 {
		return text
	}
	var rs []rune
	for _, s := range g {
		rs = append(rs, []rune(s)...)
	}
	s, _, _ := transform.String(runes.Remove(runes.In(rangetable.New(rs...))), text)
	return s
}

// endings lists the patterns removed by Endings, in order.
var endings = func() []*regexp.Regexp {
	// Line endings in Unicode, legacy and English.
	ending := pattern.Class("।", "॥", "]", "[", "|")
	// Translations sometimes open a verse number with a parenthesis.
	optional := pattern.Class("(")
	broken := pattern.Group("()")

	var digits []string
	for i := 0; i < 10; i++ {
		d := strconv.Itoa(i)
		u := legacy.ToUnicode(d)
		digits = append(digits, d, u, translit.ToHindi(u))
	}
	number := pattern.Class(digits...)

	pause := pattern.Group("ਰਹਾਉ", legacy.ToLegacy("ਰਹਾਉ"), "Pause")

	return []*regexp.Regexp{
		// A pause with its ending, and the rest of the line.
		regexp.MustCompile(` ?` + ending + ` ?` + pause + `.*`),
		// An ending followed by a number, and the rest of the line.
		regexp.MustCompile(` ?(` + ending + `|` + optional + `)` + number + `.*`),
		// Numbers, periods and spaces at the end of the text.
		regexp.MustCompile(` ?` + number + `(` + number + `|[. ])*$`),
		regexp.MustCompile(` ?` + broken),
		regexp.MustCompile(` ?` + ending),
	}
}()

// Endings removes verse numbers, pause markers and line ending glyphs from
// Gurmukhi in either encoding, from Devanagari and from translations. Text
// is trimmed of surrounding white space after each step.
func Endings(text string) string {
	for _, re := range endings {
		text = strings.TrimSpace(re.ReplaceAllString(text, ""))
	}
	return text
}

// unicodeBases maps accented Unicode letters to their base letter, and
// legacyBases maps the legacy glyphs derived from them.
var (
	unicodeBases = mapping.Accents()
	legacyBases  = func() map[rune]rune {
		m := map[rune]rune{}
		for k, v := range unicodeBases {
			lk, lv := legacy.ToLegacy(string(k)), legacy.ToLegacy(string(v))
			if utf8.RuneCountInString(lk) != 1 || utf8.RuneCountInString(lv) != 1 {
				continue
			}
			rk, _ := utf8.DecodeRuneInString(lk)
			rv, _ := utf8.DecodeRuneInString(lv)
			if _, ok := m[rk]; !ok {
				m[rk] = rv
			}
		}
		return m
	}()
)

// legacyNukta is the legacy glyph of the nukta.
var legacyNukta, _ = utf8.DecodeRuneInString(legacy.ToLegacy("\u0a3c"))

// nukta matches the combining nukta and its legacy glyph.
var nukta = rangetable.New('\u0a3c', legacyNukta)

func base(r rune) rune {
	if b, ok := unicodeBases[r]; ok {
		return b
	}
	if b, ok := legacyBases[r]; ok {
		return b
	}
	return r
}

// BaseLetter returns the letter that Accents would replace the Unicode
// character r by, or r itself. It returns -1 for the nukta sign, which
// Accents removes. Latin letters are returned unchanged.
func BaseLetter(r rune) rune {
	if r == '\u0a3c' {
		return -1
	}
	if b, ok := unicodeBases[r]; ok {
		return b
	}
	return r
}

// LegacyBaseLetter is like BaseLetter for a glyph of the legacy encoding.
func LegacyBaseLetter(r rune) rune {
	if r == legacyNukta {
		return -1
	}
	if b, ok := legacyBases[r]; ok {
		return b
	}
	return r
}

// Accents replaces letters that carry a nukta, and independent vowels, by
// the letter they are written on. A nukta written as a separate sign is
// removed. It accepts Unicode and legacy text and is useful for making
// search queries more general.
//
// Legacy glyphs are Latin-1 characters, so Latin letters that double as
// accented glyphs are folded too: S becomes s and Z becomes g. Use
// BaseLetter to fold Unicode text alone.
func Accents(text string) string {
	t := transform.Chain(runes.Remove(runes.In(nukta)), runes.Map(base))
	s, _, _ := transform.String(t, text)
	return s
}
