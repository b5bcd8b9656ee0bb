// Copyright 2026 The Gurmukhi Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gurmukhi

import (
	"log/slog"

	"github.com/gurmukhi-go/gurmukhi/internal/rewrite"
	"github.com/gurmukhi-go/gurmukhi/legacy"
	"github.com/gurmukhi-go/gurmukhi/mapping"
	"github.com/gurmukhi-go/gurmukhi/prosody"
	"github.com/gurmukhi-go/gurmukhi/search"
	"github.com/gurmukhi-go/gurmukhi/strip"
	"github.com/gurmukhi-go/gurmukhi/translit"
)

// ToUnicode converts text in the legacy font encoding to Unicode Gurmukhi.
func ToUnicode(s string) string { return legacy.ToUnicode(s) }

// ToLegacy converts Unicode Gurmukhi to the legacy font encoding.
func ToLegacy(s string) string { return legacy.ToLegacy(s) }

// ToEnglish transliterates Unicode Gurmukhi to Latin script.
func ToEnglish(s string) string { return translit.ToEnglish(s) }

// ToHindi transliterates Unicode Gurmukhi to Devanagari.
func ToHindi(s string) string { return translit.ToHindi(s) }

// ToShahmukhi transliterates Unicode Gurmukhi to Shahmukhi.
func ToShahmukhi(s string) string { return translit.ToShahmukhi(s) }

// ToSyllabicSymbols returns the weight of each syllable of s as 1 (light) or
// 2 (heavy), with words separated by a space. The input may be Unicode or
// legacy text.
func ToSyllabicSymbols(s string) string { return prosody.ToSyllabicSymbols(s) }

// CountSyllables returns the metrical length of s, counting a light
// syllable as one unit and a heavy syllable as two.
func CountSyllables(s string) int { return prosody.CountSyllables(s) }

// IsGurmukhiScript reports whether the first character of s, or every
// character if exhaustive is set, lies in the Unicode Gurmukhi block.
// See search.IsGurmukhi for the characters an exhaustive check ignores.
func IsGurmukhiScript(s string, exhaustive bool) bool {
	return search.IsGurmukhi(s, exhaustive)
}

// Vishraam is a set of recitation pause strengths.
type Vishraam = mapping.Vishraam

// Pause strengths. They may be combined with |.
const (
	Light        = mapping.Light
	Medium       = mapping.Medium
	Heavy        = mapping.Heavy
	AllVishraams = mapping.AllVishraams
)

// StripVishraams removes the pause marks in v from s.
func StripVishraams(s string, v Vishraam) string { return strip.Vishraams(s, v) }

// StripEndings removes verse numbers and line ending marks from Gurmukhi
// and translations.
func StripEndings(s string) string { return strip.Endings(s) }

// StripAccents replaces accented letters by the letter they are written on.
func StripAccents(s string) string { return strip.Accents(s) }

// FirstLetters returns the first letter of each word of line.
func FirstLetters(line string) string { return search.FirstLetters(line) }

// SetLogger sets the logger that receives a Debug record for every rewrite
// rule that changes the text being converted. Logging is off by default;
// passing nil turns it off again.
func SetLogger(l *slog.Logger) { rewrite.SetLogger(l) }
