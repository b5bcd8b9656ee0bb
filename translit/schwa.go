// Copyright 2026 The Gurmukhi Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package translit

import (
	"strings"

	"github.com/gurmukhi-go/gurmukhi/mapping"
)

// A window is the context in which the inherent vowel is decided for one
// glyph. The atom is the Latin rendering of the glyph; the lookahead fields
// hold the raw legacy glyphs that follow it, or "" past the end of the text.
type window struct {
	atom       string
	foldedAtom string
	next       string
	foldedNext string
	nextNext   string
}

// A predicate reports whether one condition for inserting the inherent
// vowel holds.
type predicate func(w window) bool

// predicates are all conditions that must hold. They are evaluated in order
// and stop at the first failure.
type predicates []predicate

func (p predicates) holds(w window) bool {
	for _, f := range p {
		if !f(w) {
			return false
		}
	}
	return true
}

var schwa = predicates{
	isLetter,
	isNotVowel,
	isNotNasalEnding,
	isNotVowelOnset,
	nextHasNoSihari,
	nextIsNotVowelSign,
	nextIsNotMark,
	noVowelCarrierAhead,
}

var (
	boundaries = mapping.Boundaries()

	// vowelAtoms is searched as a string, so that any substring of it counts
	// as a vowel atom.
	vowelAtoms = "aeiou" + boundaries + "ooaiee"

	// vowelSigns holds the legacy glyphs, folded, that already give the
	// consonant before them a vowel.
	vowelSigns = "@aeouyw"

	// marks are legacy glyphs that attach to the preceding consonant.
	marks = boundaries + "[]IHR®ªÅÆÇÍÏÒØÚåæçüœ:"

	nasalAtoms = atomSet(mapping.NasalEndings())
	onsetAtoms = atomSet(mapping.VowelOnsets())
)

func atomSet(glyphs []string) map[string]bool {
	m := map[string]bool{}
	for _, g := range glyphs {
		m[englishAtoms[g]] = true
	}
	return m
}

func isLetter(w window) bool {
	return strings.IndexFunc(w.atom, func(r rune) bool {
		return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z'
	}) >= 0
}

func isNotVowel(w window) bool { return !strings.Contains(vowelAtoms, w.foldedAtom) }

func isNotNasalEnding(w window) bool { return !nasalAtoms[w.atom] }

func isNotVowelOnset(w window) bool { return !onsetAtoms[w.atom] }

func nextHasNoSihari(w window) bool { return !strings.Contains(w.next, "i") }

// nextIsNotVowelSign also fails at the end of the text, so the last
// consonant of a line never takes the inherent vowel.
func nextIsNotVowelSign(w window) bool { return !strings.Contains(vowelSigns, w.foldedNext) }

func nextIsNotMark(w window) bool { return !strings.Contains(marks, w.next) }

func noVowelCarrierAhead(w window) bool {
	return !strings.Contains(w.next, "a") && !strings.Contains(w.nextNext, "a")
}
