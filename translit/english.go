// Copyright 2026 The Gurmukhi Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package translit

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/gurmukhi-go/gurmukhi/internal/pattern"
	"github.com/gurmukhi-go/gurmukhi/internal/rewrite"
	"github.com/gurmukhi-go/gurmukhi/legacy"
	"github.com/gurmukhi-go/gurmukhi/mapping"
)

var (
	englishAtoms = mapping.EnglishAtoms()

	// boundary matches a single word boundary character.
	boundary = pattern.Class(mapping.Boundaries())
	vishraam = pattern.Class(mapping.VishraamGlyphs())
	nonSpace = `[^` + pattern.Space + `]`
)

// englishPre rewrites legacy text so that each glyph stands for one sound in
// reading order. The rules run on the output of legacy.ToLegacy. Glyphs such
// as Î and ç are letters, so word boundaries are found with rewrite.Word.
var englishPre = rewrite.NewChain("english/pre",
	rewrite.New(`ey`, "e"),
	// Abbreviation for mahalaa.
	rewrite.New(`mÚ`, "mhlw"),
	rewrite.New(`i(.)`, "${1}i"),
	rewrite.New(`(.)[i]([R®H§´ÍÏçœ˜†])`, "${1}${2}i"),
	// A final sihari or aunkar is silent except after h and a.
	rewrite.Word(`(`+nonSpace+`[^ha])[iu](`+vishraam+`|\b)`, "${1}${2}"),
	// A three letter word with h in the middle takes an e sound before it.
	rewrite.Word(`(\b`+nonSpace+`)h(`+vishraam+`|[^iIuUyYwWoONM§¨®´µÍÏçüœˆ˜†]\b)`, "${1}yh${2}"),
)

// englishPost cleans up the joined atoms. Several rules are spelling
// exceptions kept as written.
var englishPost = rewrite.NewChain("english/post",
	rewrite.New(`\(`, ""),
	rewrite.New(`\)`, ""),
	rewrite.New(`aaa`, "aa"),
	rewrite.New(`eee`, "ee"),
	rewrite.New(`nn`, "n"),
	rewrite.New(`eeaa`, "eea"),
	rewrite.New(`eiaa`, "eaa"),
	rewrite.New(`eio`, "eo"),
	rewrite.New(`anm`, "am"),
	rewrite.New(`ahi(`+boundary+`)`, "eh${1}"),
	rewrite.New(`yhi(`+boundary+`)`, "yeh${1}"),
	rewrite.New(`(`+boundary+`)tit(`+boundary+`)`, "${1}tith${2}"),
	rewrite.New(`uu`, "au"),
	rewrite.New(`aou`, "au"),
	rewrite.New(`(`+boundary+`)au`, "${1}u"),
	rewrite.New(`(`+boundary+`)ei`, "${1}i"),
	rewrite.New(`eau(`+boundary+`)`, "eo${1}"),
	rewrite.New(`(`+boundary+`)n(`+boundary+`)`, "${1}na${2}"),
	rewrite.New(`(`+boundary+`)t(`+boundary+`)`, "${1}ta${2}"),
	rewrite.New(`aaa`, "aa"),
)

// ToEnglish transliterates Unicode Gurmukhi to Latin script, following the
// spelling conventions of Gurbani romanization. The inherent vowel is written
// as "a" where it is pronounced.
func ToEnglish(s string) string {
	if s == "" {
		return s
	}
	s = englishPre.Apply(legacy.ToLegacy(s))
	glyphs := strings.Split(s, "")
	fold := cases.Fold()

	var b strings.Builder
	for i, g := range glyphs {
		atom, ok := englishAtoms[g]
		if !ok {
			atom = g
		}
		b.WriteString(atom)

		w := window{
			atom:     atom,
			next:     at(glyphs, i+1),
			nextNext: at(glyphs, i+2),
		}
		w.foldedAtom = fold.String(w.atom)
		w.foldedNext = fold.String(w.next)
		if schwa.holds(w) {
			b.WriteByte('a')
		}
	}
	return englishPost.Apply(b.String())
}

// at returns s[i] or the empty string past the end of s.
func at(s []string, i int) string {
	if i < len(s) {
		return s[i]
	}
	return ""
}
