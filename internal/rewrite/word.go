// Copyright 2026 The Gurmukhi Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rewrite

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Word returns a rule like New in which \b asserts a word boundary over
// all scripts. A word character is a letter, a nonspacing mark, a decimal
// digit or connector punctuation. The \b of package regexp only knows ASCII
// word characters, which would split words typed with Latin-1 glyphs.
//
// Submatches in repl must be written as ${N}. A match whose boundaries do
// not hold is skipped and the search resumes one character later. Empty
// matches are never replaced. The pattern must not use ^, as matching
// restarts inside the text.
func Word(pattern, repl string) Rule {
	var (
		b       strings.Builder
		bounds  []int
		groups  = []int{0}
		n       int
		inClass bool
	)
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		switch {
		case c == '\\' && i+1 < len(pattern):
			if pattern[i+1] == 'b' && !inClass {
				n++
				bounds = append(bounds, n)
				b.WriteString("()")
			} else {
				b.WriteString(pattern[i : i+2])
			}
			i++
			continue
		case c == '[':
			inClass = true
		case c == ']':
			inClass = false
		case c == '(' && !inClass && !strings.HasPrefix(pattern[i+1:], "?"):
			n++
			groups = append(groups, n)
		}
		b.WriteByte(c)
	}
	repl = submatchRef.ReplaceAllStringFunc(repl, func(ref string) string {
		k, err := strconv.Atoi(ref[2 : len(ref)-1])
		if err != nil || k >= len(groups) {
			panic("rewrite: bad submatch reference " + ref + " in " + pattern)
		}
		return "${" + strconv.Itoa(groups[k]) + "}"
	})
	return Rule{re: regexp.MustCompile(b.String()), repl: repl, bounds: bounds}
}

var submatchRef = regexp.MustCompile(`\$\{[0-9]+\}`)

// isWord also counts the zero width joiner and non-joiner, which sit inside
// words.
func isWord(r rune) bool {
	switch {
	case r == '\u200c', r == '\u200d':
		return true
	case unicode.IsLetter(r), unicode.Is(unicode.Nd, r):
		return true
	}
	return unicode.In(r, unicode.Mn, unicode.Pc)
}

// boundary reports whether a word boundary lies at byte offset i of s.
func boundary(s string, i int) bool {
	before, after := false, false
	if i > 0 {
		r, _ := utf8.DecodeLastRuneInString(s[:i])
		before = isWord(r)
	}
	if i < len(s) {
		r, _ := utf8.DecodeRuneInString(s[i:])
		after = isWord(r)
	}
	return before != after
}

// bounded reports whether every boundary group taking part in match m sits
// on a word boundary.
func (r Rule) bounded(s string, m []int) bool {
	for _, g := range r.bounds {
		if i := m[2*g]; i >= 0 && !boundary(s, i) {
			return false
		}
	}
	return true
}

func (r Rule) applyWord(s string) string {
	var out []byte
	last, pos := 0, 0
	for pos <= len(s) {
		m := r.re.FindStringSubmatchIndex(s[pos:])
		if m == nil {
			break
		}
		for i := range m {
			if m[i] >= 0 {
				m[i] += pos
			}
		}
		if m[1] == m[0] || !r.bounded(s, m) {
			_, size := utf8.DecodeRuneInString(s[m[0]:])
			if size == 0 {
				break
			}
			pos = m[0] + size
			continue
		}
		out = append(out, s[last:m[0]]...)
		out = r.re.ExpandString(out, r.repl, s, m)
		last, pos = m[1], m[1]
	}
	if last == 0 {
		return s
	}
	return string(append(out, s[last:]...))
}
