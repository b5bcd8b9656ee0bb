// Copyright 2026 The Gurmukhi Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pattern builds regular expression fragments from symbol sets.
//
// The fragments are meant to be spliced into larger expressions compiled with
// package regexp, so that rules can be written once against a table and stay
// correct when the table changes.
package pattern

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

// none matches no input at all. It stands in for an empty set.
const none = `[^\x00-\x{10FFFF}]`

// Space lists the white space characters of every script, for use inside a
// character class. The \s of package regexp only matches ASCII space.
const Space = `\t\n\v\f\r\x{85}\p{Z}`

// Group returns a capturing group that matches any one of symbols as a unit.
// Alternatives are tried in the order given.
func Group(symbols ...string) string {
	return "(" + join(symbols) + ")"
}

// Alternation returns a non-capturing group matching any one of symbols,
// preferring longer symbols over shorter ones. Symbols of equal length keep
// their relative order. Empty symbols are ignored.
func Alternation(symbols ...string) string {
	s := make([]string, 0, len(symbols))
	for _, x := range symbols {
		if x != "" {
			s = append(s, x)
		}
	}
	if len(s) == 0 {
		return none
	}
	sort.SliceStable(s, func(i, j int) bool {
		return utf8.RuneCountInString(s[i]) > utf8.RuneCountInString(s[j])
	})
	return "(?:" + join(s) + ")"
}

func join(symbols []string) string {
	var b strings.Builder
	for i, s := range symbols {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(regexp.QuoteMeta(s))
	}
	return b.String()
}

// Class returns a character class matching any single code point that
// occurs in symbols. An empty set yields a class that matches nothing.
func Class(symbols ...string) string {
	var b strings.Builder
	seen := map[rune]bool{}
	b.WriteByte('[')
	for _, s := range symbols {
		for _, r := range s {
			if seen[r] {
				continue
			}
			seen[r] = true
			writeClassRune(&b, r)
		}
	}
	if len(seen) == 0 {
		return none
	}
	b.WriteByte(']')
	return b.String()
}

// classSpecial holds the characters that have meaning inside a class in
// addition to the regular metacharacters.
const classSpecial = `\^-]`

func writeClassRune(b *strings.Builder, r rune) {
	if r < utf8.RuneSelf {
		s := string(r)
		if strings.ContainsRune(classSpecial, r) || regexp.QuoteMeta(s) != s {
			b.WriteByte('\\')
		}
	}
	b.WriteRune(r)
}

