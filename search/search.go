// Copyright 2026 The Gurmukhi Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package search provides Gurmukhi-aware string matching and the helpers
// used to build search indexes of Gurmukhi text.
//
// The same word is often spelled with and without a nukta, or with an
// independent vowel where another text uses its carrier, and verses carry
// pause marks that a reader does not type. A Matcher can be told to ignore
// these differences. Positions it reports always refer to the original text.
package search // import "github.com/gurmukhi-go/gurmukhi/search"

import (
	"strings"
	"unicode/utf8"

	"github.com/gurmukhi-go/gurmukhi/mapping"
	"github.com/gurmukhi-go/gurmukhi/strip"
)

// An Option configures a Matcher.
type Option func(*Matcher)

var (
	// IgnoreAccents equates letters with a nukta and independent vowels
	// with the letter they are written on ("ਸ਼" == "ਸ", "ਈ" == "ੲ").
	IgnoreAccents Option = func(m *Matcher) { m.accents = true }

	// IgnoreVishraams skips pause marks in both the text and the pattern.
	IgnoreVishraams Option = func(m *Matcher) { m.vishraams = true }

	// Legacy declares that text and patterns are in the legacy font
	// encoding, so that IgnoreAccents folds legacy glyphs instead of Unicode
	// letters. Without it Latin text is never folded.
	Legacy Option = func(m *Matcher) { m.legacy = true }

	// Loose enables all of the ignore options.
	Loose Option = func(m *Matcher) {
		IgnoreAccents(m)
		IgnoreVishraams(m)
	}
)

// New returns a new Matcher for the given options. Without options it
// matches exactly.
func New(opts ...Option) *Matcher {
	m := &Matcher{}
	for _, o := range opts {
		o(m)
	}
	return m
}

// A Matcher implements Gurmukhi string matching. It is safe for concurrent
// use.
type Matcher struct {
	accents   bool
	vishraams bool
	legacy    bool
}

// An IndexOption specifies how the Index methods of Pattern or Matcher should
// match the input.
type IndexOption byte

const (
	// Anchor restricts the search to the start (or end for Backwards) of the
	// text.
	Anchor IndexOption = iota

	// Backwards starts the search from the end of the text.
	Backwards
)

// Index reports the start and end position of the first occurrence of pat in b
// or -1, -1 if pat is not present.
func (m *Matcher) Index(b, pat []byte, opts ...IndexOption) (start, end int) {
	return m.Compile(pat).Index(b, opts...)
}

// IndexString reports the start and end position of the first occurrence of pat
// in s or -1, -1 if pat is not present.
func (m *Matcher) IndexString(s, pat string, opts ...IndexOption) (start, end int) {
	return m.CompileString(pat).IndexString(s, opts...)
}

// Equal reports whether a and b are equivalent.
func (m *Matcher) Equal(a, b []byte) bool {
	return m.EqualString(string(a), string(b))
}

// EqualString reports whether a and b are equivalent.
func (m *Matcher) EqualString(a, b string) bool {
	return m.key(a).text == m.key(b).text
}

// Compile compiles and returns a pattern that can be used for faster searching.
func (m *Matcher) Compile(b []byte) *Pattern {
	return m.CompileString(string(b))
}

// CompileString compiles and returns a pattern that can be used for faster
// searching.
func (m *Matcher) CompileString(str string) *Pattern {
	return &Pattern{m: m, key: m.key(str).text}
}

// A key is text with the ignored differences removed. For every byte of
// text, start and end hold the bounds of the rune of the original that
// produced it.
type key struct {
	text       string
	start, end []int
}

func (m *Matcher) key(s string) key {
	var k key
	var b strings.Builder
	for i, r := range s {
		if m.vishraams && strings.ContainsRune(mapping.VishraamGlyphs(), r) {
			continue
		}
		if m.accents {
			if m.legacy {
				r = strip.LegacyBaseLetter(r)
			} else {
				r = strip.BaseLetter(r)
			}
			if r < 0 {
				continue
			}
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		n, _ := b.WriteRune(r)
		for j := 0; j < n; j++ {
			k.start = append(k.start, i)
			k.end = append(k.end, i+size)
		}
	}
	k.text = b.String()
	return k
}

// A Pattern is a compiled search string. It is safe for concurrent use.
type Pattern struct {
	m   *Matcher
	key string
}

// Index reports the start and end position of the first occurrence of p in b
// or -1, -1 if p is not present.
func (p *Pattern) Index(b []byte, opts ...IndexOption) (start, end int) {
	return p.IndexString(string(b), opts...)
}

// IndexString reports the start and end position of the first occurrence of p
// in s or -1, -1 if p is not present.
func (p *Pattern) IndexString(s string, opts ...IndexOption) (start, end int) {
	var anchor, backwards bool
	for _, o := range opts {
		switch o {
		case Anchor:
			anchor = true
		case Backwards:
			backwards = true
		}
	}
	if p.key == "" {
		if backwards {
			return len(s), len(s)
		}
		return 0, 0
	}
	k := p.m.key(s)
	var i int
	switch {
	case anchor && backwards:
		if i = len(k.text) - len(p.key); !strings.HasSuffix(k.text, p.key) {
			i = -1
		}
	case anchor:
		if i = 0; !strings.HasPrefix(k.text, p.key) {
			i = -1
		}
	case backwards:
		i = strings.LastIndex(k.text, p.key)
	default:
		i = strings.Index(k.text, p.key)
	}
	if i < 0 {
		return -1, -1
	}
	return k.start[i], k.end[i+len(p.key)-1]
}
