// Copyright 2026 The Gurmukhi Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mapping

import (
	"fmt"
	"strings"
)

// Vishraam is a set of recitation pause strengths.
type Vishraam uint8

const (
	Light Vishraam = 1 << iota
	Medium
	Heavy

	AllVishraams = Light | Medium | Heavy
)

var vishraams = []struct {
	v     Vishraam
	name  string
	glyph string
}{
	{Light, "light", "."},
	{Medium, "medium", ","},
	{Heavy, "heavy", ";"},
}

// Glyphs returns the punctuation marks of the pauses in v, lightest first.
func (v Vishraam) Glyphs() []string {
	var g []string
	for _, x := range vishraams {
		if v&x.v != 0 {
			g = append(g, x.glyph)
		}
	}
	return g
}

func (v Vishraam) String() string {
	var names []string
	for _, x := range vishraams {
		if v&x.v != 0 {
			names = append(names, x.name)
		}
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "|")
}

// ParseVishraam returns the pause named s. Names are light, medium and
// heavy, in any case.
func ParseVishraam(s string) (Vishraam, error) {
	for _, x := range vishraams {
		if strings.EqualFold(s, x.name) {
			return x.v, nil
		}
	}
	return 0, fmt.Errorf("mapping: unknown vishraam %q", s)
}

// VishraamGlyphs returns every pause mark as a single string.
func VishraamGlyphs() string {
	return strings.Join(AllVishraams.Glyphs(), "")
}

// Boundaries returns the characters that separate words for the purpose of
// contextual rules: a space followed by every pause mark.
func Boundaries() string {
	return " " + VishraamGlyphs()
}
