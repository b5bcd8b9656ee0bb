// Copyright 2026 The Gurmukhi Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rewrite

import (
	"regexp"
	"sort"

	"github.com/gurmukhi-go/gurmukhi/internal/pattern"
)

// A Table substitutes symbols in a single left-to-right pass. Where several
// keys match at the same position the longest one wins. Replacement text is
// never rescanned.
type Table struct {
	re *regexp.Regexp
	m  map[string]string
}

// NewTable returns a table for m. Empty keys are ignored.
func NewTable(m map[string]string) *Table {
	keys := make([]string, 0, len(m))
	for k := range m {
		if k != "" {
			keys = append(keys, k)
		}
	}
	// Sort for a deterministic pattern; Alternation then orders by length.
	sort.Strings(keys)
	t := &Table{m: m}
	if len(keys) > 0 {
		t.re = regexp.MustCompile(pattern.Alternation(keys...))
	}
	return t
}

// Replace returns s with every key replaced by its value.
func (t *Table) Replace(s string) string {
	if t.re == nil || s == "" {
		return s
	}
	return t.re.ReplaceAllStringFunc(s, t.lookup)
}

func (t *Table) lookup(k string) string { return t.m[k] }

// Rule returns the table as a rule so that it can take part in a chain.
func (t *Table) Rule() Rule {
	if t.re == nil {
		return Func(`[^\x00-\x{10FFFF}]`, t.lookup)
	}
	return Rule{re: t.re, f: t.lookup}
}

