// Copyright 2026 The Gurmukhi Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rewrite applies ordered rewrite rules and symbol tables to text.
//
// A Chain is a fixed, ordered list of rules. Each rule sees the output of the
// rule before it, so later rules may rely on the normal form established by
// earlier ones. Chains are built once, usually in package variables, and are
// safe for concurrent use.
package rewrite

import (
	"context"
	"log/slog"
	"regexp"
)

// A Rule rewrites every non-overlapping match of a pattern.
type Rule struct {
	re   *regexp.Regexp
	repl string
	f    func(string) string

	// bounds holds the submatch index of each \b of a Word rule.
	bounds []int
}

// New returns a rule that replaces each match of pattern with repl. Inside
// repl, $1 or ${1} denotes the text of the first submatch, as in
// regexp.Regexp.Expand. New panics if pattern does not compile.
func New(pattern, repl string) Rule {
	return Rule{re: regexp.MustCompile(pattern), repl: repl}
}

// Func returns a rule that replaces each match of pattern with f(match).
func Func(pattern string, f func(string) string) Rule {
	return Rule{re: regexp.MustCompile(pattern), f: f}
}

// Apply returns s with the rule applied.
func (r Rule) Apply(s string) string {
	if r.bounds != nil {
		return r.applyWord(s)
	}
	if r.f != nil {
		return r.re.ReplaceAllStringFunc(s, r.f)
	}
	return r.re.ReplaceAllString(s, r.repl)
}

// String returns the source pattern of the rule.
func (r Rule) String() string { return r.re.String() }

// A Chain is an ordered list of rules.
type Chain struct {
	name  string
	rules []Rule
}

// NewChain returns a chain that applies rules in the given order. The name
// identifies the chain in debug logs.
func NewChain(name string, rules ...Rule) *Chain {
	return &Chain{name: name, rules: rules}
}

// Apply runs every rule of c over s in order.
func (c *Chain) Apply(s string) string {
	if s == "" {
		return s
	}
	l := Logger()
	trace := l.Enabled(context.Background(), slog.LevelDebug)
	for i, r := range c.rules {
		out := r.Apply(s)
		if trace && out != s {
			l.Debug("rewrite",
				slog.String("chain", c.name),
				slog.Int("rule", i),
				slog.String("pattern", r.String()),
				slog.String("before", s),
				slog.String("after", out))
		}
		s = out
	}
	return s
}
