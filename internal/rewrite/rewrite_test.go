// Copyright 2026 The Gurmukhi Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rewrite

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"golang.org/x/text/transform"
)

func TestChainOrder(t *testing.T) {
	// The second rule only fires on the form produced by the first.
	c := NewChain("test",
		New(`i(.)`, "${1}i"),
		New(`ki`, "K"),
	)
	testCases := []struct{ in, want string }{
		{"", ""},
		{"i", "i"},
		{"ik", "K"},
		{"ikik", "KK"},
		{"iik", "iik"},
	}
	for _, tc := range testCases {
		if got := c.Apply(tc.in); got != tc.want {
			t.Errorf("Apply(%+q) = %+q; want %+q", tc.in, got, tc.want)
		}
	}
}

func TestRuleExpand(t *testing.T) {
	// $1i would name a group called "1i".
	r := New(`(.)x`, "${1}i")
	if got, want := r.Apply("ax bx"), "ai bi"; got != want {
		t.Errorf("got %+q; want %+q", got, want)
	}
}

func TestWord(t *testing.T) {
	testCases := []struct {
		pattern, repl string
		in, want      string
	}{
		// Î is a letter, so c inside Îc does not start a word.
		{`\bc`, "C", "Îc c", "Îc C"},
		{`c\b`, "C", "cÎ c", "cÎ C"},
		{`\bc\b`, "C", "c_c c ਕc", "c_c C ਕc"},
		// Submatch references skip the boundary groups.
		{`([a-z])\b( )`, "${2}${1}", "ab Îc d", "a bÎ cd"},
		{`(x)(\b|y)(z)`, "${3}${2}${1}", "xyz x.z", "zyx x.z"},
		{`\bq`, "Q", "", ""},
		{`\bq`, "Q", "abc", "abc"},
	}
	for _, tc := range testCases {
		if got := Word(tc.pattern, tc.repl).Apply(tc.in); got != tc.want {
			t.Errorf("Word(%q, %q).Apply(%+q) = %+q; want %+q", tc.pattern, tc.repl, tc.in, got, tc.want)
		}
	}
}

func TestTable(t *testing.T) {
	tb := NewTable(map[string]string{
		"A":  "ਅ",
		"Aw": "ਆ",
		"w":  "ਾ",
		"ਅ":  "should not be rescanned",
		"":   "ignored",
	})
	testCases := []struct{ in, want string }{
		{"", ""},
		{"A", "ਅ"},
		{"Aw", "ਆ"},
		{"AAw", "ਅਆ"},
		{"wA", "ਾਅ"},
		{"x.A", "x.ਅ"},
	}
	for _, tc := range testCases {
		if got := tb.Replace(tc.in); got != tc.want {
			t.Errorf("Replace(%+q) = %+q; want %+q", tc.in, got, tc.want)
		}
		if got := NewChain("table", tb.Rule()).Apply(tc.in); got != tc.want {
			t.Errorf("Rule().Apply(%+q) = %+q; want %+q", tc.in, got, tc.want)
		}
	}
}

func TestEmptyTable(t *testing.T) {
	tb := NewTable(nil)
	if got := tb.Replace("abc"); got != "abc" {
		t.Errorf("got %q", got)
	}
	if got := tb.Rule().Apply("abc"); got != "abc" {
		t.Errorf("got %q", got)
	}
}

func TestLines(t *testing.T) {
	upper := Lines(strings.ToUpper)
	testCases := []struct{ in, want string }{
		{"", ""},
		{"a", "A"},
		{"a\n", "A\n"},
		{"a\nb", "A\nB"},
		{"\n\n", "\n\n"},
		{strings.Repeat("ab\n", 1000), strings.Repeat("AB\n", 1000)},
	}
	for _, tc := range testCases {
		got, _, err := transform.String(upper, tc.in)
		if err != nil {
			t.Errorf("%+q: unexpected error %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("%+q: got %+q; want %+q", tc.in, got, tc.want)
		}
	}
}

func TestLinesPartial(t *testing.T) {
	tr := Lines(strings.ToUpper)
	dst := make([]byte, 16)
	nDst, nSrc, err := tr.Transform(dst, []byte("ab\ncd"), false)
	if err != nil || nSrc != 5 || string(dst[:nDst]) != "AB\n" {
		t.Errorf("got %q, %d, %v; want \"AB\\n\", 5, nil", dst[:nDst], nSrc, err)
	}
	nDst, nSrc, err = tr.Transform(dst, []byte("e"), true)
	if err != nil || nSrc != 1 || string(dst[:nDst]) != "CDE" {
		t.Errorf("got %q, %d, %v; want \"CDE\", 1, nil", dst[:nDst], nSrc, err)
	}
}

func TestLinesShortDst(t *testing.T) {
	tr := Lines(strings.ToUpper)
	dst := make([]byte, 2)
	nDst, nSrc, err := tr.Transform(dst, []byte("ab\n"), true)
	if err != transform.ErrShortDst || nSrc != 3 || string(dst[:nDst]) != "AB" {
		t.Errorf("got %q, %d, %v; want \"AB\", 3, ErrShortDst", dst[:nDst], nSrc, err)
	}
	nDst, nSrc, err = tr.Transform(dst, nil, true)
	if err != nil || nSrc != 0 || string(dst[:nDst]) != "\n" {
		t.Errorf("got %q, %d, %v; want \"\\n\", 0, nil", dst[:nDst], nSrc, err)
	}
}

func TestLinesReset(t *testing.T) {
	tr := Lines(strings.ToUpper)
	dst := make([]byte, 16)
	tr.Transform(dst, []byte("stale"), false)
	tr.Reset()
	nDst, _, _ := tr.Transform(dst, []byte("x"), true)
	if got := string(dst[:nDst]); got != "X" {
		t.Errorf("got %q; want %q", got, "X")
	}
}

// Lines longer than the internal buffers of transform.Reader and
// transform.Chain must come through whole.
func TestLinesLong(t *testing.T) {
	line := strings.Repeat("abc ", 5000)
	in := line + "\n" + line
	want := strings.ToUpper(in)

	r := transform.NewReader(strings.NewReader(in), Lines(strings.ToUpper))
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("Reader: %v", err)
	}
	if string(got) != want {
		t.Errorf("Reader: got %d bytes; want %d", len(got), len(want))
	}

	chain := transform.Chain(Lines(strings.ToUpper), Lines(strings.ToLower))
	s, _, err := transform.String(chain, in)
	if err != nil {
		t.Fatalf("Chain: %v", err)
	}
	if s != in {
		t.Errorf("Chain: got %d bytes; want %d", len(s), len(in))
	}

	var buf bytes.Buffer
	w := transform.NewWriter(&buf, Lines(strings.ToUpper))
	if _, err := io.WriteString(w, in); err != nil {
		t.Fatalf("Writer: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Writer: %v", err)
	}
	if buf.String() != want {
		t.Errorf("Writer: got %d bytes; want %d", buf.Len(), len(want))
	}
}

func TestTrace(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	c := NewChain("trace", New("a", "b"), New("x", "y"))
	c.Apply("aa")
	out := buf.String()
	if !strings.Contains(out, "chain=trace") || !strings.Contains(out, "after=bb") {
		t.Errorf("missing trace record in %q", out)
	}
	if strings.Count(out, "msg=rewrite") != 1 {
		t.Errorf("want exactly one record for the rule that fired, got %q", out)
	}
}
