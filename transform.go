// Copyright 2026 The Gurmukhi Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gurmukhi

import (
	"golang.org/x/text/transform"

	"github.com/gurmukhi-go/gurmukhi/internal/rewrite"
	"github.com/gurmukhi-go/gurmukhi/legacy"
	"github.com/gurmukhi-go/gurmukhi/translit"
)

// Transformer implements the transform.Transformer interface. Conversion
// happens one line at a time, so a Transformer can be used with
// transform.NewReader and transform.NewWriter on large inputs. A line is
// buffered until its newline arrives, however long it is.
//
// A Transformer holds the state of the current line. Each goroutine needs
// its own.
type Transformer struct {
	t transform.Transformer
}

// Reset implements the transform.Transformer interface.
func (t Transformer) Reset() { t.t.Reset() }

// Transform implements the Transformer interface.
func (t Transformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	return t.t.Transform(dst, src, atEOF)
}

// Bytes returns a new byte slice with the result of applying t to b.
func (t Transformer) Bytes(b []byte) []byte {
	b, _, _ = transform.Bytes(t, b)
	return b
}

// String returns a string with the result of applying t to s.
func (t Transformer) String(s string) string {
	s, _, _ = transform.String(t, s)
	return s
}

// Unicode returns a transform that converts legacy text to Unicode.
func Unicode() Transformer {
	return Transformer{legacy.NewDecoder()}
}

// Legacy returns a transform that converts Unicode text to the legacy
// encoding.
func Legacy() Transformer {
	return Transformer{legacy.NewEncoder()}
}

// FontDecoder returns a transform that reads the Windows-1252 bytes of a
// file typed in a legacy font and produces Unicode Gurmukhi in UTF-8.
func FontDecoder() Transformer {
	return Transformer{legacy.NewFontDecoder()}
}

// FontEncoder returns a transform that converts Unicode Gurmukhi to
// Windows-1252 bytes for a legacy font.
func FontEncoder() Transformer {
	return Transformer{legacy.NewFontEncoder()}
}

// English returns a transform that transliterates Unicode Gurmukhi to Latin.
func English() Transformer {
	return Transformer{rewrite.Lines(translit.ToEnglish)}
}

// Hindi returns a transform that transliterates Unicode Gurmukhi to
// Devanagari.
func Hindi() Transformer {
	return Transformer{rewrite.Lines(translit.ToHindi)}
}

// Shahmukhi returns a transform that transliterates Unicode Gurmukhi to
// Shahmukhi.
func Shahmukhi() Transformer {
	return Transformer{rewrite.Lines(translit.ToShahmukhi)}
}
