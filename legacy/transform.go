// Copyright 2026 The Gurmukhi Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package legacy

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/gurmukhi-go/gurmukhi/internal/rewrite"
)

// NewDecoder returns a transformer that converts UTF-8 text in the legacy
// glyph encoding to Unicode Gurmukhi. Input is converted one line at a time.
func NewDecoder() transform.Transformer {
	return rewrite.Lines(ToUnicode)
}

// NewEncoder returns a transformer that converts Unicode Gurmukhi to the
// legacy glyph encoding, one line at a time.
func NewEncoder() transform.Transformer {
	return rewrite.Lines(ToLegacy)
}

// The legacy fonts assign glyphs to the code points of Windows-1252, and
// files written for them are usually stored in that code page. Glyphs such
// as † (0x86) and œ (0x9C) only decode correctly with it; ISO 8859-1 maps
// those bytes to C1 controls.
var fontCharmap = charmap.Windows1252

// NewFontDecoder returns a transformer that reads raw bytes of a file
// written for a legacy font and produces Unicode Gurmukhi.
func NewFontDecoder() transform.Transformer {
	return transform.Chain(fontCharmap.NewDecoder(), NewDecoder())
}

// NewFontEncoder returns a transformer that converts Unicode Gurmukhi to
// bytes for a legacy font. Characters that the code page cannot represent
// are replaced by the code page's replacement byte.
func NewFontEncoder() transform.Transformer {
	return transform.Chain(NewEncoder(), encoding.ReplaceUnsupported(fontCharmap.NewEncoder()))
}
