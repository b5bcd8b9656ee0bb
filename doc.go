// Copyright 2026 The Gurmukhi Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gurmukhi converts Gurmukhi text between the legacy font encoding
// and Unicode, transliterates it into Latin, Devanagari and Shahmukhi script,
// and analyses its syllable weights.
//
// Much of the Gurmukhi text in circulation was typed for fonts that map
// Gurmukhi glyphs onto the code points of Latin letters, in the order the
// glyphs are drawn rather than the order they are read. ToUnicode and
// ToLegacy convert between this encoding and Unicode. The remaining
// functions take Unicode text.
//
// The functions in this package are wrappers around the packages that
// implement them:
//
//	legacy   conversion between the legacy encoding and Unicode
//	translit transliteration into Latin, Devanagari and Shahmukhi
//	prosody  syllable weights
//	strip    removal of pause marks, line endings and accents
//	search   script detection, first letters and Gurmukhi-aware matching
//
// No function returns an error. Characters that have no mapping are passed
// through unchanged, and empty input yields empty output. All functions and
// Transformer values are safe for concurrent use; the tables they use are
// built once during initialization and never modified.
package gurmukhi // import "github.com/gurmukhi-go/gurmukhi"
