// Copyright 2026 The Gurmukhi Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package translit transliterates Unicode Gurmukhi into other scripts.
//
// ToEnglish produces a readable Latin romanization. Gurmukhi does not write
// the inherent vowel that follows most consonants, so the romanizer decides
// for each consonant whether it is pronounced, by looking at the glyphs that
// follow it. ToHindi and ToShahmukhi are table driven.
//
// All functions pass unknown characters through unchanged and are safe for
// concurrent use.
package translit // import "github.com/gurmukhi-go/gurmukhi/translit"
