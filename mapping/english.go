// Copyright 2026 The Gurmukhi Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mapping

import "maps"

// englishAtoms maps a single legacy glyph to its Latin rendering. The
// inherent vowel is not part of an atom; it is inserted separately.
var englishAtoms = map[string]string{
	// Vowel carriers.
	"a": "a",
	"A": "a",
	"e": "e",
	"E": "o",

	// Consonants.
	"s": "s",
	"h": "h",
	"k": "k",
	"K": "kh",
	"g": "g",
	"G": "gh",
	"|": "ng",
	"c": "ch",
	"C": "chh",
	"j": "j",
	"J": "jh",
	`\`: "ny",
	"t": "tt",
	"T": "tth",
	"f": "dd",
	"F": "dt",
	"x": "n",
	"q": "t",
	"Q": "th",
	"d": "d",
	"D": "dh",
	"n": "n",
	"p": "p",
	"P": "f",
	"b": "b",
	"B": "bh",
	"m": "m",
	"X": "y",
	"r": "r",
	"l": "l",
	"v": "v",
	"V": "rr",
	"S": "sh",
	"^": "kh",
	"Z": "g",
	"z": "z",
	"&": "f",
	"L": "l",

	// Vowel signs.
	"w": "aa",
	"i": "i",
	"I": "ee",
	"u": "u",
	"ü": "u",
	"U": "oo",
	"¨": "oo",
	"y": "e",
	"Y": "ai",
	"o": "o",
	"O": "au",

	// Nasalization. Parentheses are removed after insertion.
	"M": "(n)",
	"µ": "(n)",
	"N": "(n)",
	"ˆ": "(n)",
	"W": "aa(n)",
	"ƒ": "noo(n)",

	// Subjoined consonants.
	"H": "h",
	"R": "r",
	"®": "r",
	"Í": "v",
	"ç": "ch",
	"†": "tt",
	"œ": "t",
	"˜": "n",
	"´": "y",
	"Ï": "y",
	"Î": "y",
	"ì": "y",
	"ï": "y",
	"í": "y",
	"î": "y",
	"§": "hoo",

	// Silent glyphs.
	"`": "",
	"~": "",
	"¤": "",
	"æ": "",
	"Ç": "",
	"‚": "",
	"Ø": "",
	"@": "",

	// Symbols and punctuation.
	"Ú": "h",
	"[": "|",
	"]": "|",
	"Ò": "|",
	"<": "ik",
	">": " oankaar",
	"¡": "ik oankaar",
	"Å": "ik",
	"Æ": " oankaar",
	"å": "ik oankaar",
}

// EnglishAtoms returns the Latin atom for each legacy glyph.
func EnglishAtoms() map[string]string { return maps.Clone(englishAtoms) }

// NasalEndings lists the legacy glyphs whose atoms end in a nasal and never
// take the inherent vowel.
func NasalEndings() []string { return []string{"N", "M", "W", "ƒ"} }

// VowelOnsets lists the legacy glyphs whose atoms begin with a vowel and
// never take the inherent vowel.
func VowelOnsets() []string { return []string{"<", ">", "¡", "Å", "Æ", "å"} }
