// Copyright 2026 The Gurmukhi Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mapping

import "maps"

// accents maps letters carrying a nukta or an independent vowel to the
// letter they are written on.
var accents = map[rune]rune{
	'\u0a36': 'ਸ', // ਸ with nukta
	'\u0a59': 'ਖ', // ਖ with nukta
	'\u0a5a': 'ਗ', // ਗ with nukta
	'\u0a5b': 'ਜ', // ਜ with nukta
	'\u0a5e': 'ਫ', // ਫ with nukta
	'\u0a33': 'ਲ', // ਲ with nukta
	'ਇ': 'ੲ',
	'ਈ': 'ੲ',
	'ਏ': 'ੲ',
	'ਉ': 'ੳ',
	'ਊ': 'ੳ',
	'ਓ': 'ੳ',
	'ਆ': 'ਅ',
	'ਐ': 'ਅ',
	'ਔ': 'ਅ',
}

// Accents returns the base letter of each accented Gurmukhi letter.
func Accents() map[rune]rune { return maps.Clone(accents) }

// VowelCarriers maps each independent vowel to the carrier it is written
// on. It is the vowel part of Accents.
func VowelCarriers() map[rune]rune {
	m := map[rune]rune{}
	for k, v := range accents {
		if v == 'ੲ' || v == 'ੳ' || v == 'ਅ' {
			m[k] = v
		}
	}
	return m
}

// Gurmukhi and Devanagari share the ISCII layout, so most letters sit at the
// same offset within their Unicode blocks.
const devanagariOffset = 0x0A00 - 0x0900

var devanagariOverrides = map[rune]string{
	'ੰ': "ं",
	'ੲ': "इ",
	'ੳ': "उ",
	'ੑ': "॑",
	'ੵ': "्य",
}

// devanagariShared lists the Gurmukhi code points that have a counterpart
// at the block offset.
var devanagariShared = [][2]rune{
	{0x0A01, 0x0A03},
	{0x0A05, 0x0A0A},
	{0x0A0F, 0x0A10},
	{0x0A13, 0x0A28},
	{0x0A2A, 0x0A30},
	{0x0A32, 0x0A33},
	{0x0A35, 0x0A36},
	{0x0A38, 0x0A39},
	{0x0A3C, 0x0A3C},
	{0x0A3E, 0x0A42},
	{0x0A47, 0x0A48},
	{0x0A4B, 0x0A4D},
	{0x0A59, 0x0A5C},
	{0x0A5E, 0x0A5E},
	{0x0A66, 0x0A6F},
}

// Devanagari returns the Gurmukhi to Devanagari table.
func Devanagari() map[string]string {
	m := map[string]string{}
	for _, r := range devanagariShared {
		for c := r[0]; c <= r[1]; c++ {
			m[string(c)] = string(c - devanagariOffset)
		}
	}
	for k, v := range devanagariOverrides {
		m[string(k)] = v
	}
	return m
}

// shahmukhi maps Gurmukhi to the Perso-Arabic script used for Punjabi in
// Pakistan.
var shahmukhi = map[string]string{
	// Consonants.
	"ਸ": "س",
	"ਹ": "ه",
	"ਕ": "ک",
	"ਖ": "کھ",
	"ਗ": "گ",
	"ਘ": "گھ",
	"ਙ": "ن",
	"ਚ": "چ",
	"ਛ": "چھ",
	"ਜ": "ج",
	"ਝ": "جھ",
	"ਞ": "ن",
	"ਟ": "ٹ",
	"ਠ": "ٹھ",
	"ਡ": "ڈ",
	"ਢ": "ڈھ",
	"ਣ": "ن",
	"ਤ": "ت",
	"ਥ": "تھ",
	"ਦ": "د",
	"ਧ": "دھ",
	"ਨ": "ن",
	"ਪ": "پ",
	"ਫ": "پھ",
	"ਬ": "ب",
	"ਭ": "بھ",
	"ਮ": "م",
	"ਯ": "ی",
	"ਰ": "ر",
	"ਲ": "ل",
	"ਵ": "و",
	"ੜ": "ڑ",

	// Consonants with nukta, precomposed and decomposed.
	"\u0a36":       "ش",
	"\u0a38\u0a3c": "ش",
	"\u0a59":       "خ",
	"\u0a16\u0a3c": "خ",
	"\u0a5a":       "غ",
	"\u0a17\u0a3c": "غ",
	"\u0a5b":       "ز",
	"\u0a1c\u0a3c": "ز",
	"\u0a5e":       "ف",
	"\u0a2b\u0a3c": "ف",
	"\u0a33":       "ل",
	"\u0a32\u0a3c": "ل",

	// Independent vowels.
	"ੳ": "ا",
	"ਅ": "ا",
	"ੲ": "ا",
	"ਆ": "آ",
	"ਇ": "ِا",
	"ਈ": "ای",
	"ਉ": "اُ",
	"ਊ": "اُو",
	"ਏ": "اے",
	"ਐ": "اَے",
	"ਓ": "او",
	"ਔ": "اَو",

	// Vowel signs.
	"ਾ": "ا",
	"ਿ": "ِ",
	"ੀ": "ی",
	"ੁ": "ُ",
	"ੂ": "ُو",
	"ੇ": "ے",
	"ੈ": "َے",
	"ੋ": "و",
	"ੌ": "َو",

	// Signs.
	"ੰ": "ں",
	"ਂ": "ں",
	"ੱ": "ّ",
	"੍": "",
	"਼": "",
	"ੵ": "ی",
	"ੑ": "",

	// Punctuation and digits.
	"।": "۔",
	"॥": "۔۔",
	"੦": "۰",
	"੧": "۱",
	"੨": "۲",
	"੩": "۳",
	"੪": "۴",
	"੫": "۵",
	"੬": "۶",
	"੭": "۷",
	"੮": "۸",
	"੯": "۹",
}

// Shahmukhi returns the Gurmukhi to Shahmukhi table.
func Shahmukhi() map[string]string { return maps.Clone(shahmukhi) }
