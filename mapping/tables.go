// Copyright 2026 The Gurmukhi Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mapping

// legacyEntries lists the legacy font glyphs. Multi-glyph sequences come
// first; conversion always prefers the longest match.
var legacyEntries = []Entry{
	{Legacy: "<>", Unicode: "ੴ"},
	{Legacy: "AW", Unicode: "ਆਂ"},
	{Legacy: "Aw", Unicode: "ਆ"},
	{Legacy: "AY", Unicode: "ਐ"},
	{Legacy: "AO", Unicode: "ਔ"},
	{Legacy: "ei", Unicode: "ਇ"},
	{Legacy: "eI", Unicode: "ਈ"},
	{Legacy: "ey", Unicode: "ਏ"},
	{Legacy: "au", Unicode: "ਉ"},
	{Legacy: "aU", Unicode: "ਊ"},

	// Vowel carriers.
	{Legacy: "a", Unicode: "ੳ"},
	{Legacy: "A", Unicode: "ਅ"},
	{Legacy: "e", Unicode: "ੲ"},
	{Legacy: "E", Unicode: "ਓ"},

	// Consonants.
	{Legacy: "s", Unicode: "ਸ"},
	{Legacy: "h", Unicode: "ਹ"},
	{Legacy: "k", Unicode: "ਕ"},
	{Legacy: "K", Unicode: "ਖ"},
	{Legacy: "g", Unicode: "ਗ"},
	{Legacy: "G", Unicode: "ਘ"},
	{Legacy: "|", Unicode: "ਙ"},
	{Legacy: "c", Unicode: "ਚ"},
	{Legacy: "C", Unicode: "ਛ"},
	{Legacy: "j", Unicode: "ਜ"},
	{Legacy: "J", Unicode: "ਝ"},
	{Legacy: `\`, Unicode: "ਞ"},
	{Legacy: "t", Unicode: "ਟ"},
	{Legacy: "T", Unicode: "ਠ"},
	{Legacy: "f", Unicode: "ਡ"},
	{Legacy: "F", Unicode: "ਢ"},
	{Legacy: "x", Unicode: "ਣ"},
	{Legacy: "q", Unicode: "ਤ"},
	{Legacy: "Q", Unicode: "ਥ"},
	{Legacy: "d", Unicode: "ਦ"},
	{Legacy: "D", Unicode: "ਧ"},
	{Legacy: "n", Unicode: "ਨ"},
	{Legacy: "p", Unicode: "ਪ"},
	{Legacy: "P", Unicode: "ਫ"},
	{Legacy: "b", Unicode: "ਬ"},
	{Legacy: "B", Unicode: "ਭ"},
	{Legacy: "m", Unicode: "ਮ"},
	{Legacy: "X", Unicode: "ਯ"},
	{Legacy: "r", Unicode: "ਰ"},
	{Legacy: "l", Unicode: "ਲ"},
	{Legacy: "v", Unicode: "ਵ"},
	{Legacy: "V", Unicode: "ੜ"},

	// Consonants with nukta. The legacy font has one glyph for each; Unicode
	// has precomposed code points.
	{Legacy: "S", Unicode: "ਸ਼"},
	{Legacy: "^", Unicode: "ਖ਼"},
	{Legacy: "Z", Unicode: "ਗ਼"},
	{Legacy: "z", Unicode: "ਜ਼"},
	{Legacy: "&", Unicode: "ਫ਼"},
	{Legacy: "L", Unicode: "ਲ਼"},

	// Vowel signs.
	{Legacy: "w", Unicode: "ਾ"},
	{Legacy: "W", Unicode: "ਾਂ"},
	{Legacy: "i", Unicode: "ਿ"},
	{Legacy: "I", Unicode: "ੀ"},
	{Legacy: "u", Unicode: "ੁ"},
	{Legacy: "U", Unicode: "ੂ"},
	{Legacy: "y", Unicode: "ੇ"},
	{Legacy: "Y", Unicode: "ੈ"},
	{Legacy: "o", Unicode: "ੋ"},
	{Legacy: "O", Unicode: "ੌ"},

	// Nasalization, gemination and other signs.
	{Legacy: "M", Unicode: "ੰ"},
	{Legacy: "N", Unicode: "ਂ"},
	{Legacy: "`", Unicode: "ੱ"},
	{Legacy: "@", Unicode: "ੑ"},
	{Legacy: "æ", Unicode: "਼"},
	{Legacy: "Ú", Unicode: "ਃ"},
	{Legacy: "´", Unicode: "ੵ"},

	// Subjoined consonants.
	{Legacy: "H", Unicode: "੍ਹ"},
	{Legacy: "R", Unicode: "੍ਰ"},
	{Legacy: "Í", Unicode: "੍ਵ"},
	{Legacy: "ç", Unicode: "੍ਚ"},
	{Legacy: "†", Unicode: "੍ਟ"},
	{Legacy: "œ", Unicode: "੍ਤ"},
	{Legacy: "˜", Unicode: "੍ਨ"},
	{Legacy: "Î", Unicode: "੍ਯ"},

	// Digits and punctuation.
	{Legacy: "0", Unicode: "੦"},
	{Legacy: "1", Unicode: "੧"},
	{Legacy: "2", Unicode: "੨"},
	{Legacy: "3", Unicode: "੩"},
	{Legacy: "4", Unicode: "੪"},
	{Legacy: "5", Unicode: "੫"},
	{Legacy: "6", Unicode: "੬"},
	{Legacy: "7", Unicode: "੭"},
	{Legacy: "8", Unicode: "੮"},
	{Legacy: "9", Unicode: "੯"},
	{Legacy: "[", Unicode: "।"},
	{Legacy: "]", Unicode: "॥"},
	{Legacy: "Ç", Unicode: "☬"},
	{Legacy: "‚", Unicode: "❁"},

	// Variants. They render differently in the font but carry no distinct
	// meaning in Unicode.
	{Legacy: "<", Unicode: "ੴ", ImportOnly: true},
	{Legacy: ">", Unicode: "", ImportOnly: true},
	{Legacy: "¡", Unicode: "ੴ", ImportOnly: true},
	{Legacy: "Å", Unicode: "ੴ", ImportOnly: true},
	{Legacy: "Æ", Unicode: "", ImportOnly: true},
	{Legacy: "å", Unicode: "ੴ", ImportOnly: true},
	{Legacy: "ü", Unicode: "ੁ", ImportOnly: true},
	{Legacy: "¨", Unicode: "ੂ", ImportOnly: true},
	{Legacy: "µ", Unicode: "ੰ", ImportOnly: true},
	{Legacy: "ˆ", Unicode: "ਂ", ImportOnly: true},
	{Legacy: "~", Unicode: "ੱ", ImportOnly: true},
	{Legacy: "¤", Unicode: "ੱ", ImportOnly: true},
	{Legacy: "®", Unicode: "੍ਰ", ImportOnly: true},
	{Legacy: "Ï", Unicode: "ੵ", ImportOnly: true},
	{Legacy: "ì", Unicode: "ਯ", ImportOnly: true},
	{Legacy: "ï", Unicode: "ਯ", ImportOnly: true},
	{Legacy: "í", Unicode: "੍ਯ", ImportOnly: true},
	{Legacy: "î", Unicode: "੍ਯ", ImportOnly: true},
	{Legacy: "§", Unicode: "੍ਹੂ", ImportOnly: true},
	{Legacy: "ƒ", Unicode: "ਨੂੰ", ImportOnly: true},
	{Legacy: "Ò", Unicode: "॥", ImportOnly: true},
	{Legacy: "Ø", Unicode: "", ImportOnly: true},
}
