// Package soundex implements the American Soundex phonetic code used by the
// index builder and scorer to group similar-sounding names.
package soundex

import (
	"strings"
	"unicode"
)

var codes = map[rune]byte{
	'B': '1', 'F': '1', 'P': '1', 'V': '1',
	'C': '2', 'G': '2', 'J': '2', 'K': '2', 'Q': '2', 'S': '2', 'X': '2', 'Z': '2',
	'D': '3', 'T': '3',
	'L': '4',
	'M': '5', 'N': '5',
	'R': '6',
}

// Code computes the 4-character Soundex code for s, or "" if s contains no
// letters after ASCII-folding. The algorithm mirrors the reference
// implementation: first letter kept verbatim, subsequent letters mapped to
// digit classes with adjacent duplicates collapsed (including a duplicate of
// the first letter's class, and across an intervening H or W), vowels and
// H/W/Y contributing no digit, result padded/truncated to 4 characters.
func Code(s string) string {
	letters := asciiLettersUpper(s)
	if letters == "" {
		return ""
	}
	first := letters[0]
	var digits strings.Builder
	prev := classOf(rune(first))
	for i := 1; i < len(letters); i++ {
		ch := rune(letters[i])
		if ch == 'H' || ch == 'W' {
			continue
		}
		d := classOf(ch)
		if d != 0 && d != prev {
			digits.WriteByte(d)
		}
		prev = d
	}
	out := string(first) + digits.String() + "000"
	return out[:4]
}

func classOf(ch rune) byte {
	if d, ok := codes[ch]; ok {
		return d
	}
	return 0
}

// asciiLettersUpper strips everything but ASCII letters from s (after
// stripping diacritics via a simple best-effort fold), upper-cased.
func asciiLettersUpper(s string) string {
	var b strings.Builder
	for _, r := range s {
		r = foldDiacritic(r)
		if r >= 'a' && r <= 'z' {
			r = unicode.ToUpper(r)
		}
		if r >= 'A' && r <= 'Z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// foldDiacritic maps a handful of common accented Latin letters to their
// ASCII base form; full NFKD folding happens upstream in normalize, this is
// a cheap backstop so soundex never sees multi-byte runes.
func foldDiacritic(r rune) rune {
	switch {
	case r >= 'À' && r <= 'Å', r == 'Ā':
		return 'A'
	case r >= 'È' && r <= 'Ë', r == 'Ē':
		return 'E'
	case r >= 'Ì' && r <= 'Ï', r == 'Ī':
		return 'I'
	case r >= 'Ò' && r <= 'Ö', r == 'Ō', r == 'Ø':
		return 'O'
	case r >= 'Ù' && r <= 'Ü', r == 'Ū':
		return 'U'
	case r == 'Ñ':
		return 'N'
	case r == 'Ç':
		return 'C'
	case r >= 'à' && r <= 'å', r == 'ā':
		return 'a'
	case r >= 'è' && r <= 'ë', r == 'ē':
		return 'e'
	case r >= 'ì' && r <= 'ï', r == 'ī':
		return 'i'
	case r >= 'ò' && r <= 'ö', r == 'ō', r == 'ø':
		return 'o'
	case r >= 'ù' && r <= 'ü', r == 'ū':
		return 'u'
	case r == 'ñ':
		return 'n'
	case r == 'ç':
		return 'c'
	}
	return r
}
