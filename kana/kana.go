/*
Package kana classifies and converts Japanese phonetic characters.

Hiragana and katakana are treated as two scripts of one alphabet: most
comparisons in package furigana fold both to hiragana before testing for
equality. Functions in this package are pure and safe for concurrent use.
*/
package kana

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

const (
	hiraganaFirst = 'ぁ' // U+3041
	hiraganaLast  = 'ゖ' // U+3096
	katakanaFirst = 'ァ' // U+30A1
	katakanaLast  = 'ヶ' // U+30F6
	scriptOffset  = katakanaFirst - hiraganaFirst
)

// Punctuation and marks which are read as part of a kana string.
const (
	ProlongedSound = 'ー'
	MiddleDot      = '・'
	SmallTsu       = 'っ'
	IterationMark  = '々'
)

// IsKana returns true for hiragana, katakana and the marks a kana
// pronunciation may contain (prolonged sound mark, middle dot, ideographic
// comma and full stop).
func IsKana(r rune) bool {
	switch {
	case r >= hiraganaFirst && r <= hiraganaLast:
		return true
	case r >= 'ゝ' && r <= 'ゟ':
		return true
	case r == '、' || r == '。':
		return true
	}
	return IsKatakana(r) || r == MiddleDot
}

// IsKatakana returns true for katakana letters, including the prolonged
// sound mark and the small katakana extension block.
func IsKatakana(r rune) bool {
	switch {
	case r >= katakanaFirst && r <= 'ヺ':
		return true
	case r >= ProlongedSound && r <= 'ヿ':
		return true
	case r >= 'ㇰ' && r <= 'ㇿ':
		return true
	}
	return false
}

// IsAllKana is true if every character of s is kana. It is false for the
// empty string.
func IsAllKana(s string) bool {
	return allOf(s, IsKana)
}

// IsAllKatakana is true if every character of s is katakana. It is false
// for the empty string.
func IsAllKatakana(s string) bool {
	return allOf(s, IsKatakana)
}

func allOf(s string, pred func(rune) bool) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !pred(r) {
			return false
		}
	}
	return true
}

// ToHiragana folds katakana letters to hiragana. Characters without a
// hiragana counterpart (ー, ヷ, ヺ, …) are left alone.
func ToHiragana(s string) string {
	return strings.Map(RuneToHiragana, s)
}

// ToKatakana folds hiragana letters to katakana.
func ToKatakana(s string) string {
	return strings.Map(func(r rune) rune {
		if (r >= hiraganaFirst && r <= hiraganaLast) || r == 'ゝ' || r == 'ゞ' {
			return r + scriptOffset
		}
		return r
	}, s)
}

// RuneToHiragana is ToHiragana for a single character.
func RuneToHiragana(r rune) rune {
	if (r >= katakanaFirst && r <= katakanaLast) || r == 'ヽ' || r == 'ヾ' {
		return r - scriptOffset
	}
	return r
}

// AreEquivalent reports whether two kana strings read the same, ignoring the
// script they are written in and any middle dots.
//
//	AreEquivalent("ボール・ペン", "ぼーるぺん") == true
func AreEquivalent(a, b string) bool {
	return fold(a) == fold(b)
}

func fold(s string) string {
	return ToHiragana(strings.ReplaceAll(s, string(MiddleDot), ""))
}

// Normalize brings dictionary input into the form the resolver expects:
// half-width katakana are widened, full-width ASCII is narrowed and combining
// voicing marks are composed (か + U+3099 becomes が).
//
// CJK compatibility ideographs (U+F900 block, U+2F800 block) are kept as
// they are, although NFC would map them to their unified counterparts, so
// written forms are reproduced as found in the dictionary.
func Normalize(s string) string {
	s = width.Fold.String(s)
	var b strings.Builder
	start := 0
	for i, r := range s {
		if isCompatibilityIdeograph(r) {
			b.WriteString(norm.NFC.String(s[start:i]))
			b.WriteRune(r)
			start = i + utf8.RuneLen(r)
		}
	}
	if start == 0 {
		return norm.NFC.String(s)
	}
	b.WriteString(norm.NFC.String(s[start:]))
	return b.String()
}

func isCompatibilityIdeograph(r rune) bool {
	return (r >= 0xF900 && r <= 0xFAFF) || (r >= 0x2F800 && r <= 0x2FA1F)
}
