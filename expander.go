package furigana

import (
	"slices"
	"strings"

	"github.com/npillmayer/furigana/kana"
)

// okuriganaSeparator separates stem and okurigana in kun readings: "がんば.る".
const okuriganaSeparator = "."

// Inflected forms of a verb ending: 書く → 書き.
var suffixAlternates = map[string]string{
	"く": "き",
	"ぐ": "ぎ",
	"す": "し",
	"ず": "じ",
	"む": "み",
	"る": "り",
	"ぶ": "び",
	"う": "い",
}

// Endings which may be geminated before a following character: 学 がく → がっ.
var geminable = []rune{'つ', 'く', 'き', 'ち'}

// Voiced forms of an initial mora in non-initial position (rendaku).
var rendaku = map[rune][]rune{
	'か': {'が'},
	'き': {'ぎ'},
	'く': {'ぐ'},
	'け': {'げ'},
	'こ': {'ご'},
	'さ': {'ざ'},
	'し': {'じ'},
	'す': {'ず'},
	'せ': {'ぜ'},
	'そ': {'ぞ'},
	'た': {'だ'},
	'ち': {'ぢ', 'じ'},
	'つ': {'づ', 'ず'},
	'て': {'で'},
	'と': {'ど'},
	'は': {'ば', 'ぱ'},
	'ひ': {'び', 'ぴ'},
	'ふ': {'ぶ', 'ぷ'},
	'へ': {'べ', 'ぺ'},
	'ほ': {'ぼ', 'ぽ'},
}

// expandKanjiReadings returns the candidate readings of kanji k at a position
// of a written form. Okurigana notation is resolved, and gemination and
// rendaku variants are added depending on the position.
func expandKanjiReadings(k *Kanji, isFirst, isLast, withNanori bool) []string {
	declared := k.Readings
	if withNanori {
		declared = k.ReadingsWithNanori
	}
	var readings []string
	for _, r := range declared {
		r = strings.ReplaceAll(r, "-", "")
		if !kana.IsAllKatakana(r) {
			r = strings.ReplaceAll(r, string(kana.ProlongedSound), "")
		}
		stem, suffix, dotted := strings.Cut(r, okuriganaSeparator)
		if !dotted {
			readings = append(readings, r)
			continue
		}
		if strings.Contains(suffix, okuriganaSeparator) {
			tracer().Errorf("kanji %c has malformed reading %q", k.Character, r)
			continue
		}
		readings = append(readings, stem, stem+suffix)
		if alt, ok := suffixAlternates[suffix]; ok {
			readings = append(readings, stem+alt)
		}
		if n := len([]rune(suffix)); n >= 2 && strings.HasSuffix(suffix, "る") {
			readings = append(readings, strings.TrimSuffix(stem+suffix, "る"))
		}
	}
	if !isLast {
		for _, r := range readings {
			if gem, ok := geminated(r); ok {
				readings = append(readings, gem)
			}
		}
	}
	if !isFirst {
		for _, r := range readings {
			readings = append(readings, voiced(r)...)
		}
	}
	return distinct(readings)
}

// expandSpecialReadings returns the readings of expression x at a position of
// a written form, adding gemination and rendaku variants. Variants rewrite
// the kana of the parts covering the first or last character of x; readings
// leaving that character uncovered get no variant.
func expandSpecialReadings(x *SpecialExpression, isFirst, isLast bool) []SpecialReading {
	readings := slices.Clone(x.Readings)
	last := len([]rune(x.Text)) - 1
	if !isLast {
		for _, sr := range readings {
			gem, ok := geminated(sr.Kana)
			if !ok {
				continue
			}
			variant := SpecialReading{Kana: gem, Parts: slices.Clone(sr.Parts)}
			rewritten := false
			for i, p := range variant.Parts {
				if p.Start <= last && p.End >= last {
					variant.Parts[i].Kana, rewritten = geminated(p.Kana)
				}
			}
			if rewritten {
				readings = append(readings, variant)
			}
		}
	}
	if !isFirst {
		for _, sr := range readings {
			for _, v := range voiced(sr.Kana) {
				variant := SpecialReading{Kana: v, Parts: slices.Clone(sr.Parts)}
				rewritten := false
				for i, p := range variant.Parts {
					if p.Start == 0 {
						variant.Parts[i].Kana = withInitial(p.Kana, []rune(v)[0])
						rewritten = true
					}
				}
				if rewritten {
					readings = append(readings, variant)
				}
			}
		}
	}
	out := readings[:0:0]
	for _, sr := range readings {
		if !slices.ContainsFunc(out, sr.equal) {
			out = append(out, sr)
		}
	}
	return out
}

func (sr SpecialReading) equal(other SpecialReading) bool {
	return sr.Kana == other.Kana && slices.Equal(sr.Parts, other.Parts)
}

// geminated replaces a geminable final mora by っ.
func geminated(r string) (string, bool) {
	rr := []rune(r)
	if len(rr) == 0 || !slices.Contains(geminable, rr[len(rr)-1]) {
		return "", false
	}
	rr[len(rr)-1] = kana.SmallTsu
	return string(rr), true
}

// voiced returns the rendaku variants of r.
func voiced(r string) []string {
	rr := []rune(r)
	if len(rr) == 0 {
		return nil
	}
	var variants []string
	for _, v := range rendaku[rr[0]] {
		variants = append(variants, withInitial(r, v))
	}
	return variants
}

func withInitial(s string, initial rune) string {
	rr := []rune(s)
	if len(rr) == 0 {
		return s
	}
	rr[0] = initial
	return string(rr)
}

func distinct(ss []string) []string {
	out := ss[:0:0]
	for _, s := range ss {
		if s != "" && !slices.Contains(out, s) {
			out = append(out, s)
		}
	}
	return out
}
