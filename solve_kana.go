package furigana

import (
	"slices"

	"github.com/npillmayer/furigana/kana"
)

// Kana which never start the reading of a kanji.
var impossibleCutStart = []rune{'っ', 'ょ', 'ゃ', 'ゅ', 'ん'}

// solveByKana reads the pronunciation greedily: every kanji gets the next
// kana, plus any following kana which cannot start a reading.
//
// Example: 阿呆陀羅 (あほんだら)
//
//	阿 reads あ, 呆 reads ほ and ん, 陀 reads だ, 羅 reads ら
//
// There is no backtracking; the solver yields at most one solution.
func solveByKana(j *job) []*Solution {
	var parts []Part
	kanaPos := 0
	for i := 0; i < len(j.form); i++ {
		if kanaPos >= len(j.reading) {
			return nil // characters left, but no kana
		}
		if last, n, xparts, ok := j.firstExpression(i, kanaPos); ok {
			parts = append(parts, xparts...)
			kanaPos += n
			i = last
			continue
		}
		c := j.form[i]
		eaten := kanaPos
		kanaPos++
		if j.isKanji(i) {
			for kanaPos < len(j.reading) && slices.Contains(impossibleCutStart, kana.RuneToHiragana(j.reading[kanaPos])) {
				kanaPos++
			}
			parts = append(parts, Part{Start: i, End: i, Kana: string(j.reading[eaten:kanaPos])})
		} else if !kana.IsKana(c) || c != j.reading[eaten] {
			return nil
		}
	}
	if kanaPos != len(j.reading) {
		return nil
	}
	return []*Solution{j.solution(parts)}
}

// firstExpression finds the longest special expression at kanjiPos with a
// reading matching the pronunciation at kanaPos. It returns the position of
// the expression's last character, the number of kana consumed and the
// expression's parts shifted to kanjiPos.
func (j *job) firstExpression(kanjiPos, kanaPos int) (last, n int, parts []Part, ok bool) {
	for _, x := range j.res.ExpressionsAt(j.form, kanjiPos) {
		last = kanjiPos + len([]rune(x.Text)) - 1
		for _, sr := range expandSpecialReadings(x, kanjiPos == 0, last == len(j.form)-1) {
			if n, ok = j.matchReading(kanaPos, sr.Kana); ok {
				for _, p := range sr.Parts {
					parts = append(parts, p.shift(kanjiPos))
				}
				return last, n, parts, true
			}
		}
	}
	return 0, 0, nil, false
}
