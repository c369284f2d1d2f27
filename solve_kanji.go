package furigana

import (
	"slices"

	"github.com/npillmayer/furigana/kana"
)

// solveByKanji reads the written form character by character and tries every
// known reading of each kanji against the pronunciation. It searches
// exhaustively and returns every complete reading found.
//
// Example: 頑張る (がんばる)
//
//	頑 reads がん, 張 reads ば (from は, rendaku), る reads as written
func solveByKanji(j *job) []*Solution {
	var found []*Solution
	j.readByKanji(0, 0, nil, func(parts []Part) {
		found = append(found, j.solution(parts))
	})
	return found
}

// readByKanji continues a reading at position kanjiPos of the written form
// and kanaPos of the pronunciation, having produced parts so far. It calls
// emit for every complete reading and reports whether it did.
func (j *job) readByKanji(kanjiPos, kanaPos int, parts []Part, emit func([]Part)) bool {
	if kanjiPos == len(j.form) && kanaPos == len(j.reading) {
		emit(parts)
		return true
	} else if kanjiPos >= len(j.form) || kanaPos >= len(j.reading) {
		return false
	}
	if j.readExpressions(kanjiPos, kanaPos, parts, emit) {
		return true // special expressions take precedence at this position
	}
	c := j.form[kanjiPos]
	if c == kana.IterationMark && kanjiPos > 0 {
		c = j.form[kanjiPos-1]
	}
	if k, ok := j.res.Kanji(c); ok {
		return j.readAsKanji(kanjiPos, kanaPos, parts, k, emit)
	}
	r := j.reading[kanaPos]
	if !kana.IsKana(c) || kana.RuneToHiragana(c) != kana.RuneToHiragana(r) {
		return false
	}
	return j.readByKanji(kanjiPos+1, kanaPos+1, parts, emit)
}

// readAsKanji tries every candidate reading of k at the current position.
func (j *job) readAsKanji(kanjiPos, kanaPos int, parts []Part, k *Kanji, emit func([]Part)) bool {
	readings := expandKanjiReadings(k, kanjiPos == 0, kanjiPos == len(j.form)-1, j.withNanori)
	for i, r := range readings {
		readings[i] = kana.ToHiragana(r)
	}
	remainingChars := len(j.form) - kanjiPos - 1
	solved := false
	for end := kanaPos + 1; end <= len(j.reading) && end-kanaPos <= maxKanaPerKanji; end++ {
		if len(j.reading)-end < remainingChars {
			break // every remaining character needs at least one kana
		}
		chunk := string(j.reading[kanaPos:end])
		if !slices.Contains(readings, kana.ToHiragana(chunk)) {
			continue
		}
		next := append(slices.Clip(parts), Part{Start: kanjiPos, End: kanjiPos, Kana: chunk})
		if j.readByKanji(kanjiPos+1, end, next, emit) {
			solved = true
		}
	}
	return solved
}

// readExpressions tries all special expressions starting at kanjiPos,
// longest first. It reports whether any of them led to a complete reading.
func (j *job) readExpressions(kanjiPos, kanaPos int, parts []Part, emit func([]Part)) bool {
	solved := false
	for _, x := range j.res.ExpressionsAt(j.form, kanjiPos) {
		last := kanjiPos + len([]rune(x.Text)) - 1
		for _, sr := range expandSpecialReadings(x, kanjiPos == 0, last == len(j.form)-1) {
			n, ok := j.matchReading(kanaPos, sr.Kana)
			if !ok {
				continue
			}
			next := slices.Clip(parts)
			for _, p := range sr.Parts {
				next = append(next, p.shift(kanjiPos))
			}
			if j.readByKanji(last+1, kanaPos+n, next, emit) {
				solved = true
			}
		}
	}
	return solved
}

// matchReading checks if the pronunciation continues with kana r at
// position kanaPos, tolerating differences in script. It returns the length
// of r in characters.
func (j *job) matchReading(kanaPos int, r string) (int, bool) {
	rr := []rune(r)
	if len(rr) == 0 || kanaPos+len(rr) > len(j.reading) {
		return 0, false
	}
	if !kana.AreEquivalent(string(j.reading[kanaPos:kanaPos+len(rr)]), r) {
		return 0, false
	}
	return len(rr), true
}
