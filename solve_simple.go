package furigana

import (
	"regexp"
	"strings"

	"github.com/npillmayer/furigana/kana"
)

// solveOverride returns the solution stored for the entry, if any.
func solveOverride(j *job) []*Solution {
	if s, found := j.res.Override(j.entry); found {
		return []*Solution{j.solution(s.Parts)}
	}
	return nil
}

// solveSingleKanji handles forms with exactly one kanji, like お茶 or 食べる.
// Kana around the kanji are stripped from both ends of the pronunciation,
// the rest is the kanji's reading. Other characters around the kanji make
// the solver inapplicable.
func solveSingleKanji(j *job) []*Solution {
	kanjiPos, count := -1, 0
	for i := range j.form {
		if j.isKanji(i) {
			kanjiPos = i
			count++
		}
	}
	if count != 1 {
		return nil
	}
	front, back := 0, len(j.reading)
	for i := 0; i < kanjiPos; i++ {
		if front >= back || !kana.IsKana(j.form[i]) || j.reading[front] != j.form[i] {
			return nil
		}
		front++
	}
	for i := len(j.form) - 1; i > kanjiPos; i-- {
		if front >= back || !kana.IsKana(j.form[i]) || j.reading[back-1] != j.form[i] {
			return nil
		}
		back--
	}
	if front >= back {
		return nil
	}
	return []*Solution{j.solution([]Part{{Start: kanjiPos, End: kanjiPos, Kana: string(j.reading[front:back])}})}
}

// solveSingleCharacter assigns the whole pronunciation to a written form of
// one non-kana character.
func solveSingleCharacter(j *job) []*Solution {
	if len(j.form) != 1 || kana.IsKana(j.form[0]) {
		return nil
	}
	return []*Solution{j.solution([]Part{{Start: 0, End: 0, Kana: j.entry.Pronunciation}})}
}

// solveRepeatedKanji splits the pronunciation of forms like 中々 or 人人 in
// half.
func solveRepeatedKanji(j *job) []*Solution {
	if len(j.form) != 2 || len(j.reading) == 0 || len(j.reading)%2 != 0 {
		return nil
	}
	if j.form[1] != kana.IterationMark && j.form[1] != j.form[0] {
		return nil
	}
	half := len(j.reading) / 2
	return []*Solution{j.solution([]Part{
		{Start: 0, End: 0, Kana: string(j.reading[:half])},
		{Start: 1, End: 1, Kana: string(j.reading[half:])},
	})}
}

// solveLengthMatch assigns one kana to each kanji if written form and
// pronunciation have the same length. Kana in the written form have to
// match the pronunciation at the same position.
func solveLengthMatch(j *job) []*Solution {
	if len(j.form) != len(j.reading) {
		return nil
	}
	var parts []Part
	for i, c := range j.form {
		if j.isKanji(i) {
			parts = append(parts, Part{Start: i, End: i, Kana: string(j.reading[i])})
		} else if !kana.IsKana(c) || !kana.AreEquivalent(string(c), string(j.reading[i])) {
			return nil
		}
	}
	if len(parts) == 0 {
		return nil
	}
	return []*Solution{j.solution(parts)}
}

// solveNoConsecutiveKanji handles forms where kanji never follow each other.
// Each kanji becomes a capture group between the literal kana:
//
//	持ち運ぶ (もちはこぶ)  =>  ^(.+)ち(.+)ぶ$ and ^(.+?)ち(.+?)ぶ$
//
// The greedy and the lazy pattern have to agree, otherwise the entry is
// ambiguous and nothing is returned.
func solveNoConsecutiveKanji(j *job) []*Solution {
	var greedy, lazy strings.Builder
	greedy.WriteString("^")
	lazy.WriteString("^")
	var kanjiPositions []int
	previousIsKanji := false
	for i, c := range j.form {
		if !j.isKanji(i) {
			if !kana.IsKana(c) {
				return nil
			}
			greedy.WriteString(regexp.QuoteMeta(string(c)))
			lazy.WriteString(regexp.QuoteMeta(string(c)))
			previousIsKanji = false
			continue
		}
		if previousIsKanji {
			return nil
		}
		greedy.WriteString("(.+)")
		lazy.WriteString("(.+?)")
		kanjiPositions = append(kanjiPositions, i)
		previousIsKanji = true
	}
	greedy.WriteString("$")
	lazy.WriteString("$")
	if len(kanjiPositions) == 0 {
		return nil
	}
	g := matchGroups(greedy.String(), j.entry.Pronunciation, kanjiPositions)
	l := matchGroups(lazy.String(), j.entry.Pronunciation, kanjiPositions)
	if g == nil || l == nil {
		return nil
	}
	gs, ls := j.solution(g), j.solution(l)
	if !gs.Equal(ls) {
		tracer().Debugf("%s: greedy and lazy readings differ", j.entry)
		return nil
	}
	return []*Solution{gs}
}

func matchGroups(pattern, s string, positions []int) []Part {
	m := regexp.MustCompile(pattern).FindStringSubmatch(s)
	if m == nil || len(m) != len(positions)+1 {
		return nil
	}
	parts := make([]Part, len(positions))
	for i, pos := range positions {
		parts[i] = Part{Start: pos, End: pos, Kana: m[i+1]}
	}
	return parts
}
