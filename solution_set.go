package furigana

import (
	"slices"
	"strings"
)

// SolutionSet collects the distinct, valid solutions found for an entry.
type SolutionSet struct {
	Entry     Entry
	solutions []*Solution
}

// NewSolutionSet creates an empty solution set for e.
func NewSolutionSet(e Entry) *SolutionSet {
	return &SolutionSet{Entry: e}
}

// Add inserts a solution if it passes Check and is not already present.
// It returns false for rejected solutions.
func (set *SolutionSet) Add(s *Solution) bool {
	if s == nil || !s.Check() {
		return false
	}
	if set.Contains(s) {
		return true
	}
	set.solutions = append(set.solutions, s)
	return true
}

// Contains is true if an equal solution is a member of the set.
func (set *SolutionSet) Contains(s *Solution) bool {
	for _, member := range set.solutions {
		if member.Equal(s) {
			return true
		}
	}
	return false
}

// Len returns the number of distinct solutions.
func (set *SolutionSet) Len() int {
	return len(set.solutions)
}

// Solutions returns the members of the set in insertion order.
func (set *SolutionSet) Solutions() []*Solution {
	return set.solutions
}

// Single returns the solution of a resolved entry, i.e. if the set has
// exactly one member. It returns nil otherwise.
func (set *SolutionSet) Single() *Solution {
	if len(set.solutions) != 1 {
		return nil
	}
	return set.solutions[0]
}

// Equal is true if both sets have the same members, in any order.
func (set *SolutionSet) Equal(other *SolutionSet) bool {
	if other == nil || set.Len() != other.Len() {
		return false
	}
	for _, s := range set.solutions {
		if !other.Contains(s) {
			return false
		}
	}
	return true
}

// retag moves all solutions to entry e. The written forms of e and of the
// solved entry differ in their beginning only: the solved one starts with
// the kana sub, where e has a single character. The kana of sub, read as
// written or covered by parts, become a part over that character. A part
// reaching beyond sub is merged into it.
func (set *SolutionSet) retag(e Entry, sub string) *SolutionSet {
	prefix := []rune(sub)
	n := len(prefix)
	retagged := NewSolutionSet(e)
	for _, s := range set.solutions {
		parts := slices.Clone(s.Parts)
		slices.SortFunc(parts, func(a, b Part) int { return a.Start - b.Start })
		lead := Part{Start: 0, End: 0}
		var kana strings.Builder
		rest := make([]Part, 0, len(parts))
		pos := 0
		for _, p := range parts {
			if p.Start >= n {
				rest = append(rest, p.shift(1-n))
				continue
			}
			for ; pos < p.Start; pos++ {
				kana.WriteRune(prefix[pos])
			}
			kana.WriteString(p.Kana)
			pos = p.End + 1
			lead.End = max(0, p.End+1-n)
		}
		for ; pos < n; pos++ {
			kana.WriteRune(prefix[pos])
		}
		lead.Kana = kana.String()
		retagged.Add(NewSolution(e, append([]Part{lead}, rest...)...))
	}
	return retagged
}

// String lists all solutions separated by ", ", or "ORTH|PRON|???" for an
// empty set.
func (set *SolutionSet) String() string {
	if len(set.solutions) == 0 {
		return set.Entry.String() + fieldSeparator + unsolvedMarker
	}
	ss := make([]string, len(set.solutions))
	for i, s := range set.solutions {
		ss[i] = s.String()
	}
	return strings.Join(ss, ", ")
}
