package furigana

// Priorities of solvers. Solvers of equal priority form a tier.
const (
	priorityOverride = 9999
	priorityElevated = 1
	priorityDefault  = 0
	priorityLowered  = -1
)

// maxKanaPerKanji bounds the length of a single kanji's reading.
const maxKanaPerKanji = 4

// job is the state shared by the solvers working on one entry.
type job struct {
	entry      Entry
	form       []rune // written form
	reading    []rune // pronunciation
	res        *ResourceSet
	withNanori bool
}

func newJob(e Entry, res *ResourceSet, withNanori bool) *job {
	return &job{
		entry:      e,
		form:       []rune(e.Orthography),
		reading:    []rune(e.Pronunciation),
		res:        res,
		withNanori: withNanori,
	}
}

func (j *job) isKanji(i int) bool {
	return j.res.IsKanji(j.form[i])
}

func (j *job) solution(parts []Part) *Solution {
	return NewSolution(j.entry, parts...)
}

// solver is one strategy to segment an entry. An inapplicable solver returns
// no solutions.
type solver struct {
	name     string
	priority int
	solve    func(*job) []*Solution
}

// solvers is ordered by descending priority.
var solvers = []solver{
	{"override", priorityOverride, solveOverride},
	{"single-kanji", priorityElevated, solveSingleKanji},
	{"kana", priorityDefault, solveByKana},
	{"kanji", priorityDefault, solveByKanji},
	{"no-consecutive-kanji", priorityDefault, solveNoConsecutiveKanji},
	{"repeated-kanji", priorityDefault, solveRepeatedKanji},
	{"single-character", priorityDefault, solveSingleCharacter},
	{"length-match", priorityLowered, solveLengthMatch},
}
