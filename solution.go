package furigana

import (
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/npillmayer/furigana/kana"
)

// Separators of the serialized form
//
//	大人買い|おとながい|0-1:おとな;2:が
const (
	fieldSeparator       = "|"
	multiValueSeparator  = ";"
	associationSeparator = ":"
	rangeSeparator       = "-"
	unsolvedMarker       = "???"
)

// Part assigns kana to the closed span [Start, End] of character positions
// of a written form.
type Part struct {
	Start, End int
	Kana       string
}

// String returns "START:KANA" for single-character parts and
// "START-END:KANA" for spans.
func (p Part) String() string {
	if p.Start == p.End {
		return strconv.Itoa(p.Start) + associationSeparator + p.Kana
	}
	return strconv.Itoa(p.Start) + rangeSeparator + strconv.Itoa(p.End) +
		associationSeparator + p.Kana
}

func (p Part) shift(offset int) Part {
	return Part{Start: p.Start + offset, End: p.End + offset, Kana: p.Kana}
}

// Solution is a segmentation of an entry's pronunciation over its written
// form. Characters not covered by any part have to be kana and are read as
// written.
type Solution struct {
	Entry Entry
	Parts []Part
}

// NewSolution creates a solution for e. The parts slice is copied.
func NewSolution(e Entry, parts ...Part) *Solution {
	return &Solution{Entry: e, Parts: slices.Clone(parts)}
}

// Check tests a solution for correctness:
//
//   - no character position is covered by more than one part
//   - every character not covered by a part is kana
//   - reading uncovered characters as written and covered spans by their
//     kana, left to right, reproduces the entry's pronunciation
//
// Parts must lie inside the written form and carry non-empty kana.
// Parts may cover kana, as in 真っ青|まっさお|0-2:まっさお.
func (s *Solution) Check() bool {
	form := []rune(s.Entry.Orthography)
	cover := make([]int, len(form)) // 1-based index of the covering part
	for i, p := range s.Parts {
		if p.Start < 0 || p.End >= len(form) || p.Start > p.End || p.Kana == "" {
			return false
		}
		for j := p.Start; j <= p.End; j++ {
			if cover[j] != 0 {
				return false
			}
			cover[j] = i + 1
		}
	}
	var reading strings.Builder
	for i := 0; i < len(form); i++ {
		if c := cover[i]; c != 0 {
			p := s.Parts[c-1]
			reading.WriteString(p.Kana)
			i = p.End
			continue
		}
		if !kana.IsKana(form[i]) {
			return false
		}
		reading.WriteRune(form[i])
	}
	return kana.AreEquivalent(reading.String(), s.Entry.Pronunciation)
}

// Equal is true if both solutions consist of the same parts, regardless of
// order.
func (s *Solution) Equal(other *Solution) bool {
	if other == nil || len(s.Parts) != len(other.Parts) {
		return false
	}
	for _, p := range s.Parts {
		if !slices.Contains(other.Parts, p) {
			return false
		}
	}
	for _, p := range other.Parts {
		if !slices.Contains(s.Parts, p) {
			return false
		}
	}
	return true
}

// String returns the serialized form "ORTH|PRON|PART;PART;…".
func (s *Solution) String() string {
	var b strings.Builder
	b.WriteString(s.Entry.String())
	b.WriteString(fieldSeparator)
	for i, p := range s.Parts {
		if i > 0 {
			b.WriteString(multiValueSeparator)
		}
		b.WriteString(p.String())
	}
	return b.String()
}

// ParseSolution reads a solution from its serialized form, as produced by
// Solution.String. Serializing the result again yields the input line.
// The unsolved marker "???" in place of the parts yields ErrUnsolved.
func ParseSolution(line string) (*Solution, error) {
	fields := strings.Split(line, fieldSeparator)
	if len(fields) != 3 {
		return nil, fmt.Errorf("%w: expected 3 fields in %q", ErrSyntax, line)
	}
	e := Entry{Orthography: fields[0], Pronunciation: fields[1]}
	if fields[2] == unsolvedMarker {
		return nil, fmt.Errorf("%w: %s", ErrUnsolved, e)
	}
	parts, err := ParseParts(fields[2], e)
	if err != nil {
		return nil, err
	}
	return &Solution{Entry: e, Parts: parts}, nil
}

// ParseParts reads the part list of a serialized solution. A value without
// index ("ぜんにほん") is taken to cover the whole written form of e.
func ParseParts(s string, e Entry) ([]Part, error) {
	if s == "" {
		return nil, nil
	}
	values := strings.Split(s, multiValueSeparator)
	parts := make([]Part, 0, len(values))
	for _, v := range values {
		index, value, found := strings.Cut(v, associationSeparator)
		if !found {
			n := len([]rune(e.Orthography))
			if n == 0 || v == "" {
				return nil, fmt.Errorf("%w: cannot apply reading %q to %q", ErrSyntax, v, e.Orthography)
			}
			parts = append(parts, Part{Start: 0, End: n - 1, Kana: v})
			continue
		}
		from, to, isRange := strings.Cut(index, rangeSeparator)
		start, err := strconv.Atoi(from)
		if err != nil {
			return nil, fmt.Errorf("%w: bad index in %q", ErrSyntax, v)
		}
		end := start
		if isRange {
			if end, err = strconv.Atoi(to); err != nil {
				return nil, fmt.Errorf("%w: bad range in %q", ErrSyntax, v)
			}
		}
		if start < 0 || start > end {
			return nil, fmt.Errorf("%w: bad range in %q", ErrSyntax, v)
		}
		parts = append(parts, Part{Start: start, End: end, Kana: value})
	}
	return parts, nil
}

// --- Ruby output -----------------------------------------------------------

// ReadingPart is a run of the written form together with its furigana.
// Furigana is empty for runs of kana, which need no annotation.
type ReadingPart struct {
	Text     string `json:"ruby"`
	Furigana string `json:"rt,omitempty"`
}

// ReadingParts breaks a solution into consecutive runs suitable for ruby
// markup. Adjacent uncovered characters are merged into a single run.
//
//	大人買い|おとながい|0-1:おとな;2:が  =>  [大人/おとな] [買/が] [い]
func (s *Solution) ReadingParts() []ReadingPart {
	form := []rune(s.Entry.Orthography)
	parts := slices.Clone(s.Parts)
	slices.SortFunc(parts, func(a, b Part) int { return a.Start - b.Start })
	var runs []ReadingPart
	plain := 0 // start of the current uncovered run
	flush := func(upto int) {
		if upto > plain {
			runs = append(runs, ReadingPart{Text: string(form[plain:upto])})
		}
	}
	for _, p := range parts {
		if p.Start < plain || p.End >= len(form) {
			continue // only for solutions failing Check
		}
		flush(p.Start)
		runs = append(runs, ReadingPart{Text: string(form[p.Start : p.End+1]), Furigana: p.Kana})
		plain = p.End + 1
	}
	flush(len(form))
	return runs
}

// MarshalJSON writes a solution as
//
//	{"text":"頑張る","reading":"がんばる","furigana":[{"ruby":"頑","rt":"がん"},…]}
func (s *Solution) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Text     string        `json:"text"`
		Reading  string        `json:"reading"`
		Furigana []ReadingPart `json:"furigana"`
	}{
		Text:     s.Entry.Orthography,
		Reading:  s.Entry.Pronunciation,
		Furigana: s.ReadingParts(),
	})
}
