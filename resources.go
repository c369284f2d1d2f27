package furigana

import (
	"fmt"
	"io"
	"slices"
)

// Kanji holds the known readings of a kanji-class character.
//
// Readings are kana strings in the notation of KANJIDIC, e.g. "がんば.る"
// where the dot separates the stem from okurigana. ReadingsWithNanori adds
// readings used in names only. IsRealKanji is false for supplementary symbol
// entries such as ヶ or 〆.
type Kanji struct {
	Character          rune
	Readings           []string
	ReadingsWithNanori []string
	IsRealKanji        bool
}

// SpecialReading is one pronunciation of a special expression, together with
// a segmentation of it over the expression's text.
type SpecialReading struct {
	Kana  string
	Parts []Part // indices relative to the expression text
}

// SpecialExpression is a sequence of characters with readings that cannot be
// derived from its single characters, e.g. 大人 (おとな) or 日本 (にほん).
type SpecialExpression struct {
	Text     string
	Readings []SpecialReading
}

// KanjiReader yields kanji records one-by-one.
// It should return io.EOF when the stream is exhausted.
type KanjiReader interface {
	Next() (*Kanji, error)
}

// OverrideReader yields fixed solutions one-by-one.
// It should return io.EOF when the stream is exhausted.
type OverrideReader interface {
	Next() (*Solution, error)
}

// ExpressionReader yields special readings one-by-one. A nil part list
// assigns the reading to the whole text.
// It should return io.EOF when the stream is exhausted.
type ExpressionReader interface {
	Next() (text, reading string, parts []Part, err error)
}

// ResourceSet holds everything the solvers look up: kanji readings,
// override solutions and special expressions.
//
// A resource set is filled once and then frozen. After freezing it is
// read-only and may be shared between goroutines.
type ResourceSet struct {
	kanji       map[rune]*Kanji
	overrides   map[string]*Solution // keyed by Entry.String()
	expressions expressionIndex
	frozen      bool
}

// NewResourceSet creates an empty resource set.
func NewResourceSet() *ResourceSet {
	return &ResourceSet{
		kanji:       make(map[rune]*Kanji),
		overrides:   make(map[string]*Solution),
		expressions: newTrieIndex(),
	}
}

// Freeze ends the loading phase. Subsequent calls to Add… or Load… return
// ErrFrozen.
func (res *ResourceSet) Freeze() {
	if res.frozen {
		return
	}
	res.frozen = true
	k, o, x := res.Stats()
	ixs := res.expressions.Stats()
	tracer().Infof("resource set frozen: kanji=%d overrides=%d expressions=%d (%s, longest=%d)",
		k, o, x, ixs.Backend, ixs.Longest)
}

// Stats returns the number of kanji, override solutions and special
// expressions.
func (res *ResourceSet) Stats() (kanji, overrides, expressions int) {
	return len(res.kanji), len(res.overrides), res.expressions.Stats().Keys
}

// --- Lookup ----------------------------------------------------------------

// Kanji returns the record for character c.
func (res *ResourceSet) Kanji(c rune) (*Kanji, bool) {
	k, found := res.kanji[c]
	return k, found
}

// IsKanji is true for characters with a kanji record.
func (res *ResourceSet) IsKanji(c rune) bool {
	_, found := res.kanji[c]
	return found
}

// HasRealKanji is true if s contains at least one character with a kanji
// record flagged as real kanji.
func (res *ResourceSet) HasRealKanji(s string) bool {
	for _, c := range s {
		if k, found := res.kanji[c]; found && k.IsRealKanji {
			return true
		}
	}
	return false
}

// Expression returns the special expression with text s.
func (res *ResourceSet) Expression(s string) (*SpecialExpression, bool) {
	return res.expressions.Lookup(s)
}

// ExpressionsAt returns all special expressions starting at position pos of
// form, longest first.
func (res *ResourceSet) ExpressionsAt(form []rune, pos int) []*SpecialExpression {
	return res.expressions.PrefixesAt(form, pos)
}

// Override returns the fixed solution for e.
func (res *ResourceSet) Override(e Entry) (*Solution, bool) {
	s, found := res.overrides[e.String()]
	return s, found
}

// --- Loading ---------------------------------------------------------------

// LoadKanji adds all kanji records of a stream.
func (res *ResourceSet) LoadKanji(reader KanjiReader) (err error) {
	n := 0
	for {
		var k *Kanji
		k, err = reader.Next()
		if err == io.EOF {
			tracer().Infof("loaded %d kanji records", n)
			return nil
		} else if err != nil {
			return err
		}
		if err = res.AddKanji(*k); err != nil {
			return err
		}
		n++
	}
}

// AddKanji adds a kanji record. If the character is already known, the
// reading sets are merged.
func (res *ResourceSet) AddKanji(k Kanji) error {
	if res.frozen {
		return ErrFrozen
	}
	if known, found := res.kanji[k.Character]; found {
		known.Readings = union(known.Readings, k.Readings)
		known.ReadingsWithNanori = union(known.ReadingsWithNanori, k.ReadingsWithNanori)
		known.IsRealKanji = known.IsRealKanji || k.IsRealKanji
		return nil
	}
	res.kanji[k.Character] = &Kanji{
		Character:          k.Character,
		Readings:           union(nil, k.Readings),
		ReadingsWithNanori: union(nil, k.ReadingsWithNanori),
		IsRealKanji:        k.IsRealKanji,
	}
	return nil
}

// LoadOverrides adds all override solutions of a stream.
func (res *ResourceSet) LoadOverrides(reader OverrideReader) (err error) {
	n := 0
	for {
		var s *Solution
		s, err = reader.Next()
		if err == io.EOF {
			tracer().Infof("loaded %d override solutions", n)
			return nil
		} else if err != nil {
			return err
		}
		if err = res.AddOverride(s); err != nil {
			return err
		}
		n++
	}
}

// AddOverride registers a fixed solution for its entry. The solution has to
// pass Check.
func (res *ResourceSet) AddOverride(s *Solution) error {
	if res.frozen {
		return ErrFrozen
	}
	if !s.Check() {
		return fmt.Errorf("%w: override %s does not check", ErrSyntax, s)
	}
	res.overrides[s.Entry.String()] = NewSolution(s.Entry, s.Parts...)
	return nil
}

// LoadExpressions adds all special readings of a stream.
func (res *ResourceSet) LoadExpressions(reader ExpressionReader) (err error) {
	n := 0
	for {
		var text, reading string
		var parts []Part
		text, reading, parts, err = reader.Next()
		if err == io.EOF {
			tracer().Infof("loaded %d special readings", n)
			return nil
		} else if err != nil {
			return err
		}
		if err = res.AddExpression(text, reading, parts); err != nil {
			return err
		}
		n++
	}
}

// AddExpression adds a reading to the special expression text. If parts is
// empty, the reading is assigned to the whole text. The reading and its
// parts have to form a valid solution for text.
func (res *ResourceSet) AddExpression(text, reading string, parts []Part) error {
	if res.frozen {
		return ErrFrozen
	}
	if len(parts) == 0 {
		parts = []Part{{Start: 0, End: len([]rune(text)) - 1, Kana: reading}}
	}
	sr := SpecialReading{Kana: reading, Parts: slices.Clone(parts)}
	if s := NewSolution(Entry{Orthography: text, Pronunciation: reading}, sr.Parts...); !s.Check() {
		return fmt.Errorf("%w: special reading %s does not check", ErrSyntax, s)
	}
	x, found := res.expressions.Lookup(text)
	if !found {
		x = &SpecialExpression{Text: text}
	}
	x.Readings = append(x.Readings, sr)
	res.expressions.Insert(x)
	return nil
}

// union appends all strings of b missing in a, keeping the order of first
// appearance.
func union(a, b []string) []string {
	out := slices.Clone(a)
	for _, r := range b {
		if r != "" && !slices.Contains(out, r) {
			out = append(out, r)
		}
	}
	return out
}
