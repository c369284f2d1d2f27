package furigana

import (
	"encoding/json"
	"errors"
	"math/rand/v2"
	"reflect"
	"strings"
	"testing"
)

func TestCheck(t *testing.T) {
	e := Entry{Orthography: "大人買い", Pronunciation: "おとながい"}
	for _, tc := range []struct {
		parts string
		ok    bool
	}{
		{"0-1:おとな;2:が", true},
		{"2:が;0-1:おとな", true},       // order does not matter
		{"0-2:おとなが", true},          // parts may span several kanji
		{"0-3:おとながい", true},         // or cover kana
		{"0-1:おとな", false},           // 買 uncovered
		{"0-1:おとな;1-2:が", false},     // overlap
		{"0-1:おとな;2:か", false},       // wrong reading
		{"0-1:おとな;2:が;3:い", true},    // kana covered by itself
		{"0-1:オトナ;2:ガ", true},        // script does not matter
		{"0-1:おとな;2-4:が", false},     // beyond end of form
	} {
		parts, err := ParseParts(tc.parts, e)
		if err != nil {
			t.Fatal(err)
		}
		if ok := NewSolution(e, parts...).Check(); ok != tc.ok {
			t.Errorf("check of %s should be %v", tc.parts, tc.ok)
		}
	}
	if NewSolution(e, Part{Start: 2, End: 2}).Check() {
		t.Errorf("part without kana should not check")
	}
}

// randomSolution builds a solution over a random kana string: random chunks
// of it are replaced by placeholder kanji and covered by a part.
func randomSolution(rnd *rand.Rand) *Solution {
	syllables := []rune("あいうえおかきくけこさしすせそたちつてとなにぬねのまみむめもらりるれろがぎぐん")
	placeholders := []rune("一二三四五六七八九十")
	n := 1 + rnd.IntN(12)
	reading := make([]rune, n)
	for i := range reading {
		reading[i] = syllables[rnd.IntN(len(syllables))]
	}
	var form []rune
	var parts []Part
	for pos := 0; pos < n; {
		chunk := 1 + rnd.IntN(min(4, n-pos))
		if rnd.IntN(2) == 0 { // read as written
			form = append(form, reading[pos:pos+chunk]...)
		} else {
			k := 1 + rnd.IntN(2)
			start := len(form)
			for range k {
				form = append(form, placeholders[rnd.IntN(len(placeholders))])
			}
			parts = append(parts, Part{Start: start, End: len(form) - 1, Kana: string(reading[pos : pos+chunk])})
		}
		pos += chunk
	}
	return NewSolution(Entry{Orthography: string(form), Pronunciation: string(reading)}, parts...)
}

func TestCheckProperty(t *testing.T) {
	rnd := rand.New(rand.NewPCG(1, 2))
	for range 500 {
		s := randomSolution(rnd)
		if !s.Check() {
			t.Fatalf("consistent solution %s does not check", s)
		}
		if len(s.Parts) == 0 {
			continue
		}
		i := rnd.IntN(len(s.Parts))
		// dropping a part leaves a placeholder uncovered
		dropped := NewSolution(s.Entry, append(s.Parts[:i:i], s.Parts[i+1:]...)...)
		if dropped.Check() {
			t.Fatalf("%s checks with part %d dropped", s, i)
		}
		// stretching a part over its neighbour produces an overlap or
		// changes the reading
		stretched := NewSolution(s.Entry, s.Parts...)
		stretched.Parts[i].End++
		if stretched.Check() {
			t.Fatalf("%s checks with part %d stretched", s, i)
		}
		// altering the kana of a part changes the reading
		altered := NewSolution(s.Entry, s.Parts...)
		altered.Parts[i].Kana += "ゑ"
		if altered.Check() {
			t.Fatalf("%s checks with part %d altered", s, i)
		}
	}
}

func TestSolutionRoundTrip(t *testing.T) {
	for _, line := range []string{
		"頑張る|がんばる|0:がん;1:ば",
		"大人買い|おとながい|0-1:おとな;2:が",
		"全日本|ぜんにほん|0:ぜん;1-2:にほん",
		"ある|ある|",
	} {
		s, err := ParseSolution(line)
		if err != nil {
			t.Fatalf("cannot parse %q: %v", line, err)
		}
		if !s.Check() {
			t.Errorf("%s does not check", line)
		}
		if s.String() != line {
			t.Errorf("round trip of %q yields %q", line, s.String())
		}
	}
	rnd := rand.New(rand.NewPCG(3, 4))
	for range 100 {
		s := randomSolution(rnd)
		parsed, err := ParseSolution(s.String())
		if err != nil {
			t.Fatal(err)
		}
		if parsed.String() != s.String() || !parsed.Equal(s) {
			t.Fatalf("round trip of %s yields %s", s, parsed)
		}
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := ParseSolution("頑張る|がんばる|???"); !errors.Is(err, ErrUnsolved) {
		t.Errorf("expected ErrUnsolved, have %v", err)
	}
	for _, line := range []string{
		"頑張る|がんばる",
		"頑張る|がんばる|x:がん",
		"頑張る|がんばる|1-0:がん",
		"頑張る|がんばる|0-x:がん",
		"頑張る|がんばる|-1:が",
	} {
		if _, err := ParseSolution(line); !errors.Is(err, ErrSyntax) {
			t.Errorf("expected syntax error for %q, have %v", line, err)
		}
	}
	e := Entry{Orthography: "日本", Pronunciation: "にほん"}
	parts, err := ParseParts("にほん", e)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(parts, []Part{{Start: 0, End: 1, Kana: "にほん"}}) {
		t.Errorf("plain reading should cover the whole form, have %v", parts)
	}
}

func TestSolutionSet(t *testing.T) {
	e := Entry{Orthography: "頑張る", Pronunciation: "がんばる"}
	set := NewSolutionSet(e)
	a := NewSolution(e, Part{Start: 0, End: 0, Kana: "がん"}, Part{Start: 1, End: 1, Kana: "ば"})
	b := NewSolution(e, Part{Start: 1, End: 1, Kana: "ば"}, Part{Start: 0, End: 0, Kana: "がん"})
	c := NewSolution(e, Part{Start: 0, End: 1, Kana: "がんば"})
	if !set.Add(a) || !set.Add(b) {
		t.Fatalf("valid solutions should be accepted")
	}
	if set.Len() != 1 || set.Single() != a {
		t.Fatalf("equal solutions should be merged, have %s", set)
	}
	if set.Add(NewSolution(e, Part{Start: 0, End: 0, Kana: "が"})) {
		t.Fatalf("invalid solution should be rejected")
	}
	set.Add(c)
	if set.Single() != nil || set.Len() != 2 {
		t.Fatalf("expected ambiguous set, have %s", set)
	}
	if s := set.String(); s != "頑張る|がんばる|0:がん;1:ば, 頑張る|がんばる|0-1:がんば" {
		t.Fatalf("unexpected set string %s", s)
	}
}

func TestReadingParts(t *testing.T) {
	s, err := ParseSolution("大人買い|おとながい|0-1:おとな;2:が")
	if err != nil {
		t.Fatal(err)
	}
	expected := []ReadingPart{
		{Text: "大人", Furigana: "おとな"},
		{Text: "買", Furigana: "が"},
		{Text: "い"},
	}
	if rp := s.ReadingParts(); !reflect.DeepEqual(rp, expected) {
		t.Fatalf("expected %v, have %v", expected, rp)
	}
	data, err := json.Marshal(s)
	if err != nil {
		t.Fatal(err)
	}
	js := `{"text":"大人買い","reading":"おとながい","furigana":[{"ruby":"大人","rt":"おとな"},{"ruby":"買","rt":"が"},{"ruby":"い"}]}`
	if string(data) != js {
		t.Fatalf("unexpected JSON %s", data)
	}
	s, _ = ParseSolution("お茶する|おちゃする|1:ちゃ")
	if rp := s.ReadingParts(); len(rp) != 3 || rp[2].Text != "する" || !strings.HasPrefix(rp[0].Text, "お") {
		t.Fatalf("unexpected reading parts %v", rp)
	}
}
