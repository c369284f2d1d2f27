package furigana

import (
	"slices"
	"testing"
)

func TestExpandKanjiReadings(t *testing.T) {
	k := &Kanji{Character: '張', Readings: []string{"ちょう", "は.る"}}
	for _, tc := range []struct {
		isFirst, isLast bool
		expected        []string
	}{
		{true, true, []string{"ちょう", "は", "はる", "はり"}},
		{true, false, []string{"ちょう", "は", "はる", "はり"}},
		{false, true, []string{"ちょう", "は", "はる", "はり", "ぢょう", "じょう", "ば", "ぱ", "ばる", "ぱる", "ばり", "ぱり"}},
	} {
		r := expandKanjiReadings(k, tc.isFirst, tc.isLast, false)
		if !slices.Equal(r, tc.expected) {
			t.Errorf("first=%v last=%v: expected %v, have %v", tc.isFirst, tc.isLast, tc.expected, r)
		}
	}
}

func TestExpandOkurigana(t *testing.T) {
	k := &Kanji{Character: '曲', Readings: []string{"ま.がる", "きょく", "-がく", "とーる"}}
	r := expandKanjiReadings(k, true, false, false)
	for _, expected := range []string{"ま", "まがる", "まが", "きょく", "きょっ", "がく", "がっ", "とる"} {
		if !slices.Contains(r, expected) {
			t.Errorf("expected reading %s in %v", expected, r)
		}
	}
	if slices.Contains(r, "とーる") {
		t.Errorf("prolonged sound mark should be removed from hiragana readings")
	}
	k = &Kanji{Character: '頁', Readings: []string{"ページ"}}
	if r := expandKanjiReadings(k, true, true, false); !slices.Equal(r, []string{"ページ"}) {
		t.Errorf("katakana reading should stay untouched, have %v", r)
	}
}

func TestExpandSpecialReadings(t *testing.T) {
	x := &SpecialExpression{
		Text: "一体",
		Readings: []SpecialReading{
			{Kana: "いったい", Parts: []Part{{Start: 0, End: 0, Kana: "いっ"}, {Start: 1, End: 1, Kana: "たい"}}},
		},
	}
	r := expandSpecialReadings(x, true, true)
	if len(r) != 1 {
		t.Fatalf("expected the declared reading only, have %v", r)
	}
	x = &SpecialExpression{
		Text:     "切手",
		Readings: []SpecialReading{{Kana: "きって", Parts: []Part{{Start: 0, End: 1, Kana: "きって"}}}},
	}
	r = expandSpecialReadings(x, false, true)
	if len(r) != 2 || r[1].Kana != "ぎって" || r[1].Parts[0].Kana != "ぎって" {
		t.Fatalf("expected rendaku variant ぎって, have %v", r)
	}
	if x.Readings[0].Parts[0].Kana != "きって" {
		t.Fatalf("expansion must not modify the expression")
	}
	x = &SpecialExpression{
		Text:     "学",
		Readings: []SpecialReading{{Kana: "がく", Parts: []Part{{Start: 0, End: 0, Kana: "がく"}}}},
	}
	r = expandSpecialReadings(x, true, false)
	if len(r) != 2 || r[1].Kana != "がっ" || r[1].Parts[0].Kana != "がっ" {
		t.Fatalf("expected gemination variant がっ, have %v", r)
	}
}

func TestExpressionIndex(t *testing.T) {
	res := NewResourceSet()
	for _, x := range []struct{ text, reading string }{
		{"日本", "にほん"},
		{"日本橋", "にほんばし"},
		{"日", "ひ"},
	} {
		if err := res.AddExpression(x.text, x.reading, nil); err != nil {
			t.Fatal(err)
		}
	}
	if err := res.AddExpression("日本", "にっぽん", nil); err != nil {
		t.Fatal(err)
	}
	res.Freeze()
	found := res.ExpressionsAt([]rune("全日本橋"), 1)
	var texts []string
	for _, x := range found {
		texts = append(texts, x.Text)
	}
	if !slices.Equal(texts, []string{"日本橋", "日本", "日"}) {
		t.Fatalf("expected longest first, have %v", texts)
	}
	if x, ok := res.Expression("日本"); !ok || len(x.Readings) != 2 {
		t.Fatalf("expected two readings for 日本")
	}
	if _, _, n := res.Stats(); n != 3 {
		t.Fatalf("expected 3 expressions, have %d", n)
	}
	if err := res.AddExpression("日本", "ひのもと", []Part{{Start: 0, End: 0, Kana: "ひの"}}); err == nil {
		t.Fatalf("adding to a frozen resource set should fail")
	}
}
