package kana

import "testing"

func TestClassification(t *testing.T) {
	for _, tc := range []struct {
		r        rune
		kana     bool
		katakana bool
	}{
		{'あ', true, false},
		{'ん', true, false},
		{'っ', true, false},
		{'ア', true, true},
		{'ヴ', true, true},
		{'ー', true, true},
		{'・', true, false},
		{'。', true, false},
		{'漢', false, false},
		{'々', false, false},
		{'A', false, false},
	} {
		if IsKana(tc.r) != tc.kana {
			t.Errorf("IsKana(%q) should be %v", tc.r, tc.kana)
		}
		if IsKatakana(tc.r) != tc.katakana {
			t.Errorf("IsKatakana(%q) should be %v", tc.r, tc.katakana)
		}
	}
}

func TestAllKana(t *testing.T) {
	if !IsAllKana("がんばる") {
		t.Fatalf("がんばる is kana")
	}
	if IsAllKana("頑張る") {
		t.Fatalf("頑張る is not all kana")
	}
	if IsAllKana("") {
		t.Fatalf("empty string should not count as kana")
	}
	if !IsAllKatakana("ボール") {
		t.Fatalf("ボール is katakana")
	}
	if IsAllKatakana("ボールぺん") {
		t.Fatalf("ボールぺん is mixed script")
	}
}

func TestScriptFolding(t *testing.T) {
	if h := ToHiragana("カタカナ・ー"); h != "かたかな・ー" {
		t.Fatalf("expected かたかな・ー, have %s", h)
	}
	if k := ToKatakana("ひらがな"); k != "ヒラガナ" {
		t.Fatalf("expected ヒラガナ, have %s", k)
	}
	if h := ToHiragana("ヽヾ"); h != "ゝゞ" {
		t.Errorf("iteration marks should fold, have %q", h)
	}
	if h := ToHiragana("漢字カ"); h != "漢字か" {
		t.Fatalf("non-kana should pass through, have %s", h)
	}
	if RuneToHiragana('ッ') != 'っ' {
		t.Fatalf("small tsu should fold")
	}
}

func TestAreEquivalent(t *testing.T) {
	for _, tc := range []struct {
		a, b string
		eq   bool
	}{
		{"ボール・ペン", "ぼーるぺん", true},
		{"がんばる", "ガンバル", true},
		{"がんばる", "かんばる", false},
		{"", "", true},
	} {
		if AreEquivalent(tc.a, tc.b) != tc.eq {
			t.Errorf("AreEquivalent(%q, %q) should be %v", tc.a, tc.b, tc.eq)
		}
	}
}

func TestNormalize(t *testing.T) {
	if n := Normalize("\u304b\u3099"); n != "\u304c" {
		t.Fatalf("combining voicing mark should compose, have %q", n)
	}
	if n := Normalize("ｶ"); n != "カ" {
		t.Fatalf("half-width katakana should widen, have %q", n)
	}
	if n := Normalize("Ｔシャツ"); n != "Tシャツ" {
		t.Fatalf("full-width latin should narrow, have %q", n)
	}
	if n := Normalize("\uF91D\u304b\u3099\U0002F800"); n != "\uF91D\u304c\U0002F800" {
		t.Fatalf("compatibility ideographs should be kept, have %q", n)
	}
	if n := Normalize("\u6B04"); n != "\u6B04" {
		t.Fatalf("unified ideograph should stay, have %q", n)
	}
}
