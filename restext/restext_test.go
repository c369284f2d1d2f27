package restext

import (
	"errors"
	"io"
	"slices"
	"strings"
	"testing"

	"github.com/npillmayer/furigana"
)

func TestOverrideReader(t *testing.T) {
	src := strings.NewReader(`; fixed solutions
頑張る|がんばる|0:がん;1:ば

御坊っちゃん|おぼっちゃん|0:お;1:ぼ
`)
	r := NewOverrideReader(src)
	s, err := r.Next()
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if s.String() != "頑張る|がんばる|0:がん;1:ば" {
		t.Fatalf("solution mismatch: got %s", s)
	}
	s, err = r.Next()
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if len(s.Parts) != 2 || s.Parts[1] != (furigana.Part{Start: 1, End: 1, Kana: "ぼ"}) {
		t.Fatalf("parts mismatch: %v", s.Parts)
	}
	if _, err = r.Next(); err != io.EOF {
		t.Fatalf("expected io.EOF, got %v", err)
	}
}

func TestOverrideReaderErrors(t *testing.T) {
	for _, src := range []string{
		"頑張る|がんばる",
		"頑張る|がんばる|x:がん",
		"頑張る|がんばる|0:がん|1:ば",
	} {
		_, err := NewOverrideReader(strings.NewReader("; header\n" + src)).Next()
		if !errors.Is(err, furigana.ErrSyntax) {
			t.Errorf("%q: expected syntax error, got %v", src, err)
		} else if !strings.HasPrefix(err.Error(), "line 2:") {
			t.Errorf("%q: expected line number in %q", src, err)
		}
	}
}

func TestExpressionReader(t *testing.T) {
	src := strings.NewReader(`大人|おとな
一体|いったい|0:いっ;1:たい
`)
	r := NewExpressionReader(src)
	text, reading, parts, err := r.Next()
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if text != "大人" || reading != "おとな" || parts != nil {
		t.Fatalf("record mismatch: %s %s %v", text, reading, parts)
	}
	_, _, parts, err = r.Next()
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if len(parts) != 2 || parts[0].Kana != "いっ" {
		t.Fatalf("parts mismatch: %v", parts)
	}
	if _, _, _, err = r.Next(); err != io.EOF {
		t.Fatalf("expected io.EOF, got %v", err)
	}
}

func TestLoadExpressions(t *testing.T) {
	res := furigana.NewResourceSet()
	if err := LoadExpressions(res, strings.NewReader("日本|にほん\n日本|にっぽん\n")); err != nil {
		t.Fatal(err)
	}
	x, found := res.Expression("日本")
	if !found || len(x.Readings) != 2 {
		t.Fatalf("expected two readings for 日本, have %v", x)
	}
	err := LoadExpressions(res, strings.NewReader("日本|にほん|0:に;1:ほんや\n"))
	if !errors.Is(err, furigana.ErrSyntax) {
		t.Fatalf("expected syntax error for inconsistent parts, got %v", err)
	}
}

func TestSupplements(t *testing.T) {
	supplements, err := ReadSupplements(strings.NewReader(`; symbols
々|のま,くり
ヶ|か, が,こ
`))
	if err != nil {
		t.Fatal(err)
	}
	if len(supplements) != 2 {
		t.Fatalf("expected 2 supplements, have %d", len(supplements))
	}
	k := supplements[1]
	if k.Character != 'ヶ' || k.IsRealKanji {
		t.Fatalf("supplement mismatch: %+v", k)
	}
	if !slices.Equal(k.Readings, []string{"か", "が", "こ"}) || !slices.Equal(k.ReadingsWithNanori, k.Readings) {
		t.Fatalf("readings mismatch: %v / %v", k.Readings, k.ReadingsWithNanori)
	}
	if _, err = ReadSupplements(strings.NewReader("々々|のま\n")); !errors.Is(err, furigana.ErrSyntax) {
		t.Fatalf("expected syntax error for multi-character key, got %v", err)
	}
}
