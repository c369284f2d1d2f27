/*
Package kanjidic reads kanji readings from KANJIDIC2 XML files.

KANJIDIC2 is published by the Electronic Dictionary Research and Development
Group (http://www.edrdg.org/wiki/index.php/KANJIDIC_Project). The reader
streams <character> elements and keeps on-yomi and kun-yomi readings, converted
to hiragana, plus name readings (nanori). Readings for symbols which are not
part of KANJIDIC2, like 々 or ヶ, may be supplied as supplements.
*/
package kanjidic

import (
	"encoding/xml"
	"fmt"
	"io"
	"slices"
	"unicode/utf8"

	"github.com/npillmayer/furigana"
	"github.com/npillmayer/furigana/kana"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'furigana.kanjidic'
func tracer() tracing.Trace {
	return tracing.Select("furigana.kanjidic")
}

const (
	onReading  = "ja_on"
	kunReading = "ja_kun"
)

type character struct {
	Literal        string `xml:"literal"`
	ReadingMeaning struct {
		RMGroup []struct {
			Reading []struct {
				Value string `xml:",chardata"`
				Type  string `xml:"r_type,attr"`
			} `xml:"reading"`
		} `xml:"rmgroup"`
		Nanori []string `xml:"nanori"`
	} `xml:"reading_meaning"`
}

// Reader streams kanji records from a KANJIDIC2 document.
// It implements furigana.KanjiReader.
type Reader struct {
	decoder     *xml.Decoder
	supplements map[rune]furigana.Kanji
	order       []rune // supplements in input order
	exhausted   bool
	count       int
}

var _ furigana.KanjiReader = (*Reader)(nil)

// NewReader creates a reader for a KANJIDIC2 document. Readings of
// supplements are merged into the KANJIDIC2 record of the same character;
// supplements for characters unknown to KANJIDIC2 are returned after the
// last KANJIDIC2 record.
func NewReader(r io.Reader, supplements ...furigana.Kanji) *Reader {
	reader := &Reader{
		decoder:     xml.NewDecoder(r),
		supplements: make(map[rune]furigana.Kanji, len(supplements)),
	}
	for _, s := range supplements {
		if known, found := reader.supplements[s.Character]; found {
			known.Readings = slices.Concat(known.Readings, s.Readings)
			known.ReadingsWithNanori = slices.Concat(known.ReadingsWithNanori, s.ReadingsWithNanori)
			reader.supplements[s.Character] = known
			continue
		}
		reader.supplements[s.Character] = s
		reader.order = append(reader.order, s.Character)
	}
	return reader
}

// Load reads a KANJIDIC2 document into a resource set.
func Load(res *furigana.ResourceSet, r io.Reader, supplements ...furigana.Kanji) error {
	return res.LoadKanji(NewReader(r, supplements...))
}

// Next returns the next kanji record. It returns io.EOF when exhausted.
func (r *Reader) Next() (*furigana.Kanji, error) {
	for !r.exhausted {
		tok, err := r.decoder.Token()
		if err == io.EOF {
			r.exhausted = true
			tracer().Debugf("read %d KANJIDIC2 characters", r.count)
			break
		} else if err != nil {
			return nil, fmt.Errorf("kanjidic: %w", err)
		}
		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != "character" {
			continue
		}
		var c character
		if err := r.decoder.DecodeElement(&c, &start); err != nil {
			return nil, fmt.Errorf("kanjidic: %w", err)
		}
		if utf8.RuneCountInString(c.Literal) != 1 {
			tracer().Errorf("skipping KANJIDIC2 literal %q", c.Literal)
			continue
		}
		r.count++
		return r.record(c), nil
	}
	for len(r.order) > 0 {
		ch := r.order[0]
		r.order = r.order[1:]
		if s, found := r.supplements[ch]; found {
			delete(r.supplements, ch)
			s.IsRealKanji = false
			return &s, nil
		}
	}
	return nil, io.EOF
}

func (r *Reader) record(c character) *furigana.Kanji {
	ch, _ := utf8.DecodeRuneInString(c.Literal)
	k := &furigana.Kanji{Character: ch, IsRealKanji: true}
	for _, group := range c.ReadingMeaning.RMGroup {
		for _, reading := range group.Reading {
			if reading.Type == onReading || reading.Type == kunReading {
				k.Readings = append(k.Readings, kana.ToHiragana(reading.Value))
			}
		}
	}
	if s, found := r.supplements[ch]; found {
		k.Readings = slices.Concat(k.Readings, s.Readings)
		delete(r.supplements, ch)
	}
	k.ReadingsWithNanori = slices.Clone(k.Readings)
	for _, n := range c.ReadingMeaning.Nanori {
		if !slices.Contains(k.ReadingsWithNanori, n) {
			k.ReadingsWithNanori = append(k.ReadingsWithNanori, n)
		}
	}
	return k
}
