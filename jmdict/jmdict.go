/*
Package jmdict reads dictionary entries from JMdict and JMnedict XML files.

JMdict (http://www.edrdg.org/jmdict/j_jmdict.html) lists, per entry, written
forms (<k_ele>/<keb>) and readings (<r_ele>/<reb>). A reading applies to all
written forms unless it is restricted to some of them by <re_restr>. Readings
marked <re_nokanji> are not readings of the written forms and are skipped,
unless they are the only reading of an entry.

The reader turns every (written form, reading) combination into a
furigana.Entry. Entity references declared in the document type definition
(JMdict uses them for part-of-speech tags) are resolved from the DTD.
*/
package jmdict

import (
	"encoding/xml"
	"fmt"
	"io"
	"iter"
	"regexp"
	"slices"

	"github.com/npillmayer/furigana"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'furigana.jmdict'
func tracer() tracing.Trace {
	return tracing.Select("furigana.jmdict")
}

type entry struct {
	KanjiElements []struct {
		Keb string `xml:"keb"`
	} `xml:"k_ele"`
	ReadingElements []struct {
		Reb          string    `xml:"reb"`
		NoKanji      *struct{} `xml:"re_nokanji"`
		Restrictions []string  `xml:"re_restr"`
	} `xml:"r_ele"`
}

var entityDecl = regexp.MustCompile(`<!ENTITY\s+(\S+)\s+"([^"]*)"\s*>`)

// Reader streams entries from a JMdict or JMnedict document.
type Reader struct {
	decoder *xml.Decoder
	pending []furigana.Entry
	entries int
}

// NewReader creates a reader for a JMdict document.
func NewReader(r io.Reader) *Reader {
	d := xml.NewDecoder(r)
	d.Entity = make(map[string]string)
	return &Reader{decoder: d}
}

// Next returns the next (written form, reading) entry. It returns io.EOF
// when exhausted.
func (r *Reader) Next() (furigana.Entry, error) {
	for len(r.pending) == 0 {
		tok, err := r.decoder.Token()
		if err == io.EOF {
			tracer().Infof("read %d dictionary entries", r.entries)
			return furigana.Entry{}, io.EOF
		} else if err != nil {
			return furigana.Entry{}, fmt.Errorf("jmdict: %w", err)
		}
		switch t := tok.(type) {
		case xml.Directive:
			for _, m := range entityDecl.FindAllSubmatch(t, -1) {
				r.decoder.Entity[string(m[1])] = string(m[2])
			}
		case xml.StartElement:
			if t.Name.Local != "entry" {
				continue
			}
			var e entry
			if err := r.decoder.DecodeElement(&e, &t); err != nil {
				return furigana.Entry{}, fmt.Errorf("jmdict: %w", err)
			}
			r.entries++
			r.pending = e.combinations()
		}
	}
	next := r.pending[0]
	r.pending = r.pending[1:]
	return next, nil
}

// All returns the entries of the document as a sequence. Iteration stops
// after the first error.
func (r *Reader) All() iter.Seq2[furigana.Entry, error] {
	return func(yield func(furigana.Entry, error) bool) {
		for {
			e, err := r.Next()
			if err == io.EOF {
				return
			}
			if !yield(e, err) || err != nil {
				return
			}
		}
	}
}

// combinations pairs written forms with their readings.
func (e entry) combinations() []furigana.Entry {
	type vocab struct{ orthography, pronunciation string }
	var list []*vocab
	for _, k := range e.KanjiElements {
		list = append(list, &vocab{orthography: k.Keb})
	}
	for _, re := range e.ReadingElements {
		if re.NoKanji != nil && len(e.ReadingElements) > 1 {
			continue
		}
		var targets []*vocab
		switch {
		case len(list) == 0:
			v := &vocab{}
			list = append(list, v)
			targets = []*vocab{v}
		case len(re.Restrictions) > 0:
			for _, v := range list {
				if slices.Contains(re.Restrictions, v.orthography) {
					targets = append(targets, v)
				}
			}
		default:
			targets = slices.Clone(list)
		}
		for _, target := range targets {
			if target.pronunciation == "" {
				target.pronunciation = re.Reb
				continue
			}
			if !slices.ContainsFunc(list, func(v *vocab) bool {
				return v.orthography == target.orthography && v.pronunciation == re.Reb
			}) {
				list = append(list, &vocab{orthography: target.orthography, pronunciation: re.Reb})
			}
		}
	}
	entries := make([]furigana.Entry, 0, len(list))
	for _, v := range list {
		if v.pronunciation == "" {
			continue // written form without applicable reading
		}
		entries = append(entries, furigana.NewEntry(v.orthography, v.pronunciation))
	}
	return entries
}
