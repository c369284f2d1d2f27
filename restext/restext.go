/*
Package restext reads the line-oriented resource files of the resolver.

All files share a format: one record per line, fields separated by '|'.
Blank lines and lines starting with ';' are ignored. Three files are
supported:

	override list       頑張る|がんばる|0:がん;1:ば
	special readings    大人|おとな            (optional third field with parts)
	kanji supplements   々|のま,くり

Errors report the offending line number.
*/
package restext

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/furigana"
	"github.com/npillmayer/furigana/kana"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'furigana.restext'
func tracer() tracing.Trace {
	return tracing.Select("furigana.restext")
}

const (
	fieldSeparator   = "|"
	readingSeparator = ","
	commentPrefix    = ";"
)

// lines scans records, skipping comments and blank lines.
type lines struct {
	scanner *bufio.Scanner
	lineno  int
}

func newLines(r io.Reader) lines {
	return lines{scanner: bufio.NewScanner(r)}
}

// next returns the fields of the next record. min and max bound the number
// of fields.
func (l *lines) next(min, max int) ([]string, error) {
	for l.scanner.Scan() {
		l.lineno++
		line := strings.TrimRight(l.scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, commentPrefix) {
			continue
		}
		fields := strings.Split(line, fieldSeparator)
		if len(fields) < min || len(fields) > max {
			return nil, l.errorf("expected %d to %d fields, have %d", min, max, len(fields))
		}
		return fields, nil
	}
	if err := l.scanner.Err(); err != nil {
		return nil, err
	}
	return nil, io.EOF
}

func (l *lines) errorf(format string, args ...any) error {
	return fmt.Errorf("line %d: %w: %s", l.lineno, furigana.ErrSyntax, fmt.Sprintf(format, args...))
}

func (l *lines) wrap(err error) error {
	return fmt.Errorf("line %d: %w", l.lineno, err)
}

// --- Overrides -------------------------------------------------------------

// OverrideReader streams fixed solutions. It implements furigana.OverrideReader.
type OverrideReader struct {
	lines lines
}

var _ furigana.OverrideReader = (*OverrideReader)(nil)

// NewOverrideReader creates a reader for an override list.
func NewOverrideReader(r io.Reader) *OverrideReader {
	return &OverrideReader{lines: newLines(r)}
}

// Next returns the next override solution. It returns io.EOF when exhausted.
func (r *OverrideReader) Next() (*furigana.Solution, error) {
	fields, err := r.lines.next(3, 3)
	if err != nil {
		return nil, err
	}
	e := furigana.NewEntry(fields[0], fields[1])
	parts, err := furigana.ParseParts(fields[2], e)
	if err != nil {
		return nil, r.lines.wrap(err)
	}
	return furigana.NewSolution(e, parts...), nil
}

// LoadOverrides reads an override list into a resource set.
func LoadOverrides(res *furigana.ResourceSet, r io.Reader) error {
	return res.LoadOverrides(NewOverrideReader(r))
}

// --- Special readings ------------------------------------------------------

// ExpressionReader streams special readings. It implements
// furigana.ExpressionReader.
type ExpressionReader struct {
	lines lines
}

var _ furigana.ExpressionReader = (*ExpressionReader)(nil)

// NewExpressionReader creates a reader for a special readings file.
func NewExpressionReader(r io.Reader) *ExpressionReader {
	return &ExpressionReader{lines: newLines(r)}
}

// Next returns the next special reading. Parts are nil if the record has no
// third field. It returns io.EOF when exhausted.
func (r *ExpressionReader) Next() (string, string, []furigana.Part, error) {
	fields, err := r.lines.next(2, 3)
	if err != nil {
		return "", "", nil, err
	}
	e := furigana.NewEntry(fields[0], fields[1])
	if e.IsEmpty() {
		return "", "", nil, r.lines.errorf("empty special reading")
	}
	var parts []furigana.Part
	if len(fields) == 3 {
		if parts, err = furigana.ParseParts(fields[2], e); err != nil {
			return "", "", nil, r.lines.wrap(err)
		}
	}
	return e.Orthography, e.Pronunciation, parts, nil
}

// LoadExpressions reads a special readings file into a resource set.
func LoadExpressions(res *furigana.ResourceSet, r io.Reader) error {
	return res.LoadExpressions(NewExpressionReader(r))
}

// --- Kanji supplements -----------------------------------------------------

// SupplementReader streams readings for characters missing from KANJIDIC2.
// It implements furigana.KanjiReader.
type SupplementReader struct {
	lines lines
}

var _ furigana.KanjiReader = (*SupplementReader)(nil)

// NewSupplementReader creates a reader for a kanji supplement file.
func NewSupplementReader(r io.Reader) *SupplementReader {
	return &SupplementReader{lines: newLines(r)}
}

// Next returns the next supplement. Supplements are not real kanji, and
// their readings count with or without nanori. It returns io.EOF when
// exhausted.
func (r *SupplementReader) Next() (*furigana.Kanji, error) {
	fields, err := r.lines.next(2, 2)
	if err != nil {
		return nil, err
	}
	c, size := utf8.DecodeRuneInString(fields[0])
	if c == utf8.RuneError || size != len(fields[0]) {
		return nil, r.lines.errorf("expected a single character, have %q", fields[0])
	}
	var readings []string
	for _, reading := range strings.Split(fields[1], readingSeparator) {
		if reading = strings.TrimSpace(reading); reading != "" {
			readings = append(readings, kana.Normalize(reading))
		}
	}
	if len(readings) == 0 {
		tracer().Infof("line %d: supplement %c has no readings", r.lines.lineno, c)
	}
	return &furigana.Kanji{
		Character:          c,
		Readings:           readings,
		ReadingsWithNanori: slices.Clone(readings),
	}, nil
}

// ReadSupplements reads all records of a kanji supplement file.
func ReadSupplements(r io.Reader) ([]furigana.Kanji, error) {
	reader := NewSupplementReader(r)
	var supplements []furigana.Kanji
	for {
		k, err := reader.Next()
		if err == io.EOF {
			return supplements, nil
		} else if err != nil {
			return nil, err
		}
		supplements = append(supplements, *k)
	}
}
