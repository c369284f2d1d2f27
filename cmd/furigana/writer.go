package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/npillmayer/furigana"
)

// writer outputs solution sets and counts the entries solved.
//
// Entries with a single solution are written; with unsolved set, the others
// are written as ORTH|PRON|???. In JSON mode the output is one array and
// unsolved entries are never written.
type writer struct {
	out      io.Writer
	json     bool
	unsolved bool
	solved   int
	total    int
}

func newWriter(out io.Writer, asJSON, unsolved bool) *writer {
	return &writer{out: out, json: asJSON, unsolved: unsolved}
}

func (w *writer) write(set *furigana.SolutionSet) error {
	single := set.Single()
	switch {
	case single != nil:
		tracer().Infof("◯   %s", set)
	case set.Len() > 0:
		tracer().Infof("➕   %s", set)
	default:
		tracer().Infof("X    %s", set)
	}
	w.total++
	if single == nil {
		if w.unsolved && !w.json {
			_, err := fmt.Fprintf(w.out, "%s|???\n", set.Entry)
			return err
		}
		return nil
	}
	w.solved++
	if !w.json {
		_, err := fmt.Fprintln(w.out, single)
		return err
	}
	b, err := json.Marshal(single)
	if err != nil {
		return err
	}
	sep := ",\n"
	if w.solved == 1 {
		sep = "[\n"
	}
	_, err = fmt.Fprintf(w.out, "%s%s", sep, b)
	return err
}

// close terminates the JSON array.
func (w *writer) close() error {
	if !w.json {
		return nil
	}
	var err error
	if w.solved == 0 {
		_, err = io.WriteString(w.out, "[]\n")
	} else {
		_, err = io.WriteString(w.out, "\n]\n")
	}
	return err
}
