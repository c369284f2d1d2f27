/*
Package furigana attaches furigana to Japanese dictionary entries.

Given the written form of a word (for example 頑張る) and its full kana
pronunciation (がんばる), the resolver finds out which spans of the written
form are read as which spans of the pronunciation:

	頑張る|がんばる|0:がん;1:ば

A set of independent solvers proposes segmentations. Every candidate is
validated against the entry before it is accepted, and solvers are consulted
in tiers of decreasing confidence. An entry counts as resolved only if
exactly one validated segmentation remains; ambiguity is reported, never
guessed away.

The package is format-agnostic. Kanji readings, override segmentations and
special expressions are loaded through small reader interfaces; adapters for
concrete formats live in sub-packages kanjidic, jmdict and restext.

Further Reading

	http://www.edrdg.org/wiki/index.php/KANJIDIC_Project
	http://www.edrdg.org/jmdict/j_jmdict.html
	https://github.com/Doublevil/JmdictFurigana

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package furigana

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'furigana'
func tracer() tracing.Trace {
	return tracing.Select("furigana")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}

var (
	// ErrSyntax is returned for malformed serialized solutions or parts.
	ErrSyntax = errors.New("furigana: syntax error")
	// ErrUnsolved is returned when parsing the '???' marker of an entry
	// without solution.
	ErrUnsolved = errors.New("furigana: entry has no solution")
	// ErrFrozen is returned when resources are added after a resource set
	// has been frozen.
	ErrFrozen = errors.New("furigana: resource set is frozen")
	// ErrMalformedCandidate flags a solver which produced a segmentation
	// failing the solution check.
	ErrMalformedCandidate = errors.New("furigana: malformed candidate")
)
