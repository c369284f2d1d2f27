package furigana

import "github.com/npillmayer/furigana/kana"

// Entry is a dictionary entry: a written form together with its full kana
// pronunciation.
type Entry struct {
	Orthography   string // written form, e.g. "頑張る"
	Pronunciation string // kana reading, e.g. "がんばる"
}

// NewEntry creates an entry from dictionary input, normalizing character
// width and composition of both strings.
func NewEntry(orthography, pronunciation string) Entry {
	return Entry{
		Orthography:   kana.Normalize(orthography),
		Pronunciation: kana.Normalize(pronunciation),
	}
}

// String returns "ORTHOGRAPHY|PRONUNCIATION".
func (e Entry) String() string {
	return e.Orthography + fieldSeparator + e.Pronunciation
}

// IsEmpty is true if either the written form or the pronunciation is missing.
func (e Entry) IsEmpty() bool {
	return e.Orthography == "" || e.Pronunciation == ""
}
