package analysis

import (
	"cmp"
	"slices"
	"unicode/utf8"
)

// Entry is a marked word in the rendered output.
type Entry struct {
	Start int
	Key   string
}

// End returns the last offset that still resolves to this entry. The span
// reaches one rune past the key to accept a click on the trailing space.
func (e Entry) End() int {
	return e.Start + utf8.RuneCountInString(e.Key) + 1
}

func (e Entry) contains(offset int) bool {
	return offset >= e.Start && offset <= e.End()
}

// PositionIndex maps rendered offsets back to the normalized key of the
// medium or hard word drawn there. It holds at most one entry per start
// offset. A nil *PositionIndex is empty.
type PositionIndex struct {
	entries []Entry // sorted by Start
}

// NewPositionIndex returns an empty index.
func NewPositionIndex() *PositionIndex {
	return &PositionIndex{}
}

// Record stores key at start, replacing any key already recorded there.
func (x *PositionIndex) Record(start int, key string) {
	i, found := slices.BinarySearchFunc(x.entries, start, func(e Entry, s int) int {
		return cmp.Compare(e.Start, s)
	})
	if found {
		x.entries[i].Key = key
		return
	}
	x.entries = slices.Insert(x.entries, i, Entry{Start: start, Key: key})
}

// Resolve returns the key whose span contains offset.
//
// When spans overlap (a word's trailing-space tolerance touching the next
// word's first rune) the entry with the greatest start wins, so a click on
// a word's first rune always selects that word.
func (x *PositionIndex) Resolve(offset int) (string, bool) {
	if x == nil {
		return "", false
	}
	for i := len(x.entries) - 1; i >= 0; i-- {
		if e := x.entries[i]; e.contains(offset) {
			return e.Key, true
		}
	}
	return "", false
}

// Len returns the number of recorded entries.
func (x *PositionIndex) Len() int {
	if x == nil {
		return 0
	}
	return len(x.entries)
}

// Entries returns a copy of the entries in ascending start order.
func (x *PositionIndex) Entries() []Entry {
	if x == nil {
		return nil
	}
	return slices.Clone(x.entries)
}
