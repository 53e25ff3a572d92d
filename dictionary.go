package ithkuil

import (
	"sync/atomic"
	"time"
)

// Resources is the read-only vocabulary consulted after a word has been
// structurally decoded.
type Resources interface {
	Affix(cs string) (AffixEntry, bool)
	Root(cr string) (RootEntry, bool)
}

// AffixEntry describes one Cs affix.
type AffixEntry struct {
	// Cs is the affix consonant form.
	Cs string
	// Abbreviation is the short label used at short precision.
	Abbreviation string
	// Degrees holds the descriptions of degrees 1 to 9.
	Degrees [9]string
}

// Degree returns the description of degree d (1..9).
func (a AffixEntry) Degree(d int) string {
	if d < 1 || d > 9 {
		return ""
	}
	return a.Degrees[d-1]
}

// RootEntry describes one Cr root.
type RootEntry struct {
	// Cr is the root consonant form.
	Cr string
	// Stems holds the general (stem zero) description followed by the
	// descriptions of stems one to three.
	Stems [4]string
}

// Describe returns the description for stem index i, falling back to the
// general description, and whether the stem has a description of its own.
func (r RootEntry) Describe(i int) (desc string, specific bool) {
	if i > 0 && i < len(r.Stems) && r.Stems[i] != "" {
		return r.Stems[i], true
	}
	return r.Stems[0], i == 0 && r.Stems[0] != ""
}

// Dictionary is an immutable snapshot of affixes and roots. A nil
// *Dictionary is an empty dictionary.
type Dictionary struct {
	affixes  map[string]AffixEntry
	roots    map[string]RootEntry
	loadedAt time.Time
}

// NewDictionary builds a snapshot from entries. Later duplicates win.
func NewDictionary(affixes []AffixEntry, roots []RootEntry) *Dictionary {
	d := &Dictionary{
		affixes:  make(map[string]AffixEntry, len(affixes)),
		roots:    make(map[string]RootEntry, len(roots)),
		loadedAt: time.Now(),
	}
	for _, a := range affixes {
		d.affixes[a.Cs] = a
	}
	for _, r := range roots {
		d.roots[r.Cr] = r
	}
	return d
}

func (d *Dictionary) Affix(cs string) (AffixEntry, bool) {
	if d == nil {
		return AffixEntry{}, false
	}
	a, ok := d.affixes[cs]
	return a, ok
}

func (d *Dictionary) Root(cr string) (RootEntry, bool) {
	if d == nil {
		return RootEntry{}, false
	}
	r, ok := d.roots[cr]
	return r, ok
}

// DictionaryStats summarizes a snapshot.
type DictionaryStats struct {
	Affixes  int       `json:"affixes"`
	Roots    int       `json:"roots"`
	LoadedAt time.Time `json:"loaded_at"`
}

// Stats returns the size of the snapshot.
func (d *Dictionary) Stats() DictionaryStats {
	if d == nil {
		return DictionaryStats{}
	}
	return DictionaryStats{Affixes: len(d.affixes), Roots: len(d.roots), LoadedAt: d.loadedAt}
}

// DictionaryStore holds the current snapshot. Reloading replaces the whole
// snapshot; parses in flight keep the one they started with.
type DictionaryStore struct {
	current atomic.Pointer[Dictionary]
}

// NewDictionaryStore returns a store holding d.
func NewDictionaryStore(d *Dictionary) *DictionaryStore {
	s := &DictionaryStore{}
	s.current.Store(d)
	return s
}

// Load returns the current snapshot.
func (s *DictionaryStore) Load() *Dictionary {
	return s.current.Load()
}

// Swap installs d and returns the previous snapshot.
func (s *DictionaryStore) Swap(d *Dictionary) *Dictionary {
	return s.current.Swap(d)
}
