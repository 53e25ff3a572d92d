package ithkuil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDictionary() *Dictionary {
	return NewDictionary(
		[]AffixEntry{{Cs: "l", Abbreviation: "XYZ", Degrees: [9]string{"first", "second"}}},
		[]RootEntry{
			{Cr: "m", Stems: [4]string{"general", "stem one"}},
			{Cr: "k", Stems: [4]string{"speak"}},
		},
	)
}

func parsed(t *testing.T, token string) Node {
	t.Helper()
	w, err := Format(token)
	require.NoError(t, err)
	p, ok := ParseWord(w, false).(Parsed)
	require.True(t, ok, token)
	return p.Gloss
}

func TestDecorate(t *testing.T) {
	d := testDictionary()
	tests := []struct {
		word string
		o    Options
		want string
	}{
		{"mala", Options{}, `__S1__-"stem one"`},
		{"emala", Options{}, `S2-"general"`},
		{"kala", Options{}, `"speak"`},
		{"tala", Options{}, "**t**"},
		{"málala", Options{}, `__S1__-"stem one"-"first"\FRA`},
		{"málala", Options{Precision: Short}, `__S1__-"stem one"-XYZ/1\FRA`},
		{"ëiläla", Options{}, `"second"`},
		{"hamala-kala", Options{}, `T1-__S1__-"stem one"—"speak"`},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, Render(Decorate(parsed(t, tt.word), d), tt.o))
		})
	}
}

func TestDecorateDoesNotMutate(t *testing.T) {
	n := parsed(t, "málala")
	before := Render(n, Options{})
	decorated := Decorate(n, testDictionary())

	assert.NotEqual(t, before, Render(decorated, Options{}))
	assert.Equal(t, before, Render(n, Options{}))
	assert.Equal(t, "**m**-**l**/1\\FRA", before)
}

func TestDecorateNilResources(t *testing.T) {
	n := parsed(t, "mala")
	assert.Equal(t, n, Decorate(n, nil))

	var d *Dictionary
	assert.Equal(t, "**m**", Render(Decorate(n, d), Options{}))
}

func TestDecorateSkipsDegreeZero(t *testing.T) {
	n := Slot{AffixRef{Cs: "l", Degree: 0, Type: 1}}
	assert.Equal(t, "**l**/0", Render(Decorate(n, testDictionary()), Options{}))
}

func TestRootEntryDescribe(t *testing.T) {
	r := RootEntry{Cr: "m", Stems: [4]string{"general", "", "two"}}
	tests := []struct {
		i        int
		desc     string
		specific bool
	}{
		{0, "general", true},
		{1, "general", false},
		{2, "two", true},
		{3, "general", false},
		{9, "general", false},
	}
	for _, tt := range tests {
		desc, specific := r.Describe(tt.i)
		if desc != tt.desc || specific != tt.specific {
			t.Errorf("Describe(%d) = (%q, %v), want (%q, %v)", tt.i, desc, specific, tt.desc, tt.specific)
		}
	}
}
