package ithkuil

import "strings"

// vowelTable lists the nine forms of each of the four vowel series. Forms
// with an alternative spelling are written "a|b".
var vowelTable = [4][9]string{
	{"a", "ä", "e", "i", "ëi", "ö", "o", "ü", "u"},
	{"ai", "au", "ei", "eu", "ëu", "ou", "oi", "iu", "ui"},
	{"ia|uä", "ie|uë", "io|üä", "iö|üë", "eë", "uö|öë", "uo|öä", "ue|ië", "ua|iä"},
	{"ao", "aö", "eo", "eö", "oë", "öe", "oe", "öa", "oa"},
}

// degreeZero holds the vowels that carry degree 0 of an affix, keyed to the
// affix type they select.
var degreeZero = map[string]int{"ae": 1, "ea": 2, "üo": 3}

// vowelForm is a position in vowelTable.
type vowelForm struct {
	Series int // 1..4
	Form   int // 1..9
}

var vowelIndex = func() map[string]vowelForm {
	m := make(map[string]vowelForm)
	for s, series := range vowelTable {
		for f, forms := range series {
			for _, v := range strings.Split(forms, "|") {
				m[v] = vowelForm{Series: s + 1, Form: f + 1}
			}
		}
	}
	return m
}()

// lookupVowel returns the series and form of a vowel with no glottal stop.
func lookupVowel(v string) (vowelForm, bool) {
	vf, ok := vowelIndex[v]
	return vf, ok
}

// vowelOf returns the canonical spelling of a series and form.
func vowelOf(series, form int) string {
	v, _, _ := strings.Cut(vowelTable[series-1][form-1], "|")
	return v
}

// hasGlottalStop reports whether a vowel group contains a glottal stop.
func hasGlottalStop(v string) bool {
	return strings.ContainsRune(v, '\'')
}

// glottalize inserts a glottal stop into a vowel: a single vowel is echoed
// across the stop (a'a) and a longer one is broken after its first letter (a'i).
func glottalize(v string) string {
	if hasGlottalStop(v) || v == "" {
		return v
	}
	runes := []rune(v)
	if len(runes) == 1 {
		return v + "'" + v
	}
	return string(runes[:1]) + "'" + string(runes[1:])
}

// unglottalize undoes glottalize, also accepting a stop at either edge.
func unglottalize(v string) (string, bool) {
	if !hasGlottalStop(v) {
		return v, false
	}
	parts := strings.Split(v, "'")
	if len(parts) == 2 && parts[0] == parts[1] && len([]rune(parts[0])) == 1 {
		return parts[0], true
	}
	return strings.Join(parts, ""), true
}

// Cn consonants in two patterns; the index within a pattern selects the
// mood (in a verbal word) or the case-scope.
var (
	cnPattern1 = []string{"h", "hl", "hr", "hm", "hn", "hň"}
	cnPattern2 = []string{"w", "hw", "hrw", "hmw", "hnw", "hňw"}
)

// lookupCn returns the pattern (1 or 2) and index of a Cn consonant.
func lookupCn(c string) (pattern, index int, ok bool) {
	for i, x := range cnPattern1 {
		if x == c {
			return 1, i, true
		}
	}
	for i, x := range cnPattern2 {
		if x == c {
			return 2, i, true
		}
	}
	return 0, 0, false
}

// isModularConsonant reports whether c may stand in a modular adjunct.
func isModularConsonant(c string) bool {
	if c == "y" {
		return true
	}
	_, _, ok := lookupCn(c)
	return ok
}
