package ithkuil

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// allographs canonicalizes alternative spellings of letters, applied in order
// after NFC composition. Later rules may consume the output of earlier ones.
var allographs = []struct {
	from, to string
}{
	{"\u200b", ""},
	{"’", "'"}, // ’
	{"ʼ", "'"}, // ʼ
	{"‘", "'"}, // ‘
	{"ı", "i"}, // ı
	{"ȷ", "j"}, // ȷ
	{"ì", "i"}, // ì
	{"ù", "u"}, // ù
	{"ï", "i"}, // ï
	{"î", "i"}, // î
	{"ḍ", "ḑ"}, // ḍ → ḑ
	{"đ", "ḑ"}, // đ → ḑ
	{"ð", "ḑ"}, // ð → ḑ
	{"ł", "ļ"}, // ł → ļ
	{"ḷ", "ļ"}, // ḷ → ļ
	{"ŗ", "ř"}, // ŗ → ř
	{"ṛ", "ř"}, // ṛ → ř
	{"ṇ", "ň"}, // ṇ → ň
	{"ņ", "ň"}, // ņ → ň
	{"ŋ", "ň"}, // ŋ → ň
	{"ṭ", "ţ"}, // ṭ → ţ
	{"ŧ", "ţ"}, // ŧ → ţ
	{"ț", "ţ"}, // ț → ţ
	{"θ", "ţ"}, // θ → ţ
	{"ż", "ẓ"}, // ż → ẓ
	{"ʒ", "ž"}, // ʒ → ž
	// ASCII fallbacks for the three letters with no common keyboard form.
	{"c,", "ç"},
	{"t,", "ţ"},
	{"d,", "ḑ"},
}

// DefaultForm lowercases s, composes it to NFC and rewrites allographs to
// their canonical letters. Stress marks are preserved.
//
// A rewrite can leave a base letter next to a combining mark (ı before
// U+0301), so composition and rewriting repeat until the form is stable.
func DefaultForm(s string) string {
	for {
		next := rewriteAllographs(norm.NFC.String(strings.ToLower(s)))
		if next == s {
			return s
		}
		s = next
	}
}

func rewriteAllographs(s string) string {
	for _, a := range allographs {
		s = strings.ReplaceAll(s, a.from, a.to)
	}
	return s
}

// stressReplacer maps every stress-marked vowel to its unmarked form.
var stressReplacer = strings.NewReplacer(
	"á", "a", // á
	"â", "ä", // â → ä
	"é", "e", // é
	"ê", "ë", // ê → ë
	"í", "i", // í
	"ó", "o", // ó
	"ô", "ö", // ô → ö
	"ú", "u", // ú
	"û", "ü", // û → ü
)

// ClearStress strips stress diacritics from s, leaving all other letters intact.
func ClearStress(s string) string {
	return stressReplacer.Replace(s)
}

const (
	vowels         = "aäeëioöuü"
	stressedVowels = "áâéêíóôúû"
	consonants     = "bcčçdḑfghjklļmnňprřsštţvwxyzžẓ"
)

func isVowel(r rune) bool {
	return r == '\'' || strings.ContainsRune(vowels, r) || strings.ContainsRune(stressedVowels, r)
}

func isConsonant(r rune) bool {
	return strings.ContainsRune(consonants, r)
}

func isStressed(r rune) bool {
	return strings.ContainsRune(stressedVowels, r)
}

// isVowelGroup reports whether g is a group of vowels (glottal stops included).
func isVowelGroup(g string) bool {
	return g != "" && g != "-" && isVowel([]rune(g)[0])
}

// isConsonantGroup reports whether g is a group of consonants.
func isConsonantGroup(g string) bool {
	return g != "" && g != "-" && isConsonant([]rune(g)[0])
}

// SplitGroups splits a normalized word into maximal runs of vowels and
// consonants. A hyphen forms a group of its own.
func SplitGroups(s string) []string {
	runes := []rune(s)
	var groups []string
	for i := 0; i < len(runes); {
		if runes[i] == '-' {
			groups = append(groups, "-")
			i++
			continue
		}
		vowel := isVowel(runes[i])
		j := i
		for j < len(runes) && runes[j] != '-' && isVowel(runes[j]) == vowel {
			j++
		}
		groups = append(groups, string(runes[i:j]))
		i = j
	}
	return groups
}
