package ithkuil

import "strings"

// Referent is a personal referent with its effect.
type Referent struct {
	Referent Category
	Effect   Category
}

func (r Referent) Render(o Options) string {
	return Slot{r.Referent, r.Effect}.Render(o)
}

// referentList renders several referents of one cluster as [a+b].
type referentList []Referent

func (l referentList) Render(o Options) string {
	if len(l) == 1 {
		return l[0].Render(o)
	}
	parts := make([]string, len(l))
	for i, r := range l {
		parts[i] = r.Render(o)
	}
	return "[" + strings.Join(parts, "+") + "]"
}

func referentNode(refs []Referent) Node {
	return referentList(refs)
}

// referentForms lists, for each referent, its consonants for the neutral,
// beneficial and detrimental effects.
var referentForms = [][3]string{
	{"l", "r", "ř"},
	{"s", "š", "ž"},
	{"n", "t", "d"},
	{"m", "p", "b"},
	{"ň", "k", "g"},
	{"z", "ţ", "ḑ"},
	{"ẓ", "f", "v"},
	{"c", "č", "j"},
	{"th", "ph", "kh"},
	{"ll", "rr", "řř"},
	{"mm", "nn", "ňň"},
}

var referentIndex = func() map[string]Referent {
	m := make(map[string]Referent)
	for r, forms := range referentForms {
		for e, c := range forms {
			m[c] = Referent{Referent: Referents.At(r), Effect: ReferentEffects.At(e)}
		}
	}
	return m
}()

// parseReferents decodes a referent cluster, preferring two-letter
// referents over two single ones.
func parseReferents(cluster string) ([]Referent, error) {
	runes := []rune(cluster)
	if len(runes) == 0 {
		return nil, unknown("referent", cluster)
	}
	var refs []Referent
	for i := 0; i < len(runes); {
		if i+1 < len(runes) {
			if r, ok := referentIndex[string(runes[i:i+2])]; ok {
				refs = append(refs, r)
				i += 2
				continue
			}
		}
		r, ok := referentIndex[string(runes[i])]
		if !ok {
			return nil, unknown("referent", cluster)
		}
		refs = append(refs, r)
		i++
	}
	return refs, nil
}

// suppletiveForms are the adjunct consonants standing for a whole referent.
var suppletiveForms = map[string]int{"hl": 11, "hm": 12, "hn": 13, "hň": 14}

// carrierForm introduces a quoted span.
const carrierForm = "hl"

func referentialEssence(w *Word) Category {
	if w.Stress == StressUltimate {
		return Essences.At(1)
	}
	return Essences.At(0)
}

func trimEpenthetic(groups []string) []string {
	if len(groups) > 0 && groups[0] == "ë" {
		groups = groups[1:]
	}
	return groups
}

// parseSuppletive decodes hl/hm/hn/hň + Vc.
func parseSuppletive(w *Word) (Node, error) {
	ref := Referents.At(suppletiveForms[w.Groups[0]])
	c, err := caseFromVowel(w.Groups[1], false)
	if err != nil {
		return nil, err
	}
	return &Gloss{Slots: []Node{Slot{ref}, c, referentialEssence(w)}}, nil
}

// parseReferential decodes C1 Vc1, C1 Vc1'Vc2 C2 and their epenthetic
// variants.
func parseReferential(w *Word) (Node, error) {
	groups := trimEpenthetic(w.Groups)
	if len(groups) < 2 {
		return nil, structural("referential", "missing case vowel")
	}
	refs1, err := parseReferents(groups[0])
	if err != nil {
		return nil, err
	}
	slots := []Node{referentNode(refs1)}

	if len(groups) == 2 {
		c, err := caseFromVowel(groups[1], false)
		if err != nil {
			return nil, err
		}
		slots = append(slots, c, referentialEssence(w))
		return &Gloss{Slots: slots}, nil
	}

	tail := groups[2:]
	if tail[len(tail)-1] == "ë" {
		tail = tail[:len(tail)-1]
	}
	if len(tail) != 1 {
		return nil, structural("referential", "unexpected groups after the second referent")
	}
	vc1, vc2, ok := strings.Cut(groups[1], "'")
	if !ok || vc1 == "" || vc2 == "" {
		return nil, structural("referential", "expected a glottal stop between the two cases")
	}
	c1, err := caseFromVowel(vc1, false)
	if err != nil {
		return nil, err
	}
	c2, err := caseFromVowel(vc2, false)
	if err != nil {
		return nil, err
	}
	refs2, err := parseReferents(tail[0])
	if err != nil {
		return nil, err
	}
	slots = append(slots, c1, c2, referentNode(refs2), referentialEssence(w))
	return &Gloss{Slots: slots}, nil
}

// combinationSpecs maps the specification consonant of a combination
// referential to its specification.
var combinationSpecs = map[string]int{"x": 0, "xt": 1, "xp": 2, "xx": 3}

// parseCombinationReferential decodes C1 Vc1 (x|xt|xp|xx) (Vx Cs)* [Vc2].
func parseCombinationReferential(w *Word) (Node, error) {
	groups := trimEpenthetic(w.Groups)
	if len(groups) < 3 {
		return nil, structural("combination referential", "missing specification")
	}
	refs, err := parseReferents(groups[0])
	if err != nil {
		return nil, err
	}
	c1, err := caseFromVowel(groups[1], false)
	if err != nil {
		return nil, err
	}
	spec, ok := combinationSpecs[groups[2]]
	if !ok {
		return nil, unknown("specification", groups[2])
	}
	slots := []Node{referentNode(refs), c1, ForceDefaults{Node: Specifications.At(spec), When: true}}

	rest := groups[3:]
	var c2 Node
	if len(rest)%2 == 1 {
		v := rest[len(rest)-1]
		rest = rest[:len(rest)-1]
		c, err := caseFromVowel(v, false)
		if err != nil {
			return nil, err
		}
		c2 = c
	}
	for i := 0; i < len(rest); i += 2 {
		a, err := ParseAffix(rest[i], rest[i+1], false)
		if err != nil {
			return nil, err
		}
		slots = append(slots, a.Gloss())
	}
	if c2 != nil {
		slots = append(slots, c2)
	}
	slots = append(slots, referentialEssence(w))
	return &Gloss{Slots: slots}, nil
}
