package ithkuil

import "strings"

// formativeOptions carries what a formative cannot see on its own.
type formativeOptions struct {
	// inChain is set for every link of a concatenation chain but the last.
	inChain bool
	// nextVerbal reports whether the formative this one depends on is
	// verbal. It selects mood over case-scope in slot VIII of chain links.
	nextVerbal bool
}

// cursor walks a group sequence.
type cursor struct {
	groups []string
	pos    int
}

func (c *cursor) peek() string {
	if c.pos >= len(c.groups) {
		return ""
	}
	return c.groups[c.pos]
}

func (c *cursor) next() string {
	g := c.peek()
	if g != "" {
		c.pos++
	}
	return g
}

func (c *cursor) rest() []string {
	return c.groups[c.pos:]
}

var (
	errFewSlotV  = &StructuralError{Reason: "Unexpectedly few slot V affixes"}
	errManySlotV = &StructuralError{Reason: "Unexpectedly many slot V affixes"}
)

type ccForm struct {
	typ      int
	shortcut string
}

var ccForms = map[string]ccForm{
	"h":  {1, ""},
	"hl": {1, "w"},
	"hr": {1, "y"},
	"hw": {2, ""},
	"hm": {2, "w"},
	"hn": {2, "y"},
}

type rootKind int

const (
	rootLexical rootKind = iota
	rootAffix
	rootReferential
)

type vvValue struct {
	stem    Category
	version Category
	root    rootKind
	affix   Affix
	ca      *Ca
}

// vvForms maps the form of a Vv vowel to its stem and version.
var vvForms = map[int][2]int{
	1: {0, 0}, 2: {0, 1},
	3: {1, 0}, 4: {1, 1},
	6: {3, 1}, 7: {3, 0},
	8: {2, 1}, 9: {2, 0},
}

// specialVv route the root slot away from the root dictionary.
var specialVv = map[string]struct {
	root    rootKind
	version int
}{
	"ëi": {rootAffix, 0},
	"ëu": {rootAffix, 1},
	"eë": {rootAffix, 0},
	"oë": {rootAffix, 1},
	"ae": {rootReferential, 0},
	"ea": {rootReferential, 1},
}

// vvAffixes are the affixes implied by Vv series 2 to 4.
var vvAffixes = map[int]Affix{
	2: CsAffix{Cs: "r", Degree: 4, Type: 1},
	3: CsAffix{Cs: "t", Degree: 4, Type: 1},
	4: CsAffix{Cs: "t", Degree: 5, Type: 1},
}

func withCa(f func(*Ca)) *Ca {
	ca := DefaultCa
	f(&ca)
	return &ca
}

// shortcutCa lists the Ca values implied by a w or y shortcut, by Vv series.
var shortcutCa = map[string][4]*Ca{
	"w": {
		withCa(func(*Ca) {}),
		withCa(func(c *Ca) { c.Perspective = Perspectives.At(1) }),
		withCa(func(c *Ca) { c.Perspective = Perspectives.At(2) }),
		withCa(func(c *Ca) { c.Perspective = Perspectives.At(1); c.Essence = Essences.At(1) }),
	},
	"y": {
		withCa(func(c *Ca) { c.Extension = Extensions.At(1) }),
		withCa(func(c *Ca) { c.Essence = Essences.At(1) }),
		withCa(func(c *Ca) { c.Perspective = Perspectives.At(3) }),
		withCa(func(c *Ca) { c.Extension = Extensions.At(1); c.Essence = Essences.At(1) }),
	},
}

func parseVv(vv, shortcut string) (vvValue, error) {
	if s, ok := specialVv[vv]; ok {
		if shortcut != "" {
			return vvValue{}, structural("Vv", "%s cannot take a %s shortcut", vv, shortcut)
		}
		return vvValue{version: Versions.At(s.version), root: s.root}, nil
	}
	vf, ok := lookupVowel(vv)
	if !ok || vf.Form == 5 {
		return vvValue{}, unknown("Vv", vv)
	}
	sv := vvForms[vf.Form]
	v := vvValue{stem: Stems.At(sv[0]), version: Versions.At(sv[1])}
	if shortcut != "" {
		v.ca = shortcutCa[shortcut][vf.Series-1]
	} else {
		v.affix = vvAffixes[vf.Series]
	}
	return v, nil
}

// parseVr decodes slot IV. For an affix root the form is the degree of
// the root affix instead of function and specification.
func parseVr(vr string, kind rootKind) (Slot, int, error) {
	vf, ok := lookupVowel(vr)
	if !ok {
		return nil, 0, unknown("Vr", vr)
	}
	context := Contexts.At(vf.Series - 1)
	switch kind {
	case rootAffix:
		return Slot{context}, vf.Form, nil
	case rootReferential:
		if vf.Form > 4 {
			return nil, 0, unknown("Vr", vr)
		}
		return Slot{Specifications.At(vf.Form - 1), context}, 0, nil
	}
	if vf.Form == 5 {
		return nil, 0, unknown("Vr", vr)
	}
	function, spec := 0, vf.Form-1
	if vf.Form > 5 {
		function, spec = 1, vf.Form-6
	}
	return Slot{Functions.At(function), Specifications.At(spec), context}, 0, nil
}

// parseVnCn decodes slot VIII.
func parseVnCn(vn, cn string, useMood bool) (Slot, error) {
	pattern, index, ok := lookupCn(cn)
	if !ok {
		return nil, unknown("Cn", cn)
	}
	mcs := CaseScopes.At(index)
	if useMood {
		mcs = Moods.At(index)
	}

	plain, absolute := unglottalize(vn)
	vf, ok := lookupVowel(plain)
	if !ok {
		return nil, unknown("Vn", vn)
	}
	if pattern == 2 {
		if absolute {
			return nil, unknown("Vn", vn)
		}
		return Slot{Aspects.At((vf.Series-1)*9 + vf.Form - 1), mcs}, nil
	}
	var value Category
	switch vf.Series {
	case 1:
		value = Valences.At(vf.Form - 1)
	case 2:
		value = Phases.At(vf.Form - 1)
	case 3:
		value = Effects.At(vf.Form - 1)
	case 4:
		value = Levels.At(vf.Form - 1)
		if absolute {
			value = absoluteLevel(value)
		}
	}
	if absolute && vf.Series != 4 {
		return nil, unknown("Vn", vn)
	}
	return Slot{value, mcs}, nil
}

// parseVk decodes an illocution and validation vowel.
func parseVk(v string) (Slot, error) {
	vf, ok := lookupVowel(v)
	if !ok {
		return nil, unknown("Vk", v)
	}
	switch {
	case vf.Series == 1:
		return Slot{Illocutions.At(0), Validations.At(vf.Form - 1)}, nil
	case vf.Series == 2 && vf.Form != 5:
		i := vf.Form
		if vf.Form > 5 {
			i--
		}
		return Slot{Illocutions.At(i)}, nil
	}
	return nil, unknown("Vk", v)
}

// parseSlotIX decodes the final vowel. It returns the value and the
// relation shown after the stress separator, if any.
func parseSlotIX(v string, stress Stress, chained bool) (Node, Node, error) {
	if chained {
		if v == "" {
			v = "a"
		}
		c, err := caseFromVowel(v, stress == StressUltimate)
		return c, nil, err
	}
	if stress.verbal() {
		if v == "" {
			return Slot{Illocutions.At(0), Validations.At(0)}, nil, nil
		}
		vk, err := parseVk(v)
		return vk, nil, err
	}
	if v == "" {
		v = "a"
	}
	c, err := caseFromVowel(v, false)
	if err != nil {
		return nil, nil, err
	}
	rel := Relations.At(0)
	if stress == StressAntepenultimate {
		rel = Relations.At(1)
	}
	return c, rel, nil
}

type affixPair struct {
	vx, cs string
}

func affixSlots(pairs []affixPair) ([]Node, error) {
	nodes := make([]Node, 0, len(pairs))
	for _, p := range pairs {
		a, err := ParseAffix(p.vx, p.cs, len(pairs) == 1)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, a.Gloss())
	}
	return nodes, nil
}

// formativeTail holds slots V to IX before decoding.
type formativeTail struct {
	slotV, slotVII []affixPair
	ca             Ca
	vn, cn         string
	vc             string
}

// parseFormative decodes a formative:
//
//	(Cc) Vv Cr Vr (Cs Vx)* Ca (Vx Cs)* (Vn Cn) (Vc|Vk)
//
// or, when Vv carries a w/y shortcut and Ca is implied,
//
//	(Cc) Vv Cr Vr (Cs Vx)* (Cn Vn)
func parseFormative(groups []string, stress Stress, opts formativeOptions) (*Gloss, error) {
	c := &cursor{groups: groups}
	var slots []Node

	shortcut := ""
	chained := opts.inChain
	if cc, ok := ccForms[c.peek()]; ok {
		c.next()
		chained = true
		shortcut = cc.shortcut
		slots = append(slots, Concatenations.At(cc.typ-1))
	} else if g := c.peek(); (g == "w" || g == "y") && len(groups) > 1 && isVowelGroup(groups[1]) {
		shortcut = c.next()
	}

	vv := "a"
	switch {
	case isVowelGroup(c.peek()):
		vv = c.next()
	case c.pos > 0:
		return nil, structural("Vv", "missing after %s", groups[c.pos-1])
	}
	v, err := parseVv(vv, shortcut)
	if err != nil {
		return nil, err
	}

	cr := c.next()
	if !isConsonantGroup(cr) {
		return nil, structural("Cr", "missing root")
	}
	vr := c.next()
	if !isVowelGroup(vr) {
		return nil, structural("Vr", "missing after %s", cr)
	}
	if hasGlottalStop(vr) {
		return nil, errFewSlotV
	}
	vrSlot, degree, err := parseVr(vr, v.root)
	if err != nil {
		return nil, err
	}

	var root Node
	switch v.root {
	case rootAffix:
		slots = append(slots, Slot{v.version})
		root = AffixRef{Cs: cr, Degree: degree, Type: 1}
	case rootReferential:
		refs, err := parseReferents(cr)
		if err != nil {
			return nil, err
		}
		slots = append(slots, Slot{v.version})
		root = referentNode(refs)
	default:
		slots = append(slots, Slot{StemRef{Stem: v.stem, Cr: cr}, v.version})
		root = RootRef{Cr: cr, Stem: v.stem}
	}
	slots = append(slots, root, vrSlot)
	if v.affix != nil {
		slots = append(slots, v.affix.Gloss())
	}

	var tail formativeTail
	if v.ca != nil {
		tail, err = scanShortcutTail(c.rest())
		tail.ca = *v.ca
	} else {
		tail, err = scanTail(c.rest())
	}
	if err != nil {
		return nil, err
	}

	slotV, err := affixSlots(tail.slotV)
	if err != nil {
		return nil, err
	}
	slots = append(slots, slotV...)
	slots = append(slots, tail.ca.Slot())
	slotVII, err := affixSlots(tail.slotVII)
	if err != nil {
		return nil, err
	}
	slots = append(slots, slotVII...)

	if tail.cn != "" {
		useMood := (!chained && stress.verbal()) || (chained && opts.nextVerbal)
		viii, err := parseVnCn(tail.vn, tail.cn, useMood)
		if err != nil {
			return nil, err
		}
		slots = append(slots, viii)
	}

	ix, rel, err := parseSlotIX(tail.vc, stress, chained)
	if err != nil {
		return nil, err
	}
	slots = append(slots, ix)
	return &Gloss{Slots: slots, Stress: rel}, nil
}

func isCn(g string) bool {
	_, _, ok := lookupCn(g)
	return ok
}

// scanTail splits the groups after Vr of a formative with an explicit Ca.
// A geminated cluster marks the Ca when slot V is filled. A Cn where the Ca
// would stand leaves the Ca at its default and opens slot VIII with Vn a.
func scanTail(tail []string) (formativeTail, error) {
	var t formativeTail
	if len(tail) == 0 {
		return t, structural("Ca", "missing")
	}

	caIdx := -1
	for k := 0; k < len(tail); k += 2 {
		if isCn(tail[k]) {
			break
		}
		if isGeminate(tail[k]) {
			caIdx = k
			break
		}
	}

	pos := 1
	switch {
	case caIdx == 0:
		return t, errFewSlotV
	case caIdx > 0:
		for k := 0; k < caIdx; k += 2 {
			vx := tail[k+1]
			if hasGlottalStop(vx) && k+2 < caIdx {
				return t, errManySlotV
			}
			t.slotV = append(t.slotV, affixPair{vx: vx, cs: tail[k]})
		}
		ca, err := ParseGeminateCa(tail[caIdx])
		if err != nil {
			return t, err
		}
		t.ca, pos = ca, caIdx+1
	default:
		if isCn(tail[0]) {
			t.ca, t.vn, t.cn = DefaultCa, "a", tail[0]
			break
		}
		ca, err := ParseCa(tail[0])
		if err != nil {
			return t, err
		}
		t.ca = ca
	}

	rest := tail[pos:]
	k := 0
	for t.cn == "" && k+1 < len(rest) {
		vx, cs := rest[k], rest[k+1]
		k += 2
		if isCn(cs) {
			t.vn, t.cn = vx, cs
			break
		}
		t.slotVII = append(t.slotVII, affixPair{vx: vx, cs: cs})
	}
	return t, t.finish(rest[k:])
}

// scanShortcutTail splits the groups after Vr of a shortcut formative. A
// glottal stop on a Vx closes slot V; affixes without one go to slot VII.
func scanShortcutTail(tail []string) (formativeTail, error) {
	var t formativeTail
	var pending []affixPair
	closed := false
	k := 0
	for ; k+1 < len(tail); k += 2 {
		cs, vx := tail[k], tail[k+1]
		if isCn(cs) {
			t.cn, t.vn = cs, vx
			k += 2
			break
		}
		pending = append(pending, affixPair{vx: vx, cs: cs})
		if hasGlottalStop(vx) {
			if closed {
				return t, errManySlotV
			}
			closed = true
			t.slotV, pending = pending, nil
		}
	}
	t.slotVII = pending
	if k < len(tail) {
		return t, leftover(tail[k:])
	}
	return t, nil
}

// finish assigns what remains after slot VIII to slot IX.
func (t *formativeTail) finish(rest []string) error {
	switch {
	case len(rest) == 0:
		return nil
	case len(rest) == 1 && isVowelGroup(rest[0]):
		t.vc = rest[0]
		return nil
	}
	start := 0
	if isVowelGroup(rest[0]) {
		t.vc, start = rest[0], 1
	}
	return leftover(rest[start:])
}

func leftover(groups []string) error {
	return structural("slot IX", "unexpected groups after slot IX: %s", strings.Join(groups, ""))
}

// formativeRoot returns the Cr of a formative's groups without decoding it.
func formativeRoot(groups []string) string {
	c := &cursor{groups: groups}
	if _, ok := ccForms[c.peek()]; ok {
		c.next()
	} else if g := c.peek(); (g == "w" || g == "y") && len(groups) > 1 && isVowelGroup(groups[1]) {
		c.next()
	}
	if isVowelGroup(c.peek()) {
		c.next()
	}
	if cr := c.peek(); isConsonantGroup(cr) {
		return cr
	}
	return ""
}
