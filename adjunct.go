package ithkuil

// terminatorForm closes a terminated phrase.
const terminatorForm = "hü"

var registerForms = map[string]struct {
	register int
	final    bool
}{
	"a": {0, false}, "e": {1, false}, "i": {2, false}, "o": {3, false}, "u": {4, false},
	"ai": {0, true}, "ei": {1, true}, "iu": {2, true}, "oi": {3, true}, "ui": {4, true},
	"ü": {5, false},
}

// parseRegister decodes h + V.
func parseRegister(w *Word) (Node, error) {
	f, ok := registerForms[w.Groups[1]]
	if !ok {
		return nil, unknown("register", w.Groups[1])
	}
	reg := Registers.At(f.register)
	if f.final {
		return &Gloss{Slots: []Node{Slot{reg, Registers.At(5)}}}, nil
	}
	return &Gloss{Slots: []Node{reg}}, nil
}

var moodCaseScopeForms = map[string]Category{
	"a": Moods.At(0), "e": Moods.At(1), "i": Moods.At(2),
	"o": Moods.At(3), "ö": Moods.At(4), "u": Moods.At(5),
	"ai": CaseScopes.At(0), "ei": CaseScopes.At(1), "iu": CaseScopes.At(2),
	"oi": CaseScopes.At(3), "ü": CaseScopes.At(4), "ui": CaseScopes.At(5),
}

// parseMoodCaseScope decodes hr + V.
func parseMoodCaseScope(w *Word) (Node, error) {
	c, ok := moodCaseScopeForms[w.Groups[1]]
	if !ok {
		return nil, unknown("mood/case-scope", w.Groups[1])
	}
	return &Gloss{Slots: []Node{ForceDefaults{Node: c, When: true}}}, nil
}

// parseBias decodes a lone consonant cluster.
func parseBias(w *Word) (Node, error) {
	b, ok := Biases[w.Groups[0]]
	if !ok {
		return nil, unknown("bias", w.Groups[0])
	}
	return &Gloss{Slots: []Node{b}}, nil
}

func scope(s string) Literal {
	return Literal{Regular: "{" + s + "}"}
}

var (
	vowelScopes = map[string]Literal{
		"a": scope("VDom"), "u": scope("VSub"), "e": scope("VIIDom"),
		"i": scope("VIISub"), "o": scope("Form"), "ö": scope("OAdj"),
	}
	consonantScopes = map[string]Literal{
		"h": scope("VDom"), "hl": scope("VSub"), "hr": scope("VIIDom"),
		"hw": scope("VIISub"), "hm": scope("Form"), "hn": scope("OAdj"),
	}
	modularScopes = map[string]Literal{
		"a": scope("Form"), "e": scope("MCS"), "i": scope("Under ADJ"), "o": scope("Over ADJ"),
	}
)

func vowelScope(v string) (Node, error) {
	if v == "" {
		l := vowelScopes["a"]
		l.Ignorable = true
		return l, nil
	}
	s, ok := vowelScopes[v]
	if !ok {
		return nil, unknown("scope", v)
	}
	return s, nil
}

// parseAffixual decodes Vx Cs [Vs].
func parseAffixual(w *Word) (Node, error) {
	g := w.Groups
	a, err := ParseAffix(g[0], g[1], false)
	if err != nil {
		return nil, err
	}
	vs := ""
	if len(g) > 2 {
		vs = g[2]
	}
	sc, err := vowelScope(vs)
	if err != nil {
		return nil, err
	}
	return &Gloss{Slots: []Node{a.Gloss(), sc}}, nil
}

// parseMultipleAffix decodes [ë] Cs Vx Cz (Vx Cs)+ [Vz].
func parseMultipleAffix(w *Word) (Node, error) {
	g := trimEpenthetic(w.Groups)
	if len(g) < 5 {
		return nil, structural("multiple affix adjunct", "too few groups")
	}
	first, err := ParseAffix(g[1], g[0], false)
	if err != nil {
		return nil, err
	}
	cz, ok := consonantScopes[g[2]]
	if !ok {
		return nil, unknown("Cz", g[2])
	}
	slots := []Node{first.Gloss(), cz}

	rest := g[3:]
	vz := ""
	if len(rest)%2 == 1 {
		vz = rest[len(rest)-1]
		rest = rest[:len(rest)-1]
	}
	for k := 0; k < len(rest); k += 2 {
		a, err := ParseAffix(rest[k], rest[k+1], false)
		if err != nil {
			return nil, err
		}
		slots = append(slots, a.Gloss())
	}
	sc, err := vowelScope(vz)
	if err != nil {
		return nil, err
	}
	return &Gloss{Slots: append(slots, sc)}, nil
}

const maxModularPairs = 3

// parseModular decodes [w|y] (Vn Cn){0,3} V. nextVerbal selects mood over
// case-scope in each pair.
func parseModular(w *Word, nextVerbal bool) (Node, error) {
	g := w.Groups
	var slots []Node
	switch g[0] {
	case "w":
		slots = append(slots, scope("Parent"))
		g = g[1:]
	case "y":
		slots = append(slots, scope("Concat"))
		g = g[1:]
	}
	if len(g)%2 == 0 {
		return nil, structural("modular adjunct", "missing final vowel")
	}
	if len(g)/2 > maxModularPairs {
		return nil, structural("modular adjunct", "more than %d Vn Cn pairs", maxModularPairs)
	}
	for k := 0; k+1 < len(g); k += 2 {
		pair, err := parseVnCn(g[k], g[k+1], nextVerbal)
		if err != nil {
			return nil, err
		}
		slots = append(slots, ForceDefaults{Node: pair, When: true})
	}

	final := g[len(g)-1]
	if w.Stress == StressUltimate {
		sc, ok := modularScopes[final]
		if !ok {
			return nil, unknown("Vh", final)
		}
		return &Gloss{Slots: append(slots, sc)}, nil
	}
	vf, ok := lookupVowel(final)
	if !ok {
		return nil, unknown("aspect", final)
	}
	return &Gloss{Slots: append(slots, Aspects.At((vf.Series-1)*9+vf.Form-1))}, nil
}
