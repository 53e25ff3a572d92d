package ithkuil

// Affix is a decoded (Vx, Cs) pair.
type Affix interface {
	Gloss() Node
}

// CsAffix is an ordinary lexical affix.
type CsAffix struct {
	Cs     string
	Degree int // 0..9
	Type   int // 1..3
}

func (a CsAffix) Gloss() Node {
	return AffixRef{Cs: a.Cs, Degree: a.Degree, Type: a.Type}
}

// CaseAffixKind distinguishes the three families of case affixes.
type CaseAffixKind int

const (
	CaseAccessor CaseAffixKind = iota
	InverseAccessor
	CaseStacking
)

// CaseAffix attaches a case to the formative through an affix.
type CaseAffix struct {
	Kind CaseAffixKind
	Type int
	Case Category
}

var caseAffixLabels = map[CaseAffixKind]Literal{
	CaseAccessor:    {Regular: "acc", Full: "case accessor"},
	InverseAccessor: {Regular: "ia", Full: "inverse accessor"},
	CaseStacking:    {Regular: "case", Full: "case stacking"},
}

func (a CaseAffix) Gloss() Node {
	label := caseAffixLabels[a.Kind]
	if a.Kind != CaseStacking {
		sub := "₁"
		if a.Type == 2 {
			sub = "₂"
		}
		label.Regular += sub
		label.Full += sub
	}
	return Parenthesized{Slot{label, ForceDefaults{Node: a.Case, When: true}}}
}

// CaStacker is an affix carrying a whole nested Ca cluster.
type CaStacker struct {
	Ca Ca
}

func (a CaStacker) Gloss() Node {
	return Parenthesized{Fallback{Node: a.Ca.Slot(), Literal: defaultCaText}}
}

// ReferentialShortcut is a lone series 3 or 4 affix read as a case plus a
// personal referent.
type ReferentialShortcut struct {
	Case      Category
	Referents []Referent
}

func (a ReferentialShortcut) Gloss() Node {
	return Parenthesized{Slot{ForceDefaults{Node: a.Case, When: true}, referentNode(a.Referents)}}
}

// IvlAffix carries an illocution and validation through the nļ affix.
type IvlAffix struct {
	Vk Slot
}

func (a IvlAffix) Gloss() Node {
	return Parenthesized{ForceDefaults{Node: a.Vk, When: true}}
}

const caStackingVowel = "üö"

type caseAffixForm struct {
	kind    CaseAffixKind
	typ     int
	glottal bool
}

var caseAffixForms = map[string]caseAffixForm{
	"sw": {CaseAccessor, 1, false},
	"zw": {CaseAccessor, 1, true},
	"čw": {CaseAccessor, 2, false},
	"šw": {CaseAccessor, 2, true},
	"sy": {InverseAccessor, 1, false},
	"zy": {InverseAccessor, 1, true},
	"čy": {InverseAccessor, 2, false},
	"šy": {InverseAccessor, 2, true},
	"lw": {CaseStacking, 0, false},
	"ly": {CaseStacking, 0, true},
}

const ivlAffixForm = "nļ"

// ParseAffix decodes a Vx vowel and Cs consonant form. alone reports
// whether the affix is the only one in its slot, which lets a series 3 or
// 4 vowel introduce a referential shortcut.
func ParseAffix(vx, cs string, alone bool) (Affix, error) {
	vx, _ = unglottalize(vx)

	if vx == caStackingVowel {
		ca, err := ParseCa(cs)
		if err != nil {
			return nil, err
		}
		return CaStacker{Ca: ca}, nil
	}

	if f, ok := caseAffixForms[cs]; ok {
		c, err := caseFromVowel(vx, f.glottal)
		if err != nil {
			return nil, err
		}
		return CaseAffix{Kind: f.kind, Type: f.typ, Case: c}, nil
	}

	if cs == ivlAffixForm {
		vk, err := parseVk(vx)
		if err != nil {
			return nil, err
		}
		return IvlAffix{Vk: vk}, nil
	}

	if t, ok := degreeZero[vx]; ok {
		return CsAffix{Cs: cs, Degree: 0, Type: t}, nil
	}
	vf, ok := lookupVowel(vx)
	if !ok {
		return nil, unknown("Vx", vx)
	}
	if alone && vf.Series >= 3 {
		if refs, err := parseReferents(cs); err == nil {
			return ReferentialShortcut{Case: Cases.At((vf.Series-3)*9 + vf.Form - 1), Referents: refs}, nil
		}
	}
	if vf.Series > 3 {
		return nil, unknown("Vx", vx)
	}
	return CsAffix{Cs: cs, Degree: vf.Form, Type: vf.Series}, nil
}
