package ithkuil

// Decorate returns a copy of n with root and affix placeholders filled from
// res. The input tree is not modified. Values absent from res keep their
// bold consonant form.
func Decorate(n Node, res Resources) Node {
	if res == nil || n == nil {
		return n
	}
	switch v := n.(type) {
	case *Gloss:
		return &Gloss{Slots: decorateAll(v.Slots, res), Stress: Decorate(v.Stress, res)}
	case Slot:
		return Slot(decorateAll(v, res))
	case Chain:
		return Chain(decorateAll(v, res))
	case Sequence:
		return Sequence(decorateAll(v, res))
	case Parenthesized:
		return Parenthesized{Node: Decorate(v.Node, res)}
	case ForceDefaults:
		return ForceDefaults{Node: Decorate(v.Node, res), When: v.When}
	case Fallback:
		return Fallback{Node: Decorate(v.Node, res), Literal: v.Literal}
	case Underline:
		return Underline{Node: Decorate(v.Node, res)}
	case RootRef:
		if entry, ok := res.Root(v.Cr); ok {
			v.Description, _ = entry.Describe(stemIndex(v.Stem))
		}
		return v
	case StemRef:
		if entry, ok := res.Root(v.Cr); ok {
			if _, specific := entry.Describe(stemIndex(v.Stem)); specific {
				return Underline{Node: ForceDefaults{Node: v.Stem, When: true}}
			}
		}
		return v
	case AffixRef:
		if v.Degree == 0 {
			return v
		}
		if entry, ok := res.Affix(v.Cs); ok {
			v.Abbreviation = entry.Abbreviation
			v.Description = entry.Degree(v.Degree)
		}
		return v
	}
	return n
}

func decorateAll(nodes []Node, res Resources) []Node {
	out := make([]Node, len(nodes))
	for i, n := range nodes {
		out[i] = Decorate(n, res)
	}
	return out
}
