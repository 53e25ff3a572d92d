package ithkuil

import (
	"fmt"
	"strings"
)

// Precision selects how much of a gloss is spelled out.
type Precision int

const (
	Regular Precision = iota
	Short
	Full
)

func (p Precision) String() string {
	switch p {
	case Short:
		return "short"
	case Full:
		return "full"
	default:
		return "regular"
	}
}

// ParsePrecision parses "regular", "short" or "full".
func ParsePrecision(s string) (Precision, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "regular", "":
		return Regular, nil
	case "short":
		return Short, nil
	case "full":
		return Full, nil
	}
	return Regular, fmt.Errorf("unknown precision %q", s)
}

// Options control rendering.
type Options struct {
	Precision    Precision
	ShowDefaults bool
}

const (
	categorySeparator = "."
	slotSeparator     = "-"
	stressSeparator   = "\\"
	chainSeparator    = "—"
)

// Node is a renderable piece of a gloss tree. Rendering is pure: the same
// node renders the same text for the same options.
type Node interface {
	Render(o Options) string
}

// Render renders n with o. A nil node renders empty.
func Render(n Node, o Options) string {
	if n == nil {
		return ""
	}
	return n.Render(o)
}

// Slot is a group of values rendered together, joined by ".".
type Slot []Node

func (s Slot) Render(o Options) string {
	return joinNodes(s, categorySeparator, o)
}

// Gloss is a parsed word: slots joined by "-", plus an optional trailing
// stress-marked value appended after "\".
type Gloss struct {
	Slots  []Node
	Stress Node
}

func (g *Gloss) Render(o Options) string {
	out := joinNodes(g.Slots, slotSeparator, o)
	if stress := Render(g.Stress, o); stress != "" {
		out += stressSeparator + stress
	}
	return out
}

// Chain is a concatenation chain, its links joined by "—".
type Chain []Node

func (c Chain) Render(o Options) string {
	parts := make([]string, len(c))
	for i, n := range c {
		parts[i] = Render(n, o)
	}
	return strings.Join(parts, chainSeparator)
}

// Sequence renders its nodes back to back.
type Sequence []Node

func (s Sequence) Render(o Options) string {
	return joinNodes(s, "", o)
}

func joinNodes(nodes []Node, sep string, o Options) string {
	parts := make([]string, 0, len(nodes))
	for _, n := range nodes {
		if s := Render(n, o); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, sep)
}

// Literal carries fixed text for each precision. An Ignorable literal is
// hidden unless defaults are shown.
type Literal struct {
	Regular   string
	Short     string
	Full      string
	Ignorable bool
}

func (l Literal) Render(o Options) string {
	if l.Ignorable && !o.ShowDefaults {
		return ""
	}
	switch {
	case o.Precision == Short && l.Short != "":
		return l.Short
	case o.Precision == Full && l.Full != "":
		return l.Full
	}
	return l.Regular
}

// ForceDefaults renders its node with defaults shown when When is set.
type ForceDefaults struct {
	Node Node
	When bool
}

func (f ForceDefaults) Render(o Options) string {
	if f.When {
		o.ShowDefaults = true
	}
	return Render(f.Node, o)
}

// Fallback renders Literal when its node renders empty.
type Fallback struct {
	Node    Node
	Literal Literal
}

func (f Fallback) Render(o Options) string {
	if s := Render(f.Node, o); s != "" {
		return s
	}
	return f.Literal.Render(o)
}

// Underline marks a value that also selected a dictionary description.
type Underline struct {
	Node Node
}

func (u Underline) Render(o Options) string {
	s := Render(u.Node, o)
	if s == "" {
		return ""
	}
	return "__" + s + "__"
}

// Parenthesized wraps a nested value, such as a case affix, in brackets.
type Parenthesized struct {
	Node Node
}

func (p Parenthesized) Render(o Options) string {
	s := Render(p.Node, o)
	if s == "" {
		return ""
	}
	return "(" + s + ")"
}

// RootRef is a root slot. Until decorated with a description it renders
// its consonant form in bold.
type RootRef struct {
	Cr          string
	Stem        Category
	Description string
}

func (r RootRef) Render(o Options) string {
	if r.Description != "" {
		return quote(r.Description)
	}
	return "**" + r.Cr + "**"
}

// stemIndex maps a stem category to its column in RootEntry.Stems.
func stemIndex(stem Category) int {
	if stem.Code == "S0" {
		return 0
	}
	return stem.Ordinal + 1
}

// StemRef is the stem value of slot II. Decoration underlines it when the
// root has a description specific to that stem.
type StemRef struct {
	Stem Category
	Cr   string
}

func (s StemRef) Render(o Options) string {
	return s.Stem.Render(o)
}

// AffixRef is a Cs affix of a given degree and type.
type AffixRef struct {
	Cs           string
	Degree       int
	Type         int
	Abbreviation string
	Description  string
}

var subscripts = map[int]string{2: "₂", 3: "₃"}

func (a AffixRef) Render(o Options) string {
	var s string
	switch {
	case o.Precision == Short && a.Abbreviation != "":
		s = fmt.Sprintf("%s/%d", a.Abbreviation, a.Degree)
	case o.Precision != Short && a.Description != "":
		s = quote(a.Description)
	case a.Abbreviation != "":
		s = fmt.Sprintf("%s/%d", a.Abbreviation, a.Degree)
	default:
		s = fmt.Sprintf("**%s**/%d", a.Cs, a.Degree)
	}
	return s + subscripts[a.Type]
}

func quote(s string) string {
	return "\"" + s + "\""
}
