package ithkuil

import (
	"regexp"
	"strings"
)

// Ca is the decoded Ca cluster of slot VI.
type Ca struct {
	Configuration Category
	Extension     Category
	Affiliation   Category
	Perspective   Category
	Essence       Category
}

// DefaultCa is UPX.DEL.CSL.M.NRM.
var DefaultCa = Ca{
	Configuration: Configurations.At(0),
	Extension:     Extensions.At(0),
	Affiliation:   Affiliations.At(0),
	Perspective:   Perspectives.At(0),
	Essence:       Essences.At(0),
}

// Slot returns the Ca values in cluster order.
func (c Ca) Slot() Slot {
	return Slot{c.Configuration, c.Extension, c.Affiliation, c.Perspective, c.Essence}
}

// defaultCaText spells out DefaultCa where an all-default Ca may not vanish.
var defaultCaText = Literal{
	Regular: DefaultCa.Slot().Render(Options{ShowDefaults: true}),
	Full:    DefaultCa.Slot().Render(Options{Precision: Full, ShowDefaults: true}),
}

// soundChanges undoes the assimilations a Ca cluster undergoes in writing.
// Order matters: the two-letter rewrites of ň/n must run before the
// single-letter ones.
var soundChanges = []struct{ from, to string }{
	{"ňš", "řř"},
	{"ňs", "řr"},
	{"nš", "rř"},
	{"ns", "rr"},
	{"nd", "çy"},
	{"ng", "kg"},
	{"mb", "pb"},
	{"pļ", "ll"},
	{"nk", "kk"},
	{"nt", "tt"},
	{"mp", "pp"},
}

// caPieces splits a cluster into configuration, extension, affiliation and
// perspective+essence. Each piece's letters overlap the next, so the
// alternation order within each group is significant.
var caPieces = regexp.MustCompile(`^(ks|ps|ţs|fs|kš|pš|s|t|k|p|ţ|f|ç|z|ž|ẓ|c|š|č)?(gz|bz|t|d|k|g|p|b)?(nļ|rļ|l|r|ř|ň)?(tļ|lw|ly|l|r|ř|w|y|m|h|n|ç|v|j)?$`)

type caForms struct {
	config, ext, affil, persp string
}

// gatherCaValues decomposes a (sound-change-reversed) cluster into its four pieces.
func gatherCaValues(cluster string) (caForms, bool) {
	m := caPieces.FindStringSubmatch(cluster)
	if m == nil {
		return caForms{}, false
	}
	f := caForms{config: m[1], ext: m[2], affil: m[3], persp: m[4]}
	if f.config == "" && f.ext == "" {
		if _, ok := standalonePersp[f.affil+f.persp]; ok {
			f.persp = f.affil + f.persp
			f.affil = ""
		}
	}
	return f, true
}

var configForms = map[string]int{
	"": 0, "s": 1,
	"t": 2, "k": 3, "p": 4, "ţ": 5, "f": 6, "ç": 7, "z": 8, "ž": 9, "ẓ": 10,
	"c": 11, "ks": 12, "ps": 13, "ţs": 14, "fs": 15, "š": 16, "č": 17, "kš": 18, "pš": 19,
}

var (
	extensionBare       = map[string]int{"": 0, "d": 1, "g": 2, "b": 3, "gz": 4, "bz": 5}
	extensionWithConfig = map[string]int{"": 0, "t": 1, "k": 2, "p": 3, "g": 4, "b": 5}
)

var affiliationForms = map[string]int{"": 0, "l": 1, "nļ": 1, "r": 2, "rļ": 2, "ř": 3, "ň": 3}

type perspEssence struct{ persp, essence int }

var (
	standalonePersp = map[string]perspEssence{
		"l": {0, 0}, "r": {1, 0}, "v": {2, 0}, "j": {3, 0},
		"tļ": {0, 1}, "ř": {1, 1}, "lw": {2, 1}, "ly": {3, 1},
	}
	combinedPersp = map[string]perspEssence{
		"": {0, 0}, "r": {1, 0}, "w": {2, 0}, "y": {3, 0},
		"l": {0, 1}, "ř": {1, 1}, "m": {2, 1}, "h": {2, 1}, "n": {3, 1}, "ç": {3, 1},
	}
)

// ParseCa decodes an ungeminated Ca cluster.
func ParseCa(cluster string) (Ca, error) {
	if cluster == "" {
		return Ca{}, unknown("Ca", cluster)
	}
	normalized := cluster
	for _, sc := range soundChanges {
		normalized = strings.ReplaceAll(normalized, sc.from, sc.to)
	}
	f, ok := gatherCaValues(normalized)
	if !ok {
		return Ca{}, unknown("Ca", cluster)
	}

	config := configForms[f.config]
	extTable := extensionWithConfig
	if f.config == "" {
		extTable = extensionBare
	}
	ext, ok := extTable[f.ext]
	if !ok {
		return Ca{}, unknown("Ca", cluster)
	}
	affil := affiliationForms[f.affil]

	perspTable := combinedPersp
	if f.config == "" && f.ext == "" && f.affil == "" {
		perspTable = standalonePersp
	}
	pe, ok := perspTable[f.persp]
	if !ok {
		return Ca{}, unknown("Ca", cluster)
	}

	return Ca{
		Configuration: Configurations.At(config),
		Extension:     Extensions.At(ext),
		Affiliation:   Affiliations.At(affil),
		Perspective:   Perspectives.At(pe.persp),
		Essence:       Essences.At(pe.essence),
	}, nil
}

// geminatePairs are the irregular geminates of stop clusters.
var geminatePairs = []struct{ geminate, plain string }{
	{"bḑ", "pt"}, {"bg", "pk"}, {"gḑ", "kt"}, {"gb", "kp"}, {"ḑg", "tk"}, {"ḑb", "tp"},
}

// isGeminate reports whether a cluster carries gemination.
func isGeminate(cluster string) bool {
	_, ok := degeminate(cluster)
	return ok
}

// degeminate removes the gemination of a cluster.
func degeminate(cluster string) (string, bool) {
	for _, p := range geminatePairs {
		if strings.Contains(cluster, p.geminate) {
			return strings.Replace(cluster, p.geminate, p.plain, 1), true
		}
	}
	runes := []rune(cluster)
	for i := 1; i < len(runes); i++ {
		if runes[i] == runes[i-1] {
			return string(runes[:i]) + string(runes[i+1:]), true
		}
	}
	return cluster, false
}

// ParseGeminateCa decodes a Ca cluster that must be geminated because it
// follows slot V affixes.
func ParseGeminateCa(cluster string) (Ca, error) {
	plain, ok := degeminate(cluster)
	if !ok {
		return Ca{}, structural("Ca", "expected a geminated Ca, found %s", cluster)
	}
	return ParseCa(plain)
}
