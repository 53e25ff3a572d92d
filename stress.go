package ithkuil

import "strings"

// Stress is the placement of the stressed syllable of a word.
type Stress int

const (
	StressPenultimate Stress = iota
	StressUltimate
	StressAntepenultimate
	StressMonosyllabic
	// The remaining values reject the word.
	StressMarkedDefault
	StressDoubleMarked
	StressInvalidPlace
)

var stressNames = map[Stress]string{
	StressPenultimate:     "penultimate",
	StressUltimate:        "ultimate",
	StressAntepenultimate: "antepenultimate",
	StressMonosyllabic:    "monosyllabic",
	StressMarkedDefault:   "marked default",
	StressDoubleMarked:    "double-marked",
	StressInvalidPlace:    "invalid place",
}

func (s Stress) String() string {
	return stressNames[s]
}

// Valid reports whether s is one of the four placements a word may carry.
func (s Stress) Valid() bool {
	return s <= StressMonosyllabic
}

// verbal reports whether the placement selects Vk over Vc in slot IX.
func (s Stress) verbal() bool {
	return s == StressUltimate || s == StressMonosyllabic
}

// diphthongs are the two-letter vowel groups that form a single nucleus.
var diphthongs = map[string]bool{
	"ai": true, "ei": true, "ëi": true, "oi": true, "ui": true,
	"au": true, "eu": true, "ëu": true, "ou": true, "iu": true,
}

// nuclei returns, for every syllable nucleus of groups in order, whether it
// carries a stress mark.
func nuclei(groups []string) []bool {
	var marks []bool
	for _, g := range groups {
		if !isVowelGroup(g) {
			continue
		}
		for _, part := range strings.Split(g, "'") {
			runes := []rune(part)
			if len(runes) == 2 && diphthongs[ClearStress(part)] {
				marks = append(marks, isStressed(runes[0]) || isStressed(runes[1]))
				continue
			}
			for _, r := range runes {
				marks = append(marks, isStressed(r))
			}
		}
	}
	return marks
}

// AnalyzeStress classifies the stress placement of a (stress-marked) group
// sequence.
func AnalyzeStress(groups []string) Stress {
	marks := nuclei(groups)

	marked, position := 0, -1
	for i := len(marks) - 1; i >= 0; i-- {
		if !marks[i] {
			continue
		}
		marked++
		if position < 0 {
			position = len(marks) - 1 - i
		}
	}
	if marked > 1 {
		return StressDoubleMarked
	}
	if len(marks) == 1 {
		if marked == 1 {
			return StressMarkedDefault
		}
		return StressMonosyllabic
	}

	switch position {
	case -1:
		return StressPenultimate
	case 0:
		return StressUltimate
	case 1:
		return StressMarkedDefault
	case 2:
		return StressAntepenultimate
	default:
		return StressInvalidPlace
	}
}
