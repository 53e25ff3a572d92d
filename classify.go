package ithkuil

// Classify returns the word type of a single (unhyphenated) group sequence.
// The checks run in a fixed order and the first match wins; anything left
// over is a formative.
func Classify(groups []string) WordType {
	switch {
	case len(groups) == 0:
		return TypeFormative
	case len(groups) == 1 && isConsonantGroup(groups[0]):
		return TypeBiasAdjunct
	case len(groups) == 2 && groups[0] == "h" && isVowelGroup(groups[1]):
		return TypeRegisterAdjunct
	case len(groups) == 2 && groups[0] == "hr" && isVowelGroup(groups[1]):
		return TypeMoodCaseScopeAdjunct
	case isSuppletive(groups):
		return TypeReferential
	case isModular(groups):
		return TypeModularAdjunct
	case isCombinationReferential(groups):
		return TypeCombinationReferential
	case isReferential(groups):
		return TypeReferential
	case (len(groups) == 2 || len(groups) == 3) && isVowelGroup(groups[0]):
		return TypeAffixualAdjunct
	case isMultipleAffix(groups):
		return TypeMultipleAffixAdjunct
	}
	return TypeFormative
}

func isSuppletive(groups []string) bool {
	if len(groups) != 2 || !isVowelGroup(groups[1]) {
		return false
	}
	_, ok := suppletiveForms[groups[0]]
	return ok
}

func isModular(groups []string) bool {
	g := groups
	if g[0] == "w" || g[0] == "y" {
		g = g[1:]
	}
	if len(g) == 0 || !isVowelGroup(g[0]) {
		return false
	}
	for i := 1; i < len(g); i += 2 {
		if !isCn(g[i]) {
			return false
		}
	}
	return true
}

func isReferentCluster(g string) bool {
	if !isConsonantGroup(g) {
		return false
	}
	_, err := parseReferents(g)
	return err == nil
}

func isCombinationReferential(groups []string) bool {
	g := trimEpenthetic(groups)
	if len(g) < 3 || !isReferentCluster(g[0]) || !isVowelGroup(g[1]) {
		return false
	}
	_, ok := combinationSpecs[g[2]]
	return ok
}

func isReferential(groups []string) bool {
	g := trimEpenthetic(groups)
	if len(g) < 2 || !isReferentCluster(g[0]) || !isVowelGroup(g[1]) {
		return false
	}
	switch len(g) {
	case 2:
		return true
	case 3, 4:
		if len(g) == 4 && g[3] != "ë" {
			return false
		}
		return hasGlottalStop(g[1]) && isReferentCluster(g[2])
	}
	return false
}

func isMultipleAffix(groups []string) bool {
	g := trimEpenthetic(groups)
	if len(g) < 5 || !isConsonantGroup(g[0]) || !isVowelGroup(g[1]) || !isVowelGroup(g[3]) {
		return false
	}
	_, ok := consonantScopes[g[2]]
	return ok
}
