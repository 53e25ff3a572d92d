package ithkuil

// parseConcatenation decodes a hyphen-joined chain. Every link must be a
// formative; all but the last carry a concatenation marker and the last
// must not. One bad link fails the whole chain.
func parseConcatenation(w *Word) (Chain, error) {
	links := w.Links()
	head := links[len(links)-1]
	headVerbal := head.Stress.verbal()

	chain := make(Chain, 0, len(links))
	for i, l := range links {
		if t := Classify(l.Groups); t != TypeFormative {
			return nil, structural("concatenation", "%s is a %s, not a formative", l.Text(), t)
		}
		_, marked := ccForms[l.Groups[0]]
		last := i == len(links)-1
		switch {
		case last && marked:
			return nil, structural("concatenation", "the final formative %s carries a concatenation marker", l.Text())
		case !last && !marked:
			return nil, structural("concatenation", "formative %s lacks a concatenation marker", l.Text())
		}
		g, err := parseFormative(l.Groups, l.Stress, formativeOptions{inChain: !last, nextVerbal: headVerbal})
		if err != nil {
			return nil, err
		}
		chain = append(chain, g)
	}
	return chain, nil
}
