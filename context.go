package ithkuil

import (
	"fmt"
	"regexp"
	"runtime/debug"
)

// lookaheadLimit bounds the scan for the next formative.
const lookaheadLimit = 16

var reToken = regexp.MustCompile(`\S+`)

// Tokenize splits text into whitespace-delimited tokens.
func Tokenize(text string) []string {
	return reToken.FindAllString(text, -1)
}

// GlossContext glosses a sentence token by token. Words inside a quoted or
// terminated span after a carrier are returned as Foreign; every other word
// is decoded with a verbal hint taken from the next formative. A failure
// affects only its own token. res may be nil.
func GlossContext(tokens []string, res Resources) []TokenGloss {
	words := make([]*Word, len(tokens))
	errs := make([]error, len(tokens))
	punct := make([]marks, len(tokens))
	for i, tok := range tokens {
		words[i], errs[i] = Format(tok)
		punct[i] = marksOf(tok)
	}

	out := make([]TokenGloss, len(tokens))
	var inQuote, justSawCarrier, inTerminated bool
	for i, tok := range tokens {
		w, m := words[i], punct[i]
		out[i] = TokenGloss{Token: tok, Word: w}

		switch {
		case inQuote:
			out[i].Outcome = Foreign{Text: tok}
			inQuote = !m.closesQuote()
			continue
		case inTerminated:
			if w != nil && w.Text() == terminatorForm {
				inTerminated = false
				break
			}
			out[i].Outcome = Foreign{Text: tok}
			continue
		case justSawCarrier:
			justSawCarrier = false
			if m.lowTone() {
				inTerminated = true
				out[i].Outcome = Foreign{Text: tok}
				continue
			}
			if m.opensQuote() {
				out[i].Outcome = Foreign{Text: tok}
				inQuote = !m.closesQuote()
				continue
			}
		}

		if errs[i] != nil {
			out[i].Outcome = failure(errs[i])
			continue
		}
		out[i].Outcome = safeParse(w, nextVerbal(words, punct, i), res)
		if isCarrier(w) {
			if m.introducesQuote() {
				inQuote = true
			} else {
				justSawCarrier = true
			}
		}
	}
	return out
}

// safeParse decodes and decorates w, turning a panic into a failure.
func safeParse(w *Word, verbal bool, res Resources) (o Outcome) {
	defer func() {
		if r := recover(); r != nil {
			o = Failed{
				Message: "internal error",
				Err:     fmt.Errorf("panic: %v", r),
				Trace:   fmt.Sprintf("%v\n%s", r, debug.Stack()),
			}
		}
	}()
	t, n, err := parseWord(w, verbal)
	if err != nil {
		return failure(err)
	}
	return Parsed{Type: t, Gloss: Decorate(n, res)}
}

// nextVerbal reports whether the next formative after token i, within the
// lookahead and the current sentence, is verbal.
func nextVerbal(words []*Word, punct []marks, i int) bool {
	if punct[i].endsSentence() {
		return false
	}
	for j := i + 1; j < len(words) && j <= i+lookaheadLimit; j++ {
		if w := words[j]; w != nil {
			if w.IsChain() {
				return w.LinkStress[len(w.LinkStress)-1].verbal()
			}
			if Classify(w.Groups) == TypeFormative {
				return w.Stress.verbal()
			}
		}
		if punct[j].endsSentence() {
			return false
		}
	}
	return false
}

// isCarrier reports whether w introduces a quoted span: the hl suppletive
// adjunct or a formative with root s.
func isCarrier(w *Word) bool {
	if w.IsChain() {
		links := w.Links()
		w = links[len(links)-1]
	}
	if len(w.Groups) == 2 && w.Groups[0] == carrierForm {
		return true
	}
	return Classify(w.Groups) == TypeFormative && formativeRoot(w.Groups) == "s"
}
