// Package ithkuil decodes New Ithkuil word-forms into grammatical glosses.
//
// A token is first formatted into a Word (normalized letters, consonant and
// vowel groups, stress). The word is classified into one of nine word
// types and decoded into a tree of Nodes, which is optionally decorated
// with root and affix descriptions from a Dictionary and rendered at one of
// three precisions. Decoding never consults the dictionary, so a word
// missing from it still parses.
package ithkuil

import (
	"context"
	"strings"
)

// Glosser glosses words and sentences against the current dictionary.
type Glosser struct {
	store *DictionaryStore
}

// New loads the affix and root tables and returns a ready-to-use Glosser.
// Either path may be empty.
func New(ctx context.Context, affixPath, rootPath string) (*Glosser, error) {
	d, err := LoadDictionary(ctx, affixPath, rootPath)
	if err != nil {
		return nil, err
	}
	return NewGlosser(NewDictionaryStore(d)), nil
}

// NewGlosser returns a Glosser reading from store. A nil store glosses
// without a dictionary.
func NewGlosser(store *DictionaryStore) *Glosser {
	if store == nil {
		store = NewDictionaryStore(nil)
	}
	return &Glosser{store: store}
}

// Store returns the dictionary store, for reloading.
func (g *Glosser) Store() *DictionaryStore {
	return g.store
}

// Word glosses a single token with no sentence context.
func (g *Glosser) Word(token string) TokenGloss {
	return GlossContext([]string{token}, g.store.Load())[0]
}

// Sentence glosses every token of text in context. The whole sentence sees
// one dictionary snapshot.
func (g *Glosser) Sentence(text string) []TokenGloss {
	return GlossContext(Tokenize(text), g.store.Load())
}

// ParseWord decodes a single formatted word. nextVerbal reports whether
// the next formative of the sentence is verbal; it only affects modular
// adjuncts and concatenated formatives.
func ParseWord(w *Word, nextVerbal bool) Outcome {
	t, n, err := parseWord(w, nextVerbal)
	if err != nil {
		return failure(err)
	}
	return Parsed{Type: t, Gloss: n}
}

// ParseConcatenation decodes a hyphen-joined chain of formatives.
func ParseConcatenation(w *Word) Outcome {
	chain, err := parseConcatenation(w)
	if err != nil {
		return failure(err)
	}
	return Parsed{Type: TypeFormative, Gloss: chain}
}

var sentenceStart = Literal{Regular: "[sentence:] ", Full: "[sentence start] "}

func parseWord(w *Word, nextVerbal bool) (WordType, Node, error) {
	t, n, err := dispatch(w, nextVerbal)
	if err != nil {
		return t, nil, err
	}
	if w.SentenceStart {
		n = Sequence{sentenceStart, n}
	}
	return t, n, nil
}

func dispatch(w *Word, nextVerbal bool) (WordType, Node, error) {
	if w.IsChain() {
		chain, err := parseConcatenation(w)
		if err != nil {
			return TypeFormative, nil, err
		}
		return TypeFormative, chain, nil
	}

	t := Classify(w.Groups)
	var (
		n   Node
		err error
	)
	switch t {
	case TypeBiasAdjunct:
		n, err = parseBias(w)
	case TypeRegisterAdjunct:
		n, err = parseRegister(w)
	case TypeMoodCaseScopeAdjunct:
		n, err = parseMoodCaseScope(w)
	case TypeReferential:
		if isSuppletive(w.Groups) {
			n, err = parseSuppletive(w)
		} else {
			n, err = parseReferential(w)
		}
	case TypeCombinationReferential:
		n, err = parseCombinationReferential(w)
	case TypeModularAdjunct:
		n, err = parseModular(w, nextVerbal)
	case TypeAffixualAdjunct:
		n, err = parseAffixual(w)
	case TypeMultipleAffixAdjunct:
		n, err = parseMultipleAffix(w)
	default:
		var g *Gloss
		g, err = parseFormative(w.Groups, w.Stress, formativeOptions{nextVerbal: nextVerbal})
		if err == nil {
			n = g
		}
	}
	return t, n, err
}

// SentenceFailure returns the first failed token of glosses, or nil when
// every token parsed or was left foreign.
func SentenceFailure(glosses []TokenGloss) *SentenceError {
	for _, tg := range glosses {
		if f, ok := tg.Outcome.(Failed); ok {
			return &SentenceError{Token: tg.Token, Failure: f}
		}
	}
	return nil
}

// RenderSentence renders glosses as one segment. A failure anywhere fails
// the segment, which then renders as its first failing token alone.
func RenderSentence(glosses []TokenGloss, o Options) string {
	if err := SentenceFailure(glosses); err != nil {
		return err.Token + ": " + err.Failure.Render(o)
	}
	return RenderContext(glosses, o)
}

// RenderContext renders glosses token by token, one "token: gloss" line
// each, failures included.
func RenderContext(glosses []TokenGloss, o Options) string {
	var b strings.Builder
	for i, tg := range glosses {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(tg.Token)
		b.WriteString(": ")
		b.WriteString(tg.Outcome.Render(o))
	}
	return b.String()
}
