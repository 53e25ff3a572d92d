package ithkuil

import (
	"fmt"
	"strings"
)

const (
	sentenceFinal = ".!?"
	colonMarks    = ":："
	openQuotes    = "\"«“‘"
	closeQuotes   = "\"»”’"
	lowTone       = '_'
	punctuation   = ".,;:：!?\"«»“”‘’()[]{}…_"
)

// Word is a formatted token: its normalized groups with stress marks
// removed, the stress placement of each hyphen-joined link and the
// punctuation stripped from either end.
type Word struct {
	Raw           string
	Groups        []string
	Stress        Stress
	LinkStress    []Stress
	Prefix        string
	Postfix       string
	SentenceStart bool
}

// splitPunctuation separates leading and trailing punctuation from a token.
// A leading apostrophe is punctuation; inside the word it is a glottal stop.
func splitPunctuation(token string) (prefix, body, postfix string) {
	runes := []rune(strings.TrimSpace(token))
	start, end := 0, len(runes)
	for start < end && (strings.ContainsRune(punctuation, runes[start]) || runes[start] == '\'') {
		start++
	}
	for end > start && strings.ContainsRune(punctuation, runes[end-1]) {
		end--
	}
	return string(runes[:start]), string(runes[start:end]), string(runes[end:])
}

// Format validates and normalizes a raw token into a Word.
func Format(token string) (*Word, error) {
	prefix, raw, postfix := splitPunctuation(token)
	w := &Word{
		Raw:     token,
		Prefix:  prefix,
		Postfix: postfix,
	}
	body := DefaultForm(raw)
	if body == "" {
		return nil, &FormattingError{Token: token, Reason: "Empty word"}
	}
	for _, r := range body {
		switch {
		case r == '-' || isVowel(r) || isConsonant(r):
		case strings.ContainsRune(punctuation, r):
			return nil, &FormattingError{Token: token, Reason: fmt.Sprintf("Misplaced punctuation: %c", r)}
		default:
			return nil, &FormattingError{Token: token, Reason: fmt.Sprintf("Non-Ithkuil character: %c", r)}
		}
	}
	if strings.HasPrefix(body, "-") || strings.HasSuffix(body, "-") || strings.Contains(body, "--") {
		return nil, &FormattingError{Token: token, Reason: "Misplaced hyphen"}
	}

	body, w.SentenceStart = stripSentencePrefix(body)

	marked := SplitGroups(body)
	for _, link := range splitLinks(marked) {
		s := AnalyzeStress(link)
		if !s.Valid() {
			return nil, &FormattingError{Token: token, Reason: stressError(s)}
		}
		w.LinkStress = append(w.LinkStress, s)
	}
	w.Stress = w.LinkStress[len(w.LinkStress)-1]

	w.Groups = make([]string, len(marked))
	for i, g := range marked {
		w.Groups[i] = ClearStress(g)
	}
	return w, nil
}

func stressError(s Stress) string {
	switch s {
	case StressMarkedDefault:
		return "Marked default stress"
	case StressDoubleMarked:
		return "Double-marked stress"
	default:
		return "Unrecognized stress placement"
	}
}

// stripSentencePrefix removes the sentence-initial prefix: çë before a
// consonant, ç before w, or a doubled ç.
func stripSentencePrefix(body string) (string, bool) {
	plain := []rune(ClearStress(body))
	runes := []rune(body)
	if len(plain) < 3 || plain[0] != 'ç' || !strings.ContainsAny(string(plain[1:]), vowels) {
		return body, false
	}
	switch {
	case plain[1] == 'ç', plain[1] == 'w':
		return string(runes[1:]), true
	case plain[1] == 'ë' && isConsonant(plain[2]):
		return string(runes[2:]), true
	}
	return body, false
}

// splitLinks splits a group sequence at hyphen groups.
func splitLinks(groups []string) [][]string {
	var links [][]string
	var cur []string
	for _, g := range groups {
		if g == "-" {
			links = append(links, cur)
			cur = nil
			continue
		}
		cur = append(cur, g)
	}
	return append(links, cur)
}

// Text returns the normalized, stress-free form of the word.
func (w *Word) Text() string {
	return strings.Join(w.Groups, "")
}

// IsChain reports whether the word is a hyphen-joined concatenation chain.
func (w *Word) IsChain() bool {
	for _, g := range w.Groups {
		if g == "-" {
			return true
		}
	}
	return false
}

// Links returns the hyphen-separated sub-words of w, each with its own stress.
func (w *Word) Links() []*Word {
	groups := splitLinks(w.Groups)
	links := make([]*Word, len(groups))
	for i, g := range groups {
		links[i] = &Word{
			Raw:        strings.Join(g, ""),
			Groups:     g,
			Stress:     w.LinkStress[i],
			LinkStress: []Stress{w.LinkStress[i]},
		}
	}
	return links
}

// punctuation marks around a token that steer the context resolver.
type marks struct {
	prefix, postfix string
}

func marksOf(token string) marks {
	prefix, _, postfix := splitPunctuation(token)
	return marks{prefix: prefix, postfix: postfix}
}

func (m marks) endsSentence() bool {
	return strings.ContainsAny(m.postfix, sentenceFinal)
}

// opensQuote reports a quote opening before the word itself.
func (m marks) opensQuote() bool {
	return strings.ContainsAny(m.prefix, colonMarks+openQuotes)
}

// introducesQuote reports a quote opening after the word.
func (m marks) introducesQuote() bool {
	return strings.ContainsAny(m.postfix, colonMarks+openQuotes)
}

func (m marks) closesQuote() bool {
	return strings.ContainsAny(m.postfix, closeQuotes+sentenceFinal)
}

func (m marks) lowTone() bool {
	return strings.ContainsRune(m.prefix, lowTone)
}
