package ithkuil

// WordType is the structural type a word is classified as.
type WordType int

const (
	TypeFormative WordType = iota
	TypeReferential
	TypeCombinationReferential
	TypeModularAdjunct
	TypeAffixualAdjunct
	TypeMultipleAffixAdjunct
	TypeBiasAdjunct
	TypeRegisterAdjunct
	TypeMoodCaseScopeAdjunct
)

var wordTypeNames = [...]string{
	TypeFormative:              "formative",
	TypeReferential:            "referential",
	TypeCombinationReferential: "combination referential",
	TypeModularAdjunct:         "modular adjunct",
	TypeAffixualAdjunct:        "affixual adjunct",
	TypeMultipleAffixAdjunct:   "multiple affix adjunct",
	TypeBiasAdjunct:            "bias adjunct",
	TypeRegisterAdjunct:        "register adjunct",
	TypeMoodCaseScopeAdjunct:   "mood/case-scope adjunct",
}

func (t WordType) String() string {
	if t < 0 || int(t) >= len(wordTypeNames) {
		return "unknown"
	}
	return wordTypeNames[t]
}

// Outcome is the result of glossing one word: Parsed, Failed or Foreign.
type Outcome interface {
	Render(o Options) string
	outcome()
}

// Parsed holds a successfully decoded word.
type Parsed struct {
	// Type is the word type the word was classified as.
	Type WordType
	// Gloss is the decoded tree, decorated when a dictionary was supplied.
	Gloss Node
}

// Failed holds a word that could not be decoded.
type Failed struct {
	// Message is the user-facing reason.
	Message string
	// Err is the underlying error, matchable with errors.Is.
	Err error
	// Trace is the technical detail shown only at full precision.
	Trace string
}

// Foreign holds a word inside a quoted or terminated span, left undecoded.
type Foreign struct {
	Text string
}

func (p Parsed) Render(o Options) string { return Render(p.Gloss, o) }

func (f Failed) Render(o Options) string {
	msg := "Error: " + f.Message
	if o.Precision == Full && f.Trace != "" {
		msg += "\n" + f.Trace
	}
	return msg
}

func (f Foreign) Render(Options) string { return "«" + f.Text + "»" }

func (Parsed) outcome()  {}
func (Failed) outcome()  {}
func (Foreign) outcome() {}

// failure converts an error into a Failed outcome.
func failure(err error) Failed {
	return Failed{Message: err.Error(), Err: err}
}

// TokenGloss is the outcome for one token of a sentence.
type TokenGloss struct {
	// Token is the raw token as it appeared in the input.
	Token string
	// Word is the formatted word, nil when formatting failed.
	Word *Word
	// Outcome is the decoded result.
	Outcome Outcome
}
