package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/cours-de-latin/ithkuil"
)

// GlossHandler serves the glossing endpoints.
type GlossHandler struct {
	glosser  *ithkuil.Glosser
	defaults ithkuil.Options
	maxBody  int64
}

// NewGlossHandler creates a GlossHandler rendering with defaults unless a
// request overrides them.
func NewGlossHandler(g *ithkuil.Glosser, defaults ithkuil.Options, maxBody int64) *GlossHandler {
	return &GlossHandler{glosser: g, defaults: defaults, maxBody: maxBody}
}

type tokenJSON struct {
	Token  string `json:"token"`
	Status string `json:"status"`
	Type   string `json:"type,omitempty"`
	Gloss  string `json:"gloss,omitempty"`
	Error  string `json:"error,omitempty"`
}

type glossWordResponse struct {
	Precision string    `json:"precision"`
	Result    tokenJSON `json:"result"`
}

type glossSentenceResponse struct {
	Precision string      `json:"precision"`
	Results   []tokenJSON `json:"results"`
	Text      string      `json:"text"`
	Error     string      `json:"error,omitempty"`
}

func toTokenJSON(tg ithkuil.TokenGloss, o ithkuil.Options) tokenJSON {
	out := tokenJSON{Token: tg.Token}
	switch v := tg.Outcome.(type) {
	case ithkuil.Parsed:
		out.Status = "parsed"
		out.Type = v.Type.String()
		out.Gloss = v.Render(o)
	case ithkuil.Failed:
		out.Status = "error"
		out.Error = v.Message
	case ithkuil.Foreign:
		out.Status = "foreign"
		out.Gloss = v.Render(o)
	}
	return out
}

// options applies precision and show_defaults overrides to the defaults.
func (h *GlossHandler) options(precision, showDefaults string) (ithkuil.Options, error) {
	o := h.defaults
	if precision != "" {
		p, err := ithkuil.ParsePrecision(precision)
		if err != nil {
			return o, err
		}
		o.Precision = p
	}
	if showDefaults != "" {
		b, err := strconv.ParseBool(showDefaults)
		if err != nil {
			return o, errors.New("show_defaults must be a boolean")
		}
		o.ShowDefaults = b
	}
	return o, nil
}

// Word handles GET /api/gloss?word=<token>[&precision=short][&show_defaults=true].
func (h *GlossHandler) Word(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	q := r.URL.Query()
	word := q.Get("word")
	if word == "" {
		writeError(w, http.StatusBadRequest, "missing 'word' query parameter")
		return
	}
	o, err := h.options(q.Get("precision"), q.Get("show_defaults"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res := toTokenJSON(h.glosser.Word(word), o)
	status := http.StatusOK
	if res.Status == "error" {
		status = http.StatusUnprocessableEntity
	}
	writeJSON(w, status, glossWordResponse{Precision: o.Precision.String(), Result: res})
}

type sentenceRequest struct {
	Text         string `json:"text"`
	Precision    string `json:"precision"`
	ShowDefaults *bool  `json:"show_defaults"`
}

// Sentence handles POST /api/gloss/sentence with a JSON body {"text": "..."}.
// Results always carry every token; a token that fails to gloss fails the
// sentence text with 422.
func (h *GlossHandler) Sentence(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}
	var body sentenceRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, h.maxBody))
	if err := dec.Decode(&body); err != nil || body.Text == "" {
		writeError(w, http.StatusBadRequest, "body must be JSON with a non-empty 'text' field")
		return
	}
	show := ""
	if body.ShowDefaults != nil {
		show = strconv.FormatBool(*body.ShowDefaults)
	}
	o, err := h.options(body.Precision, show)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	glosses := h.glosser.Sentence(body.Text)
	results := make([]tokenJSON, 0, len(glosses))
	for _, tg := range glosses {
		results = append(results, toTokenJSON(tg, o))
	}
	resp := glossSentenceResponse{
		Precision: o.Precision.String(),
		Results:   results,
		Text:      ithkuil.RenderSentence(glosses, o),
	}
	status := http.StatusOK
	if err := ithkuil.SentenceFailure(glosses); err != nil {
		resp.Error = err.Error()
		status = http.StatusUnprocessableEntity
	}
	writeJSON(w, status, resp)
}

// Dictionary handles GET /api/dictionary, describing the loaded snapshot.
func (h *GlossHandler) Dictionary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	writeJSON(w, http.StatusOK, h.glosser.Store().Load().Stats())
}
