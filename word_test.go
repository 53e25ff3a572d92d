package ithkuil

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatErrors(t *testing.T) {
	tests := []struct {
		token  string
		reason string
	}{
		{"", "Empty word"},
		{"...", "Empty word"},
		{"ma.la", "Misplaced punctuation: ."},
		{"maqa", "Non-Ithkuil character: q"},
		{"ma1", "Non-Ithkuil character: 1"},
		{"-mala", "Misplaced hyphen"},
		{"mala--la", "Misplaced hyphen"},
		{"á", "Marked default stress"},
		{"álá", "Double-marked stress"},
		{"málalala", "Unrecognized stress placement"},
		{"mála-la", "Marked default stress"},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			w, err := Format(tt.token)
			assert.Nil(t, w)
			require.Error(t, err)
			assert.Equal(t, tt.reason, err.Error())
			assert.True(t, errors.Is(err, ErrFormatting))
		})
	}
}

func TestFormat(t *testing.T) {
	w, err := Format("«Hlamröé-uçtļořï,")
	require.NoError(t, err)

	assert.Equal(t, "«", w.Prefix)
	assert.Equal(t, ",", w.Postfix)
	assert.Equal(t, []string{"hl", "a", "mr", "öe", "-", "u", "çtļ", "o", "ř", "i"}, w.Groups)
	assert.Equal(t, []Stress{StressUltimate, StressPenultimate}, w.LinkStress)
	assert.Equal(t, StressPenultimate, w.Stress)
	assert.True(t, w.IsChain())
	assert.Equal(t, "«Hlamröé-uçtļořï,", w.Raw)
	assert.Equal(t, "hlamröe-uçtļoři", w.Text())

	links := w.Links()
	require.Len(t, links, 2)
	assert.Equal(t, StressUltimate, links[0].Stress)
	assert.Equal(t, []string{"hl", "a", "mr", "öe"}, links[0].Groups)
	assert.False(t, links[1].IsChain())
}

func TestFormatDecomposedStress(t *testing.T) {
	want, err := Format("malí")
	require.NoError(t, err)
	for _, token := range []string{"malı\u0301", "mali\u0301", "ma\u200bli\u0301"} {
		w, err := Format(token)
		require.NoError(t, err, "%+q", token)
		assert.Equal(t, want.Groups, w.Groups)
		assert.Equal(t, StressUltimate, w.Stress)
	}
}

func TestFormatSentencePrefix(t *testing.T) {
	tests := []struct {
		token  string
		groups []string
		start  bool
	}{
		{"çëmala", []string{"m", "a", "l", "a"}, true},
		{"çwala", []string{"w", "a", "l", "a"}, true},
		{"ççala", []string{"ç", "a", "l", "a"}, true},
		{"çala", []string{"ç", "a", "l", "a"}, false},
		{"çëa", []string{"ç", "ëa"}, false},
	}
	for _, tt := range tests {
		w, err := Format(tt.token)
		if err != nil {
			t.Fatalf("Format(%q): %v", tt.token, err)
		}
		if diff := cmp.Diff(tt.groups, w.Groups); diff != "" {
			t.Errorf("Format(%q) groups mismatch (-want +got):\n%s", tt.token, diff)
		}
		if w.SentenceStart != tt.start {
			t.Errorf("Format(%q).SentenceStart = %v, want %v", tt.token, w.SentenceStart, tt.start)
		}
	}
}

func TestSplitPunctuation(t *testing.T) {
	tests := []struct {
		token, prefix, body, postfix string
	}{
		{"mala", "", "mala", ""},
		{"\"mala.\"", "\"", "mala", ".\""},
		{"'ala", "'", "ala", ""},
		{"a'la", "", "a'la", ""},
		{"_mala", "_", "mala", ""},
	}
	for _, tt := range tests {
		p, b, s := splitPunctuation(tt.token)
		if p != tt.prefix || b != tt.body || s != tt.postfix {
			t.Errorf("splitPunctuation(%q) = (%q, %q, %q), want (%q, %q, %q)",
				tt.token, p, b, s, tt.prefix, tt.body, tt.postfix)
		}
	}
}

func TestMarks(t *testing.T) {
	m := marksOf("«mala")
	assert.True(t, m.opensQuote())
	assert.False(t, m.closesQuote())

	m = marksOf("mala:")
	assert.True(t, m.introducesQuote())

	m = marksOf("mala»")
	assert.True(t, m.closesQuote())

	m = marksOf("mala.")
	assert.True(t, m.endsSentence())
	assert.True(t, m.closesQuote())

	assert.True(t, marksOf("_mala").lowTone())
}
