package ithkuil

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// glossOf formats and parses token with no sentence context.
func glossOf(t *testing.T, token string, o Options) string {
	t.Helper()
	w, err := Format(token)
	require.NoError(t, err, token)
	return ParseWord(w, false).Render(o)
}

func TestFormative(t *testing.T) {
	tests := []struct {
		word string
		want string
	}{
		{"mala", "**m**"},
		{"emala", "S2-**m**"},
		{"mola", "**m**-DYN.CTE"},
		{"mata", "**m**-MSS"},
		{"mařa", "**m**-G.RPV"},
		{"mali", "**m**-AFF"},
		{"mala'i", "**m**-ACT"},
		{"málala", "**m**-**l**/1\\FRA"},
		{"malehlá", "**m**-CRO.SUB"},
		{"malehla", "**m**-CRO.CCA"},
		{"malewa", "**m**-HAB"},
		{"aimala", "**m**-**r**/4"},
		{"hamala", "T1-**m**"},
		{"hamalá", "T1-**m**-PRN"},
		{"waila", "**l**-G"},
		{"ëilala", "**l**/1"},
		{"aelala", "1m"},
		// a Cn in place of the Ca: default Ca, slot VIII with Vn a
		{"mahla", "**m**-CCA"},
		{"mawa", "**m**-RTR"},
		{"mahwa", "**m**-RTR.CCA"},
		{"mahwá", "**m**-RTR.SUB"},
		// a glottalized series 4 Vn is an absolute level
		{"mala'oha", "**m**-aMIN"},
		{"male'öha", "**m**-aDFC"},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, glossOf(t, tt.word, Options{}))
		})
	}
}

func TestFormativeDefaults(t *testing.T) {
	tests := []struct {
		word string
		want string
	}{
		{"mala", "S1.PRC-**m**-STA.BSC.EXS-UPX.DEL.CSL.M.NRM-THM\\UNF"},
		{"malá", "S1.PRC-**m**-STA.BSC.EXS-UPX.DEL.CSL.M.NRM-ASR.OBS"},
		{"malalla", "S1.PRC-**m**-STA.BSC.EXS-**l**/1-UPX.DEL.CSL.M.NRM-THM\\UNF"},
		{"malala", "S1.PRC-**m**-STA.BSC.EXS-UPX.DEL.CSL.M.NRM-**l**/1-THM\\UNF"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, glossOf(t, tt.word, showDefaults), tt.word)
	}
}

func TestFormativeFullPrecision(t *testing.T) {
	assert.Equal(t, "**m**-dynamic.contential", glossOf(t, "mola", Options{Precision: Full}))
}

func TestFormativeErrors(t *testing.T) {
	tests := []struct {
		word string
		msg  string
		kind error
	}{
		{"malla", "Unexpectedly few slot V affixes", ErrStructure},
		{"ma'ala", "Unexpectedly few slot V affixes", ErrStructure},
		{"mala'ralla", "Unexpectedly many slot V affixes", ErrStructure},
		{"malahala", "slot IX: unexpected groups after slot IX: la", ErrStructure},
		{"mëla", "Unknown Vr: ë", ErrUnknownValue},
		{"mëila", "Unknown Vr: ëi", ErrUnknownValue},
		{"mala'aha", "Unknown Vn: a'a", ErrUnknownValue},
		{"mala'owa", "Unknown Vn: a'o", ErrUnknownValue},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			w, err := Format(tt.word)
			require.NoError(t, err)
			out, ok := ParseWord(w, false).(Failed)
			require.True(t, ok, "expected a failure")
			assert.Equal(t, tt.msg, out.Message)
			assert.True(t, errors.Is(out.Err, tt.kind))
			assert.Equal(t, "Error: "+tt.msg, out.Render(Options{}))
		})
	}
}

func TestFormativeRoot(t *testing.T) {
	tests := []struct {
		word, root string
	}{
		{"mala", "m"},
		{"emala", "m"},
		{"hamala", "m"},
		{"waila", "l"},
		{"sala", "s"},
	}
	for _, tt := range tests {
		if got := formativeRoot(SplitGroups(tt.word)); got != tt.root {
			t.Errorf("formativeRoot(%q) = %q, want %q", tt.word, got, tt.root)
		}
	}
}
