package ithkuil

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestReferentials(t *testing.T) {
	tests := []struct {
		word string
		want string
	}{
		{"la", "1m"},
		{"ëla", "1m"},
		{"ra", "1m.BEN"},
		{"li", "1m-AFF"},
		{"lla", "Obv"},
		{"lra", "[1m+1m.BEN]"},
		{"hla", "CAR"},
		{"hna", "NAM"},
		{"la'ir", "1m-AFF-1m.BEN"},
		{"la'irë", "1m-AFF-1m.BEN"},
		{"laxa", "1m-BSC"},
		{"laxá", "1m-BSC-RPV"},
		{"laxtu", "1m-CTE-IND"},
		{"laxalau", "1m-BSC-**l**/1-PRP"},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, glossOf(t, tt.word, Options{}))
		})
	}
}

func TestReferentialDefaults(t *testing.T) {
	assert.Equal(t, "1m.NEU-THM-NRM", glossOf(t, "la", showDefaults))
	assert.Equal(t, "CAR-THM-NRM", glossOf(t, "hla", showDefaults))
}

func TestReferentialErrors(t *testing.T) {
	w, err := Format("lëa")
	if err != nil {
		t.Fatal(err)
	}
	out, ok := ParseWord(w, false).(Failed)
	if !ok {
		t.Fatalf("ParseWord(lëa) = %v, want a failure", out)
	}
	if out.Message != "Unknown Vc: ëa" {
		t.Errorf("ParseWord(lëa) message = %q", out.Message)
	}
}

func TestParseReferents(t *testing.T) {
	tests := []struct {
		cluster string
		want    []string
	}{
		{"l", []string{"1m"}},
		{"ll", []string{"Obv"}},
		{"lr", []string{"1m", "1m.BEN"}},
		{"th", []string{"Rdp"}},
		{"tk", []string{"2p.BEN", "pa.BEN"}},
	}
	for _, tt := range tests {
		refs, err := parseReferents(tt.cluster)
		if err != nil {
			t.Errorf("parseReferents(%q): %v", tt.cluster, err)
			continue
		}
		got := make([]string, len(refs))
		for i, r := range refs {
			got[i] = r.Render(Options{})
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("parseReferents(%q) mismatch (-want +got):\n%s", tt.cluster, diff)
		}
	}

	if _, err := parseReferents("xw"); err == nil {
		t.Error("parseReferents(xw): expected an error")
	}
}
