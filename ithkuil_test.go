package ithkuil

import (
	"context"
	"testing"
)

const (
	affixTable = "testdata/affixes.tsv"
	rootTable  = "testdata/roots.tsv"
)

func TestNew(t *testing.T) {
	g, err := New(context.Background(), affixTable, rootTable)
	if err != nil {
		t.Fatalf("New(%q, %q): %v", affixTable, rootTable, err)
	}
	stats := g.Store().Load().Stats()
	t.Logf("Loaded %d affixes, %d roots", stats.Affixes, stats.Roots)
	if stats.Roots == 0 || stats.Affixes == 0 {
		t.Error("New loaded an empty dictionary")
	}
}

func TestNewMissingTable(t *testing.T) {
	if _, err := New(context.Background(), "testdata/nope.tsv", rootTable); err == nil {
		t.Error("New with a missing affix table: expected an error")
	}
}

func TestGlosserWord(t *testing.T) {
	g, _ := New(context.Background(), affixTable, rootTable)

	tests := []struct {
		token string
		want  string
	}{
		{"lala", `__S1__-"a tree"`},
		{"elala", `__S2__-"a wood"`},
		{"pala", `"person"`},
		{chainWord, "T1-**mr**-DYN.AMG-PRN—S3-**çtļ**-DYN.CTE-G.RPV-AFF"},
		{"á", "Error: Marked default stress"},
	}
	for _, tt := range tests {
		got := g.Word(tt.token)
		if got.Token != tt.token {
			t.Errorf("Word(%q).Token = %q", tt.token, got.Token)
		}
		if s := got.Outcome.Render(Options{}); s != tt.want {
			t.Errorf("Word(%q) = %q, want %q", tt.token, s, tt.want)
		}
	}
}

func TestGlosserSentence(t *testing.T) {
	g := NewGlosser(nil)
	got := g.Sentence("çëmala hla: foo bar. kala")
	if len(got) != 5 {
		t.Fatalf("Sentence returned %d tokens, want 5", len(got))
	}
	want := []string{"[sentence:] **m**", "CAR", "«foo»", "«bar.»", "**k**"}
	for i, w := range want {
		if s := got[i].Outcome.Render(Options{}); s != w {
			t.Errorf("token %d (%s) = %q, want %q", i, got[i].Token, s, w)
		}
	}
	if got[0].Word == nil || !got[0].Word.SentenceStart {
		t.Error("first word should carry the sentence-start prefix")
	}
}

func TestWordTypeString(t *testing.T) {
	if TypeMoodCaseScopeAdjunct.String() != "mood/case-scope adjunct" {
		t.Errorf("got %q", TypeMoodCaseScopeAdjunct.String())
	}
	if WordType(99).String() != "unknown" {
		t.Errorf("got %q", WordType(99).String())
	}
}
