package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cours-de-latin/ithkuil"
)

const chainWord = "hlamröé-uçtļořï"

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeRootTable(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "roots.tsv")
	content := "cr\tgeneral\tstem1\tstem2\tstem3\nmr\tsee\t\t\t\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestWordCommand(t *testing.T) {
	out, err := execute(t, "word", chainWord)
	require.NoError(t, err)
	assert.Equal(t, chainWord+": T1-**mr**-DYN.AMG-PRN—S3-**çtļ**-DYN.CTE-G.RPV-AFF\n", out)
}

func TestWordCommand_WithRoots(t *testing.T) {
	out, err := execute(t, "word", "--roots", writeRootTable(t), chainWord)
	require.NoError(t, err)
	assert.Contains(t, out, `T1-"see"-`)
}

func TestWordCommand_Failure(t *testing.T) {
	out, err := execute(t, "word", "á")
	require.NoError(t, err)
	assert.Equal(t, "á: Error: Marked default stress\n", out)
}

func TestChainCommand(t *testing.T) {
	out, err := execute(t, "chain", chainWord)
	require.NoError(t, err)
	assert.Equal(t, "T1-**mr**-DYN.AMG-PRN—S3-**çtļ**-DYN.CTE-G.RPV-AFF\n", out)

	_, err = execute(t, "chain", "mala")
	assert.ErrorIs(t, err, errNotChain)
}

func TestSentenceCommand(t *testing.T) {
	out, err := execute(t, "sentence", "mala", "malá.")
	require.NoError(t, err)
	assert.Equal(t, "mala: **m**\nmalá.: **m**\n", out)

	out, err = execute(t, "sentence", chainWord, "á", "mala")
	require.NoError(t, err)
	assert.Equal(t, "á: Error: Marked default stress\n", out)
}

func TestRootFlags(t *testing.T) {
	_, err := execute(t, "word", "--precision", "loud", "mala")
	assert.EqualError(t, err, `unknown precision "loud"`)

	_, err = execute(t, "word", "--roots", filepath.Join(t.TempDir(), "missing.tsv"), "mala")
	assert.Error(t, err)
}

func TestResolvePath(t *testing.T) {
	existing := writeRootTable(t)
	missing := filepath.Join(t.TempDir(), "missing.tsv")

	assert.Equal(t, "x.tsv", resolvePath("x.tsv", existing, false))
	assert.Equal(t, existing, resolvePath("", existing, false))
	assert.Equal(t, "", resolvePath("", missing, false))
	assert.Equal(t, missing, resolvePath("", missing, true))
}

func TestReplEval(t *testing.T) {
	st := &cliState{glosser: ithkuil.NewGlosser(nil)}
	r := &repl{st: st}
	cmd := &cobra.Command{}

	out, quit := r.eval(cmd, chainWord)
	assert.False(t, quit)
	assert.Equal(t, chainWord+": T1-**mr**-DYN.AMG-PRN—S3-**çtļ**-DYN.CTE-G.RPV-AFF", out)

	out, _ = r.eval(cmd, "mala maqa")
	assert.Equal(t, "maqa: Error: Non-Ithkuil character: q", out)

	out, _ = r.eval(cmd, ":full")
	assert.Equal(t, "precision: full", out)
	assert.Equal(t, ithkuil.Full, st.opts.Precision)

	out, _ = r.eval(cmd, ":defaults")
	assert.Equal(t, "show defaults: true", out)

	out, _ = r.eval(cmd, ":reload")
	assert.Equal(t, "no dictionary files configured", out)

	out, _ = r.eval(cmd, ":bogus")
	assert.Contains(t, out, "unknown command")

	_, quit = r.eval(cmd, ":quit")
	assert.True(t, quit)
}
