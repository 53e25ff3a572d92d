package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cours-de-latin/ithkuil"
)

func newWordCmd(st *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   "word <token>...",
		Short: "Gloss each token on its own, without sentence context",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			glosses := make([]ithkuil.TokenGloss, len(args))
			for i, tok := range args {
				glosses[i] = st.glosser.Word(tok)
			}
			fmt.Fprintln(cmd.OutOrStdout(), ithkuil.RenderContext(glosses, st.opts))
			return nil
		},
	}
}

func newSentenceCmd(st *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   "sentence <text>...",
		Short: "Gloss a sentence, resolving quotes and verbal context",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			glosses := st.glosser.Sentence(strings.Join(args, " "))
			fmt.Fprintln(cmd.OutOrStdout(), ithkuil.RenderSentence(glosses, st.opts))
			return nil
		},
	}
}

var errNotChain = errors.New("not a concatenation chain")

func newChainCmd(st *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   "chain <token>",
		Short: "Gloss a hyphenated concatenation chain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := glossChain(st.glosser, args[0], st.opts)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func glossChain(g *ithkuil.Glosser, token string, o ithkuil.Options) (string, error) {
	w, err := ithkuil.Format(token)
	if err != nil {
		return "", err
	}
	if !w.IsChain() {
		return "", fmt.Errorf("%s: %w", token, errNotChain)
	}
	outcome := ithkuil.ParseConcatenation(w)
	if p, ok := outcome.(ithkuil.Parsed); ok {
		outcome = ithkuil.Parsed{Type: p.Type, Gloss: ithkuil.Decorate(p.Gloss, g.Store().Load())}
	}
	return outcome.Render(o), nil
}
