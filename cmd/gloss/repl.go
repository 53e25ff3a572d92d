package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/cours-de-latin/ithkuil"
	"github.com/cours-de-latin/ithkuil/internal/reload"
)

const (
	historyFile = ".ithkuil_gloss_history"
	prompt      = "gloss> "
	replHelp    = `Enter a word or a sentence to gloss it.
  :short :regular :full   set precision
  :defaults               toggle default values
  :reload                 reload the dictionary
  :quit                   exit`
)

// repl holds the interactive session state.
type repl struct {
	st      *cliState
	watcher *reload.Watcher
}

func newReplCmd(st *cliState) *cobra.Command {
	var watch bool
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Gloss interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r := &repl{st: st}
			if st.dict.AffixPath != "" || st.dict.RootPath != "" {
				w, err := reload.New(st.glosser.Store(), st.dict.AffixPath, st.dict.RootPath, st.dict.Debounce, st.logger)
				if err != nil {
					return err
				}
				defer w.Stop()
				if watch {
					if err := w.Start(cmd.Context()); err != nil {
						return err
					}
				}
				r.watcher = w
			}
			return r.run(cmd)
		},
	}
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "reload the dictionary when its files change")
	return cmd
}

func (r *repl) run(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "New Ithkuil glosser. Type :help for commands.")

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	for {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			fmt.Fprintln(out)
			return nil
		}
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		ln.AppendHistory(line)

		text, quit := r.eval(cmd, line)
		if text != "" {
			fmt.Fprintln(out, text)
		}
		if quit {
			return nil
		}
	}
}

// eval handles one line of input, returning what to print and whether
// the session should end.
func (r *repl) eval(cmd *cobra.Command, line string) (string, bool) {
	if strings.HasPrefix(line, ":") {
		return r.command(cmd, strings.ToLower(line))
	}
	tokens := ithkuil.Tokenize(line)
	if len(tokens) == 1 {
		return ithkuil.RenderContext([]ithkuil.TokenGloss{r.st.glosser.Word(tokens[0])}, r.st.opts), false
	}
	return ithkuil.RenderSentence(r.st.glosser.Sentence(line), r.st.opts), false
}

func (r *repl) command(cmd *cobra.Command, c string) (string, bool) {
	switch c {
	case ":quit", ":q", ":exit":
		return "", true
	case ":help", ":h":
		return replHelp, false
	case ":short", ":regular", ":full":
		p, _ := ithkuil.ParsePrecision(strings.TrimPrefix(c, ":"))
		r.st.opts.Precision = p
		return "precision: " + p.String(), false
	case ":defaults":
		r.st.opts.ShowDefaults = !r.st.opts.ShowDefaults
		return fmt.Sprintf("show defaults: %t", r.st.opts.ShowDefaults), false
	case ":reload":
		if r.watcher == nil {
			return "no dictionary files configured", false
		}
		if err := r.watcher.Reload(cmd.Context()); err != nil {
			return "reload failed: " + err.Error(), false
		}
		s := r.st.glosser.Store().Load().Stats()
		return fmt.Sprintf("reloaded: %d affixes, %d roots", s.Affixes, s.Roots), false
	}
	return "unknown command. Type :help for commands.", false
}
