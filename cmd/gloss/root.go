package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/spf13/cobra"

	"github.com/cours-de-latin/ithkuil"
	"github.com/cours-de-latin/ithkuil/internal/app"
	"github.com/cours-de-latin/ithkuil/internal/config"
)

// cliState is shared by every sub-command once the root has run.
type cliState struct {
	precision    string
	showDefaults bool
	affixPath    string
	rootPath     string
	logLevel     string

	dict    config.DictionaryConfig
	opts    ithkuil.Options
	glosser *ithkuil.Glosser
	logger  *slog.Logger
}

func newRootCmd() *cobra.Command {
	st := &cliState{}
	root := &cobra.Command{
		Use:           "gloss",
		Short:         "Gloss New Ithkuil words",
		Long:          `Decodes New Ithkuil words into slot-by-slot grammatical glosses, optionally described from root and affix tables.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return st.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&st.precision, "precision", "p", "regular", "gloss precision: short, regular or full")
	pf.BoolVarP(&st.showDefaults, "defaults", "d", false, "show default values")
	pf.StringVar(&st.affixPath, "affixes", "", "affix table (TSV); defaults to DICTIONARY_AFFIX_PATH")
	pf.StringVar(&st.rootPath, "roots", "", "root table (TSV); defaults to DICTIONARY_ROOT_PATH")
	pf.StringVar(&st.logLevel, "log-level", "warn", "log level: debug, info, warn or error")

	root.AddCommand(newWordCmd(st), newSentenceCmd(st), newChainCmd(st), newReplCmd(st))
	return root
}

// setup resolves options and loads the dictionary. Table paths come from
// the flags, then the environment, then the configured defaults; a default
// path that does not exist is skipped.
func (st *cliState) setup(cmd *cobra.Command) error {
	st.logger = app.NewLogger(config.LogConfig{Level: st.logLevel, Format: "text"})

	p, err := ithkuil.ParsePrecision(st.precision)
	if err != nil {
		return err
	}
	st.opts = ithkuil.Options{Precision: p, ShowDefaults: st.showDefaults}

	if err := cleanenv.ReadEnv(&st.dict); err != nil {
		return fmt.Errorf("read env: %w", err)
	}
	_, affixFromEnv := os.LookupEnv("DICTIONARY_AFFIX_PATH")
	_, rootFromEnv := os.LookupEnv("DICTIONARY_ROOT_PATH")
	st.dict.AffixPath = resolvePath(st.affixPath, st.dict.AffixPath, affixFromEnv)
	st.dict.RootPath = resolvePath(st.rootPath, st.dict.RootPath, rootFromEnv)

	g, err := ithkuil.New(cmd.Context(), st.dict.AffixPath, st.dict.RootPath)
	if err != nil {
		return err
	}
	st.glosser = g
	stats := g.Store().Load().Stats()
	st.logger.Debug("dictionary loaded", slog.Int("affixes", stats.Affixes), slog.Int("roots", stats.Roots))
	return nil
}

func resolvePath(flag, configured string, explicit bool) string {
	if flag != "" {
		return flag
	}
	if explicit {
		return configured
	}
	if _, err := os.Stat(configured); errors.Is(err, fs.ErrNotExist) {
		return ""
	}
	return configured
}
