package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zjrosen/hecto/internal/config"
	"github.com/zjrosen/hecto/internal/log"
	"github.com/zjrosen/hecto/internal/row"
)

var version = "dev"

// ErrNotFound is returned by `hecto find` when the query has no match, so the
// process exits non-zero like grep.
var ErrNotFound = errors.New("not found")

// env carries the state shared by every subcommand of one invocation.
type env struct {
	cfgFile  string
	debug    bool
	cfg      config.Config
	closeLog func()
}

func newRootCmd() (*cobra.Command, *env) {
	e := &env{cfg: config.Defaults()}

	rootCmd := &cobra.Command{
		Use:   "hecto",
		Short: "Grapheme-aware line editing from the terminal",
		Long: `hecto edits single lines of text where every position is a user-visible
character (grapheme cluster), never a byte or code point.`,
		Version:           version,
		SilenceUsage:      true,
		PersistentPreRunE: e.setup,
		PersistentPostRun: func(*cobra.Command, []string) { e.teardown() },
	}

	rootCmd.PersistentFlags().StringVarP(&e.cfgFile, "config", "c", "",
		"config file (default: .hecto/config.yaml or ~/.config/hecto/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&e.debug, "debug", false,
		"write a debug log (path from log_file)")

	rootCmd.AddCommand(
		newInspectCmd(e),
		newRenderCmd(e),
		newFindCmd(e),
		newEditCmd(e),
		newPromptCmd(e),
		newConfigCmd(e),
	)
	return rootCmd, e
}

// setup loads configuration and starts logging before any subcommand runs.
func (e *env) setup(cmd *cobra.Command, _ []string) error {
	cfg, used, err := config.Load(e.cfgFile)
	if err != nil {
		return err
	}
	if e.debug {
		cfg.Debug = true
	}
	e.cfg = cfg

	if cfg.Debug {
		var cleanup func()
		if cmd.Name() == "prompt" {
			// The prompt owns the terminal; tea's file logger keeps stderr clean.
			cleanup, err = log.InitWithTeaLog(cfg.LogFile, "hecto")
		} else {
			cleanup, err = log.Init(cfg.LogFile)
		}
		if err != nil {
			return fmt.Errorf("starting debug log: %w", err)
		}
		e.closeLog = cleanup
		log.SetMinLevel(log.ParseLevel(cfg.LogLevel))
	}

	log.Debug(log.CatCLI, "Command starting", "cmd", cmd.CommandPath(), "config", used)
	return nil
}

func (e *env) teardown() {
	if e.closeLog != nil {
		e.closeLog()
		e.closeLog = nil
		log.Reset()
	}
}

// readRow builds a row from a text argument. "-" reads stdin; the trailing
// line ending is dropped since rows never hold one.
func readRow(cmd *cobra.Command, arg string) (*row.Row, error) {
	if arg != "-" {
		return row.New(arg), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	text := strings.TrimSuffix(string(data), "\n")
	text = strings.TrimSuffix(text, "\r")
	r, err := row.Parse([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	return r, nil
}

// Execute runs the root command
func Execute() error {
	rootCmd, e := newRootCmd()
	defer e.teardown()
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
}
