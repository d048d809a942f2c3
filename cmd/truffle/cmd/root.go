package cmd

import (
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"

	mdwconfig "github.com/msto63/truffle/foundation/core/config"
	mdwerror "github.com/msto63/truffle/foundation/core/error"
	mdwlog "github.com/msto63/truffle/foundation/core/log"
	"github.com/msto63/truffle/pkg/core/logging"
)

// app carries the persistent flags and what setup derives from them
type app struct {
	cfgFile string
	verbose bool
	noColor bool

	cfg    *mdwconfig.Config
	logger *mdwlog.Logger
	closer io.Closer
	styles styles
}

// NewRootCommand assembles the truffle command tree
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "truffle",
		Short: "Truffle AST builder",
		Long: `truffle builds abstract syntax trees from Truffle token streams.

Input files hold the lexer's output: a YAML or JSON list of
{kind, text, line, column} entries.

Commands:
  build    - build a function or program and print its AST
  check    - build and validate, reporting the first error
  version  - print version information`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) { a.teardown() },
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: $TRUFFLE_CONFIG or ./configs/truffle.toml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")
	root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable colored output")

	root.AddCommand(newBuildCommand(a))
	root.AddCommand(newCheckCommand(a))
	root.AddCommand(newVersionCommand(a))

	return root
}

// Execute runs the root command and reports a failure on stderr
func Execute() error {
	root := NewRootCommand()
	err := root.Execute()
	var reported reportedError
	if err != nil && !errors.As(err, &reported) {
		printError(root.ErrOrStderr(), plainStyles(), err)
	}
	return err
}

// setup loads configuration and creates the logger
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}
	a.cfg = cfg

	logCfg := logging.FromGeneral(cfg.General)
	logCfg.Verbose = a.verbose
	logCfg.Output = cmd.ErrOrStderr()

	logger, closer, err := logging.NewLogger(logCfg)
	if err != nil {
		return err
	}
	a.logger = logger
	a.closer = closer

	color := cfg.Output.ColorEnabled() && !a.noColor && os.Getenv("NO_COLOR") == ""
	if color {
		a.styles = defaultStyles()
	} else {
		a.styles = plainStyles()
	}

	a.logger.Debug("Configuration loaded", mdwlog.Fields{
		"config":     cfg.FilePath(),
		"split_rule": cfg.Builder.SplitRule,
		"format":     cfg.Output.Format,
	})
	return nil
}

func (a *app) teardown() {
	if a.closer != nil {
		_ = a.closer.Close()
	}
}

// loadConfig reads --config, then TRUFFLE_CONFIG and the default paths,
// and falls back to built-in defaults when no file exists
func (a *app) loadConfig() (*mdwconfig.Config, error) {
	if a.cfgFile != "" {
		return mdwconfig.Load(a.cfgFile)
	}
	cfg, err := mdwconfig.LoadFromEnv()
	if mdwerror.HasCode(err, mdwerror.CodeNotFound) && os.Getenv(mdwconfig.EnvConfigPath) == "" {
		return mdwconfig.Default(), nil
	}
	return cfg, err
}

// reportedError marks a failure that was already rendered for the user
type reportedError struct {
	err error
}

func (e reportedError) Error() string { return e.err.Error() }

func (e reportedError) Unwrap() error { return e.err }
