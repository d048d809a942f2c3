package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/truffle/foundation/core/error"
	mdwlog "github.com/msto63/truffle/foundation/core/log"
	mdwast "github.com/msto63/truffle/foundation/truffle/ast"
	"github.com/msto63/truffle/foundation/truffle/parser"
	mdwtoken "github.com/msto63/truffle/foundation/truffle/token"
)

type buildFlags struct {
	program bool
	format  string
	split   string
}

func newBuildCommand(a *app) *cobra.Command {
	f := &buildFlags{}

	cmd := &cobra.Command{
		Use:   "build FILE",
		Short: "Build a function or program and print its AST",
		Long: `Decode a token file, build one function (or, with --program, every
top-level function) and print the resulting AST.

Formats:
  text  - canonical rendering and an indented tree
  json  - node maps as JSON
  yaml  - node maps as YAML`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runBuild(cmd, args[0], f)
		},
	}

	cmd.Flags().BoolVarP(&f.program, "program", "p", false, "build every top-level function")
	cmd.Flags().StringVarP(&f.format, "format", "f", "", "output format: text, json or yaml (default from config)")
	cmd.Flags().StringVar(&f.split, "split", "", "split rule: highest or lowest (default from config)")

	return cmd
}

func (a *app) runBuild(cmd *cobra.Command, file string, f *buildFlags) error {
	format := f.format
	if format == "" {
		format = a.cfg.Output.Format
	}
	format = strings.ToLower(format)
	if format != "text" && format != "json" && format != "yaml" {
		return mdwerror.New(fmt.Sprintf("unknown output format %q", f.format)).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("cmd.build")
	}

	node, err := a.buildFile(file, f.program, f.split)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), diagnostic(a.styles, file, err))
		return reportedError{err}
	}

	return a.writeAST(cmd.OutOrStdout(), node, format)
}

// buildFile decodes the token file and builds it. The split flag, when
// set, overrides the configured split rule.
func (a *app) buildFile(file string, program bool, split string) (mdwast.Node, error) {
	tokens, err := readTokens(file)
	if err != nil {
		return nil, err
	}

	if split == "" {
		split = a.cfg.Builder.SplitRule
	}
	rule, err := parser.ParseSplitRule(split)
	if err != nil {
		return nil, err
	}

	builder, err := parser.New(parser.Options{
		Logger:              a.logger.WithField("file", file),
		SplitRule:           rule,
		MaxExpressionTokens: a.cfg.Builder.MaxExpressionTokens,
	})
	if err != nil {
		return nil, err
	}

	a.logger.Debug("Building token file", mdwlog.Fields{
		"file":       file,
		"tokens":     len(tokens),
		"program":    program,
		"split_rule": rule.String(),
	})

	if program {
		p, err := builder.BuildProgram(tokens)
		if err != nil {
			return nil, err
		}
		return p, nil
	}
	fn, err := builder.BuildFunction(tokens)
	if err != nil {
		return nil, err
	}
	return fn, nil
}

func readTokens(file string) ([]mdwtoken.Token, error) {
	fh, err := os.Open(file)
	if err != nil {
		code := mdwerror.CodeInvalidInput
		if os.IsNotExist(err) {
			code = mdwerror.CodeNotFound
		}
		return nil, mdwerror.Wrap(err, "cannot open token file").
			WithCode(code).
			WithOperation("cmd.readTokens").
			WithDetail("file", file)
	}
	defer fh.Close()

	return mdwtoken.ReadStream(fh)
}

// writeAST prints node in the given format
func (a *app) writeAST(w io.Writer, node mdwast.Node, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(mdwast.ToMap(node))

	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(mdwast.ToMap(node)); err != nil {
			return err
		}
		return enc.Close()

	default:
		fmt.Fprintln(w, a.styles.Title.Render(node.String()))
		fmt.Fprintln(w, a.styles.Tree.Render(strings.TrimRight(mdwast.ASTToString(node), "\n")))
		return nil
	}
}
