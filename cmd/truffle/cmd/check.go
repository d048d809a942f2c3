package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/truffle/foundation/core/error"
	mdwast "github.com/msto63/truffle/foundation/truffle/ast"
)

func newCheckCommand(a *app) *cobra.Command {
	var program bool

	cmd := &cobra.Command{
		Use:   "check FILE",
		Short: "Build and validate a token file",
		Long: `Build the token file and re-validate every node of the result.
Exits with status 1 and prints a diagnostic on the first failure.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCheck(cmd, args[0], program)
		},
	}

	cmd.Flags().BoolVarP(&program, "program", "p", false, "check every top-level function")

	return cmd
}

func (a *app) runCheck(cmd *cobra.Command, file string, program bool) error {
	out := cmd.OutOrStdout()

	node, err := a.buildFile(file, program, "")
	if err == nil {
		if errs := mdwast.ValidateAST(node); len(errs) > 0 {
			err = mdwerror.Wrap(errors.Join(errs...), "AST validation failed").
				WithCode(mdwerror.CodeInternal).
				WithOperation("cmd.check").
				WithDetail("errors", len(errs))
		}
	}
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), diagnostic(a.styles, file, err))
		return reportedError{err}
	}

	nodes := mdwast.CollectNodes(node)
	fmt.Fprintf(out, "%s %s\n", a.styles.OK.Render("ok"), file)
	fmt.Fprintln(out, a.styles.Muted.Render(fmt.Sprintf(
		"  %d function(s), %d variable reference(s), %d literal(s), %d operation(s)",
		len(nodes.Functions), len(nodes.Variables), len(nodes.Literals), len(nodes.Operations))))
	return nil
}
