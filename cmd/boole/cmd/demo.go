package cmd

import (
	"fmt"

	mdwcanonical "github.com/msto63/boole/foundation/logic/canonical"
	"github.com/spf13/cobra"
)

// demoExpression is the expression shown when none is given
const demoExpression = "((A ∧ B) → C) ↔ A"

func newDemoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo [expression]",
		Short: "Show truth table and normal forms in one go",
		Long: `Prints the truth table, DNF and CNF of an expression.
Without an argument the example ` + demoExpression + ` is used.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			expr := demoExpression
			if len(args) > 0 {
				var err error
				if expr, err = expressionArg(args); err != nil {
					return err
				}
			}

			svc, err := a.newService()
			if err != nil {
				return err
			}
			defer svc.Close()

			res, err := svc.NormalForms(cmd.Context(), expr)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if err := mdwcanonical.Render(out, res.Table); err != nil {
				return err
			}
			fmt.Fprintf(out, "DNF: %s\nCNF: %s\n", res.DNF, res.CNF)
			return nil
		},
	}
}
