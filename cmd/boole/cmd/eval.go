package cmd

import (
	"fmt"

	"github.com/msto63/boole/internal/boole/service"
	"github.com/spf13/cobra"
)

func newEvalCmd(a *app) *cobra.Command {
	var assign string

	cmd := &cobra.Command{
		Use:   "eval [expression]",
		Short: "Evaluate an expression",
		Long: `Evaluates an expression to true or false.

Expressions with variables need a value for every variable.

Examples:
  boole eval "((true ∧ false) → true) ↔ true"
  boole eval "A & !B" --assign A=true,B=false
  echo "T -> F" | boole eval`,
		RunE: func(cmd *cobra.Command, args []string) error {
			expr, err := expressionArg(args)
			if err != nil {
				return err
			}
			assignment, err := service.ParseAssignment(assign)
			if err != nil {
				return err
			}

			svc, err := a.newService()
			if err != nil {
				return err
			}
			defer svc.Close()

			res, err := svc.Evaluate(cmd.Context(), service.EvaluateRequest{
				Expression: expr,
				Assignment: assignment,
			})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatBool(res.Result))
			return nil
		},
	}

	cmd.Flags().StringVarP(&assign, "assign", "a", "", "variable values, e.g. A=true,B=false")
	return cmd
}
