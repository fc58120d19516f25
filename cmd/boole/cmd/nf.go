package cmd

import (
	"fmt"
	"strings"

	mdwerror "github.com/msto63/boole/foundation/core/error"
	"github.com/spf13/cobra"
)

func newNormalFormsCmd(a *app) *cobra.Command {
	var form string

	cmd := &cobra.Command{
		Use:     "nf [expression]",
		Aliases: []string{"normalforms"},
		Short:   "Derive the canonical DNF and CNF of an expression",
		Long: `Derives the canonical disjunctive and conjunctive normal forms from the
expression's truth table.

A DNF without satisfying rows is F; a CNF without falsifying rows is T.

Examples:
  boole nf "((A ∧ B) → C) ↔ A"
  boole nf "A -> B" --form cnf`,
		RunE: func(cmd *cobra.Command, args []string) error {
			form = strings.ToLower(form)
			if form != "dnf" && form != "cnf" && form != "both" {
				return mdwerror.New(fmt.Sprintf("unknown form %q (dnf, cnf, both)", form)).
					WithCode(mdwerror.CodeInvalidInput)
			}

			expr, err := expressionArg(args)
			if err != nil {
				return err
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
			switch form {
			case "dnf":
				fmt.Fprintln(out, res.DNF)
			case "cnf":
				fmt.Fprintln(out, res.CNF)
			default:
				fmt.Fprintf(out, "%s %s\n", labelColor.Sprint("DNF:"), res.DNF)
				fmt.Fprintf(out, "%s %s\n", labelColor.Sprint("CNF:"), res.CNF)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&form, "form", "f", "both", "normal form: dnf, cnf or both")
	return cmd
}
