package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	mdwerror "github.com/msto63/boole/foundation/core/error"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newSatCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:     "sat [expression]",
		Aliases: []string{"solve"},
		Short:   "Decide satisfiability and validity with the SAT solver",
		Long: `Asks the SAT solver for an assignment making the expression true and
one making it false. Unlike table and nf there is no limit on the number of
variables.

Examples:
  boole sat "(A → B) ∧ A ∧ ¬B"
  boole sat "A | B | C | D | E | G | H" --output json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			format := strings.ToLower(output)
			switch format {
			case "text", "json", "yaml":
			default:
				return mdwerror.New(fmt.Sprintf("unknown output format %q (text, json, yaml)", output)).
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

			res, err := svc.Solve(cmd.Context(), expr)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch format {
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			case "yaml":
				enc := yaml.NewEncoder(out)
				enc.SetIndent(2)
				if err := enc.Encode(res.Result); err != nil {
					return err
				}
				return enc.Close()
			}

			fmt.Fprintf(out, "%s %s\n", labelColor.Sprint("satisfiable:"), formatBool(res.Satisfiable))
			fmt.Fprintf(out, "%s %s\n", labelColor.Sprint("valid:"), formatBool(res.Valid))
			fmt.Fprintf(out, "%s %s\n", labelColor.Sprint("class:"), res.Classification)
			if len(res.Model) > 0 {
				fmt.Fprintf(out, "%s %s\n", labelColor.Sprint("model:"), res.Model)
			}
			if len(res.Counterexample) > 0 {
				fmt.Fprintf(out, "%s %s\n", labelColor.Sprint("counterexample:"), res.Counterexample)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format: text, json or yaml")
	return cmd
}
