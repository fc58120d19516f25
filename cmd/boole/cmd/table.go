package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	mdwerror "github.com/msto63/boole/foundation/core/error"
	mdwcanonical "github.com/msto63/boole/foundation/logic/canonical"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// tableExport is the structured form written by --output json|yaml
type tableExport struct {
	Expression     string                      `json:"expression" yaml:"expression"`
	Variables      []string                    `json:"variables" yaml:"variables"`
	Rows           []mdwcanonical.Row          `json:"rows" yaml:"rows"`
	Classification mdwcanonical.Classification `json:"classification" yaml:"classification"`
}

func newTableCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "table [expression]",
		Short: "Print the truth table of an expression",
		Long: `Prints one row per assignment of the expression's variables, the first
variable being the most significant and starting from all false.

Output formats:
  text  tab-separated columns (default)
  json  structured table with classification
  yaml  same as json, in YAML

Examples:
  boole table "(A ∧ B) → C"
  boole table "A -> B" --output json`,
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

			res, err := svc.TruthTable(cmd.Context(), expr)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			export := tableExport{
				Expression:     res.Expression,
				Variables:      res.Variables,
				Rows:           res.Rows,
				Classification: res.Classification,
			}

			switch format {
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(export)
			case "yaml":
				enc := yaml.NewEncoder(out)
				enc.SetIndent(2)
				if err := enc.Encode(export); err != nil {
					return err
				}
				return enc.Close()
			default:
				return mdwcanonical.Render(out, res.Table)
			}
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format: text, json or yaml")
	return cmd
}
