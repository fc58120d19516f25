package cmd

import (
	"fmt"

	mdwstringx "github.com/msto63/boole/foundation/utils/stringx"
	"github.com/spf13/cobra"
)

func newHistoryCmd(a *app) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent operations",
		Long: `Lists recent evaluations, truth tables and normal form derivations,
newest first. History persists across runs only with the SQLite store
enabled ([store] enabled = true).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.newService()
			if err != nil {
				return err
			}
			defer svc.Close()

			records, err := svc.History(cmd.Context(), limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(records) == 0 {
				fmt.Fprintln(out, "No history.")
				return nil
			}

			for _, r := range records {
				status := trueColor.Sprint("ok ")
				detail := r.Result
				if r.Failed() {
					status = falseColor.Sprint("err")
					detail = r.ErrorCode
				}
				fmt.Fprintf(out, "%s  %s  %s  %-11s  %s  %s\n",
					mdwstringx.Truncate(r.ID, 8, ""),
					r.CreatedAt.Format("2006-01-02 15:04:05"),
					status,
					r.Kind,
					mdwstringx.Truncate(r.Expression, 48, "…"),
					mdwstringx.Truncate(detail, 60, "…"),
				)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum number of records (0 for all)")
	return cmd
}
