package cmd

import (
	"github.com/msto63/boole/internal/tui"
	"github.com/spf13/cobra"
)

func newTUICmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Start the interactive evaluator",
		Long: `Starts the terminal UI.

Navigation:
  Enter     Analyze the expression
  ↑/↓       Recall previous input
  Tab       Switch between Analyze and History
  Ctrl+L    Clear results
  Esc       Quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.newService()
			if err != nil {
				return err
			}
			defer svc.Close()

			return tui.Run(cmd.Context(), svc)
		},
	}
}
