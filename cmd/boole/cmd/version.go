package cmd

import (
	"fmt"

	"github.com/msto63/boole/pkg/core/version"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		// version needs no configuration
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			if short {
				fmt.Fprintln(out, version.Platform)
				return
			}

			info := version.Get()
			fmt.Fprintf(out, "boole v%s\n", info.Version)
			fmt.Fprintf(out, "  API:        %s\n", info.API)
			fmt.Fprintf(out, "  Logic:      %s\n", version.ComponentVersion("logic"))
			fmt.Fprintf(out, "  Server:     %s\n", version.ComponentVersion("server"))
			fmt.Fprintf(out, "  TUI:        %s\n", version.ComponentVersion("tui"))
			fmt.Fprintf(out, "  Git Commit: %s\n", info.Commit)
			fmt.Fprintf(out, "  Build Date: %s\n", info.BuildDate)
			fmt.Fprintf(out, "  Go Version: %s\n", info.GoVersion)
			fmt.Fprintf(out, "  OS/Arch:    %s\n", info.Platform)
		},
	}

	cmd.Flags().BoolVar(&short, "short", false, "print only the version number")
	return cmd
}
