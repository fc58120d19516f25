package cmd

import (
	"fmt"
	"io"
	"os"

	mdwerror "github.com/msto63/boole/foundation/core/error"
	mdwlog "github.com/msto63/boole/foundation/core/log"
	mdwlogic "github.com/msto63/boole/foundation/logic"
	"github.com/msto63/boole/pkg/core/config"
	"github.com/msto63/boole/pkg/core/logging"
	"github.com/spf13/cobra"
)

// app carries global flags and what the root command loads from them
type app struct {
	cfgFile  string
	verbose  bool
	logLevel string

	cfg    *config.Config
	logger *mdwlog.Logger
}

// NewRootCommand builds the command tree
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "boole",
		Short: "boole - propositional logic toolkit",
		Long: `boole evaluates propositional logic expressions, builds truth tables,
derives disjunctive and conjunctive normal forms and decides satisfiability
with a SAT solver.

Syntax:
  Operands     true, false (T and F as shorthand), variables A-Z
  Connectives  ¬ (!, ~)  ∧ (&)  ∨ (|)  → (->)  ↔ (<->)
  Precedence   ¬ binds tightest, then ∧ and ∨, then → and ↔; all left-associative`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load()
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: $BOOLE_CONFIG or ./configs/config.toml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	root.AddCommand(
		newEvalCmd(a),
		newTableCmd(a),
		newNormalFormsCmd(a),
		newSatCmd(a),
		newDemoCmd(a),
		newHistoryCmd(a),
		newServeCmd(a),
		newTUICmd(a),
		newVersionCmd(),
	)
	return root
}

// Execute runs the CLI
func Execute() error {
	root := NewRootCommand()
	if err := root.Execute(); err != nil {
		printError(root.ErrOrStderr(), err)
		return err
	}
	return nil
}

// load reads the configuration and sets up the CLI logger
func (a *app) load() error {
	var err error
	if a.cfgFile != "" {
		a.cfg, err = config.Load(a.cfgFile)
	} else {
		a.cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}

	level := a.cfg.General.LogLevel
	if a.logLevel != "" {
		level = a.logLevel
	} else if !a.verbose {
		// interactive commands stay quiet unless asked
		level = "warn"
	}
	a.logger = logging.NewCLILogger(level, a.verbose)

	if src := a.cfg.Source(); src != "" {
		a.logger.Debug("Configuration loaded", mdwlog.Fields{"path": src})
	}
	return nil
}

func printError(w io.Writer, err error) {
	if code := mdwlogic.CodeOf(err); code != mdwerror.CodeInternal {
		fmt.Fprintf(w, "Error [%s]: %v\n", code, err)
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}

// stdin is replaced in tests
var stdin io.Reader = os.Stdin
