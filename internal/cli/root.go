// Package cli implements the audiogram-admin command-line interface.
//
// Every page command loads the form file named by --form, runs one
// controller operation against it, prints the resulting alerts and writes
// the form back, so a curator can read, edit and save across invocations.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// defaultFormPath is the form file used when --form is not given.
const defaultFormPath = "form.html"

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dataDir   string
	formPath  string
	logMode   string
	jsonMode  bool
}

var flags rootFlags

// NewRootCmd creates the top-level "audiogram-admin" command with global
// flags and all subcommands registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "audiogram-admin",
		Short: "Curate the animal audiogram database",
		Long: "audiogram-admin edits animals, experiments, data points, publications\n" +
			"and taxonomy through the audiogram admin API.",
		// Do not print usage on errors returned by subcommands.
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	root.PersistentFlags().StringVar(&flags.dataDir, "data-dir", "", "data directory holding the journal (default: platform data dir)")
	root.PersistentFlags().StringVar(&flags.formPath, "form", defaultFormPath, "form file holding the current page")
	root.PersistentFlags().StringVar(&flags.logMode, "log-mode", "", "log mode: development or production (overrides config)")
	root.PersistentFlags().BoolVar(&flags.jsonMode, "json", false, "output in JSON format")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd())
	root.AddCommand(newAnimalCmd())
	root.AddCommand(newExperimentCmd())
	root.AddCommand(newDataPointsCmd())
	root.AddCommand(newPublicationCmd())
	root.AddCommand(newTaxonCmd())
	root.AddCommand(newSetCmd())
	root.AddCommand(newJournalCmd())

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "audiogram-admin: %v\n", err)
		os.Exit(exitCode(err))
	}
	os.Exit(exitSuccess)
}

// systemError marks failures of the local environment (config, journal,
// form file) as opposed to a rejected operation.
type systemError struct {
	err error
}

func (e *systemError) Error() string { return e.err.Error() }
func (e *systemError) Unwrap() error { return e.err }

func sysErr(err error) error {
	if err == nil {
		return nil
	}
	return &systemError{err: err}
}

func exitCode(err error) int {
	var se *systemError
	if errors.As(err, &se) {
		return exitSysError
	}
	return exitUserError
}
