// Package cli implements the labctl command line tools: offline tokenomics
// simulation and development-environment descriptor checks.
//
// Each subcommand lives in its own file and returns a *cobra.Command; the
// root command only wires global flags and subcommands together.
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// jsonOutput is bound to the persistent --json flag and shared by all
// subcommands.
var jsonOutput bool

// Version, Commit, and Date are injected from the main package at build time.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// NewRootCommand creates the root labctl command with all subcommands
// registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "labctl",
		Short: "Tokenomics Lab command line tools",
		Long: `labctl runs tokenomics simulations offline and checks the lab's
development-environment descriptor, without needing the API server.`,

		SilenceUsage:  true,
		SilenceErrors: true,

		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),
	}

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	rootCmd.AddCommand(NewSimulateCommand())
	rootCmd.AddCommand(NewEnvCommand())

	return rootCmd
}

// Execute runs the root command and exits non-zero on error.
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		printError(err.Error())
		os.Exit(1)
	}
}

// printError writes an error to stderr, formatted per the --json flag. Errors
// go to stderr even in JSON mode; stdout is reserved for command output.
func printError(message string) {
	if jsonOutput {
		data, _ := json.MarshalIndent(map[string]interface{}{
			"error": map[string]interface{}{"message": message},
		}, "", "  ")
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", message)
	}
}
