package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"tokenomics-lab/internal/core/domain"
)

// simulateFlags holds the flag values for the simulate command.
type simulateFlags struct {
	file string
	last int
}

// NewSimulateCommand creates the "simulate" command. It runs the simulation
// engine directly against a parameter file, with no server or database.
func NewSimulateCommand() *cobra.Command {
	flags := &simulateFlags{}

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run a tokenomics simulation from a parameter file",
		Long: `Run the month-by-month supply simulation against a parameter file
and print one row per month.

The parameter file may be YAML or JSON; keys match the API's snake_case
parameter names.

Examples:
  labctl simulate -f params.yaml
  labctl simulate -f params.json --last 6
  labctl simulate -f params.yaml --json`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulate(flags)
		},
	}

	cmd.Flags().StringVarP(&flags.file, "file", "f", "", "Parameter file (YAML or JSON)")
	cmd.Flags().IntVar(&flags.last, "last", 0, "Show only the last N months (0 shows all)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runSimulate(flags *simulateFlags) error {
	params, err := loadParameters(flags.file)
	if err != nil {
		return err
	}

	results, err := domain.Simulate(params)
	if err != nil {
		return err
	}

	if flags.last > 0 && flags.last < len(results) {
		results = results[len(results)-flags.last:]
	}

	printSimulationResult(results)
	return nil
}

// loadParameters reads a parameter file. YAML is a superset of JSON, so one
// decoder covers both file formats; keys follow the API's snake_case names.
func loadParameters(path string) (domain.Parameters, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Parameters{}, fmt.Errorf("read parameter file: %w", err)
	}

	var params domain.Parameters
	if err := yaml.Unmarshal(data, &params); err != nil {
		return domain.Parameters{}, fmt.Errorf("parse parameter file: %w", err)
	}
	return params, nil
}

func printSimulationResult(results []domain.MonthSnapshot) {
	if jsonOutput {
		data, _ := json.MarshalIndent(results, "", "  ")
		fmt.Println(string(data))
		return
	}

	fmt.Printf("%-6s %16s %16s %14s %16s %12s %12s\n",
		"MONTH", "TOTAL", "CIRCULATING", "TEAM_UNLOCK", "PRIVATE_UNLOCK", "MINTED", "BURNED")
	for _, s := range results {
		fmt.Printf("%-6d %16.2f %16.2f %14.2f %16.2f %12.2f %12.2f\n",
			s.Month,
			s.TotalSupply,
			s.CirculatingSupply,
			s.UnlockedTeam,
			s.UnlockedPrivateSale,
			s.MintedTokens,
			s.BurnedTokens,
		)
	}
}
