package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"tokenomics-lab/internal/environment"
)

// envFlags holds the flags shared by the env subcommands.
type envFlags struct {
	path string
}

// NewEnvCommand creates the "env" command group for descriptor checks.
func NewEnvCommand() *cobra.Command {
	flags := &envFlags{}

	cmd := &cobra.Command{
		Use:   "env",
		Short: "Inspect the development-environment descriptor",
	}

	cmd.PersistentFlags().StringVar(&flags.path, "path", "",
		"Descriptor path (default: discover under the current directory)")

	cmd.AddCommand(newEnvVerifyCommand(flags))
	cmd.AddCommand(newEnvPortsCommand(flags))

	return cmd
}

func loadDescriptor(flags *envFlags) (*environment.Descriptor, error) {
	path := flags.path
	if path == "" {
		found, err := environment.Find(".")
		if err != nil {
			return nil, err
		}
		path = found
	}
	return environment.Load(path)
}

func newEnvVerifyCommand(flags *envFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check the descriptor against the lab's expected environment",
		Long: `Check the development-environment descriptor against the facts the lab
expects: a Python 3.10 base image, a pinned Node.js feature, and the two
labeled forwarded ports.

Exits 1 when the descriptor has drifted.`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := loadDescriptor(flags)
			if err != nil {
				return err
			}

			findings := environment.Verify(d)
			printVerifyResult(findings)
			if len(findings) > 0 {
				return fmt.Errorf("environment descriptor has %d finding(s)", len(findings))
			}
			return nil
		},
	}
}

func printVerifyResult(findings []environment.Finding) {
	if jsonOutput {
		// An empty slice keeps the JSON output as [] instead of null.
		result := struct {
			Findings []environment.Finding `json:"findings"`
		}{Findings: make([]environment.Finding, 0, len(findings))}
		result.Findings = append(result.Findings, findings...)
		data, _ := json.MarshalIndent(result, "", "  ")
		fmt.Println(string(data))
		return
	}

	if len(findings) == 0 {
		fmt.Println("environment descriptor is consistent")
		return
	}
	for _, f := range findings {
		fmt.Printf("%s: %s\n", f.Check, f.Detail)
	}
}

func newEnvPortsCommand(flags *envFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "ports",
		Short: "List the descriptor's forwarded ports",

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := loadDescriptor(flags)
			if err != nil {
				return err
			}
			printPortsResult(d.Ports())
			return nil
		},
	}
}

func printPortsResult(ports []environment.Port) {
	if jsonOutput {
		result := struct {
			Ports []environment.Port `json:"ports"`
		}{Ports: make([]environment.Port, 0, len(ports))}
		result.Ports = append(result.Ports, ports...)
		data, _ := json.MarshalIndent(result, "", "  ")
		fmt.Println(string(data))
		return
	}

	if len(ports) == 0 {
		fmt.Println("No forwarded ports declared.")
		return
	}
	fmt.Printf("%-8s %-20s %s\n", "PORT", "LABEL", "ON_AUTO_FORWARD")
	for _, p := range ports {
		label := p.Label
		if label == "" {
			label = "-"
		}
		action := p.OnAutoForward
		if action == "" {
			action = "-"
		}
		fmt.Printf("%-8d %-20s %s\n", p.Number, label, action)
	}
}
