/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/orbit-sync/orbitspec/internal/contract"
	"github.com/orbit-sync/orbitspec/internal/models"
	"github.com/orbit-sync/orbitspec/internal/openapi"
	"github.com/orbit-sync/orbitspec/internal/output"
	"github.com/orbit-sync/orbitspec/internal/specdoc"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// defaultSpecFile is the version-controlled Orbit API draft.
const defaultSpecFile = "docs/openapi/backend-v1.yaml"

var (
	checkIDs     []string
	verbose      bool
	outputFormat string
	outputFile   string

	// Color helpers
	green = color.New(color.FgGreen, color.Bold).SprintFunc()
	red   = color.New(color.FgRed, color.Bold).SprintFunc()
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check [openapi-spec-file]",
	Short: "Run the contract checks against the spec document",
	Long: `Run the contract check battery against the Orbit API's OpenAPI document.

Each check is independent: it inspects one structural property of the
document (required paths, enums, examples, response codes, headers,
references) and reports every violation it finds. A failing check never
affects its siblings.

Examples:
  # Check the versioned draft
  orbitspec check

  # Check another document
  orbitspec check build/openapi.yaml

  # Run a subset of checks
  orbitspec check --check required-paths --check metadata

  # Export results to JSON
  orbitspec check -o json --output-file results.json`,
	Args: cobra.MaximumNArgs(1),
	Run:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) {
	specFile := resolveSpecFile(args)

	// The document must at least be valid OpenAPI before the contract
	// battery runs over the raw tree.
	if _, err := openapi.ParseFile(specFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing OpenAPI file: %v\n", err)
		os.Exit(1)
	}

	doc, err := specdoc.Load(specFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading spec document: %v\n", err)
		os.Exit(1)
	}

	checks, err := selectChecks(checkIDs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	runner := contract.NewRunner(doc)

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	summary := runner.RunAll(checks, func(event contract.CheckEvent) {
		switch event.Type {
		case contract.EventStarting:
			s.Suffix = fmt.Sprintf(" [%d/%d] %s", event.Index+1, event.Total, event.Check.ID)
			s.Start()
		case contract.EventCompleted:
			s.Stop()
		}
	})

	if outputFormat != "" || outputFile != "" {
		format := output.FormatJSON
		if outputFormat != "" {
			format, err = output.ParseFormat(outputFormat)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
		}
		if err := output.ExportCheckSummary(summary, format, outputFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error exporting results: %v\n", err)
			os.Exit(1)
		}
	} else {
		displaySummary(summary, verbose)
	}

	if summary.Failed > 0 {
		os.Exit(1)
	}
}

// resolveSpecFile picks the document to check: the positional argument wins,
// then the spec_file config key, then the versioned default.
func resolveSpecFile(args []string) string {
	if len(args) == 1 {
		return args[0]
	}
	if v := viper.GetString("spec_file"); v != "" {
		return v
	}
	return defaultSpecFile
}

func selectChecks(ids []string) ([]contract.Check, error) {
	if len(ids) == 0 {
		return contract.All(), nil
	}
	var checks []contract.Check
	for _, id := range ids {
		c, ok := contract.Find(id)
		if !ok {
			return nil, fmt.Errorf("unknown check: %s", id)
		}
		checks = append(checks, c)
	}
	return checks, nil
}

func displaySummary(summary models.CheckSummary, verbose bool) {
	fmt.Println("\n=== Contract Checks ===")
	fmt.Printf("Total Checks: %d\n", summary.TotalChecks)
	fmt.Printf("Passed: %d\n", summary.Passed)
	fmt.Printf("Failed: %d\n", summary.Failed)
	fmt.Println()

	for _, result := range summary.Results {
		status := green("✓ PASS")
		if !result.Passed {
			status = red("✗ FAIL")
		}
		fmt.Printf("%s %s\n", status, result.ID)
		if verbose {
			fmt.Printf("  %s\n", result.Description)
		}
		for _, v := range result.Violations {
			fmt.Printf("  - %s: %s\n", v.Field, v.Message)
		}
	}
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringSliceVar(&checkIDs, "check", []string{}, "Run only the named checks (can be specified multiple times)")
	checkCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show check descriptions in the output")
	checkCmd.Flags().StringVarP(&outputFormat, "output", "o", "", "Export format: json or csv")
	checkCmd.Flags().StringVar(&outputFile, "output-file", "", "Export file path (default stdout)")
}
