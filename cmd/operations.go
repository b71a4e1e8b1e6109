/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/orbit-sync/orbitspec/internal/models"
	"github.com/orbit-sync/orbitspec/internal/openapi"
	"github.com/spf13/cobra"
)

var (
	filter string
	tags   []string

	yellow = color.New(color.FgYellow).SprintFunc()
)

// operationsCmd represents the operations command
var operationsCmd = &cobra.Command{
	Use:   "operations [openapi-spec-file]",
	Short: "List the operations the spec document declares",
	Long: `List every path+method operation the OpenAPI document declares, with its
operation ID and tags. Useful for eyeballing the surface the contract checks
cover.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runOperations,
}

func runOperations(cmd *cobra.Command, args []string) {
	specFile := resolveSpecFile(args)

	p, err := openapi.ParseFile(specFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing OpenAPI file: %v\n", err)
		os.Exit(1)
	}

	operations, err := p.GetOperations()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error getting operations: %v\n", err)
		os.Exit(1)
	}

	filtered := filterOperations(operations, filter, tags)
	if len(filtered) == 0 {
		fmt.Println("No operations found matching the criteria")
		return
	}

	for _, op := range filtered {
		line := fmt.Sprintf("%-7s %s", op.Method, op.Path)
		if op.OperationID != "" {
			line += fmt.Sprintf("  (%s)", op.OperationID)
		}
		if len(op.Tags) > 0 {
			line += fmt.Sprintf("  [%s]", strings.Join(op.Tags, ", "))
		}
		if op.Deprecated {
			line += "  " + yellow("deprecated")
		}
		fmt.Println(line)
	}
}

func filterOperations(operations []models.Operation, filterStr string, tagFilters []string) []models.Operation {
	var filtered []models.Operation

	for _, op := range operations {
		// Filter by path pattern or operation ID
		if filterStr != "" {
			if !strings.Contains(op.Path, filterStr) && !strings.Contains(op.OperationID, filterStr) {
				continue
			}
		}

		// Filter by tags
		if len(tagFilters) > 0 {
			found := false
			for _, filterTag := range tagFilters {
				for _, opTag := range op.Tags {
					if opTag == filterTag {
						found = true
						break
					}
				}
				if found {
					break
				}
			}
			if !found {
				continue
			}
		}

		filtered = append(filtered, op)
	}

	return filtered
}

func init() {
	rootCmd.AddCommand(operationsCmd)

	operationsCmd.Flags().StringVar(&filter, "filter", "", "Filter operations by path pattern or operation ID")
	operationsCmd.Flags().StringSliceVar(&tags, "tags", []string{}, "Filter by OpenAPI tags (can be specified multiple times)")
}
