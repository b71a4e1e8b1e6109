package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/orbit-sync/orbitspec/internal/models"
)

// Format represents the output format type
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

// ExportCheckSummary exports check results to the specified format
func ExportCheckSummary(summary models.CheckSummary, format Format, filePath string) error {
	w, closer, err := getWriter(filePath)
	if err != nil {
		return err
	}
	if closer != nil {
		defer closer.Close()
	}

	switch format {
	case FormatJSON:
		return exportJSON(w, summary)
	case FormatCSV:
		return exportCSV(w, summary)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// getWriter returns an io.Writer for output (stdout or file)
func getWriter(filePath string) (io.Writer, io.Closer, error) {
	if filePath == "" {
		return os.Stdout, nil, nil
	}

	f, err := os.Create(filePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, f, nil
}

// exportJSON exports check results as JSON
func exportJSON(w io.Writer, summary models.CheckSummary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(summary)
}

// exportCSV exports check results as CSV, one row per check with the
// violation messages joined into a single column.
func exportCSV(w io.Writer, summary models.CheckSummary) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"id", "description", "passed", "violations"}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, r := range summary.Results {
		var messages []string
		for _, v := range r.Violations {
			messages = append(messages, fmt.Sprintf("%s: %s", v.Field, v.Message))
		}
		row := []string{
			r.ID,
			r.Description,
			strconv.FormatBool(r.Passed),
			strings.Join(messages, "; "),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	return cw.Error()
}

// ParseFormat parses a string into a Format, returning error if invalid
func ParseFormat(s string) (Format, error) {
	switch s {
	case "json":
		return FormatJSON, nil
	case "csv":
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("invalid format '%s': must be 'json' or 'csv'", s)
	}
}
