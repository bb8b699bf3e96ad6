// Package printer holds the small set of output helpers shared by CLI
// commands.
package printer

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/olekukonko/tablewriter"
)

// Output is where the helpers write. When nil they write to os.Stdout as it
// is at the time of the call.
var Output io.Writer

func output() io.Writer {
	if Output == nil {
		return os.Stdout
	}
	return Output
}

func PrintInfo(msg string) {
	fmt.Fprintf(output(), "→ %s\n", msg)
}

func PrintSuccess(msg string) {
	fmt.Fprintf(output(), "✓ %s\n", msg)
}

func PrintWarning(msg string) {
	fmt.Fprintf(output(), "! %s\n", msg)
}

// PrintJSON writes v as indented JSON.
func PrintJSON(v any) error {
	enc := json.NewEncoder(output())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// PrintTable renders rows under header. Rows shorter than the header are
// padded with empty cells.
func PrintTable(header []string, rows [][]string) error {
	table := tablewriter.NewWriter(output())
	table.Header(header)
	for _, row := range rows {
		for len(row) < len(header) {
			row = append(row, "")
		}
		if err := table.Append(row); err != nil {
			return err
		}
	}
	return table.Render()
}
