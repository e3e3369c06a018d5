package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/Adi-cmrec/lenslink/internal/api"
)

// ANSI color helpers for terminal output.

func colorGreen(s string) string  { return "\033[32m" + s + "\033[0m" }
func colorYellow(s string) string { return "\033[33m" + s + "\033[0m" }
func colorRed(s string) string    { return "\033[31m" + s + "\033[0m" }

// newTable returns a tabwriter for aligned column output.
func newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
}

func printTableHeader(w *tabwriter.Writer, cols ...string) {
	fmt.Fprintln(w, strings.Join(cols, "\t"))
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printError renders a gateway failure as a dismissible one-line message.
// No failure is fatal; the caller decides whether to abort the command.
func printError(err error) {
	if apiErr, ok := api.IsAPIError(err); ok {
		fmt.Fprintf(os.Stderr, "%s %s\n", colorRed("✗"), apiErr.Detail)
		return
	}
	fmt.Fprintf(os.Stderr, "%s %v\n", colorRed("✗"), err)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}

// formatAvailability renders the availability flag the way the directory
// listing shows it.
func formatAvailability(available bool) string {
	if available {
		return colorGreen("✓ Available")
	}
	return colorRed("✗ Not Available")
}

// formatSkills renders up to three skills with a "+N more" suffix for the
// list view.
func formatSkills(skills []string) string {
	if len(skills) <= 3 {
		return strings.Join(skills, ", ")
	}
	return fmt.Sprintf("%s +%d more", strings.Join(skills[:3], ", "), len(skills)-3)
}
