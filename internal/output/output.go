// Package output provides formatted terminal output utilities.
// It includes colored status lines for the CLI and rendering of lookup results.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/runvoy/ecs-find-tasks/internal/constants"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

var (
	// Colors and styles
	green  = color.New(color.FgGreen)
	red    = color.New(color.FgRed)
	yellow = color.New(color.FgYellow)
	cyan   = color.New(color.FgCyan)
	gray   = color.New(color.FgHiBlack)
	bold   = color.New(color.Bold)

	// Stdout is the output writer for results (can be overridden for testing).
	Stdout io.Writer = os.Stdout
	// Stderr is the output writer for status lines (can be overridden for testing).
	Stderr io.Writer = os.Stderr
)

func init() {
	if os.Getenv("NO_COLOR") != "" || !isTerminal(os.Stderr) {
		color.NoColor = true
	}
}

// Successf prints a success message with a checkmark (to stderr)
// Example: ✓ Found 2 matching tasks
func Successf(format string, a ...any) {
	_, _ = fmt.Fprintf(Stderr, green.Sprint("✓")+" "+format+"\n", a...)
}

// Infof prints an informational message with an arrow (to stderr)
// Example: → Listing tasks in cluster default...
func Infof(format string, a ...any) {
	_, _ = fmt.Fprintf(Stderr, cyan.Sprint("→")+" "+format+"\n", a...)
}

// Warningf prints a warning message with a warning symbol (to stderr)
// Example: ⚠ No tags given, nothing can match
func Warningf(format string, a ...any) {
	_, _ = fmt.Fprintf(Stderr, yellow.Sprint("⚠")+" "+format+"\n", a...)
}

// Errorf prints an error message with an X symbol (to stderr)
// Example: ✗ failed to find tasks in ECS: ECS.ListTasks failed (ClusterNotFoundException)
func Errorf(format string, a ...any) {
	_, _ = fmt.Fprintf(Stderr, red.Sprint("✗")+" "+format+"\n", a...)
}

// Header prints a section header with a separator line (to stderr)
func Header(text string) {
	_, _ = fmt.Fprintln(Stderr)
	_, _ = fmt.Fprintln(Stderr, bold.Sprint(text))
	_, _ = fmt.Fprintln(Stderr, gray.Sprint(strings.Repeat("━", constants.HeaderSeparatorLength)))
}

// KeyValue prints a key-value pair with indentation (to stderr)
// Example:   Cluster: default
func KeyValue(key, value string) {
	_, _ = fmt.Fprintf(Stderr, "  %s: %s\n", gray.Sprint(key), value)
}

// Bold prints text in bold
func Bold(text string) string {
	return bold.Sprint(text)
}

// Render writes v to w in the given format.
// The text format writes items joined by sep on a single line; json and yaml encode v.
func Render(w io.Writer, format string, items []string, sep string, v any) error {
	switch format {
	case constants.FormatText, "":
		_, err := fmt.Fprintln(w, strings.Join(items, sep))
		return err
	case constants.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case constants.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

func isTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		fileInfo, err := f.Stat()
		if err != nil {
			return false
		}
		return (fileInfo.Mode() & os.ModeCharDevice) != 0
	}
	return false
}
