// Package main generates docs/CLI.md from the ecs-find-tasks command tree.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/runvoy/ecs-find-tasks/cmd/ecs-find-tasks/cmd"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

func main() {
	var outFile string
	flag.StringVar(&outFile, "out", "./docs/CLI.md", "output file for generated markdown")
	flag.Parse()

	if outFile == "" {
		log.Fatal("error: output file is required")
	}

	if err := generateCLIDocs(outFile); err != nil {
		log.Fatalf("error: %s", err)
	}
}

func generateCLIDocs(outFile string) error {
	root := cmd.RootCmd()
	root.DisableAutoGenTag = true

	var buf bytes.Buffer
	buf.WriteString("# ecs-find-tasks CLI Documentation\n\n")
	if err := writeCommand(&buf, root); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(outFile), 0o750); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	if err := os.WriteFile(filepath.Clean(outFile), buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}

	log.Printf("✅ Successfully generated CLI documentation in %s", outFile)
	return nil
}

// writeCommand appends the markdown of c and its subcommands, without the "SEE ALSO" sections.
func writeCommand(buf *bytes.Buffer, c *cobra.Command) error {
	if !c.IsAvailableCommand() && c.HasParent() {
		return nil
	}

	var page bytes.Buffer
	if err := doc.GenMarkdown(c, &page); err != nil {
		return fmt.Errorf("generating markdown for %s: %w", c.CommandPath(), err)
	}

	markdown := page.String()
	if i := strings.Index(markdown, "### SEE ALSO"); i >= 0 {
		markdown = markdown[:i]
	}
	buf.WriteString(strings.TrimRight(markdown, "\n") + "\n\n")

	subcommands := c.Commands()
	slices.SortFunc(subcommands, func(a, b *cobra.Command) int {
		return strings.Compare(a.Name(), b.Name())
	})
	for _, sub := range subcommands {
		if err := writeCommand(buf, sub); err != nil {
			return err
		}
	}
	return nil
}
