package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/msaleev/finsent"
)

// Run executes the extract command against a local filing file.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	raw, err := os.ReadFile(c.Input)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	body := finsent.IsolateDocument(string(raw))
	cleaned := deps.Stripper.Strip(body)
	sections := finsent.ExtractNarrative(cleaned)

	if len(sections) == 0 {
		fmt.Fprintln(deps.Stdout, "No narrative sections found in the file.")
		return nil
	}

	output := c.Output
	if output == "" {
		output = strings.TrimSuffix(c.Input, ".txt") + "_converted.txt"
	}

	report := finsent.FormatReport(sections, c.Input)
	if err := os.WriteFile(output, []byte(report), 0644); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Extracted %d narrative sections to %s\n", len(sections), output)
	return nil
}
