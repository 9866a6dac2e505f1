package main

import (
	"fmt"
	"os"

	"github.com/msaleev/finsent"
)

// Run executes the classify command against a report or text file.
func (c *ClassifyCmd) Run(deps *Dependencies) error {
	text, err := os.ReadFile(c.Input)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	label, err := deps.Classifier.Classify(deps.Ctx, string(text))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", finsent.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Sentiment: %s\n", label)

	if c.Accession != "" {
		filing, err := deps.Catalog.FindFilingByAccession(deps.Ctx, c.Accession)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", finsent.ErrorMessage(err))
			return err
		}
		if err := deps.Catalog.UpdateFilingSentiment(deps.Ctx, filing.ID, label); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", finsent.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "Recorded for %s\n", c.Accession)
	}

	return nil
}
