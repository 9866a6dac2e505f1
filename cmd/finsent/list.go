package main

import (
	"fmt"

	"github.com/msaleev/finsent"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := finsent.FilingFilter{}
	if c.CIK != "" {
		filter.CIK = &c.CIK
	}
	if c.Form != "" {
		filter.FormType = &c.Form
	}

	filings, err := deps.Catalog.FindFilings(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", finsent.ErrorMessage(err))
		return err
	}

	if len(filings) == 0 {
		fmt.Fprintln(deps.Stdout, "No filings cataloged. Use 'finsent fetch' to download some.")
		return nil
	}

	for _, filing := range filings {
		date := ""
		if !filing.FilingDate.IsZero() {
			date = filing.FilingDate.Format("2006-01-02")
		}
		sentiment := filing.Sentiment
		if sentiment == "" {
			sentiment = "-"
		}
		fmt.Fprintf(deps.Stdout, "%s  %-6s  %s  %-30s  %s\n",
			filing.AccessionNumber, filing.FormType, date, filing.CompanyName, sentiment)
	}

	return nil
}
