package main

import (
	"fmt"

	"github.com/msaleev/finsent"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	companies, err := deps.Directory.SearchCompanies(deps.Ctx, c.Query, c.Limit)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", finsent.ErrorMessage(err))
		return err
	}

	if len(companies) == 0 {
		fmt.Fprintln(deps.Stdout, "No companies found.")
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Found %d companies:\n", len(companies))
	for i, company := range companies {
		fmt.Fprintf(deps.Stdout, "%2d. %s\n    Ticker: %s\n    CIK: %s\n",
			i+1, company.Name, company.Ticker, company.CIK)
	}

	fmt.Fprintln(deps.Stdout, "\nUse 'finsent fetch --cik <CIK>' to download filings.")
	return nil
}
