package main

import (
	"fmt"
	"strings"

	"github.com/msaleev/finsent/edgar"
)

// Run executes the companies command, printing the built-in ticker
// table.
func (c *CompaniesCmd) Run(deps *Dependencies) error {
	fmt.Fprintln(deps.Stdout, "Common Company Tickers and CIKs:")
	fmt.Fprintln(deps.Stdout, strings.Repeat("=", 40))
	for _, company := range edgar.CommonCompanies() {
		fmt.Fprintf(deps.Stdout, "%-8s -> %s  %s\n", company.Ticker, company.CIK, company.Name)
	}
	return nil
}
