package edgar

import (
	"sort"

	"github.com/msaleev/finsent"
)

// commonCompanies maps well-known tickers to their CIKs. The table
// saves a network round trip for the companies people ask about most;
// anything else goes through Directory.
var commonCompanies = map[string]finsent.Company{
	"AAPL":  {CIK: "0000320193", Ticker: "AAPL", Name: "Apple Inc."},
	"AMD":   {CIK: "0000002488", Ticker: "AMD", Name: "Advanced Micro Devices, Inc."},
	"AMZN":  {CIK: "0001018724", Ticker: "AMZN", Name: "Amazon.com, Inc."},
	"GOOGL": {CIK: "0001652044", Ticker: "GOOGL", Name: "Alphabet Inc."},
	"INTC":  {CIK: "0000050863", Ticker: "INTC", Name: "Intel Corporation"},
	"JNJ":   {CIK: "0000200406", Ticker: "JNJ", Name: "Johnson & Johnson"},
	"JPM":   {CIK: "0000019617", Ticker: "JPM", Name: "JPMorgan Chase & Co."},
	"META":  {CIK: "0001326801", Ticker: "META", Name: "Meta Platforms, Inc."},
	"MSFT":  {CIK: "0000789019", Ticker: "MSFT", Name: "Microsoft Corporation"},
	"NFLX":  {CIK: "0001065280", Ticker: "NFLX", Name: "Netflix, Inc."},
	"NVDA":  {CIK: "0001045810", Ticker: "NVDA", Name: "NVIDIA Corporation"},
	"TSLA":  {CIK: "0001318605", Ticker: "TSLA", Name: "Tesla, Inc."},
	"WMT":   {CIK: "0000104169", Ticker: "WMT", Name: "Walmart Inc."},
	"XOM":   {CIK: "0000034088", Ticker: "XOM", Name: "Exxon Mobil Corporation"},
}

// CommonCompanies returns the built-in ticker table sorted by ticker.
func CommonCompanies() []finsent.Company {
	companies := make([]finsent.Company, 0, len(commonCompanies))
	for _, company := range commonCompanies {
		companies = append(companies, company)
	}
	sort.Slice(companies, func(i, j int) bool {
		return companies[i].Ticker < companies[j].Ticker
	})
	return companies
}

// LookupCommonCIK resolves a ticker against the built-in table.
// Returns ENOTFOUND for tickers not in the table.
func LookupCommonCIK(ticker string) (string, error) {
	if company, ok := commonCompanies[ticker]; ok {
		return company.CIK, nil
	}
	return "", finsent.Errorf(finsent.ENOTFOUND, "ticker %q is not in the built-in table", ticker)
}
