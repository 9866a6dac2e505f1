package edgar

import (
	"context"
	"encoding/json"
	"sort"
	"strconv"
	"strings"

	"github.com/msaleev/finsent"
)

// DefaultSearchLimit caps company search results.
const DefaultSearchLimit = 10

// Ensure Directory implements finsent.CompanyDirectory at compile time.
var _ finsent.CompanyDirectory = (*Directory)(nil)

// Directory resolves tickers and company names to CIKs using the SEC
// company_tickers.json mapping. The mapping is fetched once per
// Directory and cached for the life of the process.
type Directory struct {
	client  *Client
	cached  []tickerEntry
	fetched bool
}

// tickerEntry mirrors one value of the company_tickers.json object.
type tickerEntry struct {
	CIK    json.Number `json:"cik_str"`
	Ticker string      `json:"ticker"`
	Title  string      `json:"title"`
}

// NewDirectory creates a Directory backed by the given client.
// If client is nil a default client is used.
func NewDirectory(client *Client) *Directory {
	if client == nil {
		client = NewClient()
	}
	return &Directory{client: client}
}

// SearchCompanies implements finsent.CompanyDirectory. Matching is
// case-insensitive substring over name and ticker; exact ticker
// matches sort to the front.
func (d *Directory) SearchCompanies(ctx context.Context, query string, limit int) ([]finsent.Company, error) {
	if query == "" {
		return nil, finsent.Errorf(finsent.EINVALID, "search query required")
	}
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	entries, err := d.load(ctx)
	if err != nil {
		return nil, err
	}

	upper := strings.ToUpper(query)
	var companies []finsent.Company
	for _, entry := range entries {
		name := strings.ToUpper(entry.Title)
		ticker := strings.ToUpper(entry.Ticker)
		if !strings.Contains(name, upper) && !strings.Contains(ticker, upper) {
			continue
		}

		cik := entry.CIK.String()
		if cik == "" || cik == "0" {
			continue
		}

		companies = append(companies, finsent.Company{
			CIK:    PadCIK(cik),
			Ticker: ticker,
			Name:   entry.Title,
		})
	}

	sort.SliceStable(companies, func(i, j int) bool {
		return (companies[i].Ticker == upper) && (companies[j].Ticker != upper)
	})

	if len(companies) > limit {
		companies = companies[:limit]
	}
	return companies, nil
}

// LookupCIK implements finsent.CompanyDirectory. Tickers are tried
// before company names, matching the most specific identifier first.
// Well-known tickers resolve from the built-in table without a
// network round trip.
func (d *Directory) LookupCIK(ctx context.Context, identifier string) (string, error) {
	if cik, err := LookupCommonCIK(strings.ToUpper(identifier)); err == nil {
		return cik, nil
	}

	companies, err := d.SearchCompanies(ctx, identifier, DefaultSearchLimit)
	if err != nil {
		return "", err
	}

	upper := strings.ToUpper(identifier)
	for _, company := range companies {
		if company.Ticker == upper {
			return company.CIK, nil
		}
	}
	if len(companies) > 0 {
		return companies[0].CIK, nil
	}
	return "", finsent.Errorf(finsent.ENOTFOUND, "no company matches %q", identifier)
}

// CompanyName implements finsent.CompanyDirectory via the submissions
// API.
func (d *Directory) CompanyName(ctx context.Context, cik string) (string, error) {
	return d.client.CompanyName(ctx, cik)
}

// load fetches and caches the ticker mapping.
func (d *Directory) load(ctx context.Context) ([]tickerEntry, error) {
	if d.fetched {
		return d.cached, nil
	}

	url := d.client.archivesBase + "/files/company_tickers.json"
	body, err := d.client.get(ctx, url, "application/json")
	if err != nil {
		return nil, err
	}

	// The mapping is an object keyed by array index, not a JSON array.
	var raw map[string]tickerEntry
	if err := json.Unmarshal([]byte(body), &raw); err != nil {
		return nil, finsent.Errorf(finsent.EINTERNAL, "failed to parse ticker mapping: %v", err)
	}

	keys := make([]int, 0, len(raw))
	byKey := make(map[int]tickerEntry, len(raw))
	for k, v := range raw {
		i, err := strconv.Atoi(k)
		if err != nil {
			continue
		}
		keys = append(keys, i)
		byKey[i] = v
	}
	sort.Ints(keys)

	entries := make([]tickerEntry, 0, len(keys))
	for _, k := range keys {
		entries = append(entries, byKey[k])
	}

	d.cached = entries
	d.fetched = true
	return entries, nil
}
