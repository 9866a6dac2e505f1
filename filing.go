package finsent

import (
	"context"
	"time"
)

// Filing represents a single retrieved SEC EDGAR submission.
//
// Content holds the raw full-submission text (SGML envelope, embedded
// HTML/XBRL documents) exactly as downloaded. It is consumed once by
// the extraction pipeline and is not persisted to the catalog; only
// metadata and the content hash survive.
type Filing struct {
	ID              string    `json:"id"`
	CIK             string    `json:"cik"`
	CompanyName     string    `json:"companyName"`
	FormType        string    `json:"formType"`
	AccessionNumber string    `json:"accessionNumber"`
	FilingDate      time.Time `json:"filingDate"`
	PrimaryDocument string    `json:"primaryDocument"`
	Content         string    `json:"-"`
	ContentHash     string    `json:"contentHash"`
	Sentiment       string    `json:"sentiment"`
	RetrievedAt     time.Time `json:"retrievedAt"`
}

// Validate returns an error if the filing contains invalid fields.
func (f *Filing) Validate() error {
	if f.CIK == "" {
		return Errorf(EINVALID, "filing CIK required")
	}
	if f.AccessionNumber == "" {
		return Errorf(EINVALID, "filing accession number required")
	}
	if f.FormType == "" {
		return Errorf(EINVALID, "filing form type required")
	}
	return nil
}

// SourceLabel returns the identifier used in report headers and
// report file names: "{cik}_{company}_{form}_{date}" with spaces in
// the company name replaced by underscores.
func (f *Filing) SourceLabel() string {
	name := f.CompanyName
	if name == "" {
		name = "Unknown_Company"
	}
	label := f.CIK + "_" + underscored(name) + "_" + f.FormType
	if !f.FilingDate.IsZero() {
		label += "_" + f.FilingDate.Format("2006-01-02")
	}
	return label
}

func underscored(s string) string {
	b := []byte(s)
	for i := range b {
		if b[i] == ' ' {
			b[i] = '_'
		}
	}
	return string(b)
}

// FilingSource retrieves filings from SEC EDGAR.
// Implementations hide transport, rate limiting, and retry concerns.
type FilingSource interface {
	// FetchFilings downloads up to max filings in total across the
	// given form types for a company, most recent first. CIK may be
	// any numeric string; implementations zero-pad it to ten digits.
	// An empty result is a valid outcome, not an error.
	FetchFilings(ctx context.Context, cik string, formTypes []string, max int) ([]*Filing, error)
}

// Company identifies a registrant in the SEC EDGAR database.
type Company struct {
	CIK    string `json:"cik"`
	Ticker string `json:"ticker"`
	Name   string `json:"name"`
}

// CompanyDirectory resolves tickers and company names to CIKs.
type CompanyDirectory interface {
	// SearchCompanies returns companies whose name or ticker matches
	// the query, at most limit results. Exact ticker matches sort first.
	SearchCompanies(ctx context.Context, query string, limit int) ([]Company, error)

	// LookupCIK resolves a ticker or company name to a ten-digit CIK.
	// Returns ENOTFOUND if no company matches.
	LookupCIK(ctx context.Context, identifier string) (string, error)

	// CompanyName returns the registrant name for a CIK.
	CompanyName(ctx context.Context, cik string) (string, error)
}
