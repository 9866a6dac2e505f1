// Package edgar provides SEC EDGAR implementations of
// finsent.FilingSource and finsent.CompanyDirectory.
//
// SEC access guidelines require a descriptive User-Agent and modest
// request rates; every request in this package goes through a shared
// token-bucket limiter.
package edgar

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/msaleev/finsent"
	"golang.org/x/time/rate"
)

// Default endpoints. The bases are configurable so tests can point
// the client at a local server.
const (
	DefaultSubmissionsBase = "https://data.sec.gov"
	DefaultArchivesBase    = "https://www.sec.gov"

	// DefaultUserAgent identifies this tool per SEC fair-access rules.
	DefaultUserAgent = "Financial NLP Engine (msaleev@nd.edu)"

	// DefaultRate is requests per second against SEC hosts. SEC allows
	// up to 10 req/s; stay well under it.
	DefaultRate = 2.0

	// DefaultTimeout is the per-request timeout. Full submissions run
	// to tens of megabytes.
	DefaultTimeout = 60 * time.Second
)

// Ensure Client implements finsent.FilingSource at compile time.
var _ finsent.FilingSource = (*Client)(nil)

// Client retrieves company filings through the EDGAR submissions API
// and the full-text archives.
type Client struct {
	httpClient      *http.Client
	limiter         *rate.Limiter
	userAgent       string
	submissionsBase string
	archivesBase    string
	timeout         time.Duration
	retryDelays     []time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithUserAgent sets the User-Agent sent to SEC hosts.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// WithRate sets the request rate limit in requests per second.
func WithRate(rps float64) Option {
	return func(c *Client) { c.limiter = rate.NewLimiter(rate.Limit(rps), 1) }
}

// WithSubmissionsBase overrides the submissions API base URL.
func WithSubmissionsBase(base string) Option {
	return func(c *Client) { c.submissionsBase = strings.TrimSuffix(base, "/") }
}

// WithArchivesBase overrides the archives base URL.
func WithArchivesBase(base string) Option {
	return func(c *Client) { c.archivesBase = strings.TrimSuffix(base, "/") }
}

// WithRetryDelays overrides the backoff delays between download
// attempts. Useful for testing without waiting for real delays.
func WithRetryDelays(delays []time.Duration) Option {
	return func(c *Client) { c.retryDelays = delays }
}

// NewClient creates a new EDGAR client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		limiter:         rate.NewLimiter(rate.Limit(DefaultRate), 1),
		userAgent:       DefaultUserAgent,
		submissionsBase: DefaultSubmissionsBase,
		archivesBase:    DefaultArchivesBase,
		timeout:         DefaultTimeout,
		retryDelays:     DefaultRetryDelays(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.httpClient = &http.Client{Timeout: c.timeout}
	return c
}

// companyInfo mirrors the submissions API response. Filing attributes
// arrive as parallel arrays.
type companyInfo struct {
	CIK     string `json:"cik"`
	Name    string `json:"name"`
	Filings struct {
		Recent recentFilings `json:"recent"`
	} `json:"filings"`
}

type recentFilings struct {
	AccessionNumber []string `json:"accessionNumber"`
	FilingDate      []string `json:"filingDate"`
	Form            []string `json:"form"`
	PrimaryDocument []string `json:"primaryDocument"`
}

// PadCIK zero-pads a CIK to the ten digits EDGAR endpoints expect.
func PadCIK(cik string) string {
	return fmt.Sprintf("%010s", strings.TrimLeft(cik, "0"))
}

// FetchFilings implements finsent.FilingSource. It lists recent
// filings through the submissions API, filters by form type, and
// downloads the full submission text for up to max filings. A filing
// whose download fails is skipped; the remainder is still returned.
func (c *Client) FetchFilings(ctx context.Context, cik string, formTypes []string, max int) ([]*finsent.Filing, error) {
	if cik == "" {
		return nil, finsent.Errorf(finsent.EINVALID, "CIK required")
	}
	if max <= 0 {
		return nil, finsent.Errorf(finsent.EINVALID, "max filings must be positive")
	}

	padded := PadCIK(cik)
	info, err := c.fetchCompanyInfo(ctx, padded)
	if err != nil {
		return nil, err
	}

	wanted := make(map[string]bool, len(formTypes))
	for _, ft := range formTypes {
		wanted[ft] = true
	}

	recent := info.Filings.Recent
	var filings []*finsent.Filing
	for i := range recent.AccessionNumber {
		if len(formTypes) > 0 && !wanted[recent.Form[i]] {
			continue
		}
		if len(filings) >= max {
			break
		}

		content, err := c.fetchSubmission(ctx, padded, recent.AccessionNumber[i])
		if err != nil {
			if ctx.Err() != nil {
				return filings, ctx.Err()
			}
			continue
		}

		filingDate, _ := time.Parse("2006-01-02", recent.FilingDate[i])
		filings = append(filings, &finsent.Filing{
			CIK:             padded,
			CompanyName:     info.Name,
			FormType:        recent.Form[i],
			AccessionNumber: recent.AccessionNumber[i],
			FilingDate:      filingDate,
			PrimaryDocument: recent.PrimaryDocument[i],
			Content:         content,
			RetrievedAt:     time.Now().UTC(),
		})
	}

	return filings, nil
}

// CompanyName returns the registrant name for a CIK.
func (c *Client) CompanyName(ctx context.Context, cik string) (string, error) {
	info, err := c.fetchCompanyInfo(ctx, PadCIK(cik))
	if err != nil {
		return "", err
	}
	return info.Name, nil
}

// fetchCompanyInfo retrieves the submissions document for a padded CIK.
func (c *Client) fetchCompanyInfo(ctx context.Context, paddedCIK string) (*companyInfo, error) {
	url := fmt.Sprintf("%s/submissions/CIK%s.json", c.submissionsBase, paddedCIK)
	body, err := c.get(ctx, url, "application/json")
	if err != nil {
		return nil, err
	}

	var info companyInfo
	if err := json.Unmarshal([]byte(body), &info); err != nil {
		return nil, finsent.Errorf(finsent.EINTERNAL, "failed to parse submissions response: %v", err)
	}
	return &info, nil
}

// fetchSubmission downloads the full submission text for an accession
// number, retrying transient failures with backoff.
func (c *Client) fetchSubmission(ctx context.Context, paddedCIK, accession string) (string, error) {
	// Archives directory names use the accession number without dashes;
	// the document itself keeps them.
	dir := strings.ReplaceAll(accession, "-", "")
	url := fmt.Sprintf("%s/Archives/edgar/data/%s/%s/%s.txt", c.archivesBase, paddedCIK, dir, accession)

	return FetchWithRetryDelays(ctx, func(ctx context.Context) (string, error) {
		return c.get(ctx, url, "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	}, c.retryDelays)
}

// get performs a rate-limited GET with the required SEC headers.
func (c *Client) get(ctx context.Context, url, accept string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", accept)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", finsent.Errorf(finsent.EUNAVAILABLE, "SEC request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", finsent.Errorf(finsent.EUNAVAILABLE, "SEC returned HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}
