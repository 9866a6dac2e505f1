package edgar

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/beevik/etree"
	"github.com/msaleev/finsent"
)

// Ensure AtomSource implements finsent.FilingSource at compile time.
var _ finsent.FilingSource = (*AtomSource)(nil)

// AtomSource lists filings by scraping the browse-edgar Atom feed.
// It predates the submissions API and still works when that API is
// unavailable; FallbackSource wires it behind the Client.
type AtomSource struct {
	client *Client
}

// NewAtomSource creates an AtomSource backed by the given client.
// If client is nil a default client is used.
func NewAtomSource(client *Client) *AtomSource {
	if client == nil {
		client = NewClient()
	}
	return &AtomSource{client: client}
}

// FetchFilings implements finsent.FilingSource by querying one Atom
// feed per form type and downloading the listed submissions until the
// total reaches max.
func (s *AtomSource) FetchFilings(ctx context.Context, cik string, formTypes []string, max int) ([]*finsent.Filing, error) {
	if cik == "" {
		return nil, finsent.Errorf(finsent.EINVALID, "CIK required")
	}
	if max <= 0 {
		return nil, finsent.Errorf(finsent.EINVALID, "max filings must be positive")
	}
	if len(formTypes) == 0 {
		formTypes = []string{"10-Q"}
	}

	padded := PadCIK(cik)
	var filings []*finsent.Filing
	for _, formType := range formTypes {
		if len(filings) >= max {
			break
		}
		feed, err := s.fetchFeed(ctx, padded, formType, max)
		if err != nil {
			return nil, err
		}

		for _, entry := range feed.entries {
			if len(filings) >= max {
				break
			}
			if entry.accession == "" {
				continue
			}

			content, err := s.client.fetchSubmission(ctx, padded, entry.accession)
			if err != nil {
				if ctx.Err() != nil {
					return filings, ctx.Err()
				}
				continue
			}

			filingDate, _ := time.Parse("2006-01-02", entry.filingDate)
			filings = append(filings, &finsent.Filing{
				CIK:             padded,
				CompanyName:     feed.companyName,
				FormType:        entry.filingType,
				AccessionNumber: entry.accession,
				FilingDate:      filingDate,
				Content:         content,
				RetrievedAt:     time.Now().UTC(),
			})
		}
	}

	return filings, nil
}

// atomFeed holds the parts of a browse-edgar feed the source needs.
type atomFeed struct {
	companyName string
	entries     []atomEntry
}

type atomEntry struct {
	accession  string
	filingDate string
	filingType string
}

// fetchFeed retrieves and parses one browse-edgar Atom feed.
func (s *AtomSource) fetchFeed(ctx context.Context, paddedCIK, formType string, count int) (*atomFeed, error) {
	q := url.Values{}
	q.Set("action", "getcompany")
	q.Set("CIK", paddedCIK)
	q.Set("type", formType)
	q.Set("owner", "include")
	q.Set("count", fmt.Sprintf("%d", count))
	q.Set("output", "atom")
	feedURL := s.client.archivesBase + "/cgi-bin/browse-edgar?" + q.Encode()

	body, err := s.client.get(ctx, feedURL, "application/atom+xml,application/xml;q=0.9")
	if err != nil {
		return nil, err
	}
	return parseAtomFeed(body)
}

// parseAtomFeed extracts filing entries from a browse-edgar Atom
// document.
func parseAtomFeed(body string) (*atomFeed, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(body); err != nil {
		return nil, finsent.Errorf(finsent.EINTERNAL, "failed to parse atom feed: %v", err)
	}

	root := doc.Root()
	if root == nil || root.Tag != "feed" {
		return nil, finsent.Errorf(finsent.EINTERNAL, "atom feed missing root element")
	}

	feed := &atomFeed{}
	if name := root.FindElement("company-info/conformed-name"); name != nil {
		feed.companyName = name.Text()
	}

	for _, entryEl := range root.FindElements("entry") {
		content := entryEl.FindElement("content")
		if content == nil {
			continue
		}

		var entry atomEntry
		if el := content.FindElement("accession-number"); el != nil {
			entry.accession = el.Text()
		}
		if el := content.FindElement("filing-date"); el != nil {
			entry.filingDate = el.Text()
		}
		if el := content.FindElement("filing-type"); el != nil {
			entry.filingType = el.Text()
		}
		feed.entries = append(feed.entries, entry)
	}

	return feed, nil
}

// Ensure FallbackSource implements finsent.FilingSource at compile time.
var _ finsent.FilingSource = (*FallbackSource)(nil)

// FallbackSource tries a primary filing source and falls back to a
// secondary one when the primary fails outright. An empty result from
// the primary is a valid outcome and does not trigger the fallback.
type FallbackSource struct {
	Primary  finsent.FilingSource
	Fallback finsent.FilingSource
}

// FetchFilings implements finsent.FilingSource.
func (s *FallbackSource) FetchFilings(ctx context.Context, cik string, formTypes []string, max int) ([]*finsent.Filing, error) {
	filings, err := s.Primary.FetchFilings(ctx, cik, formTypes, max)
	if err == nil {
		return filings, nil
	}
	if ctx.Err() != nil {
		return nil, err
	}
	return s.Fallback.FetchFilings(ctx, cik, formTypes, max)
}
