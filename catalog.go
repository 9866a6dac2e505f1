package finsent

import (
	"context"
	"time"
)

// SectionRecord is a catalog row for one extracted narrative section.
type SectionRecord struct {
	ID        string    `json:"id"`
	FilingID  string    `json:"filingId"`
	Position  int       `json:"position"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// Validate returns an error if the record contains invalid fields.
func (r *SectionRecord) Validate() error {
	if r.FilingID == "" {
		return Errorf(EINVALID, "section filing ID required")
	}
	if r.Content == "" {
		return Errorf(EINVALID, "section content required")
	}
	if r.Position < 1 {
		return Errorf(EINVALID, "section position must be 1-based")
	}
	return nil
}

// FilingFilter represents a filter for FindFilings.
type FilingFilter struct {
	ID              *string `json:"id"`
	CIK             *string `json:"cik"`
	FormType        *string `json:"formType"`
	AccessionNumber *string `json:"accessionNumber"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// CatalogService records processed filings and their extracted
// sections so repeated runs can skip work already done.
type CatalogService interface {
	// CreateFiling records a processed filing. The implementation
	// assigns the ID and content hash.
	CreateFiling(ctx context.Context, filing *Filing) error

	// FindFilingByAccession retrieves a filing by accession number.
	// Returns ENOTFOUND if the filing has not been processed.
	FindFilingByAccession(ctx context.Context, accession string) (*Filing, error)

	// FindFilings retrieves filings matching the filter, most recent
	// filing date first.
	FindFilings(ctx context.Context, filter FilingFilter) ([]*Filing, error)

	// UpdateFilingSentiment records the classifier's label for a
	// processed filing. Returns ENOTFOUND if the filing is unknown.
	UpdateFilingSentiment(ctx context.Context, id, sentiment string) error

	// CreateSection records one extracted section for a filing.
	CreateSection(ctx context.Context, record *SectionRecord) error

	// FindSectionsByFiling retrieves a filing's sections ordered by
	// position.
	FindSectionsByFiling(ctx context.Context, filingID string) ([]*SectionRecord, error)

	// DeleteFiling removes a filing and all associated sections.
	// Returns ENOTFOUND if the filing does not exist.
	DeleteFiling(ctx context.Context, id string) error
}
