package mock

import (
	"context"

	"github.com/msaleev/finsent"
)

var _ finsent.CatalogService = (*CatalogService)(nil)

// CatalogService is a mock implementation of finsent.CatalogService.
type CatalogService struct {
	CreateFilingFn          func(ctx context.Context, filing *finsent.Filing) error
	FindFilingByAccessionFn func(ctx context.Context, accession string) (*finsent.Filing, error)
	FindFilingsFn           func(ctx context.Context, filter finsent.FilingFilter) ([]*finsent.Filing, error)
	UpdateFilingSentimentFn func(ctx context.Context, id, sentiment string) error
	CreateSectionFn         func(ctx context.Context, record *finsent.SectionRecord) error
	FindSectionsByFilingFn  func(ctx context.Context, filingID string) ([]*finsent.SectionRecord, error)
	DeleteFilingFn          func(ctx context.Context, id string) error
}

func (s *CatalogService) CreateFiling(ctx context.Context, filing *finsent.Filing) error {
	return s.CreateFilingFn(ctx, filing)
}

func (s *CatalogService) FindFilingByAccession(ctx context.Context, accession string) (*finsent.Filing, error) {
	return s.FindFilingByAccessionFn(ctx, accession)
}

func (s *CatalogService) FindFilings(ctx context.Context, filter finsent.FilingFilter) ([]*finsent.Filing, error) {
	return s.FindFilingsFn(ctx, filter)
}

func (s *CatalogService) UpdateFilingSentiment(ctx context.Context, id, sentiment string) error {
	return s.UpdateFilingSentimentFn(ctx, id, sentiment)
}

func (s *CatalogService) CreateSection(ctx context.Context, record *finsent.SectionRecord) error {
	return s.CreateSectionFn(ctx, record)
}

func (s *CatalogService) FindSectionsByFiling(ctx context.Context, filingID string) ([]*finsent.SectionRecord, error) {
	return s.FindSectionsByFilingFn(ctx, filingID)
}

func (s *CatalogService) DeleteFiling(ctx context.Context, id string) error {
	return s.DeleteFilingFn(ctx, id)
}
