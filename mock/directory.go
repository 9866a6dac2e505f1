package mock

import (
	"context"

	"github.com/msaleev/finsent"
)

var _ finsent.CompanyDirectory = (*CompanyDirectory)(nil)

// CompanyDirectory is a mock implementation of finsent.CompanyDirectory.
type CompanyDirectory struct {
	SearchCompaniesFn func(ctx context.Context, query string, limit int) ([]finsent.Company, error)
	LookupCIKFn       func(ctx context.Context, identifier string) (string, error)
	CompanyNameFn     func(ctx context.Context, cik string) (string, error)
}

func (d *CompanyDirectory) SearchCompanies(ctx context.Context, query string, limit int) ([]finsent.Company, error) {
	return d.SearchCompaniesFn(ctx, query, limit)
}

func (d *CompanyDirectory) LookupCIK(ctx context.Context, identifier string) (string, error) {
	return d.LookupCIKFn(ctx, identifier)
}

func (d *CompanyDirectory) CompanyName(ctx context.Context, cik string) (string, error) {
	return d.CompanyNameFn(ctx, cik)
}
