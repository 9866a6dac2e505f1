// Package mock provides mock implementations of finsent interfaces
// for testing.
package mock

import (
	"context"

	"github.com/msaleev/finsent"
)

var _ finsent.FilingSource = (*FilingSource)(nil)

// FilingSource is a mock implementation of finsent.FilingSource.
type FilingSource struct {
	FetchFilingsFn func(ctx context.Context, cik string, formTypes []string, max int) ([]*finsent.Filing, error)
}

func (s *FilingSource) FetchFilings(ctx context.Context, cik string, formTypes []string, max int) ([]*finsent.Filing, error) {
	return s.FetchFilingsFn(ctx, cik, formTypes, max)
}
