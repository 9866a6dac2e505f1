package mock

import (
	"context"

	"github.com/msaleev/finsent"
)

var _ finsent.ReportStore = (*ReportStore)(nil)

// ReportStore is a mock implementation of finsent.ReportStore.
type ReportStore struct {
	SaveFn   func(ctx context.Context, report *finsent.Report) error
	CommitFn func() error
	AbortFn  func() error
}

func (s *ReportStore) Save(ctx context.Context, report *finsent.Report) error {
	return s.SaveFn(ctx, report)
}

func (s *ReportStore) Commit() error {
	return s.CommitFn()
}

func (s *ReportStore) Abort() error {
	return s.AbortFn()
}
