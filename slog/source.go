// Package slog provides logging decorators for finsent services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/msaleev/finsent"
)

// Ensure Source implements finsent.FilingSource.
var _ finsent.FilingSource = (*Source)(nil)

// Source wraps a FilingSource with fetch timing logs.
type Source struct {
	next   finsent.FilingSource
	logger *slog.Logger
}

// NewSource creates a new logging Source.
func NewSource(next finsent.FilingSource, logger *slog.Logger) *Source {
	return &Source{next: next, logger: logger}
}

// FetchFilings delegates to the wrapped source, logging the outcome.
func (s *Source) FetchFilings(ctx context.Context, cik string, formTypes []string, max int) ([]*finsent.Filing, error) {
	begin := time.Now()
	filings, err := s.next.FetchFilings(ctx, cik, formTypes, max)
	if err != nil {
		s.logger.Error("fetch filings",
			"cik", cik,
			"forms", formTypes,
			"duration", time.Since(begin),
			"error", finsent.ErrorMessage(err),
		)
		return nil, err
	}

	s.logger.Info("fetch filings",
		"cik", cik,
		"forms", formTypes,
		"count", len(filings),
		"duration", time.Since(begin),
	)
	return filings, nil
}
