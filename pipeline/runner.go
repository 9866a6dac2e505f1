// Package pipeline orchestrates the filing-to-narrative extraction
// pipeline: isolate the document body, strip markup, extract
// narrative sections, persist the report, and optionally classify
// sentiment and catalog the result.
package pipeline

import (
	"context"
	"log/slog"

	"github.com/msaleev/finsent"
)

// minReportLen is the smallest report body worth keeping. Filings
// whose report falls at or under this size carry no usable narrative
// and are skipped.
const minReportLen = 1000

// Job describes one batch of filings to process.
type Job struct {
	CIK       string
	FormTypes []string
	Max       int

	// KeepRaw retains the raw submission text next to each report.
	KeepRaw bool

	// Classify runs the sentiment classifier over each report.
	Classify bool

	// Force reprocesses filings already present in the catalog.
	Force bool
}

// Progress reports per-filing pipeline progress.
type Progress struct {
	Accession string
	Completed int
	Total     int
	Skipped   bool
	Sentiment string
	Err       error
}

// ProgressFunc is called as filings are processed.
type ProgressFunc func(Progress)

// Result summarizes a batch run.
type Result struct {
	Fetched   int
	Saved     int
	Skipped   int
	Failed    int
	Sentiment map[string]string // accession number -> label
}

// Runner drives the extraction pipeline. Source, Stripper, and
// Reports are required; Catalog and Classifier are optional
// capabilities. Filings are processed sequentially, one at a time,
// and a single filing's failure never aborts the batch.
type Runner struct {
	Source     finsent.FilingSource
	Stripper   finsent.Stripper
	Reports    finsent.ReportStore
	Catalog    finsent.CatalogService
	Classifier finsent.Classifier
	Logger     *slog.Logger
}

// Run fetches and processes one batch of filings. The returned error
// reflects only batch-fatal failures (fetch or commit); per-filing
// failures are logged, reported through progress, and skipped.
func (r *Runner) Run(ctx context.Context, job Job, progress ProgressFunc) (*Result, error) {
	logger := r.Logger
	if logger == nil {
		logger = slog.Default()
	}

	filings, err := r.Source.FetchFilings(ctx, job.CIK, job.FormTypes, job.Max)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Fetched:   len(filings),
		Sentiment: make(map[string]string),
	}

	for i, filing := range filings {
		p := Progress{
			Accession: filing.AccessionNumber,
			Completed: i + 1,
			Total:     len(filings),
		}

		outcome, err := r.processFiling(ctx, job, filing)
		switch {
		case err != nil:
			if ctx.Err() != nil {
				_ = r.Reports.Abort()
				return result, ctx.Err()
			}
			result.Failed++
			p.Err = err
			logger.Error("filing failed",
				"accession", filing.AccessionNumber,
				"error", finsent.ErrorMessage(err),
			)
		case outcome.skipped:
			result.Skipped++
			p.Skipped = true
			logger.Info("filing skipped",
				"accession", filing.AccessionNumber,
				"reason", outcome.reason,
			)
		default:
			result.Saved++
			p.Sentiment = outcome.sentiment
			if outcome.sentiment != "" {
				result.Sentiment[filing.AccessionNumber] = outcome.sentiment
			}
			logger.Info("filing processed",
				"accession", filing.AccessionNumber,
				"sections", outcome.sections,
			)
		}

		if progress != nil {
			progress(p)
		}
	}

	if result.Saved > 0 {
		if err := r.Reports.Commit(); err != nil {
			return result, err
		}
	} else {
		_ = r.Reports.Abort()
	}

	return result, nil
}

// outcome describes how one filing was handled.
type outcome struct {
	skipped   bool
	reason    string
	sections  int
	sentiment string
}

// processFiling runs the extraction pipeline over a single filing.
func (r *Runner) processFiling(ctx context.Context, job Job, filing *finsent.Filing) (*outcome, error) {
	if r.Catalog != nil {
		existing, err := r.Catalog.FindFilingByAccession(ctx, filing.AccessionNumber)
		switch {
		case err == nil && !job.Force:
			return &outcome{skipped: true, reason: "already cataloged"}, nil
		case err == nil:
			// Force mode replaces the previous record.
			if err := r.Catalog.DeleteFiling(ctx, existing.ID); err != nil {
				return nil, err
			}
		case finsent.ErrorCode(err) != finsent.ENOTFOUND:
			return nil, err
		}
	}

	body := finsent.IsolateDocument(filing.Content)
	cleaned := r.Stripper.Strip(body)
	sections := finsent.ExtractNarrative(cleaned)

	if len(sections) == 0 {
		return &outcome{skipped: true, reason: "no narrative sections"}, nil
	}

	label := filing.SourceLabel()
	content := finsent.FormatReport(sections, label)
	if len(content) <= minReportLen {
		return &outcome{skipped: true, reason: "insufficient content"}, nil
	}

	report := &finsent.Report{
		SourceLabel: label,
		Sections:    sections,
	}
	if job.KeepRaw {
		report.Raw = filing.Content
	}
	if err := r.Reports.Save(ctx, report); err != nil {
		return nil, err
	}

	out := &outcome{sections: len(sections)}

	// Classify before cataloging so a failed filing leaves no catalog
	// row behind and a later run picks it up again.
	if job.Classify && r.Classifier != nil {
		sentiment, err := r.Classifier.Classify(ctx, joinSections(sections))
		if err != nil {
			return nil, err
		}
		filing.Sentiment = sentiment
		out.sentiment = sentiment
	}

	if r.Catalog != nil {
		if err := r.Catalog.CreateFiling(ctx, filing); err != nil {
			return nil, err
		}
		for _, section := range sections {
			record := &finsent.SectionRecord{
				FilingID: filing.ID,
				Position: section.Index,
				Content:  section.Text,
			}
			if err := r.Catalog.CreateSection(ctx, record); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// joinSections concatenates section texts for classification.
func joinSections(sections []finsent.Section) string {
	var b []byte
	for i, section := range sections {
		if i > 0 {
			b = append(b, "\n\n"...)
		}
		b = append(b, section.Text...)
	}
	return string(b)
}
