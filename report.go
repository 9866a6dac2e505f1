package finsent

import (
	"context"
	"strconv"
	"strings"
)

// Report banner and separator literals. Downstream tooling reads
// these files, so widths are part of the format.
const (
	reportBanner  = "NARRATIVE SECTIONS FOR SENTIMENT ANALYSIS:"
	headerRule    = 60
	bannerRule    = 50
	sectionRule   = 30
	reportPreface = "Financial Narrative Extracted from: "
)

// FormatReport serializes extracted sections into the plain-text
// report consumed by the sentiment classifier: a source header, a
// fixed banner, then each section numbered in discovery order. It is
// a pure formatting step and does not alter section content.
func FormatReport(sections []Section, sourceLabel string) string {
	var b strings.Builder
	b.WriteString(reportPreface)
	b.WriteString(sourceLabel)
	b.WriteString("\n")
	b.WriteString(strings.Repeat("=", headerRule))
	b.WriteString("\n\n")

	b.WriteString(reportBanner)
	b.WriteString("\n")
	b.WriteString(strings.Repeat("=", bannerRule))
	b.WriteString("\n\n")

	for i, section := range sections {
		b.WriteString("Section ")
		b.WriteString(strconv.Itoa(i + 1))
		b.WriteString(":\n")
		b.WriteString(strings.Repeat("-", sectionRule))
		b.WriteString("\n")
		b.WriteString(section.Text)
		b.WriteString("\n\n")
	}

	return b.String()
}

// Report is a persisted extraction artifact for one filing.
type Report struct {
	// SourceLabel identifies the filing the report was extracted from
	// and determines the report file name.
	SourceLabel string

	// Sections holds the extracted narrative, in discovery order.
	Sections []Section

	// Raw optionally holds the original submission text for retention
	// alongside the report.
	Raw string
}

// ReportStore persists extraction reports with atomic semantics.
// Save writes to a temporary location; Commit makes changes
// permanent; Abort discards pending changes.
type ReportStore interface {
	Save(ctx context.Context, report *Report) error
	Commit() error
	Abort() error
}
