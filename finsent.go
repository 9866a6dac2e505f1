// Package finsent extracts narrative text from SEC EDGAR filings and
// classifies its sentiment. It downloads 10-Q/10-K submissions, strips
// the XBRL/HTML markup, isolates narrative-dense sections with keyword
// heuristics, and writes plain-text reports suitable for a sentiment
// classifier.
//
// This package contains domain types, pure extraction logic, and
// interfaces following Ben Johnson's Standard Package Layout.
// Implementations live in subdirectories named after their primary
// dependency (e.g., sqlite/, goquery/, gemini/) or their domain
// concern (edgar/, pipeline/).
package finsent
