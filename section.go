package finsent

import (
	"strings"
)

// Extraction thresholds. A section shorter than minSectionLen carries
// too little prose to classify and is never emitted.
const (
	minSectionLen   = 500
	maxSectionLines = 50
	minFallbackLen  = 1000
	minSectionCount = 3
	maxSections     = 5
	dedupPrefixLen  = 200
)

// triggerKeywords mark lines that open a narrative region of a filing.
// Matched case-insensitively as substrings.
var triggerKeywords = []string{
	"management's discussion",
	"risk factors",
	"business overview",
	"results of operations",
	"liquidity and capital",
	"forward-looking statements",
	"covid-19",
	"pandemic",
	"revenue",
	"earnings",
	"growth",
	"outlook",
	"item 1",
	"item 1a",
	"item 7",
	"item 7a",
}

// stopKeywords mark lines that end an accumulating section, typically
// the start of the next filing item or exhibit list.
var stopKeywords = []string{
	"item ",
	"part ",
	"exhibit",
	"table of contents",
}

// financeKeywords qualify paragraph chunks as finance-relevant during
// the fallback pass.
var financeKeywords = []string{
	"revenue", "earnings", "growth", "profit", "loss",
	"business", "company", "financial", "results", "operations",
}

// Section is a contiguous narrative passage extracted from a filing.
// Sections are numbered in discovery order and immutable once emitted.
type Section struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
}

// Len returns the length of the section text in bytes.
func (s Section) Len() int { return len(s.Text) }

// extractState is the state of the line scanner in ExtractNarrative.
type extractState int

const (
	stateIdle extractState = iota
	stateAccumulating
)

// sectionScanner accumulates lines into candidate sections. It is the
// two-state machine behind ExtractNarrative: idle until a trigger
// keyword opens a section, accumulating until a stop keyword, the
// line cap, or the next trigger closes it.
type sectionScanner struct {
	state    extractState
	buf      []string
	sections []string
}

// scan feeds one non-empty line to the state machine.
func (sc *sectionScanner) scan(line string) {
	lower := strings.ToLower(line)

	if containsAny(lower, triggerKeywords) {
		sc.flush()
		sc.buf = []string{line}
		sc.state = stateAccumulating
		return
	}

	if sc.state != stateAccumulating {
		return
	}

	sc.buf = append(sc.buf, line)
	if len(sc.buf) > maxSectionLines || containsAny(lower, stopKeywords) {
		sc.flush()
	}
}

// flush closes the current buffer, emitting it as a section when it
// holds enough text, and returns the scanner to the idle state.
func (sc *sectionScanner) flush() {
	if len(sc.buf) > 0 {
		text := strings.Join(sc.buf, " ")
		if len(text) > minSectionLen {
			sc.sections = append(sc.sections, text)
		}
	}
	sc.buf = nil
	sc.state = stateIdle
}

// ExtractNarrative scans cleaned filing text for narrative-dense
// sections. It performs a single forward pass driven by trigger and
// stop keywords, falls back to paragraph-chunk scanning when the pass
// yields fewer than three sections, deduplicates by the first 200
// characters keeping first occurrences, and caps the result at five
// sections in discovery order.
//
// An empty result is valid: it signals the filing has no usable
// narrative content and callers should skip it.
func ExtractNarrative(cleaned string) []Section {
	sc := &sectionScanner{}

	for _, line := range strings.Split(cleaned, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		sc.scan(line)
	}
	sc.flush()

	candidates := sc.sections
	if len(candidates) < minSectionCount {
		candidates = append(candidates, fallbackChunks(cleaned)...)
	}

	deduped := dedupByPrefix(candidates)
	if len(deduped) > maxSections {
		deduped = deduped[:maxSections]
	}

	sections := make([]Section, 0, len(deduped))
	for i, text := range deduped {
		sections = append(sections, Section{Index: i + 1, Text: text})
	}
	return sections
}

// fallbackChunks splits cleaned text on blank-line boundaries and
// returns the chunks long enough and finance-relevant enough to stand
// in for keyword-derived sections.
func fallbackChunks(cleaned string) []string {
	var chunks []string
	for _, chunk := range splitParagraphs(cleaned) {
		chunk = strings.TrimSpace(chunk)
		if len(chunk) > minFallbackLen && containsAny(strings.ToLower(chunk), financeKeywords) {
			chunks = append(chunks, chunk)
		}
	}
	return chunks
}

// splitParagraphs splits text on runs of blank lines.
func splitParagraphs(text string) []string {
	var paragraphs []string
	var current []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			if len(current) > 0 {
				paragraphs = append(paragraphs, strings.Join(current, "\n"))
				current = nil
			}
			continue
		}
		current = append(current, line)
	}
	if len(current) > 0 {
		paragraphs = append(paragraphs, strings.Join(current, "\n"))
	}
	return paragraphs
}

// dedupByPrefix removes near-duplicate sections, comparing the first
// dedupPrefixLen characters directly. The dedup is stable: the first
// occurrence wins.
func dedupByPrefix(sections []string) []string {
	seen := make(map[string]bool)
	var unique []string
	for _, section := range sections {
		prefix := section
		if runes := []rune(section); len(runes) > dedupPrefixLen {
			prefix = string(runes[:dedupPrefixLen])
		}
		if seen[prefix] {
			continue
		}
		seen[prefix] = true
		unique = append(unique, section)
	}
	return unique
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
