package finsent

import "strings"

// EDGAR full-text submissions wrap each filed document in a literal
// marker pair. Everything before the first marker is registry
// envelope metadata (SEC-HEADER), which pollutes keyword-based
// section detection.
const (
	documentOpenMarker  = "<DOCUMENT>"
	documentCloseMarker = "</DOCUMENT>"
)

// IsolateDocument returns the substring of a raw submission from the
// opening document marker up to the closing marker, discarding the
// registry envelope that precedes the filing body. When either marker
// is absent the input is returned unchanged, so plain documents pass
// through whole.
func IsolateDocument(text string) string {
	start := strings.Index(text, documentOpenMarker)
	end := strings.Index(text, documentCloseMarker)
	if start == -1 || end == -1 || end < start {
		return text
	}
	return text[start:end]
}
