// Package goquery provides a goquery-based implementation of
// finsent.Stripper for removing HTML/SGML markup from raw filings.
package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/msaleev/finsent"
)

// Ensure Stripper implements finsent.Stripper at compile time.
var _ finsent.Stripper = (*Stripper)(nil)

// Stripper extracts flat text from HTML/SGML blobs. A DOM pass drops
// script/style subtrees and flattens the markup to text; a second
// pass cleans up the entity and tag fragments EDGAR submissions leave
// behind, since the filing envelope is SGML rather than well-formed
// HTML.
type Stripper struct{}

// NewStripper creates a new Stripper.
func NewStripper() *Stripper {
	return &Stripper{}
}

// entityReplacements maps the character entities that survive the DOM
// pass inside EDGAR's escaped XBRL payloads. Order matters: &amp;
// must decode before the entities it can produce.
var entityReplacements = []struct{ from, to string }{
	{"&nbsp;", " "},
	{"&amp;", "&"},
	{"&lt;", "<"},
	{"&gt;", ">"},
	{"&quot;", `"`},
	{"&apos;", "'"},
	{"&#160;", " "},
	{"&#8217;", "'"},
	{"&#8211;", "-"},
	{"&#8212;", "--"},
}

// The DOM pass decodes entities into their Unicode forms before the
// replacement pass sees them; normalize those too so nbsp and smart
// punctuation come out as plain ASCII either way.
var decodedReplacements = []struct{ from, to string }{
	{" ", " "},  // no-break space
	{"’", "'"},  // right single quote
	{"–", "-"},  // en dash
	{"—", "--"}, // em dash
}

var (
	tagRe        = regexp.MustCompile(`<[^>]*>`)
	partialTagRe = regexp.MustCompile(`/[^>]*>`)
	spaceRe      = regexp.MustCompile(`[ \t]+`)
)

// Strip implements finsent.Stripper.
func (s *Stripper) Strip(raw string) string {
	text := domText(raw)
	text = tidyLines(text)

	// Collapse intra-line whitespace but keep newlines.
	text = spaceRe.ReplaceAllString(text, " ")

	for _, e := range entityReplacements {
		text = strings.ReplaceAll(text, e.from, e.to)
	}
	for _, e := range decodedReplacements {
		text = strings.ReplaceAll(text, e.from, e.to)
	}

	// Entity decoding can surface escaped markup; strip it along with
	// any partial tags the SGML envelope leaked through the DOM pass.
	text = tagRe.ReplaceAllString(text, "")
	text = partialTagRe.ReplaceAllString(text, "")
	text = strings.ReplaceAll(text, "#160;", " ")
	text = strings.ReplaceAll(text, `br clear="none"`, "")

	text = spaceRe.ReplaceAllString(text, " ")

	// The cleanup can empty a line that held nothing but escaped
	// markup; drop such lines again so none survive to the output.
	return tidyLines(text)
}

// tidyLines trims each line and drops the empty ones, preserving
// line breaks between the rest.
func tidyLines(text string) string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}

// domText parses the blob leniently, removes script and style
// subtrees, and returns the concatenated text content. Parse failures
// fall back to the raw input; the regex pass still produces
// best-effort text.
func domText(raw string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return raw
	}
	doc.Find("script, style").Remove()
	return doc.Text()
}
