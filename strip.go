package finsent

// Stripper removes markup from raw filing text.
type Stripper interface {
	// Strip removes script/style blocks, tag markup (including
	// malformed and partial tags), and character entities from an
	// HTML/SGML blob, returning flat line-oriented text: intra-line
	// whitespace collapsed, empty lines dropped, lines joined by a
	// single newline.
	//
	// Strip never fails; malformed markup degrades to best-effort
	// text. Applying Strip to its own output is a no-op.
	Strip(raw string) string
}
