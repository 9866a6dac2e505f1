package mock

import "github.com/msaleev/finsent"

var _ finsent.Stripper = (*Stripper)(nil)

// Stripper is a mock implementation of finsent.Stripper.
type Stripper struct {
	StripFn func(raw string) string
}

func (s *Stripper) Strip(raw string) string {
	return s.StripFn(raw)
}
