package mock

import (
	"context"

	"github.com/msaleev/finsent"
)

var _ finsent.Classifier = (*Classifier)(nil)

// Classifier is a mock implementation of finsent.Classifier.
type Classifier struct {
	ClassifyFn func(ctx context.Context, text string) (string, error)
}

func (c *Classifier) Classify(ctx context.Context, text string) (string, error) {
	return c.ClassifyFn(ctx, text)
}
