package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/msaleev/finsent"
)

// Ensure Classifier implements finsent.Classifier.
var _ finsent.Classifier = (*Classifier)(nil)

// Classifier wraps a Classifier with latency and label logs.
type Classifier struct {
	next   finsent.Classifier
	logger *slog.Logger
}

// NewClassifier creates a new logging Classifier.
func NewClassifier(next finsent.Classifier, logger *slog.Logger) *Classifier {
	return &Classifier{next: next, logger: logger}
}

// Classify delegates to the wrapped classifier, logging the outcome.
func (c *Classifier) Classify(ctx context.Context, text string) (string, error) {
	begin := time.Now()
	label, err := c.next.Classify(ctx, text)
	if err != nil {
		c.logger.Error("classify",
			"chars", len(text),
			"duration", time.Since(begin),
			"error", finsent.ErrorMessage(err),
		)
		return "", err
	}

	c.logger.Info("classify",
		"chars", len(text),
		"label", label,
		"duration", time.Since(begin),
	)
	return label, nil
}
