package finsent

import "context"

// Sentiment labels produced by the classifier.
const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
)

// Classifier assigns a sentiment label to financial narrative text.
//
// The model behind it is a process-wide resource loaded once and
// reused; it is injected into the pipeline as a capability rather
// than reached through a global, so extraction logic can be tested
// without it.
type Classifier interface {
	// Classify returns one of SentimentPositive, SentimentNegative,
	// or SentimentNeutral for the given text.
	Classify(ctx context.Context, text string) (string, error)
}
