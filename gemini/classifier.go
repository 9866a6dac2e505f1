// Package gemini provides a Gemini-backed implementation of
// finsent.Classifier.
package gemini

import (
	"context"
	"strings"

	"github.com/msaleev/finsent"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// systemInstruction constrains the model to a single-word label so the
// response parses deterministically.
const systemInstruction = "You are a financial sentiment classifier. " +
	"Given narrative text from an SEC filing, respond with exactly one word: " +
	"positive, negative, or neutral. Do not explain your answer."

// Ensure Classifier implements finsent.Classifier at compile time.
var _ finsent.Classifier = (*Classifier)(nil)

// Classifier implements finsent.Classifier using Google Gemini.
// The client holds the model connection for the life of the process;
// create it once and inject it wherever classification is needed.
type Classifier struct {
	client *genai.Client
}

// NewClassifier creates a new Classifier.
func NewClassifier(client *genai.Client) *Classifier {
	return &Classifier{client: client}
}

// Classify returns a sentiment label for the given text.
func (c *Classifier) Classify(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", finsent.Errorf(finsent.EINVALID, "text required")
	}

	result, err := c.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: text}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", finsent.Errorf(finsent.EINTERNAL, "gemini returned nil result")
	}

	return ParseLabel(result.Text())
}

// BuildConfig returns the GenerateContentConfig for classification calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.0)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: systemInstruction}},
		},
		Temperature: &temp,
	}
}

// ParseLabel normalizes a model response to one of the sentiment
// labels. Returns EINTERNAL for anything else.
func ParseLabel(response string) (string, error) {
	label := strings.ToLower(strings.TrimSpace(response))
	label = strings.Trim(label, ".!\"'")

	switch label {
	case finsent.SentimentPositive, finsent.SentimentNegative, finsent.SentimentNeutral:
		return label, nil
	}
	return "", finsent.Errorf(finsent.EINTERNAL, "unexpected classifier response %q", response)
}
