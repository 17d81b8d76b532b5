package services

import (
	"context"
	"fmt"
)

// Summarizer sends a rendered prompt to a text-generation provider. One call
// per request: no retry, no streaming, no output validation.
type Summarizer interface {
	Summarize(ctx context.Context, prompt string) (string, error)
}

// NewSummarizer builds the summary provider selected at startup.
func NewSummarizer(provider, openaiKey, geminiKey string) (Summarizer, error) {
	switch provider {
	case "openai":
		return NewOpenAISummarizer(openaiKey), nil
	case "gemini":
		return NewGeminiSummarizer(context.Background(), geminiKey)
	default:
		return nil, fmt.Errorf("unknown summary provider %q", provider)
	}
}
