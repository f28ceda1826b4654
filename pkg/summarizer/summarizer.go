// Package summarizer is a thin gateway to an external text-summarization
// model. It validates input before any network call, shapes the clinical
// prompt, and splits the model output into a summary plus bullet points.
// Upstream failures are reported to the caller and never retried here.
package summarizer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sharan022005/medic-query-knowledge-assistant/pkg/llm"
)

var (
	// ErrEmptyText indicates the input was empty or whitespace-only. It is
	// rejected before the external call is attempted.
	ErrEmptyText = errors.New("text to summarize cannot be empty")

	// ErrUpstream indicates the summarization provider errored or timed
	// out. Retry policy, if any, belongs to the caller.
	ErrUpstream = errors.New("summarization provider failed")
)

const promptTemplate = `You are a medical assistant. Summarize the following clinical or research text into 4-6 bullet points.
Emphasize: key diagnoses, differential, treatment options, risks, and any pertinent evidence.

Text:
%s`

// Result holds one summarization response. It is transient: held only long
// enough to render, replaced wholesale by the next request.
type Result struct {
	Summary string
	Bullets []string
}

type Summarizer struct {
	provider llm.Provider
}

func New(provider llm.Provider) *Summarizer {
	return &Summarizer{provider: provider}
}

// Summarize sends the text to the model and returns the summary with its
// extracted bullet points.
func (s *Summarizer) Summarize(ctx context.Context, text string) (*Result, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}

	prompt := fmt.Sprintf(promptTemplate, text)
	out, err := s.provider.Generate(ctx, prompt, llm.WithTemperature(0.3))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	return &Result{
		Summary: strings.TrimSpace(out),
		Bullets: extractBullets(out),
	}, nil
}

// extractBullets collects the bullet lines from the model output. Models
// answer with "-", "*", "•" or numbered lists depending on provider and
// temperature, so all of those count.
func extractBullets(text string) []string {
	var bullets []string
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		for _, prefix := range []string{"- ", "* ", "• "} {
			if strings.HasPrefix(trimmed, prefix) {
				bullets = append(bullets, strings.TrimSpace(trimmed[len(prefix):]))
				trimmed = ""
				break
			}
		}
		if trimmed == "" {
			continue
		}
		if b, ok := stripNumberPrefix(trimmed); ok {
			bullets = append(bullets, b)
		}
	}
	return bullets
}

// stripNumberPrefix handles "1. text" and "1) text" style list items.
func stripNumberPrefix(line string) (string, bool) {
	i := 0
	for i < len(line) && line[i] >= '0' && line[i] <= '9' {
		i++
	}
	if i == 0 || i >= len(line) {
		return "", false
	}
	if line[i] != '.' && line[i] != ')' {
		return "", false
	}
	return strings.TrimSpace(line[i+1:]), true
}
