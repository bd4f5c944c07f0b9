// Package analyzer maps a single piece of feedback text to a sentiment label
// and a list of topic strings. Backends are selected through LLM_BACKEND.
package analyzer

import (
	"context"
	"fmt"

	"github.com/spacesedan/sentiment-miner/config"
	"github.com/spacesedan/sentiment-miner/internal/models"
)

type Analyzer interface {
	Analyze(ctx context.Context, text string) (models.FeedbackAnalysis, error)
}

// AnalysisError wraps any backend failure for a single text so callers deal
// with one error type at the boundary.
type AnalysisError struct {
	Err error
}

func (e *AnalysisError) Error() string {
	return e.Err.Error()
}

func (e *AnalysisError) Unwrap() error {
	return e.Err
}

// ForBackend returns the analyzer for the configured backend.
func ForBackend(backend string) (Analyzer, error) {
	switch backend {
	case config.BackendOpenAI, config.BackendOllama:
		return NewOpenAIAnalyzer()
	case config.BackendVADER:
		return NewVADERAnalyzer(), nil
	default:
		return nil, fmt.Errorf("invalid LLM_BACKEND %q, must be one of: openai, ollama, vader", backend)
	}
}
