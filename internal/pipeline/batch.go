// Package pipeline contains the feedback batch processor and the topic
// aggregation that builds the topic cloud.
package pipeline

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/spacesedan/sentiment-miner/internal/analyzer"
	"github.com/spacesedan/sentiment-miner/internal/models"
)

const errorTopicMaxLen = 50

// ProgressFunc observes batch progress. It is a side channel only and must
// not influence results.
type ProgressFunc func(row, total int)

// LogProgress reports progress through the default logger.
func LogProgress(batchID string) ProgressFunc {
	return func(row, total int) {
		slog.Info("[Pipeline] Processing feedback",
			slog.String("batch_id", batchID),
			slog.Int("row", row),
			slog.Int("total", total))
	}
}

// NewBatchID tags one batch run for log correlation.
func NewBatchID() string {
	return uuid.NewString()
}

// AnalyzeBatch runs every text through the analyzer, one at a time, in input
// order. A failed row never aborts the batch: it becomes a sentinel result
// with SentimentError and a single truncated diagnostic topic. The only error
// this returns is context cancellation, in which case partial results are
// discarded.
func AnalyzeBatch(ctx context.Context, a analyzer.Analyzer, texts []string, progress ProgressFunc) ([]models.AnalysisResult, error) {
	results := make([]models.AnalysisResult, 0, len(texts))

	for i, text := range texts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if progress != nil {
			progress(i+1, len(texts))
		}

		analysis, err := a.Analyze(ctx, text)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			slog.Warn("[Pipeline] Analysis failed for row",
				slog.Int("row", i+1),
				slog.String("error", err.Error()))
			results = append(results, errorResult(text, err))
			continue
		}

		results = append(results, models.AnalysisResult{
			OriginalText: text,
			Sentiment:    analysis.Sentiment,
			Topics:       analysis.Topics,
		})
	}

	return results, nil
}

func errorResult(text string, err error) models.AnalysisResult {
	msg := err.Error()
	if runes := []rune(msg); len(runes) > errorTopicMaxLen {
		msg = string(runes[:errorTopicMaxLen])
	}
	return models.AnalysisResult{
		OriginalText: text,
		Sentiment:    models.SentimentError,
		Topics:       []string{"Analysis failed: " + msg},
	}
}
