// Package output renders result and topic-cloud tables for the console.
package output

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spacesedan/sentiment-miner/internal/models"
)

const (
	maxTextWidth  = 47
	maxTopicWidth = 25
)

// RenderResults prints the per-row results table.
func RenderResults(w io.Writer, results []models.AnalysisResult) {
	fmt.Fprintln(w, "\n--- Sentiment Analysis Results ---")
	for _, result := range results {
		text := result.OriginalText
		if len(text) > maxTextWidth {
			text = text[:maxTextWidth] + "..."
		}
		fmt.Fprintf(w, "[%s] %s | Topics: %s\n",
			result.Sentiment, text, strings.Join(result.Topics, ", "))
	}
}

// RenderTopicCloud prints the aggregated topic table.
func RenderTopicCloud(w io.Writer, aggregated []models.TopicAggregate) {
	if len(aggregated) == 0 {
		fmt.Fprintln(w, "\nNo topics extracted")
		return
	}

	fmt.Fprintln(w, "\n--- Topic Frequency ---")
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Topic\tCount\tSentiment")
	for _, entry := range aggregated {
		topic := entry.Topic
		if len(topic) > maxTopicWidth {
			topic = topic[:maxTopicWidth]
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\n", topic, entry.Count, entry.DominantSentiment)
	}
	tw.Flush()
}
