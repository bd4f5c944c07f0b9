package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spacesedan/sentiment-miner/internal/models"
)

func TestRenderResults_TruncatesLongText(t *testing.T) {
	longText := strings.Repeat("a", 60)
	var buf bytes.Buffer

	RenderResults(&buf, []models.AnalysisResult{
		{OriginalText: longText, Sentiment: models.SentimentPositive, Topics: []string{"Good Service"}},
	})

	out := buf.String()
	assert.Contains(t, out, "--- Sentiment Analysis Results ---")
	assert.Contains(t, out, strings.Repeat("a", 47)+"...")
	assert.NotContains(t, out, strings.Repeat("a", 48))
	assert.Contains(t, out, "[Positive]")
	assert.Contains(t, out, "Topics: Good Service")
}

func TestRenderTopicCloud_Empty(t *testing.T) {
	var buf bytes.Buffer
	RenderTopicCloud(&buf, nil)
	assert.Contains(t, buf.String(), "No topics extracted")
}

func TestRenderTopicCloud_Rows(t *testing.T) {
	var buf bytes.Buffer
	RenderTopicCloud(&buf, []models.TopicAggregate{
		{Topic: "Fast Shipping", Count: 3, DominantSentiment: models.SentimentPositive},
		{Topic: strings.Repeat("t", 30), Count: 1, DominantSentiment: models.SentimentNeutral},
	})

	out := buf.String()
	assert.Contains(t, out, "--- Topic Frequency ---")
	assert.Contains(t, out, "Fast Shipping")
	assert.Contains(t, out, strings.Repeat("t", 25))
	assert.NotContains(t, out, strings.Repeat("t", 26))
}
