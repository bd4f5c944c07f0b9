package analyzer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacesedan/sentiment-miner/internal/models"
)

func TestVADERAnalyzer_Labels(t *testing.T) {
	v := NewVADERAnalyzer()

	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "clearly positive",
			text: "This is absolutely wonderful, I love it!",
			want: models.SentimentPositive,
		},
		{
			name: "clearly negative",
			text: "Terrible experience, horrible quality, awful support.",
			want: models.SentimentNegative,
		},
		{
			name: "neutral statement",
			text: "The package arrived on Tuesday.",
			want: models.SentimentNeutral,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analysis, err := v.Analyze(context.Background(), tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, analysis.Sentiment)
			assert.Empty(t, analysis.Topics)
		})
	}
}

func TestVADERAnalyzer_IgnoresMarkdownAndLinks(t *testing.T) {
	v := NewVADERAnalyzer()

	plain, err := v.Analyze(context.Background(), "Amazing product, works great!")
	require.NoError(t, err)

	decorated, err := v.Analyze(context.Background(),
		"**Amazing** product, works great! [review](https://example.com/review)")
	require.NoError(t, err)

	assert.Equal(t, plain.Sentiment, decorated.Sentiment)
}

func TestConvertMarkdownToText_StripsLinks(t *testing.T) {
	got := convertMarkdownToText("see [the docs](https://example.com/docs) and https://example.com/more")
	assert.NotContains(t, got, "example.com")
	assert.Contains(t, got, "the docs")
}
