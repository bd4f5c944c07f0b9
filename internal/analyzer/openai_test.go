package analyzer

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacesedan/sentiment-miner/internal/models"
)

func TestCleanModelResponse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain json untouched",
			input: `{"sentiment": "Positive"}`,
			want:  `{"sentiment": "Positive"}`,
		},
		{
			name:  "json fences stripped",
			input: "```json\n{\"topics\": [\"Fast Shipping\"]}\n```",
			want:  `{"topics": ["Fast Shipping"]}`,
		},
		{
			name:  "bare fences stripped",
			input: "```\n{\"sentiment\": \"Neutral\"}\n```",
			want:  `{"sentiment": "Neutral"}`,
		},
		{
			name:  "curly quotes standardized",
			input: "{“sentiment”: “Negative”}",
			want:  `{"sentiment": "Negative"}`,
		},
		{
			name:  "surrounding whitespace trimmed",
			input: "  \n{\"sentiment\": \"Positive\"}\n  ",
			want:  `{"sentiment": "Positive"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanModelResponse(tt.input))
		})
	}
}

func TestCleanedTopicsResponseDecodes(t *testing.T) {
	raw := cleanModelResponse("```json\n{\"topics\": \"Slow Shipping\"}\n```")

	var resp models.TopicsResponse
	require.NoError(t, json.Unmarshal([]byte(raw), &resp))
	assert.Equal(t, models.TopicList{"Slow Shipping"}, resp.Topics)
}
