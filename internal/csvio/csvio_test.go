package csvio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacesedan/sentiment-miner/internal/models"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "feedback.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadColumn(t *testing.T) {
	path := writeTempCSV(t, "id,feedback,rating\n1,Great service,5\n2,Slow delivery,2\n3,,3\n")

	texts, err := ReadColumn(path, "feedback")
	require.NoError(t, err)
	assert.Equal(t, []string{"Great service", "Slow delivery", ""}, texts)
}

func TestReadColumn_MissingFile(t *testing.T) {
	_, err := ReadColumn(filepath.Join(t.TempDir(), "nope.csv"), "feedback")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CSV file not found")
}

func TestReadColumn_UnknownColumnListsAvailable(t *testing.T) {
	path := writeTempCSV(t, "id,feedback\n1,hello\n")

	_, err := ReadColumn(path, "comments")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `column "comments" not found`)
	assert.Contains(t, err.Error(), "id, feedback")
}

func TestReadColumn_ShortRecordBecomesEmptyString(t *testing.T) {
	path := writeTempCSV(t, "id,feedback\n1,hello\n2\n")

	texts, err := ReadColumn(path, "feedback")
	require.NoError(t, err)
	assert.Equal(t, []string{"hello", ""}, texts)
}

func TestSaveResults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	results := []models.AnalysisResult{
		{OriginalText: "Great service", Sentiment: models.SentimentPositive, Topics: []string{"Good Service", "Fast Shipping"}},
		{OriginalText: "broken row", Sentiment: models.SentimentError, Topics: []string{"Analysis failed: boom"}},
	}

	require.NoError(t, SaveResults(results, path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		"Original Text,Sentiment,Extracted Topics\n"+
			"Great service,Positive,\"Good Service, Fast Shipping\"\n"+
			"broken row,Error,Analysis failed: boom\n",
		string(content))
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"feedback.csv", "feedback_analyzed.csv"},
		{"data/reviews.csv", "data/reviews_analyzed.csv"},
		{"noext", "noext_analyzed"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, OutputPath(tt.input))
	}
}
