package analyzer

import (
	"context"
	"regexp"
	"strings"

	"github.com/jonreiter/govader"
	"github.com/russross/blackfriday/v2"

	"github.com/spacesedan/sentiment-miner/internal/models"
)

var (
	linkPattern = regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	urlPattern  = regexp.MustCompile(`https?://\S+|www\.\S+`)
)

// VADERAnalyzer is the offline backend. It scores sentiment with the VADER
// lexicon and extracts no topics, so the topic cloud stays empty on this
// backend.
type VADERAnalyzer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func NewVADERAnalyzer() *VADERAnalyzer {
	return &VADERAnalyzer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

func (v *VADERAnalyzer) Analyze(_ context.Context, text string) (models.FeedbackAnalysis, error) {
	plainText := convertMarkdownToText(text)

	sentiment := v.analyzer.PolarityScores(plainText)
	score := sentiment.Compound

	var label string
	if score >= 0.20 {
		label = models.SentimentPositive
	} else if score <= -0.20 {
		label = models.SentimentNegative
	} else {
		label = models.SentimentNeutral
	}

	return models.FeedbackAnalysis{Sentiment: label, Topics: []string{}}, nil
}

func removeLinks(input string) string {
	input = linkPattern.ReplaceAllString(input, "$1") // Keep only the text
	return urlPattern.ReplaceAllString(input, "")
}

func convertMarkdownToText(input string) string {
	output := blackfriday.Run([]byte(input), blackfriday.WithNoExtensions())
	plainText := strings.Join(strings.Fields(string(output)), " ")

	return removeLinks(plainText)
}
