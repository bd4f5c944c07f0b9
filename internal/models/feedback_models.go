package models

import (
	"bytes"
	"encoding/json"
)

const (
	SentimentPositive = "Positive"
	SentimentNegative = "Negative"
	SentimentNeutral  = "Neutral"
	SentimentError    = "Error"
)

// FeedbackAnalysis is what an analyzer backend returns for a single text.
type FeedbackAnalysis struct {
	Sentiment string   `json:"sentiment"`
	Topics    []string `json:"topics"`
}

// AnalysisResult is one processed feedback row. Exactly one is produced per
// input text, in input order. A failed row carries SentimentError and a single
// diagnostic topic string.
type AnalysisResult struct {
	OriginalText string   `json:"original_text"`
	Sentiment    string   `json:"sentiment"`
	Topics       []string `json:"topics"`
}

// IsError reports whether this result stands in for a failed analysis.
func (r AnalysisResult) IsError() bool {
	return r.Sentiment == SentimentError
}

// TopicAggregate is one row of the topic cloud: a distinct topic, how many
// results mentioned it, and the sentiment most often seen alongside it.
type TopicAggregate struct {
	Topic             string `json:"topic"`
	Count             int    `json:"count"`
	DominantSentiment string `json:"dominant_sentiment"`
}

// TopicList decodes a JSON value that should be a string array but may arrive
// as a bare string when the model ignores the output format. A bare string
// becomes a one-element list.
type TopicList []string

func (t *TopicList) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var single string
		if err := json.Unmarshal(trimmed, &single); err != nil {
			return err
		}
		*t = TopicList{single}
		return nil
	}

	var list []string
	if err := json.Unmarshal(trimmed, &list); err != nil {
		return err
	}
	*t = TopicList(list)
	return nil
}
