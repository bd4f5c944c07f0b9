package models

type SentimentResponse struct {
	Sentiment string `json:"sentiment"`
}

type TopicsResponse struct {
	Topics TopicList `json:"topics"`
}
