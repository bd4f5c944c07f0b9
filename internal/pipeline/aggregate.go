package pipeline

import (
	"sort"
	"strings"

	"github.com/spacesedan/sentiment-miner/internal/models"
)

// topicStats accumulates counts for one distinct topic string. firstSeen pins
// the order in which count ties are broken, and sentimentOrder pins the order
// in which dominant-sentiment ties are broken.
type topicStats struct {
	firstSeen      int
	count          int
	sentimentCount map[string]int
	sentimentOrder []string
}

// AggregateTopics builds the topic cloud: one entry per distinct trimmed
// topic across all non-error results, sorted by count descending. Count ties
// keep first-discovery order; dominant-sentiment ties pick the sentiment seen
// first for that topic. Duplicate topics within one result count every
// occurrence.
func AggregateTopics(results []models.AnalysisResult) []models.TopicAggregate {
	stats := make(map[string]*topicStats)
	var order []string

	for _, result := range results {
		if result.IsError() {
			continue
		}

		for _, topic := range result.Topics {
			topic = strings.TrimSpace(topic)
			if topic == "" {
				continue
			}

			s, ok := stats[topic]
			if !ok {
				s = &topicStats{
					firstSeen:      len(order),
					sentimentCount: make(map[string]int),
				}
				stats[topic] = s
				order = append(order, topic)
			}
			s.count++

			if _, seen := s.sentimentCount[result.Sentiment]; !seen {
				s.sentimentOrder = append(s.sentimentOrder, result.Sentiment)
			}
			s.sentimentCount[result.Sentiment]++
		}
	}

	aggregated := make([]models.TopicAggregate, 0, len(order))
	for _, topic := range order {
		s := stats[topic]
		aggregated = append(aggregated, models.TopicAggregate{
			Topic:             topic,
			Count:             s.count,
			DominantSentiment: dominantSentiment(s),
		})
	}

	// Stable sort over discovery order, so equal counts keep it.
	sort.SliceStable(aggregated, func(i, j int) bool {
		return aggregated[i].Count > aggregated[j].Count
	})

	return aggregated
}

func dominantSentiment(s *topicStats) string {
	var dominant string
	best := 0
	for _, sentiment := range s.sentimentOrder {
		if s.sentimentCount[sentiment] > best {
			best = s.sentimentCount[sentiment]
			dominant = sentiment
		}
	}
	return dominant
}
