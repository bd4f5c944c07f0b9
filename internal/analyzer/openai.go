package analyzer

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/spacesedan/sentiment-miner/internal/clients"
	"github.com/spacesedan/sentiment-miner/internal/models"
)

const sentimentPrompt = `Classify the sentiment of a customer feedback text.
The text may be in any language (English, Vietnamese, Japanese, etc.)
or contain code-switching (mixed languages in the same sentence).

The sentiment MUST be exactly one of: Positive, Negative, Neutral.

### **STRICT OUTPUT FORMAT**
You MUST return only **valid JSON**, formatted exactly as follows:
{"sentiment": "XXX"}

### **REQUIREMENTS**
- **No Markdown formatting** (no triple backticks, no explanations).
- **No extra text before or after the JSON output**.
`

const topicsPrompt = `Extract key topics from customer feedback and translate them to English.

Rules:
1. Extract 1-3 topics from the text
2. Each topic MUST follow the format: "Aspect + Sentiment" (e.g., "Slow Shipping", "Good Quality")
3. ALL topics must be in Standard English, regardless of input language
4. Topics should be concise (2-4 words maximum)

Examples:
- Input: "Giao hàng chậm" → {"topics": ["Slow Shipping"]}
- Input: "Sản phẩm ok but giá hơi cao" → {"topics": ["Good Product", "Expensive Price"]}
- Input: "配送が速い、品質も良い" → {"topics": ["Fast Shipping", "Good Quality"]}

### **STRICT OUTPUT FORMAT**
You MUST return only **valid JSON**, formatted exactly as follows:
{"topics": ["XXX"]}

### **REQUIREMENTS**
- **No Markdown formatting** (no triple backticks, no explanations).
- **No extra text before or after the JSON output**.
- **No trailing commas** in JSON objects or arrays.
`

// OpenAIAnalyzer runs sentiment classification and topic extraction as two
// chat completions per text, mirroring the two prompts the model is tuned
// against. Exactly one attempt per completion, failures surface to the caller.
type OpenAIAnalyzer struct {
	client *clients.OpenAIClient
}

func NewOpenAIAnalyzer() (*OpenAIAnalyzer, error) {
	client, err := clients.GetOpenAIClient()
	if err != nil {
		return nil, err
	}
	return &OpenAIAnalyzer{client: client}, nil
}

func (a *OpenAIAnalyzer) Analyze(ctx context.Context, text string) (models.FeedbackAnalysis, error) {
	var analysis models.FeedbackAnalysis

	var sentimentResp models.SentimentResponse
	if err := a.complete(ctx, sentimentPrompt, text, &sentimentResp); err != nil {
		return analysis, &AnalysisError{Err: fmt.Errorf("sentiment classification: %w", err)}
	}

	var topicsResp models.TopicsResponse
	if err := a.complete(ctx, topicsPrompt, text, &topicsResp); err != nil {
		return analysis, &AnalysisError{Err: fmt.Errorf("topic extraction: %w", err)}
	}

	analysis.Sentiment = sentimentResp.Sentiment
	analysis.Topics = topicsResp.Topics
	return analysis, nil
}

func (a *OpenAIAnalyzer) complete(ctx context.Context, prompt, text string, out any) error {
	chatCompletion, err := a.client.Client.CreateChatCompletion(ctx,
		openai.ChatCompletionRequest{
			Model: a.client.Model,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: prompt},
				{Role: openai.ChatMessageRoleUser, Content: text},
			},
			Temperature: 0.2,
		})
	if err != nil {
		return err
	}

	if len(chatCompletion.Choices) == 0 || strings.TrimSpace(chatCompletion.Choices[0].Message.Content) == "" {
		return fmt.Errorf("model returned an empty response")
	}

	raw := cleanModelResponse(chatCompletion.Choices[0].Message.Content)
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return fmt.Errorf("parsing model response: %w", err)
	}
	return nil
}

func cleanModelResponse(response string) string {
	// Trim unnecessary whitespace
	response = strings.TrimSpace(response)

	response = strings.TrimPrefix(response, "```json")
	response = strings.TrimPrefix(response, "```")
	response = strings.TrimSuffix(response, "```")

	// Standardize quotes in case the model outputs them incorrectly
	response = strings.ReplaceAll(response, "“", `"`) // Left curly quote
	response = strings.ReplaceAll(response, "”", `"`) // Right curly quote

	return strings.TrimSpace(response)
}
