package clients

import (
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/spacesedan/sentiment-miner/config"
)

const (
	openAIRequestTimeout = 60 * time.Second // Timeout for individual chat completion requests
)

var (
	openAIClientInstance *OpenAIClient
	openAIOnce           sync.Once
	openAIInitErr        error
)

type OpenAIClient struct {
	Client *openai.Client
	Model  string
}

// GetOpenAIClient initializes (once) and returns the chat completion client
// for the configured backend. The ollama backend reuses the same client
// pointed at Ollama's OpenAI-compatible endpoint.
func GetOpenAIClient() (*OpenAIClient, error) {
	openAIOnce.Do(func() {
		backend := config.GetLLMBackend()

		var cfg openai.ClientConfig
		var model string

		switch backend {
		case config.BackendOpenAI:
			apiKey, err := config.GetOpenAIAPIKey()
			if err != nil {
				openAIInitErr = err
				return
			}
			cfg = openai.DefaultConfig(apiKey)
			model = config.GetOpenAIModel()
		case config.BackendOllama:
			// Ollama serves an OpenAI-compatible API and ignores the key.
			cfg = openai.DefaultConfig("")
			cfg.BaseURL = config.GetOllamaBaseURL()
			model = config.GetOllamaModel()
		default:
			openAIInitErr = fmt.Errorf("backend %q does not use a chat completion client", backend)
			return
		}

		cfg.HTTPClient = &http.Client{Timeout: openAIRequestTimeout}

		openAIClientInstance = &OpenAIClient{
			Client: openai.NewClientWithConfig(cfg),
			Model:  model,
		}
		slog.Info("[OpenAIClient] Chat completion client initialized",
			slog.String("backend", backend),
			slog.String("model", model),
			slog.Duration("timeout", openAIRequestTimeout))
	})
	if openAIInitErr != nil {
		return nil, openAIInitErr
	}
	return openAIClientInstance, nil
}
