package config

import (
	"fmt"
	"os"
	"strings"
)

const (
	BackendOpenAI = "openai"
	BackendOllama = "ollama"
	BackendVADER  = "vader"
)

const (
	defaultOpenAIModel   = "gpt-4o-mini"
	defaultOllamaBaseURL = "http://localhost:11434/v1"
	defaultOllamaModel   = "llama3.2"

	apiKeyPlaceholder = "your-openai-api-key-here"
)

// GetLLMBackend returns the configured analyzer backend, defaulting to openai.
func GetLLMBackend() string {
	backend := strings.ToLower(os.Getenv("LLM_BACKEND"))
	if backend == "" {
		backend = BackendOpenAI
	}
	return backend
}

// GetOpenAIAPIKey returns the OpenAI API key, rejecting the .env.example
// placeholder so a half-configured environment fails up front.
func GetOpenAIAPIKey() (string, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" || apiKey == apiKeyPlaceholder {
		return "", fmt.Errorf("OPENAI_API_KEY not configured, set it in your .env file")
	}
	return apiKey, nil
}

func GetOpenAIModel() string {
	if model := os.Getenv("OPENAI_MODEL"); model != "" {
		return model
	}
	return defaultOpenAIModel
}

func GetOllamaBaseURL() string {
	if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
		return baseURL
	}
	return defaultOllamaBaseURL
}

func GetOllamaModel() string {
	if model := os.Getenv("OLLAMA_MODEL"); model != "" {
		return model
	}
	return defaultOllamaModel
}
