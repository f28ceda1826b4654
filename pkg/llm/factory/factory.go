package factory

import (
	"fmt"

	"github.com/sharan022005/medic-query-knowledge-assistant/pkg/llm"
	"github.com/sharan022005/medic-query-knowledge-assistant/pkg/llm/gemini"
	"github.com/sharan022005/medic-query-knowledge-assistant/pkg/llm/ollama"
)

// NewProvider builds an llm.Provider from config values.
func NewProvider(providerType, modelName, baseURL, apiKey string) (llm.Provider, error) {
	switch providerType {
	case "ollama":
		if baseURL == "" {
			baseURL = "http://localhost:11434"
		}
		return ollama.New(baseURL, modelName), nil
	case "gemini":
		if apiKey == "" {
			return nil, fmt.Errorf("gemini provider requires an API key")
		}
		return gemini.New(apiKey, modelName), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
