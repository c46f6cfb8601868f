package grammar

import (
	"fmt"
	"strings"
)

// NewCorrector creates a grammar-correction provider based on configuration.
// An empty provider name disables correction and returns (nil, nil).
func NewCorrector(config Config) (Corrector, error) {
	provider := strings.ToLower(config.Provider)

	switch provider {
	case "hf", "huggingface":
		return NewHFProvider(config)

	case "openai":
		return NewOpenAIProvider(config)

	case "ollama":
		return NewOllamaProvider(config)

	case "":
		// No provider configured - correction disabled
		return nil, nil

	default:
		return nil, fmt.Errorf("unknown grammar provider: %s (supported: hf, openai, ollama)", config.Provider)
	}
}
