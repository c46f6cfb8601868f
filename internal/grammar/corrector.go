// Package grammar provides the grammar-correction client: a narrow
// text-in/text-out contract over a hosted sequence-to-sequence model.
package grammar

import (
	"context"

	"github.com/signbridge/signbridge/internal/model"
)

// TaskPrefix is the fixed marker the correction model expects in front of
// every input sequence.
const TaskPrefix = "gec: "

// Corrector defines the interface for grammar-correction providers.
type Corrector interface {
	// Name returns the provider name
	Name() string

	// Correct runs text-to-text inference and returns the corrected text
	Correct(ctx context.Context, text string) (string, error)

	// IsAvailable checks if the provider is properly configured and reachable
	IsAvailable(ctx context.Context) bool
}

// Config holds grammar-correction provider configuration.
type Config struct {
	// Provider name: "hf", "openai", "ollama", ""
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for hosted providers
	APIKey string

	// BaseURL for custom endpoints (e.g., self-hosted inference)
	BaseURL string

	// Timeout for inference requests
	Timeout int // seconds

	// MaxLength bounds the generated sequence length
	MaxLength int

	// NumBeams for beam-search decoding
	NumBeams int
}

// DefaultConfig returns sensible defaults matching the hosted model the
// service was built around.
func DefaultConfig() Config {
	return Config{
		Provider:  "hf",
		Model:     "prithivida/grammar_error_correcter_v1",
		Timeout:   30,
		MaxLength: 128,
		NumBeams:  5,
	}
}

// ConfigFromModel converts model.GrammarConfig to grammar.Config.
func ConfigFromModel(mc model.GrammarConfig) Config {
	return Config{
		Provider:  mc.Provider,
		Model:     mc.Model,
		APIKey:    mc.APIKey,
		BaseURL:   mc.BaseURL,
		Timeout:   mc.Timeout,
		MaxLength: mc.MaxLength,
		NumBeams:  mc.NumBeams,
	}
}
