package model

import "time"

// Config is the complete application configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Grammar GrammarConfig `yaml:"grammar"`
	Log     LogConfig     `yaml:"log"`
}

// ServerConfig controls the HTTP transport.
type ServerConfig struct {
	Host            string          `yaml:"host"`
	Port            int             `yaml:"port"`
	AllowedOrigins  []string        `yaml:"allowed_origins"`
	ShutdownTimeout time.Duration   `yaml:"shutdown_timeout"`
	RateLimit       RateLimitConfig `yaml:"rate_limit"`
}

// RateLimitConfig controls the optional global token-bucket limiter.
// RPS <= 0 disables rate limiting.
type RateLimitConfig struct {
	RPS   float64 `yaml:"rps"`
	Burst int     `yaml:"burst"`
}

// GrammarConfig identifies the grammar-correction model and provider.
type GrammarConfig struct {
	// Provider name: "hf", "openai", "ollama", "" (disabled)
	Provider string `yaml:"provider"`

	// Model name (provider-specific)
	Model string `yaml:"model"`

	// APIKey for hosted providers (HF_API_TOKEN / OPENAI_API_KEY)
	APIKey string `yaml:"api_key,omitempty"`

	// BaseURL for custom endpoints (e.g., self-hosted inference)
	BaseURL string `yaml:"base_url,omitempty"`

	// Timeout for inference requests, in seconds
	Timeout int `yaml:"timeout"`

	// MaxLength bounds generated sequence length
	MaxLength int `yaml:"max_length"`

	// NumBeams for beam-search decoding
	NumBeams int `yaml:"num_beams"`
}

// LogConfig controls logging output.
type LogConfig struct {
	// Development switches to a human-readable console encoder
	Development bool `yaml:"development"`
}

// DefaultConfig returns the built-in defaults. The grammar model identity
// matches the hosted seq2seq corrector the service was built around.
func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8000,
			AllowedOrigins:  []string{"http://localhost:3000"},
			ShutdownTimeout: 10 * time.Second,
			RateLimit: RateLimitConfig{
				RPS:   0, // disabled
				Burst: 20,
			},
		},
		Grammar: GrammarConfig{
			Provider:  "hf",
			Model:     "prithivida/grammar_error_correcter_v1",
			Timeout:   30,
			MaxLength: 128,
			NumBeams:  5,
		},
		Log: LogConfig{
			Development: false,
		},
	}
}
