package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/signbridge/signbridge/internal/grammar"
	"github.com/signbridge/signbridge/internal/model"
	"github.com/signbridge/signbridge/internal/server"
)

var (
	serveHost       string
	servePort       int
	serveOrigins    []string
	serveRPS        float64
	serveBurst      int
	grammarProvider string
	grammarModel    string
	grammarBaseURL  string
	grammarTimeout  int
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	Long: `Serve starts the HTTP API:
- GET  /              liveness message
- POST /beautify      direct grammar correction of raw text
- POST /process-words structured gloss-word composition

Example:
  signbridge serve
  signbridge serve --port 8080 --origin http://localhost:3000
  signbridge serve --grammar-provider openai --grammar-model gpt-4o-mini`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	defaults := model.DefaultConfig()

	serveCmd.Flags().StringVar(&serveHost, "host", defaults.Server.Host, "listen host")
	serveCmd.Flags().IntVar(&servePort, "port", defaults.Server.Port, "listen port")
	serveCmd.Flags().StringSliceVar(&serveOrigins, "origin", defaults.Server.AllowedOrigins, "allowed CORS origin (repeatable)")
	serveCmd.Flags().Float64Var(&serveRPS, "rps", defaults.Server.RateLimit.RPS, "global rate limit in requests/second (0 disables)")
	serveCmd.Flags().IntVar(&serveBurst, "burst", defaults.Server.RateLimit.Burst, "rate limit burst size")

	serveCmd.Flags().StringVar(&grammarProvider, "grammar-provider", defaults.Grammar.Provider, "grammar provider (hf, openai, ollama, empty to disable)")
	serveCmd.Flags().StringVar(&grammarModel, "grammar-model", defaults.Grammar.Model, "grammar model name")
	serveCmd.Flags().StringVar(&grammarBaseURL, "grammar-url", "", "grammar endpoint base URL (optional)")
	serveCmd.Flags().IntVar(&grammarTimeout, "grammar-timeout", defaults.Grammar.Timeout, "grammar request timeout in seconds")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := model.DefaultConfig()
	cfg.Server.Host = serveHost
	cfg.Server.Port = servePort
	cfg.Server.AllowedOrigins = serveOrigins
	cfg.Server.RateLimit.RPS = serveRPS
	cfg.Server.RateLimit.Burst = serveBurst
	cfg.Grammar.Provider = grammarProvider
	cfg.Grammar.Model = grammarModel
	cfg.Grammar.BaseURL = grammarBaseURL
	cfg.Grammar.Timeout = grammarTimeout
	cfg.Grammar.APIKey = apiKeyFromEnv(grammarProvider)
	cfg.Log.Development = verbose

	log, err := newLogger(cfg.Log)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	corrector, err := grammar.NewCorrector(grammar.ConfigFromModel(cfg.Grammar))
	if err != nil {
		return fmt.Errorf("init grammar corrector: %w", err)
	}
	if corrector == nil {
		log.Warn("grammar correction disabled; /beautify and fallback composition will fail")
	} else {
		checkCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if !corrector.IsAvailable(checkCtx) {
			log.Warn("grammar model not reachable at startup",
				zap.String("provider", corrector.Name()),
				zap.String("model", cfg.Grammar.Model))
		}
		cancel()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg.Server, log, corrector)
	return srv.ListenAndServe(ctx)
}

func newLogger(cfg model.LogConfig) (*zap.Logger, error) {
	if cfg.Development {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// apiKeyFromEnv resolves the provider API key from the conventional
// environment variables.
func apiKeyFromEnv(provider string) string {
	switch provider {
	case "hf", "huggingface":
		if key := os.Getenv("HF_API_TOKEN"); key != "" {
			return key
		}
		return os.Getenv("HUGGINGFACE_API_TOKEN")
	case "openai":
		return os.Getenv("OPENAI_API_KEY")
	default:
		return ""
	}
}
