package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/signbridge/signbridge/internal/compose"
	"github.com/signbridge/signbridge/internal/grammar"
	"github.com/signbridge/signbridge/internal/model"
)

var (
	composeContext  string
	composeFreeText bool
	composeProvider string
	composeModel    string
	composeBaseURL  string
	composeTimeout  time.Duration
)

// composeCmd represents the compose command
var composeCmd = &cobra.Command{
	Use:   "compose <gloss>...",
	Short: "Compose a sentence from gloss words without running the server",
	Long: `Compose runs the sentence engine once on the given gloss words and prints
the result. By default the words are treated as a structured, pre-segmented
sequence; --free-text joins them and routes through the free-text path
(lowercasing, whitespace split, and a smoothing correction pass for inputs of
more than three words).

The grammar provider is only contacted when no sentence pattern matches or
when the free-text smoothing pass applies. Pass --grammar-provider "" to run
fully offline.

Example:
  signbridge compose need pain medication
  signbridge compose --free-text pain head yesterday morning
  signbridge compose --grammar-provider "" pain head`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCompose,
}

func init() {
	rootCmd.AddCommand(composeCmd)

	defaults := model.DefaultConfig()

	composeCmd.Flags().StringVar(&composeContext, "context", "medical", "context label for structured composition")
	composeCmd.Flags().BoolVar(&composeFreeText, "free-text", false, "treat the arguments as free text")
	composeCmd.Flags().StringVar(&composeProvider, "grammar-provider", defaults.Grammar.Provider, "grammar provider (hf, openai, ollama, empty to disable)")
	composeCmd.Flags().StringVar(&composeModel, "grammar-model", defaults.Grammar.Model, "grammar model name")
	composeCmd.Flags().StringVar(&composeBaseURL, "grammar-url", "", "grammar endpoint base URL (optional)")
	composeCmd.Flags().DurationVar(&composeTimeout, "timeout", 30*time.Second, "overall timeout")
}

func runCompose(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), composeTimeout)
	defer cancel()

	corrector, err := grammar.NewCorrector(grammar.Config{
		Provider: composeProvider,
		Model:    composeModel,
		BaseURL:  composeBaseURL,
		APIKey:   apiKeyFromEnv(composeProvider),
	})
	if err != nil {
		return fmt.Errorf("init grammar corrector: %w", err)
	}

	composer := compose.New(corrector)

	var sentence string
	if composeFreeText {
		sentence, err = composer.BeautifyText(ctx, strings.Join(args, " "))
	} else {
		sentence, err = composer.ComposeWords(ctx, args, composeContext)
	}
	if err != nil {
		return err
	}

	fmt.Println(sentence)
	return nil
}
