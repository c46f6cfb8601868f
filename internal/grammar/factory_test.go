package grammar

import (
	"strings"
	"testing"
)

func TestNewCorrector_Disabled(t *testing.T) {
	corrector, err := NewCorrector(Config{Provider: ""})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if corrector != nil {
		t.Error("Expected nil corrector when provider is empty")
	}
}

func TestNewCorrector_HF(t *testing.T) {
	corrector, err := NewCorrector(Config{Provider: "hf", Model: "prithivida/grammar_error_correcter_v1"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if corrector.Name() != "hf" {
		t.Errorf("Expected provider name hf, got %s", corrector.Name())
	}
}

func TestNewCorrector_ProviderNameCaseInsensitive(t *testing.T) {
	corrector, err := NewCorrector(Config{Provider: "HuggingFace", Model: "m"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if corrector == nil {
		t.Fatal("Expected corrector, got nil")
	}
}

func TestNewCorrector_Unknown(t *testing.T) {
	_, err := NewCorrector(Config{Provider: "transformers"})
	if err == nil {
		t.Fatal("Expected error for unknown provider, got nil")
	}
	if !strings.Contains(err.Error(), "unknown grammar provider") {
		t.Errorf("Expected unknown provider error, got %v", err)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Provider != "hf" {
		t.Errorf("Expected default provider hf, got %s", cfg.Provider)
	}
	if cfg.Model != "prithivida/grammar_error_correcter_v1" {
		t.Errorf("Unexpected default model: %s", cfg.Model)
	}
	if cfg.NumBeams != 5 || cfg.MaxLength != 128 {
		t.Errorf("Unexpected decoding defaults: beams=%d max_length=%d", cfg.NumBeams, cfg.MaxLength)
	}
}
