package grammar

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHFProvider_Correct_Success(t *testing.T) {
	// Mock server
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Verify request
		if r.URL.Path != "/models/prithivida/grammar_error_correcter_v1" {
			t.Errorf("Expected model path, got %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer test-token" {
			t.Errorf("Expected Authorization header Bearer test-token, got %s", r.Header.Get("Authorization"))
		}

		var req hfRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("Failed to decode request: %v", err)
		}
		if req.Inputs != "gec: need doctor help" {
			t.Errorf("Expected task-prefixed input, got %q", req.Inputs)
		}
		if req.Parameters.NumBeams != 5 {
			t.Errorf("Expected 5 beams, got %d", req.Parameters.NumBeams)
		}
		if req.Parameters.MaxLength != 128 {
			t.Errorf("Expected max length 128, got %d", req.Parameters.MaxLength)
		}
		if !req.Parameters.EarlyStopping {
			t.Error("Expected early stopping to be enabled")
		}

		_ = json.NewEncoder(w).Encode([]hfGeneration{
			{GeneratedText: "I need a doctor's help."},
		})
	}))
	defer server.Close()

	config := Config{
		Model:     "prithivida/grammar_error_correcter_v1",
		APIKey:    "test-token",
		BaseURL:   server.URL,
		Timeout:   5,
		MaxLength: 128,
		NumBeams:  5,
	}
	provider, err := NewHFProvider(config)
	if err != nil {
		t.Fatalf("Failed to create provider: %v", err)
	}

	corrected, err := provider.Correct(context.Background(), "need doctor help")
	if err != nil {
		t.Fatalf("Correct failed: %v", err)
	}
	if corrected != "I need a doctor's help." {
		t.Errorf("Unexpected correction: %s", corrected)
	}
}

func TestHFProvider_Correct_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"error": "Model is currently loading"}`))
	}))
	defer server.Close()

	provider, err := NewHFProvider(Config{Model: "m", BaseURL: server.URL, Timeout: 5})
	if err != nil {
		t.Fatalf("Failed to create provider: %v", err)
	}

	_, err = provider.Correct(context.Background(), "need doctor help")
	if err == nil {
		t.Fatal("Expected error, got nil")
	}
	if !strings.Contains(err.Error(), "Model is currently loading") {
		t.Errorf("Expected error message to mention model loading, got %v", err)
	}
}

func TestHFProvider_Correct_MalformedJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{malformed json`))
	}))
	defer server.Close()

	provider, err := NewHFProvider(Config{Model: "m", BaseURL: server.URL, Timeout: 5})
	if err != nil {
		t.Fatalf("Failed to create provider: %v", err)
	}

	_, err = provider.Correct(context.Background(), "need doctor help")
	if err == nil {
		t.Fatal("Expected error, got nil")
	}
}

func TestHFProvider_Correct_EmptyGenerations(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]hfGeneration{})
	}))
	defer server.Close()

	provider, err := NewHFProvider(Config{Model: "m", BaseURL: server.URL, Timeout: 5})
	if err != nil {
		t.Fatalf("Failed to create provider: %v", err)
	}

	_, err = provider.Correct(context.Background(), "need doctor help")
	if err == nil {
		t.Fatal("Expected error for empty generations, got nil")
	}
}

func TestHFProvider_IsAvailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/status/") {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	provider, err := NewHFProvider(Config{Model: "m", BaseURL: server.URL, Timeout: 5})
	if err != nil {
		t.Fatalf("Failed to create provider: %v", err)
	}

	if !provider.IsAvailable(context.Background()) {
		t.Error("Expected available to be true")
	}

	server.Config.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	if provider.IsAvailable(context.Background()) {
		t.Error("Expected available to be false on error")
	}
}

func TestNewHFProvider_NoModel(t *testing.T) {
	_, err := NewHFProvider(Config{})
	if err == nil {
		t.Fatal("Expected error when no model provided, got nil")
	}
	if !strings.Contains(err.Error(), "must be specified") {
		t.Errorf("Expected error about missing model, got %v", err)
	}
}
