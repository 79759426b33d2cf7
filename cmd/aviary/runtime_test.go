package main

import (
	"errors"
	"testing"

	"github.com/aviary-ai/aviary/agents"
	"github.com/aviary-ai/aviary/config"
)

func TestBuildEmbedderOpenAI(t *testing.T) {
	cfg := &config.Config{
		Embedder: &config.LLM{Provider: "openai", Model: "text-embedding-3-small", APIKey: "sk-test"},
	}
	emb, err := buildEmbedder(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if emb == nil {
		t.Fatal("embedder is nil")
	}
}

func TestBuildEmbedderRejectsUnsupportedProvider(t *testing.T) {
	cfg := &config.Config{
		Embedder: &config.LLM{Provider: "anthropic", Model: "claude-3-5-haiku-latest", APIKey: "sk-test"},
	}
	var cfgErr *agents.ConfigError
	if _, err := buildEmbedder(cfg); !errors.As(err, &cfgErr) {
		t.Errorf("err = %v, want ConfigError for a provider without an embeddings API", err)
	}
}

func TestBuildEmbedderMissing(t *testing.T) {
	if _, err := buildEmbedder(&config.Config{}); err == nil {
		t.Error("expected an error when no embedder is configured")
	}
}
