package config

import (
	"fmt"

	"github.com/bububa/instructor-go/pkg/instructor"
	cohereClient "github.com/cohere-ai/cohere-go/v2/client"
	cohereOption "github.com/cohere-ai/cohere-go/v2/option"
	anthropic "github.com/liushuangls/go-anthropic/v2"
	openai "github.com/sashabaranov/go-openai"
)

// Client builds the structured output client the configuration describes.
func (l *LLM) Client() (instructor.Instructor, error) {
	switch l.Provider {
	case "anthropic":
		opts := make([]anthropic.ClientOption, 0, 1)
		if l.BaseURL != "" {
			opts = append(opts, anthropic.WithBaseURL(l.BaseURL))
		}
		clt := anthropic.NewClient(l.APIKey, opts...)
		return instructor.FromAnthropic(clt, instructor.WithMode(instructor.ModeJSON), instructor.WithMaxRetries(3), instructor.WithValidation()), nil
	case "cohere":
		opts := make([]cohereOption.RequestOption, 0, 2)
		opts = append(opts, cohereOption.WithToken(l.APIKey))
		if l.BaseURL != "" {
			opts = append(opts, cohereOption.WithBaseURL(l.BaseURL))
		}
		clt := cohereClient.NewClient(opts...)
		return instructor.FromCohere(clt, instructor.WithMode(instructor.ModeJSON), instructor.WithMaxRetries(3), instructor.WithValidation()), nil
	case "openai":
		cfg := openai.DefaultConfig(l.APIKey)
		if l.BaseURL != "" {
			cfg.BaseURL = l.BaseURL
		}
		clt := openai.NewClientWithConfig(cfg)
		return instructor.FromOpenAI(clt, instructor.WithMode(instructor.ModeJSON), instructor.WithMaxRetries(3), instructor.WithValidation()), nil
	case "gemini":
		return nil, fmt.Errorf("provider gemini serves embeddings only and cannot back an agent")
	}
	return nil, fmt.Errorf("unknown provider %q", l.Provider)
}

// OpenAIClient builds a raw client for concerns instructor does not cover,
// such as embeddings.
func (l *LLM) OpenAIClient() *openai.Client {
	cfg := openai.DefaultConfig(l.APIKey)
	if l.BaseURL != "" {
		cfg.BaseURL = l.BaseURL
	}
	return openai.NewClientWithConfig(cfg)
}
