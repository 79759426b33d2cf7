package config

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// LLM configures a model client. Secrets are referenced by environment
// variable name rather than stored in the file.
type LLM struct {
	// Provider selects the model client implementation. gemini carries an
	// embeddings API only and cannot back an agent.
	Provider string `yaml:"provider" validate:"required,oneof=openai anthropic cohere gemini"`
	// Model is the model identifier passed to the provider
	Model string `yaml:"model" validate:"required"`
	// BaseURL overrides the provider's default endpoint
	BaseURL string `yaml:"base_url,omitempty"`
	// APIKeyEnv names the environment variable holding the API key
	APIKeyEnv string `yaml:"api_key_env,omitempty"`
	// APIKey is resolved from APIKeyEnv at load time
	APIKey string `yaml:"api_key,omitempty"`
	// Temperature sampling temperature
	Temperature float32 `yaml:"temperature,omitempty"`
	// MaxTokens response token budget
	MaxTokens int `yaml:"max_tokens,omitempty"`
}

// DataService configures the hosted assistants backend of the structured
// data agent.
type DataService struct {
	// Endpoint base URL of the data service
	Endpoint string `yaml:"endpoint" validate:"required,url"`
	// TokenEnv names the environment variable holding the bearer token
	TokenEnv string `yaml:"token_env,omitempty"`
	// Token is resolved from TokenEnv at load time
	Token string `yaml:"token,omitempty"`
	// Model the model the hosted assistant runs on
	Model string `yaml:"model,omitempty"`
}

// Features toggles the realtime agent's function set.
type Features struct {
	// WebSearch enables the web search and scraper functions
	WebSearch bool `yaml:"web_search,omitempty"`
	// SearxngURL base URL of the search instance, required when WebSearch is on
	SearxngURL string `yaml:"searxng_url,omitempty" validate:"required_with=WebSearch,omitempty,url"`
	// FileSearch enables semantic search over ingested documents
	FileSearch bool `yaml:"file_search,omitempty"`
	// Collection names the vector store collection documents live in
	Collection string `yaml:"collection,omitempty"`
}

// Agent is one capability's configuration record.
type Agent struct {
	// Name uniquely identifies the agent
	Name string `yaml:"name" validate:"required"`
	// Description tells the coordinator when the agent applies
	Description string `yaml:"description" validate:"required"`
	// Instructions is the agent's system prompt content
	Instructions string `yaml:"instructions,omitempty"`
	// LLM the model client configuration
	LLM *LLM `yaml:"llm,omitempty"`
	// Data set for agents backed by the hosted data service
	Data *DataService `yaml:"data,omitempty"`
	// Features toggles for the realtime function set
	Features Features `yaml:"features,omitempty"`
}

// Config is the whole deployment description: the coordinator's model plus
// the capability agents it routes across.
type Config struct {
	// LLM the coordinator's own model configuration
	LLM LLM `yaml:"llm" validate:"required"`
	// Embedder the model used to embed documents and queries
	Embedder *LLM `yaml:"embedder,omitempty"`
	// Agents the capability agents to register, in registration order
	Agents []Agent `yaml:"agents" validate:"required,min=1,dive"`
}

var validate = validator.New()

// Load reads a config from a file path or an http(s) URL, resolves
// environment references and validates it. Invalid configs fail loading, not
// first use.
func Load(pathOrURL string) (*Config, error) {
	bs, err := fetch(pathOrURL)
	if err != nil {
		return nil, err
	}
	ret := new(Config)
	if err := yaml.Unmarshal(bs, ret); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	ret.resolveEnv()
	if err := validate.Struct(ret); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return ret, nil
}

func fetch(pathOrURL string) ([]byte, error) {
	if strings.HasPrefix(pathOrURL, "http://") || strings.HasPrefix(pathOrURL, "https://") {
		resp, err := http.Get(pathOrURL)
		if err != nil {
			return nil, fmt.Errorf("fetch config: %w", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("fetch config: %s returned %d", pathOrURL, resp.StatusCode)
		}
		return io.ReadAll(resp.Body)
	}
	bs, err := os.ReadFile(pathOrURL)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return bs, nil
}

func (c *Config) resolveEnv() {
	c.LLM.resolveEnv()
	if c.Embedder != nil {
		c.Embedder.resolveEnv()
	}
	for i := range c.Agents {
		agent := &c.Agents[i]
		if agent.LLM != nil {
			agent.LLM.resolveEnv()
		}
		if agent.Data != nil && agent.Data.Token == "" && agent.Data.TokenEnv != "" {
			agent.Data.Token = os.Getenv(agent.Data.TokenEnv)
		}
	}
}

func (l *LLM) resolveEnv() {
	if l.APIKey == "" && l.APIKeyEnv != "" {
		l.APIKey = os.Getenv(l.APIKeyEnv)
	}
}

// Agent returns the agent record with the given name.
func (c *Config) Agent(name string) (*Agent, error) {
	for i := range c.Agents {
		if c.Agents[i].Name == name {
			return &c.Agents[i], nil
		}
	}
	return nil, fmt.Errorf("agent %q not configured", name)
}
