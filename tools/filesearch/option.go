package filesearch

import (
	"github.com/aviary-ai/aviary/components/embedder"
	"github.com/aviary-ai/aviary/components/vectordb"
	"github.com/aviary-ai/aviary/tools"
)

type Option func(*Config)

func WithToolOptions(opts ...tools.Option) Option {
	return func(c *Config) {
		for _, opt := range opts {
			opt(&c.Config)
		}
	}
}

func WithEmbedder(e embedder.Embedder) Option {
	return func(c *Config) {
		c.embedder = e
	}
}

func WithEngine(engine vectordb.Engine) Option {
	return func(c *Config) {
		c.engine = engine
	}
}

func WithCollection(name string) Option {
	return func(c *Config) {
		c.collection = name
	}
}

func WithTopK(topK int) Option {
	return func(c *Config) {
		c.topK = topK
	}
}

func WithMinScore(score float64) Option {
	return func(c *Config) {
		c.minScore = score
	}
}
