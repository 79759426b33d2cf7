package docs

import (
	"github.com/aviary-ai/aviary/agents"
	"github.com/aviary-ai/aviary/components/embedder"
	"github.com/aviary-ai/aviary/components/vectordb"
	"github.com/aviary-ai/aviary/schema"
)

type Config struct {
	desc             agents.Descriptor
	embedder         embedder.Embedder
	engine           vectordb.Engine
	answerer         *agents.Agent[schema.Request, schema.Response]
	contextGenerator func(query string, records []vectordb.Record) string
	searchOptions    []vectordb.SearchOption
}

type Option func(*Config)

func WithDescriptor(desc agents.Descriptor) Option {
	return func(c *Config) {
		c.desc = desc
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

// WithAnswerer installs the model stage that composes the final answer from
// the retrieved chunks. Without it the chunks are returned as is.
func WithAnswerer(a *agents.Agent[schema.Request, schema.Response]) Option {
	return func(c *Config) {
		c.answerer = a
	}
}

func WithContextGenerator(fn func(query string, records []vectordb.Record) string) Option {
	return func(c *Config) {
		c.contextGenerator = fn
	}
}

func WithSearchOptions(opts ...vectordb.SearchOption) Option {
	return func(c *Config) {
		c.searchOptions = opts
	}
}
