package orchestrator

import (
	"github.com/aviary-ai/aviary/tools/agenttool"
)

type Config struct {
	selector    Selector
	synthesizer Synthesizer
	tools       []*agenttool.Tool
}

type Option func(*Config)

func WithSelector(s Selector) Option {
	return func(c *Config) {
		c.selector = s
	}
}

// WithSynthesizer installs an optional stage that rewrites the joined tool
// answers into one coherent reply. Without it the answers are joined as is.
func WithSynthesizer(s Synthesizer) Option {
	return func(c *Config) {
		c.synthesizer = s
	}
}

// WithTools registers tools. Registration order is the order selectors see
// the descriptors in.
func WithTools(tools ...*agenttool.Tool) Option {
	return func(c *Config) {
		c.tools = append(c.tools, tools...)
	}
}
