package realtime

import (
	"github.com/aviary-ai/aviary/agents"
	"github.com/aviary-ai/aviary/schema"
)

type Config struct {
	desc       agents.Descriptor
	dispatcher Dispatcher
	functions  []Function
	answerer   *agents.Agent[schema.Request, schema.Response]
}

type Option func(*Config)

func WithDescriptor(desc agents.Descriptor) Option {
	return func(c *Config) {
		c.desc = desc
	}
}

func WithDispatcher(d Dispatcher) Option {
	return func(c *Config) {
		c.dispatcher = d
	}
}

// WithFunctions appends functions to the registry. Registration order is the
// order dispatchers see them in.
func WithFunctions(fns ...Function) Option {
	return func(c *Config) {
		c.functions = append(c.functions, fns...)
	}
}

// WithAnswerer installs an optional second model pass that rewrites the raw
// function output into a direct answer. Without it the output is returned
// as is.
func WithAnswerer(a *agents.Agent[schema.Request, schema.Response]) Option {
	return func(c *Config) {
		c.answerer = a
	}
}
