package opsdata

import (
	"github.com/aviary-ai/aviary/agents"
)

type Config struct {
	desc         agents.Descriptor
	client       *Client
	provisioner  agents.Provisioner
	translator   Translator
	instructions string
	model        string
}

type Option func(*Config)

func WithDescriptor(desc agents.Descriptor) Option {
	return func(c *Config) {
		c.desc = desc
	}
}

func WithClient(clt *Client) Option {
	return func(c *Config) {
		c.client = clt
	}
}

func WithProvisioner(p agents.Provisioner) Option {
	return func(c *Config) {
		c.provisioner = p
	}
}

// WithTranslator installs the stage that maps free text requests onto
// governed data queries before they are forwarded.
func WithTranslator(t Translator) Option {
	return func(c *Config) {
		c.translator = t
	}
}

func WithInstructions(instructions string) Option {
	return func(c *Config) {
		c.instructions = instructions
	}
}

func WithModel(model string) Option {
	return func(c *Config) {
		c.model = model
	}
}
