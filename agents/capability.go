package agents

import (
	"context"

	"github.com/aviary-ai/aviary/schema"
)

// Descriptor is the immutable metadata a capability is published under. The
// description is what a coordinator's reasoning uses to decide applicability,
// so it should say what the capability answers, not how.
type Descriptor struct {
	// Name uniquely identifies the capability within a coordinator's tool set
	Name string
	// Description tells a coordinator when the capability applies
	Description string
	// ArgName is the name of the single string argument
	ArgName string
	// ArgDescription documents the argument
	ArgDescription string
}

// Capability is a unit that accepts a natural language request and produces a
// response, possibly by calling further functions or remote services.
// Implementations may perform network I/O but must not mutate local state
// across invocations.
type Capability interface {
	Descriptor() Descriptor
	Invoke(ctx context.Context, req *schema.Request) (*schema.Response, error)
}

// CapabilityFunc adapts a function to the Capability interface.
type CapabilityFunc struct {
	Desc Descriptor
	Fn   func(ctx context.Context, req *schema.Request) (*schema.Response, error)
}

var _ Capability = (*CapabilityFunc)(nil)

func (c CapabilityFunc) Descriptor() Descriptor {
	return c.Desc
}

func (c CapabilityFunc) Invoke(ctx context.Context, req *schema.Request) (*schema.Response, error) {
	return c.Fn(ctx, req)
}
