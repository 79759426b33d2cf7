package orchestrator

import (
	"context"

	"github.com/aviary-ai/aviary/agents"
	"github.com/aviary-ai/aviary/schema"
)

// Selection names a registered tool and the argument to invoke it with.
type Selection struct {
	// Name of the selected tool
	Name string
	// Argument the free form argument to pass
	Argument string
}

// Selector decides which of the available tools a request needs and with
// what arguments. Returning no selections means none of the tools can answer
// the request.
type Selector interface {
	Select(ctx context.Context, req *schema.Request, available []agents.Descriptor) ([]Selection, error)
}

// SelectorFunc adapts a function to the Selector interface.
type SelectorFunc func(ctx context.Context, req *schema.Request, available []agents.Descriptor) ([]Selection, error)

func (f SelectorFunc) Select(ctx context.Context, req *schema.Request, available []agents.Descriptor) ([]Selection, error) {
	return f(ctx, req, available)
}
