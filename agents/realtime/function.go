package realtime

import (
	"context"

	"github.com/aviary-ai/aviary/schema"
)

// Function is one action the agent can perform on behalf of a request. The
// argument is a single free form string; the function decides how to read it.
type Function struct {
	// Name uniquely identifies the function within an agent
	Name string
	// Description tells the dispatcher when the function applies
	Description string
	// ArgDescription documents the argument the function expects
	ArgDescription string
	// Call performs the action and returns the answer text with its sources
	Call func(ctx context.Context, argument string) (string, []schema.Citation, error)
}
