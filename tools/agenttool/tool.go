package agenttool

import (
	"context"
	"fmt"

	"github.com/aviary-ai/aviary/agents"
	"github.com/aviary-ai/aviary/schema"
	"github.com/aviary-ai/aviary/tools"
)

// Input carries the single free form argument a coordinator passes when it
// decides to use a wrapped capability.
type Input struct {
	schema.Base
	// Argument Natural language request for the wrapped capability.
	Argument string `json:"argument" jsonschema:"title=argument,description=Natural language request for the wrapped capability."`
}

func NewInput(argument string) *Input {
	return &Input{
		Argument: argument,
	}
}

// Tool publishes an agents.Capability as a callable tool. Failures of the
// capability never escape as errors: they surface as a failed response so a
// coordinator can keep working with its other tools.
type Tool struct {
	tools.Config
	capability agents.Capability
}

var _ tools.Tool[Input, schema.Response] = (*Tool)(nil)

func New(c agents.Capability, opts ...tools.Option) *Tool {
	ret := &Tool{
		capability: c,
	}
	for _, opt := range opts {
		opt(&ret.Config)
	}
	desc := c.Descriptor()
	if ret.Title() == "" {
		ret.SetTitle(desc.Name)
	}
	if ret.Description() == "" {
		ret.SetDescription(desc.Description)
	}
	return ret
}

// Descriptor exposes the wrapped capability's published metadata.
func (t *Tool) Descriptor() agents.Descriptor {
	return t.capability.Descriptor()
}

// Call invokes the wrapped capability with a bare argument string. It always
// returns a usable response: any error or panic from the capability is
// converted into a failed response naming the tool and the reason.
func (t *Tool) Call(ctx context.Context, argument string) *schema.Response {
	out, err := t.Run(ctx, NewInput(argument))
	if err != nil {
		return schema.NewFailedResponse(fmt.Sprintf("%s could not complete the request: %s", t.Title(), err))
	}
	return out
}

// Executes the wrapped capability with the given input.
func (t *Tool) Run(ctx context.Context, input *Input) (output *schema.Response, err error) {
	if fn := t.StartHook(); fn != nil {
		fn(ctx, t, input)
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s panicked: %v", t.Title(), r)
			if fn := t.ErrorHook(); fn != nil {
				fn(ctx, t, input, err)
			}
		}
	}()
	req := schema.NewRequest(input.Argument)
	output, err = t.capability.Invoke(ctx, req)
	if err != nil {
		if fn := t.ErrorHook(); fn != nil {
			fn(ctx, t, input, err)
		}
		return nil, err
	}
	if output == nil {
		return nil, fmt.Errorf("%s returned no response", t.Title())
	}
	if fn := t.EndHook(); fn != nil {
		fn(ctx, t, input, output)
	}
	return output, nil
}

func (t *Tool) RunAnonymous(ctx context.Context, input any) (any, error) {
	in, ok := input.(*Input)
	if !ok {
		return nil, fmt.Errorf("invalid input schema")
	}
	return t.Run(ctx, in)
}
