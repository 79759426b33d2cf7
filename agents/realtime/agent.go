package realtime

import (
	"context"
	"fmt"

	"github.com/aviary-ai/aviary/agents"
	"github.com/aviary-ai/aviary/schema"
)

// Agent answers live operational questions by dispatching each request to
// one of its registered functions (clock, weather, search and the like) and
// returning the function's answer.
type Agent struct {
	Config
	byName map[string]Function
}

var _ agents.Capability = (*Agent)(nil)

func New(opts ...Option) (*Agent, error) {
	ret := new(Agent)
	for _, opt := range opts {
		opt(&ret.Config)
	}
	if ret.dispatcher == nil {
		return nil, agents.NewConfigError("realtime agent", "missing dispatcher")
	}
	if len(ret.functions) == 0 {
		return nil, agents.NewConfigError("realtime agent", "no functions registered")
	}
	ret.byName = make(map[string]Function, len(ret.functions))
	for _, fn := range ret.functions {
		if _, found := ret.byName[fn.Name]; found {
			return nil, agents.NewConfigError("realtime agent", fmt.Sprintf("duplicate function %q", fn.Name))
		}
		ret.byName[fn.Name] = fn
	}
	if ret.desc.Name == "" {
		ret.desc = agents.Descriptor{
			Name:           "realtime_info",
			Description:    "Answers questions needing live information such as the current time, weather or web lookups.",
			ArgName:        "query",
			ArgDescription: "The live information question to answer.",
		}
	}
	return ret, nil
}

func (a *Agent) Descriptor() agents.Descriptor {
	return a.desc
}

// Functions returns the registered functions in registration order.
func (a *Agent) Functions() []Function {
	return a.functions
}

// Invoke routes the request to a function and runs it. A request no function
// covers fails with ErrNoApplicableTool; a function error surfaces as
// ErrToolExecutionFailed so the caller can tell routing and execution apart.
func (a *Agent) Invoke(ctx context.Context, req *schema.Request) (*schema.Response, error) {
	dispatch, err := a.dispatcher.Dispatch(ctx, req, a.functions)
	if err != nil {
		return nil, fmt.Errorf("%w: dispatch: %v", agents.ErrNoApplicableTool, err)
	}
	if dispatch == nil {
		return nil, fmt.Errorf("%w: no function covers the request", agents.ErrNoApplicableTool)
	}
	fn, found := a.byName[dispatch.Function]
	if !found {
		return nil, fmt.Errorf("%w: dispatched to unregistered function %q", agents.ErrNoApplicableTool, dispatch.Function)
	}
	content, citations, err := fn.Call(ctx, dispatch.Argument)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", agents.ErrToolExecutionFailed, fn.Name, err)
	}
	if a.answerer != nil {
		if rewritten, err := a.synthesize(ctx, req, fn.Name, content); err == nil && rewritten != "" {
			content = rewritten
		}
	}
	return schema.NewResponse(content, citations...), nil
}

// synthesize rewrites the raw function output into an answer to the
// original request. Failures fall back to the raw output.
func (a *Agent) synthesize(ctx context.Context, req *schema.Request, fnName, content string) (string, error) {
	input := schema.NewRequest(fmt.Sprintf(
		"Using this result from %s:\n\n%s\n\nAnswer the question: %s",
		fnName, content, req.Query)).WithContext(req.Context)
	var out schema.Response
	if err := a.answerer.Run(ctx, input, &out, nil); err != nil {
		return "", err
	}
	return out.Content, nil
}
