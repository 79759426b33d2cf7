package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aviary-ai/aviary/agents"
	"github.com/aviary-ai/aviary/components/systemprompt"
	"github.com/aviary-ai/aviary/schema"
)

const availableToolsTitle = "Available tools"

// PlannedCall is one tool invocation a planning model decided on.
type PlannedCall struct {
	// Tool name of the tool to call
	Tool string `json:"tool" jsonschema:"title=tool,description=Name of the tool to call."`
	// Argument the free form argument to call it with
	Argument string `json:"argument" jsonschema:"title=argument,description=The argument to call the tool with."`
}

// Plan is the structured output of the planning model: the tool calls a
// request needs, empty when no tool applies.
type Plan struct {
	schema.Base
	// Calls the tool invocations the request needs, empty when none applies
	Calls []PlannedCall `json:"calls,omitempty" jsonschema:"title=calls,description=The tool invocations the request needs. Leave empty when no tool applies."`
}

func (p Plan) String() string {
	bs, _ := json.Marshal(p)
	return string(bs)
}

// LLMSelector plans tool calls with a structured output model call. The
// descriptor catalogue is injected into the system prompt, and names the
// model invents that match no registered tool are dropped from the plan.
type LLMSelector struct {
	agent *agents.Agent[schema.Request, Plan]
}

var _ Selector = (*LLMSelector)(nil)

func NewLLMSelector(agent *agents.Agent[schema.Request, Plan]) *LLMSelector {
	return &LLMSelector{agent: agent}
}

func (s *LLMSelector) Select(ctx context.Context, req *schema.Request, available []agents.Descriptor) ([]Selection, error) {
	s.agent.UnregisterSystemPromptContextProvider(availableToolsTitle)
	s.agent.RegisterSystemPromptContextProvider(systemprompt.NewStaticProvider(availableToolsTitle, describeTools(available)))
	var plan Plan
	if err := s.agent.Run(ctx, req, &plan, nil); err != nil {
		return nil, err
	}
	known := make(map[string]struct{}, len(available))
	for _, desc := range available {
		known[desc.Name] = struct{}{}
	}
	ret := make([]Selection, 0, len(plan.Calls))
	for _, call := range plan.Calls {
		if _, found := known[call.Tool]; !found {
			continue
		}
		argument := call.Argument
		if argument == "" {
			argument = req.Query
		}
		ret = append(ret, Selection{Name: call.Tool, Argument: argument})
	}
	return ret, nil
}

func describeTools(available []agents.Descriptor) string {
	var b strings.Builder
	for _, desc := range available {
		fmt.Fprintf(&b, "- %s: %s", desc.Name, desc.Description)
		if desc.ArgDescription != "" {
			fmt.Fprintf(&b, " Argument %q: %s", desc.ArgName, desc.ArgDescription)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
