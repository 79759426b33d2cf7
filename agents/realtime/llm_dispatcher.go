package realtime

import (
	"context"
	"fmt"
	"strings"

	"github.com/aviary-ai/aviary/agents"
	"github.com/aviary-ai/aviary/components/systemprompt"
	"github.com/aviary-ai/aviary/schema"
)

const functionCatalogueTitle = "Available functions"

// LLMDispatcher routes with a structured output model call. The function
// catalogue is injected into the system prompt so the model picks from the
// registered names only.
type LLMDispatcher struct {
	agent *agents.Agent[schema.Request, Dispatch]
}

var _ Dispatcher = (*LLMDispatcher)(nil)

func NewLLMDispatcher(agent *agents.Agent[schema.Request, Dispatch]) *LLMDispatcher {
	return &LLMDispatcher{agent: agent}
}

func (d *LLMDispatcher) Dispatch(ctx context.Context, req *schema.Request, functions []Function) (*Dispatch, error) {
	d.agent.UnregisterSystemPromptContextProvider(functionCatalogueTitle)
	d.agent.RegisterSystemPromptContextProvider(systemprompt.NewStaticProvider(functionCatalogueTitle, catalogue(functions)))
	var out Dispatch
	if err := d.agent.Run(ctx, req, &out, nil); err != nil {
		return nil, err
	}
	if out.None || out.Function == "" {
		return nil, nil
	}
	return &out, nil
}

func catalogue(functions []Function) string {
	var b strings.Builder
	for _, fn := range functions {
		fmt.Fprintf(&b, "- %s: %s", fn.Name, fn.Description)
		if fn.ArgDescription != "" {
			fmt.Fprintf(&b, " Argument: %s", fn.ArgDescription)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
