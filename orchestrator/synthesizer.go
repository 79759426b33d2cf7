package orchestrator

import (
	"context"

	"github.com/aviary-ai/aviary/agents"
	"github.com/aviary-ai/aviary/components/systemprompt"
	"github.com/aviary-ai/aviary/schema"
)

const toolAnswersTitle = "Tool answers"

// Synthesizer rewrites the joined tool answers into one coherent reply. An
// error leaves the joined answers in place, it never fails the request.
type Synthesizer interface {
	Synthesize(ctx context.Context, req *schema.Request, joined string) (string, error)
}

// SynthesizerFunc adapts a function to the Synthesizer interface.
type SynthesizerFunc func(ctx context.Context, req *schema.Request, joined string) (string, error)

func (f SynthesizerFunc) Synthesize(ctx context.Context, req *schema.Request, joined string) (string, error) {
	return f(ctx, req, joined)
}

// LLMSynthesizer rewrites with a model call. The tool answers are injected
// into the system prompt and the model is asked to answer the original
// request from them alone.
type LLMSynthesizer struct {
	agent *agents.Agent[schema.Request, schema.Response]
}

var _ Synthesizer = (*LLMSynthesizer)(nil)

func NewLLMSynthesizer(agent *agents.Agent[schema.Request, schema.Response]) *LLMSynthesizer {
	return &LLMSynthesizer{agent: agent}
}

func (s *LLMSynthesizer) Synthesize(ctx context.Context, req *schema.Request, joined string) (string, error) {
	s.agent.UnregisterSystemPromptContextProvider(toolAnswersTitle)
	s.agent.RegisterSystemPromptContextProvider(systemprompt.NewStaticProvider(toolAnswersTitle, joined))
	var out schema.Response
	if err := s.agent.Run(ctx, req, &out, nil); err != nil {
		return "", err
	}
	return out.Content, nil
}
