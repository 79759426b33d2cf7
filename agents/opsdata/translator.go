package opsdata

import (
	"context"

	"github.com/aviary-ai/aviary/agents"
	"github.com/aviary-ai/aviary/schema"
)

// Translator maps a free text request onto a governed data query. Returning
// an OpsQuery with Unanswerable set keeps the request away from the data
// service entirely.
type Translator interface {
	Translate(ctx context.Context, req *schema.Request) (*OpsQuery, error)
}

type TranslatorFunc func(ctx context.Context, req *schema.Request) (*OpsQuery, error)

func (f TranslatorFunc) Translate(ctx context.Context, req *schema.Request) (*OpsQuery, error) {
	return f(ctx, req)
}

// LLMTranslator produces the governed query with a structured output model
// call.
type LLMTranslator struct {
	agent *agents.Agent[schema.Request, OpsQuery]
}

var _ Translator = (*LLMTranslator)(nil)

func NewLLMTranslator(agent *agents.Agent[schema.Request, OpsQuery]) *LLMTranslator {
	return &LLMTranslator{agent: agent}
}

func (t *LLMTranslator) Translate(ctx context.Context, req *schema.Request) (*OpsQuery, error) {
	var out OpsQuery
	if err := t.agent.Run(ctx, req, &out, nil); err != nil {
		return nil, err
	}
	return &out, nil
}
