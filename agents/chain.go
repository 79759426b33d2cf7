package agents

import (
	"context"
	"errors"

	"github.com/aviary-ai/aviary/components"
	"github.com/aviary-ai/aviary/schema"
)

// Chain agents chain
type Chain[I schema.Schema, O schema.Schema] struct {
	agents []ChainableAgent
}

// NewChain returns a new Chain instance
func NewChain[I schema.Schema, O schema.Schema](agents ...ChainableAgent) *Chain[I, O] {
	return &Chain[I, O]{
		agents: agents,
	}
}

// Run runs the chat agents with the given user input synchronously.
func (c *Chain[I, O]) Run(ctx context.Context, input *I, output *O) ([]components.ApiResponse, error) {
	l := len(c.agents)
	apiRespList := make([]components.ApiResponse, 0, l)
	var (
		in  any = input
		out any
	)
	for _, agent := range c.agents {
		apiResp := new(components.ApiResponse)
		ret, err := agent.RunForChain(ctx, in, apiResp)
		if err != nil {
			return apiRespList, err
		}
		in = ret
		out = ret
		apiRespList = append(apiRespList, *apiResp)
	}
	outO, ok := out.(*O)
	if !ok {
		return apiRespList, errors.New("invalid output schema")
	}
	*output = *outO
	return apiRespList, nil
}

// RunForChain runs the chat agents with the given user input for chain.
func (c *Chain[I, O]) RunForChain(ctx context.Context, input any, apiResp *components.ApiResponse) (any, error) {
	in, ok := input.(*I)
	if !ok {
		return nil, errors.New("invalid input schema")
	}
	out := new(O)
	apiRespList, err := c.Run(ctx, in, out)
	if err != nil {
		return nil, err
	}
	if apiResp != nil {
		for _, v := range apiRespList {
			if v.Usage == nil {
				continue
			}
			if apiResp.Usage == nil {
				apiResp.Usage = new(components.ApiUsage)
			}
			apiResp.Usage.Add(v.Usage)
		}
	}
	return out, nil
}

func (c *Chain[I, O]) Name() string {
	return "Chain"
}
