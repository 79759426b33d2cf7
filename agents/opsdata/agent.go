package opsdata

import (
	"context"
	"fmt"

	"github.com/aviary-ai/aviary/agents"
	"github.com/aviary-ai/aviary/schema"
)

// Agent answers questions about operational records (flights, bookings,
// crew rosters) by delegating to a hosted data service. The hosted assistant
// is provisioned lazily and reused across invocations.
type Agent struct {
	Config
}

var _ agents.Capability = (*Agent)(nil)

func New(opts ...Option) (*Agent, error) {
	ret := new(Agent)
	for _, opt := range opts {
		opt(&ret.Config)
	}
	if ret.client == nil {
		return nil, agents.NewConfigError("opsdata agent", "missing client")
	}
	if ret.desc.Name == "" {
		ret.desc = agents.Descriptor{
			Name:           "structured_data",
			Description:    "Answers questions about operational records such as flights, bookings and crew rosters.",
			ArgName:        "query",
			ArgDescription: "The operational question to answer.",
		}
	}
	if ret.provisioner == nil {
		ret.provisioner = agents.NewCachingProvisioner(&AssistantProvisioner{
			client:       ret.client,
			instructions: ret.instructions,
			model:        ret.model,
		})
	}
	return ret, nil
}

func (a *Agent) Descriptor() agents.Descriptor {
	return a.desc
}

// Invoke maps the request to a data query, ensures the hosted assistant
// exists and runs the query against it. Requests the translator flags as
// unanswerable never reach the data service.
func (a *Agent) Invoke(ctx context.Context, req *schema.Request) (*schema.Response, error) {
	query := req.Query
	if a.translator != nil {
		opsQuery, err := a.translator.Translate(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", agents.ErrQueryTranslationFailed, err)
		}
		if opsQuery != nil {
			if opsQuery.Unanswerable {
				reason := opsQuery.Reason
				if reason == "" {
					reason = "the request does not map to the operational data"
				}
				return nil, fmt.Errorf("%w: %s", agents.ErrQueryTranslationFailed, reason)
			}
			if opsQuery.Query != "" {
				query = opsQuery.Query
			}
		}
	}
	handle, err := a.provisioner.Ensure(ctx, a.desc)
	if err != nil {
		return nil, err
	}
	content, citations, err := a.client.Ask(ctx, handle.ID, query)
	if err != nil {
		return nil, err
	}
	return schema.NewResponse(content, citations...), nil
}

// AssistantProvisioner creates the hosted assistant backing the agent. Wrap
// it in an agents.CachingProvisioner so creation happens at most once.
type AssistantProvisioner struct {
	client       *Client
	instructions string
	model        string
}

var _ agents.Provisioner = (*AssistantProvisioner)(nil)

func NewAssistantProvisioner(clt *Client, instructions, model string) *AssistantProvisioner {
	return &AssistantProvisioner{client: clt, instructions: instructions, model: model}
}

func (p *AssistantProvisioner) Ensure(ctx context.Context, desc agents.Descriptor) (agents.Handle, error) {
	instructions := p.instructions
	if instructions == "" {
		instructions = desc.Description
	}
	id, err := p.client.CreateAssistant(ctx, desc.Name, instructions, p.model)
	if err != nil {
		return agents.Handle{}, err
	}
	return agents.Handle{ID: id, Endpoint: p.client.baseURL}, nil
}
