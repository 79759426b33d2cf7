package orchestrator

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/aviary-ai/aviary/agents"
	"github.com/aviary-ai/aviary/schema"
	"github.com/aviary-ai/aviary/tools/agenttool"
)

// Orchestrator routes a request across its registered tools: a selector
// decides which tools apply, the selected tools run concurrently, and their
// answers are aggregated into a single response. A failing tool never fails
// the whole request; its failure is recorded in the aggregate instead.
type Orchestrator struct {
	Config
	byName map[string]*agenttool.Tool
}

func New(opts ...Option) (*Orchestrator, error) {
	ret := new(Orchestrator)
	for _, opt := range opts {
		opt(&ret.Config)
	}
	if ret.selector == nil {
		return nil, agents.NewConfigError("orchestrator", "missing selector")
	}
	if len(ret.tools) == 0 {
		return nil, agents.NewConfigError("orchestrator", "no tools registered")
	}
	ret.byName = make(map[string]*agenttool.Tool, len(ret.tools))
	for _, tool := range ret.tools {
		name := tool.Descriptor().Name
		if _, found := ret.byName[name]; found {
			return nil, agents.NewConfigError("orchestrator", fmt.Sprintf("duplicate tool %q", name))
		}
		ret.byName[name] = tool
	}
	return ret, nil
}

// Descriptors returns the registered tools' metadata in registration order.
func (o *Orchestrator) Descriptors() []agents.Descriptor {
	ret := make([]agents.Descriptor, 0, len(o.tools))
	for _, tool := range o.tools {
		ret = append(ret, tool.Descriptor())
	}
	return ret
}

// Tool returns a registered tool by name. Asking for an unregistered name is
// a programming error and fails loudly rather than degrading the answer.
func (o *Orchestrator) Tool(name string) (*agenttool.Tool, error) {
	tool, found := o.byName[name]
	if !found {
		return nil, fmt.Errorf("tool %q is not registered", name)
	}
	return tool, nil
}

// section is one tool's contribution to the aggregate, kept in selection
// order so the final answer is deterministic regardless of completion order.
type section struct {
	name     string
	response *schema.Response
}

// Handle answers a request. Selected tools run concurrently and the
// aggregate is assembled only after every one of them has finished.
// Cancelling ctx cancels the in flight tool calls.
func (o *Orchestrator) Handle(ctx context.Context, req *schema.Request) (*schema.Response, error) {
	selections, err := o.selector.Select(ctx, req, o.Descriptors())
	if err != nil {
		return nil, fmt.Errorf("select tools: %w", err)
	}
	if len(selections) == 0 {
		return schema.NewFailedResponse("None of the available tools can answer this request."), nil
	}
	tools := make([]*agenttool.Tool, len(selections))
	for i, sel := range selections {
		tool, err := o.Tool(sel.Name)
		if err != nil {
			return nil, err
		}
		tools[i] = tool
	}

	sections := make([]section, len(selections))
	var wg sync.WaitGroup
	for i, sel := range selections {
		wg.Add(1)
		go func(i int, tool *agenttool.Tool, argument string) {
			defer wg.Done()
			sections[i] = section{
				name:     tool.Descriptor().Name,
				response: tool.Call(ctx, argument),
			}
		}(i, tools[i], sel.Argument)
	}
	wg.Wait()

	return o.aggregate(ctx, req, sections), nil
}

// aggregate merges the per tool responses. The overall status is ok only
// when every tool fully answered, failed only when none produced a usable
// answer, and partial otherwise.
func (o *Orchestrator) aggregate(ctx context.Context, req *schema.Request, sections []section) *schema.Response {
	var (
		okCount     int
		failedCount int
		citations   []schema.Citation
	)
	for _, s := range sections {
		switch s.response.Status {
		case schema.StatusOK:
			okCount++
		case schema.StatusFailed:
			failedCount++
		}
		citations = append(citations, s.response.Citations()...)
	}

	status := schema.StatusPartial
	switch {
	case okCount == len(sections):
		status = schema.StatusOK
	case failedCount == len(sections):
		status = schema.StatusFailed
	}

	content := joinSections(sections)
	if o.synthesizer != nil && failedCount < len(sections) {
		if synthesized, err := o.synthesizer.Synthesize(ctx, req, content); err == nil && synthesized != "" {
			content = synthesized
		}
	}

	ret := &schema.Response{
		Content: content,
		Status:  status,
	}
	ret.SetCitations(citations)
	return ret
}

func joinSections(sections []section) string {
	if len(sections) == 1 {
		return sections[0].response.Content
	}
	parts := make([]string, 0, len(sections))
	for _, s := range sections {
		parts = append(parts, fmt.Sprintf("## %s\n\n%s", s.name, s.response.Content))
	}
	return strings.Join(parts, "\n\n")
}
