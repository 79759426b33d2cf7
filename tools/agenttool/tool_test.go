package agenttool

import (
	"context"
	"strings"
	"testing"

	"github.com/aviary-ai/aviary/agents"
	"github.com/aviary-ai/aviary/schema"
)

func descriptor() agents.Descriptor {
	return agents.Descriptor{
		Name:           "flaky",
		Description:    "a capability that may fail",
		ArgName:        "query",
		ArgDescription: "natural language query",
	}
}

func TestCallSuccess(t *testing.T) {
	c := agents.CapabilityFunc{
		Desc: descriptor(),
		Fn: func(_ context.Context, req *schema.Request) (*schema.Response, error) {
			return schema.NewResponse("echo: "+req.Query, schema.Citation{Source: "unit"}), nil
		},
	}
	tool := New(c)
	res := tool.Call(context.Background(), "hello")
	if res.Status != schema.StatusOK {
		t.Fatalf("expecting ok status, got %s", res.Status)
	}
	if res.Content != "echo: hello" {
		t.Errorf("unexpected content: %s", res.Content)
	}
	if len(res.Citations()) != 1 {
		t.Errorf("expecting 1 citation, got %d", len(res.Citations()))
	}
}

func TestCallCapabilityError(t *testing.T) {
	c := agents.CapabilityFunc{
		Desc: descriptor(),
		Fn: func(_ context.Context, _ *schema.Request) (*schema.Response, error) {
			return nil, agents.ErrUpstreamUnavailable
		},
	}
	tool := New(c)
	res := tool.Call(context.Background(), "anything")
	if res.Status != schema.StatusFailed {
		t.Fatalf("expecting failed status, got %s", res.Status)
	}
	if res.Content == "" {
		t.Error("expecting an explanation in the failed response")
	}
	if !strings.Contains(res.Content, "flaky") {
		t.Errorf("expecting the tool name in the explanation, got %s", res.Content)
	}
}

func TestCallCapabilityPanic(t *testing.T) {
	panicking := agents.CapabilityFunc{
		Desc: descriptor(),
		Fn: func(_ context.Context, _ *schema.Request) (*schema.Response, error) {
			panic("boom")
		},
	}
	tool := New(panicking)
	res := tool.Call(context.Background(), "anything")
	if res.Status != schema.StatusFailed {
		t.Fatalf("expecting failed status, got %s", res.Status)
	}
	if !strings.Contains(res.Content, "boom") {
		t.Errorf("expecting the panic value in the explanation, got %s", res.Content)
	}
}

func TestNewUsesDescriptorMetadata(t *testing.T) {
	c := agents.CapabilityFunc{
		Desc: descriptor(),
		Fn: func(_ context.Context, req *schema.Request) (*schema.Response, error) {
			return schema.NewResponse(req.Query), nil
		},
	}
	tool := New(c)
	if tool.Title() != "flaky" {
		t.Errorf("expecting title from descriptor, got %s", tool.Title())
	}
	if tool.Description() != "a capability that may fail" {
		t.Errorf("expecting description from descriptor, got %s", tool.Description())
	}
}
