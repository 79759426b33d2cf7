package agents

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/aviary-ai/aviary/components"
	"github.com/aviary-ai/aviary/schema"
)

func TestAgentHooksAndMemory(t *testing.T) {
	ctx := context.Background()
	agent := NewAgent[schema.Request, schema.Response](WithName("test-agent"))
	var started, ended bool
	agent.SetStartHook(func(_ context.Context, _ *Agent[schema.Request, schema.Response], _ *schema.Request) {
		started = true
	})
	agent.SetEndHook(func(_ context.Context, _ *Agent[schema.Request, schema.Response], _ *schema.Request, _ *schema.Response, _ *components.ApiResponse) {
		ended = true
	})
	input := schema.NewRequest("what flights are delayed at ORD?")
	output := new(schema.Response)
	if err := agent.Run(ctx, input, output, nil); err != nil {
		t.Fatal(err)
	}
	if !started || !ended {
		t.Errorf("expecting hooks to fire, started=%v ended=%v", started, ended)
	}
	// user input plus assistant output
	if got := agent.Memory().MessageCount(); got != 2 {
		t.Errorf("expecting 2 messages in memory, got %d", got)
	}
}

func TestAgentRunForChainTypeMismatch(t *testing.T) {
	agent := NewAgent[schema.Request, schema.Response]()
	if _, err := agent.RunForChain(context.Background(), "not a request", nil); err == nil {
		t.Error("expecting error for invalid input schema")
	}
}

type doubler struct{}

func (doubler) Name() string { return "doubler" }

func (doubler) RunForChain(_ context.Context, input any, _ *components.ApiResponse) (any, error) {
	in, ok := input.(*schema.String)
	if !ok {
		return nil, errors.New("invalid input schema")
	}
	out := schema.String(string(*in) + string(*in))
	return &out, nil
}

func TestChain(t *testing.T) {
	chain := NewChain[schema.String, schema.String](doubler{}, doubler{})
	in := schema.String("ab")
	out := new(schema.String)
	if _, err := chain.Run(context.Background(), &in, out); err != nil {
		t.Fatal(err)
	}
	if string(*out) != "abababab" {
		t.Errorf("expecting abababab, got %s", *out)
	}
}

func TestCachingProvisioner(t *testing.T) {
	var calls atomic.Int32
	inner := ProvisionerFunc(func(_ context.Context, desc Descriptor) (Handle, error) {
		n := calls.Add(1)
		return Handle{ID: fmt.Sprintf("%s-%d", desc.Name, n)}, nil
	})
	p := NewCachingProvisioner(inner)
	desc := Descriptor{Name: "airline-ops-data"}
	first, err := p.Ensure(context.Background(), desc)
	if err != nil {
		t.Fatal(err)
	}
	second, err := p.Ensure(context.Background(), desc)
	if err != nil {
		t.Fatal(err)
	}
	if first.ID != second.ID {
		t.Errorf("expecting the same handle, got %s and %s", first.ID, second.ID)
	}
	if calls.Load() != 1 {
		t.Errorf("expecting 1 provisioning call, got %d", calls.Load())
	}
}
