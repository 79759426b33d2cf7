package orchestrator

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/aviary-ai/aviary/agents"
	"github.com/aviary-ai/aviary/schema"
	"github.com/aviary-ai/aviary/tools/agenttool"
)

func newTool(name string, fn func(ctx context.Context, req *schema.Request) (*schema.Response, error)) *agenttool.Tool {
	return agenttool.New(agents.CapabilityFunc{
		Desc: agents.Descriptor{
			Name:           name,
			Description:    name + " capability",
			ArgName:        "query",
			ArgDescription: "the question",
		},
		Fn: fn,
	})
}

func echoTool(name string) *agenttool.Tool {
	return newTool(name, func(ctx context.Context, req *schema.Request) (*schema.Response, error) {
		return schema.NewResponse(name+" says: "+req.Query, schema.Citation{Source: name + ".csv"}), nil
	})
}

func failingTool(name, reason string) *agenttool.Tool {
	return newTool(name, func(ctx context.Context, req *schema.Request) (*schema.Response, error) {
		return nil, errors.New(reason)
	})
}

func selectAll(names ...string) Selector {
	return SelectorFunc(func(ctx context.Context, req *schema.Request, available []agents.Descriptor) ([]Selection, error) {
		ret := make([]Selection, 0, len(names))
		for _, name := range names {
			ret = append(ret, Selection{Name: name, Argument: req.Query})
		}
		return ret, nil
	})
}

func TestHandleAllOK(t *testing.T) {
	orch, err := New(
		WithSelector(selectAll("weather", "delays")),
		WithTools(echoTool("weather"), echoTool("delays")),
	)
	if err != nil {
		t.Fatal(err)
	}
	resp, err := orch.Handle(context.Background(), schema.NewRequest("conditions at JFK"))
	if err != nil {
		t.Fatal(err)
	}
	if resp.Status != schema.StatusOK {
		t.Errorf("status = %s, want ok", resp.Status)
	}
	weatherIdx := strings.Index(resp.Content, "## weather")
	delaysIdx := strings.Index(resp.Content, "## delays")
	if weatherIdx < 0 || delaysIdx < 0 || weatherIdx > delaysIdx {
		t.Errorf("sections out of selection order:\n%s", resp.Content)
	}
	citations := resp.Citations()
	if len(citations) != 2 || citations[0].Source != "weather.csv" || citations[1].Source != "delays.csv" {
		t.Errorf("citations = %v, want merged in selection order", citations)
	}
}

func TestHandleMixed(t *testing.T) {
	orch, err := New(
		WithSelector(selectAll("weather", "delays")),
		WithTools(echoTool("weather"), failingTool("delays", "data service is down")),
	)
	if err != nil {
		t.Fatal(err)
	}
	resp, err := orch.Handle(context.Background(), schema.NewRequest("conditions at JFK"))
	if err != nil {
		t.Fatal(err)
	}
	if resp.Status != schema.StatusPartial {
		t.Errorf("status = %s, want partial", resp.Status)
	}
	if !strings.Contains(resp.Content, "data service is down") {
		t.Errorf("content must record the failure:\n%s", resp.Content)
	}
	if !strings.Contains(resp.Content, "weather says") {
		t.Errorf("content must keep the successful answer:\n%s", resp.Content)
	}
}

func TestHandleAllFailed(t *testing.T) {
	orch, err := New(
		WithSelector(selectAll("weather", "delays")),
		WithTools(failingTool("weather", "offline"), failingTool("delays", "offline")),
	)
	if err != nil {
		t.Fatal(err)
	}
	resp, err := orch.Handle(context.Background(), schema.NewRequest("conditions at JFK"))
	if err != nil {
		t.Fatal(err)
	}
	if resp.Status != schema.StatusFailed {
		t.Errorf("status = %s, want failed", resp.Status)
	}
	if resp.Content == "" {
		t.Error("failed response must explain itself")
	}
}

func TestHandleZeroSelections(t *testing.T) {
	orch, err := New(
		WithSelector(selectAll()),
		WithTools(echoTool("weather")),
	)
	if err != nil {
		t.Fatal(err)
	}
	resp, err := orch.Handle(context.Background(), schema.NewRequest("write me a poem"))
	if err != nil {
		t.Fatal(err)
	}
	if resp.Status != schema.StatusFailed {
		t.Errorf("status = %s, want failed", resp.Status)
	}
	if !strings.Contains(resp.Content, "None of the available tools") {
		t.Errorf("content = %q, want explicit cannot answer", resp.Content)
	}
}

func TestHandleUnknownSelection(t *testing.T) {
	orch, err := New(
		WithSelector(selectAll("bookings")),
		WithTools(echoTool("weather")),
	)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := orch.Handle(context.Background(), schema.NewRequest("my booking")); err == nil {
		t.Fatal("selecting an unregistered tool must fail")
	}
}

func TestToolUnregistered(t *testing.T) {
	orch, err := New(WithSelector(selectAll()), WithTools(echoTool("weather")))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := orch.Tool("bookings"); err == nil {
		t.Fatal("unknown tool lookup must fail")
	}
	if _, err := orch.Tool("weather"); err != nil {
		t.Fatal(err)
	}
}

func TestHandleSingleSelection(t *testing.T) {
	orch, err := New(
		WithSelector(selectAll("weather")),
		WithTools(echoTool("weather"), echoTool("delays")),
	)
	if err != nil {
		t.Fatal(err)
	}
	resp, err := orch.Handle(context.Background(), schema.NewRequest("conditions at JFK"))
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(resp.Content, "##") {
		t.Errorf("single answer must pass through without headers: %q", resp.Content)
	}
	if resp.Content != "weather says: conditions at JFK" {
		t.Errorf("content = %q", resp.Content)
	}
}

func TestHandleOrderIndependentOfCompletion(t *testing.T) {
	slow := newTool("slow", func(ctx context.Context, req *schema.Request) (*schema.Response, error) {
		time.Sleep(50 * time.Millisecond)
		return schema.NewResponse("slow answer"), nil
	})
	fast := newTool("fast", func(ctx context.Context, req *schema.Request) (*schema.Response, error) {
		return schema.NewResponse("fast answer"), nil
	})
	orch, err := New(WithSelector(selectAll("slow", "fast")), WithTools(slow, fast))
	if err != nil {
		t.Fatal(err)
	}
	resp, err := orch.Handle(context.Background(), schema.NewRequest("anything"))
	if err != nil {
		t.Fatal(err)
	}
	slowIdx := strings.Index(resp.Content, "## slow")
	fastIdx := strings.Index(resp.Content, "## fast")
	if slowIdx < 0 || fastIdx < 0 || slowIdx > fastIdx {
		t.Errorf("sections must follow selection order, not completion order:\n%s", resp.Content)
	}
}

func TestHandleCancellation(t *testing.T) {
	blocking := newTool("blocking", func(ctx context.Context, req *schema.Request) (*schema.Response, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	})
	orch, err := New(WithSelector(selectAll("blocking")), WithTools(blocking))
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	resp, err := orch.Handle(ctx, schema.NewRequest("anything"))
	if err != nil {
		t.Fatal(err)
	}
	if resp.Status != schema.StatusFailed {
		t.Errorf("status = %s, want failed after cancellation", resp.Status)
	}
}

func TestHandleSynthesizer(t *testing.T) {
	orch, err := New(
		WithSelector(selectAll("weather", "delays")),
		WithTools(echoTool("weather"), echoTool("delays")),
		WithSynthesizer(SynthesizerFunc(func(ctx context.Context, req *schema.Request, joined string) (string, error) {
			return "synthesized: " + strings.ToUpper(req.Query), nil
		})),
	)
	if err != nil {
		t.Fatal(err)
	}
	resp, err := orch.Handle(context.Background(), schema.NewRequest("conditions at JFK"))
	if err != nil {
		t.Fatal(err)
	}
	if resp.Content != "synthesized: CONDITIONS AT JFK" {
		t.Errorf("content = %q", resp.Content)
	}
	if resp.Status != schema.StatusOK {
		t.Errorf("status = %s, synthesis must not change the status", resp.Status)
	}
}

func TestNewDuplicateTool(t *testing.T) {
	var cfgErr *agents.ConfigError
	_, err := New(WithSelector(selectAll()), WithTools(echoTool("weather"), echoTool("weather")))
	if !errors.As(err, &cfgErr) {
		t.Errorf("err = %v, want ConfigError", err)
	}
}
