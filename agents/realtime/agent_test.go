package realtime

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/aviary-ai/aviary/agents"
	"github.com/aviary-ai/aviary/schema"
	"github.com/aviary-ai/aviary/tools/calculator"
	"github.com/aviary-ai/aviary/tools/clock"
)

func testRules() *RulesDispatcher {
	return NewRulesDispatcher(
		Rule{Keywords: []string{"time", "clock"}, Function: "clock", Argument: func(req *schema.Request) string { return "" }},
		Rule{Keywords: []string{"calculate", "+"}, Function: "calculator", Argument: func(req *schema.Request) string {
			return strings.TrimPrefix(req.Query, "calculate ")
		}},
	)
}

func newTestAgent(t *testing.T, opts ...Option) *Agent {
	t.Helper()
	clockTool := clock.New()
	clockTool.SetNow(func() time.Time {
		return time.Date(2025, 6, 1, 15, 30, 0, 0, time.UTC)
	})
	opts = append([]Option{
		WithDispatcher(testRules()),
		WithFunctions(ClockFunction(clockTool), CalculatorFunction(calculator.New())),
	}, opts...)
	agent, err := New(opts...)
	if err != nil {
		t.Fatal(err)
	}
	return agent
}

func TestInvokeClock(t *testing.T) {
	agent := newTestAgent(t)
	resp, err := agent.Invoke(context.Background(), schema.NewRequest("what time is it"))
	if err != nil {
		t.Fatal(err)
	}
	if resp.Status != schema.StatusOK {
		t.Errorf("status = %s, want ok", resp.Status)
	}
	if !strings.Contains(resp.Content, "2025-06-01 15:30:00") {
		t.Errorf("content = %q, want fixed time", resp.Content)
	}
}

func TestInvokeCalculator(t *testing.T) {
	agent := newTestAgent(t)
	resp, err := agent.Invoke(context.Background(), schema.NewRequest("calculate 2 + 2"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(resp.Content, "4") {
		t.Errorf("content = %q, want result 4", resp.Content)
	}
}

func TestInvokeNoMatch(t *testing.T) {
	agent := newTestAgent(t)
	_, err := agent.Invoke(context.Background(), schema.NewRequest("tell me a joke"))
	if !errors.Is(err, agents.ErrNoApplicableTool) {
		t.Errorf("err = %v, want ErrNoApplicableTool", err)
	}
}

func TestInvokeUnregisteredDispatch(t *testing.T) {
	agent := newTestAgent(t, WithDispatcher(DispatcherFunc(
		func(ctx context.Context, req *schema.Request, functions []Function) (*Dispatch, error) {
			return &Dispatch{Function: "no_such_function"}, nil
		})))
	_, err := agent.Invoke(context.Background(), schema.NewRequest("anything"))
	if !errors.Is(err, agents.ErrNoApplicableTool) {
		t.Errorf("err = %v, want ErrNoApplicableTool", err)
	}
}

func TestInvokeFunctionError(t *testing.T) {
	broken := Function{
		Name:        "broken",
		Description: "Always fails.",
		Call: func(ctx context.Context, argument string) (string, []schema.Citation, error) {
			return "", nil, errors.New("wire disconnected")
		},
	}
	agent, err := New(
		WithDispatcher(NewRulesDispatcher(Rule{Keywords: []string{""}, Function: "broken"})),
		WithFunctions(broken),
	)
	if err != nil {
		t.Fatal(err)
	}
	_, err = agent.Invoke(context.Background(), schema.NewRequest("anything"))
	if !errors.Is(err, agents.ErrToolExecutionFailed) {
		t.Errorf("err = %v, want ErrToolExecutionFailed", err)
	}
	if err == nil || !strings.Contains(err.Error(), "wire disconnected") {
		t.Errorf("err = %v, want cause preserved", err)
	}
}

func TestNewDuplicateFunction(t *testing.T) {
	fn := ClockFunction(clock.New())
	var cfgErr *agents.ConfigError
	_, err := New(WithDispatcher(testRules()), WithFunctions(fn, fn))
	if !errors.As(err, &cfgErr) {
		t.Errorf("err = %v, want ConfigError", err)
	}
}

func TestRulesDispatcherFirstRuleWins(t *testing.T) {
	d := NewRulesDispatcher(
		Rule{Keywords: []string{"weather"}, Function: "weather"},
		Rule{Keywords: []string{"weather", "time"}, Function: "clock"},
	)
	dispatch, err := d.Dispatch(context.Background(), schema.NewRequest("weather and time please"), nil)
	if err != nil {
		t.Fatal(err)
	}
	if dispatch == nil || dispatch.Function != "weather" {
		t.Errorf("dispatch = %v, want weather", dispatch)
	}
}
