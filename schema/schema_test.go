package schema

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestStringifyString(t *testing.T) {
	s := String("what flights are delayed at ORD?")
	if got := Stringify(s); got != string(s) {
		t.Errorf("expecting raw string, got %q", got)
	}
}

func TestStringifyStruct(t *testing.T) {
	req := NewRequest("baggage SLA for last week")
	got := Stringify(req)
	if !strings.Contains(got, `"query":"baggage SLA for last week"`) {
		t.Errorf("unexpected json: %s", got)
	}
	var decoded Request
	if err := json.Unmarshal([]byte(got), &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded.Query != req.Query {
		t.Errorf("expecting %q, got %q", req.Query, decoded.Query)
	}
}

func TestRequestWithContext(t *testing.T) {
	req := NewRequest("and tomorrow?")
	turns := []Turn{
		{Role: "user", Content: "weather in New York?"},
		{Role: "assistant", Content: "Sunny, 24°C."},
	}
	withCtx := req.WithContext(turns)
	if len(req.Context) != 0 {
		t.Error("original request mutated")
	}
	if len(withCtx.Context) != 2 {
		t.Errorf("expecting 2 turns, got %d", len(withCtx.Context))
	}
}

func TestResponseOK(t *testing.T) {
	cases := []struct {
		status Status
		ok     bool
	}{
		{StatusOK, true},
		{StatusPartial, true},
		{StatusFailed, false},
	}
	for _, c := range cases {
		resp := Response{Status: c.status}
		if resp.OK() != c.ok {
			t.Errorf("status %s: expecting OK()=%v", c.status, c.ok)
		}
	}
}

func TestResponseCitations(t *testing.T) {
	resp := NewResponse("JFK reports 12 delayed departures.", Citation{Source: "flights:2026-08-29", Title: "Flight status"})
	if len(resp.Citations()) != 1 {
		t.Fatalf("expecting 1 citation, got %d", len(resp.Citations()))
	}
	resp.AddCitations(Citation{Source: "slas:q3"})
	if len(resp.Citations()) != 2 {
		t.Errorf("expecting 2 citations, got %d", len(resp.Citations()))
	}
}
