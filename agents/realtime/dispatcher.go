package realtime

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/aviary-ai/aviary/schema"
)

// Dispatch is the outcome of routing a request: the name of the chosen
// function and the argument to call it with. None is set when no registered
// function applies.
type Dispatch struct {
	schema.Base
	// Function name of the chosen function
	Function string `json:"function,omitempty" jsonschema:"title=function,description=Name of the chosen function."`
	// Argument the argument to call the function with
	Argument string `json:"argument,omitempty" jsonschema:"title=argument,description=The argument to call the function with."`
	// None set when no registered function applies to the request
	None bool `json:"none,omitempty" jsonschema:"title=none,description=Set when no registered function applies."`
}

func (d Dispatch) String() string {
	bs, _ := json.Marshal(d)
	return string(bs)
}

// Dispatcher routes a request to one of the registered functions. A nil
// dispatch with a nil error means no function applies.
type Dispatcher interface {
	Dispatch(ctx context.Context, req *schema.Request, functions []Function) (*Dispatch, error)
}

// DispatcherFunc adapts a function to the Dispatcher interface.
type DispatcherFunc func(ctx context.Context, req *schema.Request, functions []Function) (*Dispatch, error)

func (f DispatcherFunc) Dispatch(ctx context.Context, req *schema.Request, functions []Function) (*Dispatch, error) {
	return f(ctx, req, functions)
}

// Rule routes requests containing any of its keywords to a function.
type Rule struct {
	// Keywords case insensitive substrings that trigger the rule
	Keywords []string
	// Function name of the function to dispatch to
	Function string
	// Argument derives the function argument from the request. When nil the
	// whole query is passed through.
	Argument func(req *schema.Request) string
}

// RulesDispatcher routes by keyword matching, first rule wins. It needs no
// model access, which makes routing deterministic and cheap.
type RulesDispatcher struct {
	rules []Rule
}

var _ Dispatcher = (*RulesDispatcher)(nil)

func NewRulesDispatcher(rules ...Rule) *RulesDispatcher {
	return &RulesDispatcher{rules: rules}
}

func (d *RulesDispatcher) Dispatch(ctx context.Context, req *schema.Request, functions []Function) (*Dispatch, error) {
	query := strings.ToLower(req.Query)
	for _, rule := range d.rules {
		for _, keyword := range rule.Keywords {
			if !strings.Contains(query, strings.ToLower(keyword)) {
				continue
			}
			argument := req.Query
			if rule.Argument != nil {
				argument = rule.Argument(req)
			}
			return &Dispatch{Function: rule.Function, Argument: argument}, nil
		}
	}
	return nil, nil
}
