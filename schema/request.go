package schema

import "encoding/json"

// Turn is a single prior exchange carried as conversation context.
type Turn struct {
	// Role is the speaker of the turn, either "user" or "assistant"
	Role string `json:"role" jsonschema:"title=role,enum=user,enum=assistant,description=Speaker of the turn."`
	// Content is the text of the turn
	Content string `json:"content" jsonschema:"title=content,description=Text of the turn."`
}

// Request is the input envelope for a capability invocation. It is passed by
// value semantics: a capability never retains or mutates the caller's copy.
type Request struct {
	Base
	// Query is the natural language request
	Query string `json:"query" jsonschema:"title=query,description=The natural language request." validate:"required"`
	// Context is the ordered sequence of prior turns, oldest first
	Context []Turn `json:"context,omitempty" jsonschema:"title=context,description=Prior conversation turns, oldest first."`
}

// NewRequest returns a Request carrying a bare query.
func NewRequest(query string) *Request {
	return &Request{Query: query}
}

// WithContext returns a copy of the request with the given prior turns.
func (r Request) WithContext(turns []Turn) *Request {
	r.Context = turns
	return &r
}

func (r Request) String() string {
	bs, _ := json.Marshal(r)
	return string(bs)
}
