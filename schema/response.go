package schema

import "encoding/json"

// Status is the outcome class of a capability invocation.
type Status string

const (
	// StatusOK means the invocation fully answered the request
	StatusOK Status = "ok"
	// StatusPartial means some of the request was answered
	StatusPartial Status = "partial"
	// StatusFailed means the invocation produced no usable answer
	StatusFailed Status = "failed"
)

// Response is the output envelope of a capability invocation. The caller owns
// the value after return; there is no shared mutable state with the producer.
type Response struct {
	Base
	// Content is the natural language answer
	Content string `json:"content" jsonschema:"title=content,description=The natural language answer."`
	// Status is the outcome class of the invocation
	Status Status `json:"status" jsonschema:"title=status,enum=ok,enum=partial,enum=failed,description=Outcome class of the invocation."`
}

// NewResponse returns an ok response carrying content.
func NewResponse(content string, citations ...Citation) *Response {
	ret := &Response{
		Content: content,
		Status:  StatusOK,
	}
	ret.SetCitations(citations)
	return ret
}

// NewFailedResponse returns a failed response with an explanation.
func NewFailedResponse(explanation string) *Response {
	return &Response{
		Content: explanation,
		Status:  StatusFailed,
	}
}

// OK reports whether the response carries a usable answer.
func (r Response) OK() bool {
	return r.Status == StatusOK || r.Status == StatusPartial
}

func (r Response) String() string {
	bs, _ := json.Marshal(r)
	return string(bs)
}
