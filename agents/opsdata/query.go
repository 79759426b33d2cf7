package opsdata

import (
	"encoding/json"

	"github.com/aviary-ai/aviary/schema"
)

// OpsQuery is the governed form a free text request is mapped to before it
// is sent to the data service. Requests that do not map onto the
// operational data are flagged instead of being forwarded.
type OpsQuery struct {
	schema.Base
	// Subject the data domain the query targets
	Subject string `json:"subject,omitempty" jsonschema:"title=subject,enum=flights,enum=baggage,enum=routes,enum=airports,enum=slas,description=The data domain the query targets." validate:"required_without=Unanswerable"`
	// Query the rewritten query for the data service
	Query string `json:"query,omitempty" jsonschema:"title=query,description=The rewritten query for the data service." validate:"required_without=Unanswerable"`
	// Filters column filters extracted from the request, e.g. airport code or flight number
	Filters map[string]string `json:"filters,omitempty" jsonschema:"title=filters,description=Column filters extracted from the request."`
	// TimeFrom inclusive start of the time range, RFC 3339, empty when unbounded
	TimeFrom string `json:"time_from,omitempty" jsonschema:"title=time_from,description=Inclusive start of the time range in RFC 3339 format."`
	// TimeTo exclusive end of the time range, RFC 3339, empty when unbounded
	TimeTo string `json:"time_to,omitempty" jsonschema:"title=time_to,description=Exclusive end of the time range in RFC 3339 format."`
	// Unanswerable set when the request cannot be mapped to the data service
	Unanswerable bool `json:"unanswerable,omitempty" jsonschema:"title=unanswerable,description=Set when the request cannot be mapped to a data query."`
	// Reason explanation when the request is unanswerable
	Reason string `json:"reason,omitempty" jsonschema:"title=reason,description=Explanation when the request is unanswerable."`
}

func (q OpsQuery) String() string {
	bs, _ := json.Marshal(q)
	return string(bs)
}
