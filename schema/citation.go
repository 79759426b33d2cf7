package schema

import "encoding/json"

// Citation is a reference to the source record or document a piece of an
// answer was derived from.
type Citation struct {
	// Source identifies the upstream system or document (e.g. a record id, URL or file name)
	Source string `json:"source" jsonschema:"title=source,description=Identifier of the upstream record or document."`
	// Title is a human readable label for the source
	Title string `json:"title,omitempty" jsonschema:"title=title,description=Human readable label for the source."`
	// Snippet is the supporting excerpt, if any
	Snippet string `json:"snippet,omitempty" jsonschema:"title=snippet,description=Supporting excerpt from the source."`
}

func (c Citation) String() string {
	bs, _ := json.Marshal(c)
	return string(bs)
}
