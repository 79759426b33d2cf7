package schema

// Base is a base schema
type Base struct {
	citations []Citation `json:"-"`
}

// String implements Schema interface
func (r Base) String() string {
	return ""
}

// Citations returns schema citations
func (r Base) Citations() []Citation {
	return r.citations
}

// SetCitations set schema citations
func (r *Base) SetCitations(v []Citation) {
	r.citations = v
}

// AddCitations appends citations to the schema
func (r *Base) AddCitations(v ...Citation) {
	r.citations = append(r.citations, v...)
}
