package schema

import "encoding/json"

// Schema is message schema interface
type Schema interface {
	// Citations returns the source references carried by the schema
	Citations() []Citation
}

type SchemaPointer interface {
	Schema
	SetCitations([]Citation)
}

func Stringify(s Schema) string {
	if v, ok := s.(String); ok {
		return string(v)
	}
	bs, _ := json.Marshal(s)
	return string(bs)
}

func ToBytes(s Schema) []byte {
	if v, ok := s.(String); ok {
		return []byte(v)
	}
	bs, _ := json.Marshal(s)
	return bs
}
