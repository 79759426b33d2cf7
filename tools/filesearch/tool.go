package filesearch

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aviary-ai/aviary/components"
	"github.com/aviary-ai/aviary/components/embedder"
	"github.com/aviary-ai/aviary/components/vectordb"
	"github.com/aviary-ai/aviary/schema"
	"github.com/aviary-ai/aviary/tools"
)

// Input Tool for searching ingested documents. Use this tool to look up
// policies, manuals and other reference material by meaning rather than by
// keyword.
type Input struct {
	schema.Base
	// Query Natural language query to search the document store with.
	Query string `json:"query" jsonschema:"title=query,description=Natural language query to search the document store with." validate:"required"`
	// TopK Maximum number of matches to return.
	TopK int `json:"top_k,omitempty" jsonschema:"title=top_k,description=Maximum number of matches to return."`
}

func NewInput(query string) *Input {
	return &Input{
		Query: query,
	}
}

func (s Input) String() string {
	bs, _ := json.Marshal(s)
	return string(bs)
}

// Match is a single document chunk matched by the search
type Match struct {
	// Content the matched chunk text
	Content string `json:"content" jsonschema:"title=content,description=The matched chunk text."`
	// Score similarity score of the match
	Score float64 `json:"score" jsonschema:"title=score,description=Similarity score of the match."`
	// Meta source metadata of the matched chunk
	Meta map[string]string `json:"meta,omitempty" jsonschema:"title=meta,description=Source metadata of the matched chunk."`
}

// Output Schema for the output of the FileSearchTool
type Output struct {
	schema.Base
	// Matches list of matched document chunks
	Matches []Match `json:"matches,omitempty" jsonschema:"title=matches,description=List of matched document chunks."`
}

func (s Output) String() string {
	bs, _ := json.Marshal(s)
	return string(bs)
}

type Config struct {
	tools.Config
	embedder   embedder.Embedder
	engine     vectordb.Engine
	collection string
	topK       int
	minScore   float64
}

// Tool answers queries against previously ingested documents by embedding
// the query and searching the vector store.
type Tool struct {
	Config
}

var _ tools.Tool[Input, Output] = (*Tool)(nil)

func New(opts ...Option) (*Tool, error) {
	ret := new(Tool)
	for _, opt := range opts {
		opt(&ret.Config)
	}
	if ret.embedder == nil {
		return nil, fmt.Errorf("filesearch: missing embedder")
	}
	if ret.engine == nil {
		return nil, fmt.Errorf("filesearch: missing vector engine")
	}
	if ret.Title() == "" {
		ret.SetTitle("FileSearchTool")
	}
	if ret.collection == "" {
		ret.collection = "documents"
	}
	if ret.topK == 0 {
		ret.topK = 5
	}
	return ret, nil
}

// Executes the FileSearchTool with the given parameters.
func (t *Tool) Run(ctx context.Context, input *Input) (*Output, error) {
	if input.Query == "" {
		return nil, fmt.Errorf("missing query")
	}
	var (
		query embedder.Embedding
		usage components.ApiUsage
	)
	if err := t.embedder.Embed(ctx, input.Query, &query, &usage); err != nil {
		return nil, err
	}
	topK := input.TopK
	if topK == 0 {
		topK = t.topK
	}
	records, err := t.engine.Search(ctx, query.Embedding,
		vectordb.SearchWithCollection(t.collection),
		vectordb.SearchWithTopK(topK),
		vectordb.SearchWithMinScore(t.minScore),
	)
	if err != nil {
		return nil, err
	}
	out := new(Output)
	for _, record := range records {
		out.Matches = append(out.Matches, Match{
			Content: record.Embedding.Object,
			Score:   record.Score,
			Meta:    record.Embedding.Meta,
		})
	}
	return out, nil
}

func (t *Tool) RunAnonymous(ctx context.Context, input any) (any, error) {
	in, ok := input.(*Input)
	if !ok {
		return nil, fmt.Errorf("invalid input schema")
	}
	return t.Run(ctx, in)
}
