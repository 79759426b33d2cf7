package docs

import (
	"context"
	"fmt"
	"strings"

	"github.com/aviary-ai/aviary/agents"
	"github.com/aviary-ai/aviary/components"
	"github.com/aviary-ai/aviary/components/embedder"
	"github.com/aviary-ai/aviary/components/vectordb"
	"github.com/aviary-ai/aviary/schema"
)

// Agent answers questions from the ingested document store: the request is
// embedded, the closest chunks are retrieved and an answer is composed from
// them, citing the source documents. Without a model client the retrieved
// chunks are returned directly.
type Agent struct {
	Config
}

var _ agents.Capability = (*Agent)(nil)

func New(opts ...Option) (*Agent, error) {
	ret := new(Agent)
	for _, opt := range opts {
		opt(&ret.Config)
	}
	if ret.embedder == nil {
		return nil, agents.NewConfigError("docs agent", "missing embedder")
	}
	if ret.engine == nil {
		return nil, agents.NewConfigError("docs agent", "missing vector engine")
	}
	if ret.contextGenerator == nil {
		ret.contextGenerator = defaultContextGenerator
	}
	if ret.desc.Name == "" {
		ret.desc = agents.Descriptor{
			Name:           "knowledge_base",
			Description:    "Answers questions from ingested reference documents such as policies and manuals.",
			ArgName:        "query",
			ArgDescription: "The question to answer from the documents.",
		}
	}
	return ret, nil
}

func (a *Agent) Descriptor() agents.Descriptor {
	return a.desc
}

// Search embeds the query and retrieves the closest document chunks.
func (a *Agent) Search(ctx context.Context, query string, usage *components.ApiUsage) ([]vectordb.Record, error) {
	embedding := new(embedder.Embedding)
	if err := a.embedder.Embed(ctx, query, embedding, usage); err != nil {
		return nil, fmt.Errorf("%w: embed query: %v", agents.ErrUpstreamUnavailable, err)
	}
	return a.engine.Search(ctx, embedding.Embedding, a.searchOptions...)
}

func (a *Agent) Invoke(ctx context.Context, req *schema.Request) (*schema.Response, error) {
	records, err := a.Search(ctx, req.Query, nil)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("no relevant documents found for: %s", req.Query)
	}
	citations := make([]schema.Citation, 0, len(records))
	for _, record := range records {
		citation := schema.Citation{Snippet: record.Embedding.Object}
		if meta := record.Embedding.Meta; meta != nil {
			citation.Source = meta["filename"]
			if citation.Source == "" {
				citation.Source = meta["source"]
			}
		}
		citations = append(citations, citation)
	}

	if a.answerer == nil {
		return schema.NewResponse(joinChunks(records), citations...), nil
	}

	input := schema.NewRequest(a.contextGenerator(req.Query, records)).WithContext(req.Context)
	var out schema.Response
	if err := a.answerer.Run(ctx, input, &out, nil); err != nil {
		return nil, fmt.Errorf("%w: compose answer: %v", agents.ErrUpstreamUnavailable, err)
	}
	return schema.NewResponse(out.Content, citations...), nil
}

func joinChunks(records []vectordb.Record) string {
	parts := make([]string, 0, len(records))
	for _, record := range records {
		parts = append(parts, record.Embedding.Object)
	}
	return strings.Join(parts, "\n\n")
}

func defaultContextGenerator(query string, records []vectordb.Record) string {
	sb := new(strings.Builder)
	sb.WriteString("Based on the following information:\n\n")
	for i, record := range records {
		fmt.Fprintf(sb, "%d. %s\n", i+1, record.Embedding.Object)
		if meta := record.Embedding.Meta; meta != nil {
			for k, v := range meta {
				fmt.Fprintf(sb, "  - %s: %s\n", k, v)
			}
		}
	}
	fmt.Fprintf(sb, "\nPlease provide a comprehensive answer to this question: %s", query)
	return sb.String()
}
