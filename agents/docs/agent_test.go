package docs

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aviary-ai/aviary/agents"
	"github.com/aviary-ai/aviary/components"
	"github.com/aviary-ai/aviary/components/embedder"
	"github.com/aviary-ai/aviary/components/vectordb"
	"github.com/aviary-ai/aviary/components/vectordb/engines/memory"
	"github.com/aviary-ai/aviary/schema"
)

type stubEmbedder struct {
	embedder.Options
	vectors map[string][]float64
}

func (s *stubEmbedder) Embed(_ context.Context, text string, e *embedder.Embedding, _ *components.ApiUsage) error {
	e.Object = text
	e.Embedding = s.vectors[text]
	return nil
}

func (s *stubEmbedder) BatchEmbed(ctx context.Context, parts []string, usage *components.ApiUsage) ([]embedder.Embedding, error) {
	ret := make([]embedder.Embedding, 0, len(parts))
	for idx, part := range parts {
		var e embedder.Embedding
		if err := s.Embed(ctx, part, &e, usage); err != nil {
			return nil, err
		}
		e.Index = idx
		ret = append(ret, e)
	}
	return ret, nil
}

func (s *stubEmbedder) DotProduct(_ context.Context, target, query *embedder.Embedding) (float64, error) {
	return target.DotProduct(query)
}

func seededAgent(t *testing.T) *Agent {
	t.Helper()
	ctx := context.Background()
	engine, err := memory.New()
	if err != nil {
		t.Fatal(err)
	}
	records := []vectordb.Record{
		{Embedding: embedder.Embedding{
			Object:    "Delayed baggage must be reported within 21 days.",
			Embedding: []float64{1, 0},
			Meta:      map[string]string{"filename": "baggage-policy.pdf"},
		}},
		{Embedding: embedder.Embedding{
			Object:    "Crew rest requirements for long haul flights.",
			Embedding: []float64{0, 1},
		}},
	}
	if err := engine.Insert(ctx, "documents", records...); err != nil {
		t.Fatal(err)
	}
	emb := &stubEmbedder{vectors: map[string][]float64{
		"how long do I have to report delayed baggage?": {1, 0},
		"something unrelated":                           {0, 0},
	}}
	agent, err := New(
		WithEmbedder(emb),
		WithEngine(engine),
		WithSearchOptions(
			vectordb.SearchWithCollection("documents"),
			vectordb.SearchWithTopK(1),
			vectordb.SearchWithMinScore(0.5),
		),
	)
	if err != nil {
		t.Fatal(err)
	}
	return agent
}

func TestInvokeReturnsChunksWithCitations(t *testing.T) {
	agent := seededAgent(t)
	resp, err := agent.Invoke(context.Background(), schema.NewRequest("how long do I have to report delayed baggage?"))
	if err != nil {
		t.Fatal(err)
	}
	if resp.Status != schema.StatusOK {
		t.Errorf("status = %s, want ok", resp.Status)
	}
	if !strings.Contains(resp.Content, "21 days") {
		t.Errorf("content = %q, want matched chunk", resp.Content)
	}
	citations := resp.Citations()
	if len(citations) != 1 || citations[0].Source != "baggage-policy.pdf" {
		t.Errorf("citations = %v, want the source document", citations)
	}
}

func TestInvokeNoMatches(t *testing.T) {
	agent := seededAgent(t)
	_, err := agent.Invoke(context.Background(), schema.NewRequest("something unrelated"))
	if err == nil {
		t.Fatal("request with no matching documents must fail")
	}
}

func TestNewRequiresDependencies(t *testing.T) {
	var cfgErr *agents.ConfigError
	if _, err := New(); !errors.As(err, &cfgErr) {
		t.Errorf("err = %v, want ConfigError", err)
	}
	engine, err := memory.New()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := New(WithEngine(engine)); err == nil {
		t.Error("missing embedder must fail construction")
	}
}
