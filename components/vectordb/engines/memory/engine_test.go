package memory

import (
	"context"
	"testing"

	"github.com/aviary-ai/aviary/components/embedder"
	"github.com/aviary-ai/aviary/components/vectordb"
)

func seed(t *testing.T, e *Engine) {
	t.Helper()
	ctx := context.Background()
	records := []vectordb.Record{
		{Embedding: embedder.Embedding{Object: "gate assignments for terminal A", Embedding: []float64{1, 0, 0}, Meta: map[string]string{"doc": "ops"}}},
		{Embedding: embedder.Embedding{Object: "catering schedule for terminal B", Embedding: []float64{0, 1, 0}, Meta: map[string]string{"doc": "catering"}}},
		{Embedding: embedder.Embedding{Object: "gate maintenance windows", Embedding: []float64{0.9, 0.1, 0}, Meta: map[string]string{"doc": "ops"}}},
	}
	if err := e.Insert(ctx, "docs", records...); err != nil {
		t.Fatal(err)
	}
}

func TestSearchRanksBySimilarity(t *testing.T) {
	e, err := New()
	if err != nil {
		t.Fatal(err)
	}
	seed(t, e)
	results, err := e.Search(context.Background(), []float64{1, 0, 0}, vectordb.SearchWithCollection("docs"), vectordb.SearchWithTopK(2))
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("expecting 2 results, got %d", len(results))
	}
	if results[0].Embedding.Object != "gate assignments for terminal A" {
		t.Errorf("unexpected top result: %s", results[0].Embedding.Object)
	}
	if results[0].Score < results[1].Score {
		t.Error("expecting results sorted by descending score")
	}
}

func TestSearchMetaFilter(t *testing.T) {
	e, err := New()
	if err != nil {
		t.Fatal(err)
	}
	seed(t, e)
	results, err := e.Search(context.Background(), []float64{0, 1, 0},
		vectordb.SearchWithCollection("docs"),
		vectordb.SearchWithTopK(10),
		vectordb.SearchWithMeta(map[string]string{"doc": "ops"}),
	)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("expecting 2 results, got %d", len(results))
	}
	for _, r := range results {
		if r.Embedding.Meta["doc"] != "ops" {
			t.Errorf("unexpected record: %s", r.Embedding.Object)
		}
	}
}

func TestSearchIncludeExclude(t *testing.T) {
	e, err := New()
	if err != nil {
		t.Fatal(err)
	}
	seed(t, e)
	results, err := e.Search(context.Background(), []float64{1, 0, 0},
		vectordb.SearchWithCollection("docs"),
		vectordb.SearchWithTopK(10),
		vectordb.SearchWithInclude("gate"),
		vectordb.SearchWithExclude("maintenance"),
	)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 {
		t.Fatalf("expecting 1 result, got %d", len(results))
	}
	if results[0].Embedding.Object != "gate assignments for terminal A" {
		t.Errorf("unexpected result: %s", results[0].Embedding.Object)
	}
}

func TestSearchMinScore(t *testing.T) {
	e, err := New(vectordb.WithMinScore(0.999))
	if err != nil {
		t.Fatal(err)
	}
	seed(t, e)
	results, err := e.Search(context.Background(), []float64{1, 0, 0},
		vectordb.SearchWithCollection("docs"),
		vectordb.SearchWithTopK(10),
	)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 {
		t.Fatalf("expecting 1 result above the threshold, got %d", len(results))
	}
}

func TestInsertAssignsIDs(t *testing.T) {
	e, err := New()
	if err != nil {
		t.Fatal(err)
	}
	seed(t, e)
	col, err := e.Collection(context.Background(), "docs")
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range col.Records() {
		if r.ID == "" {
			t.Error("expecting generated record ID")
		}
	}
}
