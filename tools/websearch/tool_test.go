package websearch

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func startSearchServer(t *testing.T, results []SearchResultItem) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/search", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(searchResponse{
			Query:           r.URL.Query().Get("q"),
			NumberOfResults: len(results),
			Results:         results,
		})
	})
	return httptest.NewServer(mux)
}

func TestSearchWithCategory(t *testing.T) {
	mockQuery := "test query with category"
	mockItem := SearchResultItem{
		URL:     "https://example.com/test-category",
		Title:   "Test Result with Category",
		Content: "This is a test result content with category.",
	}
	srv := startSearchServer(t, []SearchResultItem{mockItem})
	defer srv.Close()
	ctx := context.Background()
	tool := New(WithBaseURL(srv.URL))
	result, err := tool.Run(ctx, NewInput(NewsCategory, []string{mockQuery}))
	if err != nil {
		t.Fatalf("Error running search: %v", err)
	}
	if len(result.Results) != 1 {
		t.Fatalf("Error number of results, expect 1, but got %d", len(result.Results))
	}
	item := result.Results[0]
	if item.Title != mockItem.Title {
		t.Errorf("Expect title %s, but got %s", mockItem.Title, item.Title)
	}
	if item.URL != mockItem.URL {
		t.Errorf("Expect url %s, but got %s", mockItem.URL, item.URL)
	}
	if item.Query != mockQuery {
		t.Errorf("Expect query %s, but got %s", mockQuery, item.Query)
	}
	if item.Category != NewsCategory {
		t.Errorf("Expect category %s, but got %s", NewsCategory, item.Category)
	}
}

func TestSearchMissingFields(t *testing.T) {
	mockQuery := "query with missing fields"
	mockResults := []SearchResultItem{
		{Title: "Result Missing Content", URL: "https://example.com/1"},
		{Content: "Result Missing Title", URL: "https://example.com/2"},
		{Title: "Result Missing URL", Content: "Some content"},
		{Title: "Valid Result", Content: "Some content", URL: "https://example.com/5"},
	}
	srv := startSearchServer(t, mockResults)
	defer srv.Close()
	ctx := context.Background()
	tool := New(WithBaseURL(srv.URL))
	result, err := tool.Run(ctx, NewInput(EmptyCategory, []string{mockQuery}))
	if err != nil {
		t.Fatalf("Error running search: %v", err)
	}
	if len(result.Results) != 1 {
		t.Fatalf("Error number of results, expect 1, but got %d", len(result.Results))
	}
	if title := result.Results[0].Title; title != "Valid Result" {
		t.Errorf("Expect title Valid Result, but got %s", title)
	}
}

func TestSearchDedupAcrossQueries(t *testing.T) {
	mockResults := []SearchResultItem{
		{Title: "Shared", Content: "Same page", URL: "https://example.com/shared"},
	}
	srv := startSearchServer(t, mockResults)
	defer srv.Close()
	ctx := context.Background()
	tool := New(WithBaseURL(srv.URL))
	result, err := tool.Run(ctx, NewInput(EmptyCategory, []string{"first query", "second query"}))
	if err != nil {
		t.Fatalf("Error running search: %v", err)
	}
	if len(result.Results) != 1 {
		t.Errorf("Error number of results, expect 1, but got %d", len(result.Results))
	}
}

func TestSearchWithMaxResults(t *testing.T) {
	mockResults := []SearchResultItem{
		{Title: "First", Content: "Content", URL: "https://example.com/1"},
		{Title: "Second", Content: "Content", URL: "https://example.com/2"},
		{Title: "Third", Content: "Content", URL: "https://example.com/3"},
	}
	srv := startSearchServer(t, mockResults)
	defer srv.Close()
	ctx := context.Background()
	tool := New(WithBaseURL(srv.URL), WithMaxResults(2))
	result, err := tool.Run(ctx, NewInput(EmptyCategory, []string{"query with max results"}))
	if err != nil {
		t.Fatalf("Error running search: %v", err)
	}
	if len(result.Results) != 2 {
		t.Errorf("Error number of results, expect 2, but got %d", len(result.Results))
	}
}

func TestSearchWithNoResults(t *testing.T) {
	srv := startSearchServer(t, nil)
	defer srv.Close()
	ctx := context.Background()
	tool := New(WithBaseURL(srv.URL))
	result, err := tool.Run(ctx, NewInput(EmptyCategory, []string{"query without results"}))
	if err != nil {
		t.Fatalf("Error running search: %v", err)
	}
	if len(result.Results) != 0 {
		t.Errorf("Error number of results, expect 0, but got %d", len(result.Results))
	}
}
