package webscraper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const page = `<!DOCTYPE html>
<html>
<head>
<title>Flight Operations Handbook</title>
<meta name="description" content="Ground handling procedures">
<meta name="author" content="Ops Team">
</head>
<body>
<nav>site navigation</nav>
<main>
<h1>Turnaround</h1>
<p>A standard turnaround takes 45 minutes.</p>
<script>console.log("tracking")</script>
</main>
<footer>copyright</footer>
</body>
</html>`

func TestScrape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(page))
	}))
	defer srv.Close()
	ctx := context.Background()
	tool := New()
	result, err := tool.Run(ctx, NewInput(srv.URL, false))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(result.Content, "Turnaround") {
		t.Errorf("expecting heading in markdown, got %q", result.Content)
	}
	if !strings.Contains(result.Content, "45 minutes") {
		t.Errorf("expecting body text in markdown, got %q", result.Content)
	}
	if strings.Contains(result.Content, "site navigation") {
		t.Error("expecting navigation to be stripped")
	}
	if strings.Contains(result.Content, "tracking") {
		t.Error("expecting scripts to be stripped")
	}
	if result.Metadata.Title != "Flight Operations Handbook" {
		t.Errorf("unexpected title: %s", result.Metadata.Title)
	}
	if result.Metadata.Description != "Ground handling procedures" {
		t.Errorf("unexpected description: %s", result.Metadata.Description)
	}
}

func TestScrapeBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()
	ctx := context.Background()
	tool := New()
	if _, err := tool.Run(ctx, NewInput(srv.URL, false)); err == nil {
		t.Error("expecting error for non-200 response")
	}
}
