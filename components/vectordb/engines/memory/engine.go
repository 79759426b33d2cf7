package memory

import (
	"context"
	"math"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/aviary-ai/aviary/components/vectordb"
)

// Engine implements the vectordb.Engine interface using in-memory storage.
// It provides thread-safe operations for managing collections and performing
// vector similarity searches without the need for external database systems.
type Engine struct {
	// collections stores all vector collections in memory
	collections *sync.Map
	vectordb.Options
}

var _ vectordb.Engine = (*Engine)(nil)

// Collection represents a named set of records.
// It's the basic unit of organization in the memory database.
type Collection struct {
	// records holds the actual records in the collection
	records []vectordb.Record
	// mu provides thread-safety for concurrent operations
	mu sync.RWMutex
}

func (c *Collection) AddRecords(records ...vectordb.Record) {
	c.mu.Lock()
	c.records = append(c.records, records...)
	c.mu.Unlock()
}

func (c *Collection) Records() []vectordb.Record {
	c.mu.RLock()
	defer c.mu.RUnlock()
	ret := make([]vectordb.Record, len(c.records))
	copy(ret, c.records)
	return ret
}

// New creates a new in-memory vector database instance.
// It initializes an empty collection map and returns a ready-to-use database.
func New(opts ...vectordb.Option) (*Engine, error) {
	ret := &Engine{
		collections: new(sync.Map),
	}
	vectordb.WithEngine(vectordb.Memory)(&ret.Options)
	for _, opt := range opts {
		opt(&ret.Options)
	}
	return ret, nil
}

// HasCollection checks if a collection with the given name exists in the database.
func (e *Engine) HasCollection(name string) (bool, error) {
	_, exists := e.collections.Load(name)
	return exists, nil
}

// DropCollection removes a collection and all its data from the database.
func (e *Engine) DropCollection(name string) error {
	e.collections.Delete(name)
	return nil
}

// Collection returns the collection with the given name, creating it when missing.
func (e *Engine) Collection(_ context.Context, name string) (*Collection, error) {
	col, _ := e.collections.LoadOrStore(name, new(Collection))
	return col.(*Collection), nil
}

func (e *Engine) Insert(ctx context.Context, collectionName string, records ...vectordb.Record) error {
	col, err := e.Collection(ctx, collectionName)
	if err != nil {
		return err
	}
	docs := make([]vectordb.Record, 0, len(records))
	for _, record := range records {
		if record.ID == "" {
			record.ID = record.Embedding.UUID()
		}
		docs = append(docs, record)
	}
	col.AddRecords(docs...)
	return nil
}

func (e *Engine) Search(ctx context.Context, vectors []float64, opts ...vectordb.SearchOption) ([]vectordb.Record, error) {
	var option vectordb.SearchOptions
	for _, opt := range opts {
		opt(&option)
	}
	col, err := e.Collection(ctx, option.Collection)
	if err != nil {
		return nil, err
	}
	records := filterRecords(col.Records(), &option)
	minScore := option.MinScore
	if minScore == 0 {
		minScore = e.MinScore
	}
	scored := make([]vectordb.Record, 0, len(records))
	for _, record := range records {
		record.Score = cosineSimilarity(vectors, record.Embedding.Embedding)
		if record.Score < minScore {
			continue
		}
		scored = append(scored, record)
	}
	sort.Slice(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	if option.TopK == 0 {
		option.TopK = e.TopK
	}
	topK := len(scored)
	if option.TopK > 0 {
		topK = min(option.TopK, topK)
	}
	return scored[:topK], nil
}

// filterRecords filters records by metadata and content. It does this
// concurrently.
func filterRecords(docs []vectordb.Record, opts *vectordb.SearchOptions) []vectordb.Record {
	filteredDocs := make([]vectordb.Record, 0, len(docs))
	filteredDocsLock := sync.Mutex{}

	// Determine concurrency. Use number of docs or CPUs, whichever is smaller.
	numCPUs := runtime.NumCPU()
	numDocs := len(docs)
	concurrency := min(numCPUs, numDocs)

	docChan := make(chan vectordb.Record, concurrency*2)

	wg := sync.WaitGroup{}
	for range concurrency {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for doc := range docChan {
				if recordMatchesFilters(&doc, opts) {
					filteredDocsLock.Lock()
					filteredDocs = append(filteredDocs, doc)
					filteredDocsLock.Unlock()
				}
			}
		}()
	}

	for _, doc := range docs {
		docChan <- doc
	}
	close(docChan)

	wg.Wait()

	if len(filteredDocs) == 0 {
		filteredDocs = nil
	}
	return filteredDocs
}

// recordMatchesFilters checks if a record matches the given filters.
// A record's metadata must have all the fields in the meta clause.
func recordMatchesFilters(record *vectordb.Record, opts *vectordb.SearchOptions) bool {
	for k, v := range opts.Meta {
		if record.Embedding.Meta[k] != v {
			return false
		}
	}
	if opts.Include != "" {
		if !strings.Contains(record.Embedding.Object, opts.Include) {
			return false
		}
	}
	if opts.Exclude != "" {
		if strings.Contains(record.Embedding.Object, opts.Exclude) {
			return false
		}
	}

	return true
}

// cosineSimilarity computes the cosine similarity between two vectors.
// Returns 0 when either vector has zero magnitude or the lengths differ.
func cosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
