package vectordb

type Options struct {
	EngineType EngineType // Database type (e.g., "milvus", "memory")
	TopK       int        // Maximum number of results to return
	MinScore   float64    // Minimum similarity score threshold
	Columns    []string   // Columns to retrieve from the database
	Dimension  int        // Vector dimension
}

// Option is a function type for configuring Engine instances.
// It follows the functional options pattern for clean and flexible configuration.
type Option func(*Options)

// WithEngine sets the database type.
// Supported types:
// - "milvus": Production-grade vector database
// - "memory": In-memory database for testing
// - "chromem": Embedded persistent storage
func WithEngine(engine EngineType) Option {
	return func(c *Options) {
		c.EngineType = engine
	}
}

// WithTopK sets the maximum number of results to return.
// The actual number of results may be less if MinScore filtering is applied.
func WithTopK(k int) Option {
	return func(c *Options) {
		c.TopK = k
	}
}

// WithMinScore sets the minimum similarity score threshold.
// Results with scores below this threshold will be filtered out.
func WithMinScore(score float64) Option {
	return func(c *Options) {
		c.MinScore = score
	}
}

// WithColumns specifies which columns to retrieve from the database.
// This can optimize performance by only fetching needed fields.
func WithColumns(columns ...string) Option {
	return func(c *Options) {
		c.Columns = columns
	}
}

// WithDimension sets the dimension of vectors to be stored.
// This must match the dimension of your embedding model:
// - text-embedding-3-small: 1536
// - text-embedding-ada-002: 1536
func WithDimension(dimension int) Option {
	return func(c *Options) {
		c.Dimension = dimension
	}
}
