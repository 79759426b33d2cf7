package ingest

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aviary-ai/aviary/components"
	"github.com/aviary-ai/aviary/components/document"
	"github.com/aviary-ai/aviary/components/document/parsers"
	"github.com/aviary-ai/aviary/components/embedder"
	"github.com/aviary-ai/aviary/components/embedder/splitter"
	"github.com/aviary-ai/aviary/components/vectordb"
)

// Pipeline turns documents into searchable vector records: read, parse,
// chunk, embed, store.
type Pipeline struct {
	embedder   embedder.Embedder
	engine     vectordb.Engine
	chunker    embedder.Chunker
	collection string
}

type Option func(*Pipeline)

func WithEmbedder(e embedder.Embedder) Option {
	return func(p *Pipeline) {
		p.embedder = e
	}
}

func WithEngine(engine vectordb.Engine) Option {
	return func(p *Pipeline) {
		p.engine = engine
	}
}

func WithChunker(c embedder.Chunker) Option {
	return func(p *Pipeline) {
		p.chunker = c
	}
}

func WithCollection(name string) Option {
	return func(p *Pipeline) {
		p.collection = name
	}
}

func New(opts ...Option) (*Pipeline, error) {
	ret := new(Pipeline)
	for _, opt := range opts {
		opt(ret)
	}
	if ret.embedder == nil {
		return nil, fmt.Errorf("ingest: missing embedder")
	}
	if ret.engine == nil {
		return nil, fmt.Errorf("ingest: missing vector engine")
	}
	if ret.chunker == nil {
		ret.chunker = splitter.NewSentences()
	}
	if ret.collection == "" {
		ret.collection = "documents"
	}
	return ret, nil
}

func (p *Pipeline) Collection() string {
	return p.collection
}

// Ingest reads one document source, parses it by sniffed content type and
// stores the embedded chunks. Returns the number of records stored.
func (p *Pipeline) Ingest(ctx context.Context, src document.ParserReader, usage *components.ApiUsage) (int, error) {
	reader, err := document.ReadAll(src)
	if err != nil {
		return 0, fmt.Errorf("ingest: read source: %w", err)
	}
	parser, err := parsers.Detect(reader)
	if err != nil {
		return 0, fmt.Errorf("ingest: detect parser: %w", err)
	}
	buf := new(bytes.Buffer)
	if err := parser.Parse(ctx, reader, buf); err != nil {
		return 0, fmt.Errorf("ingest: parse document: %w", err)
	}
	chunks := p.chunker.Chunk(buf.String())
	if len(chunks) == 0 {
		return 0, nil
	}
	embedded, err := embedder.EmbedChunks(ctx, p.embedder, chunks, usage)
	if err != nil {
		return 0, fmt.Errorf("ingest: embed chunks: %w", err)
	}
	records := make([]vectordb.Record, 0, len(embedded))
	for _, chunk := range embedded {
		meta := make(map[string]string, len(src.Meta())+1)
		for k, v := range src.Meta() {
			meta[k] = v
		}
		chunk.Embedding.Meta = meta
		records = append(records, vectordb.Record{
			Embedding: chunk.Embedding,
		})
	}
	if err := p.engine.Insert(ctx, p.collection, records...); err != nil {
		return 0, fmt.Errorf("ingest: store records: %w", err)
	}
	return len(records), nil
}

// IngestAll ingests every source, stopping at the first error.
func (p *Pipeline) IngestAll(ctx context.Context, srcs []document.ParserReader, usage *components.ApiUsage) (int, error) {
	var total int
	for _, src := range srcs {
		n, err := p.Ingest(ctx, src, usage)
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}
