package splitter

import (
	"bytes"
	"strings"

	"github.com/aviary-ai/aviary/components/embedder"
)

// Segmenter splits raw text into its unicode aware parts, e.g. sentences or
// words.
type Segmenter func(p []byte) [][]byte

// Options holds the shared configuration of the concrete splitters. A
// splitter segments text with a uax29 segmenter and then assembles the
// segments into chunks that respect a token budget with a configurable
// overlap between adjacent chunks.
type Options struct {
	chunkSize    int
	overlap      int
	delimiter    []byte
	segmenter    Segmenter
	tokenCounter TokenCounter
}

// Option is a function type for configuring splitter Options.
type Option func(*Options)

func WithChunkSize(size int) Option {
	return func(o *Options) {
		o.chunkSize = size
	}
}

func WithOverlap(overlap int) Option {
	return func(o *Options) {
		o.overlap = overlap
	}
}

func WithTokenCounter(counter TokenCounter) Option {
	return func(o *Options) {
		o.tokenCounter = counter
	}
}

var _ embedder.Chunker = (*Options)(nil)

// SplitText returns the text segments without assembling them into chunks.
func (o *Options) SplitText(text string) []string {
	segments := o.segmenter([]byte(text))
	ret := make([]string, 0, len(segments))
	for _, seg := range segments {
		if s := strings.TrimSpace(string(seg)); s != "" {
			ret = append(ret, s)
		}
	}
	return ret
}

// TokenCount returns the number of tokens in the text according to the
// splitter's token counter.
func (o *Options) TokenCount(text string) int {
	return o.tokenCounter.Count([]byte(text))
}

// Chunk splits the input text into chunks while preserving segment
// boundaries and maintaining the configured overlap between chunks.
func (o *Options) Chunk(text string) []embedder.Chunk {
	segments := o.SplitText(text)
	counts := make([]int, len(segments))
	for i, seg := range segments {
		counts[i] = o.tokenCounter.Count([]byte(seg))
	}
	var (
		chunks  []embedder.Chunk
		start   int
		current int
	)
	flush := func(end int) {
		if current == 0 {
			return
		}
		buf := new(bytes.Buffer)
		for i := start; i < end; i++ {
			if i > start {
				buf.Write(o.delimiter)
			}
			buf.WriteString(segments[i])
		}
		chunks = append(chunks, embedder.Chunk{
			Text:          buf.String(),
			TokenSize:     current,
			StartSentence: start,
			EndSentence:   end,
		})
	}
	for i := range segments {
		if current+counts[i] > o.chunkSize && current > 0 {
			flush(i)
			// walk back to satisfy the requested overlap
			overlapStart := i
			overlapTokens := 0
			for overlapStart > start && overlapTokens < o.overlap {
				overlapStart--
				overlapTokens += counts[overlapStart]
			}
			start = overlapStart
			current = overlapTokens
		}
		current += counts[i]
	}
	flush(len(segments))
	return chunks
}
