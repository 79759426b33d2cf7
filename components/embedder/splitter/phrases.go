package splitter

import (
	"github.com/clipperhouse/uax29/phrases"

	"github.com/aviary-ai/aviary/components/embedder"
)

type Phrases struct {
	Options
}

var _ embedder.Chunker = (*Phrases)(nil)

func NewPhrases(opts ...Option) *Phrases {
	ret := new(Phrases)
	for _, opt := range opts {
		opt(&ret.Options)
	}
	ret.delimiter = []byte(" ")
	ret.segmenter = phrases.SegmentAll
	if ret.chunkSize == 0 {
		ret.chunkSize = 200
	}
	if ret.tokenCounter == nil {
		ret.tokenCounter = new(WordsTokenCounter)
	}
	return ret
}
