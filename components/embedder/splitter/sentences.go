package splitter

import (
	"github.com/clipperhouse/uax29/sentences"

	"github.com/aviary-ai/aviary/components/embedder"
)

type Sentences struct {
	Options
}

var _ embedder.Chunker = (*Sentences)(nil)

func NewSentences(opts ...Option) *Sentences {
	ret := new(Sentences)
	for _, opt := range opts {
		opt(&ret.Options)
	}
	ret.delimiter = []byte(" ")
	ret.segmenter = sentences.SegmentAll
	if ret.chunkSize == 0 {
		ret.chunkSize = 200
	}
	if ret.tokenCounter == nil {
		ret.tokenCounter = new(WordsTokenCounter)
	}
	return ret
}
