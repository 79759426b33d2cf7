package splitter

import (
	"github.com/clipperhouse/uax29/words"

	"github.com/aviary-ai/aviary/components/embedder"
)

type Words struct {
	Options
}

var _ embedder.Chunker = (*Words)(nil)

func NewWords(opts ...Option) *Words {
	ret := new(Words)
	for _, opt := range opts {
		opt(&ret.Options)
	}
	ret.delimiter = []byte(" ")
	ret.segmenter = words.SegmentAll
	if ret.chunkSize == 0 {
		ret.chunkSize = 200
	}
	if ret.tokenCounter == nil {
		ret.tokenCounter = new(GraphemesTokenCounter)
	}
	return ret
}
