package splitter

import (
	"github.com/clipperhouse/uax29/graphemes"

	"github.com/aviary-ai/aviary/components/embedder"
)

type Graphemes struct {
	Options
}

var _ embedder.Chunker = (*Graphemes)(nil)

func NewGraphemes(opts ...Option) *Graphemes {
	ret := new(Graphemes)
	for _, opt := range opts {
		opt(&ret.Options)
	}
	ret.delimiter = []byte("")
	ret.segmenter = graphemes.SegmentAll
	if ret.chunkSize == 0 {
		ret.chunkSize = 200
	}
	if ret.tokenCounter == nil {
		ret.tokenCounter = new(GraphemesTokenCounter)
	}
	return ret
}
