package splitter

import (
	"strings"
	"testing"
)

type fixedCounter struct{}

// one token per segment keeps the arithmetic in the tests readable
func (fixedCounter) Count(p []byte) int { return 1 }

func TestSentencesSplitText(t *testing.T) {
	s := NewSentences()
	parts := s.SplitText("Flight 12 is delayed. Gate changed to B4. Boarding starts soon.")
	if len(parts) != 3 {
		t.Fatalf("expecting 3 sentences, got %d: %v", len(parts), parts)
	}
	if !strings.HasPrefix(parts[1], "Gate changed") {
		t.Errorf("unexpected second sentence: %s", parts[1])
	}
}

func TestChunkRespectsBudget(t *testing.T) {
	s := NewSentences(WithChunkSize(2), WithTokenCounter(fixedCounter{}))
	text := "One. Two. Three. Four. Five."
	chunks := s.Chunk(text)
	if len(chunks) != 3 {
		t.Fatalf("expecting 3 chunks, got %d: %v", len(chunks), chunks)
	}
	for _, chunk := range chunks {
		if chunk.TokenSize > 2 {
			t.Errorf("chunk exceeds budget: %+v", chunk)
		}
	}
	if chunks[0].Text != "One. Two." {
		t.Errorf("unexpected first chunk: %q", chunks[0].Text)
	}
}

func TestChunkOverlap(t *testing.T) {
	s := NewSentences(WithChunkSize(2), WithOverlap(1), WithTokenCounter(fixedCounter{}))
	chunks := s.Chunk("One. Two. Three. Four.")
	if len(chunks) < 2 {
		t.Fatalf("expecting at least 2 chunks, got %d", len(chunks))
	}
	// the second chunk should start on the last sentence of the first
	if chunks[1].StartSentence != chunks[0].EndSentence-1 {
		t.Errorf("expecting overlap of one sentence, got %+v then %+v", chunks[0], chunks[1])
	}
}

func TestWordsTokenCount(t *testing.T) {
	w := NewWords(WithTokenCounter(WordsTokenCounter{}))
	if n := w.TokenCount("gate change"); n == 0 {
		t.Error("expecting non-zero token count")
	}
}
