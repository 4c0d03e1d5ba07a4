package match

import (
	"context"

	"github.com/resufit/resufit/internal/domain"
)

// stubEmbedder returns fixed vectors keyed by exact input text, falling back
// to def for unknown texts. Identical texts therefore always embed
// identically.
type stubEmbedder struct {
	vecs  map[string][]float32
	def   []float32
	err   error
	calls int
}

func (s *stubEmbedder) Embed(_ context.Context, text string) (domain.EmbeddingResult, error) {
	s.calls++
	if s.err != nil {
		return domain.EmbeddingResult{}, s.err
	}
	if v, ok := s.vecs[text]; ok {
		return domain.EmbeddingResult{Embedding: v}, nil
	}
	return domain.EmbeddingResult{Embedding: s.def}, nil
}

func newStubEmbedder(vecs map[string][]float32) *stubEmbedder {
	return &stubEmbedder{vecs: vecs, def: []float32{1, 0, 0}}
}

func approxEqual(a, b float64) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff < 1e-6
}
