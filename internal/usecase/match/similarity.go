package match

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/resufit/resufit/internal/domain"
)

// textSimilarity embeds both texts and returns their clamped cosine
// similarity in [0, 1]. Either side empty short-circuits to 0 without
// invoking the provider.
func textSimilarity(ctx context.Context, e Embedder, a, b string) (float64, error) {
	if strings.TrimSpace(a) == "" || strings.TrimSpace(b) == "" {
		return 0, nil
	}

	resA, err := e.Embed(ctx, a)
	if err != nil {
		return 0, fmt.Errorf("embed first text: %w", err)
	}
	resB, err := e.Embed(ctx, b)
	if err != nil {
		return 0, fmt.Errorf("embed second text: %w", err)
	}

	return domain.ClampSimilarity(domain.CosineSimilarity(resA.Embedding, resB.Embedding)), nil
}

// embedAll vectorizes texts via BatchEmbed when the embedder supports it,
// falling back to one call per text.
func embedAll(ctx context.Context, e Embedder, texts []string) ([][]float32, error) {
	if be, ok := e.(domain.BatchEmbedder); ok {
		res, err := be.BatchEmbed(ctx, texts)
		if err != nil {
			return nil, fmt.Errorf("batch embed: %w", err)
		}
		return res.Embeddings, nil
	}

	res, err := domain.BatchFallback(ctx, e, texts)
	if err != nil {
		return nil, fmt.Errorf("embed texts: %w", err)
	}
	return res.Embeddings, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
