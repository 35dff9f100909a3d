package embedder

import (
	"context"
	"fmt"
	"hash/fnv"
	"strings"
)

// HashEmbedder is a deterministic offline embedder that buckets token
// hashes into a fixed-size vector. It carries no real semantic signal; it
// exists for tests and offline runs where no embedding service is reachable.
type HashEmbedder struct {
	dim int
}

// NewHashEmbedder creates a hash-bucket embedder with the given dimension.
func NewHashEmbedder(dimension int) *HashEmbedder {
	return &HashEmbedder{dim: dimension}
}

// Embed generates a bag-of-tokens vector for the text.
func (e *HashEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	vec := make([]float32, e.dim)

	for _, token := range strings.Fields(strings.ToLower(text)) {
		h := fnv.New32a()
		h.Write([]byte(token))
		vec[int(h.Sum32())%e.dim]++
	}

	l2normalize(vec)
	return vec, nil
}

// EmbedBatch generates embeddings for multiple texts, preserving order.
func (e *HashEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	vectors := make([][]float32, len(texts))
	for i, text := range texts {
		vec, err := e.Embed(ctx, text)
		if err != nil {
			return nil, fmt.Errorf("embedding text %d: %w", i, err)
		}
		vectors[i] = vec
	}
	return vectors, nil
}

// Dimension returns the embedding dimension.
func (e *HashEmbedder) Dimension() int {
	return e.dim
}

// ModelInfo returns model information.
func (e *HashEmbedder) ModelInfo() string {
	return "hash-embedder-v1"
}
