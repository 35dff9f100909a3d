// Package embedder provides text embedding backends for the retrieval engine.
package embedder

import "context"

// Embedder maps text to fixed-dimension vectors. Implementations must be
// deterministic for a fixed model and input, and EmbedBatch must preserve
// input order: vector i is the embedding of text i.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
	Dimension() int
	ModelInfo() string
}
