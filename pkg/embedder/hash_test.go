package embedder

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashEmbedder_Deterministic(t *testing.T) {
	emb := NewHashEmbedder(32)
	ctx := context.Background()

	a, err := emb.Embed(ctx, "who should captain the side")
	require.NoError(t, err)
	b, err := emb.Embed(ctx, "who should captain the side")
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Len(t, a, emb.Dimension())
}

func TestHashEmbedder_UnitLength(t *testing.T) {
	emb := NewHashEmbedder(32)

	vec, err := emb.Embed(context.Background(), "swing bowling on a green pitch")
	require.NoError(t, err)

	var sum float64
	for _, x := range vec {
		sum += float64(x) * float64(x)
	}
	assert.InDelta(t, 1.0, math.Sqrt(sum), 1e-5)
}

func TestHashEmbedder_EmbedBatch(t *testing.T) {
	emb := NewHashEmbedder(16)
	texts := []string{"opening batsman", "death-overs bowler", "wicket keeper"}

	vectors, err := emb.EmbedBatch(context.Background(), texts)
	require.NoError(t, err)
	require.Len(t, vectors, len(texts))

	for i, text := range texts {
		single, err := emb.Embed(context.Background(), text)
		require.NoError(t, err)
		assert.Equal(t, single, vectors[i], "batch vector %d differs from single embedding", i)
	}
}

func TestHashEmbedder_DistinctTexts(t *testing.T) {
	emb := NewHashEmbedder(64)
	ctx := context.Background()

	a, err := emb.Embed(ctx, "aggressive opening batsman")
	require.NoError(t, err)
	b, err := emb.Embed(ctx, "economical spin bowler")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}
