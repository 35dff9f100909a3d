package scout

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/squareleg/scout/pkg/embedder"
)

const playerStatsJSON = `[
  {"player": "A", "role": "Batsman", "form_last_5_matches": "50,40,0,10,60", "pitch_performance": "Good on flat pitches"},
  {"player": "B", "role": "Bowler", "form_last_5_matches": "2,1,3,0,4", "pitch_performance": "Swings ball"}
]`

const faqsJSON = `[{"question": "Who captains?", "answer": "Best scorer."}]`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// countingEmbedder counts single-text Embed calls so tests can assert the
// blank-query no-op never reaches the model.
type countingEmbedder struct {
	*embedder.HashEmbedder
	embedCalls int
}

func (c *countingEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	c.embedCalls++
	return c.HashEmbedder.Embed(ctx, text)
}

type failingEmbedder struct {
	*embedder.HashEmbedder
}

func (failingEmbedder) EmbedBatch(context.Context, []string) ([][]float32, error) {
	return nil, errors.New("model unavailable")
}

func newTestRetriever(t *testing.T) (*Retriever, *countingEmbedder) {
	t.Helper()
	dir := t.TempDir()
	emb := &countingEmbedder{HashEmbedder: embedder.NewHashEmbedder(32)}

	r, err := NewRetriever(context.Background(), Config{
		PlayerStatsPath:     writeFile(t, dir, "player_stats.json", playerStatsJSON),
		MatchConditionsPath: filepath.Join(dir, "missing_conditions.json"),
		FAQsPath:            writeFile(t, dir, "faqs.json", faqsJSON),
		Embedder:            emb,
	})
	require.NoError(t, err)
	return r, emb
}

func TestNewRetriever_CorpusOrder(t *testing.T) {
	r, _ := newTestRetriever(t)

	corpus := r.Corpus()
	require.Len(t, corpus, 3)
	assert.Equal(t, "A is a Batsman.\nRecent Form: 50,40,0,10,60.\nPitch Performance: Good on flat pitches.", corpus[0])
	assert.Equal(t, "B is a Bowler.\nRecent Form: 2,1,3,0,4.\nPitch Performance: Swings ball.", corpus[1])
	assert.Equal(t, "Q: Who captains?\nA: Best scorer.", corpus[2])
}

func TestNewRetriever_AlignmentInvariant(t *testing.T) {
	r, _ := newTestRetriever(t)
	assert.Equal(t, len(r.Corpus()), r.index.Len())
}

func TestNewRetriever_EmptyCorpus(t *testing.T) {
	dir := t.TempDir()

	_, err := NewRetriever(context.Background(), Config{
		PlayerStatsPath:     filepath.Join(dir, "nope.json"),
		MatchConditionsPath: filepath.Join(dir, "nope.json"),
		FAQsPath:            filepath.Join(dir, "nope.json"),
		Embedder:            embedder.NewHashEmbedder(32),
	})
	assert.ErrorIs(t, err, ErrEmptyCorpus)
}

func TestNewRetriever_MalformedConditionsStillUsable(t *testing.T) {
	dir := t.TempDir()

	r, err := NewRetriever(context.Background(), Config{
		PlayerStatsPath:     writeFile(t, dir, "player_stats.json", playerStatsJSON),
		MatchConditionsPath: writeFile(t, dir, "match_conditions.json", `{"venue": truncated`),
		FAQsPath:            writeFile(t, dir, "faqs.json", faqsJSON),
		Embedder:            embedder.NewHashEmbedder(32),
	})
	require.NoError(t, err)

	assert.Len(t, r.Corpus(), 3)
	assert.Nil(t, r.Conditions())
}

func TestNewRetriever_EmbeddingFailureIsFatal(t *testing.T) {
	dir := t.TempDir()

	_, err := NewRetriever(context.Background(), Config{
		PlayerStatsPath: writeFile(t, dir, "player_stats.json", playerStatsJSON),
		Embedder:        failingEmbedder{HashEmbedder: embedder.NewHashEmbedder(32)},
	})
	assert.ErrorContains(t, err, "embedding corpus")
}

func TestNewRetriever_RequiresEmbedder(t *testing.T) {
	_, err := NewRetriever(context.Background(), Config{})
	assert.Error(t, err)
}

func TestRetrieve_BlankQueryNoOp(t *testing.T) {
	r, emb := newTestRetriever(t)

	for _, query := range []string{"", "   ", "\n\t"} {
		docs, err := r.Retrieve(context.Background(), query, DefaultTopK)
		require.NoError(t, err)
		assert.Empty(t, docs)
	}
	assert.Zero(t, emb.embedCalls)
}

func TestRetrieve_TopKBound(t *testing.T) {
	r, _ := newTestRetriever(t)
	ctx := context.Background()

	docs, err := r.Retrieve(ctx, "captain", 1)
	require.NoError(t, err)
	assert.Len(t, docs, 1)

	docs, err = r.Retrieve(ctx, "captain", 2)
	require.NoError(t, err)
	assert.Len(t, docs, 2)

	// k beyond corpus size returns everything, no padding.
	docs, err = r.Retrieve(ctx, "captain", 50)
	require.NoError(t, err)
	assert.Len(t, docs, 3)
}

func TestRetrieve_Deterministic(t *testing.T) {
	r, _ := newTestRetriever(t)
	ctx := context.Background()

	first, err := r.Retrieve(ctx, "who swings the ball", 3)
	require.NoError(t, err)
	second, err := r.Retrieve(ctx, "who swings the ball", 3)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRetrieve_ResultsComeFromCorpus(t *testing.T) {
	r, _ := newTestRetriever(t)

	docs, err := r.Retrieve(context.Background(), "Who should I pick for captain?", 1)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Contains(t, r.Corpus(), docs[0])
}

func TestRetrieve_RanksMatchingTermsFirst(t *testing.T) {
	r, _ := newTestRetriever(t)

	// The hash embedder is lexical, so a query repeating a passage verbatim
	// embeds to that passage's exact vector and must rank it first.
	target := r.Corpus()[1]
	docs, err := r.Retrieve(context.Background(), target, 1)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, target, docs[0])
}
