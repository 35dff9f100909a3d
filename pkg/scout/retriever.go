// Package scout implements the semantic retrieval engine: it loads the data
// sources into an ordered passage corpus, embeds every passage once, indexes
// the vectors for exact nearest-neighbor search and answers free-text
// queries with the most relevant passages.
package scout

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/squareleg/scout/pkg/embedder"
	"github.com/squareleg/scout/pkg/loader"
)

// DefaultTopK is the number of passages returned when the caller does not
// ask for a specific count.
const DefaultTopK = 3

// Config wires a Retriever's data sources and collaborators.
type Config struct {
	PlayerStatsPath     string
	MatchConditionsPath string
	FAQsPath            string // optional

	// Embedder generates passage and query vectors. Required.
	Embedder embedder.Embedder

	// Logger is optional; nil disables logging.
	Logger *zap.Logger
}

// Retriever owns the passage-to-vector pipeline. Construction loads the
// sources, embeds the whole corpus and builds the index; afterwards every
// Retrieve call is a pure read, so concurrent callers need no locking.
type Retriever struct {
	data     *loader.Data
	corpus   []string
	embedder embedder.Embedder
	index    *FlatIndex
}

// NewRetriever builds a Retriever from the configured sources. Construction
// is the only validity gate: an empty corpus or a failed batch embedding
// aborts it and no partially usable value is returned.
func NewRetriever(ctx context.Context, cfg Config) (*Retriever, error) {
	if cfg.Embedder == nil {
		return nil, errors.New("embedder is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	data := loader.Load(cfg.PlayerStatsPath, cfg.MatchConditionsPath, cfg.FAQsPath, logger)
	corpus := data.Passages()
	if len(corpus) == 0 {
		return nil, ErrEmptyCorpus
	}

	vectors, err := cfg.Embedder.EmbedBatch(ctx, corpus)
	if err != nil {
		return nil, fmt.Errorf("embedding corpus: %w", err)
	}
	if len(vectors) != len(corpus) {
		return nil, fmt.Errorf("embedder returned %d vectors for %d passages", len(vectors), len(corpus))
	}

	index, err := NewFlatIndex(vectors)
	if err != nil {
		return nil, fmt.Errorf("building index: %w", err)
	}

	logger.Info("retrieval index ready",
		zap.Int("passages", len(corpus)),
		zap.Int("dimension", index.Dimension()),
		zap.String("model", cfg.Embedder.ModelInfo()),
	)

	return &Retriever{
		data:     data,
		corpus:   corpus,
		embedder: cfg.Embedder,
		index:    index,
	}, nil
}

// Retrieve returns up to topK passages most relevant to the query, nearest
// first. A blank query is a defined no-op returning an empty result without
// touching the embedder.
func (r *Retriever) Retrieve(ctx context.Context, query string, topK int) ([]string, error) {
	if strings.TrimSpace(query) == "" {
		return nil, nil
	}

	qvec, err := r.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embedding query: %w", err)
	}

	neighbors, err := r.index.Search(qvec, topK)
	if err != nil {
		return nil, err
	}

	results := make([]string, 0, len(neighbors))
	for _, n := range neighbors {
		if n.Index < 0 || n.Index >= len(r.corpus) {
			continue
		}
		results = append(results, r.corpus[n.Index])
	}
	return results, nil
}

// Corpus returns the ordered passage texts backing the index.
func (r *Retriever) Corpus() []string {
	out := make([]string, len(r.corpus))
	copy(out, r.corpus)
	return out
}

// Players returns the raw player-stat records for direct consumers such as
// the fantasy-XI heuristics.
func (r *Retriever) Players() []loader.PlayerStats {
	return r.data.Players
}

// Conditions returns the raw match-conditions record, or nil when the
// source had none.
func (r *Retriever) Conditions() *loader.MatchConditions {
	return r.data.Conditions
}

// FAQs returns the raw FAQ records.
func (r *Retriever) FAQs() []loader.FAQ {
	return r.data.FAQs
}
