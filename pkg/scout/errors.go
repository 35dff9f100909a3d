package scout

import "errors"

var (
	// ErrEmptyCorpus means no passages could be assembled from any source,
	// which leaves nothing to search.
	ErrEmptyCorpus = errors.New("no documents found for retrieval")

	// ErrNoVectors is returned when an index is built from zero vectors.
	ErrNoVectors = errors.New("index requires at least one vector")

	// ErrDimensionMismatch is returned when vectors of different lengths
	// reach the index.
	ErrDimensionMismatch = errors.New("vector dimension mismatch")
)
