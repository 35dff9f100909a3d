package scout

import (
	"fmt"
	"sort"
)

// Neighbor is one nearest-neighbor hit: a vector's position in the indexed
// set and its squared Euclidean distance from the query.
type Neighbor struct {
	Index    int
	Distance float32
}

// FlatIndex is an exact nearest-neighbor index over a fixed set of vectors.
// It is immutable after construction, so concurrent searches need no locking.
type FlatIndex struct {
	dim     int
	vectors [][]float32
}

// NewFlatIndex builds an index over the given vectors. All vectors must
// share the same dimensionality and at least one vector is required.
func NewFlatIndex(vectors [][]float32) (*FlatIndex, error) {
	if len(vectors) == 0 {
		return nil, ErrNoVectors
	}

	dim := len(vectors[0])
	for i, v := range vectors {
		if len(v) != dim {
			return nil, fmt.Errorf("%w: vector %d has %d dimensions, want %d", ErrDimensionMismatch, i, len(v), dim)
		}
	}

	return &FlatIndex{dim: dim, vectors: vectors}, nil
}

// Len returns the number of indexed vectors.
func (ix *FlatIndex) Len() int {
	return len(ix.vectors)
}

// Dimension returns the dimensionality of the indexed vectors.
func (ix *FlatIndex) Dimension() int {
	return ix.dim
}

// Search returns up to k neighbors ordered by ascending squared Euclidean
// distance. Equidistant vectors are ordered by lower index, so results are
// stable for identical inputs. A k larger than the indexed set returns
// everything; k <= 0 returns nothing.
func (ix *FlatIndex) Search(query []float32, k int) ([]Neighbor, error) {
	if len(query) != ix.dim {
		return nil, fmt.Errorf("%w: query has %d dimensions, want %d", ErrDimensionMismatch, len(query), ix.dim)
	}
	if k <= 0 {
		return nil, nil
	}

	neighbors := make([]Neighbor, len(ix.vectors))
	for i, v := range ix.vectors {
		neighbors[i] = Neighbor{Index: i, Distance: squaredEuclidean(query, v)}
	}

	sort.Slice(neighbors, func(i, j int) bool {
		if neighbors[i].Distance != neighbors[j].Distance {
			return neighbors[i].Distance < neighbors[j].Distance
		}
		return neighbors[i].Index < neighbors[j].Index
	})

	if k < len(neighbors) {
		neighbors = neighbors[:k]
	}
	return neighbors, nil
}

func squaredEuclidean(a, b []float32) float32 {
	var sum float32
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}
