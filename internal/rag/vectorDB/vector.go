package vectorDB

import (
	"context"
	"errors"
)

// ErrIndexNotFound is returned when no persisted index exists for a document,
// either because it was never uploaded or because it produced no extractable
// text.
var ErrIndexNotFound = errors.New("vector index not found for document")

// Index is the loaded per-document collection of (chunk, vector) pairs.
type Index interface {
	// Search scores every stored vector against queryVector by cosine
	// similarity and returns the text of the k best chunks, ties broken by
	// insertion order. Fewer than k entries returns all of them.
	Search(queryVector []float32, k int) []string
	Count() int
	Dimension() int
}

type IndexStore interface {
	// BuildIndex persists a new index for the document, replacing any previous
	// one. Readers never observe a partially written index.
	BuildIndex(ctx context.Context, documentID string, chunks []string, vectors [][]float32) error
	LoadIndex(ctx context.Context, documentID string) (Index, error)
}
