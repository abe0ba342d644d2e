package flatDB

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akolanti/docgenius/internal/rag/vectorDB"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(t.TempDir())
	require.NoError(t, err)
	return s
}

func TestBuildAndLoadRoundtrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	chunks := []string{"alpha", "beta", "gamma"}
	vectors := [][]float32{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}

	require.NoError(t, s.BuildIndex(ctx, "doc-1", chunks, vectors))

	idx, err := s.LoadIndex(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, 3, idx.Count())
	assert.Equal(t, 3, idx.Dimension())
}

func TestSearchOrdering(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	chunks := []string{"exact match", "orthogonal", "close match"}
	vectors := [][]float32{
		{1, 0, 0},
		{0, 1, 0},
		{0.9, 0.1, 0},
	}
	require.NoError(t, s.BuildIndex(ctx, "doc-1", chunks, vectors))

	idx, err := s.LoadIndex(ctx, "doc-1")
	require.NoError(t, err)

	matches := idx.Search([]float32{1, 0, 0}, 2)
	require.Len(t, matches, 2)
	assert.Equal(t, "exact match", matches[0])
	assert.Equal(t, "close match", matches[1])
}

func TestSearchKLargerThanIndex(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.BuildIndex(ctx, "doc-1",
		[]string{"only one"}, [][]float32{{1, 2, 3}}))

	idx, err := s.LoadIndex(ctx, "doc-1")
	require.NoError(t, err)

	assert.Len(t, idx.Search([]float32{1, 2, 3}, 10), 1)
	assert.Nil(t, idx.Search([]float32{1, 2, 3}, 0))
}

func TestSearchStableTies(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	// identical vectors score identically, insertion order must hold
	same := []float32{1, 1, 0}
	chunks := []string{"first", "second", "third"}
	require.NoError(t, s.BuildIndex(ctx, "doc-1", chunks,
		[][]float32{same, same, same}))

	idx, err := s.LoadIndex(ctx, "doc-1")
	require.NoError(t, err)

	matches := idx.Search([]float32{1, 1, 0}, 3)
	assert.Equal(t, chunks, matches)
}

func TestLoadIndexNotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.LoadIndex(context.Background(), "no-such-doc")
	assert.ErrorIs(t, err, vectorDB.ErrIndexNotFound)
}

func TestLoadIndexRejectsPathyIDs(t *testing.T) {
	s := newTestStore(t)

	for _, id := range []string{"", ".", "..", "../escape", "a/b", `a\b`} {
		_, err := s.LoadIndex(context.Background(), id)
		assert.ErrorIs(t, err, vectorDB.ErrIndexNotFound, "id %q", id)
	}
}

func TestBuildIndexValidation(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	assert.Error(t, s.BuildIndex(ctx, "doc-1", []string{"a", "b"}, [][]float32{{1}}),
		"chunk/vector count mismatch must fail")

	assert.Error(t, s.BuildIndex(ctx, "doc-1", nil, nil),
		"empty index must fail")

	assert.Error(t, s.BuildIndex(ctx, "doc-1",
		[]string{"a", "b"}, [][]float32{{1, 2}, {1, 2, 3}}),
		"ragged vector dimensions must fail")

	assert.Error(t, s.BuildIndex(ctx, "../escape",
		[]string{"a"}, [][]float32{{1}}),
		"path-like id must fail")
}

func TestBuildIndexOverwrite(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.BuildIndex(ctx, "doc-1",
		[]string{"old"}, [][]float32{{1, 0}}))
	require.NoError(t, s.BuildIndex(ctx, "doc-1",
		[]string{"new a", "new b"}, [][]float32{{1, 0}, {0, 1}}))

	idx, err := s.LoadIndex(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, 2, idx.Count())
	assert.Equal(t, "new a", idx.Search([]float32{1, 0}, 1)[0])
}

func TestCosineSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, cosineSimilarity([]float32{1, 2, 3}, []float32{1, 2, 3}), 1e-6)
	assert.InDelta(t, 0.0, cosineSimilarity([]float32{1, 0}, []float32{0, 1}), 1e-6)
	assert.InDelta(t, -1.0, cosineSimilarity([]float32{1, 0}, []float32{-1, 0}), 1e-6)

	// zero vectors must not panic or produce NaN
	score := cosineSimilarity([]float32{0, 0}, []float32{1, 1})
	assert.False(t, score != score, "score is NaN")
	assert.Zero(t, score)
}
