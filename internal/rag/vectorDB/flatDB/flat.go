package flatDB

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"errors"

	"github.com/akolanti/docgenius/internal/rag/vectorDB"
	"github.com/akolanti/docgenius/pkg/logger_i"
)

// a near-zero-norm vector must not divide by zero
const normEpsilon = 1e-9

type indexEntry struct {
	Content string    `json:"content"`
	Vector  []float32 `json:"vector"`
}

type indexFile struct {
	DocumentID string       `json:"document_id"`
	Dimension  int          `json:"dimension"`
	Entries    []indexEntry `json:"entries"`
}

type indexMeta struct {
	DocumentID string `json:"document_id"`
	Count      int    `json:"count"`
}

// Store persists one flat index per document under <dataDir>/vectorstores.
// Every search scores all vectors by brute force, which is fine at the one
// document / few hundred chunks scale this serves.
type Store struct {
	dir    string
	logger *logger_i.Logger
}

func NewStore(dataDir string) (*Store, error) {
	dir := filepath.Join(dataDir, "vectorstores")
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("creating vector store directory: %w", err)
	}
	return &Store{
		dir:    dir,
		logger: logger_i.NewLogger("FlatIndexStore"),
	}, nil
}

func (s *Store) indexPath(documentID string) string {
	return filepath.Join(s.dir, documentID+".json")
}

func (s *Store) metaPath(documentID string) string {
	return filepath.Join(s.dir, documentID+".meta.json")
}

func (s *Store) BuildIndex(ctx context.Context, documentID string, chunks []string, vectors [][]float32) error {
	if !validID(documentID) {
		return fmt.Errorf("invalid document id: %q", documentID)
	}
	if len(chunks) != len(vectors) {
		return fmt.Errorf("mismatch: got %d chunks but %d vectors", len(chunks), len(vectors))
	}
	if len(chunks) == 0 {
		return errors.New("refusing to build an empty index")
	}

	dimension := len(vectors[0])
	file := indexFile{
		DocumentID: documentID,
		Dimension:  dimension,
		Entries:    make([]indexEntry, len(chunks)),
	}
	for i, chunk := range chunks {
		if len(vectors[i]) != dimension {
			return fmt.Errorf("vector %d has dimension %d, index dimension is %d", i, len(vectors[i]), dimension)
		}
		file.Entries[i] = indexEntry{Content: chunk, Vector: vectors[i]}
	}

	data, err := json.Marshal(file)
	if err != nil {
		return fmt.Errorf("encoding index: %w", err)
	}

	//write-to-temp-then-rename so a concurrent reader never sees a torn index
	tmp, err := os.CreateTemp(s.dir, documentID+"-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp index file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("writing index: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("closing temp index file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.indexPath(documentID)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("publishing index: %w", err)
	}

	meta, err := json.Marshal(indexMeta{DocumentID: documentID, Count: len(chunks)})
	if err == nil {
		err = os.WriteFile(s.metaPath(documentID), meta, 0644)
	}
	if err != nil {
		//the sidecar is informational only, the index itself is already live
		s.logger.Error("Failed writing index sidecar", "documentId", documentID, "error", err)
	}

	s.logger.Debug("Built index", "documentId", documentID, "entries", len(chunks), "dimension", dimension)
	return nil
}

func (s *Store) LoadIndex(ctx context.Context, documentID string) (vectorDB.Index, error) {
	if !validID(documentID) {
		return nil, vectorDB.ErrIndexNotFound
	}

	data, err := os.ReadFile(s.indexPath(documentID))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, vectorDB.ErrIndexNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading index: %w", err)
	}

	var file indexFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decoding index for %s: %w", documentID, err)
	}
	return &Index{file: file}, nil
}

// document ids are server-generated uuids, anything else never hits the disk
func validID(documentID string) bool {
	return documentID != "" && !strings.ContainsAny(documentID, "/\\") && documentID != "." && documentID != ".."
}

type Index struct {
	file indexFile
}

func (idx *Index) Count() int {
	return len(idx.file.Entries)
}

func (idx *Index) Dimension() int {
	return idx.file.Dimension
}

func (idx *Index) Search(queryVector []float32, k int) []string {
	if k <= 0 || len(idx.file.Entries) == 0 {
		return nil
	}

	scores := make([]float64, len(idx.file.Entries))
	order := make([]int, len(idx.file.Entries))
	for i, entry := range idx.file.Entries {
		scores[i] = cosineSimilarity(entry.Vector, queryVector)
		order[i] = i
	}

	//stable keeps insertion order between equal scores
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})

	if k > len(order) {
		k = len(order)
	}
	matches := make([]string, 0, k)
	for _, i := range order[:k] {
		matches = append(matches, idx.file.Entries[i].Content)
	}
	return matches
}

func cosineSimilarity(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	var dot, normA, normB float64
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	return dot / (math.Sqrt(normA)*math.Sqrt(normB) + normEpsilon)
}
