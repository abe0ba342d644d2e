package metadataStore

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"errors"

	"github.com/akolanti/docgenius/internal/domain/docModel"
	"github.com/akolanti/docgenius/pkg/logger_i"
)

// Store keeps every document record in one shared JSON file that is read
// fully and rewritten fully on each mutation. That caps out quickly with
// record count, which is an accepted ceiling here, not a design target.
type Store struct {
	mu     sync.Mutex
	path   string
	logger *logger_i.Logger
}

func NewStore(dataDir string) *Store {
	return &Store{
		path:   filepath.Join(dataDir, "metadata.json"),
		logger: logger_i.NewLogger("MetadataStore"),
	}
}

func (s *Store) Save(ctx context.Context, id string, name string, size int64, pageCount int) (docModel.DocumentRecord, error) {
	log := s.logger.With("traceId", ctx.Value("traceId"), "documentId", id)

	s.mu.Lock()
	defer s.mu.Unlock()

	db := s.load()
	record := docModel.DocumentRecord{
		ID:         id,
		Name:       name,
		Size:       size,
		UploadedAt: time.Now(),
		Status:     docModel.StatusIndexed,
		PageCount:  pageCount,
	}
	db[id] = record

	if err := s.persist(db); err != nil {
		log.Error("Failed saving metadata", "error", err)
		return docModel.DocumentRecord{}, err
	}
	log.Debug("Saved document metadata", "name", name, "pages", pageCount)
	return record, nil
}

func (s *Store) ListAll(ctx context.Context) ([]docModel.DocumentRecord, error) {
	s.mu.Lock()
	db := s.load()
	s.mu.Unlock()

	records := make([]docModel.DocumentRecord, 0, len(db))
	for _, record := range db {
		records = append(records, record)
	}
	sort.Slice(records, func(a, b int) bool {
		return records[a].UploadedAt.After(records[b].UploadedAt)
	})
	return records, nil
}

func (s *Store) Get(ctx context.Context, id string) (docModel.DocumentRecord, bool) {
	s.mu.Lock()
	db := s.load()
	s.mu.Unlock()

	record, found := db[id]
	return record, found
}

// load tolerates a missing or corrupt file and starts from empty, matching
// the best-effort posture of the rest of the pipeline.
func (s *Store) load() map[string]docModel.DocumentRecord {
	db := make(map[string]docModel.DocumentRecord)

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return db
	}
	if err != nil {
		s.logger.Error("Failed reading metadata file", "error", err)
		return db
	}
	if err := json.Unmarshal(data, &db); err != nil {
		s.logger.Error("Metadata file is corrupt, starting empty", "error", err)
		return make(map[string]docModel.DocumentRecord)
	}
	return db
}

func (s *Store) persist(db map[string]docModel.DocumentRecord) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0750); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}
	data, err := json.MarshalIndent(db, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding metadata: %w", err)
	}
	return os.WriteFile(s.path, data, 0644)
}
