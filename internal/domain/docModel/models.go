package docModel

import (
	"context"
	"time"
)

const StatusIndexed = "indexed"

// DocumentRecord is the metadata bookkeeping entry for one uploaded document.
// Written once at upload time and never mutated afterwards.
type DocumentRecord struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Size       int64     `json:"size"`
	UploadedAt time.Time `json:"uploadedAt"`
	Status     string    `json:"status"`
	PageCount  int       `json:"pageCount"`
}

type MetadataStore interface {
	Save(ctx context.Context, id string, name string, size int64, pageCount int) (DocumentRecord, error)
	ListAll(ctx context.Context) ([]DocumentRecord, error)
	Get(ctx context.Context, id string) (DocumentRecord, bool)
}

type AnswerCache interface {
	GetAnswer(ctx context.Context, documentID string, question string) (string, bool)
	SaveAnswer(ctx context.Context, documentID string, question string, answer string) error
}
