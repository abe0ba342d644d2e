package metadataStore

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/akolanti/docgenius/internal/domain/docModel"
)

func TestSaveAndGet(t *testing.T) {
	s := NewStore(t.TempDir())
	ctx := context.Background()

	record, err := s.Save(ctx, "doc-1", "report.pdf", 2048, 3)
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if record.Status != docModel.StatusIndexed {
		t.Errorf("Status got %q, want %q", record.Status, docModel.StatusIndexed)
	}
	if record.UploadedAt.IsZero() {
		t.Error("UploadedAt was not set")
	}

	got, found := s.Get(ctx, "doc-1")
	if !found {
		t.Fatal("Saved record not found")
	}
	if got.Name != "report.pdf" || got.Size != 2048 || got.PageCount != 3 {
		t.Errorf("Record mismatch: %+v", got)
	}
}

func TestGetUnknown(t *testing.T) {
	s := NewStore(t.TempDir())

	if _, found := s.Get(context.Background(), "ghost-id"); found {
		t.Error("Expected found=false for unknown id")
	}
}

func TestListAllNewestFirst(t *testing.T) {
	s := NewStore(t.TempDir())
	ctx := context.Background()

	for _, id := range []string{"doc-a", "doc-b", "doc-c"} {
		if _, err := s.Save(ctx, id, id+".pdf", 100, 1); err != nil {
			t.Fatalf("Save %s failed: %v", id, err)
		}
		time.Sleep(2 * time.Millisecond) //distinct timestamps
	}

	records, err := s.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("Expected 3 records, got %d", len(records))
	}

	expected := []string{"doc-c", "doc-b", "doc-a"}
	for i := range expected {
		if records[i].ID != expected[i] {
			t.Errorf("Position %d got %s, want %s", i, records[i].ID, expected[i])
		}
	}
}

func TestSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	first := NewStore(dir)
	if _, err := first.Save(ctx, "doc-1", "kept.pdf", 1, 1); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	second := NewStore(dir)
	if _, found := second.Get(ctx, "doc-1"); !found {
		t.Error("Record lost across store instances")
	}
}

func TestCorruptFileStartsEmpty(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "metadata.json"), []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	s := NewStore(dir)
	records, err := s.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("Expected empty store over corrupt file, got %d records", len(records))
	}
}
