package rag_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/akolanti/docgenius/internal/config"
	"github.com/akolanti/docgenius/internal/data/metadataStore"
	"github.com/akolanti/docgenius/internal/rag"
	"github.com/akolanti/docgenius/internal/rag/embedding/localEmbedding"
	"github.com/akolanti/docgenius/internal/rag/llm/simulated"
	"github.com/akolanti/docgenius/internal/rag/vectorDB"
	"github.com/akolanti/docgenius/internal/rag/vectorDB/flatDB"
)

func newTestService(indexStore *MockIndexStore, llm *MockLLM, embedder *MockEmbedder,
	metadata *MockMetadataStore, cache *MockAnswerCache, dataDir string) rag.Service {
	return rag.NewService(rag.ServiceConfig{
		IndexStore:  indexStore,
		LLMProvider: llm,
		Embedder:    embedder,
		Metadata:    metadata,
		AnswerCache: cache,
		DataDir:     dataDir,
	})
}

func TestAnswerQuestion_Scenarios(t *testing.T) {
	tests := []struct {
		name           string
		setupMocks     func(e *MockEmbedder, s *MockIndexStore, l *MockLLM, c *MockAnswerCache)
		expectedAnswer string
		expectedErrIs  error
		expectErr      bool
	}{
		{
			name: "Success_Full_Flow",
			setupMocks: func(e *MockEmbedder, s *MockIndexStore, l *MockLLM, c *MockAnswerCache) {
				s.OnLoadIndex = func(ctx context.Context, id string) (vectorDB.Index, error) {
					return &MockIndex{OnSearch: func(v []float32, k int) []string {
						return []string{"relevant chunk"}
					}}, nil
				}
				l.OnGenerate = func(ctx context.Context, q string, m []string) (string, error) {
					if len(m) != 1 || m[0] != "relevant chunk" {
						t.Errorf("LLM got unexpected matches: %v", m)
					}
					return "final answer", nil
				}
			},
			expectedAnswer: "final answer",
		},
		{
			name: "Success_Cache_Hit",
			setupMocks: func(e *MockEmbedder, s *MockIndexStore, l *MockLLM, c *MockAnswerCache) {
				c.OnGetAnswer = func(ctx context.Context, id string, q string) (string, bool) {
					return "cached answer", true
				}
				l.OnGenerate = func(ctx context.Context, q string, m []string) (string, error) {
					t.Error("LLM must not be called on a cache hit")
					return "", nil
				}
			},
			expectedAnswer: "cached answer",
		},
		{
			name: "Failure_Unknown_Document",
			setupMocks: func(e *MockEmbedder, s *MockIndexStore, l *MockLLM, c *MockAnswerCache) {
				s.OnLoadIndex = func(ctx context.Context, id string) (vectorDB.Index, error) {
					return nil, vectorDB.ErrIndexNotFound
				}
			},
			expectErr:     true,
			expectedErrIs: vectorDB.ErrIndexNotFound,
		},
		{
			name: "Failure_Embedding",
			setupMocks: func(e *MockEmbedder, s *MockIndexStore, l *MockLLM, c *MockAnswerCache) {
				e.OnGetEmbedding = func(ctx context.Context, q string) ([]float32, error) {
					return nil, errors.New("api limit")
				}
			},
			expectErr: true,
		},
		{
			name: "Failure_LLM_Generation",
			setupMocks: func(e *MockEmbedder, s *MockIndexStore, l *MockLLM, c *MockAnswerCache) {
				l.OnGenerate = func(ctx context.Context, q string, m []string) (string, error) {
					return "", errors.New("provider down")
				}
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mEmbed := &MockEmbedder{}
			mStore := &MockIndexStore{}
			mLLM := &MockLLM{}
			mCache := &MockAnswerCache{}

			tt.setupMocks(mEmbed, mStore, mLLM, mCache)

			s := newTestService(mStore, mLLM, mEmbed, &MockMetadataStore{}, mCache, t.TempDir())

			ctx := context.WithValue(context.Background(), config.TRACE_ID_KEY, "test-trace")
			answer, err := s.AnswerQuestion(ctx, "doc-1", "test question")

			if tt.expectErr {
				if err == nil {
					t.Fatal("Expected an error, got nil")
				}
				if tt.expectedErrIs != nil && !errors.Is(err, tt.expectedErrIs) {
					t.Errorf("Error %v does not wrap %v", err, tt.expectedErrIs)
				}
				return
			}
			if err != nil {
				t.Fatalf("AnswerQuestion failed: %v", err)
			}
			if answer != tt.expectedAnswer {
				t.Errorf("Answer got %q, want %q", answer, tt.expectedAnswer)
			}
		})
	}
}

func TestUploadDocument_InvalidExtension(t *testing.T) {
	s := newTestService(&MockIndexStore{}, &MockLLM{}, &MockEmbedder{},
		&MockMetadataStore{}, &MockAnswerCache{}, t.TempDir())

	for _, filename := range []string{"", "image.png", "archive.zip", "noextension"} {
		_, err := s.UploadDocument(context.Background(), filename, strings.NewReader("data"))
		if !errors.Is(err, rag.ErrInvalidDocument) {
			t.Errorf("UploadDocument(%q) error = %v; want ErrInvalidDocument", filename, err)
		}
	}
}

func TestUploadDocument_TextFile(t *testing.T) {
	mStore := &MockIndexStore{}
	mMeta := &MockMetadataStore{}

	var indexedChunks []string
	mStore.OnBuildIndex = func(ctx context.Context, id string, chunks []string, vectors [][]float32) error {
		indexedChunks = chunks
		if len(chunks) != len(vectors) {
			t.Errorf("Got %d chunks but %d vectors", len(chunks), len(vectors))
		}
		return nil
	}

	s := newTestService(mStore, &MockLLM{}, &MockEmbedder{}, mMeta, &MockAnswerCache{}, t.TempDir())

	ctx := context.WithValue(context.Background(), config.TRACE_ID_KEY, "upload-trace")
	content := "plain text content for the ingestion pipeline"
	result, err := s.UploadDocument(ctx, "notes.txt", strings.NewReader(content))
	if err != nil {
		t.Fatalf("UploadDocument failed: %v", err)
	}

	if result.DocumentID == "" {
		t.Error("Expected a generated document id")
	}
	if result.PageCount != 1 {
		t.Errorf("PageCount got %d, want 1", result.PageCount)
	}
	if len(indexedChunks) == 0 {
		t.Fatal("No chunks reached the index store")
	}
	if !strings.Contains(indexedChunks[0], "plain text content") {
		t.Errorf("Indexed chunk lost the content: %q", indexedChunks[0])
	}

	if len(mMeta.Records) != 1 {
		t.Fatalf("Expected 1 metadata record, got %d", len(mMeta.Records))
	}
	if mMeta.Records[0].Name != "notes.txt" || mMeta.Records[0].ID != result.DocumentID {
		t.Errorf("Metadata record mismatch: %+v", mMeta.Records[0])
	}
}

func TestUploadDocument_EmbeddingFailure(t *testing.T) {
	mEmbed := &MockEmbedder{
		OnBatchEmbedding: func(ctx context.Context, chunks []string) ([][]float32, error) {
			return nil, errors.New("quota exceeded")
		},
	}
	mMeta := &MockMetadataStore{}

	s := newTestService(&MockIndexStore{}, &MockLLM{}, mEmbed, mMeta, &MockAnswerCache{}, t.TempDir())

	_, err := s.UploadDocument(context.Background(), "notes.txt", strings.NewReader("some content"))
	if err == nil {
		t.Fatal("Expected embedding failure to propagate")
	}
	if len(mMeta.Records) != 0 {
		t.Error("Failed upload must not register metadata")
	}
}

func TestGenerateText(t *testing.T) {
	mLLM := &MockLLM{
		OnGenerate: func(ctx context.Context, q string, m []string) (string, error) {
			if m != nil {
				t.Errorf("Raw generation must pass no matches, got %v", m)
			}
			return "generated: " + q, nil
		},
	}

	s := newTestService(&MockIndexStore{}, mLLM, &MockEmbedder{},
		&MockMetadataStore{}, &MockAnswerCache{}, t.TempDir())

	answer, err := s.GenerateText(context.Background(), "hello")
	if err != nil {
		t.Fatalf("GenerateText failed: %v", err)
	}
	if answer != "generated: hello" {
		t.Errorf("Answer got %q", answer)
	}
}

// End-to-end through the real stores and the credential-free providers:
// upload a text file, ask about it, get a labeled simulated answer that
// carries the document's content.
func TestUploadAndAsk_SimulatedPipeline(t *testing.T) {
	dataDir := t.TempDir()
	indexStore, err := flatDB.NewStore(dataDir)
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	s := rag.NewService(rag.ServiceConfig{
		IndexStore:  indexStore,
		LLMProvider: simulated.New(),
		Embedder:    localEmbedding.New(8),
		Metadata:    metadataStore.NewStore(dataDir),
		AnswerCache: &MockAnswerCache{},
		DataDir:     dataDir,
	})

	ctx := context.WithValue(context.Background(), config.TRACE_ID_KEY, "e2e-trace")
	content := "The warranty period is two years from the purchase date."

	result, err := s.UploadDocument(ctx, "warranty.txt", strings.NewReader(content))
	if err != nil {
		t.Fatalf("UploadDocument failed: %v", err)
	}

	answer, err := s.AnswerQuestion(ctx, result.DocumentID, "how long is the warranty?")
	if err != nil {
		t.Fatalf("AnswerQuestion failed: %v", err)
	}
	if !strings.Contains(answer, "simulated answer") {
		t.Errorf("Answer is missing the simulation label: %q", answer)
	}
	if !strings.Contains(answer, "warranty period") {
		t.Errorf("Answer does not carry the document context: %q", answer)
	}

	records, err := s.ListDocuments(ctx)
	if err != nil {
		t.Fatalf("ListDocuments failed: %v", err)
	}
	if len(records) != 1 || records[0].ID != result.DocumentID {
		t.Errorf("Uploaded document missing from listing: %+v", records)
	}

	if _, err := s.AnswerQuestion(ctx, "missing-doc", "anything"); !errors.Is(err, vectorDB.ErrIndexNotFound) {
		t.Errorf("Unknown document error = %v; want ErrIndexNotFound", err)
	}
}

func TestListDocuments(t *testing.T) {
	mMeta := &MockMetadataStore{}
	s := newTestService(&MockIndexStore{}, &MockLLM{}, &MockEmbedder{}, mMeta, &MockAnswerCache{}, t.TempDir())

	ctx := context.Background()
	if _, err := mMeta.Save(ctx, "doc-1", "a.pdf", 1, 1); err != nil {
		t.Fatal(err)
	}

	records, err := s.ListDocuments(ctx)
	if err != nil {
		t.Fatalf("ListDocuments failed: %v", err)
	}
	if len(records) != 1 || records[0].ID != "doc-1" {
		t.Errorf("Unexpected records: %+v", records)
	}
}
