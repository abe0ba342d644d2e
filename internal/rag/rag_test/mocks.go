package rag_test

import (
	"context"

	"github.com/akolanti/docgenius/internal/domain/docModel"
	"github.com/akolanti/docgenius/internal/rag/vectorDB"
)

// MockIndexStore implements vectorDB.IndexStore
type MockIndexStore struct {
	// Control fields to simulate different behaviors
	OnBuildIndex func(ctx context.Context, documentID string, chunks []string, vectors [][]float32) error
	OnLoadIndex  func(ctx context.Context, documentID string) (vectorDB.Index, error)
}

func (m *MockIndexStore) BuildIndex(ctx context.Context, documentID string, chunks []string, vectors [][]float32) error {
	if m.OnBuildIndex != nil {
		return m.OnBuildIndex(ctx, documentID, chunks, vectors)
	}
	return nil
}

func (m *MockIndexStore) LoadIndex(ctx context.Context, documentID string) (vectorDB.Index, error) {
	if m.OnLoadIndex != nil {
		return m.OnLoadIndex(ctx, documentID)
	}
	return &MockIndex{}, nil
}

// MockIndex implements vectorDB.Index
type MockIndex struct {
	OnSearch func(queryVector []float32, k int) []string
}

func (m *MockIndex) Search(queryVector []float32, k int) []string {
	if m.OnSearch != nil {
		return m.OnSearch(queryVector, k)
	}
	return []string{"default context"}
}

func (m *MockIndex) Count() int     { return 1 }
func (m *MockIndex) Dimension() int { return 2 }

// MockEmbedder implements embedding.Embedder
type MockEmbedder struct {
	OnGetEmbedding   func(ctx context.Context, query string) ([]float32, error)
	OnBatchEmbedding func(ctx context.Context, chunks []string) ([][]float32, error)
}

func (m *MockEmbedder) Name() string { return "mock-embedder" }

func (m *MockEmbedder) GetEmbedding(ctx context.Context, query string) ([]float32, error) {
	if m.OnGetEmbedding != nil {
		return m.OnGetEmbedding(ctx, query)
	}
	return []float32{1, 0}, nil
}

func (m *MockEmbedder) BatchEmbedding(ctx context.Context, chunks []string) ([][]float32, error) {
	if m.OnBatchEmbedding != nil {
		return m.OnBatchEmbedding(ctx, chunks)
	}
	vectors := make([][]float32, len(chunks))
	for i := range vectors {
		vectors[i] = []float32{1, 0}
	}
	return vectors, nil
}

// MockLLM implements llm.Provider
type MockLLM struct {
	OnGenerate func(ctx context.Context, query string, matches []string) (string, error)
}

func (m *MockLLM) Name() string { return "mock-llm" }

func (m *MockLLM) Generate(ctx context.Context, query string, matches []string) (string, error) {
	if m.OnGenerate != nil {
		return m.OnGenerate(ctx, query, matches)
	}
	return "default answer", nil
}

// MockMetadataStore implements docModel.MetadataStore
type MockMetadataStore struct {
	OnSave  func(ctx context.Context, id string, name string, size int64, pageCount int) (docModel.DocumentRecord, error)
	Records []docModel.DocumentRecord
}

func (m *MockMetadataStore) Save(ctx context.Context, id string, name string, size int64, pageCount int) (docModel.DocumentRecord, error) {
	if m.OnSave != nil {
		return m.OnSave(ctx, id, name, size, pageCount)
	}
	record := docModel.DocumentRecord{
		ID:        id,
		Name:      name,
		Size:      size,
		Status:    docModel.StatusIndexed,
		PageCount: pageCount,
	}
	m.Records = append(m.Records, record)
	return record, nil
}

func (m *MockMetadataStore) ListAll(ctx context.Context) ([]docModel.DocumentRecord, error) {
	return m.Records, nil
}

func (m *MockMetadataStore) Get(ctx context.Context, id string) (docModel.DocumentRecord, bool) {
	for _, record := range m.Records {
		if record.ID == id {
			return record, true
		}
	}
	return docModel.DocumentRecord{}, false
}

// MockAnswerCache implements docModel.AnswerCache
type MockAnswerCache struct {
	OnGetAnswer func(ctx context.Context, documentID string, question string) (string, bool)
}

func (m *MockAnswerCache) GetAnswer(ctx context.Context, documentID string, question string) (string, bool) {
	if m.OnGetAnswer != nil {
		return m.OnGetAnswer(ctx, documentID, question)
	}
	return "", false
}

func (m *MockAnswerCache) SaveAnswer(ctx context.Context, documentID string, question string, answer string) error {
	return nil
}
