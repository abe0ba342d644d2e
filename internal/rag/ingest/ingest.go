package ingest

import (
	"fmt"

	"github.com/akolanti/docgenius/internal/config"
	"github.com/akolanti/docgenius/pkg/logger_i"
)

type rawPage struct {
	Number  int    `json:"number"`
	Content string `json:"content"`
}

var logger = logger_i.NewLogger("Document Ingestion ")

// ExtractAndChunk reads the document at path, extracts its text page by page
// and splits the concatenated text into overlapping chunks. The returned page
// count is the document's total page count, including pages that yielded no
// text. Zero chunks is not an error: the document may be image-only.
func ExtractAndChunk(path string) ([]string, int, error) {
	docType := getDocType(path)
	if docType == docTypeErr {
		return nil, 0, fmt.Errorf("unsupported document type: %s", path)
	}
	logger.Debug("Processing document", "path", path, "type", docType)

	pages, pageCount, err := extractText(path, docType)
	if err != nil {
		return nil, 0, fmt.Errorf("extracting document content: %w", err)
	}
	logger.Debug("Processing document", "Number of raw pages: ", len(pages))

	chunks := ChunkPages(pages, config.ChunkSize, config.ChunkOverlap)
	logger.Debug("Processing document", "Number of chunks: ", len(chunks))
	return chunks, pageCount, nil
}
