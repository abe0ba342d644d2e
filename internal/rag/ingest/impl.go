package ingest

import (
	"fmt"
	"path/filepath"
	"strings"
)

type docType string

const (
	docTypePDF docType = "PDF"
	docTypeCat docType = "DOCX" //anything the cat extractor reads: docx, odt, rtf, txt
	docTypeErr docType = "ERROR"
)

// SplitText cuts text into fixed-size character windows. The first chunk
// starts at offset 0, each following chunk starts overlap characters before
// the previous chunk's end, and the last chunk may be shorter than size.
// Empty text yields no chunks. Requires overlap < size.
// Size and overlap count runes, never bytes, so a window boundary cannot
// split a multibyte character.
func SplitText(text string, size int, overlap int) []string {
	if size <= 0 || overlap < 0 || overlap >= size {
		return nil
	}

	var chunks []string
	runes := []rune(text)
	length := len(runes)
	start := 0
	for start < length {
		end := start + size
		if end > length {
			end = length
		}
		chunks = append(chunks, string(runes[start:end]))
		if end == length {
			break
		}
		start = end - overlap
	}
	return chunks
}

// ChunkPages joins page texts with a newline separator and chunks the result.
// Chunks may span page boundaries.
func ChunkPages(pages []rawPage, size int, overlap int) []string {
	contents := make([]string, 0, len(pages))
	for _, page := range pages {
		contents = append(contents, page.Content)
	}
	return SplitText(strings.Join(contents, "\n"), size, overlap)
}

// IsSupportedExtension reports whether ext (including the dot) names a
// document format the extractors can read.
func IsSupportedExtension(ext string) bool {
	return getDocType("file"+strings.ToLower(ext)) != docTypeErr
}

func getDocType(docPath string) docType {
	ext := strings.ToLower(filepath.Ext(docPath))
	switch ext {
	case ".pdf":
		return docTypePDF
	case ".docx", ".txt", ".rtf", ".odt":
		return docTypeCat
	default:
		return docTypeErr
	}
}

func extractText(path string, contentType docType) ([]rawPage, int, error) {
	switch contentType {
	case docTypePDF:
		return extractPDF(path)
	case docTypeCat:
		return extractdocxTxtRtf(path)

	default:
		return nil, 0, fmt.Errorf("unsupported content type: %s", contentType)
	}
}
