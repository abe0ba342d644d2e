package adapter

import (
	"github.com/akolanti/docgenius/internal/api"
	"github.com/akolanti/docgenius/internal/domain/docModel"
	"github.com/akolanti/docgenius/internal/rag"
)

func ToUploadResponse(result rag.UploadResult) api.UploadResponse {
	return api.UploadResponse{
		DocumentID: result.DocumentID,
		Status:     "success",
		PageCount:  result.PageCount,
	}
}

func ToDocumentResponses(records []docModel.DocumentRecord) []api.DocumentResponse {
	responses := make([]api.DocumentResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, api.DocumentResponse{
			ID:         record.ID,
			Name:       record.Name,
			Size:       record.Size,
			UploadedAt: record.UploadedAt,
			Status:     record.Status,
			PageCount:  record.PageCount,
		})
	}
	return responses
}
