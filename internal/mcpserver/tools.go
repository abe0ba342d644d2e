package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// AskInput is the input schema for the ask_document tool.
type AskInput struct {
	DocumentID string `json:"document_id" jsonschema:"id of a previously uploaded document"`
	Question   string `json:"question" jsonschema:"the question to answer from the document"`
}

// AskOutput is the output schema for the ask_document tool.
type AskOutput struct {
	Answer     string `json:"answer"`
	DocumentID string `json:"document_id"`
}

// ListOutput is the output schema for the list_documents tool.
type ListOutput struct {
	Documents []DocumentOutput `json:"documents"`
	Count     int              `json:"count"`
}

// DocumentOutput represents a single registered document.
type DocumentOutput struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Status     string `json:"status"`
	PageCount  int    `json:"page_count"`
	UploadedAt string `json:"uploaded_at"`
}

func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "ask_document",
		Description: "Answer a question about an uploaded document using its indexed content",
	}, s.handleAsk)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_documents",
		Description: "List the uploaded documents and their ids",
	}, s.handleList)
}

func (s *Server) handleAsk(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AskInput,
) (*mcp.CallToolResult, AskOutput, error) {
	answer, err := s.ragService.AnswerQuestion(ctx, input.DocumentID, input.Question)
	if err != nil {
		return nil, AskOutput{}, err
	}

	return nil, AskOutput{Answer: answer, DocumentID: input.DocumentID}, nil
}

type listInput struct{}

func (s *Server) handleList(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ listInput,
) (*mcp.CallToolResult, ListOutput, error) {
	records, err := s.ragService.ListDocuments(ctx)
	if err != nil {
		return nil, ListOutput{}, err
	}

	output := ListOutput{
		Documents: make([]DocumentOutput, len(records)),
		Count:     len(records),
	}
	for i := range records {
		output.Documents[i] = DocumentOutput{
			ID:         records[i].ID,
			Name:       records[i].Name,
			Status:     records[i].Status,
			PageCount:  records[i].PageCount,
			UploadedAt: records[i].UploadedAt.Format("2006-01-02T15:04:05Z07:00"),
		}
	}

	return nil, output, nil
}
