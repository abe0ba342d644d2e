package api

import "time"

type UploadResponse struct {
	DocumentID string `json:"document_id" example:"3b71d0e2-55a1-4f6b-9c37-6cbb6f7f24c1"`
	Status     string `json:"status" example:"success"`
	PageCount  int    `json:"page_count" example:"3"`
}

type DocumentResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name" example:"report.pdf"`
	Size       int64     `json:"size" example:"102400"`
	UploadedAt time.Time `json:"uploadedAt"`
	Status     string    `json:"status" example:"indexed"`
	PageCount  int       `json:"pageCount" example:"3"`
}

type AskResponse struct {
	Answer     string `json:"answer"`
	DocumentID string `json:"document_id"`
}

type GenerateResponse struct {
	Response string `json:"response"`
	Status   string `json:"status" example:"success"`
}

type ProbeResponse struct {
	Status              string `json:"status" example:"ok"`
	GeminiKeyConfigured bool   `json:"gemini_key_configured"`
}

type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

type ErrorResponse struct {
	Detail string `json:"detail" example:"Document not found"`
}

// requests---------------------

type AskRequest struct {
	DocumentID string `json:"document_id" validate:"required"`
	Question   string `json:"question" validate:"required"`
}

type GenerateRequest struct {
	Prompt string `json:"prompt" validate:"required"`
}
