package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"sync"

	"github.com/akolanti/docgenius/internal/adapter"
	"github.com/akolanti/docgenius/internal/api"
	"github.com/akolanti/docgenius/internal/config"
	"github.com/akolanti/docgenius/internal/rag"
	"github.com/akolanti/docgenius/internal/rag/vectorDB"
	"github.com/akolanti/docgenius/pkg/logger_i"
)

var (
	handlerInstance *documentHandler //private singleton
	once            sync.Once
	logDH           *logger_i.Logger
)

type documentHandler struct {
	service rag.Service
}

func InitDocumentHandler(ragService rag.Service) {
	once.Do(func() {
		handlerInstance = &documentHandler{service: ragService}

		logDH = logger_i.NewLogger("DocumentHandler")
		logDH.Info("Starting document handler")
	})
}

// HealthHandler godoc
// @Summary      Liveness probe
// @Tags         Health
// @Produce      json
// @Success      200  {object}  api.HealthResponse
// @Router       /health [get]
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJsonResponse(w, http.StatusOK, api.HealthResponse{Status: "ok"})
}

// UploadHandler godoc
// @Summary      Upload a document
// @Description  Receives a file via multipart/form-data, extracts and chunks its text, builds the vector index and registers metadata.
// @Tags         Documents
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "The PDF (or docx/txt/rtf/odt) file to upload"
// @Success      200  {object}  api.UploadResponse
// @Failure      400  {object}  api.ErrorResponse "Missing file or unsupported type"
// @Failure      500  {object}  api.ErrorResponse "Processing failure"
// @Router       /pdf/upload [post]
func UploadHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		logDH.Warn("Invalid Context by request ", "remoteAddr", r.RemoteAddr)
		return
	}

	if err := r.ParseMultipartForm(config.MaxUploadSize); err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, "File too large or bad request")
		return
	}

	fileReader, fileMetadata, err := r.FormFile("file")
	if err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, "No file provided")
		return
	}
	defer fileReader.Close()

	result, err := handlerInstance.service.UploadDocument(r.Context(), fileMetadata.Filename, fileReader)
	if errors.Is(err, rag.ErrInvalidDocument) {
		WriteErrorResponse(w, http.StatusBadRequest, "Only PDF, DOCX, TXT, RTF and ODT files are supported")
		return
	}
	if err != nil {
		writeInternalError(w, "Failed to process document", err)
		return
	}

	writeJsonResponse(w, http.StatusOK, adapter.ToUploadResponse(result))
}

// ListDocumentsHandler godoc
// @Summary      List uploaded documents
// @Tags         Documents
// @Produce      json
// @Success      200  {array}  api.DocumentResponse
// @Failure      500  {object}  api.ErrorResponse
// @Router       /pdf/documents [get]
func ListDocumentsHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		logDH.Warn("Invalid Context by request ", "remoteAddr", r.RemoteAddr)
		return
	}

	records, err := handlerInstance.service.ListDocuments(r.Context())
	if err != nil {
		writeInternalError(w, "Failed to list documents", err)
		return
	}

	writeJsonResponse(w, http.StatusOK, adapter.ToDocumentResponses(records))
}

// AskHandler godoc
// @Summary      Ask a question about a document
// @Description  Retrieves the most similar chunks from the document's index and asks the configured LLM provider.
// @Tags         Documents
// @Accept       json
// @Produce      json
// @Param        request  body      api.AskRequest  true  "Document id and question"
// @Success      200  {object}  api.AskResponse
// @Failure      400  {object}  api.ErrorResponse "Missing fields"
// @Failure      404  {object}  api.ErrorResponse "Unknown document or no index"
// @Failure      500  {object}  api.ErrorResponse "Provider failure"
// @Router       /pdf/ask [post]
func AskHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		logDH.Warn("Invalid Context by request ", "remoteAddr", r.RemoteAddr)
		return
	}

	var requestData api.AskRequest
	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			logDH.Error("Couldn't close the Ask handler reader", "error", err)
		}
	}(r.Body)

	if err := json.NewDecoder(r.Body).Decode(&requestData); err != nil ||
		requestData.DocumentID == "" || requestData.Question == "" {
		logDH.Warn("Bad Ask Request", "error", err)
		WriteErrorResponse(w, http.StatusBadRequest, "document_id and question are required")
		return
	}

	answer, err := handlerInstance.service.AnswerQuestion(r.Context(), requestData.DocumentID, requestData.Question)
	if errors.Is(err, vectorDB.ErrIndexNotFound) {
		WriteErrorResponse(w, http.StatusNotFound, "Document not found")
		return
	}
	if err != nil {
		writeInternalError(w, "Failed to answer question", err)
		return
	}

	writeJsonResponse(w, http.StatusOK, api.AskResponse{
		Answer:     answer,
		DocumentID: requestData.DocumentID,
	})
}
