package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/akolanti/docgenius/internal/api"
	"github.com/akolanti/docgenius/internal/config"
)

func writeJsonResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but can't send a clean status code now
		logDH.Error("Error encoding response", "error", err)
	}
}

func WriteErrorResponse(w http.ResponseWriter, httpCode int, detail string) {
	writeJsonResponse(w, httpCode, api.ErrorResponse{Detail: detail})
}

// writeInternalError redacts the underlying error in production, the full
// message is always logged server side.
func writeInternalError(w http.ResponseWriter, fallback string, err error) {
	logDH.Error(fallback, "error", err)
	detail := fallback
	if !config.IsProduction() {
		detail = fallback + ": " + err.Error()
	}
	WriteErrorResponse(w, http.StatusInternalServerError, detail)
}

func validateContext(ctx context.Context) bool {
	if ctx.Err() != nil {
		logDH.Warn("context error", "error", ctx.Err())
		return false
	}

	select {
	case <-ctx.Done():
		logDH.Warn("context cancelled")
		return false
	default:
		return true

	}
}
