package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/akolanti/docgenius/internal/api"
	"github.com/akolanti/docgenius/internal/config"
)

// GenerateHandler godoc
// @Summary      Generate text from a raw prompt
// @Description  Forwards the prompt to the configured LLM provider chain without retrieval. With no credentials configured the response is a labeled simulation.
// @Tags         Generation
// @Accept       json
// @Produce      json
// @Param        request  body      api.GenerateRequest  true  "Prompt"
// @Success      200  {object}  api.GenerateResponse
// @Failure      400  {object}  api.ErrorResponse "Missing prompt"
// @Failure      500  {object}  api.ErrorResponse "Provider failure"
// @Router       /gemini/generate [post]
func GenerateHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		logDH.Warn("Invalid Context by request ", "remoteAddr", r.RemoteAddr)
		return
	}

	var requestData api.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&requestData); err != nil || requestData.Prompt == "" {
		WriteErrorResponse(w, http.StatusBadRequest, "Prompt is required")
		return
	}

	response, err := handlerInstance.service.GenerateText(r.Context(), requestData.Prompt)
	if err != nil {
		writeInternalError(w, "Failed to generate response", err)
		return
	}

	writeJsonResponse(w, http.StatusOK, api.GenerateResponse{
		Response: response,
		Status:   "success",
	})
}

// ProbeHandler godoc
// @Summary      Check generation handler availability
// @Description  Lightweight probe that reports key configuration without invoking any LLM.
// @Tags         Generation
// @Produce      json
// @Success      200  {object}  api.ProbeResponse
// @Router       /gemini/_probe [get]
func ProbeHandler(w http.ResponseWriter, r *http.Request) {
	writeJsonResponse(w, http.StatusOK, api.ProbeResponse{
		Status:              "ok",
		GeminiKeyConfigured: config.GeminiAPIKey() != "",
	})
}
