package api

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/SultanDF/exam-dss/pkg/core/mcdm"
)

// Response is the envelope every domain endpoint answers with
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

func (h *Handler) readJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("Failed to encode response",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err))
	}
}

func (h *Handler) successResponse(w http.ResponseWriter, r *http.Request, msg string, data any) {
	h.writeJSON(w, r, http.StatusOK, Response{
		Success: true,
		Message: msg,
		Data:    data,
	})
}

func (h *Handler) badRequest(w http.ResponseWriter, r *http.Request, err error) {
	h.writeJSON(w, r, http.StatusBadRequest, Response{
		Success: false,
		Message: err.Error(),
	})
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request, msg string) {
	h.writeJSON(w, r, http.StatusNotFound, Response{
		Success: false,
		Message: msg,
	})
}

// serviceUnavailable reports a feature this deployment is not set up for,
// such as solution history without a database
func (h *Handler) serviceUnavailable(w http.ResponseWriter, r *http.Request, msg string) {
	h.writeJSON(w, r, http.StatusServiceUnavailable, Response{
		Success: false,
		Message: msg,
	})
}

func (h *Handler) internalServerError(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.Error("Internal server error",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Error(err))
	h.writeJSON(w, r, http.StatusInternalServerError, Response{
		Success: false,
		Message: "internal server error",
	})
}

// serviceError maps a service failure onto the right status code. Bad
// input and unknown methods are the caller's fault, everything else is
// ours.
func (h *Handler) serviceError(w http.ResponseWriter, r *http.Request, err error) {
	if mcdm.IsValidation(err) || mcdm.IsUnsupportedMethod(err) {
		h.badRequest(w, r, err)
		return
	}
	h.internalServerError(w, r, err)
}
