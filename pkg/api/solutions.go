package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/SultanDF/exam-dss/pkg/core/services"
)

// ListSolutions returns stored run summaries, newest first
func (h *Handler) ListSolutions(w http.ResponseWriter, r *http.Request) {
	if h.database == nil {
		h.serviceUnavailable(w, r, "no database configured")
		return
	}

	summaries, err := services.ListSolutions(r.Context(), h.database, h.logger)
	if err != nil {
		h.serviceError(w, r, err)
		return
	}

	h.successResponse(w, r, "stored runs", map[string]any{"solutions": summaries})
}

// GetSolution returns one stored run with its assignments
func (h *Handler) GetSolution(w http.ResponseWriter, r *http.Request) {
	if h.database == nil {
		h.serviceUnavailable(w, r, "no database configured")
		return
	}

	runID := chi.URLParam(r, "runID")
	solution, err := services.GetSolution(r.Context(), h.database, h.logger, runID)
	if err != nil {
		h.serviceError(w, r, err)
		return
	}
	if solution == nil {
		h.notFound(w, r, fmt.Sprintf("solution not found: %s", runID))
		return
	}

	h.successResponse(w, r, "stored run", solution)
}
