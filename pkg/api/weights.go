package api

import (
	"net/http"

	"github.com/SultanDF/exam-dss/pkg/core/services"
)

// ahpMatrix mirrors the pairwise comparison payload: criterion names plus
// a square reciprocal matrix in the same order.
type ahpMatrix struct {
	Criteria []string    `json:"criteria"`
	Matrix   [][]float64 `json:"matrix"`
}

type deriveWeightsRequest struct {
	AHPMatrix ahpMatrix `json:"ahp_matrix"`
}

// DeriveWeights turns pairwise comparisons into criteria weights
func (h *Handler) DeriveWeights(w http.ResponseWriter, r *http.Request) {
	var req deriveWeightsRequest
	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	result, err := services.DeriveWeights(h.logger, req.AHPMatrix.Criteria, req.AHPMatrix.Matrix)
	if err != nil {
		h.serviceError(w, r, err)
		return
	}

	h.successResponse(w, r, result.Message, result)
}
