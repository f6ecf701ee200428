package api

import (
	"net/http"

	"github.com/SultanDF/exam-dss/pkg/core/sampledata"
	"github.com/SultanDF/exam-dss/pkg/core/services"
)

// methodInfo describes one scoring method for API consumers
type methodInfo struct {
	Name        string `json:"name"`
	FullName    string `json:"full_name"`
	Description string `json:"description"`
}

// Root answers with a service banner and an endpoint index
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, map[string]any{
		"message":     "Thesis examination scheduling decision support system",
		"description": "Committee selection and exam scheduling with MCDM methods (SAW, TOPSIS, AHP)",
		"version":     serviceVersion,
		"endpoints": map[string]string{
			"schedule":           "POST /schedule - Generate an exam schedule",
			"ahp-weights":        "POST /ahp-weights - Derive criteria weights from pairwise comparisons",
			"evaluate-examiners": "POST /evaluate-examiners - Preview the committee for one student",
			"analyze-schedule":   "POST /analyze-schedule - Quality statistics for a schedule",
			"criteria":           "GET /criteria - Default selection criteria",
			"methods":            "GET /methods - Available MCDM methods",
			"sample-dataset":     "GET /sample-dataset - Demonstration dataset",
			"solutions":          "GET /solutions - Stored scheduling runs",
		},
	})
}

// Health is the liveness probe
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": serviceName,
		"version": serviceVersion,
	})
}

// Methods lists the scoring methods the engine understands
func (h *Handler) Methods(w http.ResponseWriter, r *http.Request) {
	methods := []methodInfo{
		{
			Name:        "SAW",
			FullName:    "Simple Additive Weighting",
			Description: "Weighted sum of normalized criterion values",
		},
		{
			Name:        "TOPSIS",
			FullName:    "Technique for Order Preference by Similarity to Ideal Solution",
			Description: "Ranks by closeness to the ideal and distance from the anti-ideal",
		},
		{
			Name:        "AHP",
			FullName:    "Analytic Hierarchy Process",
			Description: "Derives criteria weights from pairwise comparison matrices",
		},
	}

	h.successResponse(w, r, "available methods", map[string]any{"methods": methods})
}

// Criteria returns the committee selection criteria active for this
// deployment, which is the config override when one is set
func (h *Handler) Criteria(w http.ResponseWriter, r *http.Request) {
	h.successResponse(w, r, "active criteria", map[string]any{
		"criteria": services.ActiveCriteria(h.config),
	})
}

// SampleDataset returns the demonstration dataset, ready to be posted
// back to /schedule
func (h *Handler) SampleDataset(w http.ResponseWriter, r *http.Request) {
	h.successResponse(w, r, "sample dataset", sampledata.Default())
}
