package api

import (
	"net/http"

	"github.com/SultanDF/exam-dss/pkg/core/model"
	"github.com/SultanDF/exam-dss/pkg/core/services"
)

// evaluateRequest carries one student and the examiner pool to pick a
// committee from. RequiredCount falls back to the configured committee
// size when omitted.
type evaluateRequest struct {
	Student       model.Student     `json:"student"`
	Examiners     []model.Examiner  `json:"examiners"`
	TimeslotID    int               `json:"timeslot_id"`
	RequiredCount int               `json:"required_count,omitempty"`
	Criteria      []model.Criterion `json:"criteria,omitempty"`
	Method        string            `json:"method,omitempty"`
}

// EvaluateExaminers previews the committee for one student at one
// timeslot without generating a schedule
func (h *Handler) EvaluateExaminers(w http.ResponseWriter, r *http.Request) {
	var req evaluateRequest
	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	dataset := &model.Dataset{
		Students:  []model.Student{req.Student},
		Examiners: req.Examiners,
		Criteria:  req.Criteria,
	}

	result, err := services.EvaluateExaminers(h.config, h.logger, dataset,
		req.Student.ID, req.TimeslotID, req.RequiredCount, req.Method)
	if err != nil {
		h.serviceError(w, r, err)
		return
	}

	h.successResponse(w, r, "examiners evaluated", result)
}
