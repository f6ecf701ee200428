package api

import (
	"fmt"
	"net/http"

	"github.com/SultanDF/exam-dss/pkg/core/model"
	"github.com/SultanDF/exam-dss/pkg/core/services"
)

// scheduleRequest carries a complete scheduling dataset. Method falls back
// to the configured default, and Save persists the run when a database is
// configured.
type scheduleRequest struct {
	Students  []model.Student     `json:"students"`
	Examiners []model.Examiner    `json:"examiners"`
	Rooms     []model.Room        `json:"rooms"`
	Timeslots []model.Timeslot    `json:"timeslots"`
	Sessions  []model.ExamSession `json:"exam_sessions"`
	Criteria  []model.Criterion   `json:"criteria,omitempty"`
	Method    string              `json:"method,omitempty"`
	Save      bool                `json:"save,omitempty"`
}

// GenerateSchedule runs the allocator over the posted dataset. The method
// is checked before the data so an unsupported method is always reported
// as such, whatever else is wrong with the request.
func (h *Handler) GenerateSchedule(w http.ResponseWriter, r *http.Request) {
	var req scheduleRequest
	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if req.Method != "" && !h.engine.Supports(req.Method) {
		h.badRequest(w, r, fmt.Errorf("unsupported method %q, use one of %v", req.Method, h.engine.Methods()))
		return
	}
	if len(req.Students) == 0 {
		h.badRequest(w, r, fmt.Errorf("students must not be empty"))
		return
	}
	if len(req.Examiners) == 0 {
		h.badRequest(w, r, fmt.Errorf("examiners must not be empty"))
		return
	}
	if len(req.Rooms) == 0 {
		h.badRequest(w, r, fmt.Errorf("rooms must not be empty"))
		return
	}
	if len(req.Timeslots) == 0 {
		h.badRequest(w, r, fmt.Errorf("timeslots must not be empty"))
		return
	}

	var store = h.database
	if !req.Save {
		store = nil
	} else if h.database == nil {
		h.badRequest(w, r, fmt.Errorf("cannot save the run, no database configured"))
		return
	}

	dataset := &model.Dataset{
		Students:  req.Students,
		Examiners: req.Examiners,
		Rooms:     req.Rooms,
		Timeslots: req.Timeslots,
		Sessions:  req.Sessions,
		Criteria:  req.Criteria,
	}

	result, err := services.GenerateSchedule(r.Context(), store, h.config, h.logger, dataset, req.Method)
	if err != nil {
		h.serviceError(w, r, err)
		return
	}

	h.successResponse(w, r, "schedule generated", result)
}

// AnalyzeSchedule computes quality statistics and recommendations for a
// posted solution
func (h *Handler) AnalyzeSchedule(w http.ResponseWriter, r *http.Request) {
	var solution model.Solution
	if err := h.readJSON(r, &solution); err != nil {
		h.badRequest(w, r, err)
		return
	}

	result, err := services.AnalyzeSchedule(h.logger, &solution)
	if err != nil {
		h.serviceError(w, r, err)
		return
	}

	h.successResponse(w, r, "schedule analyzed", result)
}
