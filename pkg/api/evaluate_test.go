package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SultanDF/exam-dss/pkg/core/model"
	"github.com/SultanDF/exam-dss/pkg/core/services"
)

func evaluateFixture() map[string]any {
	return map[string]any{
		"student": model.Student{
			ID: 1, Name: "Budi Santoso", ThesisField: "software engineering", SupervisorID: 1,
		},
		"examiners": []model.Examiner{
			{ID: 1, Name: "Dr. Ayu Lestari", Expertise: []string{"software engineering"}, ExperienceYears: 10, AvailabilityScore: 4, CompetencyScore: 4, AvailableTimeslots: []int{1}},
			{ID: 2, Name: "Prof. Bambang Wijaya", Expertise: []string{"software engineering"}, ExperienceYears: 15, AvailabilityScore: 5, CompetencyScore: 5, AvailableTimeslots: []int{1}},
			{ID: 3, Name: "Dr. Citra Dewi", Expertise: []string{"databases"}, ExperienceYears: 6, AvailabilityScore: 3, CompetencyScore: 4, AvailableTimeslots: []int{1}},
		},
		"timeslot_id": 1,
	}
}

func TestEvaluateExaminers_ReturnsRankedCommittee(t *testing.T) {
	h := newTestHandler(nil)

	rec := performRequest(h, http.MethodPost, "/evaluate-examiners", evaluateFixture())
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool                              `json:"success"`
		Data    services.EvaluateExaminersResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.True(t, body.Success)
	assert.Equal(t, "Budi Santoso", body.Data.StudentName)
	assert.Equal(t, 3, body.Data.TotalSelected)
	require.Len(t, body.Data.Selected, 3)
	assert.Equal(t, 1, body.Data.Selected[0].Examiner.ID)
	assert.Equal(t, 1, body.Data.Selected[0].Rank)
	assert.InDelta(t, 0.9, body.Data.Selected[0].Score, 1e-9)
}

func TestEvaluateExaminers_InfeasibleSlotIsEmptyNotError(t *testing.T) {
	h := newTestHandler(nil)

	fixture := evaluateFixture()
	fixture["timeslot_id"] = 7
	rec := performRequest(h, http.MethodPost, "/evaluate-examiners", fixture)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data services.EvaluateExaminersResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 0, body.Data.TotalSelected)
}

func TestEvaluateExaminers_UnknownMethodRejected(t *testing.T) {
	h := newTestHandler(nil)

	fixture := evaluateFixture()
	fixture["method"] = "electre"
	rec := performRequest(h, http.MethodPost, "/evaluate-examiners", fixture)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body.Message, "electre")
}
