package api

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SultanDF/exam-dss/pkg/core/model"
	"github.com/SultanDF/exam-dss/pkg/db"
)

const storedRunID = "2f2a9b20-93a4-4f0d-b6e1-03d7a1f0c9aa"

func solutionsStore() *mockStore {
	return &mockStore{
		summaries: []db.SolutionSummary{
			{RunID: storedRunID, Method: "saw", ScheduledExams: 1, CreatedAt: time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)},
		},
		solutions: map[string]*model.Solution{
			storedRunID: {
				RunID:  storedRunID,
				Method: "saw",
				Assignments: []model.Assignment{
					{ExamID: 101, StudentID: 1, StudentName: "Budi Santoso", TimeslotID: 1, RoomID: 1, ExaminerIDs: []int{1, 2, 3}, Score: 0.85},
				},
				InfeasibleExamIDs: []int{},
				TotalSatisfaction: 0.85,
			},
		},
	}
}

func TestListSolutions_ReturnsSummaries(t *testing.T) {
	h := newTestHandler(solutionsStore())

	rec := performRequest(h, http.MethodGet, "/solutions", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Solutions []db.SolutionSummary `json:"solutions"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.True(t, body.Success)
	require.Len(t, body.Data.Solutions, 1)
	assert.Equal(t, storedRunID, body.Data.Solutions[0].RunID)
}

func TestListSolutions_WithoutDatabaseUnavailable(t *testing.T) {
	h := newTestHandler(nil)

	rec := performRequest(h, http.MethodGet, "/solutions", nil)
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body.Message, "no database configured")
}

func TestGetSolution_ReturnsStoredRun(t *testing.T) {
	h := newTestHandler(solutionsStore())

	rec := performRequest(h, http.MethodGet, "/solutions/"+storedRunID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool           `json:"success"`
		Data    model.Solution `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.True(t, body.Success)
	assert.Equal(t, storedRunID, body.Data.RunID)
	require.Len(t, body.Data.Assignments, 1)
	assert.Equal(t, "Budi Santoso", body.Data.Assignments[0].StudentName)
}

func TestGetSolution_MissingRunIs404(t *testing.T) {
	h := newTestHandler(solutionsStore())

	rec := performRequest(h, http.MethodGet, "/solutions/c74a1f0e-9a9b-4f32-8c40-5d7f19c2bb31", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Contains(t, body.Message, "solution not found")
}

func TestGetSolution_MalformedIDRejected(t *testing.T) {
	h := newTestHandler(solutionsStore())

	rec := performRequest(h, http.MethodGet, "/solutions/not-a-uuid", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
