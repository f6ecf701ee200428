package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/SultanDF/exam-dss/internal/config"
	"github.com/SultanDF/exam-dss/pkg/core/model"
	"github.com/SultanDF/exam-dss/pkg/db"
)

// mockSheetWriter records the last WriteTable call
type mockSheetWriter struct {
	spreadsheetID string
	tab           string
	rows          [][]interface{}
	writeErr      error
}

func (m *mockSheetWriter) WriteTable(spreadsheetID, tabTitle string, rows [][]interface{}) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	m.spreadsheetID = spreadsheetID
	m.tab = tabTitle
	m.rows = rows
	return nil
}

func publishConfig() *config.Config {
	cfg := config.Default()
	cfg.Publish.ScheduleSheetID = "sheet-abc"
	cfg.Publish.ScheduleTab = "Jadwal Semester Genap"
	return cfg
}

// publishedDataset extends the service dataset with a second session that
// stays unscheduled in the stored run.
func publishedDataset() *model.Dataset {
	dataset := serviceDataset()
	dataset.Sessions = append(dataset.Sessions, model.ExamSession{
		ID: 102, StudentID: 1, DurationMinutes: 120, RequiredExaminers: 3, Priority: 0.5,
	})
	return dataset
}

func publishedRun(runID string) *model.Solution {
	solution := storedSolution(runID)
	solution.Method = "saw"
	solution.InfeasibleExamIDs = []int{102}
	return solution
}

func TestPublishSchedule_WritesStoredRunAsTable(t *testing.T) {
	mock := &mockSolutionStore{
		summaries: []db.SolutionSummary{{RunID: runIDNewest}},
		solutions: map[string]*model.Solution{runIDNewest: publishedRun(runIDNewest)},
	}
	sheets := &mockSheetWriter{}
	logger := zap.NewNop()

	result, err := PublishSchedule(context.Background(), mock, sheets, publishConfig(), logger, publishedDataset(), runIDNewest)
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, runIDNewest, result.RunID)
	assert.Equal(t, "sheet-abc", result.SpreadsheetID)
	assert.Equal(t, "Jadwal Semester Genap", result.Tab)
	assert.Equal(t, 3, result.RowCount)

	assert.Equal(t, "sheet-abc", sheets.spreadsheetID)
	assert.Equal(t, "Jadwal Semester Genap", sheets.tab)
	require.Len(t, sheets.rows, 3)

	// Header row
	assert.Equal(t, "Exam ID", sheets.rows[0][0])
	assert.Equal(t, "Status", sheets.rows[0][9])

	// Scheduled exam with resolved names, supervisor listed first
	scheduled := sheets.rows[1]
	assert.Equal(t, 101, scheduled[0])
	assert.Equal(t, "Budi Santoso", scheduled[1])
	assert.Equal(t, "21104001", scheduled[2])
	assert.Equal(t, "2026-06-01", scheduled[3])
	assert.Equal(t, "08:00 - 10:00", scheduled[4])
	assert.Equal(t, "Pagi", scheduled[5])
	assert.Equal(t, "Ruang Sidang A", scheduled[6])
	assert.Equal(t, "Dr. Ayu Lestari, Prof. Bambang Wijaya, Dr. Citra Dewi", scheduled[7])
	assert.Equal(t, 0.85, scheduled[8])
	assert.Equal(t, "scheduled", scheduled[9])

	// The unscheduled exam still appears, clearly marked
	unscheduled := sheets.rows[2]
	assert.Equal(t, 102, unscheduled[0])
	assert.Equal(t, "Budi Santoso", unscheduled[1])
	assert.Equal(t, "not scheduled", unscheduled[9])
}

func TestPublishSchedule_DefaultsToLatestRun(t *testing.T) {
	mock := &mockSolutionStore{
		summaries: []db.SolutionSummary{{RunID: runIDNewest}, {RunID: runIDOlder}},
		solutions: map[string]*model.Solution{
			runIDNewest: publishedRun(runIDNewest),
			runIDOlder:  publishedRun(runIDOlder),
		},
	}
	sheets := &mockSheetWriter{}
	logger := zap.NewNop()

	result, err := PublishSchedule(context.Background(), mock, sheets, publishConfig(), logger, publishedDataset(), "")
	require.NoError(t, err)

	assert.Equal(t, runIDNewest, result.RunID)
}

func TestPublishSchedule_DefaultTabNamesTheRunDate(t *testing.T) {
	run := publishedRun(runIDNewest)
	run.CreatedAt = time.Date(2026, 6, 5, 14, 30, 0, 0, time.UTC)
	mock := &mockSolutionStore{
		summaries: []db.SolutionSummary{{RunID: runIDNewest}},
		solutions: map[string]*model.Solution{runIDNewest: run},
	}
	sheets := &mockSheetWriter{}
	cfg := publishConfig()
	cfg.Publish.ScheduleTab = ""
	logger := zap.NewNop()

	result, err := PublishSchedule(context.Background(), mock, sheets, cfg, logger, publishedDataset(), runIDNewest)
	require.NoError(t, err)

	assert.Equal(t, "Jadwal Sidang 2026-06-05", result.Tab)
}

func TestPublishSchedule_RequiresSheetConfig(t *testing.T) {
	logger := zap.NewNop()

	_, err := PublishSchedule(context.Background(), &mockSolutionStore{}, &mockSheetWriter{}, config.Default(), logger, publishedDataset(), runIDNewest)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scheduleSheetID")
}

func TestPublishSchedule_MissingRunFails(t *testing.T) {
	mock := &mockSolutionStore{solutions: map[string]*model.Solution{}}
	logger := zap.NewNop()

	_, err := PublishSchedule(context.Background(), mock, &mockSheetWriter{}, publishConfig(), logger, publishedDataset(), runIDNewest)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "solution not found")
}

func TestPublishSchedule_UnresolvableRoomFails(t *testing.T) {
	run := publishedRun(runIDNewest)
	run.Assignments[0].RoomID = 99
	mock := &mockSolutionStore{
		solutions: map[string]*model.Solution{runIDNewest: run},
	}
	logger := zap.NewNop()

	_, err := PublishSchedule(context.Background(), mock, &mockSheetWriter{}, publishConfig(), logger, publishedDataset(), runIDNewest)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "room not found")
}

func TestPublishSchedule_WriteFailureSurfaces(t *testing.T) {
	mock := &mockSolutionStore{
		solutions: map[string]*model.Solution{runIDNewest: publishedRun(runIDNewest)},
	}
	sheets := &mockSheetWriter{writeErr: errors.New("quota exceeded")}
	logger := zap.NewNop()

	_, err := PublishSchedule(context.Background(), mock, sheets, publishConfig(), logger, publishedDataset(), runIDNewest)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to publish schedule")
}
