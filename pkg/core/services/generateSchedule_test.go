package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/SultanDF/exam-dss/internal/config"
	"github.com/SultanDF/exam-dss/pkg/core/mcdm"
	"github.com/SultanDF/exam-dss/pkg/core/model"
	"github.com/SultanDF/exam-dss/pkg/db"
)

// mockSolutionStore implements a test double for db.SolutionStore
type mockSolutionStore struct {
	saved           []*model.Solution
	summaries       []db.SolutionSummary
	solutions       map[string]*model.Solution
	saveErr         error
	getSolutionsErr error
	getSolutionErr  error
}

func (m *mockSolutionStore) SaveSolution(ctx context.Context, solution *model.Solution) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = append(m.saved, solution)
	return nil
}

func (m *mockSolutionStore) GetSolutions(ctx context.Context) ([]db.SolutionSummary, error) {
	if m.getSolutionsErr != nil {
		return nil, m.getSolutionsErr
	}
	return m.summaries, nil
}

func (m *mockSolutionStore) GetSolution(ctx context.Context, runID string) (*model.Solution, error) {
	if m.getSolutionErr != nil {
		return nil, m.getSolutionErr
	}
	return m.solutions[runID], nil
}

// serviceDataset holds one schedulable exam: the supervisor plus two
// colleagues are all free at the only timeslot.
func serviceDataset() *model.Dataset {
	return &model.Dataset{
		Students: []model.Student{
			{ID: 1, Name: "Budi Santoso", NIM: "21104001", ThesisField: "software engineering", SupervisorID: 1, ThesisQuality: 4.0},
		},
		Examiners: []model.Examiner{
			{ID: 1, Name: "Dr. Ayu Lestari", Expertise: []string{"software engineering"}, ExperienceYears: 10, Workload: 2, AvailabilityScore: 4, CompetencyScore: 4, AvailableTimeslots: []int{1}},
			{ID: 2, Name: "Prof. Bambang Wijaya", Expertise: []string{"software engineering"}, ExperienceYears: 15, Workload: 1, AvailabilityScore: 5, CompetencyScore: 5, AvailableTimeslots: []int{1}},
			{ID: 3, Name: "Dr. Citra Dewi", Expertise: []string{"databases"}, ExperienceYears: 6, Workload: 1, AvailabilityScore: 3, CompetencyScore: 4, AvailableTimeslots: []int{1}},
		},
		Rooms: []model.Room{
			{ID: 1, Name: "Ruang Sidang A", Capacity: 10, QualityScore: 4, Facilities: []string{"proyektor", "ac"}},
		},
		Timeslots: []model.Timeslot{
			{ID: 1, Day: "2026-06-01", StartTime: "08:00", EndTime: "10:00", Session: "Pagi"},
		},
		Sessions: []model.ExamSession{
			{ID: 101, StudentID: 1, DurationMinutes: 120, RequiredExaminers: 3, Priority: 1.0},
		},
	}
}

func TestGenerateSchedule_SavesRunWhenStoreConfigured(t *testing.T) {
	mock := &mockSolutionStore{}
	logger := zap.NewNop()
	ctx := context.Background()

	result, err := GenerateSchedule(ctx, mock, config.Default(), logger, serviceDataset(), "saw")
	require.NoError(t, err)
	require.NotNil(t, result)

	// The run gets identity and a timestamp before being saved
	_, err = uuid.Parse(result.Solution.RunID)
	assert.NoError(t, err)
	assert.False(t, result.Solution.CreatedAt.IsZero())
	assert.Equal(t, "saw", result.Solution.Method)

	// The single session schedules with the full committee
	require.Len(t, result.Solution.Assignments, 1)
	assert.Len(t, result.Solution.Assignments[0].ExaminerIDs, 3)
	assert.Empty(t, result.Solution.InfeasibleExamIDs)

	assert.Equal(t, 1, result.Quality.TotalExams)
	assert.Equal(t, 1, result.Quality.ScheduledExams)
	assert.Equal(t, 1.0, result.Quality.SuccessRate)

	assert.True(t, result.Saved)
	require.Len(t, mock.saved, 1)
	assert.Same(t, result.Solution, mock.saved[0])
}

func TestGenerateSchedule_SkipsSaveWithoutStore(t *testing.T) {
	logger := zap.NewNop()

	result, err := GenerateSchedule(context.Background(), nil, config.Default(), logger, serviceDataset(), "saw")
	require.NoError(t, err)

	assert.False(t, result.Saved)
	assert.NotEmpty(t, result.Solution.RunID)
}

func TestGenerateSchedule_UsesConfiguredMethodByDefault(t *testing.T) {
	cfg := config.Default()
	cfg.Scheduling.Method = "topsis"
	logger := zap.NewNop()

	result, err := GenerateSchedule(context.Background(), nil, cfg, logger, serviceDataset(), "")
	require.NoError(t, err)

	assert.Equal(t, "topsis", result.Solution.Method)
}

func TestGenerateSchedule_RejectsUnknownMethod(t *testing.T) {
	logger := zap.NewNop()

	result, err := GenerateSchedule(context.Background(), nil, config.Default(), logger, serviceDataset(), "wsm")
	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, mcdm.IsUnsupportedMethod(err))
}

func TestGenerateSchedule_SaveFailureSurfaces(t *testing.T) {
	mock := &mockSolutionStore{saveErr: errors.New("connection refused")}
	logger := zap.NewNop()

	result, err := GenerateSchedule(context.Background(), mock, config.Default(), logger, serviceDataset(), "saw")
	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "failed to save solution")
}

func TestGenerateSchedule_ConfigCriteriaOverrideDefaults(t *testing.T) {
	cfg := config.Default()
	cfg.Scheduling.Criteria = []config.CriterionOverride{
		{Name: "expertise_match", Weight: 0.7, Type: "benefit"},
		{Name: "workload", Weight: 0.3, Type: "cost"},
	}
	logger := zap.NewNop()

	result, err := GenerateSchedule(context.Background(), nil, cfg, logger, serviceDataset(), "saw")
	require.NoError(t, err)

	// The resolved weight report reflects the override, not the defaults
	assert.Len(t, result.Solution.CriteriaWeights, 2)
	assert.InDelta(t, 0.7, result.Solution.CriteriaWeights["expertise_match"], 1e-9)
	assert.InDelta(t, 0.3, result.Solution.CriteriaWeights["workload"], 1e-9)
}
