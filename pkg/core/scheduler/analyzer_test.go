package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SultanDF/exam-dss/pkg/core/model"
)

func TestAnalyze_SummarizesScores(t *testing.T) {
	solution := &model.Solution{
		Assignments: []model.Assignment{
			{ExamID: 1, Score: 0.8},
			{ExamID: 2, Score: 0.6},
			{ExamID: 3, Score: 1.0},
		},
		InfeasibleExamIDs: []int{4},
	}

	quality := Analyze(solution)

	assert.Equal(t, 4, quality.TotalExams)
	assert.Equal(t, 3, quality.ScheduledExams)
	assert.Equal(t, 1, quality.UnscheduledExams)
	assert.InDelta(t, 0.75, quality.SuccessRate, 1e-9)
	assert.InDelta(t, 0.8, quality.AverageScore, 1e-9)
	assert.InDelta(t, 0.6, quality.MinScore, 1e-9)
	assert.InDelta(t, 1.0, quality.MaxScore, 1e-9)
	// Population std dev: sqrt((0 + 0.04 + 0.04) / 3) = 0.163299
	assert.InDelta(t, 0.163299, quality.ScoreStdDev, 1e-6)
}

func TestAnalyze_EmptySolution(t *testing.T) {
	quality := Analyze(&model.Solution{})

	assert.Zero(t, quality.TotalExams)
	assert.Zero(t, quality.SuccessRate)
	assert.Zero(t, quality.AverageScore)
	assert.Zero(t, quality.MinScore)
	assert.Zero(t, quality.MaxScore)
}

func TestAnalyze_NilSolution(t *testing.T) {
	assert.Equal(t, model.ScheduleQuality{}, Analyze(nil))
}

func TestRecommendations_HealthyRunHasNone(t *testing.T) {
	quality := model.ScheduleQuality{
		SuccessRate:  1.0,
		AverageScore: 0.8,
		ScoreStdDev:  0.1,
	}
	assert.Empty(t, Recommendations(quality))
}

func TestRecommendations_DegradedRunSuggestsFixes(t *testing.T) {
	quality := model.ScheduleQuality{
		TotalExams:       4,
		ScheduledExams:   2,
		UnscheduledExams: 2,
		SuccessRate:      0.5,
		AverageScore:     0.4,
		ScoreStdDev:      0.5,
	}

	recommendations := Recommendations(quality)

	assert.Len(t, recommendations, 4)
	assert.Contains(t, recommendations[0], "timeslots or rooms")
	assert.Contains(t, recommendations[1], "vary widely")
	assert.Contains(t, recommendations[2], "criteria weights")
	assert.Contains(t, recommendations[3], "2 exam(s) could not be scheduled")
}
