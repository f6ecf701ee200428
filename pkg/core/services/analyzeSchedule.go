package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/SultanDF/exam-dss/pkg/core/mcdm"
	"github.com/SultanDF/exam-dss/pkg/core/model"
	"github.com/SultanDF/exam-dss/pkg/core/scheduler"
	"github.com/SultanDF/exam-dss/pkg/db"
)

// AnalyzeScheduleResult pairs quality statistics with actionable
// recommendations. An empty recommendation list means the schedule is
// healthy as generated.
type AnalyzeScheduleResult struct {
	Quality         model.ScheduleQuality `json:"analysis"`
	Recommendations []string              `json:"recommendations"`
	MethodUsed      string                `json:"method_used"`
}

// AnalyzeSchedule summarizes the quality of a generated schedule
func AnalyzeSchedule(logger *zap.Logger, solution *model.Solution) (*AnalyzeScheduleResult, error) {
	if solution == nil {
		return nil, &mcdm.ValidationError{Reason: "solution is required"}
	}

	quality := scheduler.Analyze(solution)
	recommendations := scheduler.Recommendations(quality)

	logger.Debug("Schedule analyzed",
		zap.String("run_id", solution.RunID),
		zap.Float64("success_rate", quality.SuccessRate),
		zap.Int("recommendations", len(recommendations)))

	return &AnalyzeScheduleResult{
		Quality:         quality,
		Recommendations: recommendations,
		MethodUsed:      solution.Method,
	}, nil
}

// AnalyzeStoredSchedule loads a stored run and analyzes it. A missing run
// yields (nil, nil) like the store itself.
func AnalyzeStoredSchedule(
	ctx context.Context,
	database db.SolutionStore,
	logger *zap.Logger,
	runID string,
) (*AnalyzeScheduleResult, error) {
	solution, err := GetSolution(ctx, database, logger, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to load solution: %w", err)
	}
	if solution == nil {
		return nil, nil
	}

	return AnalyzeSchedule(logger, solution)
}
