package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/SultanDF/exam-dss/pkg/core/mcdm"
	"github.com/SultanDF/exam-dss/pkg/core/model"
	"github.com/SultanDF/exam-dss/pkg/db"
)

// ListSolutions returns summaries of stored runs, newest first
func ListSolutions(ctx context.Context, database db.SolutionStore, logger *zap.Logger) ([]db.SolutionSummary, error) {
	if database == nil {
		return nil, fmt.Errorf("no database configured")
	}

	logger.Debug("Fetching stored solutions")
	summaries, err := database.GetSolutions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch solutions: %w", err)
	}

	logger.Debug("Fetched stored solutions", zap.Int("count", len(summaries)))
	return summaries, nil
}

// GetSolution loads one stored run with its assignments. A missing run
// yields (nil, nil) so callers can distinguish absence from failure.
func GetSolution(ctx context.Context, database db.SolutionStore, logger *zap.Logger, runID string) (*model.Solution, error) {
	if database == nil {
		return nil, fmt.Errorf("no database configured")
	}
	if _, err := uuid.Parse(runID); err != nil {
		return nil, &mcdm.ValidationError{Reason: fmt.Sprintf("run id %q is not a valid UUID", runID)}
	}

	logger.Debug("Fetching stored solution", zap.String("run_id", runID))
	solution, err := database.GetSolution(ctx, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch solution: %w", err)
	}
	if solution == nil {
		logger.Debug("Solution not found", zap.String("run_id", runID))
		return nil, nil
	}

	return solution, nil
}

// LatestSolution loads the most recent stored run, or (nil, nil) when the
// database holds no runs yet.
func LatestSolution(ctx context.Context, database db.SolutionStore, logger *zap.Logger) (*model.Solution, error) {
	summaries, err := ListSolutions(ctx, database, logger)
	if err != nil {
		return nil, err
	}
	if len(summaries) == 0 {
		return nil, nil
	}

	// GetSolutions returns newest first
	return GetSolution(ctx, database, logger, summaries[0].RunID)
}
