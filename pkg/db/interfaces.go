package db

import (
	"context"

	"github.com/SultanDF/exam-dss/pkg/core/model"
)

// SolutionStore defines the persistence operations for scheduling runs.
// postgres.DB implements it; services accept the interface so tests can
// substitute an in-memory store.
type SolutionStore interface {
	// SaveSolution stores a solution and its assignments in one transaction
	SaveSolution(ctx context.Context, solution *model.Solution) error
	// GetSolutions lists stored runs, newest first
	GetSolutions(ctx context.Context) ([]SolutionSummary, error)
	// GetSolution loads one run with its assignments. A missing run yields
	// (nil, nil), not an error.
	GetSolution(ctx context.Context, runID string) (*model.Solution, error)
}
