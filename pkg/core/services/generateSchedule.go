package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/SultanDF/exam-dss/internal/config"
	"github.com/SultanDF/exam-dss/pkg/core/mcdm"
	"github.com/SultanDF/exam-dss/pkg/core/model"
	"github.com/SultanDF/exam-dss/pkg/core/scheduler"
	"github.com/SultanDF/exam-dss/pkg/db"
)

// GenerateScheduleResult bundles the committed schedule with its quality
// summary. Saved reports whether the run was written to the database.
type GenerateScheduleResult struct {
	Solution *model.Solution       `json:"solution"`
	Quality  model.ScheduleQuality `json:"quality"`
	Saved    bool                  `json:"saved"`
}

// GenerateSchedule runs the allocator over the dataset and records the
// outcome. An empty method falls back to the configured one. If database
// is nil the run is returned without being persisted, which is how the
// stateless API and dry CLI runs use it.
func GenerateSchedule(
	ctx context.Context,
	database db.SolutionStore,
	cfg *config.Config,
	logger *zap.Logger,
	dataset *model.Dataset,
	method string,
) (*GenerateScheduleResult, error) {
	method = defaultMethod(cfg, method)
	logger.Debug("Starting generateSchedule", zap.String("method", method))

	// Step 1: Resolve the criteria for this run
	criteria := criteriaForRun(cfg, dataset)
	logger.Debug("Resolved criteria", zap.Int("count", len(criteria)))

	// Step 2: Allocate every exam session
	allocator := scheduler.NewAllocator(mcdm.NewEngine(), schedulerOptions(cfg), logger)
	solution, err := allocator.Allocate(dataset, criteria, method)
	if err != nil {
		return nil, fmt.Errorf("failed to generate schedule: %w", err)
	}

	solution.RunID = uuid.New().String()
	solution.CreatedAt = time.Now().UTC()

	// Step 3: Summarize schedule quality
	quality := scheduler.Analyze(solution)

	// Step 4: Persist the run when a database is configured
	saved := false
	if database != nil {
		logger.Debug("Saving solution", zap.String("run_id", solution.RunID))
		if err := database.SaveSolution(ctx, solution); err != nil {
			return nil, fmt.Errorf("failed to save solution: %w", err)
		}
		saved = true
	}

	logger.Info("Schedule generated",
		zap.String("run_id", solution.RunID),
		zap.String("method", method),
		zap.Int("scheduled", quality.ScheduledExams),
		zap.Int("infeasible", quality.UnscheduledExams),
		zap.Float64("satisfaction", solution.TotalSatisfaction),
		zap.Bool("saved", saved))

	return &GenerateScheduleResult{
		Solution: solution,
		Quality:  quality,
		Saved:    saved,
	}, nil
}
