package services

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/SultanDF/exam-dss/internal/config"
	"github.com/SultanDF/exam-dss/pkg/core/mcdm"
	"github.com/SultanDF/exam-dss/pkg/core/model"
	"github.com/SultanDF/exam-dss/pkg/core/scheduler"
)

// SelectedExaminer is one committee seat in an evaluation result. Rank 1
// is the supervisor, ranks 2+ follow the scoring order.
type SelectedExaminer struct {
	Examiner model.Examiner `json:"examiner"`
	Score    float64        `json:"score"`
	Rank     int            `json:"rank"`
}

// EvaluateExaminersResult reports the committee chosen for one student at
// one timeslot without committing anything to a schedule.
type EvaluateExaminersResult struct {
	StudentName   string             `json:"student_name"`
	TimeslotID    int                `json:"timeslot_id"`
	MethodUsed    string             `json:"method_used"`
	Selected      []SelectedExaminer `json:"selected_examiners"`
	TotalSelected int                `json:"total_selected"`
}

// EvaluateExaminers scores and ranks a committee for a single student and
// timeslot. It is a pure computation over the dataset, useful for
// previewing who would examine a student before generating a schedule.
// A zero requiredCount falls back to the configured committee size.
func EvaluateExaminers(
	cfg *config.Config,
	logger *zap.Logger,
	dataset *model.Dataset,
	studentID, timeslotID, requiredCount int,
	method string,
) (*EvaluateExaminersResult, error) {
	method = defaultMethod(cfg, method)
	if requiredCount <= 0 {
		requiredCount = config.DefaultRequiredExaminers
		if cfg != nil && cfg.Scheduling.RequiredExaminers > 0 {
			requiredCount = cfg.Scheduling.RequiredExaminers
		}
	}

	logger.Debug("Starting evaluateExaminers",
		zap.Int("student_id", studentID),
		zap.Int("timeslot_id", timeslotID),
		zap.Int("required_count", requiredCount),
		zap.String("method", method))

	if dataset == nil {
		return nil, &mcdm.ValidationError{Reason: "dataset is required"}
	}

	student := dataset.StudentByID(studentID)
	if student == nil {
		return nil, &mcdm.ValidationError{Reason: fmt.Sprintf("student %d not found in dataset", studentID)}
	}

	criteria := criteriaForRun(cfg, dataset)

	allocator := scheduler.NewAllocator(mcdm.NewEngine(), schedulerOptions(cfg), logger)
	committee, err := allocator.SelectCommittee(student, timeslotID, requiredCount,
		dataset.Examiners, criteria, method, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate examiners: %w", err)
	}

	selected := make([]SelectedExaminer, 0, len(committee))
	for i, ranked := range committee {
		selected = append(selected, SelectedExaminer{
			Examiner: ranked.Examiner,
			Score:    ranked.Score,
			Rank:     i + 1,
		})
	}

	logger.Info("Examiners evaluated",
		zap.String("student", student.Name),
		zap.Int("timeslot_id", timeslotID),
		zap.Int("selected", len(selected)))

	return &EvaluateExaminersResult{
		StudentName:   student.Name,
		TimeslotID:    timeslotID,
		MethodUsed:    method,
		Selected:      selected,
		TotalSelected: len(selected),
	}, nil
}
