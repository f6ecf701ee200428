package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/SultanDF/exam-dss/pkg/core/model"
	"github.com/SultanDF/exam-dss/pkg/db"
)

// SaveSolution stores a solution and its assignments in one transaction
func (d *DB) SaveSolution(ctx context.Context, solution *model.Solution) error {
	weights := []byte("{}")
	if solution.CriteriaWeights != nil {
		encoded, err := json.Marshal(solution.CriteriaWeights)
		if err != nil {
			return fmt.Errorf("failed to encode criteria weights: %w", err)
		}
		weights = encoded
	}
	infeasible := solution.InfeasibleExamIDs
	if infeasible == nil {
		infeasible = []int{}
	}

	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO solutions (run_id, method, criteria_weights, infeasible_exam_ids, total_satisfaction, created_at)
		VALUES ($1::uuid, $2, $3, $4, $5, $6)
	`, solution.RunID, solution.Method, weights, infeasible, solution.TotalSatisfaction, solution.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert solution: %w", err)
	}

	for _, assignment := range solution.Assignments {
		_, err := tx.Exec(ctx, `
			INSERT INTO assignments (run_id, exam_id, student_id, student_name, timeslot_id, room_id,
				examiner_ids, score, examiner_score, room_score)
			VALUES ($1::uuid, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		`, solution.RunID, assignment.ExamID, assignment.StudentID, assignment.StudentName,
			assignment.TimeslotID, assignment.RoomID, assignment.ExaminerIDs,
			assignment.Score, assignment.ExaminerScore, assignment.RoomScore)
		if err != nil {
			return fmt.Errorf("failed to insert assignment for exam %d: %w", assignment.ExamID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit solution: %w", err)
	}
	return nil
}

// GetSolutions lists stored scheduling runs, newest first
func (d *DB) GetSolutions(ctx context.Context) ([]db.SolutionSummary, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT s.run_id::text, s.method,
		       (SELECT COUNT(*) FROM assignments a WHERE a.run_id = s.run_id),
		       cardinality(s.infeasible_exam_ids),
		       s.total_satisfaction, s.created_at
		FROM solutions s
		ORDER BY s.created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query solutions: %w", err)
	}
	defer rows.Close()

	var summaries []db.SolutionSummary
	for rows.Next() {
		var summary db.SolutionSummary
		if err := rows.Scan(&summary.RunID, &summary.Method, &summary.ScheduledExams,
			&summary.InfeasibleExams, &summary.TotalSatisfaction, &summary.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan solution summary: %w", err)
		}
		summaries = append(summaries, summary)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating solutions: %w", err)
	}
	return summaries, nil
}

// GetSolution loads one stored run with its assignments. A missing run
// yields (nil, nil).
func (d *DB) GetSolution(ctx context.Context, runID string) (*model.Solution, error) {
	var solution model.Solution
	var weights []byte
	err := d.pool.QueryRow(ctx, `
		SELECT run_id::text, method, criteria_weights, infeasible_exam_ids, total_satisfaction, created_at
		FROM solutions
		WHERE run_id = $1::uuid
	`, runID).Scan(&solution.RunID, &solution.Method, &weights,
		&solution.InfeasibleExamIDs, &solution.TotalSatisfaction, &solution.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query solution %s: %w", runID, err)
	}

	if err := json.Unmarshal(weights, &solution.CriteriaWeights); err != nil {
		return nil, fmt.Errorf("failed to decode criteria weights: %w", err)
	}

	rows, err := d.pool.Query(ctx, `
		SELECT exam_id, student_id, student_name, timeslot_id, room_id, examiner_ids,
		       score, examiner_score, room_score
		FROM assignments
		WHERE run_id = $1::uuid
		ORDER BY id
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query assignments for %s: %w", runID, err)
	}
	defer rows.Close()

	solution.Assignments = []model.Assignment{}
	for rows.Next() {
		var assignment model.Assignment
		if err := rows.Scan(&assignment.ExamID, &assignment.StudentID, &assignment.StudentName,
			&assignment.TimeslotID, &assignment.RoomID, &assignment.ExaminerIDs,
			&assignment.Score, &assignment.ExaminerScore, &assignment.RoomScore); err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		solution.Assignments = append(solution.Assignments, assignment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating assignments: %w", err)
	}

	return &solution, nil
}
