package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/SultanDF/exam-dss/internal/config"
	"github.com/SultanDF/exam-dss/pkg/core/mcdm"
	"github.com/SultanDF/exam-dss/pkg/core/model"
	"github.com/SultanDF/exam-dss/pkg/db"
)

// ScheduleSheetWriter is the slice of the sheets client used for
// publishing. Tests substitute a recording fake.
type ScheduleSheetWriter interface {
	WriteTable(spreadsheetID, tabTitle string, rows [][]interface{}) error
}

// PublishScheduleResult reports where a schedule was published
type PublishScheduleResult struct {
	RunID         string `json:"run_id"`
	SpreadsheetID string `json:"spreadsheet_id"`
	Tab           string `json:"tab"`
	RowCount      int    `json:"row_count"`
}

// PublishSchedule writes a stored run to the configured Google Sheet as
// one table, scheduled exams first in timeslot order, unscheduled exams
// last. An empty runID publishes the most recent run. The dataset must be
// the one the run was generated from, since assignments only carry IDs
// and the sheet needs names.
func PublishSchedule(
	ctx context.Context,
	database db.SolutionStore,
	sheets ScheduleSheetWriter,
	cfg *config.Config,
	logger *zap.Logger,
	dataset *model.Dataset,
	runID string,
) (*PublishScheduleResult, error) {
	logger.Debug("Starting publishSchedule", zap.String("run_id", runID))

	if cfg == nil || cfg.Publish.ScheduleSheetID == "" {
		return nil, fmt.Errorf("publish.scheduleSheetID is not configured")
	}
	if dataset == nil {
		return nil, &mcdm.ValidationError{Reason: "dataset is required"}
	}

	// Step 1: Fetch the target run
	var solution *model.Solution
	var err error
	if runID == "" {
		logger.Debug("No run ID provided, using latest run")
		solution, err = LatestSolution(ctx, database, logger)
		if err != nil {
			return nil, err
		}
		if solution == nil {
			return nil, fmt.Errorf("no stored runs to publish")
		}
	} else {
		solution, err = GetSolution(ctx, database, logger, runID)
		if err != nil {
			return nil, err
		}
		if solution == nil {
			return nil, fmt.Errorf("solution not found: %s", runID)
		}
	}

	// Step 2: Build the sheet rows
	rows, err := buildScheduleRows(solution, dataset)
	if err != nil {
		return nil, fmt.Errorf("failed to build schedule rows: %w", err)
	}

	// Step 3: Write to the sheet
	tab := cfg.Publish.ScheduleTab
	if tab == "" {
		tab = "Jadwal Sidang " + solution.CreatedAt.Format("2006-01-02")
	}

	logger.Debug("Writing schedule to sheet",
		zap.String("spreadsheet_id", cfg.Publish.ScheduleSheetID),
		zap.String("tab", tab),
		zap.Int("rows", len(rows)))

	if err := sheets.WriteTable(cfg.Publish.ScheduleSheetID, tab, rows); err != nil {
		return nil, fmt.Errorf("failed to publish schedule: %w", err)
	}

	logger.Info("Schedule published",
		zap.String("run_id", solution.RunID),
		zap.String("tab", tab),
		zap.Int("exam_rows", len(rows)-1))

	return &PublishScheduleResult{
		RunID:         solution.RunID,
		SpreadsheetID: cfg.Publish.ScheduleSheetID,
		Tab:           tab,
		RowCount:      len(rows),
	}, nil
}

// buildScheduleRows renders a solution as sheet rows, header first. Every
// ID in the solution must resolve against the dataset.
func buildScheduleRows(solution *model.Solution, dataset *model.Dataset) ([][]interface{}, error) {
	header := []interface{}{
		"Exam ID", "Student", "NIM", "Date", "Time", "Session", "Room", "Committee", "Score", "Status",
	}
	rows := [][]interface{}{header}

	// Scheduled exams in timeslot order, then room order
	assignments := make([]model.Assignment, len(solution.Assignments))
	copy(assignments, solution.Assignments)
	sort.SliceStable(assignments, func(i, j int) bool {
		if assignments[i].TimeslotID != assignments[j].TimeslotID {
			return assignments[i].TimeslotID < assignments[j].TimeslotID
		}
		return assignments[i].RoomID < assignments[j].RoomID
	})

	for _, assignment := range assignments {
		slot := dataset.TimeslotByID(assignment.TimeslotID)
		if slot == nil {
			return nil, fmt.Errorf("timeslot not found: %d (exam %d)", assignment.TimeslotID, assignment.ExamID)
		}
		room := dataset.RoomByID(assignment.RoomID)
		if room == nil {
			return nil, fmt.Errorf("room not found: %d (exam %d)", assignment.RoomID, assignment.ExamID)
		}
		student := dataset.StudentByID(assignment.StudentID)
		if student == nil {
			return nil, fmt.Errorf("student not found: %d (exam %d)", assignment.StudentID, assignment.ExamID)
		}

		names := make([]string, 0, len(assignment.ExaminerIDs))
		for _, examinerID := range assignment.ExaminerIDs {
			examiner := dataset.ExaminerByID(examinerID)
			if examiner == nil {
				return nil, fmt.Errorf("examiner not found: %d (exam %d)", examinerID, assignment.ExamID)
			}
			names = append(names, examiner.Name)
		}

		rows = append(rows, []interface{}{
			assignment.ExamID,
			student.Name,
			student.NIM,
			slot.Day,
			fmt.Sprintf("%s - %s", slot.StartTime, slot.EndTime),
			slot.Session,
			room.Name,
			strings.Join(names, ", "),
			assignment.Score,
			"scheduled",
		})
	}

	// Unscheduled exams at the bottom so nobody is silently dropped
	for _, examID := range solution.InfeasibleExamIDs {
		session := dataset.SessionByID(examID)
		if session == nil {
			return nil, fmt.Errorf("exam session not found: %d", examID)
		}
		student := dataset.StudentByID(session.StudentID)
		if student == nil {
			return nil, fmt.Errorf("student not found: %d (exam %d)", session.StudentID, examID)
		}

		rows = append(rows, []interface{}{
			examID,
			student.Name,
			student.NIM,
			"", "", "", "", "", "",
			"not scheduled",
		})
	}

	return rows, nil
}
