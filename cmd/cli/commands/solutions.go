package commands

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SultanDF/exam-dss/pkg/core/services"
)

// SolutionsCmd creates the solutions command
func SolutionsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "solutions [run_id]",
		Short: "List stored scheduling runs, or show one run in full",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Database == nil {
				return fmt.Errorf("no database configured")
			}

			if len(args) == 0 {
				return listSolutions(app)
			}
			return showSolution(app, args[0])
		},
	}
}

func listSolutions(app *AppContext) error {
	summaries, err := services.ListSolutions(app.Ctx, app.Store(), app.Logger)
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	if len(summaries) == 0 {
		fmt.Println("\nNo stored runs yet. Use 'schedule --save' to persist one.")
		fmt.Println()
		return nil
	}

	fmt.Printf("\n%s\n\n", bold(fmt.Sprintf("%d stored run(s), newest first", len(summaries))))

	rows := make([][]string, 0, len(summaries))
	for _, summary := range summaries {
		rows = append(rows, []string{
			summary.RunID,
			strings.ToUpper(summary.Method),
			strconv.Itoa(summary.ScheduledExams),
			strconv.Itoa(summary.InfeasibleExams),
			fmt.Sprintf("%.4f", summary.TotalSatisfaction),
			summary.CreatedAt.Format("2006-01-02 15:04"),
		})
	}

	headers := []string{"Run ID", "Method", "Scheduled", "Infeasible", "Satisfaction", "Created"}
	if err := renderTable(os.Stdout, headers, rows); err != nil {
		return err
	}
	fmt.Println()
	return nil
}

func showSolution(app *AppContext, runID string) error {
	solution, err := services.GetSolution(app.Ctx, app.Store(), app.Logger, runID)
	if err != nil {
		return fmt.Errorf("failed to load run: %w", err)
	}
	if solution == nil {
		return fmt.Errorf("run %s not found", runID)
	}

	fmt.Printf("\n%s\n\n", bold(fmt.Sprintf("Run %s", solution.RunID)))
	fmt.Printf("Method:       %s\n", strings.ToUpper(solution.Method))
	fmt.Printf("Created:      %s\n", solution.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("Satisfaction: %.4f\n", solution.TotalSatisfaction)

	if len(solution.CriteriaWeights) > 0 {
		names := make([]string, 0, len(solution.CriteriaWeights))
		for name := range solution.CriteriaWeights {
			names = append(names, name)
		}
		sort.Strings(names)

		parts := make([]string, 0, len(names))
		for _, name := range names {
			parts = append(parts, fmt.Sprintf("%s=%.3f", name, solution.CriteriaWeights[name]))
		}
		fmt.Printf("Weights:      %s\n", strings.Join(parts, "  "))
	}
	fmt.Println()

	// Stored runs carry IDs only, so the table shows raw IDs rather than
	// resolved names
	rows := make([][]string, 0, len(solution.Assignments))
	for _, assignment := range solution.Assignments {
		rows = append(rows, []string{
			strconv.Itoa(assignment.ExamID),
			assignment.StudentName,
			strconv.Itoa(assignment.TimeslotID),
			strconv.Itoa(assignment.RoomID),
			joinInts(assignment.ExaminerIDs),
			fmt.Sprintf("%.4f", assignment.Score),
		})
	}

	headers := []string{"Exam", "Student", "Timeslot", "Room", "Examiners", "Score"}
	if err := renderNumericTable(os.Stdout, headers, rows); err != nil {
		return err
	}
	fmt.Println()

	if len(solution.InfeasibleExamIDs) > 0 {
		fmt.Printf("%s Unscheduled exam IDs: %s\n\n", yellow("!"), joinInts(solution.InfeasibleExamIDs))
	}

	return nil
}
