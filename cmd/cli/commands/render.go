package commands

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/SultanDF/exam-dss/pkg/core/model"
)

// Shared colorizers for command output
var (
	green  = color.New(color.FgGreen).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
)

// renderTable prints rows under the given headers
func renderTable(w io.Writer, headers []string, rows [][]string) error {
	table := tablewriter.NewWriter(w)
	table.Header(headers)
	if err := table.Bulk(rows); err != nil {
		return err
	}
	return table.Render()
}

// renderNumericTable right-aligns every cell, which suits tables that are
// mostly numbers
func renderNumericTable(w io.Writer, headers []string, rows [][]string) error {
	table := tablewriter.NewWriter(w)
	table.Header(headers)
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})
	if err := table.Bulk(rows); err != nil {
		return err
	}
	return table.Render()
}

// printSolution renders the placements of one run, resolving IDs against
// the dataset the run was generated from, then lists the exams that could
// not be placed.
func printSolution(dataset *model.Dataset, solution *model.Solution) error {
	fmt.Printf("\n%s\n\n", bold(fmt.Sprintf("Schedule (%s)", strings.ToUpper(solution.Method))))

	rows := make([][]string, 0, len(solution.Assignments))
	for _, assignment := range solution.Assignments {
		day, window := "?", "?"
		if slot := dataset.TimeslotByID(assignment.TimeslotID); slot != nil {
			day = slot.Day
			window = fmt.Sprintf("%s - %s", slot.StartTime, slot.EndTime)
		}

		roomName := fmt.Sprintf("room %d", assignment.RoomID)
		if room := dataset.RoomByID(assignment.RoomID); room != nil {
			roomName = room.Name
		}

		committee := make([]string, 0, len(assignment.ExaminerIDs))
		for _, examinerID := range assignment.ExaminerIDs {
			if examiner := dataset.ExaminerByID(examinerID); examiner != nil {
				committee = append(committee, examiner.Name)
			} else {
				committee = append(committee, fmt.Sprintf("examiner %d", examinerID))
			}
		}

		rows = append(rows, []string{
			strconv.Itoa(assignment.ExamID),
			assignment.StudentName,
			day,
			window,
			roomName,
			strings.Join(committee, ", "),
			fmt.Sprintf("%.4f", assignment.Score),
		})
	}

	headers := []string{"Exam", "Student", "Date", "Time", "Room", "Committee", "Score"}
	if err := renderTable(os.Stdout, headers, rows); err != nil {
		return err
	}
	fmt.Println()

	if len(solution.InfeasibleExamIDs) > 0 {
		fmt.Printf("%s %d exam(s) could not be scheduled:\n", yellow("!"), len(solution.InfeasibleExamIDs))
		for _, examID := range solution.InfeasibleExamIDs {
			label := fmt.Sprintf("exam %d", examID)
			if session := dataset.SessionByID(examID); session != nil {
				if student := dataset.StudentByID(session.StudentID); student != nil {
					label = fmt.Sprintf("exam %d (%s)", examID, student.Name)
				}
			}
			fmt.Printf("  %s %s\n", red("✗"), label)
		}
		fmt.Println()
	}

	return nil
}

// printQuality summarizes a run in one line
func printQuality(quality model.ScheduleQuality) {
	fmt.Printf("Scheduled %d/%d exams (success rate %.0f%%), mean placement score %.4f\n\n",
		quality.ScheduledExams, quality.TotalExams, quality.SuccessRate*100, quality.AverageScore)
}

// joinInts renders an int slice as a comma-separated list
func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, value := range values {
		parts[i] = strconv.Itoa(value)
	}
	return strings.Join(parts, ",")
}
