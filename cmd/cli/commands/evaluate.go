package commands

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/SultanDF/exam-dss/pkg/core/services"
)

// EvaluateCmd creates the evaluate command
func EvaluateCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "evaluate <student_id> <timeslot_id>",
		Short: "Rank the examiner committee for one student and timeslot",
		Long: `Score and rank the examiners who could sit on one student's committee at
one timeslot, without committing anything. The supervisor always sits
first; the remaining seats go to the top-ranked available examiners.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			studentID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("student_id must be a number: %w", err)
			}
			timeslotID, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("timeslot_id must be a number: %w", err)
			}

			input, _ := cmd.Flags().GetString("input")
			method, _ := cmd.Flags().GetString("method")
			count, _ := cmd.Flags().GetInt("count")

			app.Logger.Debug("evaluate command",
				zap.Int("student_id", studentID),
				zap.Int("timeslot_id", timeslotID),
				zap.String("method", method))

			dataset, err := resolveDataset(app.Cfg, input)
			if err != nil {
				return err
			}

			result, err := services.EvaluateExaminers(app.Cfg, app.Logger, dataset, studentID, timeslotID, count, method)
			if err != nil {
				return fmt.Errorf("evaluation failed: %w", err)
			}

			fmt.Printf("\n%s\n\n", bold(fmt.Sprintf("Committee for %s at timeslot %d (%s)",
				result.StudentName, result.TimeslotID, strings.ToUpper(result.MethodUsed))))

			if result.TotalSelected == 0 {
				fmt.Printf("%s No feasible committee at this timeslot. Try another slot or widen examiner availability.\n\n", yellow("!"))
				return nil
			}

			rows := make([][]string, 0, result.TotalSelected)
			for _, selected := range result.Selected {
				role := ""
				if selected.Rank == 1 {
					role = "supervisor"
				}
				rows = append(rows, []string{
					strconv.Itoa(selected.Rank),
					selected.Examiner.Name,
					strings.Join(selected.Examiner.Expertise, ", "),
					fmt.Sprintf("%.4f", selected.Score),
					role,
				})
			}

			headers := []string{"Rank", "Examiner", "Expertise", "Score", "Role"}
			if err := renderTable(os.Stdout, headers, rows); err != nil {
				return err
			}
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().String("input", "", "Dataset file (YAML or JSON); omit for the bundled sample set")
	cmd.Flags().String("method", "", "Scoring method: saw or topsis (default from config)")
	cmd.Flags().Int("count", 0, "Committee size (default from config)")

	return cmd
}
