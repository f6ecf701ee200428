package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/SultanDF/exam-dss/pkg/core/services"
)

// AnalyzeCmd creates the analyze command
func AnalyzeCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "Analyze the quality of a scheduling run",
		Long: `Summarize how well a run went and what to adjust if it did not. Analyzes
a stored run (the latest when no run ID is given), or a fresh unsaved run
over a dataset file when --input is set.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, _ := cmd.Flags().GetString("input")
			runID := ""
			if len(args) > 0 {
				runID = args[0]
			}

			app.Logger.Debug("analyze command",
				zap.String("run_id", runID),
				zap.String("input", input))

			result, err := analysisFor(app, runID, input)
			if err != nil {
				return err
			}
			if result == nil {
				return fmt.Errorf("run %s not found", runID)
			}

			printAnalysis(result)
			return nil
		},
	}

	cmd.Flags().String("input", "", "Analyze a fresh run over this dataset file instead of a stored run")

	return cmd
}

// analysisFor picks the analysis source: a fresh run when a dataset file
// is given, a stored run otherwise
func analysisFor(app *AppContext, runID, input string) (*services.AnalyzeScheduleResult, error) {
	if input != "" {
		dataset, err := resolveDataset(app.Cfg, input)
		if err != nil {
			return nil, err
		}
		generated, err := services.GenerateSchedule(app.Ctx, nil, app.Cfg, app.Logger, dataset, "")
		if err != nil {
			return nil, fmt.Errorf("scheduling failed: %w", err)
		}
		return services.AnalyzeSchedule(app.Logger, generated.Solution)
	}

	if app.Database == nil {
		return nil, fmt.Errorf("no database configured, pass --input to analyze a fresh run")
	}

	if runID != "" {
		return services.AnalyzeStoredSchedule(app.Ctx, app.Store(), app.Logger, runID)
	}

	solution, err := services.LatestSolution(app.Ctx, app.Store(), app.Logger)
	if err != nil {
		return nil, err
	}
	if solution == nil {
		return nil, fmt.Errorf("no stored runs to analyze")
	}
	return services.AnalyzeSchedule(app.Logger, solution)
}

// printAnalysis renders quality statistics and the recommendation list
func printAnalysis(result *services.AnalyzeScheduleResult) {
	quality := result.Quality

	fmt.Printf("\n%s\n\n", bold(fmt.Sprintf("Schedule quality (%s)", strings.ToUpper(result.MethodUsed))))
	fmt.Printf("Exams:        %d scheduled, %d unscheduled of %d\n",
		quality.ScheduledExams, quality.UnscheduledExams, quality.TotalExams)
	fmt.Printf("Success rate: %.0f%%\n", quality.SuccessRate*100)
	fmt.Printf("Scores:       mean %.4f, min %.4f, max %.4f, stddev %.4f\n\n",
		quality.AverageScore, quality.MinScore, quality.MaxScore, quality.ScoreStdDev)

	if len(result.Recommendations) == 0 {
		fmt.Printf("%s Schedule looks optimal, no adjustments needed.\n\n", green("✓"))
		return
	}

	fmt.Printf("%s Recommendations:\n", yellow("!"))
	for _, recommendation := range result.Recommendations {
		fmt.Printf("  • %s\n", recommendation)
	}
	fmt.Println()
}
