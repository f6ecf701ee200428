package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/SultanDF/exam-dss/pkg/core/services"
	"github.com/SultanDF/exam-dss/pkg/db"
)

// ScheduleCmd creates the schedule command
func ScheduleCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Generate an exam schedule from a dataset",
		Long: `Allocate every exam session in a dataset file (YAML or JSON) to a
timeslot, room and examiner committee. Without --input the bundled sample
set is scheduled, which is the quickest way to see the allocator work.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, _ := cmd.Flags().GetString("input")
			method, _ := cmd.Flags().GetString("method")
			save, _ := cmd.Flags().GetBool("save")

			app.Logger.Debug("schedule command",
				zap.String("input", input),
				zap.String("method", method),
				zap.Bool("save", save))

			if save && app.Database == nil {
				return fmt.Errorf("cannot save the run, no database configured")
			}

			dataset, err := resolveDataset(app.Cfg, input)
			if err != nil {
				return err
			}

			var store db.SolutionStore
			if save {
				store = app.Store()
			}

			result, err := services.GenerateSchedule(app.Ctx, store, app.Cfg, app.Logger, dataset, method)
			if err != nil {
				return fmt.Errorf("scheduling failed: %w", err)
			}

			if err := printSolution(dataset, result.Solution); err != nil {
				return err
			}
			printQuality(result.Quality)

			if result.Saved {
				fmt.Printf("%s Run %s saved to the database.\n\n", green("✓"), result.Solution.RunID)
			}

			return nil
		},
	}

	cmd.Flags().String("input", "", "Dataset file (YAML or JSON); omit for the bundled sample set")
	cmd.Flags().String("method", "", "Scoring method: saw or topsis (default from config)")
	cmd.Flags().Bool("save", false, "Persist the run to the database")

	return cmd
}
