package commands

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SultanDF/exam-dss/pkg/core/mcdm"
	"github.com/SultanDF/exam-dss/pkg/core/sampledata"
	"github.com/SultanDF/exam-dss/pkg/core/scheduler"
	"github.com/SultanDF/exam-dss/pkg/core/services"
)

// DemoCmd creates the demo command
func DemoCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "End-to-end walkthrough on the bundled sample dataset",
		Long: `Walk through the full decision flow on the sample dataset: derive
criteria weights with AHP, compare the SAW and TOPSIS committee rankings
for one student, then allocate every exam session.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dataset, err := sampleDataset(app.Cfg)
			if err != nil {
				return err
			}

			// Step 1: AHP weight derivation over the showcase matrix
			fmt.Printf("\n%s\n", bold("Step 1: Derive criteria weights (AHP)"))

			names := make([]string, 0, len(scheduler.DefaultCriteria()))
			for _, criterion := range scheduler.DefaultCriteria() {
				names = append(names, criterion.Name)
			}
			weights, err := services.DeriveWeights(app.Logger, names, sampledata.ShowcasePairwise())
			if err != nil {
				return fmt.Errorf("weight derivation failed: %w", err)
			}
			if err := printWeights(weights); err != nil {
				return err
			}

			// Step 2: committee ranking for the first student, both methods
			student := dataset.Students[0]
			slotID := student.PreferredTimeslots[0]
			fmt.Printf("%s\n", bold(fmt.Sprintf("Step 2: Rank examiners for %s at timeslot %d", student.Name, slotID)))

			for _, method := range []string{mcdm.MethodSAW, mcdm.MethodTOPSIS} {
				evaluation, err := services.EvaluateExaminers(app.Cfg, app.Logger, dataset,
					student.ID, slotID, 0, method)
				if err != nil {
					return fmt.Errorf("evaluation failed: %w", err)
				}

				fmt.Printf("\n%s committee:\n\n", strings.ToUpper(method))
				rows := make([][]string, 0, evaluation.TotalSelected)
				for _, selected := range evaluation.Selected {
					rows = append(rows, []string{
						strconv.Itoa(selected.Rank),
						selected.Examiner.Name,
						fmt.Sprintf("%.4f", selected.Score),
					})
				}
				if err := renderNumericTable(os.Stdout, []string{"Rank", "Examiner", "Score"}, rows); err != nil {
					return err
				}
			}

			// Step 3: full allocation with the configured method
			fmt.Printf("\n%s\n", bold("Step 3: Allocate every exam session"))

			result, err := services.GenerateSchedule(app.Ctx, nil, app.Cfg, app.Logger, dataset, "")
			if err != nil {
				return fmt.Errorf("scheduling failed: %w", err)
			}
			if err := printSolution(dataset, result.Solution); err != nil {
				return err
			}

			analysis, err := services.AnalyzeSchedule(app.Logger, result.Solution)
			if err != nil {
				return err
			}
			printAnalysis(analysis)

			return nil
		},
	}
}
