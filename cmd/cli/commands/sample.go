package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// SampleCmd creates the sample command
func SampleCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Write the bundled sample dataset to a YAML file for editing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			output, _ := cmd.Flags().GetString("output")
			force, _ := cmd.Flags().GetBool("force")

			dataset, err := sampleDataset(app.Cfg)
			if err != nil {
				return err
			}

			if !force {
				if _, err := os.Stat(output); err == nil {
					return fmt.Errorf("%s already exists, pass --force to replace it", output)
				}
			}

			data, err := yaml.Marshal(dataset)
			if err != nil {
				return fmt.Errorf("failed to encode dataset: %w", err)
			}
			if err := os.WriteFile(output, data, 0644); err != nil {
				return fmt.Errorf("failed to write dataset file: %w", err)
			}

			fmt.Printf("\n%s Sample dataset written to %s\n", green("✓"), output)
			fmt.Printf("  %d students, %d examiners, %d rooms, %d timeslots, %d sessions\n\n",
				len(dataset.Students), len(dataset.Examiners), len(dataset.Rooms),
				len(dataset.Timeslots), len(dataset.Sessions))
			fmt.Printf("Edit it and run 'exam-dss schedule --input %s'.\n\n", output)

			return nil
		},
	}

	cmd.Flags().String("output", "exam_dss_dataset.yaml", "Output file path")
	cmd.Flags().Bool("force", false, "Replace the file if it exists")

	return cmd
}
