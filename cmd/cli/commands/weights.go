package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/SultanDF/exam-dss/pkg/core/sampledata"
	"github.com/SultanDF/exam-dss/pkg/core/scheduler"
	"github.com/SultanDF/exam-dss/pkg/core/services"
)

// pairwiseFile is the on-disk shape of a pairwise comparison matrix
type pairwiseFile struct {
	Criteria []string    `json:"criteria" yaml:"criteria"`
	Matrix   [][]float64 `json:"matrix" yaml:"matrix"`
}

// WeightsCmd creates the weights command
func WeightsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "weights [matrix_file]",
		Short: "Derive criteria weights from an AHP pairwise comparison matrix",
		Long: `Derive normalized criteria weights from a pairwise comparison matrix file
(YAML or JSON with "criteria" and "matrix" keys). Without a file, the
showcase matrix over the built-in criteria is used. Inconsistent
comparisons still yield weights; the consistency verdict tells you
whether to trust them.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var names []string
			var matrix [][]float64

			if len(args) > 0 {
				input, err := readPairwiseFile(args[0])
				if err != nil {
					return err
				}
				names, matrix = input.Criteria, input.Matrix
			} else {
				for _, criterion := range scheduler.DefaultCriteria() {
					names = append(names, criterion.Name)
				}
				matrix = sampledata.ShowcasePairwise()
			}

			result, err := services.DeriveWeights(app.Logger, names, matrix)
			if err != nil {
				return fmt.Errorf("weight derivation failed: %w", err)
			}

			return printWeights(result)
		},
	}
}

// readPairwiseFile parses a pairwise matrix file by extension
func readPairwiseFile(path string) (*pairwiseFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read matrix file: %w", err)
	}

	input := &pairwiseFile{}
	if filepath.Ext(path) == ".json" {
		if err := json.Unmarshal(data, input); err != nil {
			return nil, fmt.Errorf("failed to parse matrix file %s: %w", path, err)
		}
		return input, nil
	}

	if err := yaml.Unmarshal(data, input); err != nil {
		return nil, fmt.Errorf("failed to parse matrix file %s: %w", path, err)
	}
	return input, nil
}

// printWeights renders a weight derivation result with its consistency
// verdict
func printWeights(result *services.DeriveWeightsResult) error {
	fmt.Printf("\n%s\n\n", bold("Derived criteria weights"))

	rows := make([][]string, 0, len(result.Criteria))
	for i, name := range result.Criteria {
		rows = append(rows, []string{name, fmt.Sprintf("%.4f", result.Weights[i])})
	}
	if err := renderNumericTable(os.Stdout, []string{"Criterion", "Weight"}, rows); err != nil {
		return err
	}

	fmt.Printf("\nlambda_max = %.4f   CI = %.4f   CR = %.4f\n",
		result.MaxEigenvalue, result.ConsistencyIndex, result.ConsistencyRatio)
	if result.Consistent {
		fmt.Printf("%s %s\n\n", green("✓"), result.Message)
	} else {
		fmt.Printf("%s %s\n\n", red("✗"), result.Message)
	}

	return nil
}
