package services

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/SultanDF/exam-dss/pkg/core/mcdm"
)

// DeriveWeightsResult carries AHP-derived criteria weights plus the
// consistency verdict the caller should surface before trusting them.
type DeriveWeightsResult struct {
	Criteria         []string           `json:"criteria"`
	Weights          []float64          `json:"weights"`
	NamedWeights     map[string]float64 `json:"named_weights"`
	MaxEigenvalue    float64            `json:"max_eigenvalue"`
	ConsistencyIndex float64            `json:"consistency_index"`
	ConsistencyRatio float64            `json:"consistency_ratio"`
	Consistent       bool               `json:"is_consistent"`
	Message          string             `json:"message"`
}

// DeriveWeights turns a pairwise comparison matrix over the named criteria
// into a normalized weight vector. Inconsistent comparisons still produce
// weights, with a warning logged and the verdict reported, so the decision
// maker can choose to revise rather than being blocked.
func DeriveWeights(
	logger *zap.Logger,
	criteriaNames []string,
	matrix [][]float64,
) (*DeriveWeightsResult, error) {
	logger.Debug("Starting deriveWeights",
		zap.Int("criteria_count", len(criteriaNames)),
		zap.Int("matrix_rows", len(matrix)))

	if len(criteriaNames) == 0 {
		return nil, &mcdm.ValidationError{Reason: "criteria names are required"}
	}
	if len(criteriaNames) != len(matrix) {
		return nil, &mcdm.ValidationError{
			Reason: fmt.Sprintf("got %d criteria names for a %dx%d matrix",
				len(criteriaNames), len(matrix), len(matrix)),
		}
	}

	result, err := mcdm.DeriveAHPWeights(matrix)
	if err != nil {
		return nil, fmt.Errorf("failed to derive weights: %w", err)
	}

	named := make(map[string]float64, len(criteriaNames))
	for i, name := range criteriaNames {
		named[name] = result.Weights[i]
	}

	message := "pairwise comparisons are consistent"
	if !result.Consistent {
		message = "consistency ratio exceeds 0.10, revise the pairwise comparisons"
		logger.Warn("Inconsistent pairwise comparisons",
			zap.Float64("consistency_ratio", result.ConsistencyRatio))
	}

	logger.Info("AHP weights derived",
		zap.Float64("consistency_ratio", result.ConsistencyRatio),
		zap.Bool("is_consistent", result.Consistent))

	return &DeriveWeightsResult{
		Criteria:         criteriaNames,
		Weights:          result.Weights,
		NamedWeights:     named,
		MaxEigenvalue:    result.MaxEigenvalue,
		ConsistencyIndex: result.ConsistencyIndex,
		ConsistencyRatio: result.ConsistencyRatio,
		Consistent:       result.Consistent,
		Message:          message,
	}, nil
}
