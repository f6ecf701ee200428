package mcdm

import (
	"math"

	"github.com/SultanDF/exam-dss/pkg/core/model"
)

// validateDecision checks that the matrix is non-empty and rectangular with
// exactly one column per criterion, and that every entry is a finite
// non-negative number.
func validateDecision(matrix [][]float64, criteria []model.Criterion) error {
	if len(matrix) == 0 {
		return validationErrorf("decision matrix has no rows")
	}
	if len(criteria) == 0 {
		return validationErrorf("criteria set is empty")
	}
	for i, row := range matrix {
		if len(row) != len(criteria) {
			return validationErrorf("row %d has %d entries, want %d (one per criterion)",
				i, len(row), len(criteria))
		}
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return validationErrorf("entry [%d][%d] is not a finite number", i, j)
			}
			if v < 0 {
				return validationErrorf("entry [%d][%d] is negative", i, j)
			}
		}
	}
	return nil
}

// resolveWeights renormalizes criterion weights to sum to 1 regardless of
// the scale the caller supplied them in.
func resolveWeights(criteria []model.Criterion) ([]float64, error) {
	total := 0.0
	for _, c := range criteria {
		if c.Weight < 0 {
			return nil, validationErrorf("criterion %q has a negative weight", c.Name)
		}
		total += c.Weight
	}
	if total <= 0 {
		return nil, validationErrorf("criteria weights must sum to a positive value")
	}

	weights := make([]float64, len(criteria))
	for i, c := range criteria {
		weights[i] = c.Weight / total
	}
	return weights, nil
}

// normalizeColumns maps each raw column onto [0,1] according to its
// criterion direction.
//
// Benefit columns divide by the column maximum; an all-zero benefit column
// is kept as-is rather than divided by zero. Cost columns divide the column
// minimum by each entry; when a zero entry makes that impossible the whole
// column falls back to 1 - value/max. Downstream rankings depend on this
// exact fallback, so it must not be "simplified".
func normalizeColumns(matrix [][]float64, criteria []model.Criterion) [][]float64 {
	rows, cols := len(matrix), len(criteria)
	normalized := make([][]float64, rows)
	for i := range normalized {
		normalized[i] = make([]float64, cols)
	}

	for j := 0; j < cols; j++ {
		maxVal := matrix[0][j]
		minVal := matrix[0][j]
		hasZero := false
		for i := 0; i < rows; i++ {
			v := matrix[i][j]
			if v > maxVal {
				maxVal = v
			}
			if v < minVal {
				minVal = v
			}
			if v == 0 {
				hasZero = true
			}
		}

		switch {
		case criteria[j].Type == model.Cost && !hasZero:
			for i := 0; i < rows; i++ {
				normalized[i][j] = minVal / matrix[i][j]
			}
		case criteria[j].Type == model.Cost && maxVal > 0:
			for i := 0; i < rows; i++ {
				normalized[i][j] = 1 - matrix[i][j]/maxVal
			}
		case criteria[j].Type != model.Cost && maxVal > 0:
			for i := 0; i < rows; i++ {
				normalized[i][j] = matrix[i][j] / maxVal
			}
		default:
			// all-zero column carries no information, keep zeros
		}
	}
	return normalized
}
