package mcdm

import "github.com/SultanDF/exam-dss/pkg/core/model"

// sawScores implements Simple Additive Weighting: each alternative scores
// the dot product of its normalized row with the weight vector. Weights are
// expected to already sum to 1, which keeps the result in [0,1].
func sawScores(matrix [][]float64, criteria []model.Criterion, weights []float64) []float64 {
	normalized := normalizeColumns(matrix, criteria)

	scores := make([]float64, len(normalized))
	for i, row := range normalized {
		for j, v := range row {
			scores[i] += weights[j] * v
		}
	}
	return scores
}
