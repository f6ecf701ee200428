package mcdm

import (
	"math"

	"github.com/SultanDF/exam-dss/pkg/core/model"
)

// topsisScores implements TOPSIS: alternatives score by their relative
// closeness to a synthetic ideal-best alternative versus the ideal-worst
// one. Higher is better, same convention as SAW, so callers can compare
// rankings across methods.
func topsisScores(matrix [][]float64, criteria []model.Criterion, weights []float64) []float64 {
	rows, cols := len(matrix), len(criteria)

	// Vector normalization; a zero-norm column divides by 1 instead
	norms := make([]float64, cols)
	for j := 0; j < cols; j++ {
		sum := 0.0
		for i := 0; i < rows; i++ {
			sum += matrix[i][j] * matrix[i][j]
		}
		norms[j] = math.Sqrt(sum)
		if norms[j] == 0 {
			norms[j] = 1
		}
	}

	weighted := make([][]float64, rows)
	for i := range weighted {
		weighted[i] = make([]float64, cols)
		for j := 0; j < cols; j++ {
			weighted[i][j] = weights[j] * matrix[i][j] / norms[j]
		}
	}

	// Ideal best/worst per column; cost criteria reverse the polarity
	best := make([]float64, cols)
	worst := make([]float64, cols)
	for j := 0; j < cols; j++ {
		maxVal, minVal := weighted[0][j], weighted[0][j]
		for i := 1; i < rows; i++ {
			v := weighted[i][j]
			if v > maxVal {
				maxVal = v
			}
			if v < minVal {
				minVal = v
			}
		}
		if criteria[j].Type == model.Cost {
			best[j], worst[j] = minVal, maxVal
		} else {
			best[j], worst[j] = maxVal, minVal
		}
	}

	scores := make([]float64, rows)
	for i := 0; i < rows; i++ {
		distBest, distWorst := 0.0, 0.0
		for j := 0; j < cols; j++ {
			db := weighted[i][j] - best[j]
			dw := weighted[i][j] - worst[j]
			distBest += db * db
			distWorst += dw * dw
		}
		distBest = math.Sqrt(distBest)
		distWorst = math.Sqrt(distWorst)

		// Both distances zero means nothing discriminates this alternative
		if total := distBest + distWorst; total > 0 {
			scores[i] = distWorst / total
		}
	}
	return scores
}
