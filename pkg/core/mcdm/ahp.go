package mcdm

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Saaty's random consistency index by matrix size
var randomIndexTable = map[int]float64{
	1: 0, 2: 0, 3: 0.58, 4: 0.90, 5: 1.12,
	6: 1.24, 7: 1.32, 8: 1.41, 9: 1.45, 10: 1.49,
}

const (
	// fallbackRandomIndex covers matrices larger than the tabulated sizes
	fallbackRandomIndex = 1.49

	// consistencyThreshold is the accepted upper bound on the consistency ratio
	consistencyThreshold = 0.10

	// pairwiseTolerance bounds the diagonal and reciprocity checks
	pairwiseTolerance = 1e-5
)

// AHPResult carries the derived weight vector plus the consistency
// diagnostic of the pairwise matrix it came from.
type AHPResult struct {
	Weights          []float64 `json:"weights"`
	MaxEigenvalue    float64   `json:"max_eigenvalue"`
	ConsistencyIndex float64   `json:"consistency_index"`
	ConsistencyRatio float64   `json:"consistency_ratio"`
	Consistent       bool      `json:"is_consistent"`
}

// DeriveAHPWeights turns a reciprocal pairwise comparison matrix into a
// weight vector normalized to sum 1, via the matrix's dominant eigenpair.
// Inconsistency (ratio > 0.10) is reported, never rejected: the caller
// decides whether to accept the weights regardless.
func DeriveAHPWeights(pairwise [][]float64) (*AHPResult, error) {
	if err := validatePairwise(pairwise); err != nil {
		return nil, err
	}

	n := len(pairwise)
	if n == 1 {
		// Trivially consistent
		return &AHPResult{Weights: []float64{1}, MaxEigenvalue: 1, Consistent: true}, nil
	}

	dense := mat.NewDense(n, n, nil)
	for i, row := range pairwise {
		dense.SetRow(i, row)
	}

	var eig mat.Eigen
	if ok := eig.Factorize(dense, mat.EigenRight); !ok {
		return nil, fmt.Errorf("eigendecomposition of pairwise matrix failed")
	}

	// Dominant eigenpair = the eigenvalue with the largest real part
	values := eig.Values(nil)
	dominant := 0
	for i := 1; i < n; i++ {
		if real(values[i]) > real(values[dominant]) {
			dominant = i
		}
	}
	maxEigenvalue := real(values[dominant])

	var vectors mat.CDense
	eig.VectorsTo(&vectors)

	weights := make([]float64, n)
	sum := 0.0
	for i := 0; i < n; i++ {
		weights[i] = real(vectors.At(i, dominant))
		sum += weights[i]
	}
	if sum == 0 {
		return nil, fmt.Errorf("dominant eigenvector of pairwise matrix sums to zero")
	}
	for i := range weights {
		// Absolute value corrects eigenvector sign ambiguity
		weights[i] = math.Abs(weights[i] / sum)
	}

	ci := (maxEigenvalue - float64(n)) / float64(n-1)
	ri, tabulated := randomIndexTable[n]
	if !tabulated {
		ri = fallbackRandomIndex
	}
	cr := 0.0
	if ri > 0 {
		cr = ci / ri
	}

	return &AHPResult{
		Weights:          weights,
		MaxEigenvalue:    maxEigenvalue,
		ConsistencyIndex: ci,
		ConsistencyRatio: cr,
		Consistent:       cr <= consistencyThreshold,
	}, nil
}

// validatePairwise enforces the AHP preconditions: square, strictly
// positive, unit diagonal, and the reciprocal property m[i][j]*m[j][i] = 1
// within tolerance. Violating matrices are rejected, never repaired.
func validatePairwise(matrix [][]float64) error {
	n := len(matrix)
	if n == 0 {
		return validationErrorf("pairwise matrix has no rows")
	}
	for i, row := range matrix {
		if len(row) != n {
			return validationErrorf("pairwise matrix is not square: row %d has %d entries, want %d",
				i, len(row), n)
		}
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := matrix[i][j]
			if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
				return validationErrorf("pairwise entries must be positive, got %g at [%d][%d]", v, i, j)
			}
		}
	}
	for i := 0; i < n; i++ {
		if math.Abs(matrix[i][i]-1) > pairwiseTolerance {
			return validationErrorf("pairwise diagonal must equal 1, got %g at [%d][%d]",
				matrix[i][i], i, i)
		}
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			product := matrix[i][j] * matrix[j][i]
			if math.Abs(product-1) > pairwiseTolerance {
				return validationErrorf("entries [%d][%d] and [%d][%d] are not reciprocal: product is %g",
					i, j, j, i, product)
			}
		}
	}
	return nil
}
