package mcdm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveAHPWeights_AllOnesMatrixIsPerfectlyConsistent(t *testing.T) {
	matrix := [][]float64{
		{1, 1, 1},
		{1, 1, 1},
		{1, 1, 1},
	}

	result, err := DeriveAHPWeights(matrix)

	require.NoError(t, err)
	for i, w := range result.Weights {
		assert.InDelta(t, 1.0/3.0, w, 1e-6, "weight %d", i)
	}
	assert.InDelta(t, 3.0, result.MaxEigenvalue, 1e-9)
	assert.InDelta(t, 0.0, result.ConsistencyRatio, 1e-9)
	assert.True(t, result.Consistent)
}

func TestDeriveAHPWeights_WeightsSumToOne(t *testing.T) {
	matrix := [][]float64{
		{1, 2, 3, 4, 5},
		{1.0 / 2.0, 1, 2, 3, 4},
		{1.0 / 3.0, 1.0 / 2.0, 1, 2, 3},
		{1.0 / 4.0, 1.0 / 3.0, 1.0 / 2.0, 1, 2},
		{1.0 / 5.0, 1.0 / 4.0, 1.0 / 3.0, 1.0 / 2.0, 1},
	}

	result, err := DeriveAHPWeights(matrix)

	require.NoError(t, err)
	sum := 0.0
	for i, w := range result.Weights {
		assert.GreaterOrEqual(t, w, 0.0, "weight %d", i)
		sum += w
	}
	assert.InDelta(t, 1.0, sum, 1e-6)
	// Criterion 0 dominates every comparison, so weights come out descending
	for i := 1; i < len(result.Weights); i++ {
		assert.Greater(t, result.Weights[i-1], result.Weights[i])
	}
	assert.True(t, result.Consistent)
}

func TestDeriveAHPWeights_TwoByTwo(t *testing.T) {
	matrix := [][]float64{
		{1, 3},
		{1.0 / 3.0, 1},
	}

	result, err := DeriveAHPWeights(matrix)

	require.NoError(t, err)
	// Eigenvector of the dominant eigenvalue 2 is (3, 1)
	assert.InDelta(t, 0.75, result.Weights[0], 1e-6)
	assert.InDelta(t, 0.25, result.Weights[1], 1e-6)
	assert.InDelta(t, 0.0, result.ConsistencyRatio, 1e-9)
	assert.True(t, result.Consistent)
}

func TestDeriveAHPWeights_SingleCriterion(t *testing.T) {
	result, err := DeriveAHPWeights([][]float64{{1}})

	require.NoError(t, err)
	assert.Equal(t, []float64{1.0}, result.Weights)
	assert.True(t, result.Consistent)
	assert.Equal(t, 0.0, result.ConsistencyRatio)
}

func TestDeriveAHPWeights_CyclicPreferencesReportedInconsistent(t *testing.T) {
	// a beats b, b beats c, c beats a: reciprocal but intransitive
	matrix := [][]float64{
		{1, 2, 1.0 / 2.0},
		{1.0 / 2.0, 1, 2},
		{2, 1.0 / 2.0, 1},
	}

	result, err := DeriveAHPWeights(matrix)

	require.NoError(t, err)
	// Perfect symmetry under rotation forces equal weights
	for i, w := range result.Weights {
		assert.InDelta(t, 1.0/3.0, w, 1e-6, "weight %d", i)
	}
	// lambda = 3.5: CI = 0.25, CR = 0.25/0.58 = 0.431
	assert.InDelta(t, 0.431, result.ConsistencyRatio, 1e-2)
	assert.False(t, result.Consistent)
}

func TestDeriveAHPWeights_NonReciprocalRejected(t *testing.T) {
	matrix := [][]float64{
		{1, 2},
		{0.4, 1},
	}

	result, err := DeriveAHPWeights(matrix)

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, IsValidation(err))
}

func TestDeriveAHPWeights_NotSquareRejected(t *testing.T) {
	_, err := DeriveAHPWeights([][]float64{{1, 2}})

	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestDeriveAHPWeights_BadDiagonalRejected(t *testing.T) {
	matrix := [][]float64{
		{1, 1},
		{1, 2},
	}

	_, err := DeriveAHPWeights(matrix)

	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestDeriveAHPWeights_NonPositiveEntryRejected(t *testing.T) {
	matrix := [][]float64{
		{1, 0},
		{0, 1},
	}

	_, err := DeriveAHPWeights(matrix)

	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestDeriveAHPWeights_EmptyMatrixRejected(t *testing.T) {
	_, err := DeriveAHPWeights(nil)

	require.Error(t, err)
	assert.True(t, IsValidation(err))
}
