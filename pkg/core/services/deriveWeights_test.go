package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/SultanDF/exam-dss/pkg/core/mcdm"
)

func TestDeriveWeights_IndifferentMatrixSplitsEvenly(t *testing.T) {
	logger := zap.NewNop()
	names := []string{"expertise_match", "workload"}
	matrix := [][]float64{
		{1, 1},
		{1, 1},
	}

	result, err := DeriveWeights(logger, names, matrix)
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, names, result.Criteria)
	require.Len(t, result.Weights, 2)
	assert.InDelta(t, 0.5, result.Weights[0], 1e-9)
	assert.InDelta(t, 0.5, result.Weights[1], 1e-9)
	assert.InDelta(t, 0.5, result.NamedWeights["expertise_match"], 1e-9)
	assert.InDelta(t, 0.5, result.NamedWeights["workload"], 1e-9)

	assert.True(t, result.Consistent)
	assert.InDelta(t, 0.0, result.ConsistencyRatio, 1e-9)
	assert.Equal(t, "pairwise comparisons are consistent", result.Message)
}

func TestDeriveWeights_InconsistentCycleStillYieldsWeights(t *testing.T) {
	logger := zap.NewNop()
	names := []string{"a", "b", "c"}

	// A beats B 9x, B beats C 9x, yet C beats A 9x. The cyclic symmetry
	// forces equal weights and a wildly inconsistent ratio:
	// lambda_max = 1 + 9 + 1/9 = 10.1111, CI = (10.1111-3)/2 = 3.5556,
	// CR = 3.5556/0.58 = 6.1303.
	matrix := [][]float64{
		{1, 9, 1.0 / 9},
		{1.0 / 9, 1, 9},
		{9, 1.0 / 9, 1},
	}

	result, err := DeriveWeights(logger, names, matrix)
	require.NoError(t, err)

	for i := range names {
		assert.InDelta(t, 1.0/3, result.Weights[i], 1e-6)
	}
	assert.InDelta(t, 10.1111, result.MaxEigenvalue, 1e-3)
	assert.InDelta(t, 3.5556, result.ConsistencyIndex, 1e-3)
	assert.InDelta(t, 6.1303, result.ConsistencyRatio, 1e-3)
	assert.False(t, result.Consistent)
	assert.Equal(t, "consistency ratio exceeds 0.10, revise the pairwise comparisons", result.Message)
}

func TestDeriveWeights_NameCountMustMatchMatrix(t *testing.T) {
	logger := zap.NewNop()

	_, err := DeriveWeights(logger, []string{"a", "b", "c"}, [][]float64{{1, 1}, {1, 1}})
	require.Error(t, err)
	assert.True(t, mcdm.IsValidation(err))
}

func TestDeriveWeights_EmptyNamesRejected(t *testing.T) {
	logger := zap.NewNop()

	_, err := DeriveWeights(logger, nil, [][]float64{{1}})
	require.Error(t, err)
	assert.True(t, mcdm.IsValidation(err))
}

func TestDeriveWeights_NonReciprocalMatrixRejected(t *testing.T) {
	logger := zap.NewNop()
	matrix := [][]float64{
		{1, 3},
		{3, 1}, // should be 1/3
	}

	_, err := DeriveWeights(logger, []string{"a", "b"}, matrix)
	require.Error(t, err)
	assert.True(t, mcdm.IsValidation(err))
}
