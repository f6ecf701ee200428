package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/SultanDF/exam-dss/internal/config"
	"github.com/SultanDF/exam-dss/pkg/core/mcdm"
)

func TestEvaluateExaminers_RanksSupervisorFirst(t *testing.T) {
	logger := zap.NewNop()

	result, err := EvaluateExaminers(config.Default(), logger, serviceDataset(), 1, 1, 3, "saw")
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, "Budi Santoso", result.StudentName)
	assert.Equal(t, 1, result.TimeslotID)
	assert.Equal(t, "saw", result.MethodUsed)
	assert.Equal(t, 3, result.TotalSelected)
	require.Len(t, result.Selected, 3)

	// Rank 1 is always the supervisor at the fixed score
	assert.Equal(t, 1, result.Selected[0].Examiner.ID)
	assert.Equal(t, 1, result.Selected[0].Rank)
	assert.InDelta(t, 0.9, result.Selected[0].Score, 1e-9)

	// The expertise-matched professor outranks the databases lecturer
	assert.Equal(t, 2, result.Selected[1].Examiner.ID)
	assert.Equal(t, 2, result.Selected[1].Rank)
	assert.Equal(t, 3, result.Selected[2].Examiner.ID)
	assert.Equal(t, 3, result.Selected[2].Rank)
}

func TestEvaluateExaminers_DefaultsCountFromConfig(t *testing.T) {
	logger := zap.NewNop()

	// Zero required count falls back to the configured committee size of 3
	result, err := EvaluateExaminers(config.Default(), logger, serviceDataset(), 1, 1, 0, "saw")
	require.NoError(t, err)

	assert.Equal(t, 3, result.TotalSelected)
}

func TestEvaluateExaminers_InfeasibleSlotYieldsEmptyCommittee(t *testing.T) {
	logger := zap.NewNop()

	// Nobody is available at timeslot 2, which is infeasible, not an error
	result, err := EvaluateExaminers(config.Default(), logger, serviceDataset(), 1, 2, 3, "saw")
	require.NoError(t, err)

	assert.Empty(t, result.Selected)
	assert.Equal(t, 0, result.TotalSelected)
}

func TestEvaluateExaminers_UnknownStudentRejected(t *testing.T) {
	logger := zap.NewNop()

	result, err := EvaluateExaminers(config.Default(), logger, serviceDataset(), 42, 1, 3, "saw")
	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, mcdm.IsValidation(err))
}

func TestEvaluateExaminers_NilDatasetRejected(t *testing.T) {
	logger := zap.NewNop()

	_, err := EvaluateExaminers(config.Default(), logger, nil, 1, 1, 3, "saw")
	require.Error(t, err)
	assert.True(t, mcdm.IsValidation(err))
}

func TestEvaluateExaminers_UnknownMethodSurfaces(t *testing.T) {
	logger := zap.NewNop()

	_, err := EvaluateExaminers(config.Default(), logger, serviceDataset(), 1, 1, 3, "wsm")
	require.Error(t, err)
	assert.True(t, mcdm.IsUnsupportedMethod(err))
}
