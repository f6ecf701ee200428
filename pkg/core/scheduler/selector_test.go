package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SultanDF/exam-dss/pkg/core/mcdm"
	"github.com/SultanDF/exam-dss/pkg/core/model"
)

func selectionExaminers() []model.Examiner {
	return []model.Examiner{
		{
			ID: 1, Name: "Dr. Ayu Lestari", Expertise: []string{"machine learning"},
			ExperienceYears: 5, Workload: 2, AvailabilityScore: 4, CompetencyScore: 4,
			AvailableTimeslots: []int{1},
		},
		{
			ID: 2, Name: "Prof. Bambang Wijaya", Expertise: []string{"machine learning"},
			ExperienceYears: 10, Workload: 0, AvailabilityScore: 5, CompetencyScore: 5,
			AvailableTimeslots: []int{1},
		},
		{
			ID: 3, Name: "Dr. Citra Dewi", Expertise: []string{"databases"},
			ExperienceYears: 2, Workload: 5, AvailabilityScore: 3, CompetencyScore: 3,
			AvailableTimeslots: []int{1},
		},
		{
			ID: 4, Name: "Dr. Dian Kusuma", Expertise: []string{"networking"},
			ExperienceYears: 8, Workload: 1, AvailabilityScore: 4, CompetencyScore: 4,
			AvailableTimeslots: []int{2},
		},
	}
}

func mlStudent() *model.Student {
	return &model.Student{ID: 1, Name: "Budi Santoso", ThesisField: "machine learning", SupervisorID: 1}
}

func TestSelectCommittee_SupervisorLeadsCommittee(t *testing.T) {
	allocator := NewAllocator(nil, DefaultOptions(), nil)

	committee, err := allocator.SelectCommittee(mlStudent(), 1, 3, selectionExaminers(), nil, mcdm.MethodSAW, nil)
	require.NoError(t, err)
	require.Len(t, committee, 3)

	// Candidate rows are (expertise, competency, availability, workload, experience):
	//   examiner 2: [1.0, 5, 5, 0, 10] -> normalized all 1.0 -> SAW score 1.0
	//   examiner 3: [0.0, 3, 3, 5, 2]  -> [0, 0.6, 0.6, 0, 0.2]
	//               -> 0.25*0.6 + 0.20*0.6 + 0.10*0.2 = 0.29
	assert.Equal(t, 1, committee[0].Examiner.ID)
	assert.Equal(t, DefaultSupervisorScore, committee[0].Score)
	assert.Equal(t, 2, committee[1].Examiner.ID)
	assert.InDelta(t, 1.0, committee[1].Score, 1e-9)
	assert.Equal(t, 3, committee[2].Examiner.ID)
	assert.InDelta(t, 0.29, committee[2].Score, 1e-9)
}

func TestSelectCommittee_NotEnoughAvailabilityReturnsEmpty(t *testing.T) {
	allocator := NewAllocator(nil, DefaultOptions(), nil)

	// Only three examiners can attend timeslot 1
	committee, err := allocator.SelectCommittee(mlStudent(), 1, 4, selectionExaminers(), nil, mcdm.MethodSAW, nil)
	require.NoError(t, err)
	assert.Empty(t, committee)
}

func TestSelectCommittee_UnavailableSupervisorReturnsEmpty(t *testing.T) {
	allocator := NewAllocator(nil, DefaultOptions(), nil)
	student := mlStudent()
	student.SupervisorID = 4 // only attends timeslot 2

	committee, err := allocator.SelectCommittee(student, 1, 2, selectionExaminers(), nil, mcdm.MethodSAW, nil)
	require.NoError(t, err)
	assert.Empty(t, committee)
}

func TestSelectCommittee_SupervisorAloneReturnsEmpty(t *testing.T) {
	allocator := NewAllocator(nil, DefaultOptions(), nil)
	supervisorOnly := selectionExaminers()[:1]

	committee, err := allocator.SelectCommittee(mlStudent(), 1, 1, supervisorOnly, nil, mcdm.MethodSAW, nil)
	require.NoError(t, err)
	assert.Empty(t, committee)
}

func TestSelectCommittee_RequiredBelowOneReturnsEmpty(t *testing.T) {
	allocator := NewAllocator(nil, DefaultOptions(), nil)

	committee, err := allocator.SelectCommittee(mlStudent(), 1, 0, selectionExaminers(), nil, mcdm.MethodSAW, nil)
	require.NoError(t, err)
	assert.Empty(t, committee)
}

func TestSelectCommittee_CustomSupervisorScore(t *testing.T) {
	allocator := NewAllocator(nil, Options{SupervisorScore: 0.5}, nil)

	committee, err := allocator.SelectCommittee(mlStudent(), 1, 2, selectionExaminers(), nil, mcdm.MethodSAW, nil)
	require.NoError(t, err)
	require.NotEmpty(t, committee)
	assert.Equal(t, 0.5, committee[0].Score)
}

func TestSelectCommittee_WorkloadMapOverridesBaseCounts(t *testing.T) {
	allocator := NewAllocator(nil, DefaultOptions(), nil)
	student := mlStudent()

	// Identical twins apart from base workload: examiner 2 starts free,
	// examiner 3 starts loaded.
	examiners := []model.Examiner{
		{ID: 1, Expertise: []string{"machine learning"}, ExperienceYears: 5,
			AvailabilityScore: 4, CompetencyScore: 4, AvailableTimeslots: []int{1}},
		{ID: 2, Expertise: []string{"machine learning"}, ExperienceYears: 5, Workload: 0,
			AvailabilityScore: 4, CompetencyScore: 4, AvailableTimeslots: []int{1}},
		{ID: 3, Expertise: []string{"machine learning"}, ExperienceYears: 5, Workload: 5,
			AvailabilityScore: 4, CompetencyScore: 4, AvailableTimeslots: []int{1}},
	}

	committee, err := allocator.SelectCommittee(student, 1, 2, examiners, nil, mcdm.MethodSAW, nil)
	require.NoError(t, err)
	require.Len(t, committee, 2)
	assert.Equal(t, 2, committee[1].Examiner.ID)

	// An explicit workload map flips the single open seat
	committee, err = allocator.SelectCommittee(student, 1, 2, examiners, nil, mcdm.MethodSAW,
		map[int]int{1: 0, 2: 5, 3: 0})
	require.NoError(t, err)
	require.Len(t, committee, 2)
	assert.Equal(t, 3, committee[1].Examiner.ID)
}

func TestSelectCommittee_PropagatesEngineError(t *testing.T) {
	allocator := NewAllocator(nil, DefaultOptions(), nil)

	_, err := allocator.SelectCommittee(mlStudent(), 1, 2, selectionExaminers(), nil, "wsm", nil)
	require.Error(t, err)
	assert.True(t, mcdm.IsUnsupportedMethod(err))
}
