package scheduler

import (
	"math"
	"slices"
	"sort"

	"go.uber.org/zap"

	"github.com/SultanDF/exam-dss/pkg/core/mcdm"
	"github.com/SultanDF/exam-dss/pkg/core/model"
)

// Allocator schedules exam sessions greedily: highest priority first, each
// session taking the best remaining committee, timeslot and room
// combination. Committed placements feed back into examiner workloads, so
// later sessions see the load earlier sessions created.
type Allocator struct {
	engine *mcdm.Engine
	opts   Options
	logger *zap.Logger
}

// NewAllocator builds an allocator around the given scoring engine. A nil
// engine gets the built-in methods and a nil logger disables logging.
func NewAllocator(engine *mcdm.Engine, opts Options, logger *zap.Logger) *Allocator {
	if engine == nil {
		engine = mcdm.NewEngine()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Allocator{
		engine: engine,
		opts:   opts.withDefaults(),
		logger: logger,
	}
}

// Allocate builds a schedule for every exam session in the dataset.
// Sessions that cannot be placed without breaking a constraint are recorded
// as infeasible, never as errors; the error return covers only a bad method
// or bad criteria. The dataset is not modified.
func (a *Allocator) Allocate(dataset *model.Dataset, criteria []model.Criterion, method string) (*model.Solution, error) {
	if dataset == nil {
		return nil, &mcdm.ValidationError{Reason: "dataset is required"}
	}
	if !a.engine.Supports(method) {
		return nil, &mcdm.UnsupportedMethodError{Method: method, Supported: a.engine.Methods()}
	}
	if len(criteria) == 0 {
		criteria = DefaultCriteria()
	}

	// A single-row probe evaluation validates the criteria before any
	// session is touched and yields the resolved weights for the report.
	probe := make([]float64, len(criteria))
	for i := range probe {
		probe[i] = 1
	}
	_, weights, err := a.engine.Evaluate([][]float64{probe}, criteria, method)
	if err != nil {
		return nil, err
	}

	extractors := resolveExtractors(criteria, a.logger)
	workloads := baseWorkloads(dataset.Examiners)

	// Sort a copy so callers keep their session order. The stable sort
	// keeps input order among equal priorities, which makes runs
	// deterministic.
	sessions := make([]model.ExamSession, len(dataset.Sessions))
	copy(sessions, dataset.Sessions)
	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].Priority > sessions[j].Priority
	})

	solution := &model.Solution{
		Method:            method,
		Assignments:       []model.Assignment{},
		InfeasibleExamIDs: []int{},
		CriteriaWeights:   weights,
	}

	for _, session := range sessions {
		student := dataset.StudentByID(session.StudentID)
		if student == nil {
			a.logger.Warn("Exam session references unknown student",
				zap.Int("exam_id", session.ID),
				zap.Int("student_id", session.StudentID))
			solution.InfeasibleExamIDs = append(solution.InfeasibleExamIDs, session.ID)
			continue
		}

		best, committee, err := a.bestPlacement(dataset, solution.Assignments, &session, student, criteria, extractors, method, workloads)
		if err != nil {
			return nil, err
		}
		if best == nil {
			a.logger.Warn("No conflict-free placement for exam session",
				zap.Int("exam_id", session.ID),
				zap.Int("student_id", session.StudentID),
				zap.Float64("priority", session.Priority))
			solution.InfeasibleExamIDs = append(solution.InfeasibleExamIDs, session.ID)
			continue
		}

		solution.Assignments = append(solution.Assignments, *best)
		for _, member := range committee {
			workloads[member.Examiner.ID]++
		}
		a.logger.Debug("Placed exam session",
			zap.Int("exam_id", session.ID),
			zap.Int("timeslot_id", best.TimeslotID),
			zap.Int("room_id", best.RoomID),
			zap.Float64("score", best.Score))
	}

	if len(solution.Assignments) > 0 {
		total := 0.0
		for _, assignment := range solution.Assignments {
			total += assignment.Score
		}
		solution.TotalSatisfaction = total / float64(len(solution.Assignments))
	}
	return solution, nil
}

// bestPlacement sweeps every timeslot and room for one session and returns
// the highest-scoring conflict-free placement, or nil when none exists.
// Ties keep the first combination encountered, so sweep order decides.
func (a *Allocator) bestPlacement(dataset *model.Dataset, committed []model.Assignment,
	session *model.ExamSession, student *model.Student, criteria []model.Criterion,
	extractors []extractor, method string, workloads map[int]int) (*model.Assignment, []RankedExaminer, error) {

	var best *model.Assignment
	var bestCommittee []RankedExaminer
	bestScore := -1.0

	for _, slot := range dataset.Timeslots {
		committee, err := a.selectCommittee(student, slot.ID, session.RequiredExaminers,
			dataset.Examiners, criteria, extractors, method, workloads)
		if err != nil {
			return nil, nil, err
		}
		if len(committee) == 0 {
			continue
		}
		committeeScore := meanScore(committee)

		for _, room := range dataset.Rooms {
			if hasConflict(committed, slot.ID, room.ID, committee) {
				continue
			}
			roomScore := a.roomSuitability(room)
			combined := a.opts.CommitteeWeight*committeeScore + a.opts.RoomWeight*roomScore
			if combined > bestScore {
				bestScore = combined
				bestCommittee = committee
				best = &model.Assignment{
					ExamID:        session.ID,
					StudentID:     student.ID,
					StudentName:   student.Name,
					TimeslotID:    slot.ID,
					RoomID:        room.ID,
					ExaminerIDs:   examinerIDs(committee),
					Score:         combined,
					ExaminerScore: committeeScore,
					RoomScore:     roomScore,
				}
			}
		}
	}
	return best, bestCommittee, nil
}

// roomSuitability scores a room on capacity headroom, quality rating and
// facility count, each factor clamped to the unit interval.
func (a *Allocator) roomSuitability(room model.Room) float64 {
	capacityScore := math.Min(float64(room.Capacity)/float64(a.opts.CapacityBaseline), 1)
	qualityScore := room.QualityScore / ratingScale
	facilityScore := math.Min(float64(len(room.Facilities))/facilityBaseline, 1)

	return a.opts.RoomCapacityWeight*capacityScore +
		a.opts.RoomQualityWeight*qualityScore +
		a.opts.RoomFacilityWeight*facilityScore
}

// hasConflict reports whether a placement collides with a committed
// assignment. Two placements conflict when they share a timeslot and either
// the room or at least one examiner.
func hasConflict(committed []model.Assignment, slotID, roomID int, committee []RankedExaminer) bool {
	for _, assignment := range committed {
		if assignment.TimeslotID != slotID {
			continue
		}
		if assignment.RoomID == roomID {
			return true
		}
		for _, member := range committee {
			if slices.Contains(assignment.ExaminerIDs, member.Examiner.ID) {
				return true
			}
		}
	}
	return false
}

func examinerIDs(committee []RankedExaminer) []int {
	ids := make([]int, len(committee))
	for i, member := range committee {
		ids[i] = member.Examiner.ID
	}
	return ids
}

func meanScore(committee []RankedExaminer) float64 {
	total := 0.0
	for _, member := range committee {
		total += member.Score
	}
	return total / float64(len(committee))
}
