package scheduler

import (
	"slices"

	"go.uber.org/zap"

	"github.com/SultanDF/exam-dss/pkg/core/model"
)

// RankedExaminer pairs an examiner with its selection score.
type RankedExaminer struct {
	Examiner model.Examiner `json:"examiner"`
	Score    float64        `json:"score"`
}

// SelectCommittee picks the examination committee for one student at one
// timeslot: the student's supervisor sits first at the fixed supervisor
// score, and the remaining seats go to the top-ranked available examiners.
// An empty result signals infeasibility (not enough availability, or the
// supervisor cannot attend) and is never an error. The workloads map holds
// the effective load the workload criterion reads; pass nil to use each
// examiner's base workload.
func (a *Allocator) SelectCommittee(student *model.Student, slotID, requiredCount int,
	examiners []model.Examiner, criteria []model.Criterion, method string,
	workloads map[int]int) ([]RankedExaminer, error) {

	if len(criteria) == 0 {
		criteria = DefaultCriteria()
	}
	if workloads == nil {
		workloads = baseWorkloads(examiners)
	}
	extractors := resolveExtractors(criteria, a.logger)
	return a.selectCommittee(student, slotID, requiredCount, examiners, criteria, extractors, method, workloads)
}

// selectCommittee is the extractor-resolved core of SelectCommittee. The
// allocator resolves extractors once per run and calls this directly.
func (a *Allocator) selectCommittee(student *model.Student, slotID, requiredCount int,
	examiners []model.Examiner, criteria []model.Criterion, extractors []extractor,
	method string, workloads map[int]int) ([]RankedExaminer, error) {

	if requiredCount < 1 {
		return nil, nil
	}

	available := make([]*model.Examiner, 0, len(examiners))
	for i := range examiners {
		if slices.Contains(examiners[i].AvailableTimeslots, slotID) {
			available = append(available, &examiners[i])
		}
	}
	if len(available) < requiredCount {
		a.logger.Debug("Not enough available examiners",
			zap.Int("student_id", student.ID),
			zap.Int("timeslot_id", slotID),
			zap.Int("available", len(available)),
			zap.Int("required", requiredCount))
		return nil, nil
	}

	// The supervisor is mandatory and never substituted
	var supervisor *model.Examiner
	candidates := make([]*model.Examiner, 0, len(available))
	for _, ex := range available {
		if ex.ID == student.SupervisorID {
			supervisor = ex
			continue
		}
		candidates = append(candidates, ex)
	}
	if supervisor == nil {
		a.logger.Debug("Supervisor not available at timeslot",
			zap.Int("student_id", student.ID),
			zap.Int("supervisor_id", student.SupervisorID),
			zap.Int("timeslot_id", slotID))
		return nil, nil
	}
	if len(candidates) == 0 {
		// A committee is never the supervisor alone
		return nil, nil
	}

	matrix := make([][]float64, len(candidates))
	for i, ex := range candidates {
		row := make([]float64, len(extractors))
		for j, extract := range extractors {
			row[j] = extract(ex, student, workloads)
		}
		matrix[i] = row
	}

	scores, _, err := a.engine.Evaluate(matrix, criteria, method)
	if err != nil {
		return nil, err
	}
	ranking := a.engine.Rank(scores)

	seats := requiredCount - 1
	if seats > len(ranking) {
		seats = len(ranking)
	}

	selection := make([]RankedExaminer, 0, seats+1)
	selection = append(selection, RankedExaminer{Examiner: *supervisor, Score: a.opts.SupervisorScore})
	for _, idx := range ranking[:seats] {
		selection = append(selection, RankedExaminer{Examiner: *candidates[idx], Score: scores[idx]})
	}
	return selection, nil
}

// baseWorkloads seeds per-run workload state from the examiners' base
// workload counts.
func baseWorkloads(examiners []model.Examiner) map[int]int {
	workloads := make(map[int]int, len(examiners))
	for _, ex := range examiners {
		workloads[ex.ID] = ex.Workload
	}
	return workloads
}
