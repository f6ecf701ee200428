package scheduler

import (
	"fmt"
	"math"

	"github.com/SultanDF/exam-dss/pkg/core/model"
)

// Quality thresholds that trigger recommendations
const (
	lowSuccessRate  = 0.8
	highScoreSpread = 0.3
	lowAverageScore = 0.6
)

// Analyze summarizes an allocation run: how many sessions were placed and
// how the placement scores are distributed. Standard deviation is the
// population form over the committed assignments.
func Analyze(solution *model.Solution) model.ScheduleQuality {
	quality := model.ScheduleQuality{}
	if solution == nil {
		return quality
	}

	quality.ScheduledExams = len(solution.Assignments)
	quality.UnscheduledExams = len(solution.InfeasibleExamIDs)
	quality.TotalExams = quality.ScheduledExams + quality.UnscheduledExams
	if quality.TotalExams > 0 {
		quality.SuccessRate = float64(quality.ScheduledExams) / float64(quality.TotalExams)
	}
	if quality.ScheduledExams == 0 {
		return quality
	}

	quality.MinScore = math.Inf(1)
	quality.MaxScore = math.Inf(-1)
	total := 0.0
	for _, assignment := range solution.Assignments {
		total += assignment.Score
		quality.MinScore = math.Min(quality.MinScore, assignment.Score)
		quality.MaxScore = math.Max(quality.MaxScore, assignment.Score)
	}
	quality.AverageScore = total / float64(quality.ScheduledExams)

	variance := 0.0
	for _, assignment := range solution.Assignments {
		diff := assignment.Score - quality.AverageScore
		variance += diff * diff
	}
	quality.ScoreStdDev = math.Sqrt(variance / float64(quality.ScheduledExams))

	return quality
}

// Recommendations suggests dataset or configuration changes based on a
// quality summary. An empty slice means the run looks healthy.
func Recommendations(quality model.ScheduleQuality) []string {
	recommendations := []string{}
	if quality.SuccessRate < lowSuccessRate {
		recommendations = append(recommendations,
			"Add timeslots or rooms to raise the scheduling success rate")
	}
	if quality.ScoreStdDev > highScoreSpread {
		recommendations = append(recommendations,
			"Placement scores vary widely, review examiner availability and competency ratings")
	}
	if quality.AverageScore < lowAverageScore {
		recommendations = append(recommendations,
			"Average placement score is low, adjust criteria weights or widen the examiner pool")
	}
	if quality.UnscheduledExams > 0 {
		recommendations = append(recommendations,
			fmt.Sprintf("%d exam(s) could not be scheduled, widen examiner availability for the affected students", quality.UnscheduledExams))
	}
	return recommendations
}
