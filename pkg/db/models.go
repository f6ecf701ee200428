package db

import "time"

// SolutionSummary is the list-view projection of a stored scheduling run
type SolutionSummary struct {
	RunID             string    `json:"run_id"`
	Method            string    `json:"method"`
	ScheduledExams    int       `json:"scheduled_exams"`
	InfeasibleExams   int       `json:"infeasible_exams"`
	TotalSatisfaction float64   `json:"total_satisfaction"`
	CreatedAt         time.Time `json:"created_at"`
}
