package model

import "time"

// CriterionType marks the optimization direction of a criterion
type CriterionType string

const (
	// Benefit criteria reward higher raw values
	Benefit CriterionType = "benefit"
	// Cost criteria reward lower raw values
	Cost CriterionType = "cost"
)

func (t CriterionType) IsValid() bool {
	return t == Benefit || t == Cost
}

// Criterion represents a weighted decision criterion
type Criterion struct {
	ID          int           `json:"id" yaml:"id"`
	Name        string        `json:"name" yaml:"name"`
	Weight      float64       `json:"weight" yaml:"weight"`
	Type        CriterionType `json:"type" yaml:"type"`
	Description string        `json:"description,omitempty" yaml:"description,omitempty"`
}

// Examiner represents a lecturer who can sit on an exam committee
type Examiner struct {
	ID                 int      `json:"id" yaml:"id"`
	Name               string   `json:"name" yaml:"name"`
	Title              string   `json:"title,omitempty" yaml:"title,omitempty"`
	Expertise          []string `json:"expertise" yaml:"expertise"`
	ExperienceYears    int      `json:"experience_years" yaml:"experience_years"`
	Workload           int      `json:"workload" yaml:"workload"` // committed exams before this run
	AvailabilityScore  float64  `json:"availability_score" yaml:"availability_score"` // 1-5 scale
	CompetencyScore    float64  `json:"competency_score" yaml:"competency_score"`     // 1-5 scale
	AvailableTimeslots []int    `json:"available_timeslots" yaml:"available_timeslots"`
}

// Student represents a thesis candidate awaiting examination
type Student struct {
	ID                 int     `json:"id" yaml:"id"`
	Name               string  `json:"name" yaml:"name"`
	NIM                string  `json:"nim,omitempty" yaml:"nim,omitempty"` // student registration number
	ThesisTitle        string  `json:"thesis_title,omitempty" yaml:"thesis_title,omitempty"`
	ThesisField        string  `json:"thesis_field" yaml:"thesis_field"`
	SupervisorID       int     `json:"supervisor_id" yaml:"supervisor_id"`
	GPA                float64 `json:"gpa,omitempty" yaml:"gpa,omitempty"`
	ThesisQuality      float64 `json:"thesis_quality,omitempty" yaml:"thesis_quality,omitempty"` // 1-5 scale
	PreferredTimeslots []int   `json:"preferred_timeslots,omitempty" yaml:"preferred_timeslots,omitempty"`
}

// Room represents an examination room
type Room struct {
	ID           int      `json:"id" yaml:"id"`
	Name         string   `json:"name" yaml:"name"`
	Capacity     int      `json:"capacity" yaml:"capacity"`
	Facilities   []string `json:"facilities" yaml:"facilities"`
	Location     string   `json:"location,omitempty" yaml:"location,omitempty"`
	QualityScore float64  `json:"quality_score" yaml:"quality_score"` // 1-5 scale
}

// Timeslot represents a bookable examination window
type Timeslot struct {
	ID        int    `json:"id" yaml:"id"`
	Day       string `json:"day" yaml:"day"` // Date format: "2006-01-02"
	StartTime string `json:"start_time" yaml:"start_time"`
	EndTime   string `json:"end_time" yaml:"end_time"`
	Session   string `json:"session,omitempty" yaml:"session,omitempty"` // e.g. "morning"
}

// ExamSession represents one thesis defense to be scheduled
type ExamSession struct {
	ID                int     `json:"id" yaml:"id"`
	StudentID         int     `json:"student_id" yaml:"student_id"`
	DurationMinutes   int     `json:"duration_minutes" yaml:"duration_minutes"`
	RequiredExaminers int     `json:"required_examiners" yaml:"required_examiners"`
	Priority          float64 `json:"priority" yaml:"priority"` // higher schedules first, typically in [0,1]
}

// Assignment represents one committed exam placement
type Assignment struct {
	ExamID        int     `json:"exam_id" yaml:"exam_id"`
	StudentID     int     `json:"student_id" yaml:"student_id"`
	StudentName   string  `json:"student_name" yaml:"student_name"`
	TimeslotID    int     `json:"timeslot_id" yaml:"timeslot_id"`
	RoomID        int     `json:"room_id" yaml:"room_id"`
	ExaminerIDs   []int   `json:"examiner_ids" yaml:"examiner_ids"` // supervisor first
	Score         float64 `json:"score" yaml:"score"`
	ExaminerScore float64 `json:"examiner_score" yaml:"examiner_score"`
	RoomScore     float64 `json:"room_score" yaml:"room_score"`
}

// Solution represents the outcome of one allocation run
type Solution struct {
	RunID             string             `json:"run_id,omitempty" yaml:"run_id,omitempty"`
	Method            string             `json:"method" yaml:"method"`
	Assignments       []Assignment       `json:"assignments" yaml:"assignments"`
	InfeasibleExamIDs []int              `json:"infeasible_exam_ids" yaml:"infeasible_exam_ids"`
	CriteriaWeights   map[string]float64 `json:"criteria_weights" yaml:"criteria_weights"`
	TotalSatisfaction float64            `json:"total_satisfaction" yaml:"total_satisfaction"`
	CreatedAt         time.Time          `json:"created_at,omitempty" yaml:"created_at,omitempty"`
}

// ScheduleQuality summarizes how well an allocation run went
type ScheduleQuality struct {
	TotalExams       int     `json:"total_exams" yaml:"total_exams"`
	ScheduledExams   int     `json:"scheduled_exams" yaml:"scheduled_exams"`
	UnscheduledExams int     `json:"unscheduled_exams" yaml:"unscheduled_exams"`
	SuccessRate      float64 `json:"success_rate" yaml:"success_rate"`
	AverageScore     float64 `json:"average_score" yaml:"average_score"`
	MinScore         float64 `json:"min_score" yaml:"min_score"`
	MaxScore         float64 `json:"max_score" yaml:"max_score"`
	ScoreStdDev      float64 `json:"score_std_dev" yaml:"score_std_dev"`
}

// Dataset bundles every input an allocation run needs
type Dataset struct {
	Students  []Student     `json:"students" yaml:"students"`
	Examiners []Examiner    `json:"examiners" yaml:"examiners"`
	Rooms     []Room        `json:"rooms" yaml:"rooms"`
	Timeslots []Timeslot    `json:"timeslots" yaml:"timeslots"`
	Sessions  []ExamSession `json:"sessions" yaml:"sessions"`
	Criteria  []Criterion   `json:"criteria,omitempty" yaml:"criteria,omitempty"`
}

// StudentByID returns the student with the given ID, or nil
func (d *Dataset) StudentByID(id int) *Student {
	for i := range d.Students {
		if d.Students[i].ID == id {
			return &d.Students[i]
		}
	}
	return nil
}

// ExaminerByID returns the examiner with the given ID, or nil
func (d *Dataset) ExaminerByID(id int) *Examiner {
	for i := range d.Examiners {
		if d.Examiners[i].ID == id {
			return &d.Examiners[i]
		}
	}
	return nil
}

// TimeslotByID returns the timeslot with the given ID, or nil
func (d *Dataset) TimeslotByID(id int) *Timeslot {
	for i := range d.Timeslots {
		if d.Timeslots[i].ID == id {
			return &d.Timeslots[i]
		}
	}
	return nil
}

// RoomByID returns the room with the given ID, or nil
func (d *Dataset) RoomByID(id int) *Room {
	for i := range d.Rooms {
		if d.Rooms[i].ID == id {
			return &d.Rooms[i]
		}
	}
	return nil
}

// SessionByID returns the exam session with the given ID, or nil
func (d *Dataset) SessionByID(id int) *ExamSession {
	for i := range d.Sessions {
		if d.Sessions[i].ID == id {
			return &d.Sessions[i]
		}
	}
	return nil
}
