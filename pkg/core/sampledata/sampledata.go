// Package sampledata ships a small but realistic thesis-exam dataset for
// demos, manual testing and first runs without institutional data.
package sampledata

import (
	"time"

	"github.com/SultanDF/exam-dss/pkg/core/model"
)

// DefaultTimeslotRule spreads exam slots over four consecutive weekdays
const DefaultTimeslotRule = "FREQ=DAILY;BYDAY=MO,TU,WE,TH,FR;COUNT=4"

// defaultStart pins the sample exam week to a fixed Monday so generated
// datasets are reproducible
var defaultStart = time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)

// Default returns the complete demonstration dataset: five thesis
// candidates, eight examiners across the covered research fields, five
// rooms and an exam week of eight timeslots.
func Default() *model.Dataset {
	timeslots, err := TimeslotsFromRule(DefaultTimeslotRule, defaultStart)
	if err != nil {
		// The built-in rule is a constant; failing to expand it is a bug
		panic(err)
	}
	return &model.Dataset{
		Students:  students(),
		Examiners: examiners(),
		Rooms:     rooms(),
		Timeslots: timeslots,
		Sessions:  sessions(),
	}
}

// WithRule returns the demonstration dataset with its timeslots expanded
// from the given recurrence rule instead of the built-in one. Examiner
// availability still references slot IDs 1-8, so rules producing fewer
// days shrink the feasible window rather than breaking the dataset.
func WithRule(ruleStr string) (*model.Dataset, error) {
	timeslots, err := TimeslotsFromRule(ruleStr, defaultStart)
	if err != nil {
		return nil, err
	}

	dataset := Default()
	dataset.Timeslots = timeslots
	return dataset, nil
}

func students() []model.Student {
	return []model.Student{
		{
			ID: 1, Name: "Andi Prasetyo", NIM: "21104001",
			ThesisTitle: "Prediksi Curah Hujan Harian dengan Random Forest",
			ThesisField: "machine learning data science",
			SupervisorID: 1, GPA: 3.72, ThesisQuality: 4.2,
			PreferredTimeslots: []int{1, 2, 3},
		},
		{
			ID: 2, Name: "Siti Rahayu", NIM: "21104002",
			ThesisTitle: "Aplikasi Kasir UMKM Berbasis Web",
			ThesisField: "web development software engineering",
			SupervisorID: 2, GPA: 3.58, ThesisQuality: 4.0,
			PreferredTimeslots: []int{3, 4},
		},
		{
			ID: 3, Name: "Bayu Nugraha", NIM: "21104003",
			ThesisTitle: "Deteksi Intrusi Jaringan Kampus Berbasis Anomali",
			ThesisField: "network security cybersecurity",
			SupervisorID: 3, GPA: 3.81, ThesisQuality: 4.4,
			PreferredTimeslots: []int{1, 5},
		},
		{
			ID: 4, Name: "Melati Kusuma", NIM: "21104004",
			ThesisTitle: "Dasbor Analitik Penjualan untuk Ritel Modern",
			ThesisField: "big data business intelligence",
			SupervisorID: 4, GPA: 3.66, ThesisQuality: 4.1,
			PreferredTimeslots: []int{5, 6},
		},
		{
			ID: 5, Name: "Raka Firmansyah", NIM: "21104005",
			ThesisTitle: "Game Edukasi Matematika Berbasis Android",
			ThesisField: "game development mobile programming",
			SupervisorID: 5, GPA: 3.49, ThesisQuality: 3.8,
			PreferredTimeslots: []int{2, 7},
		},
	}
}

func examiners() []model.Examiner {
	return []model.Examiner{
		{
			ID: 1, Name: "Prof. Dr. Agus Santoso, M.Kom", Title: "Professor",
			Expertise:       []string{"machine learning", "artificial intelligence", "data science"},
			ExperienceYears: 15, Workload: 2, AvailabilityScore: 4.0, CompetencyScore: 4.8,
			AvailableTimeslots: []int{1, 2, 3, 4},
		},
		{
			ID: 2, Name: "Dr. Ratna Wulandari, M.T", Title: "Associate Professor",
			Expertise:       []string{"web development", "software engineering", "javascript"},
			ExperienceYears: 12, Workload: 3, AvailabilityScore: 4.2, CompetencyScore: 4.5,
			AvailableTimeslots: []int{2, 3, 4, 5},
		},
		{
			ID: 3, Name: "Dr. Bima Sudrajat, M.Kom", Title: "Associate Professor",
			Expertise:       []string{"network security", "cybersecurity", "cryptography"},
			ExperienceYears: 10, Workload: 1, AvailabilityScore: 4.5, CompetencyScore: 4.6,
			AvailableTimeslots: []int{1, 3, 5, 6},
		},
		{
			ID: 4, Name: "Dr. Intan Permatasari, M.Sc", Title: "Assistant Professor",
			Expertise:       []string{"big data", "data analytics", "business intelligence"},
			ExperienceYears: 8, Workload: 2, AvailabilityScore: 4.3, CompetencyScore: 4.4,
			AvailableTimeslots: []int{3, 4, 5, 6},
		},
		{
			ID: 5, Name: "Dr. Fikri Ramadhan, M.T", Title: "Assistant Professor",
			Expertise:       []string{"game development", "mobile programming", "computer graphics"},
			ExperienceYears: 7, Workload: 1, AvailabilityScore: 4.7, CompetencyScore: 4.2,
			AvailableTimeslots: []int{1, 2, 4, 6, 7},
		},
		{
			ID: 6, Name: "Prof. Dr. Sri Mulyani, M.Kom", Title: "Professor",
			Expertise:       []string{"database systems", "information systems", "software architecture"},
			ExperienceYears: 18, Workload: 4, AvailabilityScore: 3.8, CompetencyScore: 4.9,
			AvailableTimeslots: []int{2, 3, 5, 8},
		},
		{
			ID: 7, Name: "Dr. Hadi Prabowo, M.T", Title: "Associate Professor",
			Expertise:       []string{"algorithms", "optimization", "data structures"},
			ExperienceYears: 11, Workload: 2, AvailabilityScore: 4.1, CompetencyScore: 4.7,
			AvailableTimeslots: []int{1, 2, 3, 4, 5, 6, 7, 8},
		},
		{
			ID: 8, Name: "Dr. Laras Sekarwangi, M.Kom", Title: "Assistant Professor",
			Expertise:       []string{"human computer interaction", "user experience"},
			ExperienceYears: 6, Workload: 1, AvailabilityScore: 4.6, CompetencyScore: 4.1,
			AvailableTimeslots: []int{1, 3, 4, 5, 7},
		},
	}
}

func rooms() []model.Room {
	return []model.Room{
		{
			ID: 1, Name: "Ruang Sidang A", Capacity: 25,
			Facilities: []string{"projector", "whiteboard", "sound_system", "air_conditioning"},
			Location:   "Gedung Informatika Lt. 3", QualityScore: 4.5,
		},
		{
			ID: 2, Name: "Ruang Sidang B", Capacity: 20,
			Facilities: []string{"projector", "whiteboard", "air_conditioning"},
			Location:   "Gedung Informatika Lt. 3", QualityScore: 4.0,
		},
		{
			ID: 3, Name: "Ruang Sidang C", Capacity: 15,
			Facilities: []string{"projector", "whiteboard"},
			Location:   "Gedung Informatika Lt. 2", QualityScore: 3.5,
		},
		{
			ID: 4, Name: "Ruang Seminar Utama", Capacity: 30,
			Facilities: []string{"projector", "whiteboard", "sound_system", "air_conditioning", "microphone"},
			Location:   "Gedung Informatika Lt. 4", QualityScore: 4.8,
		},
		{
			ID: 5, Name: "Lab Komputer 1", Capacity: 18,
			Facilities: []string{"computers", "projector", "whiteboard", "air_conditioning"},
			Location:   "Gedung Informatika Lt. 1", QualityScore: 4.2,
		},
	}
}

func sessions() []model.ExamSession {
	return []model.ExamSession{
		{ID: 1, StudentID: 1, DurationMinutes: 120, RequiredExaminers: 3, Priority: 1.0},
		{ID: 2, StudentID: 2, DurationMinutes: 120, RequiredExaminers: 3, Priority: 0.9},
		{ID: 3, StudentID: 3, DurationMinutes: 120, RequiredExaminers: 3, Priority: 0.95},
		{ID: 4, StudentID: 4, DurationMinutes: 120, RequiredExaminers: 3, Priority: 0.85},
		{ID: 5, StudentID: 5, DurationMinutes: 120, RequiredExaminers: 3, Priority: 0.8},
	}
}
