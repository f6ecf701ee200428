package scheduler

import (
	"strings"

	"go.uber.org/zap"

	"github.com/SultanDF/exam-dss/pkg/core/model"
)

// Criterion names with built-in attribute extractors
const (
	CriterionExpertiseMatch = "expertise_match"
	CriterionCompetency     = "competency_score"
	CriterionAvailability   = "availability_score"
	CriterionWorkload       = "workload"
	CriterionExperience     = "experience_years"
)

// neutralAttribute fills matrix cells for criteria without a known extractor
const neutralAttribute = 0.5

// DefaultCriteria returns the built-in five-criterion set used whenever the
// caller supplies none. Expertise fit dominates; workload is the single
// cost criterion so busy examiners rank lower.
func DefaultCriteria() []model.Criterion {
	return []model.Criterion{
		{ID: 1, Name: CriterionExpertiseMatch, Weight: 0.30, Type: model.Benefit,
			Description: "Match between examiner expertise and the thesis field"},
		{ID: 2, Name: CriterionCompetency, Weight: 0.25, Type: model.Benefit,
			Description: "Examiner competency rating"},
		{ID: 3, Name: CriterionAvailability, Weight: 0.20, Type: model.Benefit,
			Description: "Examiner scheduling flexibility"},
		{ID: 4, Name: CriterionWorkload, Weight: 0.15, Type: model.Cost,
			Description: "Examinations already committed"},
		{ID: 5, Name: CriterionExperience, Weight: 0.10, Type: model.Benefit,
			Description: "Years of examination experience"},
	}
}

// extractor pulls one raw criterion attribute for an examiner. Values go
// into the decision matrix unscaled; the engine normalization handles
// direction and scale.
type extractor func(ex *model.Examiner, student *model.Student, workloads map[int]int) float64

// resolveExtractors binds each criterion to its attribute extractor exactly
// once per criteria set. Unknown criterion names pin the neutral value and
// warn here once rather than per matrix row.
func resolveExtractors(criteria []model.Criterion, logger *zap.Logger) []extractor {
	extractors := make([]extractor, len(criteria))
	for i, criterion := range criteria {
		switch criterion.Name {
		case CriterionExpertiseMatch:
			extractors[i] = func(ex *model.Examiner, student *model.Student, _ map[int]int) float64 {
				return expertiseMatch(student.ThesisField, ex.Expertise)
			}
		case CriterionCompetency:
			extractors[i] = func(ex *model.Examiner, _ *model.Student, _ map[int]int) float64 {
				return ex.CompetencyScore
			}
		case CriterionAvailability:
			extractors[i] = func(ex *model.Examiner, _ *model.Student, _ map[int]int) float64 {
				return ex.AvailabilityScore
			}
		case CriterionWorkload:
			extractors[i] = func(ex *model.Examiner, _ *model.Student, workloads map[int]int) float64 {
				return float64(workloads[ex.ID])
			}
		case CriterionExperience:
			extractors[i] = func(ex *model.Examiner, _ *model.Student, _ map[int]int) float64 {
				return float64(ex.ExperienceYears)
			}
		default:
			logger.Warn("No attribute extractor for criterion, using neutral value",
				zap.String("criterion", criterion.Name))
			extractors[i] = func(_ *model.Examiner, _ *model.Student, _ map[int]int) float64 {
				return neutralAttribute
			}
		}
	}
	return extractors
}

// expertiseMatch scores how well an expertise tag set covers a thesis
// field: the fraction of whitespace-separated field keywords that substring
// match some tag in either direction, case-insensitive. A field with no
// keywords scores 0.
func expertiseMatch(thesisField string, expertise []string) float64 {
	keywords := strings.Fields(strings.ToLower(thesisField))
	if len(keywords) == 0 {
		return 0
	}

	tags := make([]string, len(expertise))
	for i, tag := range expertise {
		tags[i] = strings.ToLower(tag)
	}

	matches := 0
	for _, keyword := range keywords {
		for _, tag := range tags {
			if strings.Contains(tag, keyword) || strings.Contains(keyword, tag) {
				matches++
				break
			}
		}
	}

	ratio := float64(matches) / float64(len(keywords))
	if ratio > 1 {
		ratio = 1
	}
	return ratio
}
