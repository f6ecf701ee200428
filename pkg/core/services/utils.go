package services

import (
	"github.com/SultanDF/exam-dss/internal/config"
	"github.com/SultanDF/exam-dss/pkg/core/model"
	"github.com/SultanDF/exam-dss/pkg/core/scheduler"
)

// schedulerOptions maps the scheduling config onto allocator options.
// Zero config fields stay zero so the allocator applies its own defaults.
func schedulerOptions(cfg *config.Config) scheduler.Options {
	if cfg == nil {
		return scheduler.Options{}
	}

	return scheduler.Options{
		SupervisorScore:    cfg.Scheduling.SupervisorScore,
		CommitteeWeight:    cfg.Scheduling.CommitteeWeight,
		RoomWeight:         cfg.Scheduling.RoomWeight,
		RoomCapacityWeight: cfg.Scheduling.RoomCapacityWeight,
		RoomQualityWeight:  cfg.Scheduling.RoomQualityWeight,
		RoomFacilityWeight: cfg.Scheduling.RoomFacilityWeight,
		CapacityBaseline:   cfg.Scheduling.RoomCapacityBaseline,
	}
}

// criteriaForRun picks the committee selection criteria for a run.
// Dataset criteria beat config criteria, config criteria beat the
// built-in defaults. An empty result means "use the defaults" and is
// resolved by the scheduler itself.
func criteriaForRun(cfg *config.Config, dataset *model.Dataset) []model.Criterion {
	if dataset != nil && len(dataset.Criteria) > 0 {
		return dataset.Criteria
	}
	if cfg == nil || len(cfg.Scheduling.Criteria) == 0 {
		return nil
	}

	criteria := make([]model.Criterion, 0, len(cfg.Scheduling.Criteria))
	for i, override := range cfg.Scheduling.Criteria {
		id := override.ID
		if id == 0 {
			id = i + 1
		}
		criteria = append(criteria, model.Criterion{
			ID:          id,
			Name:        override.Name,
			Weight:      override.Weight,
			Type:        model.CriterionType(override.Type),
			Description: override.Description,
		})
	}
	return criteria
}

// ActiveCriteria returns the criterion set a run without dataset criteria
// would use: the config override when one is present, the built-in
// defaults otherwise.
func ActiveCriteria(cfg *config.Config) []model.Criterion {
	if criteria := criteriaForRun(cfg, nil); len(criteria) > 0 {
		return criteria
	}
	return scheduler.DefaultCriteria()
}

// defaultMethod resolves an empty method against the configured one
func defaultMethod(cfg *config.Config, method string) string {
	if method != "" {
		return method
	}
	if cfg != nil && cfg.Scheduling.Method != "" {
		return cfg.Scheduling.Method
	}
	return config.DefaultMethod
}
