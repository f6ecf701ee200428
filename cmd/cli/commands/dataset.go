package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/SultanDF/exam-dss/internal/config"
	"github.com/SultanDF/exam-dss/pkg/core/model"
	"github.com/SultanDF/exam-dss/pkg/core/sampledata"
)

// resolveDataset loads the dataset for a run: the given YAML or JSON file,
// or the bundled sample set when path is empty.
func resolveDataset(cfg *config.Config, path string) (*model.Dataset, error) {
	if path == "" {
		return sampleDataset(cfg)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset file: %w", err)
	}

	dataset := &model.Dataset{}
	if filepath.Ext(path) == ".json" {
		if err := json.Unmarshal(data, dataset); err != nil {
			return nil, fmt.Errorf("failed to parse dataset file %s: %w", path, err)
		}
		return dataset, nil
	}

	if err := yaml.Unmarshal(data, dataset); err != nil {
		return nil, fmt.Errorf("failed to parse dataset file %s: %w", path, err)
	}
	return dataset, nil
}

// sampleDataset expands the bundled dataset, honoring a configured
// timeslot recurrence rule
func sampleDataset(cfg *config.Config) (*model.Dataset, error) {
	if cfg != nil && cfg.Sample.TimeslotRule != "" && cfg.Sample.TimeslotRule != sampledata.DefaultTimeslotRule {
		return sampledata.WithRule(cfg.Sample.TimeslotRule)
	}
	return sampledata.Default(), nil
}
