package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"
)

// CriterionOverride replaces one built-in committee selection criterion
type CriterionOverride struct {
	ID          int     `yaml:"id,omitempty"`
	Name        string  `yaml:"name" validate:"required"`
	Weight      float64 `yaml:"weight" validate:"required,gt=0"`
	Type        string  `yaml:"type" validate:"required,oneof=benefit cost"`
	Description string  `yaml:"description,omitempty"`
}

// SchedulingConfig tunes the scoring engine and the allocator. Zero fields
// keep their built-in defaults, so an empty section is valid.
type SchedulingConfig struct {
	Method               string              `yaml:"method,omitempty" validate:"omitempty,oneof=saw topsis"`
	RequiredExaminers    int                 `yaml:"requiredExaminers,omitempty" validate:"omitempty,min=1"`
	SupervisorScore      float64             `yaml:"supervisorScore,omitempty" validate:"omitempty,gt=0,lte=1"`
	CommitteeWeight      float64             `yaml:"committeeWeight,omitempty" validate:"omitempty,gt=0,lte=1"`
	RoomWeight           float64             `yaml:"roomWeight,omitempty" validate:"omitempty,gt=0,lte=1"`
	RoomCapacityWeight   float64             `yaml:"roomCapacityWeight,omitempty" validate:"omitempty,gt=0,lte=1"`
	RoomQualityWeight    float64             `yaml:"roomQualityWeight,omitempty" validate:"omitempty,gt=0,lte=1"`
	RoomFacilityWeight   float64             `yaml:"roomFacilityWeight,omitempty" validate:"omitempty,gt=0,lte=1"`
	RoomCapacityBaseline int                 `yaml:"roomCapacityBaseline,omitempty" validate:"omitempty,min=1"`
	Criteria             []CriterionOverride `yaml:"criteria,omitempty" validate:"dive"`
}

// DatabaseConfig points at the Postgres instance used for solution
// history. An empty DSN disables persistence.
type DatabaseConfig struct {
	DSN string `yaml:"dsn,omitempty"`
}

// ServerConfig holds the HTTP API settings
type ServerConfig struct {
	Addr string `yaml:"addr,omitempty"`
}

// PublishConfig names the Google Sheets target for published schedules
type PublishConfig struct {
	ScheduleSheetID string `yaml:"scheduleSheetID,omitempty"`
	ScheduleTab     string `yaml:"scheduleTab,omitempty"`
}

// SampleConfig controls generated demonstration data. The timeslot rule is
// an RFC 5545 recurrence describing which days get exam slots.
type SampleConfig struct {
	TimeslotRule string `yaml:"timeslotRule,omitempty"`
}

// Config represents the application configuration
type Config struct {
	Scheduling SchedulingConfig `yaml:"scheduling,omitempty"`
	Database   DatabaseConfig   `yaml:"database,omitempty"`
	Server     ServerConfig     `yaml:"server,omitempty"`
	Publish    PublishConfig    `yaml:"publish,omitempty"`
	Sample     SampleConfig     `yaml:"sample,omitempty"`
}

// Defaults applied when the config file leaves a setting unset
const (
	DefaultMethod            = "saw"
	DefaultRequiredExaminers = 3
	DefaultServerAddr        = ":8080"
	DefaultTimeslotRule      = "FREQ=DAILY;BYDAY=MO,TU,WE,TH,FR;COUNT=4"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Default returns the configuration used when no config file exists
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Scheduling.Method == "" {
		c.Scheduling.Method = DefaultMethod
	}
	if c.Scheduling.RequiredExaminers == 0 {
		c.Scheduling.RequiredExaminers = DefaultRequiredExaminers
	}
	if c.Server.Addr == "" {
		c.Server.Addr = DefaultServerAddr
	}
	if c.Sample.TimeslotRule == "" {
		c.Sample.TimeslotRule = DefaultTimeslotRule
	}
}

// Load loads and validates the configuration from exam_dss_config.yaml,
// looking in the current directory first and then in the user's home
// directory. Every setting has a usable default, so a missing file yields
// the default configuration rather than an error.
func Load() (*Config, error) {
	return LoadWithEnv("")
}

// LoadWithEnv behaves like Load but looks for an environment-suffixed file
// first. For example, env="test" looks for "exam_dss_config.test.yaml".
func LoadWithEnv(env string) (*Config, error) {
	configPath, ok := findConfigFile(env)
	if !ok {
		return Default(), nil
	}
	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// Validate validates the configuration struct and checks the sample
// timeslot rule syntax
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	if cfg.Sample.TimeslotRule != "" {
		if _, err := rrule.StrToRRule(cfg.Sample.TimeslotRule); err != nil {
			return fmt.Errorf("invalid sample timeslot rule: %w", err)
		}
	}

	return nil
}

// findConfigFile searches the current directory and then the home
// directory, preferring the environment-suffixed file name when env is set
func findConfigFile(env string) (string, bool) {
	names := []string{"exam_dss_config.yaml"}
	if env != "" {
		names = []string{"exam_dss_config." + env + ".yaml", "exam_dss_config.yaml"}
	}

	dirs := []string{"."}
	if homeDir, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, homeDir)
	}

	for _, dir := range dirs {
		for _, name := range names {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, true
			}
		}
	}
	return "", false
}
