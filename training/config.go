package training

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the knobs of a training run. It is YAML-loadable so run
// settings can live next to the data they describe.
type Config struct {
	Epochs       int     `yaml:"epochs"`
	BatchSize    int     `yaml:"batch_size"`
	Shuffle      bool    `yaml:"shuffle"`
	Seed         int64   `yaml:"seed"`
	LearningRate float64 `yaml:"learning_rate"`

	// Scheduler selects a learning rate schedule: "", "step", "exponential"
	// or "cosine". An empty value keeps the base rate constant.
	Scheduler       string  `yaml:"scheduler"`
	SchedulerEvery  int     `yaml:"scheduler_every"`
	SchedulerFactor float64 `yaml:"scheduler_factor"`
	SchedulerPeriod int     `yaml:"scheduler_period"`
	SchedulerFloor  float64 `yaml:"scheduler_floor"`

	// CheckpointDir enables periodic checkpoints when non-empty.
	CheckpointDir   string `yaml:"checkpoint_dir"`
	CheckpointEvery int    `yaml:"checkpoint_every"`

	// LogEvery controls how often (in epochs) the logging callback reports.
	LogEvery int `yaml:"log_every"`
}

// DefaultConfig returns a config with workable defaults for small runs.
func DefaultConfig() Config {
	return Config{
		Epochs:       100,
		BatchSize:    100,
		Shuffle:      true,
		LearningRate: 0.01,
		LogEvery:     10,
	}
}

// LoadConfig reads a YAML config file and validates it.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects configs the trainer cannot run with.
func (c Config) Validate() error {
	if c.Epochs <= 0 {
		return fmt.Errorf("epochs must be positive, got %d", c.Epochs)
	}
	if c.BatchSize <= 0 {
		return fmt.Errorf("batch_size must be positive, got %d", c.BatchSize)
	}
	if c.LearningRate <= 0 {
		return fmt.Errorf("learning_rate must be positive, got %g", c.LearningRate)
	}
	switch c.Scheduler {
	case "", "step", "exponential", "cosine":
	default:
		return fmt.Errorf("unknown scheduler %q", c.Scheduler)
	}
	if c.CheckpointDir != "" && c.CheckpointEvery < 0 {
		return fmt.Errorf("checkpoint_every must not be negative, got %d", c.CheckpointEvery)
	}
	return nil
}

// BuildScheduler constructs the LRScheduler the config names, or nil when the
// rate is constant.
func (c Config) BuildScheduler() LRScheduler {
	switch c.Scheduler {
	case "step":
		return NewStepDecay(c.SchedulerEvery, c.SchedulerFactor)
	case "exponential":
		return NewExponentialDecay(c.SchedulerFactor)
	case "cosine":
		return NewCosineAnnealing(c.SchedulerPeriod, c.SchedulerFloor)
	default:
		return nil
	}
}
