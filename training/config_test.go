package training

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
epochs: 50
batch_size: 32
shuffle: true
learning_rate: 0.005
scheduler: step
scheduler_every: 10
scheduler_factor: 0.5
checkpoint_dir: /tmp/run1
checkpoint_every: 5
log_every: 2
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 50, cfg.Epochs)
	assert.Equal(t, 32, cfg.BatchSize)
	assert.True(t, cfg.Shuffle)
	assert.Equal(t, 0.005, cfg.LearningRate)
	assert.Equal(t, "/tmp/run1", cfg.CheckpointDir)
	assert.Equal(t, 5, cfg.CheckpointEvery)
	assert.Equal(t, 2, cfg.LogEvery)

	sched := cfg.BuildScheduler()
	require.NotNil(t, sched)
	assert.Equal(t, "step", sched.Name())
	assert.InDelta(t, 0.0025, sched.LearningRate(11, 0.005), 1e-12)
}

func TestLoadConfigAppliesDefaults(t *testing.T) {
	path := writeConfig(t, "epochs: 10\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	defaults := DefaultConfig()
	assert.Equal(t, 10, cfg.Epochs)
	assert.Equal(t, defaults.BatchSize, cfg.BatchSize)
	assert.Equal(t, defaults.LearningRate, cfg.LearningRate)
	assert.Nil(t, cfg.BuildScheduler())
}

func TestLoadConfigErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := LoadConfig(writeConfig(t, "epochs: [not an int\n"))
		assert.Error(t, err)
	})

	t.Run("invalid values", func(t *testing.T) {
		_, err := LoadConfig(writeConfig(t, "epochs: -3\n"))
		assert.ErrorContains(t, err, "epochs must be positive")
	})
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"zero epochs", func(c *Config) { c.Epochs = 0 }, "epochs"},
		{"zero batch size", func(c *Config) { c.BatchSize = 0 }, "batch_size"},
		{"zero learning rate", func(c *Config) { c.LearningRate = 0 }, "learning_rate"},
		{"unknown scheduler", func(c *Config) { c.Scheduler = "linear" }, "unknown scheduler"},
		{"negative checkpoint period", func(c *Config) {
			c.CheckpointDir = "/tmp/x"
			c.CheckpointEvery = -1
		}, "checkpoint_every"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}

func TestBuildSchedulerVariants(t *testing.T) {
	cfg := DefaultConfig()

	cfg.Scheduler = "exponential"
	cfg.SchedulerFactor = 0.9
	assert.Equal(t, "exponential", cfg.BuildScheduler().Name())

	cfg.Scheduler = "cosine"
	cfg.SchedulerPeriod = 10
	assert.Equal(t, "cosine", cfg.BuildScheduler().Name())
}
