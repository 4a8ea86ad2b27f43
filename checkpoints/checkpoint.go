// Package checkpoints persists wavefunction training state as JSON so a run
// can be inspected or resumed later.
package checkpoints

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/quantatron/wavetrain/wavefunction"
)

const (
	// FormatVersion is bumped when the checkpoint layout changes.
	FormatVersion = "1"

	framework = "wavetrain"
)

// Metadata identifies where and when a checkpoint was taken.
type Metadata struct {
	Framework string    `json:"framework"`
	Version   string    `json:"version"`
	RunID     uuid.UUID `json:"run_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Checkpoint captures the training position and the full parameter set of the
// wavefunction at the end of an epoch.
type Checkpoint struct {
	Metadata     Metadata             `json:"metadata"`
	Epoch        int                  `json:"epoch"`
	LearningRate float64              `json:"learning_rate"`
	Model        string               `json:"model"`
	Parameters   map[string][]float64 `json:"parameters"`
}

// New builds a checkpoint of w at the given epoch.
func New(runID uuid.UUID, w wavefunction.Wavefunction, epoch int, lr float64) *Checkpoint {
	params := make(map[string][]float64)
	for name, vec := range w.Parameters() {
		copied := make([]float64, len(vec))
		copy(copied, vec)
		params[name] = copied
	}
	return &Checkpoint{
		Metadata: Metadata{
			Framework: framework,
			Version:   FormatVersion,
			RunID:     runID,
			CreatedAt: time.Now().UTC(),
		},
		Epoch:        epoch,
		LearningRate: lr,
		Model:        w.Name(),
		Parameters:   params,
	}
}

// Save writes the checkpoint to path. The write is atomic: the file appears
// complete or not at all, so a crash mid-save never corrupts an existing
// checkpoint.
func (c *Checkpoint) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding checkpoint: %w", err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".checkpoint-*.json")
	if err != nil {
		return fmt.Errorf("creating checkpoint file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing checkpoint: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing checkpoint file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("finalizing checkpoint %s: %w", path, err)
	}
	return nil
}

// Load reads a checkpoint from path.
func Load(path string) (*Checkpoint, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading checkpoint: %w", err)
	}
	var c Checkpoint
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decoding checkpoint %s: %w", path, err)
	}
	if c.Metadata.Framework != framework {
		return nil, fmt.Errorf("checkpoint %s: unexpected framework %q", path, c.Metadata.Framework)
	}
	if c.Metadata.Version != FormatVersion {
		return nil, fmt.Errorf("checkpoint %s: unsupported version %q", path, c.Metadata.Version)
	}
	return &c, nil
}

// Restore applies the checkpoint's parameters to w. The wavefunction's model
// name must match the one the checkpoint was taken from.
func (c *Checkpoint) Restore(w wavefunction.Wavefunction) error {
	if w.Name() != c.Model {
		return fmt.Errorf("checkpoint is for model %q, not %q", c.Model, w.Name())
	}
	if err := w.SetParameters(c.Parameters); err != nil {
		return fmt.Errorf("restoring parameters: %w", err)
	}
	return nil
}
