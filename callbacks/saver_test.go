package callbacks

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantatron/wavetrain/checkpoints"
)

func TestSaverWritesPeriodicAndFinalCheckpoints(t *testing.T) {
	dir := t.TempDir()
	saver := NewSaver(dir, 2)
	state := newFakeState()

	saver.OnTrainStart(state)
	for epoch := 1; epoch <= 5; epoch++ {
		saver.OnEpochEnd(state, epoch)
	}
	saver.OnTrainEnd(state)

	require.NoError(t, saver.Err())

	for _, name := range []string{"epoch-0002.json", "epoch-0004.json", "final.json"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}
	_, err := os.Stat(filepath.Join(dir, "epoch-0003.json"))
	assert.True(t, os.IsNotExist(err))

	final, err := checkpoints.Load(filepath.Join(dir, "final.json"))
	require.NoError(t, err)
	assert.Equal(t, 5, final.Epoch)
	assert.Equal(t, state.id, final.Metadata.RunID)
	assert.Equal(t, "test_model", final.Model)
}

func TestSaverCheckpointRoundTrips(t *testing.T) {
	dir := t.TempDir()
	saver := NewSaver(dir, 1)
	state := newFakeState()
	require.NoError(t, state.w.SetParameters(map[string][]float64{"weights": {1, 2, 3, 4}}))

	saver.OnTrainStart(state)
	saver.OnEpochEnd(state, 1)

	cp, err := checkpoints.Load(filepath.Join(dir, "epoch-0001.json"))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3, 4}, cp.Parameters["weights"])
	assert.Equal(t, 0.01, cp.LearningRate)
}

func TestSaverRetainsFirstErrorAndContinues(t *testing.T) {
	saver := NewSaver(filepath.Join(t.TempDir(), "missing", "nested"), 1)
	state := newFakeState()

	saver.OnTrainStart(state)
	saver.OnEpochEnd(state, 1)
	saver.OnEpochEnd(state, 2)

	assert.Error(t, saver.Err())
	assert.False(t, state.stopped)
}

func TestSaverErrorHandlerCanStopTheRun(t *testing.T) {
	var seen error
	saver := NewSaver(filepath.Join(t.TempDir(), "missing"), 1).
		WithErrorHandler(func(state State, err error) {
			seen = err
			state.RequestStop()
		})
	state := newFakeState()

	saver.OnTrainStart(state)
	saver.OnEpochEnd(state, 1)

	assert.Error(t, seen)
	assert.True(t, state.stopped)
}
