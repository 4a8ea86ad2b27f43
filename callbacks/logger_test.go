package callbacks

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantatron/wavetrain/wavefunction"
)

func TestLoggerReportsEveryNthEpoch(t *testing.T) {
	log, hook := test.NewNullLogger()
	cb := NewLogger(log, 2)
	state := newFakeState()

	cb.OnTrainStart(state)
	for epoch := 1; epoch <= 4; epoch++ {
		cb.OnEpochEnd(state, epoch)
	}
	cb.OnTrainEnd(state)

	entries := hook.AllEntries()
	require.Len(t, entries, 4) // start, epochs 2 and 4, end

	assert.Equal(t, "training started", entries[0].Message)
	assert.Equal(t, state.id, entries[0].Data["run_id"])
	assert.Equal(t, "test_model", entries[0].Data["model"])

	assert.Equal(t, "epoch complete", entries[1].Message)
	assert.Equal(t, 2, entries[1].Data["epoch"])
	assert.Equal(t, 4, entries[2].Data["epoch"])

	assert.Equal(t, "training finished", entries[3].Message)
}

func TestLoggerIncludesEvaluatorMetrics(t *testing.T) {
	e := NewMetricEvaluator(1, map[string]Metric{
		"loss": func(wavefunction.Wavefunction) float64 { return 0.25 },
	})
	log, hook := test.NewNullLogger()
	cb := NewLogger(log, 1).WithEvaluator(e)
	state := newFakeState()

	e.OnTrainStart(state)
	e.OnEpochEnd(state, 1)
	cb.OnEpochEnd(state, 1)

	entries := hook.AllEntries()
	require.Len(t, entries, 1)
	assert.Equal(t, 0.25, entries[0].Data["loss"])
	assert.Equal(t, 0.01, entries[0].Data["learning_rate"])
}

func TestLoggerDefaults(t *testing.T) {
	cb := NewLogger(nil, 0)

	assert.Equal(t, logrus.StandardLogger(), cb.log)
	assert.Equal(t, 1, cb.every)
}
