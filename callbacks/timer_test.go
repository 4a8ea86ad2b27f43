package callbacks

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimerRecordsEpochsAndTotal(t *testing.T) {
	timer := NewTimer()
	state := newFakeState()

	timer.OnTrainStart(state)
	for epoch := 1; epoch <= 3; epoch++ {
		timer.OnEpochStart(state, epoch)
		time.Sleep(time.Millisecond)
		timer.OnEpochEnd(state, epoch)
	}
	timer.OnTrainEnd(state)

	require.Len(t, timer.EpochDurations(), 3)
	for _, d := range timer.EpochDurations() {
		assert.Greater(t, d, time.Duration(0))
	}
	assert.GreaterOrEqual(t, timer.Total(), timer.MeanEpoch())
	assert.Greater(t, timer.MeanEpoch(), time.Duration(0))
}

func TestTimerResetsPerRun(t *testing.T) {
	timer := NewTimer()
	state := newFakeState()

	timer.OnTrainStart(state)
	timer.OnEpochStart(state, 1)
	timer.OnEpochEnd(state, 1)
	timer.OnTrainEnd(state)

	timer.OnTrainStart(state)
	assert.Empty(t, timer.EpochDurations())
	assert.Equal(t, time.Duration(0), timer.MeanEpoch())
}
