package callbacks

import "time"

// Timer records wall-clock durations of the run and of each epoch.
type Timer struct {
	Base

	trainStart time.Time
	epochStart time.Time
	total      time.Duration
	epochs     []time.Duration
}

// NewTimer creates a Timer callback.
func NewTimer() *Timer {
	return &Timer{}
}

func (t *Timer) OnTrainStart(State) {
	t.trainStart = time.Now()
	t.total = 0
	t.epochs = t.epochs[:0]
}

func (t *Timer) OnTrainEnd(State) {
	t.total = time.Since(t.trainStart)
}

func (t *Timer) OnEpochStart(_ State, _ int) {
	t.epochStart = time.Now()
}

func (t *Timer) OnEpochEnd(_ State, _ int) {
	t.epochs = append(t.epochs, time.Since(t.epochStart))
}

// Total returns the duration of the whole run, valid after OnTrainEnd.
func (t *Timer) Total() time.Duration {
	return t.total
}

// EpochDurations returns the duration of every completed epoch in order.
func (t *Timer) EpochDurations() []time.Duration {
	return t.epochs
}

// MeanEpoch returns the average epoch duration, or 0 before the first epoch
// completes.
func (t *Timer) MeanEpoch() time.Duration {
	if len(t.epochs) == 0 {
		return 0
	}
	var sum time.Duration
	for _, d := range t.epochs {
		sum += d
	}
	return sum / time.Duration(len(t.epochs))
}
