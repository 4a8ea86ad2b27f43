// Package training drives the epoch/batch training loop for a wavefunction
// model and dispatches lifecycle hooks to registered callbacks. The numerical
// update itself is supplied by the caller as a Stepper; this package owns only
// the loop, the data feed, and the hook schedule.
package training

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/quantatron/wavetrain/callbacks"
	"github.com/quantatron/wavetrain/wavefunction"
)

// Stepper performs one parameter update for a batch of samples. It is the
// caller-supplied core of the training loop.
type Stepper interface {
	Step(w wavefunction.Wavefunction, batch []Sample, lr float64) error
}

// StepperFunc adapts a plain function to the Stepper interface.
type StepperFunc func(w wavefunction.Wavefunction, batch []Sample, lr float64) error

func (f StepperFunc) Step(w wavefunction.Wavefunction, batch []Sample, lr float64) error {
	return f(w, batch, lr)
}

// Trainer runs the training loop over a wavefunction model, invoking every
// registered callback at the lifecycle points described in the callbacks
// package.
type Trainer struct {
	model     wavefunction.Wavefunction
	stepper   Stepper
	loader    *DataLoader
	config    Config
	callbacks callbacks.List
}

// NewTrainer creates a trainer. Callbacks are attached with Register before
// Fit is called.
func NewTrainer(model wavefunction.Wavefunction, stepper Stepper, loader *DataLoader, config Config) *Trainer {
	return &Trainer{
		model:   model,
		stepper: stepper,
		loader:  loader,
		config:  config,
	}
}

// Register appends cb to the dispatch order. Callbacks are invoked in the
// order they were registered, one after another.
func (t *Trainer) Register(cb callbacks.Callback) {
	t.callbacks = t.callbacks.Append(cb)
}

// fitState is the trainer-owned handle passed to hooks. It grants callbacks
// exactly the callbacks.State capability surface and nothing else. All access
// happens on the training goroutine; no locking is needed.
type fitState struct {
	runID uuid.UUID
	model wavefunction.Wavefunction
	lr    float64
	stop  bool
}

func (s *fitState) RunID() uuid.UUID {
	return s.runID
}

func (s *fitState) Wavefunction() wavefunction.Wavefunction {
	return s.model
}

func (s *fitState) LearningRate() float64 {
	return s.lr
}

func (s *fitState) SetLearningRate(lr float64) {
	s.lr = lr
}

func (s *fitState) RequestStop() {
	s.stop = true
}

// Fit runs the configured number of epochs. Hook schedule, per run:
// OnTrainStart once; for each epoch 1..N, OnEpochStart, then
// OnBatchStart/OnBatchEnd around every batch (batches numbered from 0), then
// OnEpochEnd; OnTrainEnd exactly once at the end, including runs aborted by a
// step error or ended early by a callback's stop request. A stop request is
// honored after the epoch that raised it completes, so per-epoch batch counts
// stay exact.
func (t *Trainer) Fit() error {
	if err := t.config.Validate(); err != nil {
		return fmt.Errorf("invalid training config: %w", err)
	}
	if t.stepper == nil {
		return fmt.Errorf("trainer has no stepper")
	}
	if t.loader == nil {
		return fmt.Errorf("trainer has no data loader")
	}

	state := &fitState{
		runID: uuid.New(),
		model: t.model,
		lr:    t.config.LearningRate,
	}

	t.callbacks.OnTrainStart(state)
	defer t.callbacks.OnTrainEnd(state)

	for epoch := 1; epoch <= t.config.Epochs; epoch++ {
		t.loader.Reset()
		t.callbacks.OnEpochStart(state, epoch)

		for batch := 0; ; batch++ {
			samples, err := t.loader.Next()
			if err != nil {
				return fmt.Errorf("epoch %d: %w", epoch, err)
			}
			if samples == nil {
				break
			}

			t.callbacks.OnBatchStart(state, epoch, batch)
			if err := t.stepper.Step(t.model, samples, state.lr); err != nil {
				return fmt.Errorf("epoch %d batch %d: update step failed: %w", epoch, batch, err)
			}
			t.callbacks.OnBatchEnd(state, epoch, batch)
		}

		t.callbacks.OnEpochEnd(state, epoch)
		if state.stop {
			break
		}
	}

	return nil
}
