// Package callbacks defines the lifecycle hook contract used to observe and
// extend a training run without modifying the trainer itself. The trainer
// invokes each registered callback at fixed points: once around the whole run,
// once around each epoch, and once around each batch update. Concrete
// callbacks embed Base and override only the hooks they care about.
package callbacks

import (
	"github.com/google/uuid"

	"github.com/quantatron/wavetrain/wavefunction"
)

// State is the trainer-owned handle passed to every hook. Callbacks see only
// this capability surface: they may read the run identity and the wavefunction
// under training, adjust the learning rate, and request that training stop
// after the current epoch. Everything else about the run is opaque.
type State interface {
	// RunID identifies the training run.
	RunID() uuid.UUID

	// Wavefunction returns the model being trained.
	Wavefunction() wavefunction.Wavefunction

	// LearningRate returns the learning rate the next update step will use.
	LearningRate() float64

	// SetLearningRate changes the learning rate for subsequent update steps.
	SetLearningRate(lr float64)

	// RequestStop asks the trainer to end the run after the current epoch
	// completes. Idempotent.
	RequestStop()
}

// Callback is the set of lifecycle hooks a trainer invokes. Hooks have no
// return value and must not fail: composing many callbacks, most of which
// override only one or two hooks, has to cost nothing for the rest.
//
// Invocation order follows training progress: OnTrainStart once before the
// first epoch; per epoch, OnEpochStart, then OnBatchStart/OnBatchEnd around
// every batch, then OnEpochEnd; OnTrainEnd exactly once after the run ends,
// including runs ended early by an error or a stop request. Epochs are
// numbered from 1 and strictly increase; batches are numbered from 0 and
// reset each epoch. Hooks are invoked sequentially, never concurrently.
type Callback interface {
	// OnTrainStart is called once, before the first epoch begins.
	OnTrainStart(state State)

	// OnTrainEnd is called exactly once after the run ends, even when the
	// run is aborted, so cleanup registered by callbacks always executes.
	OnTrainEnd(state State)

	// OnEpochStart is called before any batch of the given epoch runs.
	OnEpochStart(state State, epoch int)

	// OnEpochEnd is called after every batch of the given epoch completed.
	OnEpochEnd(state State, epoch int)

	// OnBatchStart is called before the update step for the given batch.
	OnBatchStart(state State, epoch, batch int)

	// OnBatchEnd is called after the update step for the given batch.
	OnBatchEnd(state State, epoch, batch int)
}

// Base is a no-op implementation of every hook. Embed it so a concrete
// callback only overrides the hooks it needs.
type Base struct{}

func (Base) OnTrainStart(State) {}

func (Base) OnTrainEnd(State) {}

func (Base) OnEpochStart(State, int) {}

func (Base) OnEpochEnd(State, int) {}

func (Base) OnBatchStart(State, int, int) {}

func (Base) OnBatchEnd(State, int, int) {}
