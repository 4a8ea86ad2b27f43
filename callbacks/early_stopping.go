package callbacks

import "math"

// EarlyStopping watches one quantity recorded by a MetricEvaluator and
// requests a stop once it goes patience evaluations without improving by more
// than tolerance. The watched quantity is treated as lower-is-better.
//
// Register the evaluator before the EarlyStopping callback: the check runs in
// OnEpochEnd and needs the evaluator's value for that epoch to exist already.
type EarlyStopping struct {
	Base

	evaluator *MetricEvaluator
	quantity  string
	tolerance float64
	patience  int

	best      float64
	bad       int
	stoppedAt int
}

// NewEarlyStopping creates the callback. patience below 1 defaults to 1;
// negative tolerance is treated as 0.
func NewEarlyStopping(evaluator *MetricEvaluator, quantity string, tolerance float64, patience int) *EarlyStopping {
	if patience < 1 {
		patience = 1
	}
	if tolerance < 0 {
		tolerance = 0
	}
	return &EarlyStopping{
		evaluator: evaluator,
		quantity:  quantity,
		tolerance: tolerance,
		patience:  patience,
	}
}

func (es *EarlyStopping) OnTrainStart(State) {
	es.best = math.Inf(1)
	es.bad = 0
	es.stoppedAt = 0
}

func (es *EarlyStopping) OnEpochEnd(state State, epoch int) {
	point, ok := es.evaluator.Last(es.quantity)
	if !ok || point.Epoch != epoch {
		// No fresh evaluation this epoch.
		return
	}
	if es.best-point.Value > es.tolerance {
		es.best = point.Value
		es.bad = 0
		return
	}
	es.bad++
	if es.bad >= es.patience {
		es.stoppedAt = epoch
		state.RequestStop()
	}
}

// StoppedAt returns the epoch at which the stop was requested, or 0 if the
// run was never stopped by this callback.
func (es *EarlyStopping) StoppedAt() int {
	return es.stoppedAt
}

// Best returns the best (lowest) value seen for the watched quantity.
func (es *EarlyStopping) Best() float64 {
	return es.best
}
