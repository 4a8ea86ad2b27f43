package callbacks

import (
	"sort"

	"github.com/quantatron/wavetrain/wavefunction"
)

// Metric computes a named scalar from the wavefunction under training, e.g. a
// fidelity estimate or a held-out loss.
type Metric func(w wavefunction.Wavefunction) float64

// MetricPoint is one recorded metric value.
type MetricPoint struct {
	Epoch int
	Value float64
}

// MetricEvaluator evaluates a set of metrics every period epochs and keeps
// their full history. Other callbacks (EarlyStopping, Logger) read from it, so
// it must be registered before them.
type MetricEvaluator struct {
	Base

	period  int
	metrics map[string]Metric
	history map[string][]MetricPoint
}

// NewMetricEvaluator creates an evaluator that runs every period epochs.
// Non-positive period defaults to 1 (every epoch).
func NewMetricEvaluator(period int, metrics map[string]Metric) *MetricEvaluator {
	if period <= 0 {
		period = 1
	}
	return &MetricEvaluator{
		period:  period,
		metrics: metrics,
		history: make(map[string][]MetricPoint),
	}
}

func (e *MetricEvaluator) OnTrainStart(State) {
	e.history = make(map[string][]MetricPoint)
}

func (e *MetricEvaluator) OnEpochEnd(state State, epoch int) {
	if epoch%e.period != 0 {
		return
	}
	w := state.Wavefunction()
	for name, metric := range e.metrics {
		e.history[name] = append(e.history[name], MetricPoint{Epoch: epoch, Value: metric(w)})
	}
}

// Names returns the metric names in sorted order.
func (e *MetricEvaluator) Names() []string {
	names := make([]string, 0, len(e.metrics))
	for name := range e.metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Last returns the most recent point for the named metric.
func (e *MetricEvaluator) Last(name string) (MetricPoint, bool) {
	series := e.history[name]
	if len(series) == 0 {
		return MetricPoint{}, false
	}
	return series[len(series)-1], true
}

// Series returns the full history of the named metric in evaluation order.
func (e *MetricEvaluator) Series(name string) []MetricPoint {
	return e.history[name]
}
