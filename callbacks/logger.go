package callbacks

import (
	"github.com/sirupsen/logrus"
)

// Logger reports training progress through a structured logger every `every`
// epochs. When an evaluator is attached, its latest metric values are included
// as log fields; register the evaluator first so the values for the epoch
// being reported exist.
type Logger struct {
	Base

	log       logrus.FieldLogger
	every     int
	evaluator *MetricEvaluator
}

// NewLogger creates the callback. A nil log uses the logrus standard logger.
// `every` below 1 defaults to 1.
func NewLogger(log logrus.FieldLogger, every int) *Logger {
	if log == nil {
		log = logrus.StandardLogger()
	}
	if every < 1 {
		every = 1
	}
	return &Logger{log: log, every: every}
}

// WithEvaluator attaches a MetricEvaluator whose latest values are logged.
func (l *Logger) WithEvaluator(e *MetricEvaluator) *Logger {
	l.evaluator = e
	return l
}

func (l *Logger) OnTrainStart(state State) {
	l.log.WithFields(logrus.Fields{
		"run_id": state.RunID(),
		"model":  state.Wavefunction().Name(),
	}).Info("training started")
}

func (l *Logger) OnTrainEnd(state State) {
	l.log.WithField("run_id", state.RunID()).Info("training finished")
}

func (l *Logger) OnEpochEnd(state State, epoch int) {
	if epoch%l.every != 0 {
		return
	}
	fields := logrus.Fields{
		"epoch":         epoch,
		"learning_rate": state.LearningRate(),
	}
	if l.evaluator != nil {
		for _, name := range l.evaluator.Names() {
			if point, ok := l.evaluator.Last(name); ok && point.Epoch == epoch {
				fields[name] = point.Value
			}
		}
	}
	l.log.WithFields(fields).Info("epoch complete")
}
