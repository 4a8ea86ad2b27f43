package callbacks

import (
	"fmt"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/quantatron/wavetrain/checkpoints"
)

// Saver writes a checkpoint of the wavefunction every `every` epochs, plus a
// final one when the run ends. Hooks never fail, so save errors are handed to
// the error handler (default: a logrus warning) and the first one is retained
// for inspection through Err. A caller that wants a failed save to end the
// run sets a handler that calls State.RequestStop.
type Saver struct {
	Base

	dir     string
	every   int
	log     logrus.FieldLogger
	onError func(state State, err error)
	err     error

	lastEpoch int
}

// NewSaver creates the callback. Checkpoints land in dir as
// epoch-NNNN.json plus final.json. `every` below 1 defaults to 1.
func NewSaver(dir string, every int) *Saver {
	if every < 1 {
		every = 1
	}
	return &Saver{
		dir:   dir,
		every: every,
		log:   logrus.StandardLogger(),
	}
}

// WithLogger replaces the logger used by the default error handler.
func (s *Saver) WithLogger(log logrus.FieldLogger) *Saver {
	if log != nil {
		s.log = log
	}
	return s
}

// WithErrorHandler replaces the default log-and-continue error handling.
func (s *Saver) WithErrorHandler(handler func(state State, err error)) *Saver {
	s.onError = handler
	return s
}

func (s *Saver) OnTrainStart(State) {
	s.err = nil
	s.lastEpoch = 0
}

func (s *Saver) OnEpochEnd(state State, epoch int) {
	s.lastEpoch = epoch
	if epoch%s.every != 0 {
		return
	}
	s.save(state, epoch, filepath.Join(s.dir, fmt.Sprintf("epoch-%04d.json", epoch)))
}

func (s *Saver) OnTrainEnd(state State) {
	s.save(state, s.lastEpoch, filepath.Join(s.dir, "final.json"))
}

func (s *Saver) save(state State, epoch int, path string) {
	cp := checkpoints.New(state.RunID(), state.Wavefunction(), epoch, state.LearningRate())
	if err := cp.Save(path); err != nil {
		if s.err == nil {
			s.err = err
		}
		if s.onError != nil {
			s.onError(state, err)
			return
		}
		s.log.WithError(err).WithField("path", path).Warn("checkpoint save failed")
	}
}

// Err returns the first save error of the run, or nil.
func (s *Saver) Err() error {
	return s.err
}
