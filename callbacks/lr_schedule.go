package callbacks

// Schedule computes the learning rate for a 1-based epoch from the base rate
// the run started with. The training package's schedulers satisfy it.
type Schedule interface {
	LearningRate(epoch int, base float64) float64
	Name() string
}

// ScheduleLR applies a learning rate schedule at the start of every epoch
// through State.SetLearningRate. The base rate is captured at train start, so
// the schedule composes with whatever rate the trainer was configured with.
type ScheduleLR struct {
	Base

	schedule Schedule
	baseRate float64
}

// NewScheduleLR creates the callback.
func NewScheduleLR(schedule Schedule) *ScheduleLR {
	return &ScheduleLR{schedule: schedule}
}

func (c *ScheduleLR) OnTrainStart(state State) {
	c.baseRate = state.LearningRate()
}

func (c *ScheduleLR) OnEpochStart(state State, epoch int) {
	state.SetLearningRate(c.schedule.LearningRate(epoch, c.baseRate))
}
