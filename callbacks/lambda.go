package callbacks

// Lambda invokes the provided functions at the matching lifecycle points.
// Nil fields are skipped, so a one-off observer needs only the hook it wants
// and no named type.
type Lambda struct {
	TrainStart func(state State)
	TrainEnd   func(state State)
	EpochStart func(state State, epoch int)
	EpochEnd   func(state State, epoch int)
	BatchStart func(state State, epoch, batch int)
	BatchEnd   func(state State, epoch, batch int)
}

func (l *Lambda) OnTrainStart(state State) {
	if l.TrainStart != nil {
		l.TrainStart(state)
	}
}

func (l *Lambda) OnTrainEnd(state State) {
	if l.TrainEnd != nil {
		l.TrainEnd(state)
	}
}

func (l *Lambda) OnEpochStart(state State, epoch int) {
	if l.EpochStart != nil {
		l.EpochStart(state, epoch)
	}
}

func (l *Lambda) OnEpochEnd(state State, epoch int) {
	if l.EpochEnd != nil {
		l.EpochEnd(state, epoch)
	}
}

func (l *Lambda) OnBatchStart(state State, epoch, batch int) {
	if l.BatchStart != nil {
		l.BatchStart(state, epoch, batch)
	}
}

func (l *Lambda) OnBatchEnd(state State, epoch, batch int) {
	if l.BatchEnd != nil {
		l.BatchEnd(state, epoch, batch)
	}
}
