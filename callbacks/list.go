package callbacks

// List dispatches every hook to its elements in registration order. It is
// itself a Callback, so a trainer holds one List and stays unaware of how many
// observers are attached. Dispatch is sequential: element i's hook returns
// before element i+1's is invoked, so ordered side effects stay race-free.
type List []Callback

// Append returns the list with cb added at the end of the dispatch order.
func (l List) Append(cb Callback) List {
	return append(l, cb)
}

func (l List) OnTrainStart(state State) {
	for _, cb := range l {
		cb.OnTrainStart(state)
	}
}

func (l List) OnTrainEnd(state State) {
	for _, cb := range l {
		cb.OnTrainEnd(state)
	}
}

func (l List) OnEpochStart(state State, epoch int) {
	for _, cb := range l {
		cb.OnEpochStart(state, epoch)
	}
}

func (l List) OnEpochEnd(state State, epoch int) {
	for _, cb := range l {
		cb.OnEpochEnd(state, epoch)
	}
}

func (l List) OnBatchStart(state State, epoch, batch int) {
	for _, cb := range l {
		cb.OnBatchStart(state, epoch, batch)
	}
}

func (l List) OnBatchEnd(state State, epoch, batch int) {
	for _, cb := range l {
		cb.OnBatchEnd(state, epoch, batch)
	}
}
