package training

import "math"

// LRScheduler computes the learning rate to use for a given epoch. Schedulers
// are stateless: the rate is a pure function of the epoch number and the base
// rate, so resuming a run at any epoch reproduces the same schedule.
type LRScheduler interface {
	// LearningRate returns the rate for the given 1-based epoch.
	LearningRate(epoch int, base float64) float64

	// Name returns the scheduler name for logging.
	Name() string
}

// StepDecay multiplies the base rate by Factor once every Every epochs.
type StepDecay struct {
	Every  int
	Factor float64
}

// NewStepDecay creates a step scheduler. Non-positive Every defaults to 30
// epochs; Factor outside (0,1) defaults to 0.1.
func NewStepDecay(every int, factor float64) *StepDecay {
	if every <= 0 {
		every = 30
	}
	if factor <= 0 || factor >= 1 {
		factor = 0.1
	}
	return &StepDecay{Every: every, Factor: factor}
}

func (s *StepDecay) LearningRate(epoch int, base float64) float64 {
	drops := (epoch - 1) / s.Every
	return base * math.Pow(s.Factor, float64(drops))
}

func (s *StepDecay) Name() string {
	return "step"
}

// ExponentialDecay multiplies the base rate by Factor every epoch.
type ExponentialDecay struct {
	Factor float64
}

// NewExponentialDecay creates an exponential scheduler. Factor outside (0,1)
// defaults to 0.95.
func NewExponentialDecay(factor float64) *ExponentialDecay {
	if factor <= 0 || factor >= 1 {
		factor = 0.95
	}
	return &ExponentialDecay{Factor: factor}
}

func (s *ExponentialDecay) LearningRate(epoch int, base float64) float64 {
	return base * math.Pow(s.Factor, float64(epoch-1))
}

func (s *ExponentialDecay) Name() string {
	return "exponential"
}

// CosineAnnealing eases the rate from base down to Floor over Period epochs
// along a half cosine, then holds it at Floor.
type CosineAnnealing struct {
	Period int
	Floor  float64
}

// NewCosineAnnealing creates a cosine annealing scheduler. Non-positive
// Period defaults to 100 epochs.
func NewCosineAnnealing(period int, floor float64) *CosineAnnealing {
	if period <= 0 {
		period = 100
	}
	if floor < 0 {
		floor = 0
	}
	return &CosineAnnealing{Period: period, Floor: floor}
}

func (s *CosineAnnealing) LearningRate(epoch int, base float64) float64 {
	progress := float64(epoch-1) / float64(s.Period)
	if progress >= 1 {
		return s.Floor
	}
	return s.Floor + (base-s.Floor)*(1+math.Cos(math.Pi*progress))/2
}

func (s *CosineAnnealing) Name() string {
	return "cosine"
}
