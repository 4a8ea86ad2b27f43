package training

import (
	"fmt"
	"math/rand"
	"sync"
)

// Sample is one measurement record from the training set. The trainer never
// inspects its contents; it only hands batches of samples to the Stepper.
type Sample []float64

// Dataset is a random-access view over the training samples.
type Dataset interface {
	// Len returns the total number of samples.
	Len() int

	// Get returns the sample at idx.
	Get(idx int) (Sample, error)
}

// SliceDataset adapts an in-memory slice of samples to the Dataset interface.
type SliceDataset []Sample

func (d SliceDataset) Len() int {
	return len(d)
}

func (d SliceDataset) Get(idx int) (Sample, error) {
	if idx < 0 || idx >= len(d) {
		return nil, fmt.Errorf("sample index %d out of range [0,%d)", idx, len(d))
	}
	return d[idx], nil
}

// DataLoader yields fixed-size batches of samples, optionally reshuffling the
// visit order at the start of every epoch. The final batch of an epoch may be
// smaller than the configured batch size.
type DataLoader struct {
	dataset   Dataset
	batchSize int
	shuffle   bool
	rng       *rand.Rand
	indices   []int
	position  int
	mu        sync.Mutex
}

// NewDataLoader creates a loader over dataset. batchSize values below 1 are
// treated as 1. seed fixes the shuffle order for reproducible runs.
func NewDataLoader(dataset Dataset, batchSize int, shuffle bool, seed int64) *DataLoader {
	if batchSize < 1 {
		batchSize = 1
	}
	indices := make([]int, dataset.Len())
	for i := range indices {
		indices[i] = i
	}
	return &DataLoader{
		dataset:   dataset,
		batchSize: batchSize,
		shuffle:   shuffle,
		rng:       rand.New(rand.NewSource(seed)),
		indices:   indices,
	}
}

// BatchesPerEpoch returns how many batches one full pass over the dataset
// produces.
func (dl *DataLoader) BatchesPerEpoch() int {
	return (dl.dataset.Len() + dl.batchSize - 1) / dl.batchSize
}

// Reset rewinds the loader for a new epoch, reshuffling if configured.
func (dl *DataLoader) Reset() {
	dl.mu.Lock()
	defer dl.mu.Unlock()

	dl.position = 0
	if dl.shuffle {
		dl.rng.Shuffle(len(dl.indices), func(i, j int) {
			dl.indices[i], dl.indices[j] = dl.indices[j], dl.indices[i]
		})
	}
}

// Next returns the next batch of the current epoch, or nil once the epoch is
// exhausted.
func (dl *DataLoader) Next() ([]Sample, error) {
	dl.mu.Lock()
	defer dl.mu.Unlock()

	if dl.position >= len(dl.indices) {
		return nil, nil
	}

	end := dl.position + dl.batchSize
	if end > len(dl.indices) {
		end = len(dl.indices)
	}

	batch := make([]Sample, 0, end-dl.position)
	for _, idx := range dl.indices[dl.position:end] {
		sample, err := dl.dataset.Get(idx)
		if err != nil {
			return nil, fmt.Errorf("loading sample %d: %w", idx, err)
		}
		batch = append(batch, sample)
	}
	dl.position = end
	return batch, nil
}
