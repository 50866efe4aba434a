package datasource

import (
	"errors"
	"math/rand"
	"sync"
	"time"
)

// ErrNoCandidates is returned when picking from an empty candidate set.
var ErrNoCandidates = errors.New("no candidate images")

// Picker draws random selections with replacement.
type Picker struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewPicker creates a Picker seeded from the current time.
func NewPicker() *Picker {
	return NewPickerWithSource(rand.NewSource(time.Now().UnixNano()))
}

// NewPickerWithSource creates a Picker backed by src.
func NewPickerWithSource(src rand.Source) *Picker {
	return &Picker{rng: rand.New(src)}
}

// Pick returns n paths, each drawn independently and uniformly from
// candidates. The same path may appear more than once.
func (p *Picker) Pick(candidates []string, n int) ([]string, error) {
	if len(candidates) == 0 {
		return nil, ErrNoCandidates
	}
	if n <= 0 {
		return []string{}, nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	selection := make([]string, n)
	for i := range selection {
		selection[i] = candidates[p.rng.Intn(len(candidates))]
	}
	return selection, nil
}
