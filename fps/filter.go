package fps

import "math"

// Filter is a moving average over the most recent samples
type Filter struct {
	samples []float64
	next    int
	count   int
	sum     float64
}

// NewFilter creates a filter averaging up to size samples
func NewFilter(size int) *Filter {
	if size < 1 {
		size = 1
	}
	return &Filter{samples: make([]float64, size)}
}

// Push adds a sample, evicting the oldest once the window is full.
// NaN and infinite samples (e.g. 1/0 on the first frame) are dropped.
func (f *Filter) Push(v float64) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return
	}

	if f.count == len(f.samples) {
		f.sum -= f.samples[f.next]
	} else {
		f.count++
	}
	f.samples[f.next] = v
	f.sum += v
	f.next = (f.next + 1) % len(f.samples)
}

// Average returns the mean of the samples in the window, or 0 when empty
func (f *Filter) Average() float64 {
	if f.count == 0 {
		return 0
	}
	return f.sum / float64(f.count)
}

// Len returns the number of samples currently held
func (f *Filter) Len() int {
	return f.count
}

// Reset drops all samples
func (f *Filter) Reset() {
	clear(f.samples)
	f.next, f.count, f.sum = 0, 0, 0
}
