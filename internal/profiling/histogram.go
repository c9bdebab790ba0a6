package profiling

import "time"

// HistogramSize is how many recent frames the histogram keeps.
const HistogramSize = 120

// Upper bounds of the histogram buckets; the last bucket is open-ended.
var BucketBounds = []time.Duration{
	4 * time.Millisecond,
	8 * time.Millisecond,
	16700 * time.Microsecond,
	33300 * time.Microsecond,
	50 * time.Millisecond,
}

// FrameTimeHistogram is a ring of recent frame times.
type FrameTimeHistogram struct {
	samples [HistogramSize]time.Duration
	next    int
	count   int
}

func (h *FrameTimeHistogram) Record(d time.Duration) {
	if d < 0 {
		d = 0
	}
	h.samples[h.next] = d
	h.next = (h.next + 1) % HistogramSize
	if h.count < HistogramSize {
		h.count++
	}
}

func (h *FrameTimeHistogram) Len() int {
	return h.count
}

// Samples returns the retained frame times, oldest first.
func (h *FrameTimeHistogram) Samples() []time.Duration {
	out := make([]time.Duration, 0, h.count)
	start := (h.next - h.count + HistogramSize) % HistogramSize
	for i := 0; i < h.count; i++ {
		out = append(out, h.samples[(start+i)%HistogramSize])
	}
	return out
}

func (h *FrameTimeHistogram) Average() time.Duration {
	if h.count == 0 {
		return 0
	}
	var sum time.Duration
	for _, d := range h.Samples() {
		sum += d
	}
	return sum / time.Duration(h.count)
}

func (h *FrameTimeHistogram) Max() time.Duration {
	var m time.Duration
	for _, d := range h.Samples() {
		m = max(m, d)
	}
	return m
}

// FPS derives frames per second from the average frame time.
func (h *FrameTimeHistogram) FPS() float64 {
	avg := h.Average()
	if avg <= 0 {
		return 0
	}
	return float64(time.Second) / float64(avg)
}

// Buckets counts retained samples per BucketBounds slot plus one overflow slot.
func (h *FrameTimeHistogram) Buckets() []int {
	counts := make([]int, len(BucketBounds)+1)
	for _, d := range h.Samples() {
		i := 0
		for i < len(BucketBounds) && d >= BucketBounds[i] {
			i++
		}
		counts[i]++
	}
	return counts
}
