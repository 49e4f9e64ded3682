package dashboard

// DefaultHistorySize is the default number of data points retained per
// node metric.
const DefaultHistorySize = 60

// History stores recent values per (node, metric) key in ring buffers for
// sparkline rendering. It is only ever touched from the model's update
// path, so no locking is needed.
type History struct {
	size  int
	nodes map[string]map[string]*ringBuffer
}

// ringBuffer is a fixed-size circular buffer for float64 values.
type ringBuffer struct {
	data  []float64
	head  int
	count int
	size  int
}

// NewHistory creates a history tracker with the specified buffer size.
func NewHistory(size int) *History {
	if size <= 0 {
		size = DefaultHistorySize
	}
	return &History{
		size:  size,
		nodes: make(map[string]map[string]*ringBuffer),
	}
}

// Push records a new sample for the (node, metric) key.
func (h *History) Push(nodeID, metric string, value float64) {
	byMetric, ok := h.nodes[nodeID]
	if !ok {
		byMetric = make(map[string]*ringBuffer)
		h.nodes[nodeID] = byMetric
	}
	buf, ok := byMetric[metric]
	if !ok {
		buf = newRingBuffer(h.size)
		byMetric[metric] = buf
	}
	buf.push(value)
}

// Get returns the last count values for a (node, metric) key in
// chronological order (oldest first). Returns fewer values if not enough
// history is available, nil if there is none.
func (h *History) Get(nodeID, metric string, count int) []float64 {
	byMetric, ok := h.nodes[nodeID]
	if !ok {
		return nil
	}
	buf, ok := byMetric[metric]
	if !ok {
		return nil
	}
	return buf.getLast(count)
}

// Count returns the number of samples stored for a (node, metric) key.
func (h *History) Count(nodeID, metric string) int {
	byMetric, ok := h.nodes[nodeID]
	if !ok {
		return 0
	}
	buf, ok := byMetric[metric]
	if !ok {
		return 0
	}
	return buf.count
}

// newRingBuffer creates a ring buffer with the specified capacity.
func newRingBuffer(size int) *ringBuffer {
	return &ringBuffer{
		data: make([]float64, size),
		size: size,
	}
}

// push adds a value to the ring buffer.
func (r *ringBuffer) push(value float64) {
	r.data[r.head] = value
	r.head = (r.head + 1) % r.size
	if r.count < r.size {
		r.count++
	}
}

// getLast returns the last count values in chronological order (oldest first).
func (r *ringBuffer) getLast(count int) []float64 {
	if count <= 0 || r.count == 0 {
		return nil
	}

	if count > r.count {
		count = r.count
	}

	result := make([]float64, count)

	// head points to the next write position, so the most recent value is
	// at head-1; we want count values ending there.
	start := (r.head - count + r.size) % r.size

	for i := 0; i < count; i++ {
		idx := (start + i) % r.size
		result[i] = r.data[idx]
	}

	return result
}
