package scenario

// History is a fixed-size circular buffer holding the most recent frames of a trace.
type History struct {
	buffer []Frame
	head   int // next write position
	size   int
}

// NewHistory creates a history holding up to capacity frames. A non-positive capacity holds a
// single frame.
func NewHistory(capacity int) *History {
	return &History{buffer: make([]Frame, max(1, capacity))}
}

// Add records f, overwriting the oldest frame once the history is full.
func (h *History) Add(f Frame) {
	h.buffer[h.head] = f
	h.head = (h.head + 1) % len(h.buffer)
	if h.size < len(h.buffer) {
		h.size++
	}
}

// Get returns the frame of the tick passed, if it is still held.
func (h *History) Get(tick int) (Frame, bool) {
	for i := 0; i < h.size; i++ {
		f := h.buffer[h.index(i)]
		if f.Tick == tick {
			return f, true
		}
		if f.Tick < tick {
			break
		}
	}
	return Frame{}, false
}

// Latest returns the most recently added frame.
func (h *History) Latest() (Frame, bool) {
	if h.size == 0 {
		return Frame{}, false
	}
	return h.buffer[h.index(0)], true
}

// Frames returns the frames held, oldest first.
func (h *History) Frames() []Frame {
	frames := make([]Frame, h.size)
	for i := 0; i < h.size; i++ {
		frames[h.size-1-i] = h.buffer[h.index(i)]
	}
	return frames
}

func (h *History) Len() int {
	return h.size
}

func (h *History) Cap() int {
	return len(h.buffer)
}

// index returns the buffer index of the i-th most recent frame.
func (h *History) index(i int) int {
	return (h.head - 1 - i + len(h.buffer)) % len(h.buffer)
}
