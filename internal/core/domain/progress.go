package domain

// DefaultProgressCapacity is the number of output lines kept for the progress feed.
const DefaultProgressCapacity = 100

// ProgressEvent is the session event carrying the progress feed.
const ProgressEvent = "progressOfWinetricks"

// ProgressBuffer keeps the most recent lines of tool output.
// Pushing beyond capacity evicts the oldest line. It is not safe for concurrent use.
type ProgressBuffer struct {
	lines    []string
	start    int
	size     int
	capacity int
	dirty    bool
}

// NewProgressBuffer returns an empty buffer holding at most capacity lines.
// A non-positive capacity falls back to DefaultProgressCapacity.
func NewProgressBuffer(capacity int) *ProgressBuffer {
	if capacity <= 0 {
		capacity = DefaultProgressCapacity
	}
	return &ProgressBuffer{
		lines:    make([]string, capacity),
		capacity: capacity,
	}
}

// Push appends a line and marks the buffer dirty.
func (b *ProgressBuffer) Push(line string) {
	if b.size < b.capacity {
		b.lines[(b.start+b.size)%b.capacity] = line
		b.size++
	} else {
		b.lines[b.start] = line
		b.start = (b.start + 1) % b.capacity
	}
	b.dirty = true
}

// Snapshot returns the buffered lines, oldest first.
func (b *ProgressBuffer) Snapshot() []string {
	out := make([]string, b.size)
	for i := range b.size {
		out[i] = b.lines[(b.start+i)%b.capacity]
	}
	return out
}

// TakeIfDirty returns a snapshot and clears the dirty flag.
// It returns false without a snapshot when nothing was pushed since the last take.
func (b *ProgressBuffer) TakeIfDirty() ([]string, bool) {
	if !b.dirty {
		return nil, false
	}
	b.dirty = false
	return b.Snapshot(), true
}

// Len returns the number of buffered lines.
func (b *ProgressBuffer) Len() int {
	return b.size
}

// Cap returns the capacity of the buffer.
func (b *ProgressBuffer) Cap() int {
	return b.capacity
}

// Dirty reports whether lines were pushed since the last take.
func (b *ProgressBuffer) Dirty() bool {
	return b.dirty
}
