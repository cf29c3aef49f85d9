package runner

// Slot is the content of one track position.
type Slot uint8

const (
	Empty Slot = iota
	ObstacleTop
	ObstacleBottom
)

// String returns a human-readable name for the slot.
func (s Slot) String() string {
	switch s {
	case Empty:
		return "Empty"
	case ObstacleTop:
		return "ObstacleTop"
	case ObstacleBottom:
		return "ObstacleBottom"
	default:
		return "Unknown"
	}
}

// IsObstacle reports whether the slot holds an obstacle.
func (s Slot) IsObstacle() bool {
	return s != Empty
}

// Track is the scrolling ground: a fixed-length sequence of slots.
// Index 0 is the oldest (leftmost) slot. Its length never changes.
type Track struct {
	slots []Slot
}

// NewTrack creates an empty track of the given length (minimum 1).
func NewTrack(length int) *Track {
	if length < 1 {
		length = 1
	}
	return &Track{slots: make([]Slot, length)}
}

// Len returns the number of slots.
func (t *Track) Len() int {
	return len(t.slots)
}

// At returns the slot at index i, or Empty when out of range.
func (t *Track) At(i int) Slot {
	if i < 0 || i >= len(t.slots) {
		return Empty
	}
	return t.slots[i]
}

// Slots returns a copy of the track contents.
func (t *Track) Slots() []Slot {
	out := make([]Slot, len(t.slots))
	copy(out, t.slots)
	return out
}

// Advance scrolls the track one slot to the left and appends the slot the
// spawner generates for the tail. Returns the new tail slot.
func (t *Track) Advance(sp *Spawner) Slot {
	n := len(t.slots)
	copy(t.slots, t.slots[1:])

	tail := sp.Next(t.slots[:n-1])
	t.slots[n-1] = tail
	return tail
}
