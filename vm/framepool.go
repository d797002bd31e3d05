package vm

import "fmt"

// A FramePool is a fixed-capacity set of physical frame slots, each either
// free or holding exactly one page.
//
// Frames are handed out from a monotonic cursor. A frame, once allocated, is
// never returned to the free pool, even when its page is evicted; eviction
// reuses the victim's frame in place within the same step. FreeCount hence
// only ever decreases.
type FramePool struct {
	occupants []int
	nextFree  int
}

// NewFramePool creates a FramePool with the given number of frames, all
// initially free.
func NewFramePool(capacity int) (*FramePool, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf(
			"%w: number of frames must be positive, got %d",
			ErrInvalidConfiguration, capacity)
	}

	p := &FramePool{
		occupants: make([]int, capacity),
	}
	for i := range p.occupants {
		p.occupants[i] = -1
	}

	return p, nil
}

// Capacity returns the total number of frames.
func (p *FramePool) Capacity() int {
	return len(p.occupants)
}

// FreeCount returns the number of frames that have never been allocated.
func (p *FramePool) FreeCount() int {
	return len(p.occupants) - p.nextFree
}

// AllocateNextFree returns the lowest never-yet-used frame. Callers must
// check FreeCount first.
func (p *FramePool) AllocateNextFree() int {
	if p.nextFree >= len(p.occupants) {
		panic("frame pool is exhausted")
	}

	frame := p.nextFree
	p.nextFree++

	return frame
}

// Occupant returns the page held by the frame. The bool return value
// indicates whether the frame holds a page.
func (p *FramePool) Occupant(frame int) (int, bool) {
	p.frameMustBeInRange(frame)

	page := p.occupants[frame]
	if page < 0 {
		return 0, false
	}

	return page, true
}

// SetOccupant records the page held by the frame, both on first allocation
// and on eviction reuse. Free-frame bookkeeping is not affected.
func (p *FramePool) SetOccupant(frame int, page int) {
	p.frameMustBeInRange(frame)
	p.occupants[frame] = page
}

// Occupancy returns the page held by each frame, -1 for frames that were
// never used. This is the final-report view of physical memory.
func (p *FramePool) Occupancy() []int {
	occupancy := make([]int, len(p.occupants))
	copy(occupancy, p.occupants)

	return occupancy
}

func (p *FramePool) frameMustBeInRange(frame int) {
	if frame < 0 || frame >= len(p.occupants) {
		panic(fmt.Sprintf(
			"frame %d out of range [0, %d)", frame, len(p.occupants)))
	}
}
