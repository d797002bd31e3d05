package replacement

import (
	"github.com/sarchlab/vmsim/sim"
	"github.com/sarchlab/vmsim/vm"
)

// A Builder can build replacement engines.
type Builder struct {
	numFrames int
	numPages  int
	queue     EvictionQueue
}

// MakeBuilder creates a new builder
func MakeBuilder() Builder {
	return Builder{}
}

// WithNumFrames sets the number of physical frames.
func (b Builder) WithNumFrames(n int) Builder {
	b.numFrames = n
	return b
}

// WithNumPages sets the number of pages in the virtual address space.
func (b Builder) WithNumPages(n int) Builder {
	b.numPages = n
	return b
}

// WithEvictionQueue overrides the FIFO eviction queue, for substituting a
// different replacement policy.
func (b Builder) WithEvictionQueue(q EvictionQueue) Builder {
	b.queue = q
	return b
}

// Build returns a newly created engine. It fails with
// vm.ErrInvalidConfiguration when either capacity is non-positive.
func (b Builder) Build(name string) (*Engine, error) {
	pageTable, err := vm.NewPageTable(b.numPages)
	if err != nil {
		return nil, err
	}

	framePool, err := vm.NewFramePool(b.numFrames)
	if err != nil {
		return nil, err
	}

	queue := b.queue
	if queue == nil {
		queue = NewFIFOQueue()
	}

	e := &Engine{
		HookableBase: *sim.NewHookableBase(),
		name:         name,
		pageTable:    pageTable,
		framePool:    framePool,
		queue:        queue,
	}

	return e, nil
}
