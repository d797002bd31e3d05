package replacement

import (
	"fmt"

	"github.com/sarchlab/vmsim/sim"
	"github.com/sarchlab/vmsim/vm"
)

// Stats accumulates the simulation counters. PageFaults and SwapsOut are
// monotonic, and SwapsOut never exceeds PageFaults.
type Stats struct {
	References uint64
	PageFaults uint64
	SwapsOut   uint64
}

// An Engine runs the FIFO page-replacement state machine. It owns the page
// table, the frame pool, and the eviction queue for the duration of one
// simulation run and is their only mutator.
//
// The engine performs no console or file I/O. Observers register hooks and
// receive a StepResult at HookPosHit, HookPosPageLoad, or HookPosEviction,
// exactly one per reference.
type Engine struct {
	sim.HookableBase

	name      string
	pageTable vm.PageTable
	framePool *vm.FramePool
	queue     EvictionQueue

	stats Stats
}

// Name returns the name of the engine.
func (e *Engine) Name() string {
	return e.name
}

// Access processes one page reference and reports the outcome. A reference
// outside the virtual address space fails with vm.ErrInvalidReference before
// any state changes.
func (e *Engine) Access(page int) (StepResult, error) {
	if page < 0 || page >= e.pageTable.NumPages() {
		return StepResult{}, fmt.Errorf(
			"%w: page %d must be in [0, %d)",
			vm.ErrInvalidReference, page, e.pageTable.NumPages())
	}

	e.stats.References++
	step := int(e.stats.References)

	if frame, resident := e.pageTable.FrameOf(page); resident {
		// Pure FIFO: a hit does not touch the queue order.
		result := StepResult{
			Step:       step,
			Page:       page,
			Frame:      frame,
			Outcome:    Hit,
			VictimPage: -1,
		}
		e.InvokeHook(sim.HookCtx{Domain: e, Pos: HookPosHit, Item: result})

		return result, nil
	}

	e.stats.PageFaults++

	if e.framePool.FreeCount() > 0 {
		return e.loadIntoFreeFrame(step, page), nil
	}

	return e.evictAndLoad(step, page), nil
}

func (e *Engine) loadIntoFreeFrame(step int, page int) StepResult {
	frame := e.framePool.AllocateNextFree()
	e.framePool.SetOccupant(frame, page)
	e.pageTable.MarkResident(page, frame)
	e.queue.PushTail(frame, page)

	result := StepResult{
		Step:       step,
		Page:       page,
		Frame:      frame,
		Outcome:    FaultWithFreeFrame,
		VictimPage: -1,
	}
	e.InvokeHook(sim.HookCtx{Domain: e, Pos: HookPosPageLoad, Item: result})

	return result
}

func (e *Engine) evictAndLoad(step int, page int) StepResult {
	e.queueMustNotBeEmpty()

	victimFrame, victimPage := e.queue.PopHead()
	e.stats.SwapsOut++

	e.pageTable.MarkEvicted(victimPage)
	e.framePool.SetOccupant(victimFrame, page)
	e.pageTable.MarkResident(page, victimFrame)
	e.queue.PushTail(victimFrame, page)

	result := StepResult{
		Step:       step,
		Page:       page,
		Frame:      victimFrame,
		Outcome:    FaultWithEviction,
		VictimPage: victimPage,
	}
	e.InvokeHook(sim.HookCtx{
		Domain: e,
		Pos:    HookPosEviction,
		Item:   result,
		Detail: EvictionRecord{
			Step:  step,
			Page:  victimPage,
			Frame: victimFrame,
		},
	})

	return result
}

// queueMustNotBeEmpty aborts the simulation when the queue is empty while no
// frame is free. That state is unreachable unless an invariant was broken by
// a bug, so the engine does not try to recover.
func (e *Engine) queueMustNotBeEmpty() {
	if e.queue.Len() == 0 {
		panic("eviction queue is empty while no frame is free")
	}
}

// Stats returns the counters accumulated so far.
func (e *Engine) Stats() Stats {
	return e.stats
}

// NumPages returns the size of the virtual address space.
func (e *Engine) NumPages() int {
	return e.pageTable.NumPages()
}

// NumFrames returns the size of physical memory.
func (e *Engine) NumFrames() int {
	return e.framePool.Capacity()
}

// FrameOccupancy returns the page held by each frame, -1 for frames that
// were never used.
func (e *Engine) FrameOccupancy() []int {
	return e.framePool.Occupancy()
}
