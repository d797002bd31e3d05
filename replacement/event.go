package replacement

import "github.com/sarchlab/vmsim/sim"

// HookPosHit is a hook position that triggers when a referenced page is
// already resident.
var HookPosHit = &sim.HookPos{Name: "Hit"}

// HookPosPageLoad is a hook position that triggers when a page fault is
// served from a free frame.
var HookPosPageLoad = &sim.HookPos{Name: "PageLoad"}

// HookPosEviction is a hook position that triggers when a page fault evicts
// the oldest resident page. The hook context carries an EvictionRecord as
// detail.
var HookPosEviction = &sim.HookPos{Name: "Eviction"}

// An Outcome classifies how one reference step resolved.
type Outcome int

// The three possible step outcomes. Every reference produces exactly one.
const (
	Hit Outcome = iota
	FaultWithFreeFrame
	FaultWithEviction
)

func (o Outcome) String() string {
	switch o {
	case Hit:
		return "Hit"
	case FaultWithFreeFrame:
		return "FaultWithFreeFrame"
	case FaultWithEviction:
		return "FaultWithEviction"
	default:
		return "Unknown"
	}
}

// A StepResult describes what one reference did to the memory state. It is
// the hook item for all three hook positions.
type StepResult struct {
	// Step is the 1-based position of the reference in the input sequence.
	Step int

	// Page is the referenced page.
	Page int

	// Frame is the frame that holds the page after the step.
	Frame int

	// Outcome tells whether the step was a hit, a fault served from a free
	// frame, or a fault served by eviction.
	Outcome Outcome

	// VictimPage is the evicted page, or -1 when nothing was evicted.
	VictimPage int
}

// An EvictionRecord is offered to swap-log collaborators, one record per
// eviction, in eviction order.
type EvictionRecord struct {
	Step  int
	Page  int
	Frame int
}
