// Package tracing provides hooks that render replacement-engine events for
// humans and for storage. The engine itself never writes anywhere; every
// output path lives here.
package tracing

import (
	"log"

	"github.com/sarchlab/vmsim/replacement"
	"github.com/sarchlab/vmsim/sim"
)

// A ConsoleTracer is a hook that narrates each reference step through a
// logger, one line per step.
type ConsoleTracer struct {
	sim.LogHookBase
}

// NewConsoleTracer returns a ConsoleTracer that writes into the logger.
func NewConsoleTracer(logger *log.Logger) *ConsoleTracer {
	t := new(ConsoleTracer)
	t.Logger = logger
	return t
}

// Func writes the step information into the logger
func (t *ConsoleTracer) Func(ctx sim.HookCtx) {
	result, ok := ctx.Item.(replacement.StepResult)
	if !ok {
		return
	}

	switch ctx.Pos {
	case replacement.HookPosHit:
		t.Printf("Reference %2d: page %d -> HIT (in frame %d)",
			result.Step, result.Page, result.Frame)
	case replacement.HookPosPageLoad:
		t.Printf("Reference %2d: page %d -> PAGE FAULT -> loaded into frame %d",
			result.Step, result.Page, result.Frame)
	case replacement.HookPosEviction:
		t.Printf("Reference %2d: page %d -> PAGE FAULT -> "+
			"evicted page %d from frame %d, loaded page %d in its place",
			result.Step, result.Page,
			result.VictimPage, result.Frame, result.Page)
	}
}

// ReportStats writes the final statistics block: counters and the final
// frame occupancy, -1 marking a frame that was never used.
func (t *ConsoleTracer) ReportStats(
	stats replacement.Stats,
	occupancy []int,
) {
	t.Printf("--- Statistics ---")
	t.Printf("References: %d", stats.References)
	t.Printf("Page faults: %d", stats.PageFaults)
	t.Printf("Swaps out: %d", stats.SwapsOut)
	t.Printf("Final frame state (frame: page):")
	for frame, page := range occupancy {
		t.Printf("  frame %2d: %d", frame, page)
	}
}
