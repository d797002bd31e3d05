package tracing

import (
	"github.com/sarchlab/vmsim/datarecording"
	"github.com/sarchlab/vmsim/replacement"
	"github.com/sarchlab/vmsim/sim"
)

// stepEntry is the reference_steps table row.
type stepEntry struct {
	Step       int
	Page       int
	Frame      int
	Outcome    string
	VictimPage int
}

// swapEntry is the swap_events table row.
type swapEntry struct {
	Step  int
	Page  int
	Frame int
}

// A DBTracer records every reference step, and every swap-out event, with a
// DataRecorder, so runs can be inspected with SQL afterwards.
type DBTracer struct {
	recorder datarecording.DataRecorder
}

// NewDBTracer creates a DBTracer and its two tables.
func NewDBTracer(recorder datarecording.DataRecorder) *DBTracer {
	recorder.CreateTable("reference_steps", stepEntry{})
	recorder.CreateTable("swap_events", swapEntry{})

	return &DBTracer{recorder: recorder}
}

// Func records the step carried by the hook context.
func (t *DBTracer) Func(ctx sim.HookCtx) {
	result, ok := ctx.Item.(replacement.StepResult)
	if !ok {
		return
	}

	t.recorder.InsertData("reference_steps", stepEntry{
		Step:       result.Step,
		Page:       result.Page,
		Frame:      result.Frame,
		Outcome:    result.Outcome.String(),
		VictimPage: result.VictimPage,
	})

	if ctx.Pos != replacement.HookPosEviction {
		return
	}

	if record, ok := ctx.Detail.(replacement.EvictionRecord); ok {
		t.recorder.InsertData("swap_events", swapEntry{
			Step:  record.Step,
			Page:  record.Page,
			Frame: record.Frame,
		})
	}
}
