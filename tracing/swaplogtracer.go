package tracing

import (
	"fmt"
	"os"

	"github.com/tebeka/atexit"

	"github.com/sarchlab/vmsim/replacement"
	"github.com/sarchlab/vmsim/sim"
)

// A SwapLogTracer appends one human-readable line per eviction to a log
// file, in eviction order.
//
// The log is a best-effort sink: a file that cannot be created or written is
// reported once on stderr and the tracer goes quiet. It never aborts or
// alters the simulation.
type SwapLogTracer struct {
	path string
	file *os.File

	records     []replacement.EvictionRecord
	bufferSize  int
	writeFailed bool
}

// NewSwapLogTracer creates a new SwapLogTracer. Call Init before attaching
// it to an engine.
func NewSwapLogTracer(path string) *SwapLogTracer {
	return &SwapLogTracer{
		path:       path,
		bufferSize: 64,
	}
}

// Init creates the log file, overwriting leftovers from an earlier run, and
// writes the header line.
func (t *SwapLogTracer) Init() {
	file, err := os.Create(t.path)
	if err != nil {
		t.reportWriteFailure(err)
		return
	}
	t.file = file

	fmt.Fprintf(file, "=== Swap simulated log ===\n")

	atexit.Register(func() {
		t.Flush()
		t.file.Close()
	})
}

// Path returns the location of the log file.
func (t *SwapLogTracer) Path() string {
	return t.path
}

// Func buffers one record per eviction.
func (t *SwapLogTracer) Func(ctx sim.HookCtx) {
	if ctx.Pos != replacement.HookPosEviction {
		return
	}

	record, ok := ctx.Detail.(replacement.EvictionRecord)
	if !ok {
		return
	}

	t.records = append(t.records, record)
	if len(t.records) >= t.bufferSize {
		t.Flush()
	}
}

// Flush writes the buffered records to the log file.
func (t *SwapLogTracer) Flush() {
	if t.file == nil {
		t.records = nil
		return
	}

	for _, r := range t.records {
		_, err := fmt.Fprintf(t.file,
			"Step %d: swapped out page %d from frame %d\n",
			r.Step, r.Page, r.Frame)
		if err != nil {
			t.reportWriteFailure(err)
			break
		}
	}

	t.records = nil
}

func (t *SwapLogTracer) reportWriteFailure(err error) {
	if t.writeFailed {
		return
	}

	t.writeFailed = true
	fmt.Fprintf(os.Stderr, "swap log unavailable: %s\n", err)
}
