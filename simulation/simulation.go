// Package simulation wires the replacement engine to its collaborators and
// drives one run from the first reference to the last.
package simulation

import (
	"fmt"

	"github.com/sarchlab/vmsim/datarecording"
	"github.com/sarchlab/vmsim/monitoring"
	"github.com/sarchlab/vmsim/replacement"
	"github.com/sarchlab/vmsim/tracing"
	"github.com/sarchlab/vmsim/vm"
)

// A Simulation owns one replacement engine and the sinks attached to it. It
// is single-use: run it once, read the results, terminate it.
type Simulation struct {
	id string

	engine        *replacement.Engine
	dataRecorder  datarecording.DataRecorder
	monitor       *monitoring.Monitor
	consoleTracer *tracing.ConsoleTracer
	swapLog       *tracing.SwapLogTracer
}

// ID returns the unique ID of the simulation run.
func (s *Simulation) ID() string {
	return s.id
}

// Engine returns the replacement engine driven by the simulation.
func (s *Simulation) Engine() *replacement.Engine {
	return s.engine
}

// Monitor returns the monitor attached to the simulation, nil when
// monitoring is off.
func (s *Simulation) Monitor() *monitoring.Monitor {
	return s.monitor
}

// Run feeds the reference sequence to the engine, strictly in order. The
// whole sequence is validated first, so an out-of-range reference fails with
// vm.ErrInvalidReference before the first step executes.
func (s *Simulation) Run(references []int) (replacement.Stats, error) {
	numPages := s.engine.NumPages()
	for i, page := range references {
		if page < 0 || page >= numPages {
			return replacement.Stats{}, fmt.Errorf(
				"%w: reference %d is page %d, must be in [0, %d)",
				vm.ErrInvalidReference, i+1, page, numPages)
		}
	}

	var bar *monitoring.ProgressBar
	if s.monitor != nil {
		bar = s.monitor.CreateProgressBar(
			"References", uint64(len(references)))
	}

	for _, page := range references {
		_, err := s.engine.Access(page)
		if err != nil {
			return s.engine.Stats(), err
		}

		if bar != nil {
			bar.IncrementFinished(1)
		}
	}

	return s.engine.Stats(), nil
}

// ReportStats renders the final statistics through the console tracer, when
// one is attached.
func (s *Simulation) ReportStats() {
	if s.consoleTracer == nil {
		return
	}

	s.consoleTracer.ReportStats(s.engine.Stats(), s.engine.FrameOccupancy())
}

// SwapLogPath returns the location of the swap log, empty when the swap log
// is off.
func (s *Simulation) SwapLogPath() string {
	if s.swapLog == nil {
		return ""
	}

	return s.swapLog.Path()
}

// Terminate flushes and closes the sinks attached to the simulation.
func (s *Simulation) Terminate() {
	if s.swapLog != nil {
		s.swapLog.Flush()
	}

	if s.dataRecorder != nil {
		s.dataRecorder.Close()
	}
}
