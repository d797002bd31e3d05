package simulation

import (
	"log"

	"github.com/sarchlab/vmsim/datarecording"
	"github.com/sarchlab/vmsim/monitoring"
	"github.com/sarchlab/vmsim/replacement"
	"github.com/sarchlab/vmsim/sim"
	"github.com/sarchlab/vmsim/tracing"
)

// Builder can be used to build a simulation.
type Builder struct {
	numFrames int
	numPages  int

	consoleLogger  *log.Logger
	swapLogPath    string
	recordingOn    bool
	outputFileName string
	monitorOn      bool
	monitorPort    int
	dashboardOn    bool
}

// MakeBuilder creates a new builder.
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

// WithConsoleLogger attaches a per-step reporter writing to the logger.
func (b Builder) WithConsoleLogger(logger *log.Logger) Builder {
	b.consoleLogger = logger
	return b
}

// WithSwapLogPath enables the swap-out log file at the given path.
func (b Builder) WithSwapLogPath(path string) Builder {
	b.swapLogPath = path
	return b
}

// WithDataRecording enables recording of steps and swap events into a
// SQLite database.
func (b Builder) WithDataRecording() Builder {
	b.recordingOn = true
	return b
}

// WithOutputFileName sets the custom output file name for the data recorder.
func (b Builder) WithOutputFileName(filename string) Builder {
	b.outputFileName = filename
	return b
}

// WithMonitoring starts a monitoring web server for the run.
func (b Builder) WithMonitoring() Builder {
	b.monitorOn = true
	return b
}

// WithMonitorPort sets the port number for the monitoring server.
func (b Builder) WithMonitorPort(port int) Builder {
	b.monitorPort = port
	return b
}

// WithDashboard opens the monitor address in a browser once the server is
// up.
func (b Builder) WithDashboard() Builder {
	b.dashboardOn = true
	return b
}

func (b Builder) parametersMustBeValid() {
	if !b.monitorOn && b.monitorPort != 0 {
		panic("monitor port cannot be set when monitoring is disabled")
	}

	if !b.monitorOn && b.dashboardOn {
		panic("dashboard cannot be opened when monitoring is disabled")
	}

	if !b.recordingOn && b.outputFileName != "" {
		panic("output file name cannot be set when recording is disabled")
	}
}

// Build builds the simulation. Non-positive frame or page counts fail with
// vm.ErrInvalidConfiguration before any state is created.
func (b Builder) Build() (*Simulation, error) {
	b.parametersMustBeValid()

	engine, err := replacement.MakeBuilder().
		WithNumFrames(b.numFrames).
		WithNumPages(b.numPages).
		Build("Engine")
	if err != nil {
		return nil, err
	}

	s := &Simulation{
		id:     sim.NewRunID(),
		engine: engine,
	}

	if b.consoleLogger != nil {
		s.consoleTracer = tracing.NewConsoleTracer(b.consoleLogger)
		engine.AcceptHook(s.consoleTracer)
	}

	if b.swapLogPath != "" {
		s.swapLog = tracing.NewSwapLogTracer(b.swapLogPath)
		s.swapLog.Init()
		engine.AcceptHook(s.swapLog)
	}

	if b.recordingOn {
		outputPath := b.outputFileName
		if outputPath == "" {
			outputPath = "vmsim_" + s.id
		}
		s.dataRecorder = datarecording.NewDataRecorder(outputPath)
		engine.AcceptHook(tracing.NewDBTracer(s.dataRecorder))
	}

	if b.monitorOn {
		s.monitor = monitoring.NewMonitor()
		if b.monitorPort > 0 {
			s.monitor.WithPortNumber(b.monitorPort)
		}
		s.monitor.RegisterEngine(engine)

		addr := s.monitor.StartServer()
		if b.dashboardOn {
			s.monitor.OpenDashboard(addr)
		}
	}

	return s, nil
}
