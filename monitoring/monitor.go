// Package monitoring turns a running simulation into a small web server so
// its progress and state can be watched from outside the process.
package monitoring

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"runtime/pprof"
	"strconv"
	"sync"
	"time"

	// Enable profiling
	_ "net/http/pprof"

	"github.com/google/pprof/profile"
	"github.com/gorilla/mux"
	"github.com/pkg/browser"
	"github.com/shirou/gopsutil/process"
	"github.com/syifan/goseth"

	"github.com/sarchlab/vmsim/replacement"
	"github.com/sarchlab/vmsim/sim"
)

// Monitor exposes a replacement engine and the progress of the run over
// HTTP. It only reads engine state; the simulation stays single-threaded.
type Monitor struct {
	engine     *replacement.Engine
	portNumber int

	progressBarsLock sync.Mutex
	progressBars     []*ProgressBar
}

// NewMonitor creates a new Monitor
func NewMonitor() *Monitor {
	return &Monitor{}
}

// WithPortNumber sets the port number of the monitor.
func (m *Monitor) WithPortNumber(portNumber int) *Monitor {
	if portNumber < 1000 {
		fmt.Fprintf(os.Stderr,
			"Port number %d is assigned to the monitoring server, "+
				"which is not allowed. Using a random port instead.\n",
			portNumber)
		portNumber = 0
	}

	m.portNumber = portNumber

	return m
}

// RegisterEngine registers the engine that is driven by the simulation.
func (m *Monitor) RegisterEngine(e *replacement.Engine) {
	m.engine = e
}

// CreateProgressBar creates a new progress bar.
func (m *Monitor) CreateProgressBar(name string, total uint64) *ProgressBar {
	bar := &ProgressBar{
		ID:        sim.GetIDGenerator().Generate(),
		Name:      name,
		StartTime: time.Now(),
		Total:     total,
	}

	m.progressBarsLock.Lock()
	defer m.progressBarsLock.Unlock()

	m.progressBars = append(m.progressBars, bar)

	return bar
}

// CompleteProgressBar removes a bar from the webpage.
func (m *Monitor) CompleteProgressBar(pb *ProgressBar) {
	m.progressBarsLock.Lock()
	defer m.progressBarsLock.Unlock()

	newBars := make([]*ProgressBar, 0, len(m.progressBars))
	for _, b := range m.progressBars {
		if b != pb {
			newBars = append(newBars, b)
		}
	}

	m.progressBars = newBars
}

// StartServer starts the monitor as a web server. It returns the address the
// server listens on.
func (m *Monitor) StartServer() string {
	r := mux.NewRouter()
	r.HandleFunc("/api/progress", m.listProgressBars)
	r.HandleFunc("/api/stats", m.listStats)
	r.HandleFunc("/api/engine", m.engineState)
	r.HandleFunc("/api/resource", m.listResources)
	r.HandleFunc("/api/profile", m.collectProfile)
	http.Handle("/", r)

	actualPort := ":0"
	if m.portNumber > 1000 {
		actualPort = ":" + strconv.Itoa(m.portNumber)
	}

	listener, err := net.Listen("tcp", actualPort)
	dieOnErr(err)

	addr := fmt.Sprintf("http://localhost:%d",
		listener.Addr().(*net.TCPAddr).Port)
	fmt.Fprintf(os.Stderr, "Monitoring simulation with %s\n", addr)

	go func() {
		err = http.Serve(listener, nil)
		dieOnErr(err)
	}()

	return addr
}

// OpenDashboard opens the monitor address in the default browser.
func (m *Monitor) OpenDashboard(addr string) {
	err := browser.OpenURL(addr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot open browser: %s\n", err)
	}
}

func (m *Monitor) listProgressBars(w http.ResponseWriter, _ *http.Request) {
	m.progressBarsLock.Lock()
	defer m.progressBarsLock.Unlock()

	bytes, err := json.Marshal(m.progressBars)
	dieOnErr(err)

	_, err = w.Write(bytes)
	dieOnErr(err)
}

type statsRsp struct {
	References uint64 `json:"references"`
	PageFaults uint64 `json:"page_faults"`
	SwapsOut   uint64 `json:"swaps_out"`
	Occupancy  []int  `json:"occupancy"`
}

func (m *Monitor) listStats(w http.ResponseWriter, _ *http.Request) {
	stats := m.engine.Stats()
	rsp := statsRsp{
		References: stats.References,
		PageFaults: stats.PageFaults,
		SwapsOut:   stats.SwapsOut,
		Occupancy:  m.engine.FrameOccupancy(),
	}

	bytes, err := json.Marshal(rsp)
	dieOnErr(err)

	_, err = w.Write(bytes)
	dieOnErr(err)
}

func (m *Monitor) engineState(w http.ResponseWriter, _ *http.Request) {
	serializer := goseth.NewSerializer()
	serializer.SetRoot(m.engine)
	serializer.SetMaxDepth(2)

	err := serializer.Serialize(w)
	dieOnErr(err)
}

type resourceRsp struct {
	CPUPercent float64 `json:"cpu_percent"`
	MemorySize uint64  `json:"memory_size"`
}

func (m *Monitor) listResources(w http.ResponseWriter, _ *http.Request) {
	pid := os.Getpid()
	process, err := process.NewProcess(int32(pid))
	dieOnErr(err)

	cpuPercent, err := process.CPUPercent()
	dieOnErr(err)

	memorySize, err := process.MemoryInfo()
	dieOnErr(err)

	rsp := resourceRsp{
		CPUPercent: cpuPercent,
		MemorySize: memorySize.RSS,
	}

	bytes, err := json.Marshal(rsp)
	dieOnErr(err)

	_, err = w.Write(bytes)
	dieOnErr(err)
}

func (m *Monitor) collectProfile(w http.ResponseWriter, _ *http.Request) {
	buf := bytes.NewBuffer(nil)

	err := pprof.StartCPUProfile(buf)
	dieOnErr(err)

	time.Sleep(time.Second)

	pprof.StopCPUProfile()

	prof, err := profile.ParseData(buf.Bytes())
	dieOnErr(err)

	bytes, err := json.Marshal(prof)
	dieOnErr(err)

	_, err = w.Write(bytes)
	dieOnErr(err)
}

func dieOnErr(err error) {
	if err != nil {
		log.Panic(err)
	}
}
