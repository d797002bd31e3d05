package sim

import (
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/rs/xid"
)

// IDGenerator can generate IDs
type IDGenerator interface {
	// Generate an ID
	Generate() string
}

var idGeneratorOnce sync.Once
var idGenerator IDGenerator

// GetIDGenerator returns the ID generator used in the current simulation.
// Since simulations are single-pass and single-threaded, sequential IDs are
// the default. They are deterministic across runs.
func GetIDGenerator() IDGenerator {
	idGeneratorOnce.Do(func() {
		idGenerator = &sequentialIDGenerator{}
	})

	return idGenerator
}

type sequentialIDGenerator struct {
	nextID uint64
}

func (g *sequentialIDGenerator) Generate() string {
	idNumber := atomic.AddUint64(&g.nextID, 1)
	return strconv.FormatUint(idNumber, 10)
}

// NewRunID generates a globally unique ID that names one simulation run.
// Run IDs tag output artifacts such as recording databases.
func NewRunID() string {
	return xid.New().String()
}
