package obs

import "github.com/prometheus/client_golang/prometheus"

// BlocksProcessed counts 16-byte blocks processed, labeled by algorithm name
// and direction ("encrypt"/"decrypt"), per SPEC_FULL.md's domain-stack
// table. The core package never touches this counter; only the CLI does,
// around calls into sshcipher.
var BlocksProcessed = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "sshaes_blocks_processed_total",
		Help: "Number of 16-byte blocks processed, by algorithm and direction.",
	},
	[]string{"algorithm", "direction"},
)

// HardwarePath counts bench runs labeled by whether they dispatched
// to the hardware round engine, so a benchmark run records which path it
// actually measured.
var HardwarePath = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "sshaes_hardware_dispatch_total",
		Help: "Number of cipher contexts created, by whether they dispatched to the hardware path.",
	},
	[]string{"algorithm", "hardware"},
)

func init() {
	prometheus.MustRegister(BlocksProcessed)
	prometheus.MustRegister(HardwarePath)
}

// RecordBlocks adds n processed blocks to the counter for algorithm/direction.
func RecordBlocks(algorithm, direction string, n int) {
	BlocksProcessed.WithLabelValues(algorithm, direction).Add(float64(n))
}

// RecordDispatch records which round engine a new context selected.
func RecordDispatch(algorithm string, hardware bool) {
	HardwarePath.WithLabelValues(algorithm, boolLabel(hardware)).Inc()
}

func boolLabel(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
