package common

// Debug gates the expensive trace logging on the per-packet paths. The
// logging calls construct field maps, so they are kept behind this flag.
var Debug = false

// Default window capacities passed by the connection layer. They mirror the
// reference UDT implementation.
const (
	// DefaultAckWindowSize is the number of unmatched ACK records kept
	// while waiting for their ACK2.
	DefaultAckWindowSize = 1024

	// DefaultArrivalWindowSize is the number of packet inter-arrival
	// samples used for receive speed estimation.
	DefaultArrivalWindowSize = 16

	// DefaultProbeWindowSize is the number of probe-pair gap samples used
	// for link capacity estimation.
	DefaultProbeWindowSize = 64
)
