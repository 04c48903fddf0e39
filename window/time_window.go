package window

import (
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"

	"github.com/Rexagon/tiny-udt/common"
)

// PacketTimeWindow keeps two fixed-capacity rings of inter-arrival times: one
// fed by every data packet for receive speed estimation, one fed by
// back-to-back probe pairs for link capacity estimation. Every slot is always
// populated (the rings start out filled with defaults), so the cursors just
// wrap and overwrite.
type PacketTimeWindow struct {
	// Inter-arrival samples of ordinary data packets
	packetWindow      []time.Duration
	packetWindowIndex int

	// Arrival gap samples of probing packet pairs
	probeWindow      []time.Duration
	probeWindowIndex int

	// Scratch space for the median selection, sized to the larger ring
	sorted []time.Duration

	lastSentTime             time.Time
	minPacketSendingInterval time.Duration

	lastArrivalTime    time.Time
	currentArrivalTime time.Time
	// Arrival time of the first packet of the current probe pair
	probeTime time.Time

	clock Clock
	log   *logrus.Entry
}

// NewPacketTimeWindow makes a timing window with arrivalSize inter-arrival
// slots and probeSize probe-gap slots. The arrival ring starts out as one
// packet per second, the probe ring as one per millisecond.
func NewPacketTimeWindow(arrivalSize, probeSize int) *PacketTimeWindow {
	w := &PacketTimeWindow{
		packetWindow: make([]time.Duration, arrivalSize),
		probeWindow:  make([]time.Duration, probeSize),
		sorted:       make([]time.Duration, max(arrivalSize, probeSize)),
		clock:        stdClock{},
		log:          logrus.WithField("window", "time"),
	}

	for i := range w.packetWindow {
		w.packetWindow[i] = time.Second
	}
	for i := range w.probeWindow {
		w.probeWindow[i] = time.Millisecond
	}

	now := w.clock.Now()
	w.lastSentTime = now
	w.lastArrivalTime = now
	w.currentArrivalTime = now
	w.probeTime = now

	return w
}

// OnPacketSent tracks the minimum nonzero interval between consecutive sends.
// The recorded minimum is only ever lowered; the connection layer uses it to
// cap outgoing pacing.
func (w *PacketTimeWindow) OnPacketSent(currentTime time.Time) {
	interval := since(currentTime, w.lastSentTime)
	if interval != 0 && (w.minPacketSendingInterval == 0 || interval < w.minPacketSendingInterval) {
		w.minPacketSendingInterval = interval
	}

	w.lastSentTime = currentTime
}

// MinPacketSendingInterval returns the smallest nonzero gap seen between
// consecutive sends, or zero if none has been observed yet.
func (w *PacketTimeWindow) MinPacketSendingInterval() time.Duration {
	return w.minPacketSendingInterval
}

// OnPacketArrival records the elapsed time since the previous data packet
// arrival, overwriting the oldest sample once the ring is full.
func (w *PacketTimeWindow) OnPacketArrival() {
	w.currentArrivalTime = w.clock.Now()

	w.packetWindow[w.packetWindowIndex] = since(w.currentArrivalTime, w.lastArrivalTime)
	w.packetWindowIndex = (w.packetWindowIndex + 1) % len(w.packetWindow)

	w.lastArrivalTime = w.currentArrivalTime
}

// Probe1Arrival marks the arrival of the first packet of a probe pair.
func (w *PacketTimeWindow) Probe1Arrival() {
	w.probeTime = w.clock.Now()
}

// Probe2Arrival records the arrival gap of the probe pair started by the
// preceding Probe1Arrival call.
func (w *PacketTimeWindow) Probe2Arrival() {
	w.currentArrivalTime = w.clock.Now()

	w.probeWindow[w.probeWindowIndex] = since(w.currentArrivalTime, w.probeTime)
	w.probeWindowIndex = (w.probeWindowIndex + 1) % len(w.probeWindow)
}

// PacketReceiveSpeed estimates the receive rate in packets per second.
//
// Samples outside [median/8, median*8) are discarded as outliers; packet
// timing is frequently bimodal (bursts vs. isolated packets) and the
// asymmetric band around the median is cheap to apply. If half the window or
// more is discarded the samples are too noisy to trust and 0 is returned,
// meaning no estimate. Callers must not read 0 as a literal rate.
func (w *PacketTimeWindow) PacketReceiveSpeed() uint64 {
	median := w.medianOf(w.packetWindow)
	upper := median << 3
	lower := median >> 3

	count := 0
	var total int64
	for _, d := range w.packetWindow {
		us := d.Microseconds()
		if us >= lower && us < upper {
			count++
			total += us
		}
	}

	if count <= len(w.packetWindow)>>1 || total == 0 {
		return 0
	}

	speed := uint64(1000000.0 / (float64(total) / float64(count)))

	if common.Debug {
		w.log.WithFields(logrus.Fields{
			"median": median,
			"count":  count,
			"speed":  speed,
		}).Trace("estimated receive speed")
	}
	return speed
}

// Bandwidth estimates the link capacity in packets per second from the probe
// gap samples. The same median band filter applies, but the median itself is
// always counted and the estimate is produced unconditionally, without the
// quorum check of PacketReceiveSpeed.
func (w *PacketTimeWindow) Bandwidth() uint64 {
	median := w.medianOf(w.probeWindow)
	upper := median << 3
	lower := median >> 3

	count := 1
	total := median
	for _, d := range w.probeWindow {
		us := d.Microseconds()
		if us >= lower && us < upper {
			count++
			total += us
		}
	}

	if total == 0 {
		return 0
	}

	bandwidth := uint64(1000000.0 / (float64(total) / float64(count)))

	if common.Debug {
		w.log.WithFields(logrus.Fields{
			"median":    median,
			"count":     count,
			"bandwidth": bandwidth,
		}).Trace("estimated bandwidth")
	}
	return bandwidth
}

// medianOf returns the middle order statistic of samples in microseconds,
// selected over the scratch copy so the ring itself stays untouched.
func (w *PacketTimeWindow) medianOf(samples []time.Duration) int64 {
	sorted := w.sorted[:len(samples)]
	copy(sorted, samples)
	slices.Sort(sorted)
	return sorted[len(sorted)/2].Microseconds()
}
