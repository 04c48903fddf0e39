// Package window implements the flow measurement state of a UDT connection:
// the ACK history window used to pair ACK2 packets with the ACKs they confirm,
// and the packet/probe timing windows feeding the receive speed and link
// capacity estimators.
//
// The windows are plain single-owner state. Calls must be made in the true
// chronological order of network events; the connection layer owns one
// instance per connection and serializes access to it.
package window

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Rexagon/tiny-udt/common"
)

// An Acknowledgement is the result of matching an ACK2 against a previously
// stored ACK record.
type Acknowledgement struct {
	// The data seqno boundary that the matched ACK announced
	DataSeqNo uint32
	// Round-trip delay between sending the ACK and receiving its ACK2,
	// floored at zero
	RTT time.Duration
}

type ackItem struct {
	// The time the ACK was sent
	timestamp time.Time
	// Seqno of the ACK packet itself
	seqNo uint32
	// Data seqno carried by the ACK packet
	dataSeqNo uint32
}

// AckWindow is a fixed-capacity ring of sent-ACK records. Store appends at
// head, Acknowledge scans the live range [tail, head). A full window evicts
// the oldest record; an unmatched stale ACK is expected and harmless.
type AckWindow struct {
	items []ackItem
	// Index of the next write slot, one past the latest record
	head int
	// Index of the oldest live record
	tail int

	clock Clock
	log   *logrus.Entry
}

// NewAckWindow makes an ACK window holding up to size-1 unmatched records.
func NewAckWindow(size int) *AckWindow {
	return &AckWindow{
		items: make([]ackItem, size),
		clock: stdClock{},
		log:   logrus.WithField("window", "ack"),
	}
}

// Store writes a new ACK record at head, stamped with the current time.
// If the window is full the oldest unmatched record is dropped.
func (w *AckWindow) Store(seqNo, dataSeqNo uint32) {
	w.items[w.head] = ackItem{
		timestamp: w.clock.Now(),
		seqNo:     seqNo,
		dataSeqNo: dataSeqNo,
	}

	w.head = (w.head + 1) % len(w.items)
	if w.head == w.tail {
		w.tail = (w.tail + 1) % len(w.items)
	}
}

// Acknowledge searches the live range for the ACK that an ACK2 confirms and
// derives the RTT from its stored send time. A miss returns nil: an ACK2 for
// an already-pruned or unknown ACK is simply ignored.
//
// On a match everything up to and including the matched record is discarded;
// older ACKs are superseded and will never be legitimately matched again. If
// the match is the newest record the whole window is reset, since an ACK2 for
// the newest pending ACK implicitly confirms all of them.
func (w *AckWindow) Acknowledge(seqNo uint32) *Acknowledgement {
	size := len(w.items)

	end := w.head
	if w.head < w.tail {
		// head has wrapped past the physical end of the window
		end = w.head + size
	}

	for i := w.tail; i < end; i++ {
		item := &w.items[i%size]
		if item.seqNo != seqNo {
			continue
		}

		ack := &Acknowledgement{
			DataSeqNo: item.dataSeqNo,
			RTT:       since(w.clock.Now(), item.timestamp),
		}
		w.bumpOrReset(i % size)

		if common.Debug {
			w.log.WithFields(logrus.Fields{
				"seqNo":     seqNo,
				"dataSeqNo": ack.DataSeqNo,
				"rtt":       ack.RTT,
			}).Trace("matched ack2")
		}
		return ack
	}

	return nil
}

func (w *AckWindow) bumpOrReset(i int) {
	if (i+1)%len(w.items) == w.head {
		w.head = 0
		w.tail = 0
	} else {
		w.tail = (i + 1) % len(w.items)
	}
}
