package packet

import "encoding/binary"

// AckTier names one of the three valid ACK wire layouts. The tier is decided
// by which optional blocks are populated on encode and purely by the received
// length on decode. There is no layout for a partially present block.
type AckTier int

const (
	// AckBare carries only the cumulative ack boundary.
	AckBare AckTier = iota
	// AckTimings adds RTT, RTT variance and the available buffer size.
	AckTimings
	// AckRates additionally adds the receive speed and link capacity.
	AckRates
)

// Size returns the encoded payload size of the tier in bytes.
func (t AckTier) Size() int {
	switch t {
	case AckBare:
		return 4
	case AckTimings:
		return 16
	}
	return 24
}

// AckInfo is the payload of an acknowledgement packet.
type AckInfo struct {
	// The packet sequence number to which all the previous packets have
	// been received (excluding)
	ReceivedLastAck uint32
	// Optional timing block, nil on a bare ACK
	Timings *AckTimingInfo
}

// AckTimingInfo is the optional block of flow measurements piggybacked on a
// full ACK.
type AckTimingInfo struct {
	// RTT in microseconds
	RTT uint32
	// RTT variance
	RTTVar uint32
	// Available receive buffer size in bytes
	BufferSize uint32
	// Optional rate block, nil when the estimators had nothing to report
	Rates *AckRateInfo
}

// AckRateInfo is the optional pair of rate estimates on a full ACK.
type AckRateInfo struct {
	// Packet receiving rate in packets per second
	Speed uint32
	// Estimated link capacity in packets per second
	Bandwidth uint32
}

func (a *AckInfo) Type() Type { return Ack }

// Tier reports which wire layout the populated fields occupy.
func (a *AckInfo) Tier() AckTier {
	if a.Timings == nil {
		return AckBare
	}
	if a.Timings.Rates == nil {
		return AckTimings
	}
	return AckRates
}

// Serialize encodes the smallest tier consistent with the populated fields
// and returns the written prefix. If buf cannot hold that tier the encode
// fails entirely; it is never silently downgraded to a smaller tier.
func (a *AckInfo) Serialize(buf []byte) ([]byte, error) {
	tier := a.Tier()
	size := tier.Size()
	if len(buf) < size {
		return nil, ErrBufferTooSmall
	}

	binary.LittleEndian.PutUint32(buf[0:4], a.ReceivedLastAck)

	if tier >= AckTimings {
		binary.LittleEndian.PutUint32(buf[4:8], a.Timings.RTT)
		binary.LittleEndian.PutUint32(buf[8:12], a.Timings.RTTVar)
		binary.LittleEndian.PutUint32(buf[12:16], a.Timings.BufferSize)
	}

	if tier == AckRates {
		binary.LittleEndian.PutUint32(buf[16:20], a.Timings.Rates.Speed)
		binary.LittleEndian.PutUint32(buf[20:24], a.Timings.Rates.Bandwidth)
	}

	return buf[:size], nil
}

// DeserializeAck decodes an ACK payload. The tier is selected purely from the
// payload length; any length outside the three valid sizes is rejected.
func DeserializeAck(buf []byte) (*AckInfo, error) {
	var tier AckTier
	switch len(buf) {
	case AckBare.Size():
		tier = AckBare
	case AckTimings.Size():
		tier = AckTimings
	case AckRates.Size():
		tier = AckRates
	default:
		return nil, ErrBadLength
	}

	ack := &AckInfo{
		ReceivedLastAck: binary.LittleEndian.Uint32(buf[0:4]),
	}

	if tier >= AckTimings {
		ack.Timings = &AckTimingInfo{
			RTT:        binary.LittleEndian.Uint32(buf[4:8]),
			RTTVar:     binary.LittleEndian.Uint32(buf[8:12]),
			BufferSize: binary.LittleEndian.Uint32(buf[12:16]),
		}
	}

	if tier == AckRates {
		ack.Timings.Rates = &AckRateInfo{
			Speed:     binary.LittleEndian.Uint32(buf[16:20]),
			Bandwidth: binary.LittleEndian.Uint32(buf[20:24]),
		}
	}

	return ack, nil
}
