// Package packet implements the wire encoding of every UDT control packet
// exchanged between peers. All integers are little-endian and densely packed.
// Encoding writes into a caller-provided buffer and returns the written
// prefix; decoding validates the buffer length against the type's valid wire
// layouts before touching any field.
package packet

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// Version is the protocol version carried in the first handshake byte.
// A handshake with any other version byte is rejected.
const Version = 4

// ErrBufferTooSmall indicates the destination buffer cannot hold the encoding
var ErrBufferTooSmall = errors.New("destination buffer too small")

// ErrBadLength indicates the received payload length matches none of the type's wire layouts
var ErrBadLength = errors.New("payload length matches no valid layout")

// ErrBadVersion indicates a handshake with an unsupported protocol version byte
var ErrBadVersion = errors.New("unsupported protocol version")

// ErrBadSocketType indicates a handshake socket-type byte outside {1, 2}
var ErrBadSocketType = errors.New("unknown socket type")

// ErrBadType indicates a control packet type nibble outside the defined range
var ErrBadType = errors.New("unknown control packet type")

// Type is the 4-bit control packet discriminant carried in the packet header.
type Type byte

const (
	Handshake         Type = 0x0
	KeepAlive         Type = 0x1
	Ack               Type = 0x2
	Nak               Type = 0x3
	CongestionWarning Type = 0x4
	Shutdown          Type = 0x5
	Ack2              Type = 0x6
	MessageDrop       Type = 0x7
)

// Valid reports whether t is one of the eight defined control packet types.
func (t Type) Valid() bool {
	return t <= MessageDrop
}

func (t Type) String() string {
	switch t {
	case Handshake:
		return "handshake"
	case KeepAlive:
		return "keep-alive"
	case Ack:
		return "ack"
	case Nak:
		return "nak"
	case CongestionWarning:
		return "congestion-warning"
	case Shutdown:
		return "shutdown"
	case Ack2:
		return "ack2"
	case MessageDrop:
		return "message-drop"
	}
	return "invalid"
}

// HeaderSize is the fixed encoded size of a packet header.
const HeaderSize = 16

// Header is the fixed 16-byte record carried by every packet. For control
// packets the sequence number field holds the type discriminant and any
// type-specific extra info (e.g. the ACK seqno acknowledged by an ACK2).
type Header struct {
	SeqNo     uint32
	MsgNo     uint32
	Timestamp uint32
	ID        uint32
}

// Serialize encodes the header into buf and returns the written prefix.
func (h *Header) Serialize(buf []byte) ([]byte, error) {
	if len(buf) < HeaderSize {
		return nil, ErrBufferTooSmall
	}
	binary.LittleEndian.PutUint32(buf[0:4], h.SeqNo)
	binary.LittleEndian.PutUint32(buf[4:8], h.MsgNo)
	binary.LittleEndian.PutUint32(buf[8:12], h.Timestamp)
	binary.LittleEndian.PutUint32(buf[12:16], h.ID)
	return buf[:HeaderSize], nil
}

// DeserializeHeader decodes the leading 16 bytes of buf.
func DeserializeHeader(buf []byte) (*Header, error) {
	if len(buf) < HeaderSize {
		return nil, ErrBadLength
	}
	return &Header{
		SeqNo:     binary.LittleEndian.Uint32(buf[0:4]),
		MsgNo:     binary.LittleEndian.Uint32(buf[4:8]),
		Timestamp: binary.LittleEndian.Uint32(buf[8:12]),
		ID:        binary.LittleEndian.Uint32(buf[12:16]),
	}, nil
}

// ControlInfo is implemented by every control packet payload type.
type ControlInfo interface {
	// Type returns the discriminant the payload is carried under.
	Type() Type
	// Serialize encodes the payload into buf and returns the written prefix.
	Serialize(buf []byte) ([]byte, error)
}

// DecodeControlInfo decodes a control packet payload according to the type
// discriminant taken from the header. The four payload-less types (keep-alive,
// congestion warning, shutdown, ack2) yield a nil ControlInfo and require an
// empty payload. A failed decode means the whole packet must be discarded;
// none of its fields may be trusted.
func DecodeControlInfo(t Type, payload []byte) (ControlInfo, error) {
	var info ControlInfo
	var err error

	switch t {
	case Handshake:
		var hs *HandshakeInfo
		if hs, err = DeserializeHandshake(payload); err == nil {
			info = hs
		}
	case Ack:
		var ack *AckInfo
		if ack, err = DeserializeAck(payload); err == nil {
			info = ack
		}
	case Nak:
		var nak *NakInfo
		if nak, err = DeserializeNak(payload); err == nil {
			info = nak
		}
	case MessageDrop:
		var drop *MessageDropInfo
		if drop, err = DeserializeMessageDrop(payload); err == nil {
			info = drop
		}
	case KeepAlive, CongestionWarning, Shutdown, Ack2:
		if len(payload) != 0 {
			err = ErrBadLength
		}
	default:
		return nil, errors.Wrapf(ErrBadType, "type nibble 0x%x", byte(t))
	}

	if err != nil {
		return nil, errors.Wrapf(err, "decoding %s payload", t)
	}
	return info, nil
}
