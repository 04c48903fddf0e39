package packet

import "encoding/binary"

// HandshakeSize is the fixed encoded size of a handshake payload.
const HandshakeSize = 48

// SocketType is the delivery mode negotiated at handshake.
type SocketType byte

const (
	Stream   SocketType = 1
	Datagram SocketType = 2
)

// HandshakeInfo is the payload of a connection handshake packet.
type HandshakeInfo struct {
	// UDT socket type
	SocketType SocketType
	// Random initial sequence number
	ISN uint32
	// Maximum segment size, including UDP/IP headers
	MSS uint32
	// Flow control window size
	FlightFlagSize uint32
	// Connection request type, encodes the handshake phase and role
	RequestType int32
	// Socket ID
	ID uint32
	// SYN cookie
	Cookie uint32
	// The IP address that the peer's UDP port is bound to
	IP [4]uint32
}

func (h *HandshakeInfo) Type() Type { return Handshake }

// Serialize encodes the handshake into buf and returns the written 48-byte
// prefix. The version and socket-type bytes each occupy a full 32-bit word.
func (h *HandshakeInfo) Serialize(buf []byte) ([]byte, error) {
	if len(buf) < HandshakeSize {
		return nil, ErrBufferTooSmall
	}

	binary.LittleEndian.PutUint32(buf[0:4], Version)
	binary.LittleEndian.PutUint32(buf[4:8], uint32(h.SocketType))
	binary.LittleEndian.PutUint32(buf[8:12], h.ISN)
	binary.LittleEndian.PutUint32(buf[12:16], h.MSS)
	binary.LittleEndian.PutUint32(buf[16:20], h.FlightFlagSize)
	binary.LittleEndian.PutUint32(buf[20:24], uint32(h.RequestType))
	binary.LittleEndian.PutUint32(buf[24:28], h.ID)
	binary.LittleEndian.PutUint32(buf[28:32], h.Cookie)
	binary.LittleEndian.PutUint32(buf[32:36], h.IP[0])
	binary.LittleEndian.PutUint32(buf[36:40], h.IP[1])
	binary.LittleEndian.PutUint32(buf[40:44], h.IP[2])
	binary.LittleEndian.PutUint32(buf[44:48], h.IP[3])

	return buf[:HandshakeSize], nil
}

// DeserializeHandshake decodes a handshake payload. The version byte must
// equal Version and the socket-type byte must name a known socket type,
// otherwise the packet is rejected.
func DeserializeHandshake(buf []byte) (*HandshakeInfo, error) {
	if len(buf) < HandshakeSize {
		return nil, ErrBadLength
	}

	if buf[0] != Version {
		return nil, ErrBadVersion
	}

	socketType := SocketType(buf[4])
	switch socketType {
	case Stream, Datagram:
	default:
		return nil, ErrBadSocketType
	}

	return &HandshakeInfo{
		SocketType:     socketType,
		ISN:            binary.LittleEndian.Uint32(buf[8:12]),
		MSS:            binary.LittleEndian.Uint32(buf[12:16]),
		FlightFlagSize: binary.LittleEndian.Uint32(buf[16:20]),
		RequestType:    int32(binary.LittleEndian.Uint32(buf[20:24])),
		ID:             binary.LittleEndian.Uint32(buf[24:28]),
		Cookie:         binary.LittleEndian.Uint32(buf[28:32]),
		IP: [4]uint32{
			binary.LittleEndian.Uint32(buf[32:36]),
			binary.LittleEndian.Uint32(buf[36:40]),
			binary.LittleEndian.Uint32(buf[40:44]),
			binary.LittleEndian.Uint32(buf[44:48]),
		},
	}, nil
}
