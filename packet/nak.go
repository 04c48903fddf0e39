package packet

import "encoding/binary"

// Encoded NAK payload sizes.
const (
	NakSingleSize = 4
	NakRangeSize  = 8
)

// NakInfo is the payload of a loss report packet. A NAK either names one
// lost packet or carries a caller-compressed loss range; there is no tag
// byte on the wire, the variant is decided by the payload length alone.
type NakInfo struct {
	// Loss holds the lost seqno in Loss[0], or both words of the
	// compressed range when Range is set.
	Loss [2]uint32
	// Range selects the two-word variant.
	Range bool
}

// SingleLoss builds a NAK reporting one lost packet.
func SingleLoss(seqNo uint32) NakInfo {
	return NakInfo{Loss: [2]uint32{seqNo, 0}}
}

// LossRange builds a NAK carrying a compressed loss range.
func LossRange(first, second uint32) NakInfo {
	return NakInfo{Loss: [2]uint32{first, second}, Range: true}
}

func (n *NakInfo) Type() Type { return Nak }

// Serialize encodes the NAK into buf and returns the written prefix.
func (n *NakInfo) Serialize(buf []byte) ([]byte, error) {
	if n.Range {
		if len(buf) < NakRangeSize {
			return nil, ErrBufferTooSmall
		}
		binary.LittleEndian.PutUint32(buf[0:4], n.Loss[0])
		binary.LittleEndian.PutUint32(buf[4:8], n.Loss[1])
		return buf[:NakRangeSize], nil
	}

	if len(buf) < NakSingleSize {
		return nil, ErrBufferTooSmall
	}
	binary.LittleEndian.PutUint32(buf[0:4], n.Loss[0])
	return buf[:NakSingleSize], nil
}

// DeserializeNak decodes a NAK payload, picking the variant from the length.
func DeserializeNak(buf []byte) (*NakInfo, error) {
	switch len(buf) {
	case NakRangeSize:
		return &NakInfo{
			Loss: [2]uint32{
				binary.LittleEndian.Uint32(buf[0:4]),
				binary.LittleEndian.Uint32(buf[4:8]),
			},
			Range: true,
		}, nil
	case NakSingleSize:
		return &NakInfo{
			Loss: [2]uint32{binary.LittleEndian.Uint32(buf[0:4]), 0},
		}, nil
	}
	return nil, ErrBadLength
}
