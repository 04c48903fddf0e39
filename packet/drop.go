package packet

import "encoding/binary"

// MessageDropSize is the fixed encoded size of a message drop request payload.
const MessageDropSize = 8

// MessageDropInfo is the payload of a message drop request, naming the
// inclusive range of packets belonging to the dropped message.
type MessageDropInfo struct {
	// First sequence number in the message
	FirstSeqNo uint32
	// Last sequence number in the message
	LastSeqNo uint32
}

func (m *MessageDropInfo) Type() Type { return MessageDrop }

// Serialize encodes the drop request into buf and returns the written prefix.
func (m *MessageDropInfo) Serialize(buf []byte) ([]byte, error) {
	if len(buf) < MessageDropSize {
		return nil, ErrBufferTooSmall
	}
	binary.LittleEndian.PutUint32(buf[0:4], m.FirstSeqNo)
	binary.LittleEndian.PutUint32(buf[4:8], m.LastSeqNo)
	return buf[:MessageDropSize], nil
}

// DeserializeMessageDrop decodes a message drop request payload.
func DeserializeMessageDrop(buf []byte) (*MessageDropInfo, error) {
	if len(buf) != MessageDropSize {
		return nil, ErrBadLength
	}
	return &MessageDropInfo{
		FirstSeqNo: binary.LittleEndian.Uint32(buf[0:4]),
		LastSeqNo:  binary.LittleEndian.Uint32(buf[4:8]),
	}, nil
}
