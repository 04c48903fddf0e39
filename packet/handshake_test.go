package packet

import (
	"testing"

	"gotest.tools/assert"
)

func testHandshake() HandshakeInfo {
	return HandshakeInfo{
		SocketType:     Stream,
		ISN:            0x12345678,
		MSS:            1500,
		FlightFlagSize: 25600,
		RequestType:    -1,
		ID:             0xcafebabe,
		Cookie:         0x5eed5eed,
		IP:             [4]uint32{0x0100007f, 0, 0, 0xffff0000},
	}
}

func TestHandshakeRoundTrip(t *testing.T) {
	for _, st := range []SocketType{Stream, Datagram} {
		hs := testHandshake()
		hs.SocketType = st

		buf := make([]byte, HandshakeSize)
		out, err := hs.Serialize(buf)
		assert.NilError(t, err)
		assert.Equal(t, len(out), HandshakeSize)
		assert.Equal(t, out[0], byte(Version))
		assert.Equal(t, out[4], byte(st))

		decoded, err := DeserializeHandshake(out)
		assert.NilError(t, err)
		assert.DeepEqual(t, *decoded, hs)
	}
}

func TestHandshakeRejectsBadVersion(t *testing.T) {
	hs := testHandshake()
	buf := make([]byte, HandshakeSize)
	out, err := hs.Serialize(buf)
	assert.NilError(t, err)

	out[0] = 5
	_, err = DeserializeHandshake(out)
	assert.Equal(t, err, ErrBadVersion)

	out[0] = 0
	_, err = DeserializeHandshake(out)
	assert.Equal(t, err, ErrBadVersion)
}

func TestHandshakeRejectsBadSocketType(t *testing.T) {
	hs := testHandshake()
	buf := make([]byte, HandshakeSize)
	out, err := hs.Serialize(buf)
	assert.NilError(t, err)

	for _, b := range []byte{0, 3, 0xff} {
		out[4] = b
		_, err = DeserializeHandshake(out)
		assert.Equal(t, err, ErrBadSocketType)
	}
}

func TestHandshakeShortBuffers(t *testing.T) {
	hs := testHandshake()
	_, err := hs.Serialize(make([]byte, HandshakeSize-1))
	assert.Equal(t, err, ErrBufferTooSmall)

	_, err = DeserializeHandshake(make([]byte, HandshakeSize-1))
	assert.Equal(t, err, ErrBadLength)
}
