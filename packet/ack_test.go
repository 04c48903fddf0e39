package packet

import (
	"testing"

	"gotest.tools/assert"
)

func TestAckBareScenario(t *testing.T) {
	ack := AckInfo{ReceivedLastAck: 1000}

	buf := make([]byte, 64)
	out, err := ack.Serialize(buf)
	assert.NilError(t, err)
	assert.DeepEqual(t, out, []byte{0xe8, 0x03, 0x00, 0x00})

	decoded, err := DeserializeAck(out)
	assert.NilError(t, err)
	assert.Equal(t, decoded.ReceivedLastAck, uint32(1000))
	assert.Assert(t, decoded.Timings == nil)
	assert.Equal(t, decoded.Tier(), AckBare)
}

func TestAckTiers(t *testing.T) {
	bare := AckInfo{ReceivedLastAck: 7}
	timings := AckInfo{
		ReceivedLastAck: 7,
		Timings:         &AckTimingInfo{RTT: 10000, RTTVar: 2500, BufferSize: 8192},
	}
	rates := AckInfo{
		ReceivedLastAck: 7,
		Timings: &AckTimingInfo{
			RTT: 10000, RTTVar: 2500, BufferSize: 8192,
			Rates: &AckRateInfo{Speed: 1000, Bandwidth: 50000},
		},
	}

	assert.Equal(t, bare.Tier(), AckBare)
	assert.Equal(t, timings.Tier(), AckTimings)
	assert.Equal(t, rates.Tier(), AckRates)

	buf := make([]byte, 64)
	for _, ack := range []AckInfo{bare, timings, rates} {
		out, err := ack.Serialize(buf)
		assert.NilError(t, err)
		assert.Equal(t, len(out), ack.Tier().Size())

		decoded, err := DeserializeAck(out)
		assert.NilError(t, err)
		assert.DeepEqual(t, *decoded, ack)
	}
}

// Encoding must fail outright when the buffer cannot hold the required tier,
// never fall back to a smaller one.
func TestAckNoSilentDowngrade(t *testing.T) {
	rates := AckInfo{
		ReceivedLastAck: 7,
		Timings: &AckTimingInfo{
			RTT: 1, RTTVar: 2, BufferSize: 3,
			Rates: &AckRateInfo{Speed: 4, Bandwidth: 5},
		},
	}

	_, err := rates.Serialize(make([]byte, AckTimings.Size()))
	assert.Equal(t, err, ErrBufferTooSmall)

	timings := AckInfo{ReceivedLastAck: 7, Timings: &AckTimingInfo{RTT: 1}}
	_, err = timings.Serialize(make([]byte, AckBare.Size()))
	assert.Equal(t, err, ErrBufferTooSmall)
}

func TestAckRejectsBadLengths(t *testing.T) {
	for _, n := range []int{0, 1, 3, 5, 8, 12, 15, 17, 20, 23, 25, 32} {
		_, err := DeserializeAck(make([]byte, n))
		assert.Equal(t, err, ErrBadLength)
	}
}
