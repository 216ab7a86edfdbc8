package dsyrs

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestControlModeFromRaw(t *testing.T) {
	mode, err := ControlModeFromRaw(1)
	require.NoError(t, err)
	assert.Equal(t, ControlModeSpeed, mode)

	_, err = ControlModeFromRaw(3)
	var derr *DecodeError
	require.True(t, errors.As(err, &derr))
	assert.Equal(t, uint16(3), derr.Raw)
}

func TestPositionCmdSourceFromRaw(t *testing.T) {
	for _, raw := range []uint16{0, 1, 2, 4, 5} {
		src, err := PositionCmdSourceFromRaw(raw)
		require.NoError(t, err)
		assert.Equal(t, PositionCmdSource(raw), src)
	}
	// 3 is a reserved value inside the range.
	_, err := PositionCmdSourceFromRaw(3)
	assert.Error(t, err)
	_, err = PositionCmdSourceFromRaw(6)
	assert.Error(t, err)
}

func TestEnumDecodeBounds(t *testing.T) {
	_, err := EncoderTypeFromRaw(5)
	assert.Error(t, err)
	_, err = DIFunctionFromRaw(42)
	assert.Error(t, err)
	_, err = DOFunctionFromRaw(25)
	assert.Error(t, err)
	_, err = DILogicFromRaw(5)
	assert.Error(t, err)
	_, err = BaudRateFromRaw(7)
	assert.Error(t, err)
	_, err = HomingModeFromRaw(18)
	assert.Error(t, err)

	enc, err := EncoderTypeFromRaw(4)
	require.NoError(t, err)
	assert.Equal(t, Encoder23BitAbsolute, enc)
}

func TestBaudRateBPS(t *testing.T) {
	assert.Equal(t, 9600, Baud9600.BPS())
	assert.Equal(t, 115200, Baud115200.BPS())
	assert.Equal(t, 0, BaudRate(7).BPS())
}

func TestServoStateFromRaw(t *testing.T) {
	assert.Equal(t, StateReady, ServoStateFromRaw(0))
	assert.Equal(t, StateRunning, ServoStateFromRaw(1))
	assert.Equal(t, StateError, ServoStateFromRaw(2))
	assert.Equal(t, StateAlarm, ServoStateFromRaw(3))
	assert.Equal(t, StateUnknown, ServoStateFromRaw(9))
	// Only the low nibble carries the state.
	assert.Equal(t, StateRunning, ServoStateFromRaw(0xFF01))
	assert.Equal(t, "running", StateRunning.String())
}

func TestScaling(t *testing.T) {
	assert.Equal(t, uint16(250), encodeScaled(2.5, ScaleCurrent))
	assert.Equal(t, uint16(1000), encodeScaled(100, ScaleTorque))
	assert.InDelta(t, 2.5, decodeScaled(250, ScaleCurrent), 1e-9)
	assert.InDelta(t, 220.0, decodeScaled(2200, ScaleVoltage), 1e-9)

	// Halves round away from zero.
	assert.Equal(t, uint16(2), encodeScaled(0.015, ScaleCurrent))

	// Signed registers come back through the int16 reinterpretation.
	assert.InDelta(t, -10.0, decodeScaledSigned(uint16(0xFF9C), ScaleTorque), 1e-9)
}

func TestScalingRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		raw := rapid.Uint16Range(0, 30000).Draw(t, "raw")
		value := decodeScaled(raw, ScaleTorque)
		assert.Equal(t, raw, encodeScaled(value, ScaleTorque))
	})
}

func TestU32Pair(t *testing.T) {
	high, low := u32Pair(0x12345678)
	assert.Equal(t, uint16(0x1234), high)
	assert.Equal(t, uint16(0x5678), low)
	assert.Equal(t, uint32(0x12345678), u32FromPair(high, low))
}

func TestI32PairRoundTrip(t *testing.T) {
	for _, v := range []int32{math.MinInt32, -1, 0, 1, math.MaxInt32} {
		high, low := u32Pair(uint32(v))
		assert.Equal(t, v, int32(u32FromPair(high, low)), "value %d", v)
	}
	rapid.Check(t, func(t *rapid.T) {
		v := rapid.Int32().Draw(t, "v")
		high, low := u32Pair(uint32(v))
		assert.Equal(t, v, int32(u32FromPair(high, low)))
	})
}
