package dsyrs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestParamAddr(t *testing.T) {
	for _, tt := range []struct {
		group, index uint8
		want         uint16
	}{
		{0, 0, 0x0000},
		{0, 8, 0x0008},
		{1, 4, 0x0104},
		{13, 8, 0x0D08},
		{16, 14, 0x100E},
		{18, 0, 0x1200},
		{255, 255, 0xFFFF},
	} {
		assert.Equal(t, tt.want, ParamAddr(tt.group, tt.index), "P%02d.%02d", tt.group, tt.index)
	}
}

func TestParamAddrProp(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		group := rapid.Uint8().Draw(t, "group")
		index := rapid.Uint8().Draw(t, "index")
		addr := ParamAddr(group, index)
		assert.Equal(t, uint16(group), addr>>8)
		assert.Equal(t, uint16(index), addr&0xFF)
	})
}

func TestSegmentRegisters(t *testing.T) {
	disp, ok := SegmentDisplacementRegister(1)
	require.True(t, ok)
	assert.Equal(t, ParamAddr(13, 8), disp)

	speed, ok := SegmentSpeedRegister(1)
	require.True(t, ok)
	assert.Equal(t, ParamAddr(13, 10), speed)

	ramp, ok := SegmentAccelDecelRegister(1)
	require.True(t, ok)
	assert.Equal(t, ParamAddr(13, 11), ramp)

	wait, ok := SegmentWaitTimeRegister(1)
	require.True(t, ok)
	assert.Equal(t, ParamAddr(13, 12), wait)

	disp16, ok := SegmentDisplacementRegister(16)
	require.True(t, ok)
	assert.Equal(t, ParamAddr(13, 83), disp16)

	_, ok = SegmentDisplacementRegister(0)
	assert.False(t, ok)
	_, ok = SegmentDisplacementRegister(17)
	assert.False(t, ok)
}

func TestSegmentRegistersDisjoint(t *testing.T) {
	// The displacement takes two registers, so consecutive segments must
	// sit five addresses apart without overlap.
	seen := make(map[uint16]uint8)
	for seg := uint8(MinSegment); seg <= MaxSegment; seg++ {
		disp, ok := SegmentDisplacementRegister(seg)
		require.True(t, ok)
		for _, addr := range []uint16{disp, disp + 1} {
			if prev, dup := seen[addr]; dup {
				t.Fatalf("register %#04x of segment %d already used by segment %d", addr, seg, prev)
			}
			seen[addr] = seg
		}
		for _, lookup := range []func(uint8) (uint16, bool){
			SegmentSpeedRegister, SegmentAccelDecelRegister, SegmentWaitTimeRegister,
		} {
			addr, ok := lookup(seg)
			require.True(t, ok)
			if prev, dup := seen[addr]; dup {
				t.Fatalf("register %#04x of segment %d already used by segment %d", addr, seg, prev)
			}
			seen[addr] = seg
		}
	}
}

func TestSpeedSegmentRegisters(t *testing.T) {
	speed, ok := SpeedSegmentSpeedRegister(1)
	require.True(t, ok)
	assert.Equal(t, ParamAddr(14, 7), speed)

	speed16, ok := SpeedSegmentSpeedRegister(16)
	require.True(t, ok)
	assert.Equal(t, ParamAddr(14, 52), speed16)

	tm, ok := SpeedSegmentTimeRegister(2)
	require.True(t, ok)
	assert.Equal(t, ParamAddr(14, 11), tm)

	_, ok = SpeedSegmentSpeedRegister(17)
	assert.False(t, ok)
}

func TestDigitalIORegisters(t *testing.T) {
	fn, ok := DIFunctionRegister(1)
	require.True(t, ok)
	assert.Equal(t, uint16(P02DI1Function), fn)

	fn3, ok := DIFunctionRegister(3)
	require.True(t, ok)
	assert.Equal(t, uint16(P02DI3Function), fn3)

	logic, ok := DILogicRegister(2)
	require.True(t, ok)
	assert.Equal(t, uint16(P02DI2Logic), logic)

	_, ok = DIFunctionRegister(0)
	assert.False(t, ok)
	_, ok = DIFunctionRegister(4)
	assert.False(t, ok)

	do, ok := DOFunctionRegister(2)
	require.True(t, ok)
	assert.Equal(t, uint16(P02DO2Function), do)

	_, ok = DOFunctionRegister(3)
	assert.False(t, ok)
	_, ok = DOLogicRegister(0)
	assert.False(t, ok)
}
