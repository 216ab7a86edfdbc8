package dsyrs

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngineReadRegister(t *testing.T) {
	ft := newFakeTransport()
	ft.set(P18BusVoltage, 2200)
	e := &engine{transport: ft}

	v, err := e.ReadRegister(context.Background(), P18BusVoltage)
	require.NoError(t, err)
	assert.Equal(t, uint16(2200), v)
}

func TestEngineWriteRegisters(t *testing.T) {
	ft := newFakeTransport()
	e := &engine{transport: ft}

	err := e.WriteRegisters(context.Background(), 0x0D08, []uint16{0x0001, 0xFFFF})
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0001), ft.get(0x0D08))
	assert.Equal(t, uint16(0xFFFF), ft.get(0x0D09))

	calls := ft.callLog()
	require.Len(t, calls, 1, "a register pair is one transaction")
	assert.Equal(t, "writeMultiple", calls[0].op)
}

func TestEngineUint32RoundTrip(t *testing.T) {
	ft := newFakeTransport()
	e := &engine{transport: ft}
	ctx := context.Background()

	require.NoError(t, e.WriteUint32(ctx, P04Gear1Numerator, 0x00020000))
	assert.Equal(t, uint16(0x0002), ft.get(P04Gear1Numerator), "high word at the lower address")
	assert.Equal(t, uint16(0x0000), ft.get(P04Gear1Numerator+1))

	v, err := e.ReadUint32(ctx, P04Gear1Numerator)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x00020000), v)
}

func TestEngineInt32Negative(t *testing.T) {
	ft := newFakeTransport()
	e := &engine{transport: ft}
	ctx := context.Background()

	require.NoError(t, e.WriteInt32(ctx, P16HomeOffset, -1))
	assert.Equal(t, uint16(0xFFFF), ft.get(P16HomeOffset))
	assert.Equal(t, uint16(0xFFFF), ft.get(P16HomeOffset+1))

	v, err := e.ReadInt32(ctx, P16HomeOffset)
	require.NoError(t, err)
	assert.Equal(t, int32(-1), v)
}

func TestEngineSettleDelay(t *testing.T) {
	ft := newFakeTransport()
	e := &engine{transport: ft, settle: 5 * time.Millisecond}

	start := time.Now()
	require.NoError(t, e.WriteRegister(context.Background(), P05JogSpeed, 100))
	assert.GreaterOrEqual(t, time.Since(start), 5*time.Millisecond)
}

func TestEngineSettleCancelled(t *testing.T) {
	ft := newFakeTransport()
	e := &engine{transport: ft, settle: time.Minute}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- e.WriteRegister(ctx, P05JogSpeed, 100)
	}()
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("settle delay did not honor cancellation")
	}
}

func TestEngineCancelledBeforeCall(t *testing.T) {
	ft := newFakeTransport()
	e := &engine{transport: ft}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := e.ReadRegister(ctx, P18ServoStatus)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, ft.callLog(), "no transaction after cancellation")
}
