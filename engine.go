package dsyrs

import (
	"context"
	"encoding/binary"
	"fmt"
	"time"
)

// engine turns register-level intents into bus transactions. Each
// operation is one Modbus round trip followed by the optional settle
// delay, giving slow drive firmware time to latch the value before the
// next frame arrives.
type engine struct {
	transport Transport
	settle    time.Duration
}

// ReadRegister reads one holding register.
func (e *engine) ReadRegister(ctx context.Context, address uint16) (uint16, error) {
	data, err := e.transport.ReadHoldingRegisters(ctx, address, 1)
	if err != nil {
		return 0, err
	}
	if len(data) < 2 {
		return 0, fmt.Errorf("read register %#04x: short response (%d bytes)", address, len(data))
	}
	if err := e.settleDown(ctx); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(data), nil
}

// ReadRegisters reads quantity consecutive holding registers.
func (e *engine) ReadRegisters(ctx context.Context, address, quantity uint16) ([]uint16, error) {
	data, err := e.transport.ReadHoldingRegisters(ctx, address, quantity)
	if err != nil {
		return nil, err
	}
	if len(data) < int(quantity)*2 {
		return nil, fmt.Errorf("read registers %#04x: short response (%d bytes)", address, len(data))
	}
	if err := e.settleDown(ctx); err != nil {
		return nil, err
	}
	values := make([]uint16, quantity)
	for i := range values {
		values[i] = binary.BigEndian.Uint16(data[i*2:])
	}
	return values, nil
}

// WriteRegister writes one holding register.
func (e *engine) WriteRegister(ctx context.Context, address, value uint16) error {
	if _, err := e.transport.WriteSingleRegister(ctx, address, value); err != nil {
		return err
	}
	return e.settleDown(ctx)
}

// WriteRegisters writes consecutive holding registers in one transaction.
func (e *engine) WriteRegisters(ctx context.Context, address uint16, values []uint16) error {
	data := make([]byte, len(values)*2)
	for i, v := range values {
		binary.BigEndian.PutUint16(data[i*2:], v)
	}
	if _, err := e.transport.WriteMultipleRegisters(ctx, address, uint16(len(values)), data); err != nil {
		return err
	}
	return e.settleDown(ctx)
}

// ReadUint32 reads the register pair at (address, address+1) as an
// unsigned 32-bit value, high word first.
func (e *engine) ReadUint32(ctx context.Context, address uint16) (uint32, error) {
	values, err := e.ReadRegisters(ctx, address, 2)
	if err != nil {
		return 0, err
	}
	return u32FromPair(values[0], values[1]), nil
}

// WriteUint32 writes an unsigned 32-bit value to the register pair at
// (address, address+1) in one transaction.
func (e *engine) WriteUint32(ctx context.Context, address uint16, value uint32) error {
	high, low := u32Pair(value)
	return e.WriteRegisters(ctx, address, []uint16{high, low})
}

// ReadInt32 reads the register pair at address as a signed 32-bit value.
func (e *engine) ReadInt32(ctx context.Context, address uint16) (int32, error) {
	v, err := e.ReadUint32(ctx, address)
	return int32(v), err
}

// WriteInt32 writes a signed 32-bit value to the register pair at address.
func (e *engine) WriteInt32(ctx context.Context, address uint16, value int32) error {
	return e.WriteUint32(ctx, address, uint32(value))
}

// settleDown waits the configured settle delay, giving up early when ctx
// is done.
func (e *engine) settleDown(ctx context.Context) error {
	if e.settle <= 0 {
		return nil
	}
	t := time.NewTimer(e.settle)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
