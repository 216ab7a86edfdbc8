package dsyrs

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"sync"
)

var errInjected = errors.New("injected bus fault")

// busCall records one transaction seen by the fake transport.
type busCall struct {
	op      string
	address uint16
	values  []uint16
}

// fakeTransport is an in-memory register bank standing in for a drive on
// the bus. It records every transaction and can be armed to fail the n-th
// one.
type fakeTransport struct {
	mu     sync.Mutex
	regs   map[uint16]uint16
	calls  []busCall
	slave  byte
	failAt int // 1-based transaction index, 0 never fails
	closed bool
}

func newFakeTransport() *fakeTransport {
	return &fakeTransport{regs: make(map[uint16]uint16)}
}

func (f *fakeTransport) SetSlave(slaveID byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.slave = slaveID
	return nil
}

func (f *fakeTransport) record(op string, address uint16, values []uint16) error {
	f.calls = append(f.calls, busCall{op: op, address: address, values: values})
	if f.failAt > 0 && len(f.calls) == f.failAt {
		return errInjected
	}
	return nil
}

func (f *fakeTransport) ReadHoldingRegisters(ctx context.Context, address, quantity uint16) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("read", address, nil); err != nil {
		return nil, err
	}
	data := make([]byte, quantity*2)
	for i := uint16(0); i < quantity; i++ {
		binary.BigEndian.PutUint16(data[i*2:], f.regs[address+i])
	}
	return data, nil
}

func (f *fakeTransport) WriteSingleRegister(ctx context.Context, address, value uint16) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("write", address, []uint16{value}); err != nil {
		return nil, err
	}
	f.regs[address] = value
	data := make([]byte, 2)
	binary.BigEndian.PutUint16(data, value)
	return data, nil
}

func (f *fakeTransport) WriteMultipleRegisters(ctx context.Context, address, quantity uint16, value []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if int(quantity)*2 != len(value) {
		return nil, fmt.Errorf("quantity %d does not match %d data bytes", quantity, len(value))
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	values := make([]uint16, quantity)
	for i := range values {
		values[i] = binary.BigEndian.Uint16(value[i*2:])
	}
	if err := f.record("writeMultiple", address, values); err != nil {
		return nil, err
	}
	for i, v := range values {
		f.regs[address+uint16(i)] = v
	}
	data := make([]byte, 4)
	binary.BigEndian.PutUint16(data, address)
	binary.BigEndian.PutUint16(data[2:], quantity)
	return data, nil
}

func (f *fakeTransport) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func (f *fakeTransport) callLog() []busCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]busCall(nil), f.calls...)
}

func (f *fakeTransport) set(address, value uint16) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.regs[address] = value
}

func (f *fakeTransport) get(address uint16) uint16 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.regs[address]
}
