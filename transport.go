package dsyrs

import (
	"context"
	"fmt"
	"time"

	"github.com/grid-x/modbus"
	"github.com/grid-x/serial"
)

// Transport is the register-level bus access the client runs on. All
// methods honor ctx cancellation before starting a transaction; a
// transaction already on the wire runs to completion.
//
// Register data crosses the interface as big-endian byte slices, two bytes
// per register, matching the Modbus PDU layout.
type Transport interface {
	// SetSlave selects the station address for subsequent transactions.
	SetSlave(slaveID byte) error
	// ReadHoldingRegisters reads quantity registers starting at address.
	ReadHoldingRegisters(ctx context.Context, address, quantity uint16) ([]byte, error)
	// WriteSingleRegister writes one register and returns the echoed value.
	WriteSingleRegister(ctx context.Context, address, value uint16) ([]byte, error)
	// WriteMultipleRegisters writes quantity registers starting at address.
	WriteMultipleRegisters(ctx context.Context, address, quantity uint16, value []byte) ([]byte, error)
	// Close shuts down the underlying connection.
	Close() error
}

// ConnConfig carries the serial line settings for Connect. The zero value
// of each field falls back to the drive factory default.
type ConnConfig struct {
	// Device is the serial device, for example /dev/ttyUSB0.
	Device string
	// BaudRate defaults to 9600.
	BaudRate int
	// DataBits defaults to 8.
	DataBits int
	// Parity is N, E or O and defaults to N.
	Parity string
	// StopBits defaults to 2, the drive default frame format.
	StopBits int
	// Timeout bounds each bus transaction and defaults to 1s.
	Timeout time.Duration
	// RS485 configures driver-side direction control where the adapter
	// supports it.
	RS485 serial.RS485Config
}

// Conn is the RTU transport used on real hardware. It serializes nothing
// itself; callers coordinate bus access.
type Conn struct {
	handler *modbus.RTUClientHandler
	client  modbus.Client
}

var _ Transport = (*Conn)(nil)

// Connect opens the serial device and returns a ready Transport.
func Connect(cfg ConnConfig) (*Conn, error) {
	handler := modbus.NewRTUClientHandler(cfg.Device)
	handler.BaudRate = cfg.BaudRate
	if handler.BaudRate == 0 {
		handler.BaudRate = 9600
	}
	handler.DataBits = cfg.DataBits
	if handler.DataBits == 0 {
		handler.DataBits = 8
	}
	handler.Parity = cfg.Parity
	if handler.Parity == "" {
		handler.Parity = "N"
	}
	handler.StopBits = cfg.StopBits
	if handler.StopBits == 0 {
		handler.StopBits = 2
	}
	handler.Timeout = cfg.Timeout
	if handler.Timeout == 0 {
		handler.Timeout = time.Second
	}
	handler.RS485 = cfg.RS485

	if err := handler.Connect(); err != nil {
		return nil, fmt.Errorf("connect %s: %w", cfg.Device, err)
	}
	return &Conn{handler: handler, client: modbus.NewClient(handler)}, nil
}

// SetSlave selects the station address for subsequent transactions.
func (c *Conn) SetSlave(slaveID byte) error {
	c.handler.SetSlave(slaveID)
	return nil
}

// ReadHoldingRegisters reads quantity registers starting at address.
func (c *Conn) ReadHoldingRegisters(ctx context.Context, address, quantity uint16) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return c.client.ReadHoldingRegisters(address, quantity)
}

// WriteSingleRegister writes one register.
func (c *Conn) WriteSingleRegister(ctx context.Context, address, value uint16) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return c.client.WriteSingleRegister(address, value)
}

// WriteMultipleRegisters writes quantity registers starting at address.
func (c *Conn) WriteMultipleRegisters(ctx context.Context, address, quantity uint16, value []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return c.client.WriteMultipleRegisters(address, quantity, value)
}

// Close shuts down the serial connection.
func (c *Conn) Close() error {
	return c.handler.Close()
}
