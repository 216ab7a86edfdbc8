/*
Package dsyrs provides a MODBUS RTU parameter client for the DSY-RS low
voltage servo drive family.
*/
package dsyrs

import (
	"context"
	"fmt"
	"math"
	"time"
)

// BroadcastID is the Modbus broadcast station address. Writes to it reach
// every drive on the bus; reads are not possible.
const BroadcastID = 0

// MaxSlaveID is the highest valid Modbus station address.
const MaxSlaveID = 247

// noopLogger drops everything; it is the default warning sink.
type noopLogger struct{}

func (noopLogger) Printf(string, ...interface{}) {}

// logger is the warning hook of the client. The standard library
// log.Logger and anything with a compatible Printf satisfy it.
type logger interface {
	Printf(format string, v ...interface{})
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithSettleDelay inserts a pause after every bus transaction. Some drive
// firmware revisions drop frames that arrive while a previous write is
// still being latched.
func WithSettleDelay(d time.Duration) ClientOption {
	return func(c *Client) { c.engine.settle = d }
}

// WithLogger directs advisory warnings, such as identity mismatches found
// during Init, to l.
func WithLogger(l logger) ClientOption {
	return func(c *Client) { c.log = l }
}

// Client drives one DSY-RS servo over a Transport. It issues at most one
// bus transaction at a time and is not safe for concurrent use; wrap it in
// a SyncClient to share it between goroutines.
type Client struct {
	engine  engine
	log     logger
	slaveID byte
}

// NewClient returns a Client on the given transport. The station address
// is selected later by Init or SetSlave.
func NewClient(t Transport, opts ...ClientOption) *Client {
	c := &Client{
		engine: engine{transport: t},
		log:    noopLogger{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetSlave selects the station address for subsequent operations.
func (c *Client) SetSlave(slaveID byte) error {
	if c.engine.transport == nil {
		return ErrTransportReleased
	}
	if err := c.engine.transport.SetSlave(slaveID); err != nil {
		return err
	}
	c.slaveID = slaveID
	return nil
}

// ReleaseTransport hands the transport back to the caller, for example to
// address a different drive on the same bus. Every later call on this
// client returns ErrTransportReleased.
func (c *Client) ReleaseTransport() Transport {
	t := c.engine.transport
	c.engine.transport = nil
	return t
}

func (c *Client) ready() error {
	if c.engine.transport == nil {
		return ErrTransportReleased
	}
	return nil
}

func (c *Client) readable() error {
	if err := c.ready(); err != nil {
		return err
	}
	if c.slaveID == BroadcastID {
		return ErrBroadcastRead
	}
	return nil
}

// Init applies the base drive setup and verifies the motor identity.
//
// It selects the station, writes the control mode, rotation direction and
// speed ceiling, then reads back the identity registers named in cfg and
// reports mismatches through the logger. Identity mismatches are advisory:
// a replaced motor shows up here before it damages anything, but the setup
// itself has already succeeded. On the broadcast address all verification
// reads are skipped.
func (c *Client) Init(ctx context.Context, cfg ServoConfig) error {
	if err := c.ready(); err != nil {
		return err
	}
	if cfg.SlaveID > MaxSlaveID {
		return &SlaveIDError{SlaveID: int(cfg.SlaveID)}
	}
	if cfg.MaxSpeed > 10000 {
		return &RangeError{Param: "max speed", Value: int64(cfg.MaxSpeed), Min: 0, Max: 10000}
	}
	if err := c.SetSlave(cfg.SlaveID); err != nil {
		return err
	}
	if err := c.engine.WriteRegister(ctx, P00ControlMode, uint16(cfg.ControlMode)); err != nil {
		return fmt.Errorf("write control mode: %w", err)
	}
	if err := c.engine.WriteRegister(ctx, P00Direction, uint16(cfg.Direction)); err != nil {
		return fmt.Errorf("write direction: %w", err)
	}
	if err := c.engine.WriteRegister(ctx, P00MaxSpeed, cfg.MaxSpeed); err != nil {
		return fmt.Errorf("write max speed: %w", err)
	}
	if cfg.SlaveID == BroadcastID {
		return nil
	}

	// The identity registers are read unconditionally so that a dead or
	// misaddressed drive fails Init even without configured expectations.
	model, err := c.engine.ReadRegister(ctx, P01MotorModel)
	if err != nil {
		return fmt.Errorf("read motor model: %w", err)
	}
	if cfg.MotorModelCode != nil && model != *cfg.MotorModelCode {
		c.log.Printf("dsyrs: motor model %d does not match configured %d", model, *cfg.MotorModelCode)
	}
	raw, err := c.engine.ReadRegister(ctx, P01RatedCurrent)
	if err != nil {
		return fmt.Errorf("read rated current: %w", err)
	}
	if cfg.RatedCurrent != nil {
		// Compare in raw counts; one count of slack keeps the 0.01 A
		// quantization from warning on an exact match.
		want := int(encodeScaled(*cfg.RatedCurrent, ScaleCurrent))
		if diff := int(raw) - want; diff < -1 || diff > 1 {
			c.log.Printf("dsyrs: rated current %.2fA does not match configured %.2fA",
				decodeScaled(raw, ScaleCurrent), *cfg.RatedCurrent)
		}
	}
	raw, err = c.engine.ReadRegister(ctx, P01EncoderSelection)
	if err != nil {
		return fmt.Errorf("read encoder type: %w", err)
	}
	if cfg.EncoderType != nil {
		enc, err := EncoderTypeFromRaw(raw)
		if err != nil {
			c.log.Printf("dsyrs: %v", err)
		} else if enc != *cfg.EncoderType {
			c.log.Printf("dsyrs: encoder type %d does not match configured %d", enc, *cfg.EncoderType)
		}
	}
	res, err := c.engine.ReadUint32(ctx, P01EncoderResolution)
	if err != nil {
		return fmt.Errorf("read encoder resolution: %w", err)
	}
	if cfg.EncoderResolution != nil && res != *cfg.EncoderResolution {
		c.log.Printf("dsyrs: encoder resolution %d does not match configured %d", res, *cfg.EncoderResolution)
	}
	return nil
}

// ReadRegister reads one holding register as a raw word.
func (c *Client) ReadRegister(ctx context.Context, address uint16) (uint16, error) {
	if err := c.readable(); err != nil {
		return 0, err
	}
	return c.engine.ReadRegister(ctx, address)
}

// WriteRegister writes one holding register as a raw word.
func (c *Client) WriteRegister(ctx context.Context, address, value uint16) error {
	if err := c.ready(); err != nil {
		return err
	}
	return c.engine.WriteRegister(ctx, address, value)
}

// ReadUint32 reads the unsigned 32-bit value at the register pair
// (address, address+1).
func (c *Client) ReadUint32(ctx context.Context, address uint16) (uint32, error) {
	if err := c.readable(); err != nil {
		return 0, err
	}
	return c.engine.ReadUint32(ctx, address)
}

// WriteUint32 writes an unsigned 32-bit value to the register pair
// (address, address+1) in one transaction.
func (c *Client) WriteUint32(ctx context.Context, address uint16, value uint32) error {
	if err := c.ready(); err != nil {
		return err
	}
	return c.engine.WriteUint32(ctx, address, value)
}

// ReadInt32 reads the signed 32-bit value at the register pair.
func (c *Client) ReadInt32(ctx context.Context, address uint16) (int32, error) {
	if err := c.readable(); err != nil {
		return 0, err
	}
	return c.engine.ReadInt32(ctx, address)
}

// WriteInt32 writes a signed 32-bit value to the register pair.
func (c *Client) WriteInt32(ctx context.Context, address uint16, value int32) error {
	if err := c.ready(); err != nil {
		return err
	}
	return c.engine.WriteInt32(ctx, address, value)
}

// SetControlMode writes the control mode to P00.00.
func (c *Client) SetControlMode(ctx context.Context, mode ControlMode) error {
	return c.WriteRegister(ctx, P00ControlMode, uint16(mode))
}

// GetControlMode reads the control mode from P00.00.
func (c *Client) GetControlMode(ctx context.Context) (ControlMode, error) {
	raw, err := c.ReadRegister(ctx, P00ControlMode)
	if err != nil {
		return 0, err
	}
	return ControlModeFromRaw(raw)
}

// SetDirection writes the forward rotation direction to P00.01.
func (c *Client) SetDirection(ctx context.Context, d Direction) error {
	return c.WriteRegister(ctx, P00Direction, uint16(d))
}

// GetDirection reads the forward rotation direction from P00.01.
func (c *Client) GetDirection(ctx context.Context) (Direction, error) {
	raw, err := c.ReadRegister(ctx, P00Direction)
	if err != nil {
		return 0, err
	}
	return DirectionFromRaw(raw)
}

// SetRigidity writes the rigidity level, 0 to 31, to P00.04.
func (c *Client) SetRigidity(ctx context.Context, level uint16) error {
	if level > 31 {
		return &RangeError{Param: "rigidity level", Value: int64(level), Min: 0, Max: 31}
	}
	return c.WriteRegister(ctx, P00Rigidity, level)
}

// GetRigidity reads the rigidity level from P00.04.
func (c *Client) GetRigidity(ctx context.Context) (uint16, error) {
	return c.ReadRegister(ctx, P00Rigidity)
}

// SetInertiaRatio writes the load inertia ratio, 0 to 3000 in units of
// 0.01, to P00.05.
func (c *Client) SetInertiaRatio(ctx context.Context, ratio uint16) error {
	if ratio > 3000 {
		return &RangeError{Param: "inertia ratio", Value: int64(ratio), Min: 0, Max: 3000}
	}
	return c.WriteRegister(ctx, P00InertiaRatio, ratio)
}

// GetInertiaRatio reads the load inertia ratio from P00.05.
func (c *Client) GetInertiaRatio(ctx context.Context) (uint16, error) {
	return c.ReadRegister(ctx, P00InertiaRatio)
}

// SetMaxSpeed writes the speed ceiling in rpm, 0 to 10000, to P00.07.
func (c *Client) SetMaxSpeed(ctx context.Context, rpm uint16) error {
	if rpm > 10000 {
		return &RangeError{Param: "max speed", Value: int64(rpm), Min: 0, Max: 10000}
	}
	return c.WriteRegister(ctx, P00MaxSpeed, rpm)
}

// GetMaxSpeed reads the speed ceiling from P00.07.
func (c *Client) GetMaxSpeed(ctx context.Context) (uint16, error) {
	return c.ReadRegister(ctx, P00MaxSpeed)
}

// SetServoOffStopMode writes the stop behaviour on servo OFF to P00.10.
func (c *Client) SetServoOffStopMode(ctx context.Context, mode ServoOffStopMode) error {
	return c.WriteRegister(ctx, P00ServoOffStopMode, uint16(mode))
}

// SetBrakeOnDelay writes the brake output ON delay in ms, 0 to 10000, to
// P00.14.
func (c *Client) SetBrakeOnDelay(ctx context.Context, ms uint16) error {
	if ms > 10000 {
		return &RangeError{Param: "brake on delay", Value: int64(ms), Min: 0, Max: 10000}
	}
	return c.WriteRegister(ctx, P00BrakeOnDelay, ms)
}

// SetBrakeOffDelay writes the brake output OFF delay in ms, 10 to 10000,
// to P00.15.
func (c *Client) SetBrakeOffDelay(ctx context.Context, ms uint16) error {
	if ms < 10 || ms > 10000 {
		return &RangeError{Param: "brake off delay", Value: int64(ms), Min: 10, Max: 10000}
	}
	return c.WriteRegister(ctx, P00BrakeOffDelay, ms)
}

// GetMotorModel reads the motor model code from P01.00.
func (c *Client) GetMotorModel(ctx context.Context) (uint16, error) {
	return c.ReadRegister(ctx, P01MotorModel)
}

// GetRatedCurrent reads the motor rated current from P01.04 in amperes.
func (c *Client) GetRatedCurrent(ctx context.Context) (float64, error) {
	raw, err := c.ReadRegister(ctx, P01RatedCurrent)
	if err != nil {
		return 0, err
	}
	return decodeScaled(raw, ScaleCurrent), nil
}

// SetRatedCurrent writes the motor rated current to P01.04 in amperes.
// Only needed when commissioning a motor the drive does not know.
func (c *Client) SetRatedCurrent(ctx context.Context, amps float64) error {
	if amps < 0 || amps > 655.35 {
		return &RangeError{Param: "rated current", Value: int64(amps), Min: 0, Max: 655}
	}
	return c.WriteRegister(ctx, P01RatedCurrent, encodeScaled(amps, ScaleCurrent))
}

// SetRatedTorque writes the motor rated torque to P01.05 in Nm.
func (c *Client) SetRatedTorque(ctx context.Context, nm float64) error {
	if nm < 0 || nm > 655.35 {
		return &RangeError{Param: "rated torque", Value: int64(nm), Min: 0, Max: 655}
	}
	return c.WriteRegister(ctx, P01RatedTorque, encodeScaled(nm, ScaleTorqueNm))
}

// GetPolePairs reads the motor pole pair count from P01.10.
func (c *Client) GetPolePairs(ctx context.Context) (uint16, error) {
	return c.ReadRegister(ctx, P01PolePairs)
}

// SetPolePairs writes the motor pole pair count, 1 to 50, to P01.10.
func (c *Client) SetPolePairs(ctx context.Context, pairs uint16) error {
	if pairs < 1 || pairs > 50 {
		return &RangeError{Param: "pole pairs", Value: int64(pairs), Min: 1, Max: 50}
	}
	return c.WriteRegister(ctx, P01PolePairs, pairs)
}

// SetEncoderType writes the encoder selection to P01.18. Only needed when
// commissioning a motor the drive does not know.
func (c *Client) SetEncoderType(ctx context.Context, enc EncoderType) error {
	if enc > Encoder23BitAbsolute {
		return &RangeError{Param: "encoder type", Value: int64(enc), Min: 0, Max: int64(Encoder23BitAbsolute)}
	}
	return c.WriteRegister(ctx, P01EncoderSelection, uint16(enc))
}

// GetEncoderType reads the encoder selection from P01.18.
func (c *Client) GetEncoderType(ctx context.Context) (EncoderType, error) {
	raw, err := c.ReadRegister(ctx, P01EncoderSelection)
	if err != nil {
		return 0, err
	}
	return EncoderTypeFromRaw(raw)
}

// GetEncoderResolution reads the encoder resolution in pulses per
// revolution from the P01.20 register pair.
func (c *Client) GetEncoderResolution(ctx context.Context) (uint32, error) {
	return c.ReadUint32(ctx, P01EncoderResolution)
}

// ConfigureDigitalInput assigns a function and trigger logic to digital
// input 1 to 3.
func (c *Client) ConfigureDigitalInput(ctx context.Context, input uint8, fn DIFunction, logic DILogic) error {
	fnReg, ok := DIFunctionRegister(input)
	if !ok {
		return &MemberError{Family: "digital input", Member: int(input), Min: MinDigitalInput, Max: MaxDigitalInput}
	}
	logicReg, _ := DILogicRegister(input)
	if err := c.WriteRegister(ctx, fnReg, uint16(fn)); err != nil {
		return fmt.Errorf("write DI%d function: %w", input, err)
	}
	if err := c.WriteRegister(ctx, logicReg, uint16(logic)); err != nil {
		return fmt.Errorf("write DI%d logic: %w", input, err)
	}
	return nil
}

// ConfigureDigitalOutput assigns a function and polarity to digital output
// 1 to 2.
func (c *Client) ConfigureDigitalOutput(ctx context.Context, output uint8, fn DOFunction, logic DOLogic) error {
	fnReg, ok := DOFunctionRegister(output)
	if !ok {
		return &MemberError{Family: "digital output", Member: int(output), Min: MinDigitalOutput, Max: MaxDigitalOutput}
	}
	logicReg, _ := DOLogicRegister(output)
	if err := c.WriteRegister(ctx, fnReg, uint16(fn)); err != nil {
		return fmt.Errorf("write DO%d function: %w", output, err)
	}
	if err := c.WriteRegister(ctx, logicReg, uint16(logic)); err != nil {
		return fmt.Errorf("write DO%d logic: %w", output, err)
	}
	return nil
}

// SetPositionCmdSource writes the position command source to P04.00.
func (c *Client) SetPositionCmdSource(ctx context.Context, src PositionCmdSource) error {
	return c.WriteRegister(ctx, P04PositionCmdSource, uint16(src))
}

// GetPositionCmdSource reads the position command source from P04.00.
func (c *Client) GetPositionCmdSource(ctx context.Context) (PositionCmdSource, error) {
	raw, err := c.ReadRegister(ctx, P04PositionCmdSource)
	if err != nil {
		return 0, err
	}
	return PositionCmdSourceFromRaw(raw)
}

// SetStepAmount writes the step position command, -9999 to 9999 command
// units, to P04.02.
func (c *Client) SetStepAmount(ctx context.Context, amount int16) error {
	if amount < -9999 || amount > 9999 {
		return &RangeError{Param: "step amount", Value: int64(amount), Min: -9999, Max: 9999}
	}
	return c.WriteRegister(ctx, P04StepAmount, uint16(amount))
}

// SetPositioningRange writes the positioning completion window in pulses
// to P04.24.
func (c *Client) SetPositioningRange(ctx context.Context, pulses uint16) error {
	return c.WriteRegister(ctx, P04PositioningRange, pulses)
}

// SetPulseShape writes the input pulse form to P04.21.
func (c *Client) SetPulseShape(ctx context.Context, shape PulseShape) error {
	return c.WriteRegister(ctx, P04PulseShape, uint16(shape))
}

// SetElectronicGear writes the first electronic gear ratio. Numerator
// goes to the P04.07 pair, denominator to the P04.09 pair.
func (c *Client) SetElectronicGear(ctx context.Context, numerator, denominator uint32) error {
	if denominator == 0 {
		return &RangeError{Param: "gear denominator", Value: 0, Min: 1, Max: math.MaxUint32}
	}
	if err := c.WriteUint32(ctx, P04Gear1Numerator, numerator); err != nil {
		return fmt.Errorf("write gear numerator: %w", err)
	}
	if err := c.WriteUint32(ctx, P04Gear1Denominator, denominator); err != nil {
		return fmt.Errorf("write gear denominator: %w", err)
	}
	return nil
}

// SetSpeedCommand writes the keyboard speed command in rpm, -9000 to 9000,
// to P05.03.
func (c *Client) SetSpeedCommand(ctx context.Context, rpm int16) error {
	if rpm < -9000 || rpm > 9000 {
		return &RangeError{Param: "speed command", Value: int64(rpm), Min: -9000, Max: 9000}
	}
	return c.WriteRegister(ctx, P05SpeedCommand, uint16(rpm))
}

// GetSpeedCommand reads the keyboard speed command from P05.03.
func (c *Client) GetSpeedCommand(ctx context.Context) (int16, error) {
	raw, err := c.ReadRegister(ctx, P05SpeedCommand)
	if err != nil {
		return 0, err
	}
	return int16(raw), nil
}

// ApplyJogConfig writes the jog speed and ramp times, one register each.
func (c *Client) ApplyJogConfig(ctx context.Context, cfg JogConfig) error {
	if cfg.Speed > 9000 {
		return &RangeError{Param: "jog speed", Value: int64(cfg.Speed), Min: 0, Max: 9000}
	}
	if err := c.WriteRegister(ctx, P05JogSpeed, cfg.Speed); err != nil {
		return fmt.Errorf("write jog speed: %w", err)
	}
	if err := c.WriteRegister(ctx, P05AccelTime, cfg.AccelTime); err != nil {
		return fmt.Errorf("write accel time: %w", err)
	}
	if err := c.WriteRegister(ctx, P05DecelTime, cfg.DecelTime); err != nil {
		return fmt.Errorf("write decel time: %w", err)
	}
	return nil
}

// SetSpeedLimits writes the forward and backward speed limits in rpm, 0 to
// 9000, to P05.08 and P05.09.
func (c *Client) SetSpeedLimits(ctx context.Context, forward, backward uint16) error {
	if forward > 9000 {
		return &RangeError{Param: "forward speed limit", Value: int64(forward), Min: 0, Max: 9000}
	}
	if backward > 9000 {
		return &RangeError{Param: "backward speed limit", Value: int64(backward), Min: 0, Max: 9000}
	}
	if err := c.WriteRegister(ctx, P05ForwardSpeedLimit, forward); err != nil {
		return fmt.Errorf("write forward speed limit: %w", err)
	}
	if err := c.WriteRegister(ctx, P05BackwardSpeedLimit, backward); err != nil {
		return fmt.Errorf("write backward speed limit: %w", err)
	}
	return nil
}

// SetTorqueCommand writes the keyboard torque command to P06.05 as a
// percentage of rated torque, -300% to 300%.
func (c *Client) SetTorqueCommand(ctx context.Context, percent float64) error {
	if percent < -300 || percent > 300 {
		return &RangeError{Param: "torque command", Value: int64(percent), Min: -300, Max: 300}
	}
	raw := int16(math.Round(percent / ScaleTorque))
	return c.WriteRegister(ctx, P06TorqueCommand, uint16(raw))
}

// SetTorqueLimits writes the forward and backward torque limits to P06.08
// and P06.09 as percentages of rated torque, 0% to 500%.
func (c *Client) SetTorqueLimits(ctx context.Context, forward, backward float64) error {
	if forward < 0 || forward > 500 {
		return &RangeError{Param: "forward torque limit", Value: int64(forward), Min: 0, Max: 500}
	}
	if backward < 0 || backward > 500 {
		return &RangeError{Param: "backward torque limit", Value: int64(backward), Min: 0, Max: 500}
	}
	if err := c.WriteRegister(ctx, P06ForwardTorqueLimit, encodeScaled(forward, ScaleTorque)); err != nil {
		return fmt.Errorf("write forward torque limit: %w", err)
	}
	if err := c.WriteRegister(ctx, P06BackwardTorqueLimit, encodeScaled(backward, ScaleTorque)); err != nil {
		return fmt.Errorf("write backward torque limit: %w", err)
	}
	return nil
}

// ApplyGainParams writes the first gain set, one register each, in
// register order.
func (c *Client) ApplyGainParams(ctx context.Context, p GainParams) error {
	writes := []struct {
		name    string
		address uint16
		value   uint16
	}{
		{"position gain", P07PositionGain1, p.PositionGain},
		{"speed gain", P07SpeedGain1, p.SpeedGain},
		{"speed integral", P07SpeedIntegral1, p.SpeedIntegral},
		{"speed filter", P07SpeedFilter1, p.SpeedFilter},
	}
	for _, w := range writes {
		if err := c.WriteRegister(ctx, w.address, w.value); err != nil {
			return fmt.Errorf("write %s: %w", w.name, err)
		}
	}
	return nil
}

// GetGainParams reads the first gain set back from P07.00 to P07.03.
func (c *Client) GetGainParams(ctx context.Context) (GainParams, error) {
	if err := c.readable(); err != nil {
		return GainParams{}, err
	}
	values, err := c.engine.ReadRegisters(ctx, P07PositionGain1, 4)
	if err != nil {
		return GainParams{}, err
	}
	return GainParams{
		PositionGain:  values[0],
		SpeedGain:     values[1],
		SpeedIntegral: values[2],
		SpeedFilter:   values[3],
	}, nil
}

// ApplyCommConfig writes the RS485 communication parameters. The drive
// picks them up after the next power cycle.
func (c *Client) ApplyCommConfig(ctx context.Context, cfg CommConfig) error {
	if cfg.Address > MaxSlaveID {
		return &SlaveIDError{SlaveID: int(cfg.Address)}
	}
	if err := c.WriteRegister(ctx, P10CommAddress, uint16(cfg.Address)); err != nil {
		return fmt.Errorf("write comm address: %w", err)
	}
	if err := c.WriteRegister(ctx, P10ModbusBaudRate, uint16(cfg.Baud)); err != nil {
		return fmt.Errorf("write baud rate: %w", err)
	}
	if err := c.WriteRegister(ctx, P10ModbusFormat, uint16(cfg.Format)); err != nil {
		return fmt.Errorf("write data format: %w", err)
	}
	if err := c.WriteRegister(ctx, P10RS485AddressSource, uint16(cfg.AddressSource)); err != nil {
		return fmt.Errorf("write address source: %w", err)
	}
	return nil
}

// WriteEEPROM commits the parameter set to the non-volatile store via
// P10.04. The commit is refused on the broadcast address; a bus-wide
// EEPROM write wears every drive at once and hides per-station failures.
func (c *Client) WriteEEPROM(ctx context.Context) error {
	if err := c.ready(); err != nil {
		return err
	}
	if c.slaveID == BroadcastID {
		return fmt.Errorf("dsyrs: EEPROM commit on broadcast address refused")
	}
	return c.engine.WriteRegister(ctx, P10WriteEEPROM, 1)
}

// FaultReset clears a resettable fault via P11.01.
func (c *Client) FaultReset(ctx context.Context) error {
	return c.WriteRegister(ctx, P11FaultReset, 1)
}

// SoftReset restarts the drive firmware via P11.02.
func (c *Client) SoftReset(ctx context.Context) error {
	return c.WriteRegister(ctx, P11SoftReset, 1)
}

// EmergencyStop triggers an immediate stop via P11.13.
func (c *Client) EmergencyStop(ctx context.Context) error {
	return c.WriteRegister(ctx, P11EmergencyStop, 1)
}

// ClearEmergencyStop releases the emergency stop latch via P11.13.
func (c *Client) ClearEmergencyStop(ctx context.Context) error {
	return c.WriteRegister(ctx, P11EmergencyStop, 0)
}

// SystemInitialize runs a factory reset or fault record wipe via P11.09.
func (c *Client) SystemInitialize(ctx context.Context, init SystemInit) error {
	return c.WriteRegister(ctx, P11SystemInit, uint16(init))
}

// ResetEncoder clears absolute encoder warnings or the multi-turn counter
// via P11.06.
func (c *Client) ResetEncoder(ctx context.Context, reset EncoderReset) error {
	return c.WriteRegister(ctx, P11EncoderReset, uint16(reset))
}

// SetSegmentProgram writes the multi-segment program frame: operation
// mode, start and end segment, wait time unit and position mode.
func (c *Client) SetSegmentProgram(ctx context.Context, mode MultiSegOperationMode, start, end uint8, unit WaitTimeUnit, position MultiSegPositionMode) error {
	if start < MinSegment || start > MaxSegment {
		return &MemberError{Family: "segment", Member: int(start), Min: MinSegment, Max: MaxSegment}
	}
	if end < start || end > MaxSegment {
		return &MemberError{Family: "segment", Member: int(end), Min: int(start), Max: MaxSegment}
	}
	if err := c.WriteRegister(ctx, P13OperationMode, uint16(mode)); err != nil {
		return fmt.Errorf("write segment operation mode: %w", err)
	}
	if err := c.WriteRegister(ctx, P13StartSegment, uint16(start)); err != nil {
		return fmt.Errorf("write start segment: %w", err)
	}
	if err := c.WriteRegister(ctx, P13EndSegment, uint16(end)); err != nil {
		return fmt.Errorf("write end segment: %w", err)
	}
	if err := c.WriteRegister(ctx, P13WaitTimeUnit, uint16(unit)); err != nil {
		return fmt.Errorf("write wait time unit: %w", err)
	}
	if err := c.WriteRegister(ctx, P13PositionMode, uint16(position)); err != nil {
		return fmt.Errorf("write position mode: %w", err)
	}
	return nil
}

// ConfigureSegment writes one step of the multi-segment position program:
// the 32-bit displacement in one transaction, then speed, ramp time and
// wait time. Writes are fail-fast; a mid-sequence error leaves the earlier
// registers applied.
func (c *Client) ConfigureSegment(ctx context.Context, segment uint8, cfg SegmentConfig) error {
	dispReg, ok := SegmentDisplacementRegister(segment)
	if !ok {
		return &MemberError{Family: "segment", Member: int(segment), Min: MinSegment, Max: MaxSegment}
	}
	speedReg, _ := SegmentSpeedRegister(segment)
	rampReg, _ := SegmentAccelDecelRegister(segment)
	waitReg, _ := SegmentWaitTimeRegister(segment)

	if err := c.WriteInt32(ctx, dispReg, cfg.Displacement); err != nil {
		return fmt.Errorf("write segment %d displacement: %w", segment, err)
	}
	if err := c.WriteRegister(ctx, speedReg, cfg.Speed); err != nil {
		return fmt.Errorf("write segment %d speed: %w", segment, err)
	}
	if err := c.WriteRegister(ctx, rampReg, cfg.AccelDecel); err != nil {
		return fmt.Errorf("write segment %d accel/decel: %w", segment, err)
	}
	if err := c.WriteRegister(ctx, waitReg, cfg.WaitTime); err != nil {
		return fmt.Errorf("write segment %d wait time: %w", segment, err)
	}
	return nil
}

// ApplyHomingConfig writes the homing parameter block: mode, both search
// speeds, ramp time, timeout and the 32-bit home offset. The whole block
// is validated before the first write.
func (c *Client) ApplyHomingConfig(ctx context.Context, cfg HomingConfig) error {
	if cfg.Mode > maxHomingMode {
		return &RangeError{Param: "homing mode", Value: int64(cfg.Mode), Min: 0, Max: maxHomingMode}
	}
	if cfg.HighSpeed < 10 || cfg.HighSpeed > 3000 {
		return &RangeError{Param: "homing high speed", Value: int64(cfg.HighSpeed), Min: 10, Max: 3000}
	}
	if cfg.LowSpeed < 10 || cfg.LowSpeed > 1000 {
		return &RangeError{Param: "homing low speed", Value: int64(cfg.LowSpeed), Min: 10, Max: 1000}
	}
	if err := c.WriteRegister(ctx, P16HomingMode, uint16(cfg.Mode)); err != nil {
		return fmt.Errorf("write homing mode: %w", err)
	}
	if err := c.WriteRegister(ctx, P16HomingHighSpeed, cfg.HighSpeed); err != nil {
		return fmt.Errorf("write homing high speed: %w", err)
	}
	if err := c.WriteRegister(ctx, P16HomingLowSpeed, cfg.LowSpeed); err != nil {
		return fmt.Errorf("write homing low speed: %w", err)
	}
	if err := c.WriteRegister(ctx, P16HomingAccel, cfg.AccelDecel); err != nil {
		return fmt.Errorf("write homing accel: %w", err)
	}
	if err := c.WriteRegister(ctx, P16HomingTimeout, cfg.Timeout); err != nil {
		return fmt.Errorf("write homing timeout: %w", err)
	}
	if err := c.WriteInt32(ctx, P16HomeOffset, cfg.Offset); err != nil {
		return fmt.Errorf("write home offset: %w", err)
	}
	return nil
}

// SetHomingEnableMode writes the homing trigger selection to P16.08.
func (c *Client) SetHomingEnableMode(ctx context.Context, mode HomingEnableMode) error {
	if mode > HomingByHostComputer {
		return &RangeError{Param: "homing enable mode", Value: int64(mode), Min: 0, Max: int64(HomingByHostComputer)}
	}
	return c.WriteRegister(ctx, P16HomingEnableMode, uint16(mode))
}

// StartHoming triggers the homing routine through the host computer
// enable mode.
func (c *Client) StartHoming(ctx context.Context) error {
	return c.SetHomingEnableMode(ctx, HomingByHostComputer)
}

// GetState reads the drive state from P18.00.
func (c *Client) GetState(ctx context.Context) (ServoState, error) {
	raw, err := c.ReadRegister(ctx, P18ServoStatus)
	if err != nil {
		return StateUnknown, err
	}
	return ServoStateFromRaw(raw), nil
}

// GetSpeed reads the speed feedback in rpm from P18.01.
func (c *Client) GetSpeed(ctx context.Context) (int16, error) {
	raw, err := c.ReadRegister(ctx, P18SpeedFeedback)
	if err != nil {
		return 0, err
	}
	return int16(raw), nil
}

// GetBusVoltage reads the DC bus voltage in volts from P18.06.
func (c *Client) GetBusVoltage(ctx context.Context) (float64, error) {
	raw, err := c.ReadRegister(ctx, P18BusVoltage)
	if err != nil {
		return 0, err
	}
	return decodeScaled(raw, ScaleVoltage), nil
}

// GetPosition reads the absolute position in command units from the
// P18.07 register pair.
func (c *Client) GetPosition(ctx context.Context) (int32, error) {
	return c.ReadInt32(ctx, P18AbsolutePosition)
}

// GetStatus reads the P18 display registers one by one and assembles a
// snapshot in physical units. The reads are separate transactions, so the
// fields may reflect slightly different instants.
func (c *Client) GetStatus(ctx context.Context) (ServoStatus, error) {
	if err := c.readable(); err != nil {
		return ServoStatus{}, err
	}
	var status ServoStatus

	raw, err := c.engine.ReadRegister(ctx, P18ServoStatus)
	if err != nil {
		return status, fmt.Errorf("read servo state: %w", err)
	}
	status.State = ServoStateFromRaw(raw)

	raw, err = c.engine.ReadRegister(ctx, P18SpeedFeedback)
	if err != nil {
		return status, fmt.Errorf("read speed feedback: %w", err)
	}
	status.Speed = int16(raw)

	raw, err = c.engine.ReadRegister(ctx, P18LoadRate)
	if err != nil {
		return status, fmt.Errorf("read load rate: %w", err)
	}
	status.LoadRate = decodeScaled(raw, ScaleLoad)

	raw, err = c.engine.ReadRegister(ctx, P18InternalTorque)
	if err != nil {
		return status, fmt.Errorf("read internal torque: %w", err)
	}
	status.Torque = decodeScaledSigned(raw, ScaleTorque)

	raw, err = c.engine.ReadRegister(ctx, P18PhaseCurrent)
	if err != nil {
		return status, fmt.Errorf("read phase current: %w", err)
	}
	status.Current = decodeScaled(raw, ScaleCurrent)

	raw, err = c.engine.ReadRegister(ctx, P18BusVoltage)
	if err != nil {
		return status, fmt.Errorf("read bus voltage: %w", err)
	}
	status.BusVoltage = decodeScaled(raw, ScaleVoltage)

	position, err := c.engine.ReadInt32(ctx, P18AbsolutePosition)
	if err != nil {
		return status, fmt.Errorf("read position: %w", err)
	}
	status.Position = position

	raw, err = c.engine.ReadRegister(ctx, P18ElectricalAngle)
	if err != nil {
		return status, fmt.Errorf("read electrical angle: %w", err)
	}
	status.ElectricalAngle = decodeScaled(raw, ScaleAngle)

	return status, nil
}

// Version identifies the drive firmware.
type Version struct {
	Software    uint16
	FPGA        uint16
	ProductCode uint16
}

// GetVersion reads the firmware identification registers.
func (c *Client) GetVersion(ctx context.Context) (Version, error) {
	if err := c.readable(); err != nil {
		return Version{}, err
	}
	software, err := c.engine.ReadRegister(ctx, P12SoftwareVersion)
	if err != nil {
		return Version{}, fmt.Errorf("read software version: %w", err)
	}
	fpga, err := c.engine.ReadRegister(ctx, P12FPGAVersion)
	if err != nil {
		return Version{}, fmt.Errorf("read FPGA version: %w", err)
	}
	product, err := c.engine.ReadRegister(ctx, P12ProductCode)
	if err != nil {
		return Version{}, fmt.Errorf("read product code: %w", err)
	}
	return Version{Software: software, FPGA: fpga, ProductCode: product}, nil
}
