package dsyrs

import "math"

// ControlMode selects how the drive interprets its command input (P00.00).
type ControlMode uint16

const (
	// ControlModePosition runs the drive in position control.
	ControlModePosition ControlMode = 0
	// ControlModeSpeed runs the drive in speed control.
	ControlModeSpeed ControlMode = 1
	// ControlModeTorque runs the drive in torque control.
	ControlModeTorque ControlMode = 2
)

// ControlModeFromRaw decodes a raw register value into a ControlMode.
func ControlModeFromRaw(raw uint16) (ControlMode, error) {
	if raw > 2 {
		return 0, &DecodeError{Param: "control mode", Raw: raw}
	}
	return ControlMode(raw), nil
}

// Direction selects the forward rotation direction (P00.01).
type Direction uint16

const (
	// DirectionCCWForward treats counter-clockwise as forward.
	DirectionCCWForward Direction = 0
	// DirectionCWForward treats clockwise as forward.
	DirectionCWForward Direction = 1
)

// DirectionFromRaw decodes a raw register value into a Direction.
func DirectionFromRaw(raw uint16) (Direction, error) {
	if raw > 1 {
		return 0, &DecodeError{Param: "direction", Raw: raw}
	}
	return Direction(raw), nil
}

// AbsoluteSystem selects the position tracking system (P00.06).
type AbsoluteSystem uint16

const (
	AbsoluteSystemIncremental AbsoluteSystem = 0
	AbsoluteSystemLinear      AbsoluteSystem = 1
	AbsoluteSystemRotation    AbsoluteSystem = 2
)

// ServoOffStopMode selects the stop behaviour on servo OFF (P00.10).
type ServoOffStopMode uint16

const (
	ServoOffFreewheel ServoOffStopMode = 0
	ServoOffZeroSpeed ServoOffStopMode = 1
)

// OvertravelStopMode selects the stop behaviour on overtravel (P00.13).
type OvertravelStopMode uint16

const (
	OvertravelFreewheel     OvertravelStopMode = 0
	OvertravelZeroSpeedLock OvertravelStopMode = 1
	OvertravelZeroSpeedFree OvertravelStopMode = 2
)

// EnergyResistor selects the energy consumption resistor (P00.18).
type EnergyResistor uint16

const (
	EnergyResistorBuiltIn         EnergyResistor = 0
	EnergyResistorExternalNatural EnergyResistor = 1
	EnergyResistorExternalForced  EnergyResistor = 2
	EnergyResistorNone            EnergyResistor = 3
)

// EncoderType selects the feedback encoder (P01.18).
type EncoderType uint16

const (
	EncoderLine2500         EncoderType = 0
	Encoder17BitIncremental EncoderType = 1
	Encoder17BitAbsolute    EncoderType = 2
	Encoder23BitIncremental EncoderType = 3
	Encoder23BitAbsolute    EncoderType = 4
)

// EncoderTypeFromRaw decodes a raw register value into an EncoderType.
func EncoderTypeFromRaw(raw uint16) (EncoderType, error) {
	if raw > 4 {
		return 0, &DecodeError{Param: "encoder type", Raw: raw}
	}
	return EncoderType(raw), nil
}

// DIFunction assigns a FunIN function to a digital input terminal
// (P02.01-P02.03). Values 1-41 correspond to FunIN.1-41; zero leaves the
// terminal unassigned.
type DIFunction uint16

const (
	DIFunctionNone                DIFunction = 0
	DIFunctionServoEnable         DIFunction = 1
	DIFunctionAlarmReset          DIFunction = 2
	DIFunctionGainSwitch          DIFunction = 3
	DIFunctionCommandSwitch       DIFunction = 4
	DIFunctionDeviationClear      DIFunction = 5
	DIFunctionMultiSegCmd1        DIFunction = 6
	DIFunctionMultiSegCmd2        DIFunction = 7
	DIFunctionMultiSegCmd3        DIFunction = 8
	DIFunctionMultiSegCmd4        DIFunction = 9
	DIFunctionPModeSwitch         DIFunction = 10
	DIFunctionZeroFixed           DIFunction = 11
	DIFunctionPulseProhibit       DIFunction = 12
	DIFunctionForwardOvertravel   DIFunction = 13
	DIFunctionBackwardOvertravel  DIFunction = 14
	DIFunctionForwardTorqueLimit  DIFunction = 15
	DIFunctionBackwardTorqueLimit DIFunction = 16
	DIFunctionForwardJog          DIFunction = 17
	DIFunctionBackwardJog         DIFunction = 18
	DIFunctionPositionStep        DIFunction = 19
	DIFunctionGearSelect          DIFunction = 23
	DIFunctionPositionReverse     DIFunction = 24
	DIFunctionSpeedReverse        DIFunction = 25
	DIFunctionTorqueReverse       DIFunction = 26
	DIFunctionMultiSegEnable      DIFunction = 29
	DIFunctionFixedLengthConfirm  DIFunction = 30
	DIFunctionFixedLengthProhibit DIFunction = 31
	DIFunctionHomeSwitch          DIFunction = 32
	DIFunctionHomingEnable        DIFunction = 33
	DIFunctionEmergencyStop       DIFunction = 34
	DIFunctionConstantSpeed       DIFunction = 35
	DIFunctionFixedLengthReset    DIFunction = 36
	DIFunctionFixedLengthPause    DIFunction = 37
	DIFunctionMultiSegTorque1     DIFunction = 38
	DIFunctionMultiStepTorque1    DIFunction = 39

	maxDIFunction = 41
)

// DIFunctionFromRaw decodes a raw register value into a DIFunction.
func DIFunctionFromRaw(raw uint16) (DIFunction, error) {
	if raw > maxDIFunction {
		return 0, &DecodeError{Param: "DI function", Raw: raw}
	}
	return DIFunction(raw), nil
}

// DILogic selects the trigger logic of a digital input (P02.11-P02.13).
type DILogic uint16

const (
	DILogicLowActive   DILogic = 0
	DILogicHighActive  DILogic = 1
	DILogicRisingEdge  DILogic = 2
	DILogicFallingEdge DILogic = 3
	DILogicBothEdges   DILogic = 4
)

// DILogicFromRaw decodes a raw register value into a DILogic.
func DILogicFromRaw(raw uint16) (DILogic, error) {
	if raw > 4 {
		return 0, &DecodeError{Param: "DI logic", Raw: raw}
	}
	return DILogic(raw), nil
}

// DOFunction assigns a FunOUT function to a digital output terminal
// (P02.21-P02.22). Values 1-24 correspond to FunOUT.1-24.
type DOFunction uint16

const (
	DOFunctionNone             DOFunction = 0
	DOFunctionServoReady       DOFunction = 1
	DOFunctionFault            DOFunction = 2
	DOFunctionWarning          DOFunction = 3
	DOFunctionMotorRotation    DOFunction = 4
	DOFunctionZeroSpeed        DOFunction = 5
	DOFunctionSpeedConsistent  DOFunction = 6
	DOFunctionPositionComplete DOFunction = 7
	DOFunctionPositioningNear  DOFunction = 8
	DOFunctionTorqueLimit      DOFunction = 9
	DOFunctionSpeedLimit       DOFunction = 10
	DOFunctionBrakeRelease     DOFunction = 11
	DOFunctionTorqueReached    DOFunction = 12
	DOFunctionSpeedReached     DOFunction = 13
	DOFunctionAngleRecognized  DOFunction = 14
	DOFunctionFixedLengthDone  DOFunction = 18
	DOFunctionHomingDone       DOFunction = 19
	DOFunctionMultiSegDone1    DOFunction = 21
	DOFunctionMultiSegDone2    DOFunction = 22
	DOFunctionMultiSegDone3    DOFunction = 23
	DOFunctionMultiSegDone4    DOFunction = 24

	maxDOFunction = 24
)

// DOFunctionFromRaw decodes a raw register value into a DOFunction.
func DOFunctionFromRaw(raw uint16) (DOFunction, error) {
	if raw > maxDOFunction {
		return 0, &DecodeError{Param: "DO function", Raw: raw}
	}
	return DOFunction(raw), nil
}

// DOLogic selects the output polarity of a digital output (P02.31-P02.32).
type DOLogic uint16

const (
	DOLogicNormallyOpen   DOLogic = 0
	DOLogicNormallyClosed DOLogic = 1
)

// PositionCmdSource selects the main position command source (P04.00).
type PositionCmdSource uint16

const (
	PositionCmdLowSpeedPulse  PositionCmdSource = 0
	PositionCmdHighSpeedPulse PositionCmdSource = 1
	PositionCmdStepAmount     PositionCmdSource = 2
	PositionCmdMultiSegment   PositionCmdSource = 4
	PositionCmdCommunication  PositionCmdSource = 5
)

// PositionCmdSourceFromRaw decodes a raw register value into a
// PositionCmdSource. Value 3 is reserved by the firmware.
func PositionCmdSourceFromRaw(raw uint16) (PositionCmdSource, error) {
	switch raw {
	case 0, 1, 2, 4, 5:
		return PositionCmdSource(raw), nil
	}
	return 0, &DecodeError{Param: "position command source", Raw: raw}
}

// PulseShape selects the input pulse form (P04.21).
type PulseShape uint16

const (
	PulseShapePulseDirPositive PulseShape = 0
	PulseShapeDirPulseNegative PulseShape = 1
	PulseShapeQuadPositive     PulseShape = 2
	PulseShapeQuadNegative     PulseShape = 3
	PulseShapeCCWCWPositive    PulseShape = 4
	PulseShapeCCWCWNegative    PulseShape = 5
)

// DeviationClearMode selects when the position deviation counter is
// cleared (P04.22).
type DeviationClearMode uint16

const (
	DeviationClearOnOff      DeviationClearMode = 0
	DeviationClearOnOffFault DeviationClearMode = 1
	DeviationClearByDI       DeviationClearMode = 2
)

// BaudRate is the Modbus baud rate setting (P10.02).
type BaudRate uint16

const (
	Baud2400   BaudRate = 0
	Baud4800   BaudRate = 1
	Baud9600   BaudRate = 2
	Baud19200  BaudRate = 3
	Baud38400  BaudRate = 4
	Baud57600  BaudRate = 5
	Baud115200 BaudRate = 6
)

// BaudRateFromRaw decodes a raw register value into a BaudRate.
func BaudRateFromRaw(raw uint16) (BaudRate, error) {
	if raw > 6 {
		return 0, &DecodeError{Param: "baud rate", Raw: raw}
	}
	return BaudRate(raw), nil
}

// BPS returns the symbol rate in bits per second.
func (b BaudRate) BPS() int {
	switch b {
	case Baud2400:
		return 2400
	case Baud4800:
		return 4800
	case Baud9600:
		return 9600
	case Baud19200:
		return 19200
	case Baud38400:
		return 38400
	case Baud57600:
		return 57600
	case Baud115200:
		return 115200
	}
	return 0
}

// DataFormat is the Modbus serial frame format (P10.03).
type DataFormat uint16

const (
	FormatNoParity2Stop   DataFormat = 0
	FormatEvenParity1Stop DataFormat = 1
	FormatOddParity1Stop  DataFormat = 2
	FormatNoParity1Stop   DataFormat = 3
)

// AddressSource selects where the RS485 address comes from (P10.06).
type AddressSource uint16

const (
	AddressFromDIPSwitch AddressSource = 0
	AddressFromHost      AddressSource = 1
)

// SystemInit is the system initialization command (P11.09).
type SystemInit uint16

const (
	SystemInitNone             SystemInit = 0
	SystemInitFactoryReset     SystemInit = 1
	SystemInitClearFaultRecord SystemInit = 2
)

// EncoderReset is the absolute encoder reset command (P11.06).
type EncoderReset uint16

const (
	EncoderResetNone          EncoderReset = 0
	EncoderResetClearWarnings EncoderReset = 1
	EncoderResetMultiTurn     EncoderReset = 2
)

// MultiSegOperationMode selects how the segment program runs (P13.00).
type MultiSegOperationMode uint16

const (
	MultiSegSingle   MultiSegOperationMode = 0
	MultiSegCycle    MultiSegOperationMode = 1
	MultiSegDISwitch MultiSegOperationMode = 2
)

// MultiSegPositionMode selects incremental or absolute segment targets
// (P13.05).
type MultiSegPositionMode uint16

const (
	MultiSegIncremental MultiSegPositionMode = 0
	MultiSegAbsolute    MultiSegPositionMode = 1
)

// WaitTimeUnit selects the unit of the segment wait time (P13.04).
type WaitTimeUnit uint16

const (
	WaitTimeMilliseconds WaitTimeUnit = 0
	WaitTimeSeconds      WaitTimeUnit = 1
)

// HomingEnableMode controls how the homing routine is triggered (P16.08).
type HomingEnableMode uint16

const (
	HomingDisabled       HomingEnableMode = 0
	HomingByDI           HomingEnableMode = 1
	HomingAfterPowerOn   HomingEnableMode = 2
	HomingImmediate      HomingEnableMode = 3
	HomingCurrentAsHome  HomingEnableMode = 4
	HomingSetHomeByDI    HomingEnableMode = 5
	HomingByHostComputer HomingEnableMode = 6
)

// HomingMode selects the homing search strategy (P16.09); modes 0-17 per
// the manual, combining search direction, reference switch and Z pulse.
type HomingMode uint16

const (
	// HomingModeForwardLimitZ searches forward to the limit switch, then
	// locates the Z pulse.
	HomingModeForwardLimitZ HomingMode = 0
	// HomingModeReverseLimitZ searches in reverse to the limit switch, then
	// locates the Z pulse.
	HomingModeReverseLimitZ HomingMode = 1
	// HomingModeForwardHomeZ searches forward to the home switch, then
	// locates the Z pulse.
	HomingModeForwardHomeZ HomingMode = 2
	// HomingModeReverseHomeZ searches in reverse to the home switch, then
	// locates the Z pulse.
	HomingModeReverseHomeZ HomingMode = 3
	// HomingModeForwardLimit searches forward to the limit switch.
	HomingModeForwardLimit HomingMode = 4
	// HomingModeReverseLimit searches in reverse to the limit switch.
	HomingModeReverseLimit HomingMode = 5
	// HomingModeForwardHome searches forward to the home switch.
	HomingModeForwardHome HomingMode = 6
	// HomingModeReverseHome searches in reverse to the home switch.
	HomingModeReverseHome HomingMode = 7
	// HomingModeForwardZ searches forward for the Z pulse only.
	HomingModeForwardZ HomingMode = 8
	// HomingModeReverseZ searches in reverse for the Z pulse only.
	HomingModeReverseZ HomingMode = 9
	// HomingModeCurrentPosition takes the current position as home.
	HomingModeCurrentPosition HomingMode = 10

	maxHomingMode = 17
)

// HomingModeFromRaw decodes a raw register value into a HomingMode.
func HomingModeFromRaw(raw uint16) (HomingMode, error) {
	if raw > maxHomingMode {
		return 0, &DecodeError{Param: "homing mode", Raw: raw}
	}
	return HomingMode(raw), nil
}

// ServoState is the drive state reported in P18.00.
type ServoState uint16

const (
	StateReady   ServoState = 0
	StateRunning ServoState = 1
	StateError   ServoState = 2
	StateAlarm   ServoState = 3
	// StateUnknown is reported for status words outside the documented
	// mapping.
	StateUnknown ServoState = 0xFFFF
)

// ServoStateFromRaw maps the raw status word to a ServoState. The manual
// does not pin down the encoding; the low nibble mapping below is
// provisional and should be confirmed against the target firmware.
func ServoStateFromRaw(raw uint16) ServoState {
	switch raw & 0x0F {
	case 0:
		return StateReady
	case 1:
		return StateRunning
	case 2:
		return StateError
	case 3:
		return StateAlarm
	}
	return StateUnknown
}

func (s ServoState) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateRunning:
		return "running"
	case StateError:
		return "error"
	case StateAlarm:
		return "alarm"
	}
	return "unknown"
}

// ServoStatus is a best-effort snapshot of the P18 status registers.
// Each field comes from its own register read, so the fields may reflect
// slightly different instants.
type ServoStatus struct {
	// State is the drive state from P18.00.
	State ServoState
	// Speed is the motor speed feedback in rpm.
	Speed int16
	// LoadRate is the average load rate in percent.
	LoadRate float64
	// Torque is the internal torque in percent of rated.
	Torque float64
	// Current is the phase current RMS in amperes.
	Current float64
	// BusVoltage is the DC bus voltage in volts.
	BusVoltage float64
	// Position is the absolute position in user units.
	Position int32
	// ElectricalAngle is the rotor electrical angle in degrees.
	ElectricalAngle float64
}

// Fixed decimal scales of the physical-unit registers.
const (
	ScaleCurrent  = 0.01 // A per count
	ScaleTorqueNm = 0.01 // Nm per count
	ScaleTorque   = 0.1  // percent per count
	ScaleVoltage  = 0.1  // V per count
	ScaleAngle    = 0.1  // degree per count
	ScaleLoad     = 0.1  // percent per count
)

// encodeScaled converts a physical value to its raw register count for the
// given decimal scale. Halves round away from zero; the manual leaves the
// rounding direction open, so it is fixed here for determinism.
func encodeScaled(value, scale float64) uint16 {
	return uint16(math.Round(value / scale))
}

// decodeScaled converts a raw register count back to a physical value.
func decodeScaled(raw uint16, scale float64) float64 {
	return float64(raw) * scale
}

// decodeScaledSigned is decodeScaled for registers holding a signed count.
func decodeScaledSigned(raw uint16, scale float64) float64 {
	return float64(int16(raw)) * scale
}

// u32Pair splits a 32-bit value into the (high, low) register pair written
// at (addr, addr+1).
func u32Pair(v uint32) (high, low uint16) {
	return uint16(v >> 16), uint16(v & 0xFFFF)
}

// u32FromPair combines the (high, low) register pair into a 32-bit value.
func u32FromPair(high, low uint16) uint32 {
	return uint32(high)<<16 | uint32(low)
}
