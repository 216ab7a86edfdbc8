package dsyrs

// Register addresses for the DSY-RS low voltage servo drive family,
// taken from chapter 7 of the user manual. A parameter PXX.YY maps to the
// holding register XX*256 + YY, e.g. P18.01 = 0x1201.

// ParamAddr computes the holding register address of parameter Pgroup.index.
func ParamAddr(group, index uint8) uint16 {
	return uint16(group)*256 + uint16(index)
}

// P00 basic control parameters.
const (
	// P00ControlMode selects position (0), speed (1) or torque (2) control.
	P00ControlMode = 0x0000
	// P00Direction selects the forward rotation direction: 0 CCW, 1 CW.
	P00Direction = 0x0001
	// P00PulseDirection defines the pulse output forward direction.
	P00PulseDirection = 0x0002
	// P00Rigidity is the rigidity level setting, 0-31.
	P00Rigidity = 0x0004
	// P00InertiaRatio is the inertia ratio, 0-3000 in units of 0.01.
	P00InertiaRatio = 0x0005
	// P00AbsoluteSystem selects incremental or absolute position tracking.
	P00AbsoluteSystem = 0x0006
	// P00MaxSpeed is the system maximum speed, 0-10000 rpm.
	P00MaxSpeed = 0x0007
	// P00ServoOffStopMode selects the stop behaviour on servo OFF.
	P00ServoOffStopMode = 0x000A
	// P00Fault1StopMode selects the stop behaviour on a No.1 fault.
	P00Fault1StopMode = 0x000B
	// P00Fault2StopMode selects the stop behaviour on a No.2 fault.
	P00Fault2StopMode = 0x000C
	// P00OvertravelStopMode selects the stop behaviour on overtravel.
	P00OvertravelStopMode = 0x000D
	// P00BrakeOnDelay is the brake output ON delay, 0-10000 ms.
	P00BrakeOnDelay = 0x000E
	// P00BrakeOffDelay is the brake output OFF delay, 10-10000 ms.
	P00BrakeOffDelay = 0x000F
	// P00BrakeSpeedThreshold is the speed threshold for brake OFF, 0-1000 rpm.
	P00BrakeSpeedThreshold = 0x0010
	// P00FaultBrakeDelay is the servo OFF to brake OFF delay on a running
	// fault, 0-10000 ms.
	P00FaultBrakeDelay = 0x0011
	// P00EnergyResistor selects the energy consumption resistor.
	P00EnergyResistor = 0x0012
	// P00ExtResistorPower is the external resistor power capacity, W.
	P00ExtResistorPower = 0x0013
	// P00ExtResistance is the external resistance value, 1-1000 ohm.
	P00ExtResistance = 0x0014
	// P00ExtResistanceTime is the external resistance heating time constant.
	P00ExtResistanceTime = 0x0015
	// P00BrakeVoltage is the braking start voltage, 0-1000 V.
	P00BrakeVoltage = 0x0016
	// P00PulseIncrementThreshold is the pulse increment threshold, 0-200.
	P00PulseIncrementThreshold = 0x0025
	// P00PulselessCycle is the continuous pulseless reception cycle number.
	P00PulselessCycle = 0x0026
)

// P01 servo motor parameters. The whole group is identity data written at
// the factory; the client only reads it.
const (
	P01MotorModel        = 0x0100 // motor model code
	P01PhaseSequence     = 0x0101 // power line phase sequence direction
	P01RatedVoltage      = 0x0102 // rated voltage, V
	P01RatedPower        = 0x0103 // rated power, 0.01 kW
	P01RatedCurrent      = 0x0104 // rated current, 0.01 A
	P01RatedTorque       = 0x0105 // rated torque, 0.01 Nm
	P01MaxSpeed          = 0x0108 // motor max speed, rpm
	P01RotorInertia      = 0x0109 // rotor inertia, 0.01 kg*cm^2
	P01PolePairs         = 0x010A // PMSM pole pairs, 1-50
	P01StatorResistance  = 0x010B // stator resistance, 0.001 ohm
	P01QInductance       = 0x010C // q-axis inductance, 0.01 mH
	P01DInductance       = 0x010D // d-axis inductance, 0.01 mH
	P01BackEMF           = 0x010E // back EMF, 0.01 mV/rpm
	P01TorqueFactor      = 0x010F // torque factor, 0.001 Nm/A
	P01EncoderSelection  = 0x0112 // encoder type selection
	P01EncoderResolution = 0x0114 // encoder resolution, 32-bit
	P01ZElectricalAngle  = 0x0116 // Z electrical angle, 0.1 deg
	P01UElectricalAngle  = 0x0117 // U rising-edge electrical angle, 0.1 deg
	P01FPGAMotorModel    = 0x0118 // FPGA uploaded motor model, read-only
)

// P02 digital terminal I/O parameters. DI channels 1-3 and DO channels 1-2
// repeat at fixed offsets; use DIFunctionRegister and friends for lookup.
const (
	P02FunInLState = 0x0200 // FunINL unassigned state bitmap
	P02DI1Function = 0x0201
	P02DI2Function = 0x0202
	P02DI3Function = 0x0203
	P02FunInHState = 0x020A // FunINH unassigned state bitmap
	P02DI1Logic    = 0x020B
	P02DI2Logic    = 0x020C
	P02DI3Logic    = 0x020D
	P02DO1Function = 0x0215
	P02DO2Function = 0x0216
	P02DO1Logic    = 0x021F
	P02DO2Logic    = 0x0220
)

// P04 position control parameters.
const (
	P04PositionCmdSource     = 0x0400
	P04StepAmount            = 0x0402 // -9999 to 9999
	P04PositionFilter        = 0x0403 // smoothing filter, 0.1 ms
	P04PositionFIRFilter     = 0x0404 // FIR filter, 0.1 ms
	P04UnitsPerRev           = 0x0405 // 32-bit
	P04Gear1Numerator        = 0x0407 // 32-bit
	P04Gear1Denominator      = 0x0409 // 32-bit
	P04Gear2Numerator        = 0x040B // 32-bit
	P04Gear2Denominator      = 0x040D // 32-bit
	P04PulseShape            = 0x0415
	P04DeviationClear        = 0x0416
	P04CoinCondition         = 0x0417
	P04PositioningRange      = 0x0418 // completion range, pulses
	P04PositioningCloseRange = 0x0419 // close range, pulses
)

// P05 speed control parameters.
const (
	P05SpeedCmdSource     = 0x0500
	P05AuxSpeedSource     = 0x0501
	P05SpeedCmdSelect     = 0x0502
	P05SpeedCommand       = 0x0503 // keyboard speed command, -9000 to 9000 rpm
	P05JogSpeed           = 0x0504 // 0-9000 rpm
	P05AccelTime          = 0x0505 // 0-10000 ms
	P05DecelTime          = 0x0506 // 0-10000 ms
	P05SpeedLimitSelect   = 0x0507
	P05ForwardSpeedLimit  = 0x0508 // 0-9000 rpm
	P05BackwardSpeedLimit = 0x0509 // 0-9000 rpm
	P05SpeedDirection     = 0x050E
	P05ZeroSpeedValue     = 0x050F
	P05RunningThreshold   = 0x0510
	P05SpeedUniformWidth  = 0x0511
	P05SpeedReachedValue  = 0x0512
	P05ZeroSpeedThreshold = 0x0514
)

// P06 torque control parameters.
const (
	P06TorqueCmdSource        = 0x0600
	P06TorqueCmdSelect        = 0x0602
	P06TorqueFilter           = 0x0604 // command filter time, 0.01 ms
	P06TorqueCommand          = 0x0605 // -3000 to 3000, 0.1% of rated
	P06TorqueLimitSource      = 0x0606
	P06ForwardTorqueLimit     = 0x0608 // 0-5000, 0.1%
	P06BackwardTorqueLimit    = 0x0609 // 0-5000, 0.1%
	P06ForwardExtTorqueLimit  = 0x060A
	P06BackwardExtTorqueLimit = 0x060B
	P06SpeedLimitSource       = 0x060D
	P06PositiveSpeedLimit     = 0x060F // torque mode, rpm
	P06NegativeSpeedLimit     = 0x0610 // torque mode, rpm
	P06TorqueSegment1         = 0x0615
	P06TorqueSegment2         = 0x0616
	P06TorqueSegment3         = 0x0617
)

// P07 gain parameters.
const (
	P07PositionGain1    = 0x0700 // 10-20000, 0.1 Hz
	P07SpeedGain1       = 0x0701 // 10-20000, 0.1 Hz
	P07SpeedIntegral1   = 0x0702 // 0.01 ms
	P07SpeedFilter1     = 0x0703 // 0-200, 0.01 ms
	P07PositionGain2    = 0x0705
	P07SpeedGain2       = 0x0706
	P07GainSwitchAction = 0x070A
	P07GainSwitchMode   = 0x070B
)

// P08 advanced adjustment parameters.
const (
	P08AdaptiveFilterMode  = 0x0800
	P08Notch1Frequency     = 0x0802 // 10-4000 Hz
	P08Notch1Width         = 0x0803
	P08Notch1Depth         = 0x0804
	P08DampingFilter       = 0x080F
	P08DampingFilterSelect = 0x0811
	P08InertiaIDMode       = 0x0817
	P08HFVibrationSuppress = 0x081A
	P08AntiDisturbance     = 0x0821
	P08SpeedCompensation   = 0x0827
	P08ModelCompensation   = 0x082D
)

// P09 failure and protection parameters.
const (
	P09UndervoltageDelay          = 0x0902 // 0.1 ms
	P09RunawayProtection          = 0x0904
	P09OverloadWarning            = 0x0905 // percent
	P09MotorOverloadFactor        = 0x0906 // percent
	P09UndervoltagePoint          = 0x0907 // percent
	P09OverspeedPoint             = 0x0908 // percent of max speed
	P09PositionDeviationThreshold = 0x0909 // 32-bit, pulses
	P09LockedRotorTemp            = 0x0918
	P09OverloadProtection         = 0x0919
)

// P10 communication parameters.
const (
	P10CommAddress        = 0x0A00 // 0-247, 0 = broadcast
	P10ModbusBaudRate     = 0x0A02
	P10ModbusFormat       = 0x0A03
	P10WriteEEPROM        = 0x0A04 // commit to non-volatile store
	P10RS232BaudRate      = 0x0A05
	P10RS485AddressSource = 0x0A06
)

// P11 auxiliary function parameters.
const (
	P11FaultReset         = 0x0B01
	P11SoftReset          = 0x0B02
	P11InertiaRecognition = 0x0B03
	P11EncoderReset       = 0x0B06
	P11SoftLimitSet       = 0x0B07
	P11SystemInit         = 0x0B09
	P11ForcedDIDO         = 0x0B0A
	P11ForcedDIValue      = 0x0B0B
	P11ForcedDOValue      = 0x0B0C
	P11EmergencyStop      = 0x0B0D
)

// P12 keyboard display parameters; the version registers are read-only.
const (
	P12LEDWarning         = 0x0C00
	P12DefaultDisplay     = 0x0C01
	P12SpeedDisplayFilter = 0x0C03
	P12NonstandardVersion = 0x0C0B
	P12SoftwareVersion    = 0x0C0C
	P12FPGAVersion        = 0x0C0D
	P12ProductCode        = 0x0C0E
)

// P13 multi-segment position parameters. Per-segment registers repeat every
// five addresses starting at P13.08; use SegmentDisplacementRegister and
// friends for lookup.
const (
	P13OperationMode     = 0x0D00
	P13StartSegment      = 0x0D01
	P13EndSegment        = 0x0D02
	P13InterruptHandling = 0x0D03
	P13WaitTimeUnit      = 0x0D04
	P13PositionMode      = 0x0D05
)

// P14 multi-speed parameters. Per-segment registers repeat every three
// addresses starting at P14.07.
const (
	P14OperationMode   = 0x0E00
	P14EndSegment      = 0x0E01
	P14TimeUnit        = 0x0E02
	P14AccelDecelTime1 = 0x0E03
	P14AccelDecelTime2 = 0x0E04
	P14AccelDecelTime3 = 0x0E05
	P14AccelDecelTime4 = 0x0E06
)

// P16 special function parameters (fixed length, homing).
const (
	P16FixedLengthEnable = 0x1000
	P16FixedLength1Disp  = 0x1001 // 32-bit
	P16FixedLength1Speed = 0x1003
	P16FixedLengthAccel  = 0x1004
	P16FixedLengthDecel  = 0x1005
	P16LockReleaseEnable = 0x1006
	P16HomingEnableMode  = 0x1008
	P16HomingMode        = 0x1009
	P16HomingHighSpeed   = 0x100A // 10-3000 rpm
	P16HomingLowSpeed    = 0x100B // 10-1000 rpm
	P16HomingAccel       = 0x100C // ms
	P16HomingTimeout     = 0x100D // ms
	P16HomeOffset        = 0x100E // 32-bit
	P16EncoderOrigin     = 0x101C // 32-bit
	P16EncoderTurns      = 0x101E
	P16ZeroWaitCount     = 0x101F
	P16FixedLength2Disp  = 0x1025 // 32-bit
	P16FixedLength2Speed = 0x1027
)

// P18 display parameters, the read-only status registers.
const (
	P18ServoStatus      = 0x1200
	P18SpeedFeedback    = 0x1201 // signed, rpm
	P18LoadRate         = 0x1202 // 0.1%
	P18SpeedCommand     = 0x1203 // signed, rpm
	P18InternalTorque   = 0x1204 // signed, 0.1% of rated
	P18PhaseCurrent     = 0x1205 // 0.01 A
	P18BusVoltage       = 0x1206 // 0.1 V
	P18AbsolutePosition = 0x1207 // signed 32-bit
	P18ElectricalAngle  = 0x1209 // 0.1 deg
)

// Register family ranges.
const (
	MinSegment       = 1
	MaxSegment       = 16
	MinDigitalInput  = 1
	MaxDigitalInput  = 3
	MinDigitalOutput = 1
	MaxDigitalOutput = 2
)

// Position segment registers start at P13.08 and repeat every five
// addresses: displacement (two registers), speed, accel/decel, wait time.
const (
	segmentBase   = 8
	segmentStride = 5
)

func segmentRegister(segment uint8, offset uint16) (uint16, bool) {
	if segment < MinSegment || segment > MaxSegment {
		return 0, false
	}
	return ParamAddr(13, segmentBase+uint8(segment-1)*segmentStride) + offset, true
}

// SegmentDisplacementRegister returns the 32-bit displacement register of a
// position segment. The second return value is false when segment is
// outside 1-16.
func SegmentDisplacementRegister(segment uint8) (uint16, bool) {
	return segmentRegister(segment, 0)
}

// SegmentSpeedRegister returns the maximum speed register of a position
// segment.
func SegmentSpeedRegister(segment uint8) (uint16, bool) {
	return segmentRegister(segment, 2)
}

// SegmentAccelDecelRegister returns the accel/decel time register of a
// position segment.
func SegmentAccelDecelRegister(segment uint8) (uint16, bool) {
	return segmentRegister(segment, 3)
}

// SegmentWaitTimeRegister returns the wait time register of a position
// segment.
func SegmentWaitTimeRegister(segment uint8) (uint16, bool) {
	return segmentRegister(segment, 4)
}

// Multi-speed segment registers start at P14.07 and repeat every three
// addresses: speed, running time, accel/decel selection.
const (
	speedSegmentBase   = 7
	speedSegmentStride = 3
)

func speedSegmentRegister(segment uint8, offset uint16) (uint16, bool) {
	if segment < MinSegment || segment > MaxSegment {
		return 0, false
	}
	return ParamAddr(14, speedSegmentBase+uint8(segment-1)*speedSegmentStride) + offset, true
}

// SpeedSegmentSpeedRegister returns the speed register of a multi-speed
// segment.
func SpeedSegmentSpeedRegister(segment uint8) (uint16, bool) {
	return speedSegmentRegister(segment, 0)
}

// SpeedSegmentTimeRegister returns the running time register of a
// multi-speed segment.
func SpeedSegmentTimeRegister(segment uint8) (uint16, bool) {
	return speedSegmentRegister(segment, 1)
}

// SpeedSegmentAccelSelectRegister returns the accel/decel selection register
// of a multi-speed segment.
func SpeedSegmentAccelSelectRegister(segment uint8) (uint16, bool) {
	return speedSegmentRegister(segment, 2)
}

// DIFunctionRegister returns the function selection register of digital
// input 1-3.
func DIFunctionRegister(input uint8) (uint16, bool) {
	if input < MinDigitalInput || input > MaxDigitalInput {
		return 0, false
	}
	return P02DI1Function + uint16(input-1), true
}

// DILogicRegister returns the logic selection register of digital input 1-3.
func DILogicRegister(input uint8) (uint16, bool) {
	if input < MinDigitalInput || input > MaxDigitalInput {
		return 0, false
	}
	return P02DI1Logic + uint16(input-1), true
}

// DOFunctionRegister returns the function selection register of digital
// output 1-2.
func DOFunctionRegister(output uint8) (uint16, bool) {
	if output < MinDigitalOutput || output > MaxDigitalOutput {
		return 0, false
	}
	return P02DO1Function + uint16(output-1), true
}

// DOLogicRegister returns the logic selection register of digital output 1-2.
func DOLogicRegister(output uint8) (uint16, bool) {
	if output < MinDigitalOutput || output > MaxDigitalOutput {
		return 0, false
	}
	return P02DO1Logic + uint16(output-1), true
}
