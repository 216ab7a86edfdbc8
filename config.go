package dsyrs

// ServoConfig carries the base drive setup applied by Init. Optional
// fields left at zero via the pointer types are skipped during the
// verification reads.
type ServoConfig struct {
	// SlaveID is the Modbus station address, 0 to 247. 0 is the broadcast
	// address; with it, Init skips all verification reads.
	SlaveID byte
	// ControlMode is written to P00.00.
	ControlMode ControlMode
	// Direction is written to P00.01.
	Direction Direction
	// MaxSpeed is the speed ceiling in rpm written to P00.07.
	MaxSpeed uint16

	// MotorModelCode, when set, is checked against P01.00.
	MotorModelCode *uint16
	// RatedCurrent, when set, is checked against P01.04 in amperes.
	RatedCurrent *float64
	// EncoderType, when set, is checked against P01.18.
	EncoderType *EncoderType
	// EncoderResolution, when set, is checked against P01.20 in pulses
	// per revolution.
	EncoderResolution *uint32
}

// NewServoConfig returns a ServoConfig for the given station with the
// factory defaults of the drive family.
func NewServoConfig(slaveID byte) ServoConfig {
	return ServoConfig{
		SlaveID:     slaveID,
		ControlMode: ControlModePosition,
		Direction:   DirectionCCWForward,
		MaxSpeed:    4500,
	}
}

// SegmentConfig describes one step of the multi-segment position program.
type SegmentConfig struct {
	// Displacement is the segment travel in command units. Negative
	// values move backward.
	Displacement int32
	// Speed is the segment cruise speed in rpm.
	Speed uint16
	// AccelDecel is the acceleration/deceleration time in ms.
	AccelDecel uint16
	// WaitTime is the dwell after the segment, in the unit selected by
	// P13.04.
	WaitTime uint16
}

// NewSegmentConfig returns a SegmentConfig with the drive defaults for the
// given displacement.
func NewSegmentConfig(displacement int32) SegmentConfig {
	return SegmentConfig{
		Displacement: displacement,
		Speed:        200,
		AccelDecel:   50,
	}
}

// HomingConfig bundles the homing parameters written by ApplyHomingConfig.
type HomingConfig struct {
	// Mode is the search strategy written to P16.09.
	Mode HomingMode
	// HighSpeed is the fast search speed in rpm (P16.10).
	HighSpeed uint16
	// LowSpeed is the creep speed in rpm (P16.11).
	LowSpeed uint16
	// AccelDecel is the homing acceleration time in ms (P16.12).
	AccelDecel uint16
	// Timeout is the homing time limit in ms (P16.13).
	Timeout uint16
	// Offset is the mechanical home offset in command units (P16.14).
	Offset int32
}

// NewHomingConfig returns a HomingConfig with the drive defaults.
func NewHomingConfig() HomingConfig {
	return HomingConfig{
		Mode:       HomingModeForwardLimitZ,
		HighSpeed:  100,
		LowSpeed:   10,
		AccelDecel: 1000,
		Timeout:    10000,
	}
}

// JogConfig bundles the jog motion parameters.
type JogConfig struct {
	// Speed is the jog speed in rpm (P05.04).
	Speed uint16
	// AccelTime is the jog acceleration time in ms (P05.05).
	AccelTime uint16
	// DecelTime is the jog deceleration time in ms (P05.06).
	DecelTime uint16
}

// NewJogConfig returns a JogConfig with the drive defaults.
func NewJogConfig() JogConfig {
	return JogConfig{Speed: 200, AccelTime: 50, DecelTime: 50}
}

// GainParams bundles the first servo gain set.
type GainParams struct {
	// PositionGain is the position loop gain in 0.1 Hz (P07.00).
	PositionGain uint16
	// SpeedGain is the speed loop gain in 0.1 Hz (P07.01).
	SpeedGain uint16
	// SpeedIntegral is the speed loop integral time in 0.01 ms (P07.02).
	SpeedIntegral uint16
	// SpeedFilter is the speed feedback filter time in 0.01 ms (P07.03).
	SpeedFilter uint16
}

// NewGainParams returns GainParams with the drive defaults.
func NewGainParams() GainParams {
	return GainParams{
		PositionGain:  320,
		SpeedGain:     180,
		SpeedIntegral: 3100,
		SpeedFilter:   20,
	}
}

// CommConfig bundles the RS485 communication parameters. Applying it takes
// effect after the drive is power cycled.
type CommConfig struct {
	// Address is the station address written to P10.00.
	Address byte
	// Baud is written to P10.02.
	Baud BaudRate
	// Format is written to P10.03.
	Format DataFormat
	// AddressSource is written to P10.06.
	AddressSource AddressSource
}

// NewCommConfig returns a CommConfig with the drive defaults for the given
// station address.
func NewCommConfig(address byte) CommConfig {
	return CommConfig{
		Address:       address,
		Baud:          Baud9600,
		Format:        FormatNoParity2Stop,
		AddressSource: AddressFromHost,
	}
}
