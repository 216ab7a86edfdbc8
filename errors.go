package dsyrs

import (
	"errors"
	"fmt"
)

// ErrTransportReleased is returned by every client method after the
// transport handle has been handed off with ReleaseTransport.
var ErrTransportReleased = errors.New("dsyrs: transport released")

// ErrBroadcastRead is returned for read operations while the broadcast
// address 0 is selected; broadcast frames get no response.
var ErrBroadcastRead = errors.New("dsyrs: read on broadcast address")

// RangeError reports a parameter value outside the range the drive
// accepts. It is returned before any bus transaction takes place.
type RangeError struct {
	Param string
	Value int64
	Min   int64
	Max   int64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("dsyrs: %s %d outside range [%d, %d]", e.Param, e.Value, e.Min, e.Max)
}

// MemberError reports a family member index outside its valid range, for
// example segment 17 of the 16-segment program.
type MemberError struct {
	Family string
	Member int
	Min    int
	Max    int
}

func (e *MemberError) Error() string {
	return fmt.Sprintf("dsyrs: %s %d outside range [%d, %d]", e.Family, e.Member, e.Min, e.Max)
}

// DecodeError reports a raw register value with no corresponding member in
// the target enumeration. The raw value is preserved for diagnostics.
type DecodeError struct {
	Param string
	Raw   uint16
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("dsyrs: undecodable %s value %d", e.Param, e.Raw)
}

// SlaveIDError reports a slave ID outside the Modbus station range.
type SlaveIDError struct {
	SlaveID int
}

func (e *SlaveIDError) Error() string {
	return fmt.Sprintf("dsyrs: slave ID %d outside range [0, 247]", e.SlaveID)
}
