/*
 Licensed under the Apache License, Version 2.0 (the "License");
 you may not use this file except in compliance with the License.
 You may obtain a copy of the License at

     https://www.apache.org/licenses/LICENSE-2.0

 Unless required by applicable law or agreed to in writing, software
 distributed under the License is distributed on an "AS IS" BASIS,
 WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 See the License for the specific language governing permissions and
 limitations under the License.
*/

package sensor

import (
	"fmt"
)

// ErrBusIO returned when a control-bus transfer fails or is acknowledged
// with the wrong length. Never retried internally.
type ErrBusIO struct {
	Op   string // "read" or "write"
	Addr uint16
	Err  error
}

func (e ErrBusIO) Error() string {
	return fmt.Sprintf("bus %s of register 0x%04x failed: %v", e.Op, e.Addr, e.Err)
}

func (e ErrBusIO) Unwrap() error {
	return e.Err
}

// ErrRegListWrite returned when a register program aborts partway through.
// Offset is the index of the failing entry; earlier entries stay applied.
type ErrRegListWrite struct {
	Offset int
	Addr   uint16
	Err    error
}

func (e ErrRegListWrite) Error() string {
	return fmt.Sprintf("register program aborted at entry %d (0x%04x): %v", e.Offset, e.Addr, e.Err)
}

func (e ErrRegListWrite) Unwrap() error {
	return e.Err
}

// ErrIDMismatch returned at attach when the chip ID register does not hold
// the expected value. Fatal, the driver does not come up.
type ErrIDMismatch struct {
	Want uint32
	Got  uint32
}

func (e ErrIDMismatch) Error() string {
	return fmt.Sprintf("chip id mismatch: %x!=%x", e.Want, e.Got)
}

// ErrHardwareConfig returned at attach when the declared lane count, clock
// frequency or link frequency is not the one the sensor supports.
type ErrHardwareConfig struct {
	Field string
	Got   int64
	Want  int64
}

func (e ErrHardwareConfig) Error() string {
	return fmt.Sprintf("unsupported %s: %d (want %d)", e.Field, e.Got, e.Want)
}

// ErrUnsupportedFormat returned when no mode table exists for the requested
// format code.
type ErrUnsupportedFormat struct {
	Code FormatCode
}

func (e ErrUnsupportedFormat) Error() string {
	return fmt.Sprintf("unsupported format code 0x%04x", uint32(e.Code))
}

// ErrUnsupportedResolution returned to the format-negotiation caller when
// the requested size cannot be served by the selected mode table.
type ErrUnsupportedResolution struct {
	Width  uint32
	Height uint32
	Code   FormatCode
}

func (e ErrUnsupportedResolution) Error() string {
	return fmt.Sprintf("unsupported resolution %dx%d for format 0x%04x",
		e.Width, e.Height, uint32(e.Code))
}

// ErrUnknownControl returned when a control ID is not handled.
type ErrUnknownControl struct {
	ID ControlID
}

func (e ErrUnknownControl) Error() string {
	return fmt.Sprintf("ctrl(id:0x%x) is not handled", int(e.ID))
}

// ErrInvalidControlValue returned when a control value is outside the
// current range or the control is read-only. No register is written.
type ErrInvalidControlValue struct {
	ID     ControlID
	Value  int64
	Reason string
}

func (e ErrInvalidControlValue) Error() string {
	return fmt.Sprintf("invalid value %d for ctrl(id:0x%x): %s", e.Value, int(e.ID), e.Reason)
}

// ErrStreamingBusy returned for controls the hardware only latches at
// mode-configuration time when they are set mid-stream.
type ErrStreamingBusy struct {
	ID ControlID
}

func (e ErrStreamingBusy) Error() string {
	return fmt.Sprintf("ctrl(id:0x%x) cannot change while streaming", int(e.ID))
}

// ErrInvalidPad returned for pad selectors outside the two source pads.
type ErrInvalidPad struct {
	Pad Pad
}

func (e ErrInvalidPad) Error() string {
	return fmt.Sprintf("invalid pad %d", int(e.Pad))
}
