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

// Package sensor implements the control core of the IMX477/IMX378 image
// sensor: the mode catalogue, the register program sequencer, the
// mode-dependent control ranges and the streaming state machine. All state
// lives behind one lock; bus and power calls happen while holding it.
package sensor

import (
	"errors"
	"fmt"
	"sync"

	"jinr.ru/greenlab/go-imx477/pkg/bus"
	"jinr.ru/greenlab/go-imx477/pkg/log"
)

// Variant describes one supported chip and the extra registers it needs on
// top of the common initialization block.
type Variant struct {
	Name      string
	ChipID    uint32
	ExtraRegs []RegVal
}

var (
	VariantIMX477 = Variant{Name: "imx477", ChipID: ChipIDIMX477}
	VariantIMX378 = Variant{Name: "imx378", ChipID: ChipIDIMX378, ExtraRegs: imx378ExtraRegs}
)

// VariantByName resolves a chip variant name from the configuration.
func VariantByName(name string) (Variant, bool) {
	switch name {
	case VariantIMX477.Name:
		return VariantIMX477, true
	case VariantIMX378.Name:
		return VariantIMX378, true
	}
	return Variant{}, false
}

// Trigger modes: where the frame sync (XVS) comes from.
const (
	TriggerStandalone = 0 // generated locally, not exported
	TriggerSource     = 1 // generated locally and driven out to peers
	TriggerSink       = 2 // received from a peer
)

// AttachConfig is the hardware description consumed once at attach. The
// sensor only supports one lane count, clock and link frequency; anything
// else is a fatal configuration error.
type AttachConfig struct {
	Variant     string
	DataLanes   int
	XClkFreq    int64
	LinkFreq    int64
	TriggerMode int
	DPCEnable   bool
}

// Sensor owns the sensor state machine. A single mutex serializes every
// read and mutation, including the full power transition plus register
// programming on stream start.
type Sensor struct {
	// mu guards everything below plus all bus and power transactions;
	// critical sections span full power transitions on purpose.
	mu sync.Mutex

	regIO
	power Power

	variant Variant

	mode    *Mode
	fmtCode FormatCode

	triggerMode int
	dpcEnable   bool

	// Long exposure shift currently programmed, set through VBLANK.
	longExpShift uint

	streaming bool

	// Rewrite the common register block on next stream start? Reset by
	// every power-off.
	commonRegsWritten bool

	controls []*control
	ctrlByID map[ControlID]*control

	tryFmt [numPads]Format
}

// Attach validates the hardware configuration, powers the sensor up to
// identify it, installs the default format and control ranges, and powers
// it back down. rec may be nil.
func Attach(b bus.Bus, p Power, cfg AttachConfig, rec Recorder) (*Sensor, error) {
	variant, ok := VariantByName(cfg.Variant)
	if !ok {
		return nil, fmt.Errorf("unknown chip variant %q", cfg.Variant)
	}
	if cfg.DataLanes != 2 {
		return nil, ErrHardwareConfig{Field: "data lanes", Got: int64(cfg.DataLanes), Want: 2}
	}
	if cfg.XClkFreq != XClkFreq {
		return nil, ErrHardwareConfig{Field: "xclk frequency", Got: cfg.XClkFreq, Want: XClkFreq}
	}
	if cfg.LinkFreq != DefaultLinkFreq {
		return nil, ErrHardwareConfig{Field: "link frequency", Got: cfg.LinkFreq, Want: DefaultLinkFreq}
	}
	if cfg.TriggerMode < TriggerStandalone || cfg.TriggerMode > TriggerSink {
		return nil, ErrHardwareConfig{Field: "trigger mode", Got: int64(cfg.TriggerMode), Want: TriggerStandalone}
	}

	s := &Sensor{
		regIO:       regIO{bus: b, rec: rec},
		power:       p,
		variant:     variant,
		triggerMode: cfg.TriggerMode,
		dpcEnable:   cfg.DPCEnable,
	}

	// The sensor must be powered for the chip ID register to be readable.
	if err := p.PowerOn(); err != nil {
		return nil, err
	}
	if err := s.identify(); err != nil {
		s.powerOff()
		return nil, err
	}

	s.setDefaultFormat()
	s.initControls()
	s.setFramingLimits()

	s.powerOff()

	return s, nil
}

// identify reads the chip ID register and checks it against the variant.
func (s *Sensor) identify() error {
	val, err := s.readReg(RegChipID, RegValue16Bit)
	if err != nil {
		log.Error("Failed to read chip id %x: %v", s.variant.ChipID, err)
		return err
	}
	if val != s.variant.ChipID {
		return ErrIDMismatch{Want: s.variant.ChipID, Got: val}
	}
	log.Info("Device found is imx%x", val)
	return nil
}

// setDefaultFormat selects the full-resolution 12-bit mode and seeds the
// tentative formats of both pads.
func (s *Sensor) setDefaultFormat() {
	s.mode = &supportedModes12Bit[0]
	s.fmtCode = FormatSRGGB12
	s.tryFmt[PadImage] = Format{
		Width:  supportedModes12Bit[0].Width,
		Height: supportedModes12Bit[0].Height,
		Code:   FormatSRGGB12,
	}
	s.tryFmt[PadMetadata] = Format{
		Width:  EmbeddedLineWidth,
		Height: NumEmbeddedLines,
		Code:   FormatSensorData,
	}
}

// powerOff drops power and forces reprogramming of the common registers on
// the next power-up.
func (s *Sensor) powerOff() {
	s.power.PowerOff()
	s.commonRegsWritten = false
}

func (s *Sensor) hflip() bool { return s.ctrlByID[CtrlHFlip].value != 0 }
func (s *Sensor) vflip() bool { return s.ctrlByID[CtrlVFlip].value != 0 }

func boolReg(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

// startStreaming pushes the full register state in the mandated order:
// common block (once per power-on), chip-variant extras, mode program, DPC
// pair, pending control values in registration order, trigger-mode quad,
// and finally the streaming mode select.
func (s *Sensor) startStreaming() error {
	if !s.commonRegsWritten {
		if err := s.writeRegList(modeCommonRegs); err != nil {
			log.Error("Failed to set common settings: %v", err)
			return err
		}
		if err := s.writeRegList(s.variant.ExtraRegs); err != nil {
			log.Error("Failed to set common settings: %v", err)
			return err
		}
		s.commonRegsWritten = true
	}

	// Apply default values of the current mode.
	if err := s.writeRegList(s.mode.RegisterProgram); err != nil {
		log.Error("Failed to set mode %dx%d: %v", s.mode.Width, s.mode.Height, err)
		return err
	}

	// Set on-sensor DPC.
	if err := s.writeReg(RegDPCA, RegValue8Bit, boolReg(s.dpcEnable)); err != nil {
		return err
	}
	if err := s.writeReg(RegDPCB, RegValue8Bit, boolReg(s.dpcEnable)); err != nil {
		return err
	}

	// Apply customized values from the user.
	for _, c := range s.controls {
		if c.readOnly {
			continue
		}
		if err := s.applyControl(c); err != nil {
			log.Error("Failed to apply ctrl %s: %v", c.id, err)
			return err
		}
	}

	// Frame sync trigger mode: standalone, source or sink.
	tm := s.triggerMode
	if err := s.writeReg(RegMCMode, RegValue8Bit, boolReg(tm > TriggerStandalone)); err != nil {
		return err
	}
	if err := s.writeReg(RegMSSel, RegValue8Bit, boolReg(tm <= TriggerSource)); err != nil {
		return err
	}
	if err := s.writeReg(RegXVSIOCtrl, RegValue8Bit, boolReg(tm == TriggerSource)); err != nil {
		return err
	}
	if err := s.writeReg(RegExtoutEn, RegValue8Bit, boolReg(tm == TriggerSource)); err != nil {
		return err
	}

	return s.writeReg(RegModeSelect, RegValue8Bit, ModeStreaming)
}

// stopStreaming parks the sensor in standby. Register failures here are
// logged only; power still has to go down afterwards.
func (s *Sensor) stopStreaming() {
	if err := s.writeReg(RegModeSelect, RegValue8Bit, ModeStandby); err != nil {
		log.Error("Failed to set stream off: %v", err)
	}
	// Stop driving XVS out (there is still a weak pull-up).
	if err := s.writeReg(RegExtoutEn, RegValue8Bit, 0); err != nil {
		log.Error("Failed to disable external output: %v", err)
	}
}

// SetStreaming transitions between Standby and Streaming. Enabling while
// already streaming is a no-op. A failed start rolls power back off and the
// state stays Standby.
func (s *Sensor) SetStreaming(enable bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.streaming == enable {
		return nil
	}

	if enable {
		if err := s.power.PowerOn(); err != nil {
			return err
		}
		if err := s.startStreaming(); err != nil {
			s.powerOff()
			return err
		}
	} else {
		s.stopStreaming()
		s.powerOff()
	}

	s.streaming = enable
	return nil
}

// Streaming reports whether the sensor is in the Streaming state.
func (s *Sensor) Streaming() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.streaming
}

// Suspend performs the stop sequence for a system sleep without touching
// the logical streaming flag, so Resume knows to restart.
func (s *Sensor) Suspend() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.streaming {
		s.stopStreaming()
		s.powerOff()
	}
}

// Resume restarts streaming after a system sleep if it was logically on.
// A failed restart forces the state back to Standby and surfaces the error.
func (s *Sensor) Resume() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.streaming {
		return nil
	}
	if err := s.power.PowerOn(); err != nil {
		s.streaming = false
		return err
	}
	if err := s.startStreaming(); err != nil {
		s.stopStreaming()
		s.powerOff()
		s.streaming = false
		return err
	}
	return nil
}

// SetControl validates and stores a control value. While streaming the
// value is written to the sensor immediately; otherwise it is replayed on
// the next stream start. Flips are locked while streaming since orientation
// only latches at mode-configuration time.
func (s *Sensor) SetControl(id ControlID, value int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.ctrlByID[id]
	if !ok {
		return ErrUnknownControl{ID: id}
	}
	if c.readOnly {
		return ErrInvalidControlValue{ID: id, Value: value, Reason: "control is read-only"}
	}
	if (id == CtrlHFlip || id == CtrlVFlip) && s.streaming {
		return ErrStreamingBusy{ID: id}
	}
	if !c.rng.contains(value) {
		return ErrInvalidControlValue{ID: id, Value: value, Reason: "outside current range"}
	}

	c.value = value

	// A VBLANK change moves the usable exposure limits.
	if id == CtrlVBlank {
		s.adjustExposureRange()
	}

	if s.rec != nil {
		s.rec.RecordControl(id, value)
	}

	if !s.streaming {
		return nil
	}
	return s.applyControl(c)
}

// Control returns the pending value of a control.
func (s *Sensor) Control(id ControlID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.ctrlByID[id]
	if !ok {
		return 0, ErrUnknownControl{ID: id}
	}
	return c.value, nil
}

// ControlRange returns the current legal range of a control.
func (s *Sensor) ControlRange(id ControlID) (ControlRange, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.ctrlByID[id]
	if !ok {
		return ControlRange{}, ErrUnknownControl{ID: id}
	}
	return c.rng, nil
}

// GetFormat reports the active or tentative format of a pad. The code
// reflects the current flip state.
func (s *Sensor) GetFormat(pad Pad, which FormatWhence) (Format, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if pad < 0 || pad >= numPads {
		return Format{}, ErrInvalidPad{Pad: pad}
	}

	if which == FormatTentative {
		f := s.tryFmt[pad]
		if pad == PadImage {
			f.Code = formatCodeFor(f.Code, s.hflip(), s.vflip())
		}
		return f, nil
	}

	if pad == PadMetadata {
		return Format{
			Width:  EmbeddedLineWidth,
			Height: NumEmbeddedLines,
			Code:   FormatSensorData,
		}, nil
	}
	return Format{
		Width:  s.mode.Width,
		Height: s.mode.Height,
		Code:   formatCodeFor(s.fmtCode, s.hflip(), s.vflip()),
	}, nil
}

// SetFormat negotiates a format on a pad. The request snaps to the nearest
// supported mode; the returned format is what the sensor will produce. An
// active-image format change selects the mode and recomputes the control
// ranges. Errors leave the active mode unchanged.
func (s *Sensor) SetFormat(pad Pad, which FormatWhence, req Format) (Format, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if pad < 0 || pad >= numPads {
		return Format{}, ErrInvalidPad{Pad: pad}
	}

	if pad == PadMetadata {
		// Only one embedded data mode is supported.
		f := Format{
			Width:  EmbeddedLineWidth,
			Height: NumEmbeddedLines,
			Code:   FormatSensorData,
		}
		if which == FormatTentative {
			s.tryFmt[pad] = f
		}
		return f, nil
	}

	// Bayer order varies with flips.
	code := formatCodeFor(req.Code, s.hflip(), s.vflip())
	mode, err := resolveMode(code, req.Width, req.Height)
	if err != nil {
		return Format{}, err
	}

	f := Format{Width: mode.Width, Height: mode.Height, Code: code}
	if which == FormatTentative {
		s.tryFmt[pad] = f
		return f, nil
	}

	if s.mode != mode {
		s.mode = mode
		s.fmtCode = code
		s.setFramingLimits()
	}
	return f, nil
}

// EnumFormats walks the supported format codes of a pad: one representative
// per bit depth on the image pad, adjusted for the current flip state.
func (s *Sensor) EnumFormats(pad Pad, index int) (FormatCode, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if pad == PadMetadata {
		if index == 0 {
			return FormatSensorData, true
		}
		return 0, false
	}
	if pad != PadImage || index < 0 || index >= len(formatCodes)/4 {
		return 0, false
	}
	return formatCodeFor(formatCodes[index*4], s.hflip(), s.vflip()), true
}

// EnumFrameSizes walks the discrete frame sizes available for a format
// code. The code must be the variant matching the current flip state.
func (s *Sensor) EnumFrameSizes(code FormatCode, index int) (FrameSize, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 {
		return FrameSize{}, false
	}
	if code == FormatSensorData {
		if index > 0 {
			return FrameSize{}, false
		}
		return FrameSize{
			MinWidth: EmbeddedLineWidth, MaxWidth: EmbeddedLineWidth,
			MinHeight: NumEmbeddedLines, MaxHeight: NumEmbeddedLines,
		}, true
	}
	if code != formatCodeFor(code, s.hflip(), s.vflip()) {
		return FrameSize{}, false
	}
	table := modeTable(code)
	if index >= len(table) {
		return FrameSize{}, false
	}
	m := &table[index]
	return FrameSize{
		MinWidth: m.Width, MaxWidth: m.Width,
		MinHeight: m.Height, MaxHeight: m.Height,
	}, true
}

// Crop reports the requested crop rectangle on the native pixel array.
func (s *Sensor) Crop(target CropTarget) (Rect, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch target {
	case CropCurrent:
		return s.mode.Crop, nil
	case CropDefault, CropBounds:
		return Rect{
			Left:   PixelArrayLeft,
			Top:    PixelArrayTop,
			Width:  PixelArrayWidth,
			Height: PixelArrayHeight,
		}, nil
	case CropNative:
		return Rect{Width: NativeWidth, Height: NativeHeight}, nil
	}
	return Rect{}, errors.New("invalid crop target")
}

// ActiveMode returns a copy of the active mode descriptor without its
// register program.
func (s *Sensor) ActiveMode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := *s.mode
	m.RegisterProgram = nil
	return m
}

// Modes lists the catalogue for a bit depth, keyed by a representative
// format code.
func Modes(code FormatCode) []Mode {
	table := modeTable(code)
	out := make([]Mode, len(table))
	for i, m := range table {
		m.RegisterProgram = nil
		out[i] = m
	}
	return out
}

// RegRead performs a live register read. The sensor must be powered, which
// outside of attach means streaming.
func (s *Sensor) RegRead(addr uint16, n int) (uint32, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.streaming {
		return 0, errors.New("sensor is powered down")
	}
	return s.readReg(addr, n)
}

// RegWrite performs a raw register write, bypassing the control registry.
// Meant for bring-up and debugging.
func (s *Sensor) RegWrite(addr uint16, n int, val uint32) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.streaming {
		return errors.New("sensor is powered down")
	}
	return s.writeReg(addr, n, val)
}
