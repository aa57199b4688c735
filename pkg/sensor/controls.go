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

// ControlID identifies a logical camera parameter.
type ControlID int

const (
	CtrlPixelRate ControlID = iota
	CtrlLinkFreq
	CtrlVBlank
	CtrlHBlank
	CtrlExposure
	CtrlAnalogueGain
	CtrlDigitalGain
	CtrlHFlip
	CtrlVFlip
	CtrlTestPattern
	CtrlTestPatternRed
	CtrlTestPatternGreenR
	CtrlTestPatternBlue
	CtrlTestPatternGreenB
	ctrlIDLimit
)

var ctrlNames = map[ControlID]string{
	CtrlPixelRate:         "pixel_rate",
	CtrlLinkFreq:          "link_freq",
	CtrlVBlank:            "vblank",
	CtrlHBlank:            "hblank",
	CtrlExposure:          "exposure",
	CtrlAnalogueGain:      "analogue_gain",
	CtrlDigitalGain:       "digital_gain",
	CtrlHFlip:             "hflip",
	CtrlVFlip:             "vflip",
	CtrlTestPattern:       "test_pattern",
	CtrlTestPatternRed:    "test_pattern_red",
	CtrlTestPatternGreenR: "test_pattern_greenr",
	CtrlTestPatternBlue:   "test_pattern_blue",
	CtrlTestPatternGreenB: "test_pattern_greenb",
}

// CtrlByName resolves a control name as used by the CLI and the API.
func CtrlByName(name string) (ControlID, bool) {
	for id, n := range ctrlNames {
		if n == name {
			return id, true
		}
	}
	return 0, false
}

func (id ControlID) String() string {
	if n, ok := ctrlNames[id]; ok {
		return n
	}
	return "unknown"
}

// ControlRange holds the legal values of a control. Recomputed by the
// framing code whenever the mode or the frame length changes, never
// hand-edited after construction.
type ControlRange struct {
	Minimum int64 `json:"minimum"`
	Maximum int64 `json:"maximum"`
	Step    int64 `json:"step"`
	Default int64 `json:"default"`
}

func (r ControlRange) contains(v int64) bool {
	if v < r.Minimum || v > r.Maximum {
		return false
	}
	return (v-r.Minimum)%r.Step == 0
}

// control is one registered control with its live range and pending value.
// Pending values are replayed into registers on every stream start, in
// registration order.
type control struct {
	id       ControlID
	rng      ControlRange
	value    int64
	readOnly bool
}

// Test pattern menu order as exposed through CtrlTestPattern, and the
// register value each menu entry programs.
var testPatternMenu = []string{
	"Disabled",
	"Color Bars",
	"Solid Color",
	"Grey Color Bars",
	"PN9",
}

var testPatternVal = []uint32{
	TestPatternDisable,
	TestPatternColorBars,
	TestPatternSolidColor,
	TestPatternGreyColor,
	TestPatternPN9,
}

// TestPatternMenu lists the selectable test patterns in menu order.
func TestPatternMenu() []string {
	menu := make([]string, len(testPatternMenu))
	copy(menu, testPatternMenu)
	return menu
}

// initControls builds the control registry with mode-independent ranges.
// Mode-specific limits are set up by the setFramingLimits call that always
// follows.
func (s *Sensor) initControls() {
	s.controls = []*control{
		{id: CtrlPixelRate,
			rng:      ControlRange{PixelRate, PixelRate, 1, PixelRate},
			value:    PixelRate,
			readOnly: true},
		{id: CtrlLinkFreq,
			rng:      ControlRange{DefaultLinkFreq, DefaultLinkFreq, 1, DefaultLinkFreq},
			value:    DefaultLinkFreq,
			readOnly: true},
		// Placeholder ranges; setFramingLimits installs the real ones.
		{id: CtrlVBlank, rng: ControlRange{0, 0xffff, 1, 0}},
		{id: CtrlHBlank, rng: ControlRange{0, 0xffff, 1, 0}},
		{id: CtrlExposure,
			rng:   ControlRange{ExposureMin, ExposureMax, ExposureStep, ExposureDefault},
			value: ExposureDefault},
		{id: CtrlAnalogueGain,
			rng:   ControlRange{AnaGainMin, AnaGainMax, AnaGainStep, AnaGainDefault},
			value: AnaGainDefault},
		{id: CtrlDigitalGain,
			rng:   ControlRange{DgtlGainMin, DgtlGainMax, DgtlGainStep, DgtlGainDefault},
			value: DgtlGainDefault},
		{id: CtrlHFlip, rng: ControlRange{0, 1, 1, 0}},
		{id: CtrlVFlip, rng: ControlRange{0, 1, 1, 0}},
		{id: CtrlTestPattern,
			rng: ControlRange{0, int64(len(testPatternMenu) - 1), 1, 0}},
		{id: CtrlTestPatternRed,
			rng:   ControlRange{TestPatternColourMin, TestPatternColourMax, TestPatternColourStep, TestPatternColourMax},
			value: TestPatternColourMax},
		{id: CtrlTestPatternGreenR,
			rng:   ControlRange{TestPatternColourMin, TestPatternColourMax, TestPatternColourStep, TestPatternColourMax},
			value: TestPatternColourMax},
		{id: CtrlTestPatternBlue,
			rng:   ControlRange{TestPatternColourMin, TestPatternColourMax, TestPatternColourStep, TestPatternColourMax},
			value: TestPatternColourMax},
		{id: CtrlTestPatternGreenB,
			rng:   ControlRange{TestPatternColourMin, TestPatternColourMax, TestPatternColourStep, TestPatternColourMax},
			value: TestPatternColourMax},
	}
	s.ctrlByID = make(map[ControlID]*control, len(s.controls))
	for _, c := range s.controls {
		s.ctrlByID[c.id] = c
	}
}

// applyControl writes the register(s) backing c. Only called while the
// sensor is powered; values set at other times are replayed on stream
// start.
func (s *Sensor) applyControl(c *control) error {
	switch c.id {
	case CtrlAnalogueGain:
		return s.writeReg(RegAnalogGain, RegValue16Bit, uint32(c.value))
	case CtrlExposure:
		// The raw exposure shares the long-exposure shift of the frame
		// length so the two registers describe the same line clock.
		return s.writeReg(RegExposure, RegValue16Bit,
			uint32(c.value)>>s.longExpShift)
	case CtrlDigitalGain:
		return s.writeReg(RegDigitalGain, RegValue16Bit, uint32(c.value))
	case CtrlTestPattern:
		return s.writeReg(RegTestPattern, RegValue16Bit, testPatternVal[c.value])
	case CtrlTestPatternRed:
		return s.writeReg(RegTestPatternR, RegValue16Bit, uint32(c.value))
	case CtrlTestPatternGreenR:
		return s.writeReg(RegTestPatternGR, RegValue16Bit, uint32(c.value))
	case CtrlTestPatternBlue:
		return s.writeReg(RegTestPatternB, RegValue16Bit, uint32(c.value))
	case CtrlTestPatternGreenB:
		return s.writeReg(RegTestPatternGB, RegValue16Bit, uint32(c.value))
	case CtrlHFlip, CtrlVFlip:
		var v uint32
		if s.ctrlByID[CtrlHFlip].value != 0 {
			v |= 1
		}
		if s.ctrlByID[CtrlVFlip].value != 0 {
			v |= 2
		}
		return s.writeReg(RegOrientation, RegValue8Bit, v)
	case CtrlVBlank:
		return s.setFrameTiming(s.mode.Height + uint32(c.value))
	case CtrlHBlank:
		return s.writeReg(RegLineLength, RegValue16Bit,
			s.mode.Width+uint32(c.value))
	}
	return ErrUnknownControl{ID: c.id}
}
