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

// Register value byte lengths used with WriteReg/ReadReg.
const (
	RegValue8Bit  = 1
	RegValue16Bit = 2
)

const (
	RegChipID uint16 = 0x0016

	ChipIDIMX477 uint32 = 0x0477
	ChipIDIMX378 uint32 = 0x0378
)

const (
	RegModeSelect uint16 = 0x0100

	ModeStandby   uint32 = 0x00
	ModeStreaming uint32 = 0x01
)

// Orientation latches flip state; only applied while configuring a mode.
const RegOrientation uint16 = 0x0101

const (
	XClkFreq        = 24000000
	DefaultLinkFreq = 450000000

	// PixelRate is fixed for all modes and both bit depths.
	PixelRate = 840000000
)

const (
	RegFrameLength uint16 = 0x0340
	FrameLengthMax        = 0xffdc

	RegLineLength uint16 = 0x0342
	LineLengthMax        = 0xfff0
)

// Long exposure: frame lengths beyond FrameLengthMax are right-shifted and
// the shift count programmed separately. The two registers must stay
// consistent, see setFrameTiming.
const (
	LongExpShiftMax        = 7
	RegLongExpShift uint16 = 0x3100
)

const (
	RegExposure     uint16 = 0x0202
	ExposureOffset         = 22
	ExposureMin            = 4
	ExposureStep           = 1
	ExposureDefault        = 0x640
	ExposureMax            = FrameLengthMax - ExposureOffset
)

const (
	RegAnalogGain  uint16 = 0x0204
	AnaGainMin            = 0
	AnaGainMax            = 978
	AnaGainStep           = 1
	AnaGainDefault        = 0
)

const (
	RegDigitalGain  uint16 = 0x020e
	DgtlGainMin            = 0x0100
	DgtlGainMax            = 0xffff
	DgtlGainStep           = 1
	DgtlGainDefault        = 0x0100
)

const (
	RegTestPattern uint16 = 0x0600

	TestPatternDisable    = 0
	TestPatternSolidColor = 1
	TestPatternColorBars  = 2
	TestPatternGreyColor  = 3
	TestPatternPN9        = 4
)

const (
	RegTestPatternR  uint16 = 0x0602
	RegTestPatternGR uint16 = 0x0604
	RegTestPatternB  uint16 = 0x0606
	RegTestPatternGB uint16 = 0x0608

	TestPatternColourMin  = 0
	TestPatternColourMax  = 0x0fff
	TestPatternColourStep = 1
)

// On-sensor defect pixel correction enable pair.
const (
	RegDPCA uint16 = 0x0b05
	RegDPCB uint16 = 0x0b06
)

// Frame sync (XVS) trigger-mode registers, programmed as a function of the
// 3-valued trigger mode on stream start.
const (
	RegMCMode    uint16 = 0x3f0b
	RegMSSel     uint16 = 0x3041
	RegXVSIOCtrl uint16 = 0x3040
	RegExtoutEn  uint16 = 0x4b81
)

const (
	EmbeddedLineWidth = 16384
	NumEmbeddedLines  = 1
)

const (
	NativeWidth  = 4072
	NativeHeight = 3176

	PixelArrayLeft   = 8
	PixelArrayTop    = 16
	PixelArrayWidth  = 4056
	PixelArrayHeight = 3040
)

// Delay between reset deassertion and the first register access (T7 in the
// datasheet, 8ms including control-bus setup time).
const (
	XCLRMinDelayUs   = 8000
	XCLRDelayRangeUs = 1000
)
