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

// RegVal is a single entry of a register program: a 16-bit address and the
// 8-bit value written to it.
type RegVal struct {
	Addr  uint16
	Value uint8
}

// Rect is a rectangle on the native pixel array.
type Rect struct {
	Left   uint32 `json:"left"`
	Top    uint32 `json:"top"`
	Width  uint32 `json:"width"`
	Height uint32 `json:"height"`
}

// Fraction is a frame period in seconds, numerator/denominator.
type Fraction struct {
	Numerator   uint32 `json:"numerator"`
	Denominator uint32 `json:"denominator"`
}

// Mode is one fixed sensor configuration. Instances are immutable; the
// streaming machinery only ever holds pointers into the two mode tables.
type Mode struct {
	// Output frame size in pixels.
	Width  uint32
	Height uint32

	// Horizontal timing base in pixel clocks. Always >= Width.
	LineLengthPix uint32

	// Analog crop window on the native pixel array.
	Crop Rect

	// Highest possible frame rate and the default one.
	FrameIntervalMin     Fraction
	FrameIntervalDefault Fraction

	// Register program applied verbatim when the mode is selected.
	RegisterProgram []RegVal
}

// The 12-bit and 10-bit tables are disjoint and independently searched;
// a format code selects exactly one of them.
var supportedModes12Bit = []Mode{
	{
		Width:         4056,
		Height:        3040,
		LineLengthPix: 0x5dc0,
		Crop: Rect{
			Left:   PixelArrayLeft,
			Top:    PixelArrayTop,
			Width:  4056,
			Height: 3040,
		},
		FrameIntervalMin:     Fraction{100, 1000},
		FrameIntervalDefault: Fraction{100, 1000},
		RegisterProgram:      mode4056x3040Regs,
	},
	{
		Width:         2028,
		Height:        1520,
		LineLengthPix: 0x31c4,
		Crop: Rect{
			Left:   PixelArrayLeft,
			Top:    PixelArrayTop,
			Width:  4056,
			Height: 3040,
		},
		FrameIntervalMin:     Fraction{100, 4000},
		FrameIntervalDefault: Fraction{100, 3000},
		RegisterProgram:      mode2028x1520Regs,
	},
	{
		Width:         2028,
		Height:        1080,
		LineLengthPix: 0x31c4,
		Crop: Rect{
			Left:   PixelArrayLeft,
			Top:    PixelArrayTop + 440,
			Width:  4056,
			Height: 2160,
		},
		FrameIntervalMin:     Fraction{100, 5000},
		FrameIntervalDefault: Fraction{100, 3000},
		RegisterProgram:      mode2028x1080Regs,
	},
}

var supportedModes10Bit = []Mode{
	{
		// The programmed analog crop of this 4x4-binned mode does not
		// match the effective output crop observed on hardware. Known
		// discrepancy carried over from the reference settings; left
		// as programmed until independently verified.
		Width:         1332,
		Height:        990,
		LineLengthPix: 6664,
		Crop: Rect{
			Left:   PixelArrayLeft + 696,
			Top:    PixelArrayTop + 528,
			Width:  2664,
			Height: 1980,
		},
		FrameIntervalMin:     Fraction{100, 12000},
		FrameIntervalDefault: Fraction{100, 12000},
		RegisterProgram:      mode1332x990Regs,
	},
}

// modeTable returns the mode list matching the bit depth of code, or nil
// when the code selects no table.
func modeTable(code FormatCode) []Mode {
	switch code {
	case FormatSRGGB12, FormatSGRBG12, FormatSGBRG12, FormatSBGGR12:
		return supportedModes12Bit
	case FormatSRGGB10, FormatSGRBG10, FormatSGBRG10, FormatSBGGR10:
		return supportedModes10Bit
	}
	return nil
}
