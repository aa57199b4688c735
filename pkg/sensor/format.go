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

// FormatCode identifies the transfer format of the raw pixel stream. The
// values are the standard media-bus codes so they can be handed to the host
// framework unchanged.
type FormatCode uint32

const (
	FormatSRGGB12 FormatCode = 0x3012
	FormatSGRBG12 FormatCode = 0x3011
	FormatSGBRG12 FormatCode = 0x3010
	FormatSBGGR12 FormatCode = 0x3008

	FormatSRGGB10 FormatCode = 0x300f
	FormatSGRBG10 FormatCode = 0x300a
	FormatSGBRG10 FormatCode = 0x300e
	FormatSBGGR10 FormatCode = 0x3007

	// FormatSensorData is the embedded metadata line format.
	FormatSensorData FormatCode = 0x7002
)

/*
 The supported pixel formats. This table MUST contain 4 entries per format,
 to cover the flip combinations in the order
  - no flip
  - h flip
  - v flip
  - h&v flips
*/
var formatCodes = []FormatCode{
	/* 12-bit modes. */
	FormatSRGGB12,
	FormatSGRBG12,
	FormatSGBRG12,
	FormatSBGGR12,
	/* 10-bit modes. */
	FormatSRGGB10,
	FormatSGRBG10,
	FormatSGBRG10,
	FormatSBGGR10,
}

// formatCodeFor maps code onto the variant matching the flip state. The
// Bayer order the sensor emits changes with each flip, so the four variants
// of a format family sit at a stride of 4 in formatCodes and the flip bits
// select within the stride.
func formatCodeFor(code FormatCode, hflip, vflip bool) FormatCode {
	i := 0
	for ; i < len(formatCodes); i++ {
		if formatCodes[i] == code {
			break
		}
	}
	if i >= len(formatCodes) {
		i = 0
	}
	i &^= 3
	if hflip {
		i |= 1
	}
	if vflip {
		i |= 2
	}
	return formatCodes[i]
}

// Pad selects one of the two source pads of the sensor.
type Pad int

const (
	PadImage Pad = iota
	PadMetadata
	numPads
)

// FormatWhence selects between the active configuration and the tentative
// one used during format negotiation.
type FormatWhence int

const (
	FormatActive FormatWhence = iota
	FormatTentative
)

// Format describes the frame geometry and transfer format of a pad.
type Format struct {
	Width  uint32     `json:"width"`
	Height uint32     `json:"height"`
	Code   FormatCode `json:"code"`
}

// FrameSize is the frame size range reported for one mode. The sensor only
// outputs discrete sizes so min and max always coincide.
type FrameSize struct {
	MinWidth  uint32 `json:"minWidth"`
	MinHeight uint32 `json:"minHeight"`
	MaxWidth  uint32 `json:"maxWidth"`
	MaxHeight uint32 `json:"maxHeight"`
}

// CropTarget selects which rectangle Crop reports.
type CropTarget int

const (
	// CropCurrent is the analog crop of the active mode.
	CropCurrent CropTarget = iota
	// CropDefault and CropBounds are both the full active pixel array.
	CropDefault
	CropBounds
	// CropNative is the native size including dummy pixels.
	CropNative
)

// nearestMode picks the mode of table whose output size is nearest to the
// requested one: nearest in area first, ties broken by nearest width.
// table must not be empty.
func nearestMode(table []Mode, width, height uint32) *Mode {
	best := &table[0]
	bestArea := int64(best.Width) * int64(best.Height)
	reqArea := int64(width) * int64(height)
	for i := 1; i < len(table); i++ {
		m := &table[i]
		area := int64(m.Width) * int64(m.Height)
		da, db := abs64(area-reqArea), abs64(bestArea-reqArea)
		if da < db || (da == db &&
			abs64(int64(m.Width)-int64(width)) < abs64(int64(best.Width)-int64(width))) {
			best = m
			bestArea = area
		}
	}
	return best
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

// resolveMode validates the request and picks the nearest mode for it.
// A format code outside both tables is unsupported; a degenerate request or
// one beyond the native array is an unsupported resolution.
func resolveMode(code FormatCode, width, height uint32) (*Mode, error) {
	table := modeTable(code)
	if table == nil {
		return nil, ErrUnsupportedFormat{Code: code}
	}
	if width == 0 || height == 0 || width > NativeWidth || height > NativeHeight {
		return nil, ErrUnsupportedResolution{Width: width, Height: height, Code: code}
	}
	return nearestMode(table, width, height), nil
}
