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

	"jinr.ru/greenlab/go-imx477/pkg/log"
)

// frameLength derives the frame length in lines for a mode and frame
// period, clamped to [mode.Height, FrameLengthMax].
func frameLength(mode *Mode, interval Fraction) uint32 {
	fl := uint64(interval.Numerator) * PixelRate /
		(uint64(interval.Denominator) * uint64(mode.LineLengthPix))
	if fl > FrameLengthMax {
		log.Warning("Frame length %d beyond maximum for mode %dx%d, clamping",
			fl, mode.Width, mode.Height)
		fl = FrameLengthMax
	}
	if fl < uint64(mode.Height) {
		fl = uint64(mode.Height)
	}
	return uint32(fl)
}

// modifyRange installs a freshly computed range on c and clamps the pending
// value into it. A degenerate range is a logic error in the framing math,
// not a runtime condition.
func modifyRange(c *control, rng ControlRange) {
	if rng.Maximum < rng.Minimum || rng.Step <= 0 {
		panic(fmt.Sprintf("degenerate range for ctrl %s: [%d, %d] step %d",
			c.id, rng.Minimum, rng.Maximum, rng.Step))
	}
	c.rng = rng
	if c.value < rng.Minimum {
		c.value = rng.Minimum
	}
	if c.value > rng.Maximum {
		c.value = rng.Maximum
	}
}

// adjustExposureRange honours the frame-length limit when setting exposure:
// the exposure counter must leave ExposureOffset lines of the frame free.
// Called whenever VBLANK changes.
func (s *Sensor) adjustExposureRange() {
	exp := s.ctrlByID[CtrlExposure]
	vblank := s.ctrlByID[CtrlVBlank]

	exposureMax := int64(s.mode.Height) + vblank.value - ExposureOffset
	exposureDef := exp.value
	if exposureDef > exposureMax {
		exposureDef = exposureMax
	}
	modifyRange(exp, ControlRange{
		Minimum: exp.rng.Minimum,
		Maximum: exposureMax,
		Step:    exp.rng.Step,
		Default: exposureDef,
	})
}

// setFramingLimits recomputes the blanking and exposure ranges for the
// active mode and resets their values to the mode defaults. Runs on every
// mode change.
func (s *Sensor) setFramingLimits() {
	mode := s.mode
	frmLengthMin := frameLength(mode, mode.FrameIntervalMin)
	frmLengthDefault := frameLength(mode, mode.FrameIntervalDefault)

	// Default to no long exposure multiplier.
	s.longExpShift = 0

	vblank := s.ctrlByID[CtrlVBlank]
	modifyRange(vblank, ControlRange{
		Minimum: int64(frmLengthMin) - int64(mode.Height),
		Maximum: (int64(1)<<LongExpShiftMax)*FrameLengthMax - int64(mode.Height),
		Step:    1,
		Default: int64(frmLengthDefault) - int64(mode.Height),
	})
	vblank.value = vblank.rng.Default

	// The new frame length bounds the usable exposure as well.
	s.adjustExposureRange()

	hblank := s.ctrlByID[CtrlHBlank]
	hblankMin := int64(mode.LineLengthPix) - int64(mode.Width)
	modifyRange(hblank, ControlRange{
		Minimum: hblankMin,
		Maximum: LineLengthMax,
		Step:    1,
		Default: hblankMin,
	})
	hblank.value = hblankMin
}

// setFrameTiming programs the frame length and the long-exposure shift as
// one operation. Frame lengths beyond the native maximum are right-shifted
// until they fit (at most 7 times) and the shift count written alongside,
// so an inconsistent register pair is never observable. The stored raw
// exposure is shifted by the same count when written.
func (s *Sensor) setFrameTiming(frameLen uint32) error {
	shift := uint(0)
	val := frameLen
	for val > FrameLengthMax {
		shift++
		val >>= 1
	}
	if shift > LongExpShiftMax {
		panic(fmt.Sprintf("frame length %d exceeds long exposure reach", frameLen))
	}
	s.longExpShift = shift

	if err := s.writeReg(RegFrameLength, RegValue16Bit, val); err != nil {
		return err
	}
	return s.writeReg(RegLongExpShift, RegValue8Bit, uint32(shift))
}
