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
	"testing"
)

func TestFrameLength(t *testing.T) {
	full := &supportedModes12Bit[0] // 4056x3040, line length 24000
	// 10 fps: 840e6 / (10 * 24000) lines per frame.
	if got := frameLength(full, Fraction{100, 1000}); got != 3500 {
		t.Fatalf("frameLength = %d, want 3500", got)
	}

	// Shorter periods clamp at the mode height.
	if got := frameLength(full, Fraction{1, 1000000}); got != full.Height {
		t.Fatalf("frameLength = %d, want height clamp %d", got, full.Height)
	}

	// Longer periods clamp at the register maximum.
	if got := frameLength(full, Fraction{10, 1}); got != FrameLengthMax {
		t.Fatalf("frameLength = %d, want max clamp %d", got, FrameLengthMax)
	}
}

func TestFramingLimitsFullMode(t *testing.T) {
	s, _, _ := attachTestSensor(t)

	// 4056x3040 at 10 fps: frame length 3500 lines.
	vblank, err := s.ControlRange(CtrlVBlank)
	if err != nil {
		t.Fatalf("ControlRange failed: %v", err)
	}
	if vblank.Minimum != 3500-3040 {
		t.Fatalf("vblank min = %d, want 460", vblank.Minimum)
	}
	if vblank.Default != 460 {
		t.Fatalf("vblank default = %d, want 460", vblank.Default)
	}
	wantMax := (int64(1)<<LongExpShiftMax)*FrameLengthMax - 3040
	if vblank.Maximum != wantMax {
		t.Fatalf("vblank max = %d, want %d", vblank.Maximum, wantMax)
	}

	// Exposure leaves 22 lines of the frame free.
	exp, err := s.ControlRange(CtrlExposure)
	if err != nil {
		t.Fatalf("ControlRange failed: %v", err)
	}
	if want := int64(3040) + 460 - ExposureOffset; exp.Maximum != want {
		t.Fatalf("exposure max = %d, want %d", exp.Maximum, want)
	}
	if exp.Minimum != ExposureMin {
		t.Fatalf("exposure min = %d, want %d", exp.Minimum, ExposureMin)
	}

	hblank, err := s.ControlRange(CtrlHBlank)
	if err != nil {
		t.Fatalf("ControlRange failed: %v", err)
	}
	if want := int64(0x5dc0) - 4056; hblank.Minimum != want {
		t.Fatalf("hblank min = %d, want %d", hblank.Minimum, want)
	}
	if hblank.Maximum != LineLengthMax {
		t.Fatalf("hblank max = %d, want %d", hblank.Maximum, LineLengthMax)
	}
}

func TestFramingLimitsFollowModeChange(t *testing.T) {
	s, _, _ := attachTestSensor(t)

	if _, err := s.SetFormat(PadImage, FormatActive,
		Format{Width: 2028, Height: 1520, Code: FormatSRGGB12}); err != nil {
		t.Fatalf("SetFormat failed: %v", err)
	}

	// 2028x1520, line length 12740: 40 fps min gives 1648 lines, the
	// 30 fps default 2197.
	vblank, _ := s.ControlRange(CtrlVBlank)
	if vblank.Minimum != 1648-1520 {
		t.Fatalf("vblank min = %d, want 128", vblank.Minimum)
	}
	if vblank.Default != 2197-1520 {
		t.Fatalf("vblank default = %d, want 677", vblank.Default)
	}
	if v, _ := s.Control(CtrlVBlank); v != vblank.Default {
		t.Fatalf("vblank value = %d, want reset to default %d", v, vblank.Default)
	}

	hblank, _ := s.ControlRange(CtrlHBlank)
	if want := int64(0x31c4) - 2028; hblank.Minimum != want {
		t.Fatalf("hblank min = %d, want %d", hblank.Minimum, want)
	}
	if v, _ := s.Control(CtrlHBlank); v != hblank.Minimum {
		t.Fatalf("hblank value = %d, want reset to min %d", v, hblank.Minimum)
	}
}

func TestVBlankMovesExposureRange(t *testing.T) {
	s, _, _ := attachTestSensor(t)

	if err := s.SetControl(CtrlVBlank, 1000); err != nil {
		t.Fatalf("SetControl failed: %v", err)
	}
	exp, _ := s.ControlRange(CtrlExposure)
	if want := int64(3040) + 1000 - ExposureOffset; exp.Maximum != want {
		t.Fatalf("exposure max = %d, want %d", exp.Maximum, want)
	}

	// Shrinking VBLANK clamps a pending exposure that no longer fits.
	if err := s.SetControl(CtrlExposure, exp.Maximum); err != nil {
		t.Fatalf("SetControl failed: %v", err)
	}
	if err := s.SetControl(CtrlVBlank, 460); err != nil {
		t.Fatalf("SetControl failed: %v", err)
	}
	v, _ := s.Control(CtrlExposure)
	if want := int64(3040) + 460 - ExposureOffset; v != want {
		t.Fatalf("exposure after vblank shrink = %d, want clamp to %d", v, want)
	}
}

func TestLongExposureShift(t *testing.T) {
	s, b, _ := attachTestSensor(t)
	if err := s.SetStreaming(true); err != nil {
		t.Fatalf("SetStreaming failed: %v", err)
	}

	tests := []struct {
		vblank    int64
		wantVal   uint32
		wantShift uint32
	}{
		// Frame length exactly at the register maximum: no shift.
		{FrameLengthMax - 3040, FrameLengthMax, 0},
		// One line over: the smallest shift that fits.
		{FrameLengthMax - 3040 + 1, (FrameLengthMax + 1) >> 1, 1},
		// Twice the maximum.
		{2*FrameLengthMax - 3040, FrameLengthMax, 1},
		// The top of the range needs the full shift.
		{(int64(1) << LongExpShiftMax) * FrameLengthMax - 3040, FrameLengthMax, 7},
	}
	for _, tt := range tests {
		if err := s.SetControl(CtrlVBlank, tt.vblank); err != nil {
			t.Fatalf("SetControl(vblank=%d) failed: %v", tt.vblank, err)
		}
		if got := b.lastWrite(t, RegFrameLength); got != tt.wantVal {
			t.Fatalf("vblank %d: frame length = %d, want %d", tt.vblank, got, tt.wantVal)
		}
		if got := b.lastWrite(t, RegLongExpShift); got != tt.wantShift {
			t.Fatalf("vblank %d: shift = %d, want %d", tt.vblank, got, tt.wantShift)
		}
	}
}

func TestExposureSharesShift(t *testing.T) {
	s, b, _ := attachTestSensor(t)
	if err := s.SetStreaming(true); err != nil {
		t.Fatalf("SetStreaming failed: %v", err)
	}

	// Put the sensor in a shift-1 regime, then write an exposure.
	if err := s.SetControl(CtrlVBlank, 2*FrameLengthMax-3040); err != nil {
		t.Fatalf("SetControl failed: %v", err)
	}
	if got := b.lastWrite(t, RegLongExpShift); got != 1 {
		t.Fatalf("shift = %d, want 1", got)
	}
	if err := s.SetControl(CtrlExposure, 1000); err != nil {
		t.Fatalf("SetControl failed: %v", err)
	}
	if got := b.lastWrite(t, RegExposure); got != 500 {
		t.Fatalf("raw exposure = %d, want 500", got)
	}

	// Back to no shift: the raw value goes out unscaled.
	if err := s.SetControl(CtrlVBlank, 460); err != nil {
		t.Fatalf("SetControl failed: %v", err)
	}
	if err := s.SetControl(CtrlExposure, 1000); err != nil {
		t.Fatalf("SetControl failed: %v", err)
	}
	if got := b.lastWrite(t, RegExposure); got != 1000 {
		t.Fatalf("raw exposure = %d, want 1000", got)
	}
}

func TestModifyRangePanicsOnDegenerate(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("degenerate range did not panic")
		}
	}()
	modifyRange(&control{id: CtrlVBlank}, ControlRange{Minimum: 10, Maximum: 5, Step: 1})
}
