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
	"encoding/binary"
	"errors"
	"fmt"
	"testing"
)

// regWrite is one decoded write transaction seen by the fake bus.
type regWrite struct {
	addr  uint16
	value uint32
	n     int
}

// fakeBus records every write and serves reads from a register map. Setting
// failAt to N makes the Nth write (counting from 0) fail.
type fakeBus struct {
	writes   []regWrite
	reads    map[uint16]uint32
	failAt   int
	numCalls int
}

func newFakeBus(chipID uint32) *fakeBus {
	return &fakeBus{
		reads:  map[uint16]uint32{RegChipID: chipID},
		failAt: -1,
	}
}

func (b *fakeBus) Write(buf []byte) error {
	call := b.numCalls
	b.numCalls++
	if call == b.failAt {
		return errors.New("bus write failed")
	}
	addr := binary.BigEndian.Uint16(buf[:2])
	var value uint32
	for _, d := range buf[2:] {
		value = value<<8 | uint32(d)
	}
	b.writes = append(b.writes, regWrite{addr: addr, value: value, n: len(buf) - 2})
	return nil
}

func (b *fakeBus) WriteRead(w, r []byte) error {
	addr := binary.BigEndian.Uint16(w[:2])
	val, ok := b.reads[addr]
	if !ok {
		return fmt.Errorf("no read value for 0x%04x", addr)
	}
	var tmp [4]byte
	binary.BigEndian.PutUint32(tmp[:], val)
	copy(r, tmp[4-len(r):])
	return nil
}

func (b *fakeBus) Close() error { return nil }

// writesTo returns the values written to addr in order.
func (b *fakeBus) writesTo(addr uint16) []uint32 {
	var out []uint32
	for _, w := range b.writes {
		if w.addr == addr {
			out = append(out, w.value)
		}
	}
	return out
}

func (b *fakeBus) lastWrite(t *testing.T, addr uint16) uint32 {
	t.Helper()
	ws := b.writesTo(addr)
	if len(ws) == 0 {
		t.Fatalf("no writes to 0x%04x", addr)
	}
	return ws[len(ws)-1]
}

// fakePower counts transitions.
type fakePower struct {
	onCount  int
	offCount int
	failOn   bool
}

func (p *fakePower) PowerOn() error {
	if p.failOn {
		return errors.New("power on failed")
	}
	p.onCount++
	return nil
}

func (p *fakePower) PowerOff() { p.offCount++ }

func defaultAttachConfig() AttachConfig {
	return AttachConfig{
		Variant:     "imx477",
		DataLanes:   2,
		XClkFreq:    XClkFreq,
		LinkFreq:    DefaultLinkFreq,
		TriggerMode: TriggerStandalone,
		DPCEnable:   true,
	}
}

func attachTestSensor(t *testing.T) (*Sensor, *fakeBus, *fakePower) {
	t.Helper()
	b := newFakeBus(ChipIDIMX477)
	p := &fakePower{}
	s, err := Attach(b, p, defaultAttachConfig(), nil)
	if err != nil {
		t.Fatalf("Attach failed: %v", err)
	}
	return s, b, p
}

func TestAttachIdentify(t *testing.T) {
	s, _, p := attachTestSensor(t)
	if s.Streaming() {
		t.Fatal("sensor streaming right after attach")
	}
	// Attach powers up for identification and back down.
	if p.onCount != 1 || p.offCount != 1 {
		t.Fatalf("power cycles = %d/%d, want 1/1", p.onCount, p.offCount)
	}
}

func TestAttachIDMismatch(t *testing.T) {
	b := newFakeBus(ChipIDIMX378)
	p := &fakePower{}
	_, err := Attach(b, p, defaultAttachConfig(), nil)
	var idErr ErrIDMismatch
	if !errors.As(err, &idErr) {
		t.Fatalf("Attach error = %v, want ErrIDMismatch", err)
	}
	if idErr.Want != ChipIDIMX477 || idErr.Got != ChipIDIMX378 {
		t.Fatalf("ErrIDMismatch = %x/%x, want %x/%x",
			idErr.Want, idErr.Got, ChipIDIMX477, ChipIDIMX378)
	}
	if p.offCount != 1 {
		t.Fatalf("offCount = %d, want 1", p.offCount)
	}
}

func TestAttachIMX378Variant(t *testing.T) {
	b := newFakeBus(ChipIDIMX378)
	p := &fakePower{}
	cfg := defaultAttachConfig()
	cfg.Variant = "imx378"
	s, err := Attach(b, p, cfg, nil)
	if err != nil {
		t.Fatalf("Attach failed: %v", err)
	}
	if err := s.SetStreaming(true); err != nil {
		t.Fatalf("SetStreaming failed: %v", err)
	}
	// The 378 extras follow the common block before the mode program.
	for _, rv := range imx378ExtraRegs {
		found := false
		for _, w := range b.writes {
			if w.addr == rv.Addr && w.value == uint32(rv.Value) {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("variant extra reg 0x%04x not written", rv.Addr)
		}
	}
}

func TestAttachConfigValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*AttachConfig)
	}{
		{"variant", func(c *AttachConfig) { c.Variant = "imx219" }},
		{"lanes", func(c *AttachConfig) { c.DataLanes = 4 }},
		{"xclk", func(c *AttachConfig) { c.XClkFreq = 25000000 }},
		{"link", func(c *AttachConfig) { c.LinkFreq = 300000000 }},
		{"trigger", func(c *AttachConfig) { c.TriggerMode = 3 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultAttachConfig()
			tt.mutate(&cfg)
			if _, err := Attach(newFakeBus(ChipIDIMX477), &fakePower{}, cfg, nil); err == nil {
				t.Fatal("Attach accepted a bad config")
			}
		})
	}
}

func TestStartStreamingOrder(t *testing.T) {
	s, b, p := attachTestSensor(t)
	if err := s.SetStreaming(true); err != nil {
		t.Fatalf("SetStreaming failed: %v", err)
	}
	if !s.Streaming() {
		t.Fatal("Streaming() = false after a successful start")
	}
	if p.onCount != 2 {
		t.Fatalf("onCount = %d, want 2", p.onCount)
	}

	// The common block starts the sequence and the mode select ends it.
	if b.writes[0].addr != modeCommonRegs[0].Addr {
		t.Fatalf("first write to 0x%04x, want 0x%04x",
			b.writes[0].addr, modeCommonRegs[0].Addr)
	}
	last := b.writes[len(b.writes)-1]
	if last.addr != RegModeSelect || last.value != ModeStreaming {
		t.Fatalf("last write 0x%04x=0x%x, want mode select streaming", last.addr, last.value)
	}

	// DPC pair follows the mode program.
	if got := b.lastWrite(t, RegDPCA); got != 1 {
		t.Fatalf("DPC A = %d, want 1", got)
	}
	if got := b.lastWrite(t, RegDPCB); got != 1 {
		t.Fatalf("DPC B = %d, want 1", got)
	}

	// Standalone trigger: sync generated locally, nothing exported.
	if got := b.lastWrite(t, RegMCMode); got != 0 {
		t.Fatalf("mc_mode = %d, want 0", got)
	}
	if got := b.lastWrite(t, RegMSSel); got != 1 {
		t.Fatalf("ms_sel = %d, want 1", got)
	}
	if got := b.lastWrite(t, RegXVSIOCtrl); got != 0 {
		t.Fatalf("xvs_io_ctrl = %d, want 0", got)
	}
	if got := b.lastWrite(t, RegExtoutEn); got != 0 {
		t.Fatalf("extout_en = %d, want 0", got)
	}
}

func TestTriggerModeQuads(t *testing.T) {
	tests := []struct {
		mode               int
		mc, ms, xvs, extout uint32
	}{
		{TriggerStandalone, 0, 1, 0, 0},
		{TriggerSource, 1, 1, 1, 1},
		{TriggerSink, 1, 0, 0, 0},
	}
	for _, tt := range tests {
		b := newFakeBus(ChipIDIMX477)
		cfg := defaultAttachConfig()
		cfg.TriggerMode = tt.mode
		s, err := Attach(b, &fakePower{}, cfg, nil)
		if err != nil {
			t.Fatalf("Attach failed: %v", err)
		}
		if err := s.SetStreaming(true); err != nil {
			t.Fatalf("SetStreaming failed: %v", err)
		}
		if got := b.lastWrite(t, RegMCMode); got != tt.mc {
			t.Fatalf("mode %d: mc_mode = %d, want %d", tt.mode, got, tt.mc)
		}
		if got := b.lastWrite(t, RegMSSel); got != tt.ms {
			t.Fatalf("mode %d: ms_sel = %d, want %d", tt.mode, got, tt.ms)
		}
		if got := b.lastWrite(t, RegXVSIOCtrl); got != tt.xvs {
			t.Fatalf("mode %d: xvs_io_ctrl = %d, want %d", tt.mode, got, tt.xvs)
		}
		if got := b.lastWrite(t, RegExtoutEn); got != tt.extout {
			t.Fatalf("mode %d: extout_en = %d, want %d", tt.mode, got, tt.extout)
		}
	}
}

func TestSetStreamingIdempotent(t *testing.T) {
	s, b, _ := attachTestSensor(t)
	if err := s.SetStreaming(true); err != nil {
		t.Fatalf("SetStreaming failed: %v", err)
	}
	before := len(b.writes)
	if err := s.SetStreaming(true); err != nil {
		t.Fatalf("second SetStreaming failed: %v", err)
	}
	if len(b.writes) != before {
		t.Fatalf("redundant start issued %d writes", len(b.writes)-before)
	}
	if got := len(b.writesTo(RegModeSelect)); got != 1 {
		t.Fatalf("mode select written %d times, want 1", got)
	}
}

func TestStopStreaming(t *testing.T) {
	s, b, p := attachTestSensor(t)
	if err := s.SetStreaming(true); err != nil {
		t.Fatalf("SetStreaming failed: %v", err)
	}
	if err := s.SetStreaming(false); err != nil {
		t.Fatalf("SetStreaming(false) failed: %v", err)
	}
	if s.Streaming() {
		t.Fatal("Streaming() = true after stop")
	}
	sel := b.writesTo(RegModeSelect)
	if sel[len(sel)-1] != ModeStandby {
		t.Fatalf("mode select = 0x%x, want standby", sel[len(sel)-1])
	}
	if got := b.lastWrite(t, RegExtoutEn); got != 0 {
		t.Fatalf("extout_en = %d after stop, want 0", got)
	}
	// Attach, then the start/stop cycle.
	if p.offCount != 2 {
		t.Fatalf("offCount = %d, want 2", p.offCount)
	}
}

// A bus failure in the middle of the common block must leave the sensor in
// Standby with power rolled back, and the next start must rewrite the
// common block from scratch.
func TestStartFailureRollsBack(t *testing.T) {
	s, b, p := attachTestSensor(t)

	b.failAt = 9 // the 10th register of the common block
	err := s.SetStreaming(true)
	var listErr ErrRegListWrite
	if !errors.As(err, &listErr) {
		t.Fatalf("SetStreaming error = %v, want ErrRegListWrite", err)
	}
	if listErr.Offset != 9 {
		t.Fatalf("failed offset = %d, want 9", listErr.Offset)
	}
	if s.Streaming() {
		t.Fatal("Streaming() = true after a failed start")
	}
	if p.onCount != 2 || p.offCount != 2 {
		t.Fatalf("power cycles = %d/%d, want 2/2", p.onCount, p.offCount)
	}
	if got := len(b.writesTo(RegModeSelect)); got != 0 {
		t.Fatalf("mode select written %d times after failed start", got)
	}

	// Recovery: the whole common block is programmed again.
	b.failAt = -1
	b.writes = nil
	if err := s.SetStreaming(true); err != nil {
		t.Fatalf("SetStreaming after recovery failed: %v", err)
	}
	if b.writes[0].addr != modeCommonRegs[0].Addr {
		t.Fatalf("recovery start did not rewrite the common block")
	}
	if got := len(b.writesTo(modeCommonRegs[0].Addr)); got == 0 {
		t.Fatal("common block missing on recovery start")
	}
}

func TestStartFailurePowerOnError(t *testing.T) {
	s, _, p := attachTestSensor(t)
	p.failOn = true
	if err := s.SetStreaming(true); err == nil {
		t.Fatal("SetStreaming succeeded with failing power")
	}
	if s.Streaming() {
		t.Fatal("Streaming() = true after power-on failure")
	}
}

func TestSuspendResume(t *testing.T) {
	s, b, p := attachTestSensor(t)
	if err := s.SetStreaming(true); err != nil {
		t.Fatalf("SetStreaming failed: %v", err)
	}

	s.Suspend()
	if !s.Streaming() {
		t.Fatal("Suspend cleared the logical streaming flag")
	}
	if p.offCount != 2 {
		t.Fatalf("offCount = %d after suspend, want 2", p.offCount)
	}

	b.writes = nil
	if err := s.Resume(); err != nil {
		t.Fatalf("Resume failed: %v", err)
	}
	if !s.Streaming() {
		t.Fatal("Streaming() = false after resume")
	}
	// The full program replays: power was off in between.
	if b.writes[0].addr != modeCommonRegs[0].Addr {
		t.Fatal("resume did not rewrite the common block")
	}

	// Resume failure forces Standby.
	s.Suspend()
	b.failAt = b.numCalls + 3
	if err := s.Resume(); err == nil {
		t.Fatal("Resume succeeded with a failing bus")
	}
	if s.Streaming() {
		t.Fatal("Streaming() = true after failed resume")
	}
}

func TestSuspendWhileStandby(t *testing.T) {
	s, _, p := attachTestSensor(t)
	offBefore := p.offCount
	s.Suspend()
	if p.offCount != offBefore {
		t.Fatal("Suspend touched power while in Standby")
	}
	if err := s.Resume(); err != nil {
		t.Fatalf("Resume in Standby failed: %v", err)
	}
}

func TestSetControlValidation(t *testing.T) {
	s, _, _ := attachTestSensor(t)

	if err := s.SetControl(ctrlIDLimit, 1); err == nil {
		t.Fatal("unknown control accepted")
	}
	var unknownErr ErrUnknownControl
	if err := s.SetControl(ctrlIDLimit, 1); !errors.As(err, &unknownErr) {
		t.Fatalf("error = %v, want ErrUnknownControl", err)
	}

	if err := s.SetControl(CtrlPixelRate, 1); err == nil {
		t.Fatal("read-only control accepted a write")
	}

	if err := s.SetControl(CtrlAnalogueGain, AnaGainMax+1); err == nil {
		t.Fatal("out-of-range gain accepted")
	}
	var valErr ErrInvalidControlValue
	if err := s.SetControl(CtrlAnalogueGain, -1); !errors.As(err, &valErr) {
		t.Fatalf("error = %v, want ErrInvalidControlValue", err)
	}
}

func TestFlipLockedWhileStreaming(t *testing.T) {
	s, _, _ := attachTestSensor(t)
	if err := s.SetStreaming(true); err != nil {
		t.Fatalf("SetStreaming failed: %v", err)
	}
	var busyErr ErrStreamingBusy
	if err := s.SetControl(CtrlHFlip, 1); !errors.As(err, &busyErr) {
		t.Fatalf("hflip while streaming: error = %v, want ErrStreamingBusy", err)
	}
	if err := s.SetControl(CtrlVFlip, 1); !errors.As(err, &busyErr) {
		t.Fatalf("vflip while streaming: error = %v, want ErrStreamingBusy", err)
	}
	// Non-flip controls stay settable.
	if err := s.SetControl(CtrlAnalogueGain, 100); err != nil {
		t.Fatalf("gain while streaming failed: %v", err)
	}
}

func TestControlDeferredUntilStreaming(t *testing.T) {
	s, b, _ := attachTestSensor(t)

	if err := s.SetControl(CtrlAnalogueGain, 300); err != nil {
		t.Fatalf("SetControl failed: %v", err)
	}
	if len(b.writesTo(RegAnalogGain)) != 0 {
		t.Fatal("standby control write touched the bus")
	}
	if v, err := s.Control(CtrlAnalogueGain); err != nil || v != 300 {
		t.Fatalf("Control = %d, %v, want 300", v, err)
	}

	if err := s.SetStreaming(true); err != nil {
		t.Fatalf("SetStreaming failed: %v", err)
	}
	if got := b.lastWrite(t, RegAnalogGain); got != 300 {
		t.Fatalf("replayed gain = %d, want 300", got)
	}

	// While streaming the write is immediate.
	if err := s.SetControl(CtrlAnalogueGain, 42); err != nil {
		t.Fatalf("SetControl failed: %v", err)
	}
	if got := b.lastWrite(t, RegAnalogGain); got != 42 {
		t.Fatalf("live gain = %d, want 42", got)
	}
}

func TestControlReplayOrder(t *testing.T) {
	s, b, _ := attachTestSensor(t)
	if err := s.SetControl(CtrlTestPattern, 1); err != nil {
		t.Fatalf("SetControl failed: %v", err)
	}
	if err := s.SetControl(CtrlExposure, 500); err != nil {
		t.Fatalf("SetControl failed: %v", err)
	}
	if err := s.SetStreaming(true); err != nil {
		t.Fatalf("SetStreaming failed: %v", err)
	}

	// Exposure registers before test pattern: replay follows registration
	// order, not the order the user set values in.
	expIdx, tpIdx := -1, -1
	for i, w := range b.writes {
		switch w.addr {
		case RegExposure:
			expIdx = i
		case RegTestPattern:
			tpIdx = i
		}
	}
	if expIdx == -1 || tpIdx == -1 {
		t.Fatalf("missing replay writes: exposure %d, test pattern %d", expIdx, tpIdx)
	}
	if expIdx > tpIdx {
		t.Fatalf("exposure replayed at %d after test pattern at %d", expIdx, tpIdx)
	}

	// Menu entry 1 is color bars.
	if got := b.lastWrite(t, RegTestPattern); got != TestPatternColorBars {
		t.Fatalf("test pattern = %d, want %d", got, TestPatternColorBars)
	}
}

func TestOrientationCombinesFlips(t *testing.T) {
	s, b, _ := attachTestSensor(t)
	if err := s.SetControl(CtrlHFlip, 1); err != nil {
		t.Fatalf("SetControl failed: %v", err)
	}
	if err := s.SetControl(CtrlVFlip, 1); err != nil {
		t.Fatalf("SetControl failed: %v", err)
	}
	if err := s.SetStreaming(true); err != nil {
		t.Fatalf("SetStreaming failed: %v", err)
	}
	if got := b.lastWrite(t, RegOrientation); got != 3 {
		t.Fatalf("orientation = %d, want 3", got)
	}
}

func TestRegAccessRequiresPower(t *testing.T) {
	s, b, _ := attachTestSensor(t)
	if _, err := s.RegRead(RegChipID, RegValue16Bit); err == nil {
		t.Fatal("RegRead succeeded while powered down")
	}
	if err := s.RegWrite(RegModeSelect, RegValue8Bit, 1); err == nil {
		t.Fatal("RegWrite succeeded while powered down")
	}

	if err := s.SetStreaming(true); err != nil {
		t.Fatalf("SetStreaming failed: %v", err)
	}
	if v, err := s.RegRead(RegChipID, RegValue16Bit); err != nil || v != ChipIDIMX477 {
		t.Fatalf("RegRead = %x, %v, want %x", v, err, ChipIDIMX477)
	}
	if err := s.RegWrite(0x0601, RegValue8Bit, 0x2); err != nil {
		t.Fatalf("RegWrite failed: %v", err)
	}
	if got := b.lastWrite(t, 0x0601); got != 0x2 {
		t.Fatalf("raw write = %d, want 2", got)
	}
}

// recorderLog captures Recorder callbacks for mirror-order checks.
type recorderLog struct {
	regs  []regWrite
	ctrls []ControlID
}

func (r *recorderLog) RecordReg(addr uint16, value uint32) {
	r.regs = append(r.regs, regWrite{addr: addr, value: value})
}

func (r *recorderLog) RecordControl(id ControlID, value int64) {
	r.ctrls = append(r.ctrls, id)
}

func TestRecorderMirrorsWrites(t *testing.T) {
	b := newFakeBus(ChipIDIMX477)
	rec := &recorderLog{}
	s, err := Attach(b, &fakePower{}, defaultAttachConfig(), rec)
	if err != nil {
		t.Fatalf("Attach failed: %v", err)
	}
	if err := s.SetControl(CtrlDigitalGain, 0x200); err != nil {
		t.Fatalf("SetControl failed: %v", err)
	}
	if len(rec.ctrls) != 1 || rec.ctrls[0] != CtrlDigitalGain {
		t.Fatalf("recorded ctrls = %v, want [digital_gain]", rec.ctrls)
	}
	if err := s.SetStreaming(true); err != nil {
		t.Fatalf("SetStreaming failed: %v", err)
	}
	if len(rec.regs) != len(b.writes) {
		t.Fatalf("recorded %d regs, bus saw %d", len(rec.regs), len(b.writes))
	}
	// A failed write must not be mirrored.
	b.failAt = b.numCalls
	if err := s.RegWrite(0x0601, RegValue8Bit, 1); err == nil {
		t.Fatal("RegWrite succeeded with a failing bus")
	}
	if len(rec.regs) != len(b.writes) {
		t.Fatal("failed write was mirrored")
	}
}
