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
	"fmt"

	"jinr.ru/greenlab/go-imx477/pkg/bus"
	"jinr.ru/greenlab/go-imx477/pkg/log"
)

// Recorder mirrors successfully written registers and control values into
// an external shadow store. Optional; a nil Recorder disables mirroring.
type Recorder interface {
	RecordReg(addr uint16, value uint32)
	RecordControl(id ControlID, value int64)
}

// regIO sequences register transactions over the control bus. Values up to
// 4 bytes wide travel big-endian; reads come back in the low-order bytes of
// a 32-bit value.
type regIO struct {
	bus bus.Bus
	rec Recorder
}

// readReg writes the 16-bit register address, then reads n (<=4) bytes
// back as a big-endian unsigned integer.
func (r *regIO) readReg(addr uint16, n int) (uint32, error) {
	if n < 1 || n > 4 {
		return 0, fmt.Errorf("invalid register read length %d", n)
	}
	var addrBuf [2]byte
	binary.BigEndian.PutUint16(addrBuf[:], addr)
	var dataBuf [4]byte
	if err := r.bus.WriteRead(addrBuf[:], dataBuf[4-n:]); err != nil {
		return 0, ErrBusIO{Op: "read", Addr: addr, Err: err}
	}
	return binary.BigEndian.Uint32(dataBuf[:]), nil
}

// writeReg transmits the 16-bit address followed by the n (<=4) significant
// bytes of val, big-endian, in one transaction.
func (r *regIO) writeReg(addr uint16, n int, val uint32) error {
	if n < 1 || n > 4 {
		return fmt.Errorf("invalid register write length %d", n)
	}
	var buf [6]byte
	binary.BigEndian.PutUint16(buf[:2], addr)
	binary.BigEndian.PutUint32(buf[2:], val<<(8*(4-n)))
	if err := r.bus.Write(buf[:2+n]); err != nil {
		return ErrBusIO{Op: "write", Addr: addr, Err: err}
	}
	if r.rec != nil {
		r.rec.RecordReg(addr, val)
	}
	return nil
}

// writeRegList executes regs strictly in list order and aborts at the first
// failure. Later entries of a program may depend on earlier ones (page
// selects before payload), so out-of-order or partial retries are never
// attempted; already-sent entries stay applied.
func (r *regIO) writeRegList(regs []RegVal) error {
	for i, rv := range regs {
		if err := r.writeReg(rv.Addr, RegValue8Bit, uint32(rv.Value)); err != nil {
			log.Error("Failed to write reg 0x%04x at offset %d: %v", rv.Addr, i, err)
			return ErrRegListWrite{Offset: i, Addr: rv.Addr, Err: err}
		}
	}
	return nil
}
