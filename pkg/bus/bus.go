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

// Package bus provides the serial control link to the sensor. The register
// sequencer talks to a Bus and never to the transport directly, so tests
// substitute a recording fake for the I2C device.
package bus

import (
	"fmt"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

// Bus is a synchronous point-to-point control link. All calls block until
// the transfer is acknowledged; an acknowledged length that differs from
// the requested one is an I/O error.
type Bus interface {
	// Write transmits buf in a single bus transaction.
	Write(buf []byte) error
	// WriteRead transmits w, then reads exactly len(r) bytes back in a
	// second transaction.
	WriteRead(w, r []byte) error
	Close() error
}

// ErrTransfer returned when the transport rejects a transaction.
type ErrTransfer struct {
	Err error
}

func (e ErrTransfer) Error() string {
	return fmt.Sprintf("control bus transfer failed: %v", e.Err)
}

func (e ErrTransfer) Unwrap() error {
	return e.Err
}

type i2cBus struct {
	dev    i2c.Dev
	closer i2c.BusCloser
}

// OpenI2C opens the named I2C bus (empty name selects the first available
// one) and binds it to the device at addr.
func OpenI2C(name string, addr uint16) (Bus, error) {
	if _, err := host.Init(); err != nil {
		return nil, err
	}
	b, err := i2creg.Open(name)
	if err != nil {
		return nil, err
	}
	return &i2cBus{
		dev:    i2c.Dev{Bus: b, Addr: addr},
		closer: b,
	}, nil
}

func (b *i2cBus) Write(buf []byte) error {
	if err := b.dev.Tx(buf, nil); err != nil {
		return ErrTransfer{Err: err}
	}
	return nil
}

func (b *i2cBus) WriteRead(w, r []byte) error {
	if err := b.dev.Tx(w, r); err != nil {
		return ErrTransfer{Err: err}
	}
	return nil
}

func (b *i2cBus) Close() error {
	return b.closer.Close()
}
