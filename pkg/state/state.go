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

// Package state keeps a persistent shadow of the registers and control
// values last written to the sensor. The shadow is observability data for
// bring-up and debugging; the sensor never reads it back to make decisions.
package state

import (
	"encoding/binary"
	"fmt"

	"go.etcd.io/bbolt"

	"jinr.ru/greenlab/go-imx477/pkg/log"
	"jinr.ru/greenlab/go-imx477/pkg/sensor"
)

const (
	RegBucketName  = "regs"
	CtrlBucketName = "ctrls"
)

// ShadowStore records every successful register and control write.
// Implements sensor.Recorder.
type ShadowStore struct {
	DB *bbolt.DB
}

var _ sensor.Recorder = &ShadowStore{}

func NewShadowStore(path string) (*ShadowStore, error) {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, err
	}
	if err = db.Update(func(tx *bbolt.Tx) error {
		for _, name := range []string{RegBucketName, CtrlBucketName} {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		return nil, err
	}
	return &ShadowStore{DB: db}, nil
}

func (s *ShadowStore) Close() {
	s.DB.Close()
}

func uint16ToByte(v uint16) []byte {
	b := make([]byte, 2)
	binary.BigEndian.PutUint16(b, v)
	return b
}

func uint32ToByte(v uint32) []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, v)
	return b
}

// RecordReg mirrors a register write. Shadow failures must never fail the
// bus operation that triggered them, so they are only logged.
func (s *ShadowStore) RecordReg(addr uint16, value uint32) {
	if err := s.DB.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(RegBucketName))
		if b == nil {
			return fmt.Errorf("bucket not found: %s", RegBucketName)
		}
		return b.Put(uint16ToByte(addr), uint32ToByte(value))
	}); err != nil {
		log.Warning("Failed to shadow register 0x%04x: %v", addr, err)
	}
}

// RecordControl mirrors a control value.
func (s *ShadowStore) RecordControl(id sensor.ControlID, value int64) {
	if err := s.DB.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(CtrlBucketName))
		if b == nil {
			return fmt.Errorf("bucket not found: %s", CtrlBucketName)
		}
		v := make([]byte, 8)
		binary.BigEndian.PutUint64(v, uint64(value))
		return b.Put(uint16ToByte(uint16(id)), v)
	}); err != nil {
		log.Warning("Failed to shadow ctrl %s: %v", id, err)
	}
}

// GetReg returns the last value written to a register.
func (s *ShadowStore) GetReg(addr uint16) (uint32, error) {
	var value uint32
	if err := s.DB.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(RegBucketName))
		if b == nil {
			return fmt.Errorf("bucket not found: %s", RegBucketName)
		}
		valueBytes := b.Get(uint16ToByte(addr))
		if valueBytes == nil {
			return ErrRegNotShadowed{Addr: addr}
		}
		value = binary.BigEndian.Uint32(valueBytes)
		return nil
	}); err != nil {
		return 0, err
	}
	return value, nil
}

// GetRegAll returns the whole register shadow.
func (s *ShadowStore) GetRegAll() (map[uint16]uint32, error) {
	regs := make(map[uint16]uint32)
	if err := s.DB.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(RegBucketName))
		if b == nil {
			return fmt.Errorf("bucket not found: %s", RegBucketName)
		}
		return b.ForEach(func(k, v []byte) error {
			regs[binary.BigEndian.Uint16(k)] = binary.BigEndian.Uint32(v)
			return nil
		})
	}); err != nil {
		return nil, err
	}
	return regs, nil
}

// GetControl returns the last value stored for a control.
func (s *ShadowStore) GetControl(id sensor.ControlID) (int64, error) {
	var value int64
	if err := s.DB.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(CtrlBucketName))
		if b == nil {
			return fmt.Errorf("bucket not found: %s", CtrlBucketName)
		}
		valueBytes := b.Get(uint16ToByte(uint16(id)))
		if valueBytes == nil {
			return fmt.Errorf("ctrl not shadowed: %s", id)
		}
		value = int64(binary.BigEndian.Uint64(valueBytes))
		return nil
	}); err != nil {
		return 0, err
	}
	return value, nil
}
