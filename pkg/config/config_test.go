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

package config

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestPersistLoadRoundTrip(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.filepath = filepath.Join(t.TempDir(), "config")
	cfg.Sensor.Variant = "imx378"
	cfg.Sensor.TriggerMode = 1
	cfg.Api.Port = 9000

	if err := cfg.Persist(false); err != nil {
		t.Fatalf("Persist failed: %v", err)
	}

	loaded := NewDefaultConfig()
	loaded.filepath = cfg.filepath
	if err := loaded.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Sensor.Variant != "imx378" {
		t.Fatalf("variant = %q, want imx378", loaded.Sensor.Variant)
	}
	if loaded.Sensor.TriggerMode != 1 {
		t.Fatalf("trigger mode = %d, want 1", loaded.Sensor.TriggerMode)
	}
	if loaded.Api.Port != 9000 {
		t.Fatalf("api port = %d, want 9000", loaded.Api.Port)
	}
	// Untouched fields keep their defaults.
	if loaded.Bus.Addr != DefaultBusAddr {
		t.Fatalf("bus addr = %#x, want %#x", loaded.Bus.Addr, DefaultBusAddr)
	}
}

func TestPersistRefusesOverwrite(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.filepath = filepath.Join(t.TempDir(), "config")

	if err := cfg.Persist(false); err != nil {
		t.Fatalf("Persist failed: %v", err)
	}
	var existsErr ErrConfigFileExists
	if err := cfg.Persist(false); !errors.As(err, &existsErr) {
		t.Fatalf("second Persist: error = %v, want ErrConfigFileExists", err)
	}
	if err := cfg.Persist(true); err != nil {
		t.Fatalf("Persist with overwrite failed: %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.filepath = filepath.Join(t.TempDir(), "does-not-exist")
	if err := cfg.Load(); err != nil {
		t.Fatalf("Load of a missing file failed: %v", err)
	}
	if cfg.Sensor.Variant != DefaultVariant {
		t.Fatalf("variant = %q, want default", cfg.Sensor.Variant)
	}
}
