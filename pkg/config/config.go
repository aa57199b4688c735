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
	"io/ioutil"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"
)

type BusConfig struct {
	Name string `yaml:"name"`
	Addr uint16 `yaml:"addr"`
}

type SensorConfig struct {
	Variant     string `yaml:"variant"`
	DataLanes   int    `yaml:"dataLanes"`
	XClkFreq    int64  `yaml:"xclkFreq"`
	LinkFreq    int64  `yaml:"linkFreq"`
	TriggerMode int    `yaml:"triggerMode"`
	DPCEnable   bool   `yaml:"dpcEnable"`
}

type ApiConfig struct {
	Address string `yaml:"address"`
	Port    int    `yaml:"port"`
}

type Config struct {
	Bus      *BusConfig    `yaml:"bus"`
	Sensor   *SensorConfig `yaml:"sensor"`
	Api      *ApiConfig    `yaml:"api"`
	DBPath   string        `yaml:"dbPath"`
	LogLevel string        `yaml:"logLevel"`
	filepath string
}

func (c *Config) Persist(overwrite bool) error {
	if _, err := os.Stat(c.filepath); err == nil && !overwrite {
		return ErrConfigFileExists{Path: c.filepath}
	}

	data, err := yaml.Marshal(&c)
	if err != nil {
		return err
	}

	dir := filepath.Dir(c.filepath)
	err = os.MkdirAll(dir, 0755)
	if err != nil {
		return err
	}

	err = ioutil.WriteFile(c.filepath, data, 0644)
	if err != nil {
		return err
	}

	return nil
}

// Load overlays the persisted configuration on top of the defaults. A
// missing config file is not an error.
func (c *Config) Load() error {
	data, err := ioutil.ReadFile(c.filepath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return yaml.Unmarshal(data, c)
}

func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}
	return filepath.Join(home, ConfigDir, ConfigFile)
}

func DefaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}
	return filepath.Join(home, ConfigDir, DBFile)
}

func NewDefaultConfig() *Config {
	return &Config{
		Bus: &BusConfig{
			Name: DefaultBusName,
			Addr: DefaultBusAddr,
		},
		Sensor: &SensorConfig{
			Variant:     DefaultVariant,
			DataLanes:   DefaultDataLanes,
			XClkFreq:    DefaultXClkFreq,
			LinkFreq:    DefaultLinkFreq,
			TriggerMode: DefaultTriggerMode,
			DPCEnable:   DefaultDPCEnable,
		},
		Api: &ApiConfig{
			Address: DefaultApiAddress,
			Port:    DefaultApiPort,
		},
		DBPath:   DefaultDBPath(),
		LogLevel: DefaultLogLevel,
		filepath: DefaultConfigPath(),
	}
}
