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

package command

import (
	"context"

	"jinr.ru/greenlab/go-imx477/pkg/bus"
	"jinr.ru/greenlab/go-imx477/pkg/config"
	"jinr.ru/greenlab/go-imx477/pkg/sensor"
	"jinr.ru/greenlab/go-imx477/pkg/srv/control"
	"jinr.ru/greenlab/go-imx477/pkg/state"
)

// StartControlServer attaches the sensor and serves the control API until
// the server fails or is stopped.
func StartControlServer(cfg *config.Config) error {
	ctx := context.Background()

	b, err := bus.OpenI2C(cfg.Bus.Name, cfg.Bus.Addr)
	if err != nil {
		return err
	}
	defer b.Close()

	shadow, err := state.NewShadowStore(cfg.DBPath)
	if err != nil {
		return err
	}
	defer shadow.Close()

	s, err := sensor.Attach(b, sensor.SettlePower{}, sensor.AttachConfig{
		Variant:     cfg.Sensor.Variant,
		DataLanes:   cfg.Sensor.DataLanes,
		XClkFreq:    cfg.Sensor.XClkFreq,
		LinkFreq:    cfg.Sensor.LinkFreq,
		TriggerMode: cfg.Sensor.TriggerMode,
		DPCEnable:   cfg.Sensor.DPCEnable,
	}, shadow)
	if err != nil {
		return err
	}

	return control.NewApiServer(ctx, cfg, s, shadow).Run()
}
