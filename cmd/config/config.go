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
	"github.com/spf13/cobra"

	"jinr.ru/greenlab/go-imx477/pkg/config"
)

const (
	OverwriteOptionName   = "overwrite"
	BusNameOptionName     = "bus"
	BusAddrOptionName     = "addr"
	VariantOptionName     = "variant"
	TriggerModeOptionName = "trigger-mode"
	DPCOptionName         = "dpc"
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the persisted configuration",
	}
	cmd.AddCommand(NewNewCommand())
	return cmd
}

// NewNewCommand creates the command that writes a config file with the
// defaults overlaid by the given flags.
func NewNewCommand() *cobra.Command {
	var overwrite bool
	cfg := config.NewDefaultConfig()
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cfg.Persist(overwrite)
		},
	}
	cmd.Flags().BoolVar(&overwrite, OverwriteOptionName, false, "Overwrite an existing config file")
	cmd.Flags().StringVar(&cfg.Bus.Name, BusNameOptionName, config.DefaultBusName, "I2C bus device")
	cmd.Flags().Uint16Var(&cfg.Bus.Addr, BusAddrOptionName, config.DefaultBusAddr, "I2C chip address")
	cmd.Flags().StringVar(&cfg.Sensor.Variant, VariantOptionName, config.DefaultVariant, "Chip variant: imx477 or imx378")
	cmd.Flags().IntVar(&cfg.Sensor.TriggerMode, TriggerModeOptionName, config.DefaultTriggerMode, "Trigger mode: 0 standalone, 1 source, 2 sink")
	cmd.Flags().BoolVar(&cfg.Sensor.DPCEnable, DPCOptionName, config.DefaultDPCEnable, "Enable on-chip defect pixel correction")
	return cmd
}
