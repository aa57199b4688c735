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

package reg

import (
	"github.com/spf13/cobra"

	"jinr.ru/greenlab/go-imx477/pkg/command"
	"jinr.ru/greenlab/go-imx477/pkg/config"
)

const (
	LiveOptionName = "live"
	AllOptionName  = "all"
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reg",
		Short: "Get/set sensor registers",
	}
	cmd.AddCommand(NewGetCommand())
	cmd.AddCommand(NewSetCommand())
	return cmd
}

func NewGetCommand() *cobra.Command {
	var live, all bool
	cfg := config.NewDefaultConfig()
	cfg.Load()
	cmd := &cobra.Command{
		Use:   "get [addr]",
		Short: "Get reg value from the shadow store, or from hardware with --live",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := command.NewApiClient(cfg)
			if all {
				regs, err := client.RegGetAll()
				if err != nil {
					return err
				}
				for addr, value := range regs {
					cmd.Printf("%s = %s\n", addr, value)
				}
				return nil
			}
			if len(args) != 1 {
				return cmd.Usage()
			}
			value, err := client.RegGet(args[0], live)
			if err != nil {
				return err
			}
			cmd.Printf("%s = %s\n", args[0], value)
			return nil
		},
	}
	cmd.Flags().BoolVar(&live, LiveOptionName, false, "Read from hardware instead of the shadow store")
	cmd.Flags().BoolVar(&all, AllOptionName, false, "Dump the whole register shadow")

	return cmd
}

func NewSetCommand() *cobra.Command {
	cfg := config.NewDefaultConfig()
	cfg.Load()
	cmd := &cobra.Command{
		Use:   "set <addr> <value>",
		Short: "Set reg value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := command.NewApiClient(cfg)
			return client.RegSet(args[0], args[1])
		},
	}
	return cmd
}
