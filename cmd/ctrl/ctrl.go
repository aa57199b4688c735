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

package ctrl

import (
	"strconv"

	"github.com/spf13/cobra"

	"jinr.ru/greenlab/go-imx477/pkg/command"
	"jinr.ru/greenlab/go-imx477/pkg/config"
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ctrl",
		Short: "Get/set sensor controls",
	}
	cmd.AddCommand(NewGetCommand())
	cmd.AddCommand(NewSetCommand())
	return cmd
}

func NewGetCommand() *cobra.Command {
	cfg := config.NewDefaultConfig()
	cfg.Load()
	cmd := &cobra.Command{
		Use:   "get <name>",
		Short: "Get a control range and value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := command.NewApiClient(cfg)
			state, err := client.CtrlGet(args[0])
			if err != nil {
				return err
			}
			cmd.Printf("%s = %d (min %d max %d step %d default %d)\n",
				args[0], state.Value,
				state.Range.Minimum, state.Range.Maximum,
				state.Range.Step, state.Range.Default)
			return nil
		},
	}
	return cmd
}

func NewSetCommand() *cobra.Command {
	cfg := config.NewDefaultConfig()
	cfg.Load()
	cmd := &cobra.Command{
		Use:   "set <name> <value>",
		Short: "Set a control value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.ParseInt(args[1], 0, 64)
			if err != nil {
				return err
			}
			client := command.NewApiClient(cfg)
			return client.CtrlSet(args[0], value)
		},
	}
	return cmd
}
