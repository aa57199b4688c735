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

package stream

import (
	"github.com/spf13/cobra"

	"jinr.ru/greenlab/go-imx477/pkg/command"
	"jinr.ru/greenlab/go-imx477/pkg/config"
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stream",
		Short: "Start/stop streaming",
	}
	cmd.AddCommand(newActionCommand("start", "Start streaming"))
	cmd.AddCommand(newActionCommand("stop", "Stop streaming"))
	return cmd
}

func newActionCommand(action, short string) *cobra.Command {
	cfg := config.NewDefaultConfig()
	cfg.Load()
	return &cobra.Command{
		Use:   action,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			client := command.NewApiClient(cfg)
			return client.Stream(action)
		},
	}
}
