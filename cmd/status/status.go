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

package status

import (
	"github.com/spf13/cobra"

	"jinr.ru/greenlab/go-imx477/pkg/command"
	"jinr.ru/greenlab/go-imx477/pkg/config"
)

func NewCommand() *cobra.Command {
	cfg := config.NewDefaultConfig()
	cfg.Load()
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show sensor status",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := command.NewApiClient(cfg)
			s, err := client.Status()
			if err != nil {
				return err
			}
			streaming := "standby"
			if s.Streaming {
				streaming = "streaming"
			}
			cmd.Printf("state: %s\n", streaming)
			cmd.Printf("format: %dx%d code 0x%04x\n", s.Format.Width, s.Format.Height, s.Format.Code)
			cmd.Printf("mode: %dx%d lineLength %d\n", s.Mode.Width, s.Mode.Height, s.Mode.LineLengthPix)
			return nil
		},
	}
	return cmd
}
