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

package format

import (
	"github.com/spf13/cobra"

	"jinr.ru/greenlab/go-imx477/pkg/command"
	"jinr.ru/greenlab/go-imx477/pkg/config"
	"jinr.ru/greenlab/go-imx477/pkg/srv/control"
)

const (
	PadOptionName       = "pad"
	WidthOptionName     = "width"
	HeightOptionName    = "height"
	CodeOptionName      = "code"
	TentativeOptionName = "tentative"
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "format",
		Short: "Get/set the image format",
	}
	cmd.AddCommand(NewGetCommand())
	cmd.AddCommand(NewSetCommand())
	return cmd
}

func NewGetCommand() *cobra.Command {
	var pad int
	var tentative bool
	cfg := config.NewDefaultConfig()
	cfg.Load()
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Get the format on a pad",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := command.NewApiClient(cfg)
			f, err := client.FormatGet(pad, tentative)
			if err != nil {
				return err
			}
			cmd.Printf("%dx%d code 0x%04x\n", f.Width, f.Height, f.Code)
			return nil
		},
	}
	cmd.Flags().IntVar(&pad, PadOptionName, 0, "Pad: 0 image, 1 metadata")
	cmd.Flags().BoolVar(&tentative, TentativeOptionName, false, "Read the tentative format")

	return cmd
}

func NewSetCommand() *cobra.Command {
	var pad int
	req := &control.FormatRequest{}
	cfg := config.NewDefaultConfig()
	cfg.Load()
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set the format on a pad",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := command.NewApiClient(cfg)
			f, err := client.FormatSet(pad, req)
			if err != nil {
				return err
			}
			cmd.Printf("%dx%d code 0x%04x\n", f.Width, f.Height, f.Code)
			return nil
		},
	}
	cmd.Flags().IntVar(&pad, PadOptionName, 0, "Pad: 0 image, 1 metadata")
	cmd.Flags().Uint32Var(&req.Width, WidthOptionName, 0, "Requested width")
	cmd.Flags().Uint32Var(&req.Height, HeightOptionName, 0, "Requested height")
	cmd.Flags().Uint32Var(&req.Code, CodeOptionName, 0, "Media-bus format code")
	cmd.Flags().BoolVar(&req.Tentative, TentativeOptionName, false, "Negotiate without touching the active mode")

	return cmd
}
