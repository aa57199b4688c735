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

package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"jinr.ru/greenlab/go-imx477/cmd/completion"
	"jinr.ru/greenlab/go-imx477/cmd/config"
	"jinr.ru/greenlab/go-imx477/cmd/control"
	"jinr.ru/greenlab/go-imx477/cmd/ctrl"
	"jinr.ru/greenlab/go-imx477/cmd/format"
	"jinr.ru/greenlab/go-imx477/cmd/reg"
	"jinr.ru/greenlab/go-imx477/cmd/status"
	"jinr.ru/greenlab/go-imx477/cmd/stream"
	pkgconfig "jinr.ru/greenlab/go-imx477/pkg/config"
	"jinr.ru/greenlab/go-imx477/pkg/log"
)

const (
	LogLevelOptionName = "log-level"
)

func NewRootCommand(out io.Writer) *cobra.Command {
	var logLevel string
	cfg := pkgconfig.NewDefaultConfig()
	cfg.Load()
	cmd := &cobra.Command{
		Use:   "go-imx477",
		Short: "Tool to control IMX477/IMX378 image sensors",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if logLevel != "" {
				cfg.LogLevel = logLevel
			}
			log.Init(cmd.ErrOrStderr(), cfg.LogLevel)
		},
	}
	cmd.SetOut(out)
	cmd.AddCommand(config.NewCommand())
	cmd.AddCommand(control.NewCommand())
	cmd.AddCommand(format.NewCommand())
	cmd.AddCommand(ctrl.NewCommand())
	cmd.AddCommand(stream.NewCommand())
	cmd.AddCommand(reg.NewCommand())
	cmd.AddCommand(status.NewCommand())
	cmd.AddCommand(completion.NewCommand())
	cmd.PersistentFlags().StringVar(&logLevel, LogLevelOptionName, "", fmt.Sprintf("Log level. %s", log.HelpLevels))
	return cmd
}
